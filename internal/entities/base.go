// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package entities

import "github.com/wpleonesz/kick-off-v2/internal/query"

var personDefault = query.Columns("id", "photo", "dni", "name", "last_name", "first_name", "email", "mobile", "active")

// Persons holds the personal data a user account is attached to.
var Persons = query.Entity{
	Name:  "persons",
	Table: "persons",
	Schemas: map[query.ProjectionName]query.Projection{
		query.ProjectionDefault: personDefault,
		query.ProjectionPublic:  query.Columns("id", "name"),
	},
}

var (
	userPublic = query.Columns("id", "username", "active").
			BelongsToOne("Person", "persons", "person_id", query.Columns("name"))

	roleSummary = query.Columns("id", "code", "name")
)

// Users are the accounts that sign in. DEFAULT never exposes the password
// hash or the recovery token; CREDENTIALS is the only projection that reads
// the hash.
var Users = query.Entity{
	Name:      "users",
	Table:     "users",
	UpdatedAt: "modified_date",
	Schemas: map[query.ProjectionName]query.Projection{
		query.ProjectionDefault: query.Columns(
			"id", "username", "active", "email", "created_date",
			"last_password_date", "modified_date", "person_id",
		).
			BelongsToOne("Person", "persons", "person_id",
				query.Columns("id", "photo", "dni", "name", "last_name", "first_name", "email", "mobile")).
			HasManyOf("roles", "roles_on_users", "user_id",
				query.Columns("role_id", "active").
					BelongsToOne("Role", "roles", "role_id", query.Columns("id", "code", "name", "active"))),

		query.ProjectionPublic: userPublic,

		query.ProjectionPublicRecoverToken: userPublic.Extend("recover_date"),

		query.ProjectionCredentials: query.Columns("id", "username", "active", "email", "password").
			BelongsToOne("Person", "persons", "person_id", query.Columns("id", "name", "dni")).
			HasManyOf("roles", "roles_on_users", "user_id",
				query.Columns("role_id", "active").
					BelongsToOne("Role", "roles", "role_id", roleSummary)),

		query.ProjectionRecoverEmail: userPublic.Extend("email").
			BelongsToOne("Person", "persons", "person_id", query.Columns("name", "email")),

		query.ProjectionSendEmail: query.Columns("email").
			BelongsToOne("Person", "persons", "person_id", query.Columns("name", "email")),

		query.ProjectionRoles: query.Projection{}.
			HasManyOf("roles", "roles_on_users", "user_id",
				query.Columns("active").
					BelongsToOne("Role", "roles", "role_id", query.Columns("name"))),
	},
}

// Roles are the named permission sets.
var Roles = query.Entity{
	Name:  "roles",
	Table: "roles",
	Schemas: map[query.ProjectionName]query.Projection{
		query.ProjectionDefault: query.Columns("id", "code", "name", "description", "active"),
		query.ProjectionPublic:  roleSummary,
		query.ProjectionRoles:   roleSummary,
	},
}

// RolesOnUsers links users to roles.
var RolesOnUsers = query.Entity{
	Name:  "rolesOnUsers",
	Table: "roles_on_users",
	Schemas: map[query.ProjectionName]query.Projection{
		query.ProjectionDefault: query.Columns("id", "role_id", "user_id", "active"),
		query.ProjectionRoles: query.Columns("id", "role_id", "user_id", "active").
			BelongsToOne("Role", "roles", "role_id", roleSummary),
	},
}

// Modules is the feature-module registry. Inactive modules are part of the
// registry: list it after Reset with NoDefaultFilter.
var Modules = query.Entity{
	Name:  "modules",
	Table: "base_module",
	Schemas: map[query.ProjectionName]query.Projection{
		query.ProjectionDefault: query.Columns("id", "code", "name", "subname", "description", "icon", "installed", "active"),
		query.ProjectionPublic:  query.Columns("code", "active"),
	},
}

// AuditLogs are the entries written by audited mutations.
var AuditLogs = query.Entity{
	Name:  "auditLogs",
	Table: "audit_log",
	Schemas: map[query.ProjectionName]query.Projection{
		query.ProjectionDefault: query.Columns("id", "user_id", "datetime", "table_name", "record", "action", "data"),
	},
}

// NewPersonData returns a builder over [Persons].
func NewPersonData(store query.Store, opts ...query.Option) *query.Builder {
	return query.New(Persons, store, opts...)
}

// NewUserData returns a builder over [Users].
func NewUserData(store query.Store, opts ...query.Option) *query.Builder {
	return query.New(Users, store, opts...)
}

// NewRoleData returns a builder over [Roles].
func NewRoleData(store query.Store, opts ...query.Option) *query.Builder {
	return query.New(Roles, store, opts...)
}

// NewRolesOnUsersData returns a builder over [RolesOnUsers].
func NewRolesOnUsersData(store query.Store, opts ...query.Option) *query.Builder {
	return query.New(RolesOnUsers, store, opts...)
}

// NewModuleData returns a builder over [Modules].
func NewModuleData(store query.Store, opts ...query.Option) *query.Builder {
	return query.New(Modules, store, opts...)
}

// NewAuditLogData returns a builder over [AuditLogs].
func NewAuditLogData(store query.Store, opts ...query.Option) *query.Builder {
	return query.New(AuditLogs, store, opts...)
}
