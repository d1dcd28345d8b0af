// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package entities

import "github.com/wpleonesz/kick-off-v2/internal/query"

// Courts are the sports courts offered for booking.
var Courts = query.Entity{
	Name:      "courts",
	Table:     "courts",
	UpdatedAt: "updated_at",
	Schemas: map[query.ProjectionName]query.Projection{
		query.ProjectionDefault: query.Columns(
			"id", "name", "location", "latitude", "longitude", "user_id",
			"is_indoor", "active", "created_at", "updated_at",
		).BelongsToOne("User", "users", "user_id", query.Columns("id", "username", "email")),

		query.ProjectionPublic: query.Columns("id", "name", "location", "latitude", "longitude", "is_indoor", "active"),
	},
}

// CourtSchedules are the weekly opening slots of a court.
var CourtSchedules = query.Entity{
	Name:      "courtSchedules",
	Table:     "court_schedules",
	UpdatedAt: "updated_at",
	Schemas: map[query.ProjectionName]query.Projection{
		query.ProjectionDefault: query.Columns(
			"id", "court_id", "day_of_week", "duration", "start_time",
			"end_time", "active", "created_at", "updated_at",
		).BelongsToOne("Court", "courts", "court_id", query.Columns("id", "name", "location")),
	},
}

// NewCourtData returns a builder over [Courts].
func NewCourtData(store query.Store, opts ...query.Option) *query.Builder {
	return query.New(Courts, store, opts...)
}

// NewCourtScheduleData returns a builder over [CourtSchedules].
func NewCourtScheduleData(store query.Store, opts ...query.Option) *query.Builder {
	return query.New(CourtSchedules, store, opts...)
}

// All lists every entity of the application.
var All = []query.Entity{Persons, Users, Roles, RolesOnUsers, Modules, AuditLogs, Courts, CourtSchedules}

// ByName looks an entity up by its logical name.
func ByName(name string) (query.Entity, bool) {
	for _, e := range All {
		if e.Name == name {
			return e, true
		}
	}
	return query.Entity{}, false
}
