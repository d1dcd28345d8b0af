// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package query

import (
	"slices"
	"strings"
)

// SoftDeleteColumn is the column that marks a row as active. Entities whose
// default projection selects it support soft deletion.
const SoftDeleteColumn = "active"

// ProjectionName identifies a named projection schema of an entity.
// The set of names is closed; see [ParseProjectionName].
type ProjectionName string

const (
	ProjectionDefault            ProjectionName = "DEFAULT"
	ProjectionPublic             ProjectionName = "PUBLIC"
	ProjectionPublicRecoverToken ProjectionName = "PUBLICRECOVERTOKEN"
	ProjectionCredentials        ProjectionName = "CREDENTIALS"
	ProjectionRecoverEmail       ProjectionName = "RECOVER_EMAIL"
	ProjectionSendEmail          ProjectionName = "SEND_EMAIL"
	ProjectionRoles              ProjectionName = "ROLES"
)

var projectionNames = []ProjectionName{
	ProjectionDefault,
	ProjectionPublic,
	ProjectionPublicRecoverToken,
	ProjectionCredentials,
	ProjectionRecoverEmail,
	ProjectionSendEmail,
	ProjectionRoles,
}

// ParseProjectionName resolves s case-insensitively to one of the known
// projection names. The second result is false for unknown names.
func ParseProjectionName(s string) (ProjectionName, bool) {
	name := ProjectionName(strings.ToUpper(strings.TrimSpace(s)))
	if slices.Contains(projectionNames, name) {
		return name, true
	}
	return "", false
}

// RelationKind tells how a related table is joined to its parent.
type RelationKind int

const (
	// BelongsTo relations follow a foreign key stored on the parent row
	// to the id of a single related row.
	BelongsTo RelationKind = iota

	// HasMany relations collect every related row whose foreign key
	// points at the parent id.
	HasMany
)

// Relation describes a nested projection loaded from another table.
type Relation struct {
	// Name is the key the related value is stored under in the parent record.
	Name string

	// Kind selects the join direction.
	Kind RelationKind

	// Table is the related table.
	Table string

	// Key is the parent column holding the related id for BelongsTo, or the
	// related column holding the parent id for HasMany.
	Key string

	// Select is the projection applied to related rows.
	Select Projection
}

// Projection is the whitelist of columns and relations a query returns.
type Projection struct {
	Columns   []string
	Relations []Relation
}

// Columns builds a projection over the given columns.
func Columns(cols ...string) Projection {
	return Projection{Columns: cols}
}

// BelongsToOne returns a copy of p that also loads the row of table whose id
// is stored in the localKey column, under name.
func (p Projection) BelongsToOne(name, table, localKey string, sel Projection) Projection {
	return p.withRelation(Relation{Name: name, Kind: BelongsTo, Table: table, Key: localKey, Select: sel})
}

// HasManyOf returns a copy of p that also loads every row of table whose
// foreignKey column references the parent id, under name.
func (p Projection) HasManyOf(name, table, foreignKey string, sel Projection) Projection {
	return p.withRelation(Relation{Name: name, Kind: HasMany, Table: table, Key: foreignKey, Select: sel})
}

// Extend returns a copy of p with additional columns.
func (p Projection) Extend(cols ...string) Projection {
	out := p.clone()
	for _, c := range cols {
		if !slices.Contains(out.Columns, c) {
			out.Columns = append(out.Columns, c)
		}
	}
	return out
}

// Has reports whether the projection selects col.
func (p Projection) Has(col string) bool {
	return slices.Contains(p.Columns, col)
}

// IsZero reports whether the projection selects nothing.
func (p Projection) IsZero() bool {
	return len(p.Columns) == 0 && len(p.Relations) == 0
}

func (p Projection) withRelation(rel Relation) Projection {
	out := p.clone()
	out.Relations = slices.DeleteFunc(out.Relations, func(r Relation) bool { return r.Name == rel.Name })
	out.Relations = append(out.Relations, rel)
	return out
}

func (p Projection) clone() Projection {
	return Projection{
		Columns:   slices.Clone(p.Columns),
		Relations: slices.Clone(p.Relations),
	}
}

// Entity describes a table and the projections it can be read with.
// An Entity is immutable once handed to [New].
type Entity struct {
	// Name is the logical name of the entity (e.g. "courtSchedules").
	Name string

	// Table is the physical table name.
	Table string

	// Schemas are the named projections of the entity. DEFAULT should be present.
	Schemas map[ProjectionName]Projection

	// DefaultProjection overrides DEFAULT as the projection used when nothing
	// else is selected.
	DefaultProjection ProjectionName

	// UpdatedAt names the column stamped with the builder clock on every
	// update. Empty leaves updates unstamped.
	UpdatedAt string
}

// Schema returns the projection registered under name.
func (e Entity) Schema(name ProjectionName) (Projection, bool) {
	p, ok := e.Schemas[name]
	return p, ok
}

func (e Entity) defaultSchema() (ProjectionName, Projection) {
	if e.DefaultProjection != "" {
		if p, ok := e.Schemas[e.DefaultProjection]; ok {
			return e.DefaultProjection, p
		}
	}
	return ProjectionDefault, e.Schemas[ProjectionDefault]
}
