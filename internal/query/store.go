// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package query

//go:generate mockgen -source=store.go -destination=../mock/query_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/wpleonesz/kick-off-v2/models"
)

// Store is a handle on the relational backend: either the process-wide
// connection pool or a transaction opened on it.
type Store interface {
	// Table returns the accessor of the named table.
	Table(name string) Table
}

// Table executes the primitive operations of a single table.
// Implementations report absent rows of FindFirst and FindUnique as a nil
// Record and a nil error.
type Table interface {
	FindMany(ctx context.Context, args FindArgs) ([]Record, error)
	FindFirst(ctx context.Context, args FindArgs) (Record, error)
	FindUnique(ctx context.Context, args FindArgs) (Record, error)
	Count(ctx context.Context, where Filter) (int64, error)
	Create(ctx context.Context, args CreateArgs) (Record, error)
	Update(ctx context.Context, args UpdateArgs) (Record, error)
	Upsert(ctx context.Context, args UpsertArgs) (Record, error)
}

// FindArgs are the arguments of the read operations of a [Table].
type FindArgs struct {
	Where   Filter
	Select  Projection
	OrderBy []Order

	// Take and Skip are ignored when zero.
	Take uint64
	Skip uint64

	// Cursor, when non-zero, starts the result strictly after the row with
	// that id under OrderBy. The cursor row itself is looked up without
	// Where, so it may be filtered out of the result. Skip applies after it.
	Cursor int64
}

// CreateArgs are the arguments of [Table.Create].
type CreateArgs struct {
	Select Projection
	Data   Record
}

// UpdateArgs are the arguments of [Table.Update].
type UpdateArgs struct {
	Where  Filter
	Select Projection
	Data   Record
}

// UpsertArgs are the arguments of [Table.Upsert]. The row matched by Where
// is updated with Update; when nothing matches, Create is inserted.
type UpsertArgs struct {
	Where  Filter
	Select Projection
	Create Record
	Update Record
}

// ModuleRegistry reports whether a feature module is switched on.
type ModuleRegistry interface {
	IsModuleActive(ctx context.Context, code string) (bool, error)
}

// AuditSink persists audit entries.
type AuditSink interface {
	WriteAudit(ctx context.Context, entry models.AuditLog) error
}

// Transactional is implemented by stores that run inside a database
// transaction. Audit failures on such stores are returned to the caller.
type Transactional interface {
	InTransaction() bool
}

// Observer receives timing and outcome of builder operations.
type Observer interface {
	ObserveOperation(entity, operation string, took time.Duration, err error)
	ObserveAudit(entity string, action models.AuditAction, err error)
}
