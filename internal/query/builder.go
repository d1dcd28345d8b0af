// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package query

import (
	"context"
	"slices"
	"sync/atomic"
	"time"

	"github.com/wpleonesz/kick-off-v2/internal/logger"
)

// AuditedUser identifies the user stamped on audit entries.
type AuditedUser struct {
	ID       int64
	Username string
}

// ResetExclude lists the working fields a reset must keep.
type ResetExclude struct {
	ID         bool
	Projection bool
	Filter     bool
	Ordering   bool
	Limit      bool
	Offset     bool
	Cursor     bool
}

// ResetOptions parameterize [Builder.Reset].
type ResetOptions struct {
	// NoDefaultFilter switches the soft-delete default filter off until the
	// next reset.
	NoDefaultFilter bool

	Exclude ResetExclude
}

const (
	stateConfiguring int32 = iota
	stateExecuting
)

// Option configures a [Builder] at construction.
type Option func(*Builder)

// WithModuleRegistry sets the registry consulted before auditing. Without
// it the bound store is used when it implements [ModuleRegistry].
func WithModuleRegistry(r ModuleRegistry) Option {
	return func(b *Builder) { b.registry = r }
}

// WithAuditSink sets where audit entries are written. Without it the bound
// store is used when it implements [AuditSink].
func WithAuditSink(s AuditSink) Option {
	return func(b *Builder) { b.sink = s }
}

// WithObserver attaches an operation observer, typically a metrics collector.
func WithObserver(o Observer) Option {
	return func(b *Builder) { b.observer = o }
}

// WithLogger sets the logger used when the context carries none.
func WithLogger(l *logger.Logger) Option {
	return func(b *Builder) { b.log = l }
}

// WithClock overrides the time source of audit entries.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// Builder accumulates the intent of one query at a time against a single
// entity and executes it with a terminal operation.
type Builder struct {
	entity Entity

	defaultStore Store
	store        Store
	registry     ModuleRegistry
	sink         AuditSink
	observer     Observer
	log          *logger.Logger
	now          func() time.Time

	defaultProjectionName ProjectionName
	defaultProjection     Projection
	defaultFilter         Filter
	applyDefaultFilter    bool

	auditedUser AuditedUser
	auditable   bool
	wantCount   bool

	id         int64
	projection Projection
	filter     Filter
	ordering   []Order
	limit      uint64
	offset     uint64
	cursor     int64

	state atomic.Int32
}

// New returns a builder for entity bound to store, which also becomes the
// handle [Builder.BindStore] falls back to.
func New(entity Entity, store Store, opts ...Option) *Builder {
	b := &Builder{
		entity:       entity,
		defaultStore: store,
		store:        store,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.defaultProjectionName, b.defaultProjection = entity.defaultSchema()
	if b.defaultProjection.Has(SoftDeleteColumn) {
		b.defaultFilter = Filter{SoftDeleteColumn: true}
	}

	return b.Clean()
}

// Entity returns the descriptor the builder is bound to.
func (b *Builder) Entity() Entity {
	return b.entity
}

// Clone returns a clean builder for the same entity sharing the store
// bindings, collaborators, defaults and audit context of b.
func (b *Builder) Clone() *Builder {
	c := &Builder{
		entity:                b.entity,
		defaultStore:          b.defaultStore,
		store:                 b.store,
		registry:              b.registry,
		sink:                  b.sink,
		observer:              b.observer,
		log:                   b.log,
		now:                   b.now,
		defaultProjectionName: b.defaultProjectionName,
		defaultProjection:     b.defaultProjection,
		defaultFilter:         b.defaultFilter.Merge(nil),
		auditedUser:           b.auditedUser,
		auditable:             b.auditable,
		wantCount:             b.wantCount,
	}
	return c.Clean()
}

// BindStore rebinds the builder to store, usually a transaction. A nil store
// restores the handle given to [New].
func (b *Builder) BindStore(store Store) *Builder {
	b.configuring()
	if store == nil {
		b.store = b.defaultStore
		return b
	}
	b.store = store
	return b
}

// SetAuditedUser sets the user stamped on audit entries and marks the
// builder auditable.
func (b *Builder) SetAuditedUser(user AuditedUser) *Builder {
	b.configuring()
	if user == (AuditedUser{}) {
		return b
	}
	b.auditedUser = user
	b.auditable = true
	return b
}

// SetAuditable toggles whether mutations attempt to write audit entries.
func (b *Builder) SetAuditable(auditable bool) *Builder {
	b.configuring()
	b.auditable = auditable
	return b
}

// SetDefaultFilter replaces the filter merged into reads. It is ignored for
// entities whose default projection has no "active" column.
func (b *Builder) SetDefaultFilter(f Filter) *Builder {
	b.configuring()
	if len(f) == 0 || !b.defaultProjection.Has(SoftDeleteColumn) {
		return b
	}
	b.defaultFilter = f.Merge(nil)
	return b
}

// SetDefaultProjection switches the working and the default projection to
// the schema registered under name. Unknown names and names the entity has
// no schema for leave both unchanged.
func (b *Builder) SetDefaultProjection(name string) *Builder {
	b.configuring()
	if name == "" {
		return b
	}
	pn, ok := ParseProjectionName(name)
	if !ok {
		b.logger(context.Background()).Warn().Str("func", "Builder.SetDefaultProjection").
			Str("entity", b.entity.Name).Str("projection", name).
			Msg("unknown projection name ignored")
		return b
	}
	schema, ok := b.entity.Schema(pn)
	if !ok {
		b.logger(context.Background()).Warn().Str("func", "Builder.SetDefaultProjection").
			Str("entity", b.entity.Name).Str("projection", name).
			Msg("entity has no such projection, ignored")
		return b
	}
	b.defaultProjectionName = pn
	b.defaultProjection = schema
	b.projection = schema
	return b
}

// DefaultProjection returns the name of the projection reads fall back to.
func (b *Builder) DefaultProjection() ProjectionName {
	return b.defaultProjectionName
}

// SetRequestFilter applies f through [Builder.Filter] when it is not empty.
func (b *Builder) SetRequestFilter(f Filter) *Builder {
	if len(f) == 0 {
		b.configuring()
		return b
	}
	return b.Filter(f)
}

// SetRequestOrdering applies orders through [Builder.OrderBy] when given.
func (b *Builder) SetRequestOrdering(orders []Order) *Builder {
	if len(orders) == 0 {
		b.configuring()
		return b
	}
	return b.OrderBy(orders...)
}

// SetDefaultLimit sets the number of rows to return when n is not zero.
func (b *Builder) SetDefaultLimit(n uint64) *Builder {
	b.configuring()
	if n != 0 {
		b.limit = n
	}
	return b
}

// SetDefaultOffset sets the number of rows to skip when n is not zero.
func (b *Builder) SetDefaultOffset(n uint64) *Builder {
	b.configuring()
	if n != 0 {
		b.offset = n
	}
	return b
}

// SetDefaultCursor sets the pagination cursor when id is not zero.
func (b *Builder) SetDefaultCursor(id int64) *Builder {
	b.configuring()
	if id != 0 {
		b.cursor = id
	}
	return b
}

// SetWantCount makes List return a [Page]. It only ever switches counting
// on, and the setting survives resets.
func (b *Builder) SetWantCount(want bool) *Builder {
	b.configuring()
	if want {
		b.wantCount = true
	}
	return b
}

// Reset restores the working fields not excluded by opts to their baseline
// and sets the default-filter mode to !opts.NoDefaultFilter.
func (b *Builder) Reset(opts ResetOptions) *Builder {
	b.configuring()
	b.reset(opts)
	return b
}

// Clean is Reset with no exclusions.
func (b *Builder) Clean() *Builder {
	return b.Reset(ResetOptions{})
}

func (b *Builder) reset(opts ResetOptions) {
	ex := opts.Exclude
	if !ex.ID {
		b.id = 0
	}
	if !ex.Projection {
		b.projection = b.defaultProjection
	}
	if !ex.Filter {
		b.filter = Filter{}
	}
	if !ex.Ordering {
		b.ordering = nil
	}
	if !ex.Limit {
		b.limit = 0
	}
	if !ex.Offset {
		b.offset = 0
	}
	if !ex.Cursor {
		b.cursor = 0
	}
	b.applyDefaultFilter = !opts.NoDefaultFilter
}

// ByID scopes the query to the row with the given id, replacing the working
// filter.
func (b *Builder) ByID(id int64) *Builder {
	b.configuring()
	b.id = id
	b.filter = Filter{"id": id}
	return b
}

// Filter merges f into the working filter while the default-filter mode is
// on, f winning on collisions. Otherwise f replaces the working filter.
func (b *Builder) Filter(f Filter) *Builder {
	b.configuring()
	if b.applyDefaultFilter {
		b.filter = b.filter.Merge(f)
		return b
	}
	b.filter = f.Merge(nil)
	return b
}

// Project sets the working projection.
func (b *Builder) Project(p Projection) *Builder {
	b.configuring()
	b.projection = p
	return b
}

// ProjectSchema sets the working projection to the named schema of the
// entity. Unknown names leave the projection unchanged.
func (b *Builder) ProjectSchema(name ProjectionName) *Builder {
	b.configuring()
	if p, ok := b.entity.Schema(name); ok {
		b.projection = p
	}
	return b
}

// OrderBy sets the working ordering.
func (b *Builder) OrderBy(orders ...Order) *Builder {
	b.configuring()
	b.ordering = slices.Clone(orders)
	return b
}

// Limit sets the number of rows List returns.
func (b *Builder) Limit(n uint64) *Builder {
	b.configuring()
	b.limit = n
	return b
}

// Offset sets the number of rows List skips.
func (b *Builder) Offset(n uint64) *Builder {
	b.configuring()
	b.offset = n
	return b
}

// Cursor makes List start right after the row with the given id.
func (b *Builder) Cursor(id int64) *Builder {
	b.configuring()
	b.cursor = id
	return b
}

// effectiveFilter is the working filter with the default filter merged in,
// unless the caller constrained the soft-delete column or the mode is off.
func (b *Builder) effectiveFilter() Filter {
	if b.filter.Has(SoftDeleteColumn) || !b.applyDefaultFilter {
		return b.filter
	}
	return b.filter.Merge(b.defaultFilter)
}

func (b *Builder) configuring() {
	if b.state.Load() == stateExecuting {
		panic(ErrBuilderBusy)
	}
}

// begin moves the builder into the executing state.
func (b *Builder) begin() error {
	if !b.state.CompareAndSwap(stateConfiguring, stateExecuting) {
		return ErrBuilderBusy
	}
	return nil
}

// finish resets the working state and moves the builder back to configuring.
func (b *Builder) finish() {
	b.reset(ResetOptions{})
	b.state.Store(stateConfiguring)
}
