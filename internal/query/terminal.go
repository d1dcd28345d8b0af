// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package query

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/models"
)

const (
	opCount  = "count"
	opList   = "list"
	opFirst  = "first"
	opUnique = "unique"
	opInsert = "insert"
	opUpdate = "update"
	opUpsert = "upsert"
)

// Count returns the number of rows matching the working filter with the
// default filter resolved, the same condition List counts against.
func (b *Builder) Count(ctx context.Context) (count int64, err error) {
	table, err := b.start(ctx, opCount)
	if err != nil {
		return 0, err
	}
	defer b.end(ctx, opCount, time.Now(), &err)

	return table.Count(ctx, b.effectiveFilter())
}

// List returns the rows matching the working filter with the default filter
// resolved. The result is a []Record, or a [Page] when counting was requested
// through [Builder.SetWantCount].
func (b *Builder) List(ctx context.Context) (any, error) {
	if b.wantCount {
		return b.ListPage(ctx)
	}
	return b.ListRecords(ctx)
}

// ListRecords is List without counting.
func (b *Builder) ListRecords(ctx context.Context) (records []Record, err error) {
	table, err := b.start(ctx, opList)
	if err != nil {
		return nil, err
	}
	defer b.end(ctx, opList, time.Now(), &err)

	return table.FindMany(ctx, b.findArgs())
}

// ListPage is List with counting. The count ignores limit, offset and
// cursor and is taken before the data.
func (b *Builder) ListPage(ctx context.Context) (page Page, err error) {
	table, err := b.start(ctx, opList)
	if err != nil {
		return Page{}, err
	}
	defer b.end(ctx, opList, time.Now(), &err)

	args := b.findArgs()
	count, err := table.Count(ctx, args.Where)
	if err != nil {
		return Page{}, err
	}
	data, err := table.FindMany(ctx, args)
	if err != nil {
		return Page{}, err
	}
	if data == nil {
		data = []Record{}
	}
	return Page{Count: count, Data: data}, nil
}

// First returns the first row matching the raw working filter, or nil.
func (b *Builder) First(ctx context.Context) (record Record, err error) {
	table, err := b.start(ctx, opFirst)
	if err != nil {
		return nil, err
	}
	defer b.end(ctx, opFirst, time.Now(), &err)

	return table.FindFirst(ctx, FindArgs{
		Where:   b.filter,
		Select:  b.projection,
		OrderBy: b.ordering,
	})
}

// Unique returns the only row matching the raw working filter, or nil.
// It fails with [ErrUniquenessViolation] when several rows match.
func (b *Builder) Unique(ctx context.Context) (record Record, err error) {
	table, err := b.start(ctx, opUnique)
	if err != nil {
		return nil, err
	}
	defer b.end(ctx, opUnique, time.Now(), &err)

	return table.FindUnique(ctx, FindArgs{
		Where:  b.filter,
		Select: b.projection,
	})
}

// Insert creates a row from data and returns it under the working projection.
func (b *Builder) Insert(ctx context.Context, data Record) (record Record, err error) {
	table, err := b.start(ctx, opInsert)
	if err != nil {
		return nil, err
	}
	defer b.end(ctx, opInsert, time.Now(), &err)

	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	record, err = table.Create(ctx, CreateArgs{Select: b.projection, Data: data})
	if err != nil {
		return nil, err
	}
	if err = b.recordAudit(ctx, models.AuditCreate, record, data, ownerOf(record, data)); err != nil {
		return record, err
	}
	return record, nil
}

// Update writes data to the row selected by [Builder.ByID] (or a filter
// holding "id") and returns it under the working projection.
func (b *Builder) Update(ctx context.Context, data Record) (record Record, err error) {
	table, err := b.start(ctx, opUpdate)
	if err != nil {
		return nil, err
	}
	defer b.end(ctx, opUpdate, time.Now(), &err)

	if !b.filter.Has("id") {
		return nil, ErrPreconditionFailed
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	record, err = table.Update(ctx, UpdateArgs{Where: b.filter, Select: b.projection, Data: b.touch(data)})
	if err != nil {
		return nil, err
	}
	if err = b.recordAudit(ctx, models.AuditWrite, record, data, ownerOf(record, data)); err != nil {
		return record, err
	}
	return record, nil
}

// Upsert updates the row matching the working filter with update, or creates
// one from create when nothing matches. A nil update defaults to create.
func (b *Builder) Upsert(ctx context.Context, create, update Record) (record Record, err error) {
	table, err := b.start(ctx, opUpsert)
	if err != nil {
		return nil, err
	}
	defer b.end(ctx, opUpsert, time.Now(), &err)

	if len(b.filter) == 0 {
		return nil, ErrPreconditionFailed
	}
	if update == nil {
		update = create
	}
	if len(create) == 0 {
		return nil, ErrEmptyData
	}

	record, err = table.Upsert(ctx, UpsertArgs{
		Where:  b.filter,
		Select: b.projection,
		Create: create,
		Update: b.touch(update),
	})
	if err != nil {
		return nil, err
	}
	payload := Record{"create": create, "write": update}
	if err = b.recordAudit(ctx, models.AuditUpsert, record, payload, ownerOf(record, create)); err != nil {
		return record, err
	}
	return record, nil
}

// touch returns data with the entity's UpdatedAt column set to now, unless
// data already sets it. The audit payload keeps the caller's data.
func (b *Builder) touch(data Record) Record {
	col := b.entity.UpdatedAt
	if col == "" || len(data) == 0 {
		return data
	}
	if _, ok := data[col]; ok {
		return data
	}
	out := maps.Clone(data)
	out[col] = b.now().UTC()
	return out
}

// start enters the executing state and resolves the table of the bound
// store. On error the builder is reset and left configuring.
func (b *Builder) start(ctx context.Context, op string) (Table, error) {
	if err := b.begin(); err != nil {
		return nil, err
	}

	var err error
	switch {
	case b.store == nil:
		err = ErrNoStore
	case b.entity.Table == "":
		err = ErrUnknownTable
	default:
		return b.store.Table(b.entity.Table), nil
	}

	b.logger(ctx).Err(err).Str("func", "Builder."+op).Str("entity", b.entity.Name).Msg("cannot execute query")
	b.finish()
	return nil, err
}

// end resets the builder after a round trip and reports the outcome. It is
// deferred by every terminal operation.
func (b *Builder) end(ctx context.Context, op string, started time.Time, errp *error) {
	took := time.Since(started)
	if *errp != nil {
		*errp = fmt.Errorf("%s %s: %w", b.entity.Name, op, *errp)
		b.logger(ctx).Err(*errp).
			Str("func", "Builder."+op).
			Str("entity", b.entity.Name).
			Dur("took", took).
			Msg("query failed")
	}
	if b.observer != nil {
		b.observer.ObserveOperation(b.entity.Name, op, took, *errp)
	}
	b.finish()
}

func (b *Builder) findArgs() FindArgs {
	args := FindArgs{
		Where:   b.effectiveFilter(),
		Select:  b.projection,
		OrderBy: b.ordering,
		Take:    b.limit,
		Skip:    b.offset,
	}
	if b.cursor != 0 {
		// The store starts strictly after the cursor row, which is what
		// the forced offset of one over an inclusive cursor stood for.
		args.Cursor = b.cursor
		args.Skip = 0
	}
	return args
}

func (b *Builder) logger(ctx context.Context) *logger.Logger {
	if b.log != nil {
		return b.log
	}
	if ctx == nil {
		return logger.Nop()
	}
	return logger.FromContext(ctx)
}
