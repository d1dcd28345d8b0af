// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/wpleonesz/kick-off-v2/internal/query"
)

// sqlTable is the SQL implementation of [query.Table]. Statements are
// generated with squirrel for the dialect of the executor and run on its
// pool or transaction.
type sqlTable struct {
	executor
	name string
}

// FindMany returns every row matching args, with relations loaded.
func (t *sqlTable) FindMany(ctx context.Context, args query.FindArgs) ([]query.Record, error) {
	log := t.log(ctx)

	stmt, params, err := t.buildSelect(args)
	if err != nil {
		log.Err(err).Str("func", "sqlTable.FindMany").Str("table", t.name).Msg("failed to create query")
		return nil, err
	}

	recs, err := t.queryRecords(ctx, stmt, params)
	if err != nil {
		log.Err(err).Str("func", "sqlTable.FindMany").Str("table", t.name).Msg("failed to execute query")
		return nil, err
	}

	if err = t.loadRelations(ctx, recs, args.Select); err != nil {
		log.Err(err).Str("func", "sqlTable.FindMany").Str("table", t.name).Msg("failed to load relations")
		return nil, err
	}

	return projectAll(recs, args.Select), nil
}

// FindFirst returns the first matching row, or nil when nothing matches.
func (t *sqlTable) FindFirst(ctx context.Context, args query.FindArgs) (query.Record, error) {
	args.Take = 1
	recs, err := t.FindMany(ctx, args)
	if err != nil || len(recs) == 0 {
		return nil, err
	}
	return recs[0], nil
}

// FindUnique returns the only matching row, or nil when nothing matches.
// A second match is reported as [query.ErrUniquenessViolation].
func (t *sqlTable) FindUnique(ctx context.Context, args query.FindArgs) (query.Record, error) {
	args.Take = 2
	recs, err := t.FindMany(ctx, args)
	if err != nil {
		return nil, err
	}
	switch len(recs) {
	case 0:
		return nil, nil
	case 1:
		return recs[0], nil
	default:
		return nil, fmt.Errorf("%w: more than one row of %s matches", query.ErrUniquenessViolation, t.name)
	}
}

// Count returns the number of rows matching where.
func (t *sqlTable) Count(ctx context.Context, where query.Filter) (int64, error) {
	log := t.log(ctx)

	if err := checkTable(t.name); err != nil {
		return 0, err
	}
	sb := t.dialect.builder().Select("COUNT(*)").From(t.name)
	sb, err := t.withWhere(sb, where)
	if err != nil {
		log.Err(err).Str("func", "sqlTable.Count").Str("table", t.name).Msg("failed to create query")
		return 0, err
	}
	stmt, params, err := sb.ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqlTable.Count").Str("table", t.name).Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int64
	if err = t.q.QueryRowContext(ctx, stmt, params...).Scan(&n); err != nil {
		log.Err(err).Str("func", "sqlTable.Count").Str("table", t.name).Msg("failed to count rows")
		return 0, wrapDriverError(err)
	}
	return n, nil
}

// Create inserts a row and returns it read back through args.Select.
func (t *sqlTable) Create(ctx context.Context, args query.CreateArgs) (query.Record, error) {
	log := t.log(ctx)

	if len(args.Data) == 0 {
		return nil, query.ErrEmptyData
	}
	if err := checkTable(t.name); err != nil {
		return nil, err
	}
	values, err := encodeValues(args.Data)
	if err != nil {
		log.Err(err).Str("func", "sqlTable.Create").Str("table", t.name).Msg("failed to encode values")
		return nil, err
	}
	returning, err := returningClause(args.Select)
	if err != nil {
		return nil, err
	}

	stmt, params, err := t.dialect.builder().
		Insert(t.name).
		SetMap(values).
		Suffix(returning).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqlTable.Create").Str("table", t.name).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := t.writeOne(ctx, stmt, params, args.Select)
	if err != nil {
		log.Err(err).Str("func", "sqlTable.Create").Str("table", t.name).Msg("failed to insert row")
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: insert into %s returned no row", ErrExecutingQuery, t.name)
	}

	log.Debug().Str("func", "sqlTable.Create").Str("table", t.name).Int64("id", rec.ID()).Msg("row created")
	return rec, nil
}

// Update writes args.Data to the rows matching args.Where and returns the
// first of them. [query.ErrNotFound] is returned when nothing matches.
func (t *sqlTable) Update(ctx context.Context, args query.UpdateArgs) (query.Record, error) {
	log := t.log(ctx)

	if len(args.Where) == 0 {
		return nil, fmt.Errorf("%w: update without a filter", query.ErrPreconditionFailed)
	}
	if len(args.Data) == 0 {
		return nil, query.ErrEmptyData
	}
	if err := checkTable(t.name); err != nil {
		return nil, err
	}
	values, err := encodeValues(args.Data)
	if err != nil {
		log.Err(err).Str("func", "sqlTable.Update").Str("table", t.name).Msg("failed to encode values")
		return nil, err
	}
	where, err := whereClause(args.Where)
	if err != nil {
		return nil, err
	}
	returning, err := returningClause(args.Select)
	if err != nil {
		return nil, err
	}

	stmt, params, err := t.dialect.builder().
		Update(t.name).
		SetMap(values).
		Where(where).
		Suffix(returning).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqlTable.Update").Str("table", t.name).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := t.writeOne(ctx, stmt, params, args.Select)
	if err != nil {
		log.Err(err).Str("func", "sqlTable.Update").Str("table", t.name).Msg("failed to update row")
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: no row of %s matches", query.ErrNotFound, t.name)
	}
	return rec, nil
}

// Upsert updates the single row matching args.Where with args.Update, or
// creates one from args.Create when nothing matches. On a pool the lookup
// and the write are separate statements; run it in a [Tx] when concurrent
// writers may race.
func (t *sqlTable) Upsert(ctx context.Context, args query.UpsertArgs) (query.Record, error) {
	if len(args.Where) == 0 {
		return nil, fmt.Errorf("%w: upsert without a filter", query.ErrPreconditionFailed)
	}

	matched, err := t.FindMany(ctx, query.FindArgs{
		Where:  args.Where,
		Select: query.Columns("id"),
		Take:   2,
	})
	if err != nil {
		return nil, err
	}

	switch len(matched) {
	case 0:
		return t.Create(ctx, query.CreateArgs{Select: args.Select, Data: args.Create})
	case 1:
		return t.Update(ctx, query.UpdateArgs{
			Where:  query.Filter{"id": matched[0]["id"]},
			Select: args.Select,
			Data:   args.Update,
		})
	default:
		return nil, fmt.Errorf("%w: upsert filter matches several rows of %s", query.ErrUniquenessViolation, t.name)
	}
}

func (t *sqlTable) buildSelect(args query.FindArgs) (string, []any, error) {
	if err := checkTable(t.name); err != nil {
		return "", nil, err
	}

	cols := selectColumns(args.Select)
	if len(cols) == 0 {
		cols = []string{"*"}
	} else if err := checkColumns(cols...); err != nil {
		return "", nil, err
	}

	sb := t.dialect.builder().Select(cols...).From(t.name)
	sb, err := t.withWhere(sb, args.Where)
	if err != nil {
		return "", nil, err
	}

	if args.Cursor != 0 {
		cond, err := cursorCondition(t.name, args.OrderBy, args.Cursor)
		if err != nil {
			return "", nil, err
		}
		sb = sb.Where(cond)
	}

	orders, err := orderClauses(args.OrderBy, args.Cursor != 0)
	if err != nil {
		return "", nil, err
	}
	if len(orders) > 0 {
		sb = sb.OrderBy(orders...)
	}

	switch {
	case args.Take > 0:
		sb = sb.Limit(args.Take)
	case args.Skip > 0 && t.dialect.offsetNeedsLimit:
		sb = sb.Limit(math.MaxInt64)
	}
	if args.Skip > 0 {
		sb = sb.Offset(args.Skip)
	}

	stmt, params, err := sb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return stmt, params, nil
}

func (t *sqlTable) withWhere(sb sq.SelectBuilder, where query.Filter) (sq.SelectBuilder, error) {
	if len(where) == 0 {
		return sb, nil
	}
	pred, err := whereClause(where)
	if err != nil {
		return sb, err
	}
	return sb.Where(pred), nil
}

// writeOne runs an INSERT or UPDATE with a RETURNING clause and reads the
// first returned row through sel.
func (t *sqlTable) writeOne(ctx context.Context, stmt string, params []any, sel query.Projection) (query.Record, error) {
	recs, err := t.queryRecords(ctx, stmt, params)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	recs = recs[:1]
	if err = t.loadRelations(ctx, recs, sel); err != nil {
		return nil, err
	}
	return project(recs[0], sel), nil
}

func (t *sqlTable) queryRecords(ctx context.Context, stmt string, params []any) ([]query.Record, error) {
	rows, err := t.q.QueryContext(ctx, stmt, params...)
	if err != nil {
		return nil, wrapDriverError(err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func returningClause(sel query.Projection) (string, error) {
	cols := selectColumns(sel)
	if len(cols) == 0 {
		return "RETURNING *", nil
	}
	if err := checkColumns(cols...); err != nil {
		return "", err
	}
	return "RETURNING " + strings.Join(cols, ", "), nil
}

// wrapDriverError attaches the store sentinel matching a driver error.
func wrapDriverError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return err
	case isConstraintViolation(err):
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case isUndefinedObject(err):
		return fmt.Errorf("%w: %w", query.ErrInvalidColumn, err)
	case isTransient(err):
		return fmt.Errorf("%w: %w: %w", ErrTransient, ErrExecutingQuery, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
