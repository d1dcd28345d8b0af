// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/wpleonesz/kick-off-v2/internal/query"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// checkColumns rejects names that cannot be used as bare SQL identifiers.
// Column names are interpolated into statements, so this is the only
// barrier between request input and the SQL text.
func checkColumns(cols ...string) error {
	for _, c := range cols {
		if !identifierPattern.MatchString(c) {
			return fmt.Errorf("%w: %q", query.ErrInvalidColumn, c)
		}
	}
	return nil
}

func checkTable(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", query.ErrUnknownTable, name)
	}
	return nil
}

// whereClause translates a filter into a conjunction of squirrel
// predicates, keyed in sorted column order so that generated SQL is stable.
func whereClause(f query.Filter) (sq.And, error) {
	and := make(sq.And, 0, len(f))
	for _, col := range f.Keys() {
		if err := checkColumns(col); err != nil {
			return nil, err
		}

		switch v := f[col].(type) {
		case nil:
			and = append(and, sq.Eq{col: nil})
		case query.Cond:
			pred, err := condition(col, v)
			if err != nil {
				return nil, err
			}
			and = append(and, pred)
		default:
			and = append(and, sq.Eq{col: v})
		}
	}
	return and, nil
}

func condition(col string, c query.Cond) (sq.Sqlizer, error) {
	switch c.Op {
	case query.OpNotEq:
		return sq.NotEq{col: c.Value}, nil
	case query.OpGt:
		return sq.Gt{col: c.Value}, nil
	case query.OpGte:
		return sq.GtOrEq{col: c.Value}, nil
	case query.OpLt:
		return sq.Lt{col: c.Value}, nil
	case query.OpLte:
		return sq.LtOrEq{col: c.Value}, nil
	case query.OpLike:
		return sq.Like{col: c.Value}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported operator %q on %q", ErrBuildingSQLQuery, c.Op, col)
	}
}

// orderClauses renders ORDER BY items. With tiebreak set, id is appended in
// the direction of the other clauses so that the order is total.
func orderClauses(orders []query.Order, tiebreak bool) ([]string, error) {
	out := make([]string, 0, len(orders)+1)
	hasID := false
	desc := false
	for _, o := range orders {
		if err := checkColumns(o.Column); err != nil {
			return nil, err
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
			desc = true
		}
		if o.Column == "id" {
			hasID = true
		}
		out = append(out, o.Column+" "+dir)
	}
	if tiebreak && !hasID {
		if desc {
			out = append(out, "id DESC")
		} else {
			out = append(out, "id ASC")
		}
	}
	return out, nil
}

// cursorCondition selects the rows strictly after the cursor row in the
// given ordering. It compares row values against a subquery that reads the
// ordering columns of the cursor row, unfiltered, so a soft-deleted cursor
// row still anchors the page. A missing cursor row yields no rows.
func cursorCondition(table string, orders []query.Order, cursor int64) (sq.Sqlizer, error) {
	cols := make([]string, 0, len(orders)+1)
	desc := false
	for i, o := range orders {
		if i > 0 && o.Desc != desc {
			return nil, fmt.Errorf("%w: mixed ordering directions", query.ErrUnsupportedCursor)
		}
		desc = o.Desc
		if err := checkColumns(o.Column); err != nil {
			return nil, err
		}
		if o.Column != "id" {
			cols = append(cols, o.Column)
		}
	}
	cols = append(cols, "id")

	op := ">"
	if desc {
		op = "<"
	}
	list := strings.Join(cols, ", ")
	return sq.Expr(fmt.Sprintf("(%s) %s (SELECT %s FROM %s WHERE id = ?)", list, op, list, table), cursor), nil
}

// selectColumns returns the columns to read for a projection: its own
// columns plus the keys its relations are joined on.
func selectColumns(sel query.Projection) []string {
	cols := make([]string, 0, len(sel.Columns)+len(sel.Relations))
	seen := make(map[string]bool, cap(cols))
	add := func(c string) {
		if !seen[c] {
			seen[c] = true
			cols = append(cols, c)
		}
	}
	for _, c := range sel.Columns {
		add(c)
	}
	for _, rel := range sel.Relations {
		switch rel.Kind {
		case query.BelongsTo:
			add(rel.Key)
		case query.HasMany:
			add("id")
		}
	}
	return cols
}

// encodeValues prepares a record for writing: maps, slices and structs are
// stored as JSON text, other values are passed to the driver unchanged.
func encodeValues(data query.Record) (map[string]any, error) {
	out := make(map[string]any, len(data))
	for col, v := range data {
		if err := checkColumns(col); err != nil {
			return nil, err
		}
		enc, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q: %w", ErrEncodingValue, col, err)
		}
		out[col] = enc
	}
	return out, nil
}

func encodeValue(v any) (any, error) {
	switch v.(type) {
	case nil, []byte, time.Time, driver.Valuer:
		return v, nil
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(raw), nil
	default:
		return v, nil
	}
}
