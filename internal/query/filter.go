// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package query

import (
	"maps"
	"slices"
)

// Filter is a conjunction of column conditions.
//
// A plain value means equality, a slice means membership, nil means IS NULL
// and a [Cond] value applies its operator.
type Filter map[string]any

// Has reports whether the filter constrains col.
func (f Filter) Has(col string) bool {
	_, ok := f[col]
	return ok
}

// Merge returns a new filter holding the conditions of f overlaid with those
// of other. Conditions of other win on key collisions.
func (f Filter) Merge(other Filter) Filter {
	out := make(Filter, len(f)+len(other))
	maps.Copy(out, f)
	maps.Copy(out, other)
	return out
}

// Keys returns the constrained columns in sorted order.
func (f Filter) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// Op is a comparison operator usable in a [Cond].
type Op string

const (
	OpNotEq Op = "<>"
	OpGt    Op = ">"
	OpGte   Op = ">="
	OpLt    Op = "<"
	OpLte   Op = "<="
	OpLike  Op = "LIKE"
)

// Cond is a non-equality condition on a single column.
type Cond struct {
	Op    Op
	Value any
}

func Not(v any) Cond  { return Cond{Op: OpNotEq, Value: v} }
func Gt(v any) Cond   { return Cond{Op: OpGt, Value: v} }
func Gte(v any) Cond  { return Cond{Op: OpGte, Value: v} }
func Lt(v any) Cond   { return Cond{Op: OpLt, Value: v} }
func Lte(v any) Cond  { return Cond{Op: OpLte, Value: v} }
func Like(v any) Cond { return Cond{Op: OpLike, Value: v} }

// Order is a single ordering clause.
type Order struct {
	Column string
	Desc   bool
}

// Asc orders by col ascending.
func Asc(col string) Order { return Order{Column: col} }

// Desc orders by col descending.
func Desc(col string) Order { return Order{Column: col, Desc: true} }

// Record is a row returned by the store, keyed by column name. Relations are
// nested under their relation name as a Record (BelongsTo) or []Record (HasMany).
type Record map[string]any

// ID returns the "id" column of the record as an int64, or zero when the
// record has no integer id.
func (r Record) ID() int64 {
	return toInt64(r["id"])
}

// Page is the result of a counted list query.
type Page struct {
	Count int64    `json:"count"`
	Data  []Record `json:"data"`
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case uint64:
		return int64(n)
	case uint32:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
