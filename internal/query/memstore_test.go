// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package query_test

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/models"
)

// memStore is an in-memory query.Store that also acts as module registry
// and audit sink.
type memStore struct {
	tables   map[string]*memTable
	modules  map[string]bool
	audits   []models.AuditLog
	auditErr error
	inTx     bool
}

func newMemStore() *memStore {
	return &memStore{
		tables:  map[string]*memTable{},
		modules: map[string]bool{},
	}
}

func (s *memStore) Table(name string) query.Table {
	t, ok := s.tables[name]
	if !ok {
		t = &memTable{}
		s.tables[name] = t
	}
	return t
}

func (s *memStore) table(name string) *memTable {
	return s.Table(name).(*memTable)
}

func (s *memStore) IsModuleActive(_ context.Context, code string) (bool, error) {
	return s.modules[code], nil
}

func (s *memStore) WriteAudit(_ context.Context, entry models.AuditLog) error {
	if s.auditErr != nil {
		return s.auditErr
	}
	entry.ID = int64(len(s.audits) + 1)
	s.audits = append(s.audits, entry)
	return nil
}

func (s *memStore) InTransaction() bool {
	return s.inTx
}

// memTable keeps rows in insertion order and evaluates filters the way the
// SQL table does.
type memTable struct {
	rows   []query.Record
	nextID int64

	finds   []query.FindArgs
	counts  []query.Filter
	updates []query.UpdateArgs
	creates []query.CreateArgs
}

func (t *memTable) seed(rows ...query.Record) {
	for _, r := range rows {
		row := query.Record{}
		for k, v := range r {
			row[k] = v
		}
		if row.ID() == 0 {
			t.nextID++
			row["id"] = t.nextID
		} else if row.ID() > t.nextID {
			t.nextID = row.ID()
		}
		t.rows = append(t.rows, row)
	}
}

func (t *memTable) FindMany(_ context.Context, args query.FindArgs) ([]query.Record, error) {
	t.finds = append(t.finds, args)

	matched := t.match(args.Where)
	orders := args.OrderBy
	if !slices.ContainsFunc(orders, func(o query.Order) bool { return o.Column == "id" }) {
		orders = append(slices.Clone(orders), query.Asc("id"))
	}
	cmp := func(a, b query.Record) int {
		for _, o := range orders {
			c := compare(a[o.Column], b[o.Column])
			if o.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	}
	if len(args.OrderBy) > 0 || args.Cursor != 0 {
		slices.SortStableFunc(matched, cmp)
	}

	if args.Cursor != 0 {
		// The cursor row is looked up unfiltered, like the SQL subquery.
		i := slices.IndexFunc(t.rows, func(r query.Record) bool { return r.ID() == args.Cursor })
		if i < 0 {
			return []query.Record{}, nil
		}
		at := t.rows[i]
		matched = slices.DeleteFunc(matched, func(r query.Record) bool { return cmp(r, at) <= 0 })
	}
	if args.Skip > 0 {
		if args.Skip >= uint64(len(matched)) {
			matched = nil
		} else {
			matched = matched[args.Skip:]
		}
	}
	if args.Take > 0 && args.Take < uint64(len(matched)) {
		matched = matched[:args.Take]
	}

	out := make([]query.Record, 0, len(matched))
	for _, r := range matched {
		out = append(out, project(r, args.Select))
	}
	return out, nil
}

func (t *memTable) FindFirst(ctx context.Context, args query.FindArgs) (query.Record, error) {
	args.Take = 1
	rows, err := t.FindMany(ctx, args)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (t *memTable) FindUnique(_ context.Context, args query.FindArgs) (query.Record, error) {
	t.finds = append(t.finds, args)
	matched := t.match(args.Where)
	switch len(matched) {
	case 0:
		return nil, nil
	case 1:
		return project(matched[0], args.Select), nil
	default:
		return nil, query.ErrUniquenessViolation
	}
}

func (t *memTable) Count(_ context.Context, where query.Filter) (int64, error) {
	t.counts = append(t.counts, where)
	return int64(len(t.match(where))), nil
}

func (t *memTable) Create(_ context.Context, args query.CreateArgs) (query.Record, error) {
	t.creates = append(t.creates, args)
	t.seed(args.Data)
	return project(t.rows[len(t.rows)-1], args.Select), nil
}

func (t *memTable) Update(_ context.Context, args query.UpdateArgs) (query.Record, error) {
	t.updates = append(t.updates, args)
	matched := t.match(args.Where)
	if len(matched) == 0 {
		return nil, query.ErrNotFound
	}
	for k, v := range args.Data {
		matched[0][k] = v
	}
	return project(matched[0], args.Select), nil
}

func (t *memTable) Upsert(ctx context.Context, args query.UpsertArgs) (query.Record, error) {
	matched := t.match(args.Where)
	switch len(matched) {
	case 0:
		return t.Create(ctx, query.CreateArgs{Select: args.Select, Data: args.Create})
	case 1:
		return t.Update(ctx, query.UpdateArgs{
			Where:  query.Filter{"id": matched[0].ID()},
			Select: args.Select,
			Data:   args.Update,
		})
	default:
		return nil, query.ErrUniquenessViolation
	}
}

// match returns the live rows satisfying where.
func (t *memTable) match(where query.Filter) []query.Record {
	var out []query.Record
	for _, r := range t.rows {
		if matches(r, where) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r query.Record, where query.Filter) bool {
	for col, want := range where {
		got := r[col]
		switch w := want.(type) {
		case nil:
			if got != nil {
				return false
			}
		case query.Cond:
			c := compare(got, w.Value)
			ok := false
			switch w.Op {
			case query.OpNotEq:
				ok = c != 0
			case query.OpGt:
				ok = c > 0
			case query.OpGte:
				ok = c >= 0
			case query.OpLt:
				ok = c < 0
			case query.OpLte:
				ok = c <= 0
			case query.OpLike:
				ok = strings.Contains(fmt.Sprint(got), strings.Trim(fmt.Sprint(w.Value), "%"))
			}
			if !ok {
				return false
			}
		default:
			v := reflect.ValueOf(want)
			if v.Kind() == reflect.Slice {
				found := false
				for i := range v.Len() {
					if compare(got, v.Index(i).Interface()) == 0 {
						found = true
						break
					}
				}
				if !found {
					return false
				}
				continue
			}
			if compare(got, want) != 0 {
				return false
			}
		}
	}
	return true
}

func project(r query.Record, sel query.Projection) query.Record {
	if len(sel.Columns) == 0 {
		return r
	}
	out := query.Record{}
	for _, c := range sel.Columns {
		if v, ok := r[c]; ok {
			out[c] = v
		}
	}
	return out
}

func compare(a, b any) int {
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			return cmp.Compare(fa, fb)
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			if ba == bb {
				return 0
			}
			if !ba {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

var errBoom = errors.New("boom")
