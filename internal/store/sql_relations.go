// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package store

import (
	"context"
	"fmt"

	"github.com/wpleonesz/kick-off-v2/internal/query"
)

// loadRelations fills the relations of sel into parents with one query per
// relation and nesting level.
func (t *sqlTable) loadRelations(ctx context.Context, parents []query.Record, sel query.Projection) error {
	if len(parents) == 0 {
		return nil
	}

	for _, rel := range sel.Relations {
		if err := checkTable(rel.Table); err != nil {
			return err
		}
		related := &sqlTable{executor: t.executor, name: rel.Table}

		var err error
		switch rel.Kind {
		case query.BelongsTo:
			err = related.attachOne(ctx, parents, rel)
		case query.HasMany:
			err = related.attachMany(ctx, parents, rel)
		default:
			err = fmt.Errorf("%w: unknown relation kind %d", ErrBuildingSQLQuery, rel.Kind)
		}
		if err != nil {
			return fmt.Errorf("loading relation %q: %w", rel.Name, err)
		}
	}
	return nil
}

// attachOne sets parent[rel.Name] to the related row whose id is stored in
// parent[rel.Key], or nil.
func (t *sqlTable) attachOne(ctx context.Context, parents []query.Record, rel query.Relation) error {
	ids := distinctValues(parents, rel.Key)

	byID := make(map[string]query.Record, len(ids))
	if len(ids) > 0 {
		rows, err := t.FindMany(ctx, query.FindArgs{
			Where:  query.Filter{"id": ids},
			Select: rel.Select.Extend("id"),
		})
		if err != nil {
			return err
		}
		for _, r := range rows {
			byID[relationKey(r["id"])] = project(r, rel.Select)
		}
	}

	for _, p := range parents {
		r, ok := byID[relationKey(p[rel.Key])]
		if !ok || p[rel.Key] == nil {
			p[rel.Name] = nil
			continue
		}
		p[rel.Name] = r
	}
	return nil
}

// attachMany sets parent[rel.Name] to the related rows whose rel.Key column
// holds the parent id, ordered by id. Parents without related rows get an
// empty slice.
func (t *sqlTable) attachMany(ctx context.Context, parents []query.Record, rel query.Relation) error {
	ids := distinctValues(parents, "id")

	groups := make(map[string][]query.Record, len(ids))
	if len(ids) > 0 {
		rows, err := t.FindMany(ctx, query.FindArgs{
			Where:   query.Filter{rel.Key: ids},
			Select:  rel.Select.Extend(rel.Key),
			OrderBy: []query.Order{query.Asc("id")},
		})
		if err != nil {
			return err
		}
		for _, r := range rows {
			k := relationKey(r[rel.Key])
			groups[k] = append(groups[k], project(r, rel.Select))
		}
	}

	for _, p := range parents {
		children := groups[relationKey(p["id"])]
		if children == nil {
			children = []query.Record{}
		}
		p[rel.Name] = children
	}
	return nil
}

func distinctValues(recs []query.Record, col string) []any {
	seen := make(map[string]bool, len(recs))
	out := make([]any, 0, len(recs))
	for _, r := range recs {
		v := r[col]
		if v == nil {
			continue
		}
		k := relationKey(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}

// relationKey normalises join keys so that ids read as different integer
// types still match.
func relationKey(v any) string {
	return fmt.Sprint(v)
}
