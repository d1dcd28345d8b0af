// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package store

import (
	"database/sql"
	"fmt"

	"github.com/wpleonesz/kick-off-v2/internal/query"
)

// scanRecords reads every row of rows into a record keyed by column name.
// Text returned as bytes is converted to string.
func scanRecords(rows *sql.Rows) ([]query.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	results := make([]query.Record, 0, 16)
	for rows.Next() {
		values := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}

		if scanErr := rows.Scan(dest...); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		rec := make(query.Record, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				rec[col] = string(b)
				continue
			}
			rec[col] = values[i]
		}
		results = append(results, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return results, nil
}

// project keeps the columns and relations selected by sel. A zero
// projection keeps everything.
func project(rec query.Record, sel query.Projection) query.Record {
	if rec == nil || sel.IsZero() {
		return rec
	}
	out := make(query.Record, len(sel.Columns)+len(sel.Relations))
	for _, c := range sel.Columns {
		if v, ok := rec[c]; ok {
			out[c] = v
		}
	}
	for _, rel := range sel.Relations {
		out[rel.Name] = rec[rel.Name]
	}
	return out
}

func projectAll(recs []query.Record, sel query.Projection) []query.Record {
	for i, rec := range recs {
		recs[i] = project(rec, sel)
	}
	return recs
}
