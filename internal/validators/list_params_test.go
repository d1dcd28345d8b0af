// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package validators

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpleonesz/kick-off-v2/models"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.ListParams
	}{
		{name: "empty", query: "", want: models.ListParams{}},
		{
			name:  "paging",
			query: "take=10&skip=20&count=true",
			want:  models.ListParams{Take: 10, Skip: 20, Count: true},
		},
		{
			name:  "cursor and select",
			query: "cursor=7&select=public",
			want:  models.ListParams{Cursor: 7, Select: "public"},
		},
		{
			name:  "ordering",
			query: "orderBy=-created_at,name,id:desc,day_of_week:asc",
			want: models.ListParams{OrderBy: []models.SortField{
				{Column: "created_at", Descending: true},
				{Column: "name"},
				{Column: "id", Descending: true},
				{Column: "day_of_week"},
			}},
		},
		{
			name:  "where",
			query: "where=" + url.QueryEscape(`{"court_id": 3, "active": true, "latitude": -0.5, "day_of_week": [1, 2], "end_time": null}`),
			want: models.ListParams{Where: map[string]any{
				"court_id":    int64(3),
				"active":      true,
				"latitude":    -0.5,
				"day_of_week": []any{int64(1), int64(2)},
				"end_time":    nil,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := ParseListParams(values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListParams_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "negative take", query: "take=-1"},
		{name: "text skip", query: "skip=abc"},
		{name: "zero cursor", query: "cursor=0"},
		{name: "bad count", query: "count=maybe"},
		{name: "empty order column", query: "orderBy=-"},
		{name: "where not json", query: "where=active"},
		{name: "where not object", query: "where=" + url.QueryEscape(`[1,2]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = ParseListParams(values)
			assert.ErrorIs(t, err, ErrInvalidListParams)
		})
	}
}
