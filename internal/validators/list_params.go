// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package validators

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/wpleonesz/kick-off-v2/models"
)

// Query-string keys understood by [ParseListParams].
const (
	ParamTake    = "take"
	ParamSkip    = "skip"
	ParamCursor  = "cursor"
	ParamCount   = "count"
	ParamSelect  = "select"
	ParamOrderBy = "orderBy"
	ParamWhere   = "where"
)

// ParseListParams reads paging, ordering and filtering options from a query
// string.
//
// orderBy is a comma-separated list of columns. A column is sorted
// descending when it carries a "-" prefix or a ":desc" suffix. where is a
// JSON object of column equality conditions.
func ParseListParams(values url.Values) (models.ListParams, error) {
	var (
		p   models.ListParams
		err error
	)

	if p.Take, err = parseUint(values, ParamTake); err != nil {
		return models.ListParams{}, err
	}
	if p.Skip, err = parseUint(values, ParamSkip); err != nil {
		return models.ListParams{}, err
	}
	if raw := values.Get(ParamCursor); raw != "" {
		p.Cursor, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || p.Cursor <= 0 {
			return models.ListParams{}, fmt.Errorf("%w: cursor must be a positive id", ErrInvalidListParams)
		}
	}
	if raw := values.Get(ParamCount); raw != "" {
		if p.Count, err = strconv.ParseBool(raw); err != nil {
			return models.ListParams{}, fmt.Errorf("%w: count must be a boolean", ErrInvalidListParams)
		}
	}

	p.Select = strings.TrimSpace(values.Get(ParamSelect))

	for _, part := range strings.Split(values.Get(ParamOrderBy), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		field := models.SortField{Column: part}
		switch {
		case strings.HasPrefix(part, "-"):
			field = models.SortField{Column: part[1:], Descending: true}
		case strings.HasSuffix(strings.ToLower(part), ":desc"):
			field = models.SortField{Column: part[:len(part)-len(":desc")], Descending: true}
		case strings.HasSuffix(strings.ToLower(part), ":asc"):
			field = models.SortField{Column: part[:len(part)-len(":asc")]}
		}
		if field.Column == "" {
			return models.ListParams{}, fmt.Errorf("%w: empty orderBy column", ErrInvalidListParams)
		}
		p.OrderBy = append(p.OrderBy, field)
	}

	if raw := values.Get(ParamWhere); raw != "" {
		if p.Where, err = parseWhere(raw); err != nil {
			return models.ListParams{}, err
		}
	}

	return p, nil
}

// parseWhere decodes a JSON object of conditions. Integral numbers become
// int64 so that they compare against integer columns.
func parseWhere(raw string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var where map[string]any
	if err := dec.Decode(&where); err != nil {
		return nil, fmt.Errorf("%w: where must be a JSON object: %w", ErrInvalidListParams, err)
	}
	for k, v := range where {
		where[k] = normalizeNumber(v)
	}
	return where, nil
}

func normalizeNumber(v any) any {
	switch value := v.(type) {
	case json.Number:
		if n, err := value.Int64(); err == nil {
			return n
		}
		f, _ := value.Float64()
		return f
	case []any:
		for i := range value {
			value[i] = normalizeNumber(value[i])
		}
		return value
	default:
		return v
	}
}

func parseUint(values url.Values, key string) (uint64, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidListParams, key)
	}
	return n, nil
}
