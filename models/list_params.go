// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package models

// SortField is a single ordering clause requested by a client.
type SortField struct {
	Column     string
	Descending bool
}

// ListParams carries the paging, ordering and filtering options a client can
// attach to a list request. Zero values mean "not requested".
type ListParams struct {
	// Take limits the number of returned rows.
	Take uint64

	// Skip skips the first rows of the result.
	Skip uint64

	// Cursor is the id of the row the page starts after.
	Cursor int64

	// Count asks for a {count, data} envelope instead of a bare list.
	Count bool

	// Select is the name of a projection schema (e.g. "public").
	Select string

	// OrderBy lists the requested ordering clauses.
	OrderBy []SortField

	// Where holds column equality conditions.
	Where map[string]any
}
