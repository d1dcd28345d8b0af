// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package query

import "errors"

var (
	// ErrUniquenessViolation is returned when a query that must match at most
	// one row matches several.
	ErrUniquenessViolation = errors.New("query matched more than one record")

	// ErrPreconditionFailed is returned by Update and Upsert when no filter
	// (or, for Update, no id) was set beforehand.
	ErrPreconditionFailed = errors.New("mutation requires a record filter")

	// ErrNotFound is returned by stores when the row targeted by an update
	// does not exist. Reads report absent rows as a nil Record instead.
	ErrNotFound = errors.New("record not found")

	// ErrEmptyData is returned when a mutation is given no columns to write.
	ErrEmptyData = errors.New("no data to write")

	// ErrBuilderBusy is returned when a terminal operation is started while
	// another one is still running on the same builder. Configuration calls
	// made in that state panic with it.
	ErrBuilderBusy = errors.New("query builder is already executing")

	// ErrUnknownTable is returned for entities without a table and by stores
	// asked for a table name that is not a plain SQL identifier.
	ErrUnknownTable = errors.New("unknown table")

	// ErrAuditFailed wraps failures to record an audit entry.
	ErrAuditFailed = errors.New("audit entry could not be written")

	// ErrNoStore is returned by terminal operations of a builder that has no
	// store bound.
	ErrNoStore = errors.New("query builder has no store bound")

	// ErrInvalidColumn is returned by stores for column names that are not
	// plain SQL identifiers.
	ErrInvalidColumn = errors.New("invalid column name")

	// ErrUnsupportedCursor is returned by stores for cursor pagination over
	// an ordering that mixes ascending and descending columns.
	ErrUnsupportedCursor = errors.New("cursor pagination needs a single sort direction")
)
