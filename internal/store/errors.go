// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package store

import "errors"

// Sentinel errors returned by the store to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// Row-level conditions (not found, uniqueness) use the sentinels of the
// query package so that builder callers match a single set of errors.
var (
	// ErrUnsupportedDriver is returned by [Open] for drivers other than
	// pgx and sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrConstraintViolation is returned when a write breaks a unique,
	// foreign-key, not-null or check constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrModuleNotFound is returned when a feature module code is not
	// registered in base_module.
	ErrModuleNotFound = errors.New("module not found")

	// ErrTransient is attached to driver errors classified as [Retryable].
	ErrTransient = errors.New("transient database error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingValue is returned when a map or slice value cannot be
	// encoded as JSON before being written.
	ErrEncodingValue = errors.New("failed to encode value")
)
