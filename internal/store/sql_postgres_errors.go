// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/wpleonesz/kick-off-v2/internal/config"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It indicates whether a failed database operation should be retried or
// abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable
)

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func newErrorClassificator(driver string) ErrorClassificator {
	if driver == config.DriverSQLite {
		return SQLiteErrorClassifier{}
	}
	return NewPostgresErrorClassifier()
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to a [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [NonRetryable] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Retryable codes:
//   - Class 08: connection exceptions (08000, 08003, 08006)
//   - Class 40: transaction rollback, serialization failure, deadlock (40000, 40001, 40P01)
//   - Class 57: cannot connect now (57P03)
//
// Any other code is classified as [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08 - connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40 - transaction rollback
	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected:     // 40P01
		return Retryable

	// Class 57 - operator intervention
	case pgerrcode.CannotConnectNow: // 57P03
		return Retryable
	}

	return NonRetryable
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite, where
// only lock contention is transient.
type SQLiteErrorClassifier struct{}

// Classify implements [ErrorClassificator].
func (SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	switch sqliteError(err) {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	default:
		return NonRetryable
	}
}

// isConstraintViolation reports whether err is an integrity constraint
// violation raised by either supported engine.
func isConstraintViolation(err error) bool {
	if code := postgresError(err); code != "" {
		return pgerrcode.IsIntegrityConstraintViolation(code)
	}
	return sqliteError(err) == sqlite3.ErrConstraint
}

// isUndefinedObject reports whether err complains about an unknown table or
// column. Such errors stem from a bad projection rather than bad data.
func isUndefinedObject(err error) bool {
	switch postgresError(err) {
	case pgerrcode.UndefinedColumn, pgerrcode.UndefinedTable:
		return true
	}
	if sqliteError(err) == sqlite3.ErrError {
		msg := err.Error()
		return strings.Contains(msg, "no such column") || strings.Contains(msg, "no such table")
	}
	return false
}

// isTransient reports whether err is worth retrying on either engine.
func isTransient(err error) bool {
	return NewPostgresErrorClassifier().Classify(err) == Retryable ||
		SQLiteErrorClassifier{}.Classify(err) == Retryable
}
