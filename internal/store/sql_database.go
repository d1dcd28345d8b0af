// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/migrations"
)

// queryer is the part of *sql.DB and *sql.Tx the store runs statements on.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// dialect captures the differences between the supported SQL engines.
type dialect struct {
	driver      string
	placeholder sq.PlaceholderFormat

	// offsetNeedsLimit is set for engines that reject OFFSET without LIMIT.
	offsetNeedsLimit bool
}

var (
	postgresDialect = dialect{driver: config.DriverPostgres, placeholder: sq.Dollar}
	sqliteDialect   = dialect{driver: config.DriverSQLite, placeholder: sq.Question, offsetNeedsLimit: true}
)

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case config.DriverPostgres:
		return postgresDialect, nil
	case config.DriverSQLite:
		return sqliteDialect, nil
	default:
		return dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

func (d dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

// executor runs the store operations shared by [DB] and [Tx] against a
// connection pool or an open transaction.
type executor struct {
	q       queryer
	dialect dialect
	logger  *logger.Logger
}

func (e executor) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, e.logger)
}

// Table returns the [query.Table] for the named physical table.
func (e executor) Table(name string) query.Table {
	return &sqlTable{executor: e, name: name}
}

// DB is a pooled database connection. It implements [query.Store],
// [query.ModuleRegistry] and [query.AuditSink].
type DB struct {
	*sql.DB
	executor
	errorClassificator ErrorClassificator
}

// Open connects to the database described by cfg and verifies the connection.
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "store.Open").Str("driver", cfg.Driver).Msg("unsupported database driver")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// NewDB wraps an already opened connection. driver selects the SQL dialect.
func NewDB(conn *sql.DB, driver string, log *logger.Logger) (*DB, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	return &DB{
		DB:                 conn,
		executor:           executor{q: conn, dialect: d, logger: log},
		errorClassificator: newErrorClassificator(driver),
	}, nil
}

// Driver returns the database/sql driver name the connection was opened with.
func (db *DB) Driver() string {
	return db.dialect.driver
}

// InTransaction reports false: statements on a DB run on the pool.
func (db *DB) InTransaction() bool {
	return false
}

// Classify tells whether err, returned by one of the store operations,
// is worth retrying.
func (db *DB) Classify(err error) ErrorClassification {
	return db.errorClassificator.Classify(err)
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.driver)
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (db *DB) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	log := logger.FromContext(ctx)

	sqlTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.WithTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer sqlTx.Rollback()

	tx := &Tx{
		Tx:       sqlTx,
		executor: executor{q: sqlTx, dialect: db.dialect, logger: db.logger},
	}
	if err = fn(tx); err != nil {
		log.Debug().Err(err).Str("func", "DB.WithTx").Msg("rolling back transaction")
		return err
	}

	if commitErr := sqlTx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "DB.WithTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}
	return nil
}

// InTx is WithTx for callers that only need the transaction as a
// [query.Store].
func (db *DB) InTx(ctx context.Context, fn func(tx query.Store) error) error {
	return db.WithTx(ctx, func(tx *Tx) error { return fn(tx) })
}

// Tx is an open transaction. Builders bound to a Tx write their audit
// entries inside it.
type Tx struct {
	*sql.Tx
	executor
}

// InTransaction reports true.
func (tx *Tx) InTransaction() bool {
	return true
}
