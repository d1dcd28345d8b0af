// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

// Package migrations embeds the database schema of every supported engine
// and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// migration sets by database/sql driver name.
var dirs = map[string]struct {
	dialect goose.Dialect
	dir     string
}{
	"pgx":     {dialect: goose.DialectPostgres, dir: "postgres"},
	"sqlite3": {dialect: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies every pending migration of the set matching driver.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	set, ok := dirs[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(string(set.dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, set.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version returns the current schema version of db.
func Version(db *sql.DB, driver string) (int64, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}
	set, ok := dirs[driver]
	if !ok {
		return 0, fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(string(set.dialect)); err != nil {
		return 0, fmt.Errorf("migration error setting dialect for db: %w", err)
	}
	v, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("migration error reading version: %w", err)
	}
	return v, nil
}
