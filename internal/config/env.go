// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// databaseURLVar is the DSN variable set by most hosting platforms. It is
// read only when STORAGE_DB_DATABASE_URI is absent.
const databaseURLVar = "DATABASE_URL"

// driverAliases maps the spellings accepted in STORAGE_DB_DRIVER to the
// registered database/sql driver names.
var driverAliases = map[string]string{
	"postgres":   DriverPostgres,
	"postgresql": DriverPostgres,
	"pgx":        DriverPostgres,
	"sqlite":     DriverSQLite,
	"sqlite3":    DriverSQLite,
}

// parseEnv reads a [StructuredConfig] from environ, given in the
// "KEY=value" form of [os.Environ]. Fields map through their `env` and
// `envPrefix` tags.
//
// Storage settings get two extras: DATABASE_URL stands in for a missing
// STORAGE_DB_DATABASE_URI, and the driver name is normalised through
// driverAliases so "postgres" selects pgx. An unknown driver is kept as is
// and rejected later by validation.
func parseEnv(environ []string) (*StructuredConfig, error) {
	vars := env.ToMap(environ)

	cfg := &StructuredConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	db := &cfg.Storage.DB
	if db.DSN == "" {
		db.DSN = vars[databaseURLVar]
	}
	if driver, ok := driverAliases[strings.ToLower(strings.TrimSpace(db.Driver))]; ok {
		db.Driver = driver
	}

	return cfg, nil
}
