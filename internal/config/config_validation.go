// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package config

import (
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants of the HTTP server before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.validateStorage(); err != nil {
		return err
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts cannot be negative", ErrInvalidServerConfigs)
	}

	if cfg.Audit.RetentionDays < 0 {
		return fmt.Errorf("%w: retention days cannot be negative", ErrInvalidAuditConfigs)
	}

	return nil
}

// validateStorage checks the database settings only.
func (cfg *StructuredConfig) validateStorage() error {
	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	switch db.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}
	if db.MaxOpenConns < 0 || db.MaxIdleConns < 0 {
		return fmt.Errorf("%w: pool sizes cannot be negative", ErrInvalidStorageConfigs)
	}
	return nil
}
