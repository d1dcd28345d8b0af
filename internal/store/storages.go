// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package store

import (
	"context"
	"fmt"

	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
)

// Storages bundles the storage backends shared by the services.
type Storages struct {
	// DB is the connection pool. It is the default store of every builder.
	DB *DB

	// Modules caches the feature-module registry.
	Modules *ModuleCache
}

// NewStorages opens the database, applies migrations unless disabled and
// prepares the module cache.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if !cfg.SkipMigrations {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "store.NewStorages").Msg("failed to apply migrations")
			_ = db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		log.Info().Str("func", "store.NewStorages").Str("driver", db.Driver()).Msg("migrations applied")
	}

	return &Storages{
		DB:      db,
		Modules: NewModuleCache(db, log),
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
