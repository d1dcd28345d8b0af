// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package store

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/wpleonesz/kick-off-v2/internal/entities"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/query"
)

// ModuleCache keeps the active flag of every feature module in memory. It
// implements [query.ModuleRegistry] so that audited mutations do not read
// base_module on every write. The cache loads itself on first use and is
// kept fresh by calling Refresh, typically from a scheduled worker.
type ModuleCache struct {
	store  query.Store
	logger *logger.Logger

	mu      sync.RWMutex
	modules map[string]bool
	loaded  bool
}

// NewModuleCache returns an empty cache reading base_module through store.
func NewModuleCache(store query.Store, log *logger.Logger) *ModuleCache {
	return &ModuleCache{
		store:   store,
		logger:  log,
		modules: make(map[string]bool),
	}
}

// Refresh reloads every module from the database.
func (c *ModuleCache) Refresh(ctx context.Context) error {
	log := logger.FromContextOr(ctx, c.logger)

	rows, err := entities.NewModuleData(c.store).
		Reset(query.ResetOptions{NoDefaultFilter: true}).
		ProjectSchema(query.ProjectionPublic).
		ListRecords(ctx)
	if err != nil {
		log.Err(err).Str("func", "ModuleCache.Refresh").Msg("failed to load modules")
		return fmt.Errorf("error refreshing module cache: %w", err)
	}

	modules := make(map[string]bool, len(rows))
	for _, r := range rows {
		code, _ := r["code"].(string)
		active, _ := r["active"].(bool)
		modules[code] = active
	}

	c.mu.Lock()
	c.modules = modules
	c.loaded = true
	c.mu.Unlock()

	log.Debug().Str("func", "ModuleCache.Refresh").Int("modules", len(modules)).Msg("module cache refreshed")
	return nil
}

// IsModuleActive implements [query.ModuleRegistry]. Unknown modules are
// reported as inactive.
func (c *ModuleCache) IsModuleActive(ctx context.Context, code string) (bool, error) {
	c.mu.RLock()
	loaded := c.loaded
	active := c.modules[code]
	c.mu.RUnlock()

	if loaded {
		return active, nil
	}

	if err := c.Refresh(ctx); err != nil {
		return false, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.modules[code], nil
}

// Set overrides the cached flag of a module after it was changed in the
// database by this process.
func (c *ModuleCache) Set(code string, active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modules[code] = active
}

// Snapshot returns a copy of the cached module flags.
func (c *ModuleCache) Snapshot() map[string]bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.modules)
}
