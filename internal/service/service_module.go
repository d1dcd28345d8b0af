// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package service

import (
	"context"
	"fmt"

	"github.com/wpleonesz/kick-off-v2/internal/entities"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/models"
)

type moduleService struct {
	db    Database
	cache ModuleCache
	opts  []query.Option
}

// NewModuleService returns the service switching feature modules. cache may
// be nil when the process keeps no module cache.
func NewModuleService(db Database, cache ModuleCache, opts ...query.Option) ModuleService {
	return &moduleService{db: db, cache: cache, opts: opts}
}

func (s *moduleService) Activate(ctx context.Context, code string) error {
	return s.setActive(ctx, code, true)
}

func (s *moduleService) Deactivate(ctx context.Context, code string) error {
	return s.setActive(ctx, code, false)
}

func (s *moduleService) setActive(ctx context.Context, code string, active bool) error {
	log := logger.FromContext(ctx)

	// The registry holds inactive modules too.
	b := entities.NewModuleData(s.db, s.opts...)
	rec, err := b.Reset(query.ResetOptions{NoDefaultFilter: true}).
		Filter(query.Filter{"code": code}).
		First(ctx)
	if err != nil {
		log.Err(err).Str("func", "moduleService.setActive").Str("module", code).Msg("module lookup failed")
		return err
	}
	if rec == nil {
		return fmt.Errorf("%w: %q", ErrUnknownModule, code)
	}

	if _, err = b.ByID(rec.ID()).Update(ctx, query.Record{"active": active}); err != nil {
		log.Err(err).Str("func", "moduleService.setActive").Str("module", code).Msg("module update failed")
		return err
	}

	if s.cache != nil {
		s.cache.Set(code, active)
	}
	log.Info().Str("func", "moduleService.setActive").Str("module", code).Bool("active", active).Msg("module switched")
	return nil
}

// Seed creates the default modules and roles in one transaction. Existing
// rows get their descriptive columns refreshed; their active flag is kept.
func (s *moduleService) Seed(ctx context.Context) error {
	log := logger.FromContext(ctx)

	err := s.db.InTx(ctx, func(tx query.Store) error {
		modules := entities.NewModuleData(tx, s.opts...)
		for _, m := range models.DefaultModules {
			update := m.ToRecord()
			delete(update, "active")
			if _, err := modules.Filter(query.Filter{"code": m.Code}).Upsert(ctx, m.ToRecord(), update); err != nil {
				return fmt.Errorf("seeding module %q: %w", m.Code, err)
			}
		}

		roles := entities.NewRoleData(tx, s.opts...)
		for _, r := range models.DefaultRoles {
			if _, err := roles.Filter(query.Filter{"code": r.Code}).Upsert(ctx, r.ToRecord(), query.Record{"name": r.Name}); err != nil {
				return fmt.Errorf("seeding role %q: %w", r.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "moduleService.Seed").Msg("seeding failed")
		return err
	}

	if s.cache != nil {
		if err = s.cache.Refresh(ctx); err != nil {
			return err
		}
	}
	log.Info().Str("func", "moduleService.Seed").
		Int("modules", len(models.DefaultModules)).
		Int("roles", len(models.DefaultRoles)).
		Msg("defaults seeded")
	return nil
}
