// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package service

import (
	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/entities"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/internal/store"
	"github.com/wpleonesz/kick-off-v2/internal/validators"
	"github.com/wpleonesz/kick-off-v2/models"
)

type Services struct {
	AuthService          AuthService
	CourtService         RecordService
	CourtScheduleService RecordService
	PublicService        PublicService
	ModuleService        ModuleService
	AppInfoService       AppInfoService
}

// NewServices wires the services to the storages. Builders consult the
// module cache before auditing and report to observer when it is not nil.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, observer query.Observer, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	opts := []query.Option{query.WithModuleRegistry(storages.Modules)}
	if observer != nil {
		opts = append(opts, query.WithObserver(observer))
	}

	return &Services{
		AuthService: NewAuthService(storages.DB, cfg.App, logger, opts...),
		CourtService: NewRecordService(entities.Courts, storages.DB, validators.NewCourtValidator(), opts,
			WithOwnerColumn("user_id")),
		CourtScheduleService: NewRecordService(entities.CourtSchedules, storages.DB, validators.NewCourtScheduleValidator(), opts,
			WithCoupledFields(validators.FieldStartTime, validators.FieldEndTime)),
		PublicService:        NewPublicService(storages.DB, opts...),
		ModuleService:        NewModuleService(storages.DB, storages.Modules, opts...),
		AppInfoService:       appInfoService,
	}, nil
}
