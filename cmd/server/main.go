// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

// Command server runs the kick-off REST API.
package main

import (
	"context"
	"fmt"

	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/handler"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/metrics"
	"github.com/wpleonesz/kick-off-v2/internal/server"
	"github.com/wpleonesz/kick-off-v2/internal/service"
	"github.com/wpleonesz/kick-off-v2/internal/store"
	"github.com/wpleonesz/kick-off-v2/internal/workers"
	"github.com/wpleonesz/kick-off-v2/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build: %s\n", build)

	log := logger.NewLogger("kickoff-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	if err = storages.Modules.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("module registry not loaded, every module counts as inactive until the next refresh")
	}

	collector := metrics.NewCollector(cfg.Metrics, nil)

	services, err := service.NewServices(storages, *cfg, build, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, collector, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs := workers.NewWorkers(collector, log,
		workers.NewAuditPruner(storages.DB, cfg.Audit, collector),
		workers.NewModuleRefresher(storages.Modules, cfg.Audit),
	)
	if err = jobs.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("error starting workers")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	cancel()
	jobs.Stop()
}
