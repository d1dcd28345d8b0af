// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/service"
	"github.com/wpleonesz/kick-off-v2/internal/store"
	"github.com/wpleonesz/kick-off-v2/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "kickoff-admin",
	Short:         "Maintenance commands for the kick-off database",
	Version:       models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "JSON or YAML config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every statement")

	rootCmd.AddCommand(migrateCmd, seedCmd, moduleCmd, auditCmd)
}

// env is what every subcommand works with.
type env struct {
	cfg      *config.StructuredConfig
	storages *store.Storages
	services *service.Services
	logger   *logger.Logger
}

// loadConfig reads the environment and the --config file.
func loadConfig() (*config.StructuredConfig, error) {
	if cfgFile != "" {
		if err := os.Setenv("CONFIG", cfgFile); err != nil {
			return nil, err
		}
	}
	return config.GetStructuredConfigFromEnv()
}

// openEnv connects to the database. Migrations are applied only when
// migrate is true.
func openEnv(ctx context.Context, migrate bool) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	cfg.Storage.DB.SkipMigrations = !migrate

	log := logger.Nop()
	if verbose {
		log = logger.NewLogger("kickoff-admin")
	}
	ctx = log.WithContext(ctx)

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}
	if err = storages.Modules.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("module registry not loaded")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, *cfg, build, nil, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	return &env{cfg: cfg, storages: storages, services: services, logger: log}, nil
}

func (e *env) Close() {
	if err := e.storages.Close(); err != nil {
		e.logger.Err(err).Msg("error closing storages")
	}
}
