// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/metrics"
	"github.com/wpleonesz/kick-off-v2/internal/service"
	"github.com/wpleonesz/kick-off-v2/internal/utils"
)

// idGenerator produces request trace identifiers.
type idGenerator interface {
	Generate() string
}

// Handler serves the REST API on top of the service layer.
type Handler struct {
	services *service.Services
	metrics  *metrics.Collector
	cfg      config.Server
	traceIDs idGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, collector *metrics.Collector, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  collector,
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
