// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package handler

import (
	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/handler/http"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/metrics"
	"github.com/wpleonesz/kick-off-v2/internal/service"
)

// Handlers groups the transport handlers served by the application.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, collector *metrics.Collector, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, collector, cfg, logger),
	}, nil
}
