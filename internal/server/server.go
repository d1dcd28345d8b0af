// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/handler"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until ctx is cancelled or SIGTERM, SIGINT or SIGQUIT is
// received, then drains in-flight requests. A listener failure is returned
// immediately.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
		errCh <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		if err := s.Shutdown(); err != nil {
			return err
		}
		s.logger.Info().Msg("server shut down gracefully")
		return nil
	case err := <-errCh:
		s.logger.Err(err).Str("func", "server.RunServer").Msg("HTTP server stopped")
		return err
	}
}

func (s *server) Shutdown() error {
	return s.httpServer.Shutdown()
}
