// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package handler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/metrics"
	"github.com/wpleonesz/kick-off-v2/internal/service"
)

func newTestCollector() *metrics.Collector {
	return metrics.NewCollector(config.Metrics{}, prometheus.NewRegistry())
}

func TestNewHandlers_HTTP(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, newTestCollector(), config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, newTestCollector(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h1, err1 := NewHandlers(&service.Services{}, newTestCollector(), cfg, logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, newTestCollector(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
