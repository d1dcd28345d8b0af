// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/models"
)

func newTestCollector(t *testing.T, cfg config.Metrics) *Collector {
	t.Helper()
	if cfg.Namespace == "" {
		cfg.Namespace = "test"
	}
	return NewCollector(cfg, prometheus.NewRegistry())
}

func TestCollector_ImplementsObserver(t *testing.T) {
	var _ query.Observer = (*Collector)(nil)
}

func TestCollector_DefaultNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(config.Metrics{}, reg)
	c.ObserveOperation("courts", "list", time.Millisecond, nil)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
	for _, f := range families {
		assert.True(t, strings.HasPrefix(f.GetName(), "kickoff_"), f.GetName())
	}
}

func TestCollector_ObserveOperation(t *testing.T) {
	c := newTestCollector(t, config.Metrics{})

	c.ObserveOperation("courts", "list", 3*time.Millisecond, nil)
	c.ObserveOperation("courts", "list", 5*time.Millisecond, nil)
	c.ObserveOperation("courts", "update", time.Millisecond, errors.New("boom"))

	ops := c.queryMetrics.operationsTotal
	assert.Equal(t, 2.0, testutil.ToFloat64(ops.WithLabelValues("courts", "list", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("courts", "update", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.queryMetrics.operationDuration))
}

func TestCollector_ObserveAudit(t *testing.T) {
	c := newTestCollector(t, config.Metrics{})

	c.ObserveAudit("courts", models.AuditCreate, nil)
	c.ObserveAudit("users", models.AuditWrite, errors.New("sink down"))

	audit := c.queryMetrics.auditTotal
	assert.Equal(t, 1.0, testutil.ToFloat64(audit.WithLabelValues("courts", "create", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(audit.WithLabelValues("users", "write", "error")))
}

func TestCollector_ObserveRequest(t *testing.T) {
	c := newTestCollector(t, config.Metrics{})

	c.ObserveRequest(http.MethodGet, "/api/courts/{id}", http.StatusOK, 10*time.Millisecond)
	c.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	c.InFlight(1)
	c.InFlight(1)
	c.InFlight(-1)

	reqs := c.httpMetrics.requestsTotal
	assert.Equal(t, 1.0, testutil.ToFloat64(reqs.WithLabelValues("GET", "/api/courts/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reqs.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpMetrics.inFlight))
}

func TestCollector_Jobs(t *testing.T) {
	c := newTestCollector(t, config.Metrics{})

	c.ObserveJob("audit_pruner", time.Second, nil)
	c.ObserveJob("audit_pruner", time.Second, errors.New("x"))
	c.ObservePruned(5)
	c.ObservePruned(0)

	runs := c.jobMetrics.runsTotal
	assert.Equal(t, 1.0, testutil.ToFloat64(runs.WithLabelValues("audit_pruner", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(runs.WithLabelValues("audit_pruner", "error")))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.jobMetrics.auditPruned))
	assert.Positive(t, testutil.ToFloat64(c.jobMetrics.lastRun.WithLabelValues("audit_pruner")))
}

func TestCollector_Disabled(t *testing.T) {
	c := newTestCollector(t, config.Metrics{Disabled: true})
	assert.False(t, c.Enabled())

	c.ObserveOperation("courts", "list", time.Millisecond, nil)
	c.ObserveAudit("courts", models.AuditCreate, nil)
	c.ObserveRequest("GET", "/", 200, time.Millisecond)
	c.ObserveJob("x", time.Millisecond, nil)

	assert.Equal(t, 0, testutil.CollectAndCount(c.queryMetrics.operationsTotal))
	assert.Equal(t, 0, testutil.CollectAndCount(c.httpMetrics.requestsTotal))
	assert.Equal(t, 0, testutil.CollectAndCount(c.jobMetrics.runsTotal))
}

func TestCollector_Handler(t *testing.T) {
	c := newTestCollector(t, config.Metrics{})
	c.ObserveOperation("courts", "count", time.Millisecond, nil)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_query_operations_total{entity="courts",operation="count",outcome="success"} 1`)
}
