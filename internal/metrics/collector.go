// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/models"
)

const defaultNamespace = "kickoff"

// Collector records every metric of the application. A disabled collector
// accepts all calls and records nothing.
type Collector struct {
	enabled  bool
	registry *prometheus.Registry

	queryMetrics *QueryMetrics
	httpMetrics  *HTTPMetrics
	jobMetrics   *JobMetrics
}

// NewCollector creates the collector and registers its metrics with
// registry. A nil registry gets a fresh one carrying the Go runtime and
// process collectors.
func NewCollector(cfg config.Metrics, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	return &Collector{
		enabled:      !cfg.Disabled,
		registry:     registry,
		queryMetrics: NewQueryMetrics(namespace, registry),
		httpMetrics:  NewHTTPMetrics(namespace, registry),
		jobMetrics:   NewJobMetrics(namespace, registry),
	}
}

// Enabled reports whether the collector records anything.
func (c *Collector) Enabled() bool {
	return c.enabled
}

// ObserveOperation implements query.Observer.
func (c *Collector) ObserveOperation(entity, operation string, took time.Duration, err error) {
	if !c.enabled {
		return
	}
	c.queryMetrics.RecordOperation(entity, operation, took, err)
}

// ObserveAudit implements query.Observer.
func (c *Collector) ObserveAudit(entity string, action models.AuditAction, err error) {
	if !c.enabled {
		return
	}
	c.queryMetrics.RecordAudit(entity, string(action), err)
}

// ObserveRequest records a served HTTP request. route is the matched route
// pattern, never the raw path, to keep the label set bounded.
func (c *Collector) ObserveRequest(method, route string, status int, took time.Duration) {
	if !c.enabled {
		return
	}
	c.httpMetrics.RecordRequest(method, route, status, took)
}

// InFlight adjusts the number of requests being served.
func (c *Collector) InFlight(delta float64) {
	if !c.enabled {
		return
	}
	c.httpMetrics.inFlight.Add(delta)
}

// ObserveJob records a run of a scheduled job.
func (c *Collector) ObserveJob(job string, took time.Duration, err error) {
	if !c.enabled {
		return
	}
	c.jobMetrics.RecordRun(job, took, err)
}

// ObservePruned adds n to the number of audit entries removed by retention.
func (c *Collector) ObservePruned(n int64) {
	if !c.enabled || n <= 0 {
		return
	}
	c.jobMetrics.auditPruned.Add(float64(n))
}

// Handler returns the HTTP handler serving the registry in the Prometheus
// exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

// Registry returns the registry the collector writes to.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
