// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QueryMetrics tracks the terminal operations of query builders.
//
// Metrics:
//   - kickoff_query_operations_total: operations by entity, operation, outcome
//   - kickoff_query_operation_duration_seconds: operation latency
//   - kickoff_query_audit_entries_total: audit writes by entity, action, outcome
type QueryMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	auditTotal        *prometheus.CounterVec
}

// NewQueryMetrics creates and registers the query metrics.
func NewQueryMetrics(namespace string, registry prometheus.Registerer) *QueryMetrics {
	qm := &QueryMetrics{
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "query",
				Name:      "operations_total",
				Help:      "Total number of query builder operations",
			},
			[]string{"entity", "operation", "outcome"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "query",
				Name:      "operation_duration_seconds",
				Help:      "Duration of query builder operations in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"entity", "operation"},
		),
		auditTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "query",
				Name:      "audit_entries_total",
				Help:      "Total number of audit entries written or failed",
			},
			[]string{"entity", "action", "outcome"},
		),
	}

	registry.MustRegister(qm.operationsTotal, qm.operationDuration, qm.auditTotal)
	return qm
}

// RecordOperation records one terminal operation.
func (m *QueryMetrics) RecordOperation(entity, operation string, took time.Duration, err error) {
	m.operationsTotal.WithLabelValues(entity, operation, outcome(err)).Inc()
	m.operationDuration.WithLabelValues(entity, operation).Observe(took.Seconds())
}

// RecordAudit records one audit write attempt.
func (m *QueryMetrics) RecordAudit(entity, action string, err error) {
	m.auditTotal.WithLabelValues(entity, action, outcome(err)).Inc()
}
