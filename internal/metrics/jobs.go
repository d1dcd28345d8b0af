// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// JobMetrics tracks the scheduled background jobs.
type JobMetrics struct {
	runsTotal   *prometheus.CounterVec
	lastRun     *prometheus.GaugeVec
	runDuration *prometheus.HistogramVec
	auditPruned prometheus.Counter
}

// NewJobMetrics creates and registers the job metrics.
func NewJobMetrics(namespace string, registry prometheus.Registerer) *JobMetrics {
	jm := &JobMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "jobs",
				Name:      "runs_total",
				Help:      "Total number of scheduled job runs",
			},
			[]string{"job", "outcome"},
		),
		lastRun: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "jobs",
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time of the last finished run of a job",
			},
			[]string{"job"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "jobs",
				Name:      "run_duration_seconds",
				Help:      "Duration of scheduled job runs in seconds",
				Buckets:   []float64{0.01, 0.1, 0.5, 1, 5, 30, 120},
			},
			[]string{"job"},
		),
		auditPruned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "jobs",
				Name:      "audit_entries_pruned_total",
				Help:      "Total number of audit entries removed by retention",
			},
		),
	}

	registry.MustRegister(jm.runsTotal, jm.lastRun, jm.runDuration, jm.auditPruned)
	return jm
}

// RecordRun records one finished run of job.
func (m *JobMetrics) RecordRun(job string, took time.Duration, err error) {
	m.runsTotal.WithLabelValues(job, outcome(err)).Inc()
	m.runDuration.WithLabelValues(job).Observe(took.Seconds())
	m.lastRun.WithLabelValues(job).SetToCurrentTime()
}
