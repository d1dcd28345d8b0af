// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

// Package workers runs the scheduled background jobs of the server: audit
// log retention and the periodic reload of the feature module registry.
//
// Each job implements [Worker]; the [Workers] aggregate registers them with
// a cron scheduler and records every run.
package workers

import (
	"context"
	"time"
)

// Worker is a job run on a cron schedule.
//
// Example implementation:
//
//	type heartbeat struct{}
//
//	func (heartbeat) Name() string     { return "heartbeat" }
//	func (heartbeat) Schedule() string { return "@every 30s" }
//	func (heartbeat) Run(ctx context.Context) error {
//	    return nil
//	}
type Worker interface {
	// Name labels the job in logs and metrics.
	Name() string

	// Schedule is a cron spec (five fields or a descriptor such as
	// "@daily"). An empty schedule leaves the job unscheduled.
	Schedule() string

	// Run performs a single execution of the job.
	Run(ctx context.Context) error
}

// AuditStore deletes old audit entries.
type AuditStore interface {
	PruneAuditLogs(ctx context.Context, before time.Time) (int64, error)
}

// ModuleCache reloads the module registry from the database.
type ModuleCache interface {
	Refresh(ctx context.Context) error
}

// Observer records job runs. It is satisfied by metrics.Collector.
type Observer interface {
	ObserveJob(job string, took time.Duration, err error)
	ObservePruned(n int64)
}
