// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

// Package metrics exposes Prometheus metrics of the kick-off server.
//
// A single [Collector] owns a private registry and groups the metrics by
// subsystem: query builder operations and audit writes, HTTP requests, and
// scheduled jobs. The collector implements [query.Observer], so builders
// created with query.WithObserver report to it directly.
package metrics
