// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// up to the configured shutdown timeout.
	Shutdown() error
}
