// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrListenAndServe wraps a failure to bind or serve the HTTP listener.
	ErrListenAndServe = errors.New("HTTP server ListenAndServe failed")

	// ErrShutdown wraps a graceful shutdown that did not finish in time.
	ErrShutdown = errors.New("HTTP server shutdown failed")
)
