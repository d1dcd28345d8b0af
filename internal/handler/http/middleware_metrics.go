// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// withMetrics records the method, route pattern, status and latency of each
// request. The pattern is read after routing so that /api/courts/7 and
// /api/courts/8 share the /api/courts/{id} label.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.metrics.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		h.metrics.InFlight(1)
		defer h.metrics.InFlight(-1)

		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		h.metrics.ObserveRequest(r.Method, routePattern(r), mw.statusOrOK(), time.Since(start))
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
