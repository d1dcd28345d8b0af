// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"net/http"
	"slices"
	"strings"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, PATCH, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Requested-With, Cookie, Set-Cookie"
	corsMaxAge       = "3600"
)

// localOriginPrefixes are always echoed back: local development servers and
// the mobile shells that wrap the web client.
var localOriginPrefixes = []string{"http://localhost", "capacitor://", "ionic://"}

// withCORS answers preflight requests and decorates every response with the
// CORS headers. A known origin is echoed back with credentials allowed; any
// other caller gets the wildcard origin without credentials.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowOrigin := h.allowedOrigin(r.Header.Get("Origin"))

		header := w.Header()
		header.Set("Access-Control-Allow-Origin", allowOrigin)
		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		header.Set("Access-Control-Max-Age", corsMaxAge)
		header.Add("Vary", "Origin")
		if allowOrigin != "*" {
			header.Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) allowedOrigin(origin string) string {
	if origin == "" {
		return "*"
	}
	if slices.Contains(h.cfg.CORSOrigins, origin) {
		return origin
	}
	for _, prefix := range localOriginPrefixes {
		if strings.HasPrefix(origin, prefix) {
			return origin
		}
	}
	return "*"
}
