// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wpleonesz/kick-off-v2/internal/config"
)

func TestWithCORS_Origins(t *testing.T) {
	tests := []struct {
		name            string
		origin          string
		wantOrigin      string
		wantCredentials string
	}{
		{name: "no origin", origin: "", wantOrigin: "*"},
		{name: "configured origin", origin: "https://app.kickoff.test", wantOrigin: "https://app.kickoff.test", wantCredentials: "true"},
		{name: "localhost", origin: "http://localhost:8100", wantOrigin: "http://localhost:8100", wantCredentials: "true"},
		{name: "capacitor shell", origin: "capacitor://localhost", wantOrigin: "capacitor://localhost", wantCredentials: "true"},
		{name: "ionic shell", origin: "ionic://localhost", wantOrigin: "ionic://localhost", wantCredentials: "true"},
		{name: "unknown origin", origin: "https://evil.test", wantOrigin: "*"},
	}

	h, _ := newTestHandlerWithConfig(t, config.Server{
		HTTPAddress: ":0",
		CORSOrigins: []string{"https://app.kickoff.test"},
	})
	handler := h.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(http.MethodGet, "/api/public/courts", "")
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			rec := serve(handler, req)

			assert.Equal(t, http.StatusTeapot, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredentials, rec.Header().Get("Access-Control-Allow-Credentials"))
			assert.Equal(t, corsAllowMethods, rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, corsAllowHeaders, rec.Header().Get("Access-Control-Allow-Headers"))
			assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
		})
	}
}

func TestWithCORS_PreflightShortCircuits(t *testing.T) {
	h, _ := newTestHandler(t)

	req := newRequest(http.MethodOptions, "/api/courts/3", "")
	req.Header.Set("Origin", "http://localhost:3000")
	rec := serve(h.Init(), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Body.String())
}
