// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/courts", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("courts"))
	})
	router.Post("/api/courts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/api/courts/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chi.URLParam(r, "id")))
	})
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {})
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/courts", http.StatusOK},
		{http.MethodPost, "/api/courts", http.StatusCreated},
		{http.MethodGet, "/api/courts/7", http.StatusOK},
		{http.MethodPut, "/api/courts", http.StatusNotFound},
		{http.MethodDelete, "/api/courts", http.StatusNotFound},
		{http.MethodPatch, "/api/courts/7", http.StatusNotFound},
		{http.MethodPost, "/api/version", http.StatusNotFound},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNotFound {
				assert.Equal(t, notFoundMessage, decodeMessage(t, rec))
			}
		})
	}
}
