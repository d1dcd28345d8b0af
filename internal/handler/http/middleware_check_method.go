// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/utils"
)

const notFoundMessage = "Recurso no encontrado"

// notFound answers paths no route serves with {"message": ...}, like every
// other error of the API.
func notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Warn().
		Str("func", "notFound").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("no route")

	utils.WriteMessage(w, notFoundMessage, http.StatusNotFound)
}

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path served only under other methods answers 404 like an unknown path,
// so DELETE /api/public/roles and DELETE /api/nothing look alike to a client.
//
// The lookup goes through [chi.Mux.Match], which expands parameters, so
// /api/courts/7 is checked against /api/courts/{id}. When the router can
// serve the method after all the request is handed back to it.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.NotFound(notFound)
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		notFound(w, r)
	}
}
