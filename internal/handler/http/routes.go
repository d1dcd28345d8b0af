// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wpleonesz/kick-off-v2/models"
)

// Init builds the router. Every route shares the recoverer, tracing,
// logging, CORS and metrics middleware; the CRUD routes and the current
// user endpoint additionally require a bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withCORS)
	router.Use(h.withMetrics)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	courts := newRecordRoutes("courts", h.services.CourtService, func() models.Payload {
		return &models.CourtPayload{}
	})
	schedules := newRecordRoutes("courtSchedules", h.services.CourtScheduleService, func() models.Payload {
		return &models.CourtSchedulePayload{}
	})

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/signin", h.signIn)

		r.Get("/api/public/courts", h.publicCourts)
		r.Get("/api/public/court-schedules", h.publicCourtSchedules)
		r.Get("/api/public/roles", h.publicRoles)

		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/user", h.currentUser)
		courts.mount(r, "/api/courts")
		schedules.mount(r, "/api/courts/schedules")
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
