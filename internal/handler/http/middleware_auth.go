// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"net/http"

	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/utils"
)

const unauthorizedMessage = "No autorizado"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the bearer token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and stores the user id in the request
// context under [utils.UserIDCtxKey] before delegating to the next handler.
//
// A missing header, a malformed header and an invalid or expired token are
// all answered with 403 Forbidden and {"message": "No autorizado"}.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Str("func", "Handler.auth").Send()
			utils.WriteMessage(w, unauthorizedMessage, http.StatusForbidden)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Str("func", "Handler.auth").Send()
			utils.WriteMessage(w, unauthorizedMessage, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Str("func", "Handler.auth").Msg("error occurred during parsing token")
			utils.WriteMessage(w, unauthorizedMessage, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
