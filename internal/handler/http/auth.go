// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/service"
	"github.com/wpleonesz/kick-off-v2/internal/utils"
	"github.com/wpleonesz/kick-off-v2/internal/validators"
	"github.com/wpleonesz/kick-off-v2/models"
)

const (
	signUpSucceededMessage = "Usuario creado exitosamente"
	missingFieldsMessage   = "Todos los campos son requeridos"
)

// signUpResponse is the body returned after a successful sign-up.
type signUpResponse struct {
	Message string      `json:"message"`
	User    createdUser `json:"user"`
}

type createdUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "Handler.signUp", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) && !errors.Is(err, validators.ErrRoleRequired) {
			log.Warn().Err(err).Str("func", "Handler.signUp").Msg("invalid data provided")
			utils.WriteMessage(w, missingFieldsMessage, http.StatusBadRequest)
			return
		}
		writeError(w, r, "Handler.signUp", err)
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user signed up")
	_, _ = utils.WriteJSON(w, signUpResponse{
		Message: signUpSucceededMessage,
		User:    createdUser{ID: user.ID, Username: user.Username, Email: user.Email},
	}, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "Handler.signIn", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.SignIn(ctx, req)
	if err != nil {
		writeError(w, r, "Handler.signIn", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, "Handler.signIn", err)
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user successfully signed in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.Session{Token: token.SignedString, User: user}, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, unauthorizedMessage, http.StatusForbidden)
		return
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, "Handler.currentUser", err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
