// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"errors"
	"net/http"

	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/internal/service"
	"github.com/wpleonesz/kick-off-v2/internal/store"
	"github.com/wpleonesz/kick-off-v2/internal/utils"
	"github.com/wpleonesz/kick-off-v2/internal/validators"
)

// errorStatusMap is checked in slice order so that the more specific
// sentinels win over the generic ones they may wrap.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidPathID, http.StatusBadRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidRecordID, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusBadRequest},
	{service.ErrUserIsInactive, http.StatusBadRequest},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden},
	{service.ErrRecordNotFound, http.StatusNotFound},
	{service.ErrUnknownModule, http.StatusNotFound},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},

	{validators.ErrInvalidListParams, http.StatusBadRequest},

	{query.ErrNotFound, http.StatusNotFound},
	{query.ErrUniquenessViolation, http.StatusConflict},
	{query.ErrInvalidColumn, http.StatusBadRequest},
	{query.ErrUnsupportedCursor, http.StatusBadRequest},
	{query.ErrEmptyData, http.StatusBadRequest},

	{store.ErrConstraintViolation, http.StatusConflict},
	{store.ErrModuleNotFound, http.StatusNotFound},
	{store.ErrTransient, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text shown to API clients. Server errors
// never leak their cause.
func messageFromError(err error, status int) string {
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "Usuario o contraseña incorrectos"
	case errors.Is(err, service.ErrUserIsInactive):
		return "El usuario está inactivo"
	case errors.Is(err, validators.ErrRoleRequired):
		return "El rol es requerido"
	case status >= http.StatusInternalServerError:
		return http.StatusText(status)
	default:
		return err.Error()
	}
}

// writeError logs err and answers with {"message": ...} and the status
// matching err.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, messageFromError(err, status), status)
}
