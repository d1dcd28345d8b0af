// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/wpleonesz/kick-off-v2/internal/utils"
)

func (h *Handler) publicCourts(w http.ResponseWriter, r *http.Request) {
	courts, err := h.services.PublicService.Courts(r.Context())
	if err != nil {
		writeError(w, r, "Handler.publicCourts", err)
		return
	}
	_, _ = utils.WriteJSON(w, courts, http.StatusOK)
}

// publicCourtSchedules lists the active schedules, narrowed to one court
// when the courtId query parameter is given.
func (h *Handler) publicCourtSchedules(w http.ResponseWriter, r *http.Request) {
	var courtID int64
	if raw := r.URL.Query().Get("courtId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, r, "Handler.publicCourtSchedules", fmt.Errorf("%w: courtId %q", ErrInvalidQueryParam, raw))
			return
		}
		courtID = id
	}

	schedules, err := h.services.PublicService.CourtSchedules(r.Context(), courtID)
	if err != nil {
		writeError(w, r, "Handler.publicCourtSchedules", err)
		return
	}
	_, _ = utils.WriteJSON(w, schedules, http.StatusOK)
}

func (h *Handler) publicRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.services.PublicService.Roles(r.Context())
	if err != nil {
		writeError(w, r, "Handler.publicRoles", err)
		return
	}
	_, _ = utils.WriteJSON(w, roles, http.StatusOK)
}
