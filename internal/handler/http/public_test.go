// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wpleonesz/kick-off-v2/internal/query"
)

func TestPublicCourts(t *testing.T) {
	h, m := newTestHandler(t)
	m.public.EXPECT().Courts(gomock.Any()).Return([]query.Record{{"id": int64(1), "name": "Central"}}, nil)

	rec := serve(h.Init(), newRequest(http.MethodGet, "/api/public/courts", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Central"}]`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestPublicCourtSchedules(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantCourtID int64
		wantStatus  int
	}{
		{name: "all courts", target: "/api/public/court-schedules", wantStatus: http.StatusOK},
		{name: "one court", target: "/api/public/court-schedules?courtId=3", wantCourtID: 3, wantStatus: http.StatusOK},
		{name: "bad court id", target: "/api/public/court-schedules?courtId=x", wantStatus: http.StatusBadRequest},
		{name: "negative court id", target: "/api/public/court-schedules?courtId=-2", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.wantStatus == http.StatusOK {
				m.public.EXPECT().CourtSchedules(gomock.Any(), tt.wantCourtID).Return([]query.Record{}, nil)
			}

			rec := serve(h.Init(), newRequest(http.MethodGet, tt.target, ""))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPublicRoles(t *testing.T) {
	h, m := newTestHandler(t)
	m.public.EXPECT().Roles(gomock.Any()).Return([]query.Record{{"id": int64(2), "code": "player"}}, nil)

	rec := serve(h.Init(), newRequest(http.MethodGet, "/api/public/roles", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":2,"code":"player"}]`, rec.Body.String())
}

func TestPublicRoles_Failure(t *testing.T) {
	h, m := newTestHandler(t)
	m.public.EXPECT().Roles(gomock.Any()).Return(nil, errors.New("db down"))

	rec := serve(h.Init(), newRequest(http.MethodGet, "/api/public/roles", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeMessage(t, rec))
}
