// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/internal/service"
	"github.com/wpleonesz/kick-off-v2/internal/utils"
	"github.com/wpleonesz/kick-off-v2/internal/validators"
	"github.com/wpleonesz/kick-off-v2/models"
)

func TestRecords_List(t *testing.T) {
	h, m := newTestHandler(t)
	m.signedIn(1)

	want := models.ListParams{
		Take:    5,
		Count:   true,
		Select:  "public",
		OrderBy: []models.SortField{{Column: "name", Descending: true}},
		Where:   map[string]any{"user_id": int64(1)},
	}
	m.courts.EXPECT().List(gomock.Any(), want).Return(map[string]any{
		"count": int64(1),
		"data":  []query.Record{{"id": int64(3), "name": "Central"}},
	}, nil)

	target := "/api/courts?take=5&count=true&select=public&orderBy=-name&where=" + url.QueryEscape(`{"user_id":1}`)
	rec := serve(h.Init(), withToken(newRequest(http.MethodGet, target, "")))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"count":1,"data":[{"id":3,"name":"Central"}]}`, rec.Body.String())
}

func TestRecords_ListRejectsBadParams(t *testing.T) {
	h, m := newTestHandler(t)
	m.signedIn(1)

	rec := serve(h.Init(), withToken(newRequest(http.MethodGet, "/api/courts?take=-1", "")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecords_ListUnknownColumn(t *testing.T) {
	h, m := newTestHandler(t)
	m.signedIn(1)
	m.schedules.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: \"x;\"", query.ErrInvalidColumn))

	rec := serve(h.Init(), withToken(newRequest(http.MethodGet, "/api/courts/schedules?orderBy=x", "")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecords_Get(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(m *testServices)
		wantStatus int
	}{
		{
			name: "court",
			path: "/api/courts/3",
			setup: func(m *testServices) {
				m.courts.EXPECT().Get(gomock.Any(), int64(3)).Return(query.Record{"id": int64(3)}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "schedule is not routed to courts",
			path: "/api/courts/schedules/4",
			setup: func(m *testServices) {
				m.schedules.EXPECT().Get(gomock.Any(), int64(4)).Return(query.Record{"id": int64(4)}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing",
			path: "/api/courts/9",
			setup: func(m *testServices) {
				m.courts.EXPECT().Get(gomock.Any(), int64(9)).Return(nil, fmt.Errorf("%w: courts 9", service.ErrRecordNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{name: "non numeric id", path: "/api/courts/abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/api/courts/0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.signedIn(1)
			if tt.setup != nil {
				tt.setup(m)
			}

			rec := serve(h.Init(), withToken(newRequest(http.MethodGet, tt.path, "")))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestRecords_CreateCourt(t *testing.T) {
	h, m := newTestHandler(t)
	m.signedIn(7)
	m.courts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, p models.Payload) (query.Record, error) {
			payload, ok := p.(*models.CourtPayload)
			require.True(t, ok, "payload type %T", p)
			assert.Equal(t, "Central", *payload.Name)
			assert.Equal(t, "Quito", *payload.Location)
			assert.Nil(t, payload.Latitude)
			return query.Record{"id": int64(3), "name": "Central"}, nil
		})

	rec := serve(h.Init(), withToken(newRequest(http.MethodPost, "/api/courts", `{"name":"Central","location":"Quito"}`)))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":3,"name":"Central"}`, rec.Body.String())
}

func TestRecords_CreateScheduleValidationFails(t *testing.T) {
	h, m := newTestHandler(t)
	m.signedIn(7)
	m.schedules.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&models.CourtSchedulePayload{})).
		Return(nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrStartAfterEnd))

	body := `{"courtId":3,"dayOfWeek":1,"duration":60,"startTime":"18:00","endTime":"09:00"}`
	rec := serve(h.Init(), withToken(newRequest(http.MethodPost, "/api/courts/schedules", body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeMessage(t, rec), validators.ErrStartAfterEnd.Error())
}

func TestRecords_Update(t *testing.T) {
	h, m := newTestHandler(t)
	m.signedIn(7)
	m.schedules.EXPECT().Update(gomock.Any(), int64(4), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, p models.Payload) (query.Record, error) {
			assert.Equal(t, map[string]any{"end_time": "21:00"}, p.ToRecord())
			return query.Record{"id": int64(4), "end_time": "21:00"}, nil
		})

	rec := serve(h.Init(), withToken(newRequest(http.MethodPut, "/api/courts/schedules/4", `{"endTime":"21:00"}`)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":4,"end_time":"21:00"}`, rec.Body.String())
}

func TestRecords_UpdateInvalidJSON(t *testing.T) {
	h, m := newTestHandler(t)
	m.signedIn(7)

	rec := serve(h.Init(), withToken(newRequest(http.MethodPut, "/api/courts/4", `{"name":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecords_DeleteDeactivates(t *testing.T) {
	h, m := newTestHandler(t)
	m.signedIn(7)
	m.courts.EXPECT().Deactivate(gomock.Any(), int64(3)).Return(query.Record{"id": int64(3), "active": false}, nil)

	rec := serve(h.Init(), withToken(newRequest(http.MethodDelete, "/api/courts/3", "")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"active":false}`, rec.Body.String())
}

func TestRecords_ServiceSeesAuthenticatedUser(t *testing.T) {
	h, m := newTestHandler(t)
	m.signedIn(42)
	m.courts.EXPECT().Deactivate(gomock.Any(), int64(3)).DoAndReturn(
		func(ctx context.Context, _ int64) (query.Record, error) {
			userID, ok := utils.GetUserIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, int64(42), userID)
			return query.Record{"id": int64(3)}, nil
		})

	rec := serve(h.Init(), withToken(newRequest(http.MethodDelete, "/api/courts/3", "")))

	assert.Equal(t, http.StatusOK, rec.Code)
}
