// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/metrics"
	"github.com/wpleonesz/kick-off-v2/internal/mock"
	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/internal/service"
	"github.com/wpleonesz/kick-off-v2/models"
)

const testToken = "good-token"

// testServices holds the service mocks behind a test Handler.
type testServices struct {
	auth      *mock.MockAuthService
	courts    *mock.MockRecordService
	schedules *mock.MockRecordService
	public    *mock.MockPublicService
	appInfo   *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()
	return newTestHandlerWithConfig(t, config.Server{HTTPAddress: ":0"})
}

func newTestHandlerWithConfig(t *testing.T, cfg config.Server) (*Handler, *testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &testServices{
		auth:      mock.NewMockAuthService(ctrl),
		courts:    mock.NewMockRecordService(ctrl),
		schedules: mock.NewMockRecordService(ctrl),
		public:    mock.NewMockPublicService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}
	svcs := &service.Services{
		AuthService:          m.auth,
		CourtService:         m.courts,
		CourtScheduleService: m.schedules,
		PublicService:        m.public,
		AppInfoService:       m.appInfo,
	}

	collector := metrics.NewCollector(config.Metrics{}, prometheus.NewRegistry())
	return NewHandler(svcs, collector, cfg, logger.Nop()), m
}

// signedIn makes every ParseToken call with testToken resolve to userID.
func (m *testServices) signedIn(userID int64) {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: userID}, nil).AnyTimes()
}

func newRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func withToken(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg), rec.Body.String())
	return msg.Message
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	collector := metrics.NewCollector(config.Metrics{}, prometheus.NewRegistry())
	cfg := config.Server{HTTPAddress: ":8080", CORSOrigins: []string{"https://kickoff.test"}}

	h := NewHandler(svcs, collector, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, collector, h.metrics)
	assert.Equal(t, cfg, h.cfg)
	assert.NotNil(t, h.traceIDs)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route Init must register. Protected routes
// answer 403 without a token, which still proves they exist.
var expectedRoutes = []routeCase{
	{http.MethodPost, "/api/auth/signup"},
	{http.MethodPost, "/api/auth/signin"},
	{http.MethodGet, "/api/auth/user"},

	{http.MethodGet, "/api/courts"},
	{http.MethodPost, "/api/courts"},
	{http.MethodGet, "/api/courts/1"},
	{http.MethodPut, "/api/courts/1"},
	{http.MethodDelete, "/api/courts/1"},

	{http.MethodGet, "/api/courts/schedules"},
	{http.MethodPost, "/api/courts/schedules"},
	{http.MethodGet, "/api/courts/schedules/1"},
	{http.MethodPut, "/api/courts/schedules/1"},
	{http.MethodDelete, "/api/courts/schedules/1"},

	{http.MethodGet, "/api/public/courts"},
	{http.MethodGet, "/api/public/court-schedules"},
	{http.MethodGet, "/api/public/roles"},

	{http.MethodGet, "/api/version"},
	{http.MethodGet, "/metrics"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, m := newTestHandler(t)
	m.public.EXPECT().Courts(gomock.Any()).Return(nil, nil).AnyTimes()
	m.public.EXPECT().CourtSchedules(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.public.EXPECT().Roles(gomock.Any()).Return(nil, nil).AnyTimes()
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()
	router := h.Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, newRequest(tc.method, tc.path, ""))

			assert.NotEqual(t, http.StatusNotFound, rec.Code, "route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, tc := range expectedRoutes {
		if !strings.HasPrefix(tc.path, "/api/courts") && tc.path != "/api/auth/user" {
			continue
		}
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, newRequest(tc.method, tc.path, ""))

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, unauthorizedMessage, decodeMessage(t, rec))
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h.Init(), newRequest(http.MethodGet, "/api/nonexistent", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, notFoundMessage, decodeMessage(t, rec))
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, tc := range []routeCase{
		{http.MethodPost, "/api/version"},
		{http.MethodDelete, "/api/courts"},
		{http.MethodGet, "/api/auth/signin"},
		{http.MethodPut, "/api/public/roles"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, newRequest(tc.method, tc.path, ""))
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, notFoundMessage, decodeMessage(t, rec))
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()
	router := h.Init()

	rec := serve(router, newRequest(http.MethodGet, "/api/version", ""))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := newRequest(http.MethodGet, "/api/version", "")
	req.Header.Set(traceIDHeader, "trace-abc")
	rec = serve(router, req)
	assert.Equal(t, "trace-abc", rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	h, m := newTestHandler(t)
	m.public.EXPECT().Roles(gomock.Any()).DoAndReturn(func(context.Context) ([]query.Record, error) {
		panic("boom")
	})

	rec := serve(h.Init(), newRequest(http.MethodGet, "/api/public/roles", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
