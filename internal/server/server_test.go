package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotPlanner_Go/internal/catalog"
	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/server"
	"github.com/osse101/PlotPlanner_Go/mocks"
)

type testServer struct {
	handler  http.Handler
	planner  *mocks.MockPlannerService
	profiles *mocks.MockProfileService
}

func newTestServer(t *testing.T, apiKey string) testServer {
	t.Helper()
	planner := mocks.NewMockPlannerService(t)
	profiles := mocks.NewMockProfileService(t)
	srv := server.NewServer(server.Options{APIKey: apiKey}, nil, catalog.NewStaticStore(catalog.Fallback()), planner, profiles)
	return testServer{handler: srv.Handler(), planner: planner, profiles: profiles}
}

func (ts testServer) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func TestServer_PublicEndpoints(t *testing.T) {
	ts := newTestServer(t, "")

	tests := []struct {
		path     string
		contains string
	}{
		{"/healthz", `"status"`},
		{"/readyz", `"status"`},
		{"/version", `"catalog_digest"`},
		{"/metrics", "# HELP"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := ts.do(http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.Equal(t, server.HeaderValueNoSniff, w.Header().Get(server.HeaderContentType))
		})
	}
}

func TestServer_CatalogRoutes(t *testing.T) {
	ts := newTestServer(t, "")

	w := ts.do(http.MethodGet, "/api/v1/catalog", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Strawberry")
	assert.NotEmpty(t, w.Header().Get(server.HeaderRequestID))

	w = ts.do(http.MethodGet, "/api/v1/catalog/suggest?name=strawbery", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Strawberry")

	w = ts.do(http.MethodGet, "/api/v1/shop", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_ProfileRoutes(t *testing.T) {
	ts := newTestServer(t, "")
	report := &domain.StrategyReport{Result: &domain.StrategyResult{Objective: domain.ObjectiveBatch}}

	ts.profiles.On("List", mock.Anything).Return([]string{"Default"}, nil)
	ts.planner.On("ProfileReport", mock.Anything, "My Farm").Return(report, nil)
	ts.planner.On("SetObjective", mock.Anything, "My Farm", "rate").Return(report, nil)
	ts.profiles.On("GetSettings", mock.Anything).Return(&domain.Settings{LastFarm: "My Farm"}, nil)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/profiles", "").Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/profiles/My%20Farm/strategy", "").Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodPut, "/api/v1/profiles/My%20Farm/objective", `{"objective":"rate"}`).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/settings", "").Code)
}

func TestServer_AdHocStrategy(t *testing.T) {
	ts := newTestServer(t, "")
	ts.planner.On("Compute", mock.Anything, mock.Anything).
		Return(&domain.StrategyReport{Result: &domain.StrategyResult{Objective: domain.ObjectiveRate}}, nil)

	w := ts.do(http.MethodPost, "/api/v1/strategy", `{"seeds":{"Strawberry_Common":1},"objective":"rate"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_APIKey(t *testing.T) {
	ts := newTestServer(t, "secret")
	ts.profiles.On("List", mock.Anything).Return([]string{"Default"}, nil).Once()

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/api/v1/profiles", "").Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/profiles", "", server.HeaderAPIKey, "secret").Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/healthz", "").Code)
}

func TestServer_RequestTooLarge(t *testing.T) {
	planner := mocks.NewMockPlannerService(t)
	srv := server.NewServer(server.Options{MaxRequestBytes: 16}, nil, catalog.NewStaticStore(catalog.Fallback()),
		planner, mocks.NewMockProfileService(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/strategy", strings.NewReader(`{"seeds":{"Strawberry_Common":1}}`))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := newTestServer(t, "")
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/v1/nope", "").Code)
}
