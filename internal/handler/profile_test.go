package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/handler"
	"github.com/osse101/PlotPlanner_Go/mocks"
)

func TestProfileHandler_List(t *testing.T) {
	svc := mocks.NewMockProfileService(t)
	svc.On("List", mock.Anything).Return([]string{"Default", "Barn"}, nil)

	w := serve(http.MethodGet, "/profiles", "/profiles", handler.NewProfileHandler(svc).HandleList, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Default", "Barn"}, decode[handler.ProfileListResponse](t, w).Profiles)
}

func TestProfileHandler_ListFailure(t *testing.T) {
	svc := mocks.NewMockProfileService(t)
	svc.On("List", mock.Anything).Return(nil, domain.ErrDatabaseError)

	w := serve(http.MethodGet, "/profiles", "/profiles", handler.NewProfileHandler(svc).HandleList, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), handler.ErrMsgGenericServerError)
}

func TestProfileHandler_GetUnescapesName(t *testing.T) {
	svc := mocks.NewMockProfileService(t)
	svc.On("Load", mock.Anything, "My Farm").Return(&domain.Profile{Name: "My Farm"}, nil)

	w := serve(http.MethodGet, "/profiles/{name}", "/profiles/My%20Farm", handler.NewProfileHandler(svc).HandleGet, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "My Farm", decode[domain.Profile](t, w).Name)
}

func TestProfileHandler_Save(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockProfileService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"seeds":{"Strawberry_Rare":2},"strategy_var":"rate"}`,
			setupMock: func(m *mocks.MockProfileService) {
				m.On("Save", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
					return p.Name == "Barn" &&
						p.Data.Seeds["Strawberry_Rare"] == 2 &&
						p.Data.StrategyVar == domain.LegacyObjectiveRate
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Bad Objective",
			body:           `{"strategy_var":"fastest"}`,
			setupMock:      func(m *mocks.MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed",
			body:           `[]`,
			setupMock:      func(m *mocks.MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Storage Down",
			body: `{}`,
			setupMock: func(m *mocks.MockProfileService) {
				m.On("Save", mock.Anything, mock.Anything).Return(domain.ErrDatabaseError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockProfileService(t)
			tt.setupMock(svc)

			w := serve(http.MethodPut, "/profiles/{name}", "/profiles/Barn", handler.NewProfileHandler(svc).HandleSave, strings.NewReader(tt.body))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestProfileHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Success", nil, http.StatusOK},
		{"Default Protected", domain.ErrDefaultProfileProtected, http.StatusConflict},
		{"Not Found", domain.ErrProfileNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockProfileService(t)
			svc.On("Delete", mock.Anything, "Barn").Return(tt.err)

			w := serve(http.MethodDelete, "/profiles/{name}", "/profiles/Barn", handler.NewProfileHandler(svc).HandleDelete, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestProfileHandler_Export(t *testing.T) {
	svc := mocks.NewMockProfileService(t)
	svc.On("Export", mock.Anything, "My Farm").Return([]byte(`{"seeds":{}}`), nil)
	svc.On("Export", mock.Anything, "Empty").Return(nil, domain.ErrNoProfileData)
	h := handler.NewProfileHandler(svc).HandleExport

	w := serve(http.MethodGet, "/profiles/{name}/export", "/profiles/My%20Farm/export", h, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"seeds":{}}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "farm_My_Farm.json")

	w = serve(http.MethodGet, "/profiles/{name}/export", "/profiles/Empty/export", h, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), handler.ErrMsgNoProfileDataError)
}

func TestProfileHandler_Import(t *testing.T) {
	const doc = "seeds:\n  Strawberry_Common: 3\n"

	svc := mocks.NewMockProfileService(t)
	svc.On("Import", mock.Anything, "Barn", []byte(doc)).
		Return(&domain.Profile{Name: "Barn", Data: domain.ProfileData{Seeds: map[string]int{"Strawberry_Common": 3}}}, nil)
	svc.On("Import", mock.Anything, "Broken", mock.Anything).Return(nil, domain.ErrInvalidProfileData)
	h := handler.NewProfileHandler(svc).HandleImport

	w := serve(http.MethodPost, "/profiles/{name}/import", "/profiles/Barn/import", h, strings.NewReader(doc))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), handler.MsgProfileImportedSuccess)

	w = serve(http.MethodPost, "/profiles/{name}/import", "/profiles/Broken/import", h, strings.NewReader("{"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), handler.ErrMsgInvalidProfileDataError)
}

func TestProfileHandler_Settings(t *testing.T) {
	svc := mocks.NewMockProfileService(t)
	svc.On("GetSettings", mock.Anything).Return(&domain.Settings{LastFarm: "Barn", SortVar: "grow_time", StrategyVar: "bp_per_batch"}, nil)
	svc.On("SaveSettings", mock.Anything, domain.Settings{LastFarm: "Barn", StrategyVar: "rate"}).
		Return(&domain.Settings{LastFarm: "Barn", SortVar: "grow_time", StrategyVar: "bp_per_minute"}, nil)
	h := handler.NewProfileHandler(svc)

	w := serve(http.MethodGet, "/settings", "/settings", h.HandleGetSettings, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Barn", decode[domain.Settings](t, w).LastFarm)

	w = serve(http.MethodPut, "/settings", "/settings", h.HandleSaveSettings, strings.NewReader(`{"last_farm":"Barn","strategy_var":"rate"}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bp_per_minute")

	w = serve(http.MethodPut, "/settings", "/settings", h.HandleSaveSettings, strings.NewReader(`{"strategy_var":"fastest"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"strategyvar"`)
}
