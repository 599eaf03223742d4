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

func sampleReport() *domain.StrategyReport {
	return &domain.StrategyReport{
		Result:  &domain.StrategyResult{Objective: domain.ObjectiveBatch, TotalYield: 7},
		Summary: domain.SummaryView{Objective: domain.ObjectiveBatch},
	}
}

func TestPlannerHandler_Strategy(t *testing.T) {
	svc := mocks.NewMockPlannerService(t)
	svc.On("ProfileReport", mock.Anything, "Barn").Return(sampleReport(), nil)
	svc.On("ProfileReport", mock.Anything, "Stale").Return(nil, &domain.CatalogError{
		Kind: domain.ItemKindLamp, Key: "Mythic", Err: domain.ErrCatalogEntryNotFound,
	})
	h := handler.NewPlannerHandler(svc).HandleStrategy

	w := serve(http.MethodGet, "/profiles/{name}/strategy", "/profiles/Barn/strategy", h, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7.0, decode[domain.StrategyReport](t, w).Result.TotalYield)

	w = serve(http.MethodGet, "/profiles/{name}/strategy", "/profiles/Stale/strategy", h, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPlannerHandler_SetQuantity(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockPlannerService)
		expectedStatus int
		expectedField  string
	}{
		{
			name: "Success",
			body: `{"kind":"seed","key":"Strawberry_Epic","quantity":2}`,
			setupMock: func(m *mocks.MockPlannerService) {
				m.On("SetQuantity", mock.Anything, "Barn", domain.ItemKindSeed, "Strawberry_Epic", 2).Return(sampleReport(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Negative Passed Through For Clamping",
			body: `{"kind":"lamp","key":"Common","quantity":-3}`,
			setupMock: func(m *mocks.MockPlannerService) {
				m.On("SetQuantity", mock.Anything, "Barn", domain.ItemKindLamp, "Common", -3).Return(sampleReport(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown Kind",
			body:           `{"kind":"robot","key":"X","quantity":1}`,
			setupMock:      func(m *mocks.MockPlannerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  `"kind"`,
		},
		{
			name:           "Missing Key",
			body:           `{"kind":"plot","quantity":1}`,
			setupMock:      func(m *mocks.MockPlannerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  `"key"`,
		},
		{
			name: "Not In Catalog",
			body: `{"kind":"plot","key":"Diamond","quantity":1}`,
			setupMock: func(m *mocks.MockPlannerService) {
				m.On("SetQuantity", mock.Anything, "Barn", domain.ItemKindPlot, "Diamond", 1).Return(nil, &domain.CatalogError{
					Kind: domain.ItemKindPlot, Key: "Diamond", Err: domain.ErrCatalogEntryNotFound,
				})
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockPlannerService(t)
			tt.setupMock(svc)

			w := serve(http.MethodPost, "/profiles/{name}/quantity", "/profiles/Barn/quantity",
				handler.NewPlannerHandler(svc).HandleSetQuantity, strings.NewReader(tt.body))

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedField != "" {
				assert.Contains(t, w.Body.String(), tt.expectedField)
			}
		})
	}
}

func TestPlannerHandler_ToggleExclusion(t *testing.T) {
	svc := mocks.NewMockPlannerService(t)
	svc.On("ToggleExclusion", mock.Anything, "Barn", domain.SeedInstanceID("Strawberry_Epic_1")).Return(sampleReport(), nil)
	h := handler.NewPlannerHandler(svc).HandleToggleExclusion

	w := serve(http.MethodPost, "/profiles/{name}/exclusions", "/profiles/Barn/exclusions", h, strings.NewReader(`{"seed_id":"Strawberry_Epic_1"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(http.MethodPost, "/profiles/{name}/exclusions", "/profiles/Barn/exclusions", h, strings.NewReader(`{"seed_id":"Strawberry"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "seedid")
}

func TestPlannerHandler_SetObjective(t *testing.T) {
	svc := mocks.NewMockPlannerService(t)
	svc.On("SetObjective", mock.Anything, "Barn", "rate").Return(sampleReport(), nil)
	h := handler.NewPlannerHandler(svc).HandleSetObjective

	w := serve(http.MethodPut, "/profiles/{name}/objective", "/profiles/Barn/objective", h, strings.NewReader(`{"objective":"rate"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(http.MethodPut, "/profiles/{name}/objective", "/profiles/Barn/objective", h, strings.NewReader(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlannerHandler_Value(t *testing.T) {
	svc := mocks.NewMockPlannerService(t)
	svc.On("Value", mock.Anything, "Barn").Return(&domain.Totals{Seeds: 3, TotalValue: 120}, nil)

	w := serve(http.MethodGet, "/profiles/{name}/value", "/profiles/Barn/value", handler.NewPlannerHandler(svc).HandleValue, nil)

	require.Equal(t, http.StatusOK, w.Code)
	totals := decode[domain.Totals](t, w)
	assert.Equal(t, 3, totals.Seeds)
	assert.Equal(t, 120.0, totals.TotalValue)
}

func TestPlannerHandler_Upgrades(t *testing.T) {
	svc := mocks.NewMockPlannerService(t)
	svc.On("Upgrades", mock.Anything, "My Farm", "Sun Flower").Return(&domain.UpgradePlan{
		Seed:  "Sun Flower",
		Steps: []domain.UpgradeStep{{Seed: "Sun Flower", Target: domain.RarityEpic, CommonsNeeded: 4}},
	}, nil)
	svc.On("Upgrades", mock.Anything, "My Farm", "Nope").Return(nil, &domain.CatalogError{
		Kind: domain.ItemKindSeed, Key: "Nope", Err: domain.ErrCatalogEntryNotFound,
	})
	h := handler.NewPlannerHandler(svc).HandleUpgrades
	const pattern = "/profiles/{name}/upgrades/{seed}"

	w := serve(http.MethodGet, pattern, "/profiles/My%20Farm/upgrades/Sun%20Flower", h, nil)
	require.Equal(t, http.StatusOK, w.Code)
	plan := decode[domain.UpgradePlan](t, w)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, 4, plan.Steps[0].CommonsNeeded)

	w = serve(http.MethodGet, pattern, "/profiles/My%20Farm/upgrades/Nope", h, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
