package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotPlanner_Go/internal/catalog"
	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/handler"
)

func TestHandleGetCatalog(t *testing.T) {
	store := catalog.NewStaticStore(catalog.Fallback())

	w := serve(http.MethodGet, "/catalog", "/catalog", handler.HandleGetCatalog(store), nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[handler.CatalogResponse](t, w)
	assert.Equal(t, store.Current().Digest(), resp.Digest)
	require.Len(t, resp.Data.Seeds, 1)
	assert.Equal(t, "Strawberry", resp.Data.Seeds[0].Name)
	assert.Len(t, resp.Data.Seeds[0].Tiers, domain.RarityCount)
}

func TestHandleSuggest(t *testing.T) {
	store := shopStore(t)
	h := handler.HandleSuggest(store)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantFirst  string
	}{
		{"prefix of plot", "/suggest?name=wood", http.StatusOK, "Wooden"},
		{"prefix", "/suggest?name=straw", http.StatusOK, "Strawberry"},
		{"missing name", "/suggest", http.StatusBadRequest, ""},
		{"bad limit", "/suggest?name=x&limit=zero", http.StatusBadRequest, ""},
		{"negative limit", "/suggest?name=x&limit=-1", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(http.MethodGet, "/suggest", tt.target, h, nil)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantFirst == "" {
				return
			}
			resp := decode[handler.SuggestResponse](t, w)
			require.NotEmpty(t, resp.Suggestions)
			assert.Equal(t, tt.wantFirst, resp.Suggestions[0])
		})
	}
}

func TestHandleSuggest_NoMatchIsEmptyList(t *testing.T) {
	w := serve(http.MethodGet, "/suggest", "/suggest?name=qqqqqqqqqqqq", handler.HandleSuggest(shopStore(t)), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"suggestions":[]`)
}

func TestHandleGetMergeRequirement(t *testing.T) {
	h := handler.HandleGetMergeRequirement(shopStore(t))
	const pattern = "/catalog/{kind}/{name}/merge"

	t.Run("Plot", func(t *testing.T) {
		w := serve(http.MethodGet, pattern, "/catalog/plot/Wooden/merge", h, nil)
		require.Equal(t, http.StatusOK, w.Code)
		req := decode[domain.MergeRequirement](t, w)
		assert.Equal(t, "Cardboard", req.Previous)
		assert.Equal(t, domain.CommonsPerMerge, req.Count)
	})

	t.Run("First Tier", func(t *testing.T) {
		w := serve(http.MethodGet, pattern, "/catalog/lamp/Common/merge", h, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[domain.MergeRequirement](t, w).Previous)
	})

	t.Run("Unknown Item", func(t *testing.T) {
		w := serve(http.MethodGet, pattern, "/catalog/plot/Woden/merge", h, nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decode[handler.ErrorResponse](t, w)
		assert.Equal(t, "Wooden", resp.Suggestion)
	})

	t.Run("Invalid Kind", func(t *testing.T) {
		w := serve(http.MethodGet, pattern, "/catalog/robot/X/merge", h, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Seeds Have No Merge Entry", func(t *testing.T) {
		w := serve(http.MethodGet, pattern, "/catalog/seed/Strawberry/merge", h, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
