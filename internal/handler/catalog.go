package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/PlotPlanner_Go/internal/catalog"
	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/logger"
)

// Suggestion limits
const (
	defaultSuggestLimit = 5
	maxSuggestLimit     = 20
)

// CatalogSource yields the catalog currently in effect
type CatalogSource interface {
	Current() *catalog.Catalog
}

// CatalogResponse is the full static game data
type CatalogResponse struct {
	Digest string       `json:"digest"`
	Data   catalog.Data `json:"data"`
}

// SuggestResponse lists catalog names close to a query
type SuggestResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// HandleGetCatalog returns the active catalog
// @Summary Get catalog
// @Description Seeds, plots, lamps, animals, products, food and harvesters currently loaded
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/catalog [get]
func HandleGetCatalog(catalogs CatalogSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := catalogs.Current()
		logger.FromContext(r.Context()).Debug(LogMsgCatalogRequested, "digest", cat.Digest())
		respondJSON(w, http.StatusOK, CatalogResponse{Digest: cat.Digest(), Data: cat.Data()})
	}
}

// HandleSuggest ranks catalog names by closeness to the name parameter
// @Summary Suggest catalog names
// @Description Fuzzy lookup across every item kind
// @Tags catalog
// @Produce json
// @Param name query string true "Name to match"
// @Param limit query int false "Maximum suggestions (default 5, max 20)"
// @Success 200 {object} SuggestResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/catalog/suggest [get]
func HandleSuggest(catalogs CatalogSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, "name")
		if !ok {
			return
		}
		limit := defaultSuggestLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			limit = min(parsed, maxSuggestLimit)
		}

		suggestions := catalogs.Current().SuggestAll(name, limit)
		if suggestions == nil {
			suggestions = []string{}
		}
		logger.FromContext(r.Context()).Debug(LogMsgSuggestRequested, "name", name, "matches", len(suggestions))
		respondJSON(w, http.StatusOK, SuggestResponse{Query: name, Suggestions: suggestions})
	}
}

// HandleGetMergeRequirement describes how a plot, lamp or animal is merged
// @Summary Merge requirement
// @Description What two of the previous tier plus coins, fertiliser or items make this item
// @Tags catalog
// @Produce json
// @Param kind path string true "plot, lamp or animal"
// @Param name path string true "Item name"
// @Success 200 {object} domain.MergeRequirement
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/catalog/{kind}/{name}/merge [get]
func HandleGetMergeRequirement(catalogs CatalogSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawKind, ok := GetPathParam(r, w, "kind")
		if !ok {
			return
		}
		name, ok := GetPathParam(r, w, "name")
		if !ok {
			return
		}
		kind, err := domain.ParseItemKind(rawKind)
		if err != nil {
			respondServiceError(w, r, ErrMsgMergeLookupFailed, err)
			return
		}

		req, err := catalogs.Current().MergeRequirement(kind, name)
		if err != nil {
			respondServiceError(w, r, ErrMsgMergeLookupFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, req)
	}
}
