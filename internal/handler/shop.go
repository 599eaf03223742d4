package handler

import (
	"net/http"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/logger"
	"github.com/osse101/PlotPlanner_Go/internal/shop"
)

// ShopResponse is a filtered, ordered shop listing
type ShopResponse struct {
	Category string            `json:"category"`
	SortBy   string            `json:"sort"`
	Items    []domain.ShopItem `json:"items"`
}

// HandleGetShop lists purchasable items
// @Summary Shop listing
// @Description Items from the catalog filtered by category and stock, sorted by name, price or rarity
// @Tags shop
// @Produce json
// @Param category query string false "all, Seeds, Plots, Lamps, Animals or Auto Harvesters"
// @Param sort query string false "name, price or rarity"
// @Param desc query bool false "Sort descending"
// @Param in_stock query bool false "Only items that can be bought now"
// @Success 200 {object} ShopResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/shop [get]
func HandleGetShop(catalogs CatalogSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		desc, ok := GetBoolQueryParam(r, w, "desc")
		if !ok {
			return
		}
		inStock, ok := GetBoolQueryParam(r, w, "in_stock")
		if !ok {
			return
		}

		q, err := shop.ValidateQuery(domain.ShopQuery{
			Category:    GetOptionalQueryParam(r, "category", domain.ShopCategoryAll),
			SortBy:      GetOptionalQueryParam(r, "sort", domain.ShopSortName),
			Descending:  desc,
			InStockOnly: inStock,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgShopFailed, err)
			return
		}

		items, err := shop.Query(shop.Build(catalogs.Current()), q)
		if err != nil {
			respondServiceError(w, r, ErrMsgShopFailed, err)
			return
		}
		logger.FromContext(r.Context()).Debug(LogMsgShopListed, "category", q.Category, "items", len(items))
		respondJSON(w, http.StatusOK, ShopResponse{Category: q.Category, SortBy: q.SortBy, Items: items})
	}
}
