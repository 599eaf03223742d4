package shop

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// Catalog is the subset of catalog listings the shop reads
type Catalog interface {
	Seeds() []domain.SeedDef
	Plots() []domain.PlotEntry
	Lamps() []domain.LampEntry
	AnimalCategories() []domain.AnimalCategory
	Harvesters() []domain.HarvesterEntry
}

// Build flattens the catalog into shop listings in category display order.
// Seeds are sold for coins only.
func Build(cat Catalog) []domain.ShopItem {
	var items []domain.ShopItem
	for _, s := range cat.Seeds() {
		items = append(items, domain.ShopItem{
			Category: domain.ShopCategorySeeds,
			Name:     s.Name,
			Price:    s.Price,
			InStock:  s.InStock,
			Icon:     s.Icon,
		})
	}
	for _, p := range cat.Plots() {
		items = append(items, domain.ShopItem{
			Category: domain.ShopCategoryPlots,
			Name:     p.Name,
			Price:    p.Price,
			USDT:     p.USDT,
			InStock:  p.InStock,
			Icon:     p.Icon,
		})
	}
	for _, l := range cat.Lamps() {
		items = append(items, domain.ShopItem{
			Category: domain.ShopCategoryLamps,
			Name:     l.Name,
			Price:    l.Price,
			USDT:     l.USDT,
			InStock:  l.InStock,
			Icon:     l.Icon,
		})
	}
	for _, c := range cat.AnimalCategories() {
		for _, a := range c.Animals {
			items = append(items, domain.ShopItem{
				Category: domain.ShopCategoryAnimals,
				Name:     a.Name,
				Price:    a.Price,
				USDT:     a.USDT,
				InStock:  a.InStock,
				Icon:     c.Icon,
			})
		}
	}
	for _, h := range cat.Harvesters() {
		items = append(items, domain.ShopItem{
			Category: domain.ShopCategoryHarvesters,
			Name:     h.Name,
			Price:    h.Price,
			USDT:     h.USDT,
			InStock:  h.InStock,
		})
	}
	return items
}

// ValidateQuery normalises the category and sort key of q.
func ValidateQuery(q domain.ShopQuery) (domain.ShopQuery, error) {
	if q.Category == "" {
		q.Category = domain.ShopCategoryAll
	}
	if !strings.EqualFold(q.Category, domain.ShopCategoryAll) {
		found := false
		for _, c := range domain.ShopCategories {
			if strings.EqualFold(c, q.Category) {
				q.Category = c
				found = true
				break
			}
		}
		if !found {
			return q, fmt.Errorf("%w: unknown shop category %q", domain.ErrInvalidInput, q.Category)
		}
	} else {
		q.Category = domain.ShopCategoryAll
	}

	switch strings.ToLower(q.SortBy) {
	case "":
		q.SortBy = domain.ShopSortName
	case domain.ShopSortName, domain.ShopSortPrice, domain.ShopSortRarity:
		q.SortBy = strings.ToLower(q.SortBy)
	default:
		return q, fmt.Errorf("%w: unknown shop sort %q", domain.ErrInvalidInput, q.SortBy)
	}
	return q, nil
}

// Query filters and orders items. The input slice is not modified.
func Query(items []domain.ShopItem, q domain.ShopQuery) ([]domain.ShopItem, error) {
	q, err := ValidateQuery(q)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ShopItem, 0, len(items))
	for _, item := range items {
		if q.Category != domain.ShopCategoryAll && item.Category != q.Category {
			continue
		}
		if q.InStockOnly && !item.Available() {
			continue
		}
		out = append(out, item)
	}

	less := lessFunc(q.SortBy)
	sort.SliceStable(out, func(i, j int) bool {
		if q.Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out, nil
}

func lessFunc(sortBy string) func(a, b domain.ShopItem) bool {
	switch sortBy {
	case domain.ShopSortPrice:
		return func(a, b domain.ShopItem) bool { return a.Price < b.Price }
	case domain.ShopSortRarity:
		return func(a, b domain.ShopItem) bool { return RarityOf(a.Name).Index() < RarityOf(b.Name).Index() }
	default:
		return func(a, b domain.ShopItem) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	}
}

// RarityOf guesses an item's tier from a rarity word in its name.
// Names without one are Common.
func RarityOf(name string) domain.Rarity {
	lower := strings.ToLower(name)
	for i := len(domain.Rarities) - 1; i >= 0; i-- {
		r := domain.Rarities[i]
		if strings.Contains(lower, strings.ToLower(string(r))) {
			return r
		}
	}
	return domain.RarityCommon
}
