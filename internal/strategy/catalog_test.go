package strategy

import (
	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// stubCatalog is an in-memory Catalog for engine tests.
type stubCatalog struct {
	seeds map[domain.SeedKey]domain.SeedEntry
	plots map[string]domain.PlotEntry
	lamps map[string]domain.LampEntry
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		seeds: map[domain.SeedKey]domain.SeedEntry{},
		plots: map[string]domain.PlotEntry{},
		lamps: map[string]domain.LampEntry{},
	}
}

func (c *stubCatalog) withSeed(name string, rarity domain.Rarity, growTime, yield float64) *stubCatalog {
	c.seeds[domain.SeedKey{Name: name, Rarity: rarity}] = domain.SeedEntry{
		Name: name, Rarity: rarity, GrowTime: growTime, YieldPoints: yield,
	}
	return c
}

func (c *stubCatalog) withPlot(name string, multiplier int) *stubCatalog {
	c.plots[name] = domain.PlotEntry{Name: name, Multiplier: multiplier}
	return c
}

func (c *stubCatalog) withLamp(name string, percent float64) *stubCatalog {
	c.lamps[name] = domain.LampEntry{Name: name, TimeReducePercent: percent}
	return c
}

func (c *stubCatalog) SeedEntry(name string, rarity domain.Rarity) (domain.SeedEntry, error) {
	key := domain.SeedKey{Name: name, Rarity: rarity}
	entry, ok := c.seeds[key]
	if !ok {
		return domain.SeedEntry{}, &domain.CatalogError{Kind: domain.ItemKindSeed, Key: key.String(), Err: domain.ErrCatalogEntryNotFound}
	}
	return entry, nil
}

func (c *stubCatalog) PlotEntry(name string) (domain.PlotEntry, error) {
	entry, ok := c.plots[name]
	if !ok {
		return domain.PlotEntry{}, &domain.CatalogError{Kind: domain.ItemKindPlot, Key: name, Err: domain.ErrCatalogEntryNotFound}
	}
	return entry, nil
}

func (c *stubCatalog) LampEntry(name string) (domain.LampEntry, error) {
	entry, ok := c.lamps[name]
	if !ok {
		return domain.LampEntry{}, &domain.CatalogError{Kind: domain.ItemKindLamp, Key: name, Err: domain.ErrCatalogEntryNotFound}
	}
	return entry, nil
}

func berryCatalog() *stubCatalog {
	return newStubCatalog().
		withSeed("Berry", domain.RarityCommon, 2, 1).
		withSeed("Berry", domain.RarityLegendary, 2, 13).
		withSeed("Melon", domain.RarityCommon, 10, 10).
		withSeed("Melon", domain.RarityRare, 8, 10).
		withSeed("Sprout", domain.RarityCommon, 3, 1).
		withPlot("Cardboard", 1).
		withPlot("Wooden", 2).
		withPlot("Stone", 4).
		withLamp("Common", 3).
		withLamp("Half", 50)
}

func inventory(objective domain.Objective, seeds, plots, lamps map[string]int, excluded ...string) domain.Inventory {
	inv := domain.NewInventory()
	inv.Objective = objective
	for k, v := range seeds {
		inv.Seeds[k] = v
	}
	for k, v := range plots {
		inv.Plots[k] = v
	}
	for k, v := range lamps {
		inv.Lamps[k] = v
	}
	inv.Excluded = excluded
	return inv
}
