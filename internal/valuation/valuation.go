package valuation

import (
	"sort"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// Catalog is the subset of catalog lookups valuation needs
type Catalog interface {
	Seed(name string) (domain.SeedDef, error)
	PlotEntry(name string) (domain.PlotEntry, error)
	Plots() []domain.PlotEntry
	LampEntry(name string) (domain.LampEntry, error)
	AnimalEntry(name string) (domain.AnimalEntry, error)
	AnimalCategories() []domain.AnimalCategory
}

// Calculator computes inventory worth and upgrade costs (no storage dependencies)
type Calculator struct{}

// NewCalculator creates a new valuation calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// TotalValue prices the inventory in merge equivalents: every item counts as
// the number of base items merged to make it, times the base item's price.
// Unknown or unpriced items add nothing.
func (c *Calculator) TotalValue(cat Catalog, inv domain.Inventory) float64 {
	total := 0.0

	for _, key := range sortedKeys(inv.Seeds) {
		qty := domain.ClampQuantity(inv.Seeds[key])
		if qty == 0 {
			continue
		}
		seedKey, err := domain.ParseSeedKey(key)
		if err != nil {
			continue
		}
		def, err := cat.Seed(seedKey.Name)
		if err != nil || def.Price <= 0 {
			continue
		}
		total += def.Price * float64(qty) * float64(seedKey.Rarity.CommonEquivalent())
	}

	basePlotPrice := 0.0
	for _, p := range cat.Plots() {
		if p.Multiplier == 1 {
			basePlotPrice = p.Price
			break
		}
	}
	for _, name := range sortedKeys(inv.Plots) {
		qty := domain.ClampQuantity(inv.Plots[name])
		plot, err := cat.PlotEntry(name)
		if qty == 0 || err != nil || basePlotPrice <= 0 {
			continue
		}
		total += basePlotPrice * float64(qty) * float64(plot.Multiplier)
	}

	// Lamps are named after their rarity; the Common lamp is the merge base.
	if baseLamp, err := cat.LampEntry(string(domain.RarityCommon)); err == nil && baseLamp.Price > 0 {
		for _, name := range sortedKeys(inv.Lamps) {
			qty := domain.ClampQuantity(inv.Lamps[name])
			rarity := domain.Rarity(name)
			if qty == 0 || !rarity.Valid() {
				continue
			}
			if _, err := cat.LampEntry(name); err != nil {
				continue
			}
			total += baseLamp.Price * float64(qty) * float64(rarity.CommonEquivalent())
		}
	}

	basePrices := baseAnimalPrices(cat.AnimalCategories())
	for _, name := range sortedKeys(inv.Animals) {
		qty := domain.ClampQuantity(inv.Animals[name])
		animal, err := cat.AnimalEntry(name)
		if qty == 0 || err != nil {
			continue
		}
		if base := basePrices[animal.Category]; base > 0 {
			total += base * float64(qty) * float64(animal.Products)
		}
	}

	return total
}

func baseAnimalPrices(categories []domain.AnimalCategory) map[string]float64 {
	prices := make(map[string]float64, len(categories))
	for _, cat := range categories {
		for _, a := range cat.Animals {
			if a.Products == 1 {
				prices[cat.Name] = a.Price
				break
			}
		}
	}
	return prices
}

// Investment sums the plain shop price of every owned item.
func (c *Calculator) Investment(cat Catalog, inv domain.Inventory) float64 {
	total := 0.0
	for _, key := range sortedKeys(inv.Seeds) {
		qty := domain.ClampQuantity(inv.Seeds[key])
		seedKey, err := domain.ParseSeedKey(key)
		if qty == 0 || err != nil {
			continue
		}
		if def, err := cat.Seed(seedKey.Name); err == nil {
			total += def.Price * float64(qty)
		}
	}
	for _, name := range sortedKeys(inv.Plots) {
		if p, err := cat.PlotEntry(name); err == nil {
			total += p.Price * float64(domain.ClampQuantity(inv.Plots[name]))
		}
	}
	for _, name := range sortedKeys(inv.Lamps) {
		if l, err := cat.LampEntry(name); err == nil {
			total += l.Price * float64(domain.ClampQuantity(inv.Lamps[name]))
		}
	}
	for _, name := range sortedKeys(inv.Animals) {
		if a, err := cat.AnimalEntry(name); err == nil {
			total += a.Price * float64(domain.ClampQuantity(inv.Animals[name]))
		}
	}
	return total
}

// LampBonus is the global grow-time multiplier of all owned lamps. Each lamp
// kind contributes its reduction times its quantity, capped at 90%, and kinds
// stack multiplicatively.
func (c *Calculator) LampBonus(cat Catalog, lamps map[string]int) float64 {
	multiplier := 1.0
	for _, name := range sortedKeys(lamps) {
		qty := domain.ClampQuantity(lamps[name])
		lamp, err := cat.LampEntry(name)
		if qty == 0 || err != nil {
			continue
		}
		multiplier *= 1 - min(lamp.ReductionFraction()*float64(qty), domain.MaxLampBonusPerKind)
	}
	return multiplier
}

// Totals returns owned counts, value figures and the naive production rate:
// every owned seed growing at once under the global lamp bonus, ignoring plots.
func (c *Calculator) Totals(cat Catalog, inv domain.Inventory) domain.Totals {
	totals := domain.Totals{
		Seeds:      sumCounts(inv.Seeds),
		Plots:      sumCounts(inv.Plots),
		Lamps:      sumCounts(inv.Lamps),
		Animals:    sumCounts(inv.Animals),
		LampBonus:  c.LampBonus(cat, inv.Lamps),
		TotalValue: c.TotalValue(cat, inv),
		Investment: c.Investment(cat, inv),
	}

	for _, key := range sortedKeys(inv.Seeds) {
		qty := domain.ClampQuantity(inv.Seeds[key])
		seedKey, err := domain.ParseSeedKey(key)
		if qty == 0 || err != nil {
			continue
		}
		def, err := cat.Seed(seedKey.Name)
		if err != nil {
			continue
		}
		entry, ok := def.Tiers[seedKey.Rarity]
		if !ok || entry.GrowTime <= 0 {
			continue
		}
		totals.YieldPerMin += entry.YieldPoints / (entry.GrowTime * totals.LampBonus) * float64(qty)
	}
	return totals
}

func sumCounts(counts map[string]int) int {
	total := 0
	for _, v := range counts {
		total += domain.ClampQuantity(v)
	}
	return total
}

// sortedKeys fixes the summation order so float totals are reproducible.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
