package strategy

import (
	"fmt"
	"sort"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// ExpandSeeds turns seed quantities into one instance per owned unit.
// Keys are visited in byte-wise name order, then rarity tier, whatever order
// the Catalog lists its seeds in, so ids and order are reproducible.
func ExpandSeeds(cat Catalog, quantities map[string]int) ([]domain.SeedInstance, error) {
	keys := make([]domain.SeedKey, 0, len(quantities))
	counts := make(map[domain.SeedKey]int, len(quantities))
	rawKeys := make(map[domain.SeedKey]string, len(quantities))
	for raw, qty := range quantities {
		key, err := domain.ParseSeedKey(raw)
		if err != nil {
			return nil, err
		}
		if prev, dup := rawKeys[key]; dup {
			return nil, fmt.Errorf("%w: %q and %q name the same seed", domain.ErrDuplicateSeedInstance, prev, raw)
		}
		rawKeys[key] = raw
		counts[key] = domain.ClampQuantity(qty)
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Rarity.Index() < keys[j].Rarity.Index()
	})

	var instances []domain.SeedInstance
	seen := make(map[domain.SeedInstanceID]struct{})
	for _, key := range keys {
		qty := counts[key]
		if qty == 0 {
			continue
		}
		entry, err := cat.SeedEntry(key.Name, key.Rarity)
		if err != nil {
			return nil, err
		}
		if entry.GrowTime <= 0 {
			return nil, fmt.Errorf("%w: seed %s has grow time %v", domain.ErrInvalidGrowTime, key, entry.GrowTime)
		}
		for i := 0; i < qty; i++ {
			id := domain.NewSeedInstanceID(key, i)
			if _, dup := seen[id]; dup {
				return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateSeedInstance, id)
			}
			seen[id] = struct{}{}
			instances = append(instances, domain.SeedInstance{
				ID:          id,
				Name:        key.Name,
				Rarity:      key.Rarity,
				Ordinal:     i,
				GrowTime:    entry.GrowTime,
				YieldPoints: entry.YieldPoints,
				YieldRate:   entry.YieldPoints / entry.GrowTime,
			})
		}
	}
	return instances, nil
}

// ExpandPlots turns plot quantities into one instance per owned unit, in name order.
func ExpandPlots(cat Catalog, quantities map[string]int) ([]domain.PlotInstance, error) {
	var plots []domain.PlotInstance
	for _, name := range sortedNames(quantities) {
		qty := domain.ClampQuantity(quantities[name])
		if qty == 0 {
			continue
		}
		entry, err := cat.PlotEntry(name)
		if err != nil {
			return nil, err
		}
		if entry.Multiplier <= 0 {
			return nil, fmt.Errorf("%w: plot %s has multiplier %d", domain.ErrInvalidMultiplier, name, entry.Multiplier)
		}
		for i := 0; i < qty; i++ {
			plots = append(plots, domain.PlotInstance{Kind: name, Multiplier: entry.Multiplier})
		}
	}
	return plots, nil
}

// ExpandLamps turns lamp quantities into one instance per owned unit, in name order.
func ExpandLamps(cat Catalog, quantities map[string]int) ([]domain.LampInstance, error) {
	var lamps []domain.LampInstance
	for _, name := range sortedNames(quantities) {
		qty := domain.ClampQuantity(quantities[name])
		if qty == 0 {
			continue
		}
		entry, err := cat.LampEntry(name)
		if err != nil {
			return nil, err
		}
		fraction := entry.ReductionFraction()
		if fraction < 0 || fraction >= 1 {
			return nil, fmt.Errorf("%w: lamp %s reduces by %v%%", domain.ErrInvalidLampReduction, name, entry.TimeReducePercent)
		}
		for i := 0; i < qty; i++ {
			lamps = append(lamps, domain.LampInstance{Kind: name, ReductionFraction: fraction})
		}
	}
	return lamps, nil
}

func sortedNames(quantities map[string]int) []string {
	names := make([]string, 0, len(quantities))
	for name := range quantities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
