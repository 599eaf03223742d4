package valuation

import (
	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// Counts holds owned quantities per rarity tier, Common first.
type Counts [domain.RarityCount]int

// SimulateMerges merges pairs of each tier into the next until nothing changes.
func SimulateMerges(counts Counts) Counts {
	for changed := true; changed; {
		changed = false
		for i := 0; i < domain.RarityCount-1; i++ {
			if pairs := counts[i] / domain.CommonsPerMerge; pairs > 0 {
				counts[i] -= pairs * domain.CommonsPerMerge
				counts[i+1] += pairs
				changed = true
			}
		}
	}
	return counts
}

// CommonsNeeded is the fewest extra commons that, merged with counts, yield at
// least one item of the target tier. ok is false when no amount up to
// domain.MaxMergeCommons suffices.
func CommonsNeeded(target domain.Rarity, counts Counts) (needed int, ok bool) {
	idx := target.Index()
	if idx < 0 {
		return 0, false
	}
	for extra := 0; extra <= domain.MaxMergeCommons; extra++ {
		trial := counts
		trial[0] += extra
		if SimulateMerges(trial)[idx] > 0 {
			return extra, true
		}
	}
	return 0, false
}

// SeedCounts extracts one seed's per-tier quantities from an inventory.
func SeedCounts(inv domain.Inventory, seed string) Counts {
	var counts Counts
	for i, r := range domain.Rarities {
		counts[i] = domain.ClampQuantity(inv.Seeds[domain.SeedKey{Name: seed, Rarity: r}.String()])
	}
	return counts
}

// UpgradePlan lists, for every tier above the lowest owned one, how many more
// commons reach it and what they cost. With nothing owned it returns the
// price of buying a Legendary's worth of commons instead.
func (c *Calculator) UpgradePlan(cat Catalog, inv domain.Inventory, seed string) (domain.UpgradePlan, error) {
	def, err := cat.Seed(seed)
	if err != nil {
		return domain.UpgradePlan{}, err
	}

	plan := domain.UpgradePlan{Seed: seed, Steps: []domain.UpgradeStep{}}
	counts := SeedCounts(inv, seed)

	lowest := -1
	for i, qty := range counts {
		if qty > 0 {
			lowest = i
			break
		}
	}

	if lowest < 0 {
		commons := domain.RarityLegendary.CommonEquivalent()
		plan.Acquire = &domain.UpgradeStep{
			Seed:          seed,
			From:          domain.RarityCommon,
			Target:        domain.RarityLegendary,
			CommonsNeeded: commons,
			Cost:          float64(commons) * def.Price,
			CostUSDT:      float64(commons) * def.USDT,
		}
		return plan, nil
	}

	for target := lowest + 1; target < domain.RarityCount; target++ {
		needed, ok := CommonsNeeded(domain.Rarities[target], counts)
		if !ok || needed == 0 {
			continue
		}
		plan.Steps = append(plan.Steps, domain.UpgradeStep{
			Seed:          seed,
			From:          domain.Rarities[lowest],
			Target:        domain.Rarities[target],
			CommonsNeeded: needed,
			Cost:          float64(needed) * def.Price,
			CostUSDT:      float64(needed) * def.USDT,
		})
	}
	return plan, nil
}
