package catalog

import "github.com/osse101/PlotPlanner_Go/internal/domain"

// Fallback returns the minimal built-in catalog used when the data files
// cannot be loaded.
func Fallback() *Catalog {
	c, err := New(Data{
		Seeds: []domain.SeedDef{{
			Name: "Strawberry",
			Icon: "🍓",
			Tiers: map[domain.Rarity]domain.SeedEntry{
				domain.RarityCommon:    {Name: "Strawberry", Rarity: domain.RarityCommon, GrowTime: 2, YieldPoints: 1},
				domain.RarityUncommon:  {Name: "Strawberry", Rarity: domain.RarityUncommon, GrowTime: 2, YieldPoints: 2},
				domain.RarityRare:      {Name: "Strawberry", Rarity: domain.RarityRare, GrowTime: 2, YieldPoints: 3},
				domain.RarityEpic:      {Name: "Strawberry", Rarity: domain.RarityEpic, GrowTime: 2, YieldPoints: 7},
				domain.RarityLegendary: {Name: "Strawberry", Rarity: domain.RarityLegendary, GrowTime: 2, YieldPoints: 13},
			},
		}},
		Plots: []domain.PlotEntry{{Name: "Cardboard", Multiplier: 1, Icon: "📦"}},
		Lamps: []domain.LampEntry{{Name: "Common", TimeReducePercent: 3, ChancePercent: 3, Icon: "💡"}},
	})
	if err != nil {
		panic("built-in catalog is invalid: " + err.Error())
	}
	return c
}
