package strategy

import "github.com/osse101/PlotPlanner_Go/internal/domain"

// Catalog is the read-only lookup the engine needs. Implementations return
// an error wrapping domain.ErrCatalogEntryNotFound for unknown names.
type Catalog interface {
	SeedEntry(name string, rarity domain.Rarity) (domain.SeedEntry, error)
	PlotEntry(name string) (domain.PlotEntry, error)
	LampEntry(name string) (domain.LampEntry, error)
}
