package catalog

import (
	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// MergeRequirement describes how an item is made from the tier below it:
// two of the previous plot, lamp or animal in merge order plus any coin,
// fertiliser or item cost. Seeds have no merge requirement here; their
// upgrade path is the valuation package's concern.
func (c *Catalog) MergeRequirement(kind domain.ItemKind, name string) (domain.MergeRequirement, error) {
	req := domain.MergeRequirement{Kind: kind, Name: name}
	switch kind {
	case domain.ItemKindPlot:
		plots := c.data.Plots
		for i, p := range plots {
			if p.Name != name {
				continue
			}
			if i > 0 {
				req.Previous, req.Count = plots[i-1].Name, domain.CommonsPerMerge
			}
			req.Coins, req.Fertiliser = p.MergeCost, p.FertReq
			return req, nil
		}
	case domain.ItemKindLamp:
		lamps := c.data.Lamps
		for i, l := range lamps {
			if l.Name != name {
				continue
			}
			if i > 0 {
				req.Previous, req.Count = lamps[i-1].Name, domain.CommonsPerMerge
			}
			req.Coins, req.Fertiliser = l.MergeCost, l.FertReq
			return req, nil
		}
	case domain.ItemKindAnimal:
		entry, ok := c.animals[name]
		if !ok {
			break
		}
		animals := c.categories[entry.Category].Animals
		for i, a := range animals {
			if a.Name != name {
				continue
			}
			if i > 0 {
				req.Previous, req.Count = animals[i-1].Name, domain.CommonsPerMerge
			}
			req.Coins, req.Item = a.MergeCost, a.ItemReq
			return req, nil
		}
	default:
		return req, domain.ErrInvalidItemKind
	}
	return req, c.notFound(kind, name, name)
}
