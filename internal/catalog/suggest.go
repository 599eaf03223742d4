package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// Suggest returns the known name closest to name for the given kind, or ""
// when nothing is close enough. Matching ignores case.
func (c *Catalog) Suggest(kind domain.ItemKind, name string) string {
	var candidates []string
	switch kind {
	case domain.ItemKindSeed:
		candidates = c.seedNames
	case domain.ItemKindPlot:
		candidates = c.plotNames
	case domain.ItemKindLamp:
		candidates = c.lampNames
	case domain.ItemKindAnimal:
		candidates = c.AnimalNames()
	}
	matches := closest(name, candidates, 1)
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

// SuggestAll ranks names of every kind by closeness to name.
func (c *Catalog) SuggestAll(name string, limit int) []string {
	all := make([]string, 0, len(c.seedNames)+len(c.plotNames)+len(c.lampNames)+len(c.animals))
	all = append(all, c.seedNames...)
	all = append(all, c.plotNames...)
	all = append(all, c.lampNames...)
	all = append(all, c.AnimalNames()...)
	return closest(name, all, limit)
}

type scored struct {
	name string
	dist int
}

func closest(name string, candidates []string, limit int) []string {
	token := strings.ToLower(strings.TrimSpace(name))
	if token == "" || limit <= 0 {
		return nil
	}

	seen := make(map[string]bool, len(candidates))
	results := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		if seen[cand] {
			continue
		}
		seen[cand] = true

		lower := strings.ToLower(cand)
		switch {
		case lower == token:
			results = append(results, scored{name: cand, dist: 0})
		case strings.HasPrefix(lower, token) && len(token) >= 2:
			results = append(results, scored{name: cand, dist: 1})
		default:
			dist := levenshtein.ComputeDistance(token, lower)
			if dist > distanceLimit(len(lower)) {
				continue
			}
			results = append(results, scored{name: cand, dist: dist})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].name < results[j].name
		}
		return results[i].dist < results[j].dist
	})
	if len(results) > limit {
		results = results[:limit]
	}
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.name
	}
	return names
}

func distanceLimit(length int) int {
	switch {
	case length <= shortNameLen:
		return maxSuggestDistanceShort
	case length <= mediumNameLen:
		return maxSuggestDistanceMedium
	default:
		return maxSuggestDistanceLong
	}
}
