package planner

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/metrics"
)

// reportCache memoises strategy reports. A nil cache never hits.
type reportCache struct {
	lru *expirable.LRU[string, *domain.StrategyReport]
}

func newReportCache(size int, ttl time.Duration) *reportCache {
	if size <= 0 {
		return nil
	}
	return &reportCache{lru: expirable.NewLRU[string, *domain.StrategyReport](size, nil, ttl)}
}

func (c *reportCache) get(key string) (*domain.StrategyReport, bool) {
	if c == nil {
		return nil, false
	}
	report, ok := c.lru.Get(key)
	if ok {
		metrics.StrategyCacheHits.Inc()
	} else {
		metrics.StrategyCacheMisses.Inc()
	}
	return report, ok
}

func (c *reportCache) add(key string, report *domain.StrategyReport) {
	if c == nil {
		return
	}
	c.lru.Add(key, report)
}

func (c *reportCache) len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// canonicalInventory is the cache identity of an inventory. Zero and negative
// quantities are dropped and exclusions sorted, so equivalent snapshots collide.
type canonicalInventory struct {
	Seeds     map[string]int   `json:"seeds"`
	Plots     map[string]int   `json:"plots"`
	Lamps     map[string]int   `json:"lamps"`
	Objective domain.Objective `json:"objective"`
	Excluded  []string         `json:"excluded"`
	Catalog   string           `json:"catalog"`
}

// cacheKey digests the parts of inv that affect the strategy together with
// the catalog digest. Animals do not take part in the strategy.
func cacheKey(inv domain.Inventory, catalogDigest string) string {
	c := canonicalInventory{
		Seeds:     positive(inv.Seeds),
		Plots:     positive(inv.Plots),
		Lamps:     positive(inv.Lamps),
		Objective: inv.Objective,
		Excluded:  append([]string{}, inv.Excluded...),
		Catalog:   catalogDigest,
	}
	if c.Objective == "" {
		c.Objective = domain.DefaultObjective
	}
	sort.Strings(c.Excluded)

	// encoding/json writes map keys sorted
	raw, _ := json.Marshal(c)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func positive(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		if v > 0 {
			out[k] = v
		}
	}
	return out
}
