package domain

import (
	"fmt"
	"strings"
)

// Rarity is a seed tier. Tiers are ordered Common < ... < Legendary.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// RarityCount is the number of tiers.
const RarityCount = 5

// Rarities lists every tier in ascending order.
var Rarities = [RarityCount]Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// Index returns the tier position (0 for Common) or -1 for an unknown rarity.
func (r Rarity) Index() int {
	for i, candidate := range Rarities {
		if candidate == r {
			return i
		}
	}
	return -1
}

// Valid reports whether r is one of the five tiers.
func (r Rarity) Valid() bool {
	return r.Index() >= 0
}

// CommonEquivalent is the number of commons merged into one unit of r (1, 2, 4, 8, 16).
func (r Rarity) CommonEquivalent() int {
	idx := r.Index()
	if idx < 0 {
		return 0
	}
	return 1 << idx
}

// ParseRarity resolves a rarity case-insensitively.
func ParseRarity(s string) (Rarity, error) {
	trimmed := strings.TrimSpace(s)
	for _, r := range Rarities {
		if strings.EqualFold(string(r), trimmed) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRarity, s)
}

// RarityFromProducts maps an animal products count (1..16) to its tier.
func RarityFromProducts(products int) (Rarity, bool) {
	for i, r := range Rarities {
		if products == 1<<i {
			return r, true
		}
	}
	return "", false
}
