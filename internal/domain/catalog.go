package domain

// SeedEntry holds the static attributes of one seed at one rarity.
type SeedEntry struct {
	Name        string  `json:"name"`
	Rarity      Rarity  `json:"rarity"`
	GrowTime    float64 `json:"grow_time" validate:"gt=0"`
	YieldPoints float64 `json:"bio_points" validate:"gte=0"`
}

// YieldRate is bio points per minute for a single unplanted instance.
func (e SeedEntry) YieldRate() float64 {
	return e.YieldPoints / e.GrowTime
}

// SeedDef is a seed with all of its rarity tiers and shop data.
type SeedDef struct {
	Name     string               `json:"name"`
	Tiers    map[Rarity]SeedEntry `json:"tiers"`
	Seasonal bool                 `json:"seasonal"`
	Icon     string               `json:"icon,omitempty"`
	Price    float64              `json:"price" validate:"gte=0"`
	USDT     float64              `json:"usdt" validate:"gte=0"`
	InStock  bool                 `json:"in_stock"`
}

// PlotEntry holds the static attributes of a plot type.
type PlotEntry struct {
	Name       string  `json:"name"`
	Multiplier int     `json:"multiplier" validate:"oneof=1 2 4 8 16"`
	Icon       string  `json:"icon,omitempty"`
	Price      float64 `json:"price" validate:"gte=0"`
	USDT       float64 `json:"usdt" validate:"gte=0"`
	InStock    bool    `json:"in_stock"`
	MergeCost  float64 `json:"merge_cost,omitempty" validate:"gte=0"`
	FertReq    int     `json:"fert_req,omitempty" validate:"gte=0"`
}

// LampEntry holds the static attributes of a lamp type.
// TimeReducePercent is stored as in the data files (3 means 3%).
type LampEntry struct {
	Name              string  `json:"name"`
	TimeReducePercent float64 `json:"time_reduce" validate:"gte=0,lt=100"`
	ChancePercent     float64 `json:"chance" validate:"gte=0,lte=100"`
	Icon              string  `json:"icon,omitempty"`
	Price             float64 `json:"price" validate:"gte=0"`
	USDT              float64 `json:"usdt" validate:"gte=0"`
	InStock           bool    `json:"in_stock"`
	MergeCost         float64 `json:"merge_cost,omitempty" validate:"gte=0"`
	FertReq           int     `json:"fert_req,omitempty" validate:"gte=0"`
}

// ReductionFraction converts the percentage into a 0..1 fraction.
func (e LampEntry) ReductionFraction() float64 {
	return e.TimeReducePercent / 100
}

// AnimalEntry holds the static attributes of one animal.
type AnimalEntry struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	GrowTime  float64 `json:"grow_time" validate:"gt=0"`
	Products  int     `json:"products" validate:"oneof=1 2 4 8 16"`
	Produces  string  `json:"produces,omitempty"`
	Price     float64 `json:"price" validate:"gte=0"`
	USDT      float64 `json:"usdt" validate:"gte=0"`
	InStock   bool    `json:"in_stock"`
	MergeCost float64 `json:"merge_cost,omitempty" validate:"gte=0"`
	ItemReq   string  `json:"item_req,omitempty"`
}

// AnimalCategory groups animals that merge into each other.
type AnimalCategory struct {
	Name    string        `json:"name"`
	Icon    string        `json:"icon,omitempty"`
	Animals []AnimalEntry `json:"animals"`
}

// ProductEntry describes one rarity of an animal product.
type ProductEntry struct {
	Type      string  `json:"type"`
	Rarity    Rarity  `json:"rarity"`
	GrowTime  float64 `json:"grow_time" validate:"gt=0"`
	BioPoints float64 `json:"bio_points" validate:"gte=0"`
}

// FoodIngredient is one line of a food recipe.
type FoodIngredient struct {
	Name     string `json:"name"`
	Type     string `json:"type"` // "seeds" or "products"
	Rarity   string `json:"rarity,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// FoodRecipe is the feed recipe for an animal category.
type FoodRecipe struct {
	Category string           `json:"category"`
	Recipe   []FoodIngredient `json:"recipe"`
	Yield    int              `json:"yield"`
	Produces string           `json:"produces,omitempty"`
}

// HarvesterEntry is an auto harvester shop listing.
type HarvesterEntry struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	USDT    float64 `json:"usdt"`
	InStock bool    `json:"in_stock"`
}

// MergeRequirement describes how an item is crafted from the tier below it.
type MergeRequirement struct {
	Kind       ItemKind `json:"kind"`
	Name       string   `json:"name"`
	Previous   string   `json:"previous,omitempty"`
	Count      int      `json:"count,omitempty"`
	Coins      float64  `json:"coins,omitempty"`
	Fertiliser int      `json:"fertiliser,omitempty"`
	Item       string   `json:"item,omitempty"`
}

// Mergeable reports whether the item can be crafted at all.
func (m MergeRequirement) Mergeable() bool {
	return m.Previous != "" || m.Coins > 0 || m.Item != ""
}
