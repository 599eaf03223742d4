package domain

// Shop categories.
const (
	ShopCategoryAll        = "all"
	ShopCategorySeeds      = "Seeds"
	ShopCategoryPlots      = "Plots"
	ShopCategoryLamps      = "Lamps"
	ShopCategoryAnimals    = "Animals"
	ShopCategoryHarvesters = "Auto Harvesters"
)

// ShopCategories lists the categories in display order.
var ShopCategories = []string{
	ShopCategorySeeds,
	ShopCategoryPlots,
	ShopCategoryLamps,
	ShopCategoryAnimals,
	ShopCategoryHarvesters,
}

// Shop sort keys.
const (
	ShopSortName   = "name"
	ShopSortPrice  = "price"
	ShopSortRarity = "rarity"
)

// ShopItem is one purchasable listing.
type ShopItem struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	USDT     float64 `json:"usdt"`
	InStock  bool    `json:"in_stock"`
	Icon     string  `json:"icon,omitempty"`
}

// Available reports whether the item can currently be bought.
func (s ShopItem) Available() bool {
	return (s.InStock && s.Price > 0) || s.USDT > 0
}

// ShopQuery filters and orders a shop listing.
type ShopQuery struct {
	Category    string
	SortBy      string
	Descending  bool
	InStockOnly bool
}
