package catalog

// Data file base names. Each is read as <name>.json, then <name>.yaml, then <name>.yml.
const (
	SeedFile    = "seed_data"
	PlotFile    = "plot_data"
	LampFile    = "lamp_data"
	AnimalFile  = "animal_data"
	RobotFile   = "robot_data"
	ProductFile = "product_data"
	FoodFile    = "food_data"
)

var fileExtensions = []string{".json", ".yaml", ".yml"}

// Top-level keys of the data files
const (
	keyHarvesters = "Auto Harvesters"
	keyIcon       = "icon"
)

// Error message formats
const (
	ErrMsgReadFileFailed       = "failed to read %s: %w"
	ErrMsgParseFileFailed      = "failed to parse %s: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
	ErrFmtMissingRarity        = "%w: seed %q has no %s tier"
	ErrFmtDuplicateName        = "%w: duplicate %s %q"
	ErrFmtEmptyName            = "%w: %s with empty name"
	ErrFmtFieldInvalid         = "%w: %s %q: %s"
	ErrFmtUnknownProductRarity = "%w: product %q has unknown rarity %q"
)

// Log messages
const (
	LogMsgCatalogLoaded       = "Catalog loaded"
	LogMsgCatalogFallback     = "Catalog data unavailable, using built-in fallback"
	LogMsgCatalogReloaded     = "Catalog reloaded"
	LogMsgCatalogUnchanged    = "Catalog unchanged"
	LogMsgCatalogReloadFailed = "Catalog reload failed, keeping previous catalog"
)

// Suggestion tuning
const (
	maxSuggestDistanceShort  = 1
	maxSuggestDistanceMedium = 2
	maxSuggestDistanceLong   = 3
	shortNameLen             = 4
	mediumNameLen            = 8
)
