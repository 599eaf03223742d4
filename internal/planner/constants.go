package planner

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// Log messages
const (
	LogMsgStrategyComputed   = "Strategy computed"
	LogMsgStrategyCacheHit   = "Strategy served from cache"
	LogMsgStrategyFailed     = "Strategy computation failed"
	LogMsgQuantityUpdated    = "Quantity updated"
	LogMsgExclusionToggled   = "Seed exclusion toggled"
	LogMsgObjectiveChanged   = "Objective changed"
	LogMsgFailedToQueueSave  = "Failed to queue profile save"
	LogMsgCacheDisabled      = "Strategy cache disabled"
	LogMsgStaleKeyCleared    = "Cleared quantity of an item missing from the catalog"
	LogMsgUpgradePlanBuilt   = "Upgrade plan built"
	LogMsgValuationCompleted = "Valuation completed"
)

// Error formats
const (
	ErrFmtUnknownSeedInstance = "%w: seed instance %q is not owned"
)
