package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Planner metric names
const (
	MetricNameStrategyComputations = "planner_strategy_computations_total"
	MetricNameStrategyDuration     = "planner_strategy_duration_seconds"
	MetricNameStrategyErrors       = "planner_strategy_errors_total"
	MetricNameStrategyCacheHits    = "planner_strategy_cache_hits_total"
	MetricNameStrategyCacheMisses  = "planner_strategy_cache_misses_total"
	MetricNameProfileSaves         = "planner_profile_saves_total"
	MetricNameProfileSaveErrors    = "planner_profile_save_errors_total"
	MetricNamePendingSaves         = "planner_pending_saves"
	MetricNameCatalogReloads       = "planner_catalog_reloads_total"
	MetricNameCatalogItems         = "planner_catalog_items"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Planner metric help text
const (
	HelpTextStrategyComputations = "Total number of strategy computations"
	HelpTextStrategyDuration     = "Strategy computation latency in seconds"
	HelpTextStrategyErrors       = "Total number of strategy computations rejected by catalog errors"
	HelpTextStrategyCacheHits    = "Total number of strategy results served from cache"
	HelpTextStrategyCacheMisses  = "Total number of strategy results computed on a cache miss"
	HelpTextProfileSaves         = "Total number of profile writes"
	HelpTextProfileSaveErrors    = "Total number of failed profile writes"
	HelpTextPendingSaves         = "Profiles with a debounced save waiting to fire"
	HelpTextCatalogReloads       = "Total number of catalog reload attempts"
	HelpTextCatalogItems         = "Number of catalog entries currently loaded"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelObjective = "objective"
	LabelTrigger   = "trigger"
	LabelOutcome   = "outcome"
	LabelKind      = "kind"
)

// Label values
const (
	TriggerAutosave = "autosave"
	TriggerExplicit = "explicit"
	TriggerFlush    = "flush"
	TriggerImport   = "import"

	OutcomeChanged   = "changed"
	OutcomeUnchanged = "unchanged"
	OutcomeFailed    = "failed"

	unmatchedRoute = "unmatched"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// StrategyLatencyBuckets are tuned for sub-millisecond computations
var StrategyLatencyBuckets = []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05}
