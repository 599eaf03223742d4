package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Strategy Metrics
var (
	StrategyComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStrategyComputations,
			Help: HelpTextStrategyComputations,
		},
		[]string{LabelObjective},
	)

	StrategyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameStrategyDuration,
			Help:    HelpTextStrategyDuration,
			Buckets: StrategyLatencyBuckets,
		},
		[]string{LabelObjective},
	)

	StrategyErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStrategyErrors,
			Help: HelpTextStrategyErrors,
		},
	)

	StrategyCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStrategyCacheHits,
			Help: HelpTextStrategyCacheHits,
		},
	)

	StrategyCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStrategyCacheMisses,
			Help: HelpTextStrategyCacheMisses,
		},
	)
)

// Persistence Metrics
var (
	ProfileSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfileSaves,
			Help: HelpTextProfileSaves,
		},
		[]string{LabelTrigger},
	)

	ProfileSaveErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfileSaveErrors,
			Help: HelpTextProfileSaveErrors,
		},
		[]string{LabelTrigger},
	)

	PendingSaves = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePendingSaves,
			Help: HelpTextPendingSaves,
		},
	)
)

// Catalog Metrics
var (
	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogReloads,
			Help: HelpTextCatalogReloads,
		},
		[]string{LabelOutcome},
	)

	CatalogItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
		[]string{LabelKind},
	)
)
