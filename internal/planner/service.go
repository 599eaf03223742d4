package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/PlotPlanner_Go/internal/catalog"
	"github.com/osse101/PlotPlanner_Go/internal/concurrency"
	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/logger"
	"github.com/osse101/PlotPlanner_Go/internal/metrics"
	"github.com/osse101/PlotPlanner_Go/internal/strategy"
	"github.com/osse101/PlotPlanner_Go/internal/valuation"
)

// Service defines the interface for planner operations
type Service interface {
	Compute(ctx context.Context, inv domain.Inventory) (*domain.StrategyReport, error)
	ProfileReport(ctx context.Context, name string) (*domain.StrategyReport, error)
	SetQuantity(ctx context.Context, name string, kind domain.ItemKind, key string, qty int) (*domain.StrategyReport, error)
	ToggleExclusion(ctx context.Context, name string, id domain.SeedInstanceID) (*domain.StrategyReport, error)
	SetObjective(ctx context.Context, name string, objective string) (*domain.StrategyReport, error)
	Value(ctx context.Context, name string) (*domain.Totals, error)
	Upgrades(ctx context.Context, name string, seed string) (*domain.UpgradePlan, error)
}

// CatalogSource yields the catalog currently in effect
type CatalogSource interface {
	Current() *catalog.Catalog
}

// ProfileStore is the slice of the profile service the planner mutates through
type ProfileStore interface {
	Load(ctx context.Context, name string) (*domain.Profile, error)
	ScheduleSave(ctx context.Context, profile *domain.Profile) error
}

// Options tunes the strategy cache. A CacheSize of zero disables it.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

// DefaultOptions returns the cache settings used when none are configured
func DefaultOptions() Options {
	return Options{CacheSize: DefaultCacheSize, CacheTTL: DefaultCacheTTL}
}

type service struct {
	catalogs   CatalogSource
	profiles   ProfileStore
	engine     *strategy.Engine
	reporter   *strategy.Reporter
	calculator *valuation.Calculator
	cache      *reportCache
	locks      *concurrency.LockManager
}

// NewService creates a new planner service
func NewService(catalogs CatalogSource, profiles ProfileStore, opts Options) Service {
	if opts.CacheSize <= 0 {
		logger.Debug(LogMsgCacheDisabled)
	}
	return &service{
		catalogs:   catalogs,
		profiles:   profiles,
		engine:     strategy.NewEngine(),
		reporter:   strategy.NewReporter(),
		calculator: valuation.NewCalculator(),
		cache:      newReportCache(opts.CacheSize, opts.CacheTTL),
		locks:      concurrency.NewLockManager(),
	}
}

// Compute builds the strategy report for an inventory snapshot. Reports are
// shared between callers and must not be modified.
func (s *service) Compute(ctx context.Context, inv domain.Inventory) (*domain.StrategyReport, error) {
	return s.compute(ctx, s.catalogs.Current(), inv)
}

func (s *service) compute(ctx context.Context, cat *catalog.Catalog, inv domain.Inventory) (*domain.StrategyReport, error) {
	log := logger.FromContext(ctx)
	key := cacheKey(inv, cat.Digest())
	if report, ok := s.cache.get(key); ok {
		log.Debug(LogMsgStrategyCacheHit, "objective", report.Result.Objective)
		return report, nil
	}

	start := time.Now()
	result, err := s.engine.Compute(cat, inv)
	if err != nil {
		metrics.StrategyErrors.Inc()
		log.Warn(LogMsgStrategyFailed, "error", err)
		return nil, err
	}
	elapsed := time.Since(start)
	objective := string(result.Objective)
	metrics.StrategyComputations.WithLabelValues(objective).Inc()
	metrics.StrategyDuration.WithLabelValues(objective).Observe(elapsed.Seconds())

	report := s.reporter.Report(result)
	s.cache.add(key, report)
	log.Debug(LogMsgStrategyComputed,
		"objective", objective,
		"assignments", len(result.Assignments),
		"duration", elapsed)
	return report, nil
}

// ProfileReport computes the strategy for a stored profile
func (s *service) ProfileReport(ctx context.Context, name string) (*domain.StrategyReport, error) {
	profile, err := s.profiles.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.Compute(ctx, profile.Inventory())
}

// mutate loads the profile under its lock, applies fn to the inventory,
// recomputes and queues a save. Nothing is saved when fn or the
// computation fails.
func (s *service) mutate(ctx context.Context, name string, fn func(cat *catalog.Catalog, profile *domain.Profile, inv *domain.Inventory) error) (*domain.StrategyReport, error) {
	var report *domain.StrategyReport
	lockKey := domain.ProfileKey(strings.TrimSpace(name))
	err := s.locks.WithLock(lockKey, func() error {
		profile, err := s.profiles.Load(ctx, name)
		if err != nil {
			return err
		}
		cat := s.catalogs.Current()
		inv := profile.Inventory()
		if err := fn(cat, profile, &inv); err != nil {
			return err
		}

		report, err = s.compute(ctx, cat, inv)
		if err != nil {
			return err
		}

		profile.ApplyInventory(inv)
		if err := s.profiles.ScheduleSave(ctx, profile); err != nil {
			logger.FromContext(ctx).Error(LogMsgFailedToQueueSave, "profile", profile.Name, "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// SetQuantity sets an owned quantity. Negative quantities are stored as zero.
// A key missing from the catalog is rejected unless it is being cleared.
func (s *service) SetQuantity(ctx context.Context, name string, kind domain.ItemKind, key string, qty int) (*domain.StrategyReport, error) {
	kind, err := domain.ParseItemKind(string(kind))
	if err != nil {
		return nil, err
	}
	key = strings.TrimSpace(key)
	if kind == domain.ItemKindSeed {
		key = domain.CanonicalSeedKey(key)
	}
	qty = domain.ClampQuantity(qty)

	return s.mutate(ctx, name, func(cat *catalog.Catalog, profile *domain.Profile, inv *domain.Inventory) error {
		quantities := inv.Quantities(kind)
		if err := checkCatalogKey(cat, kind, key); err != nil {
			if _, stored := quantities[key]; !stored || qty != 0 {
				return err
			}
			delete(quantities, key)
			logger.FromContext(ctx).Info(LogMsgStaleKeyCleared, "profile", profile.Name, "kind", kind, "key", key)
			return nil
		}
		quantities[key] = qty
		logger.FromContext(ctx).Debug(LogMsgQuantityUpdated, "profile", profile.Name, "kind", kind, "key", key, "quantity", qty)
		return nil
	})
}

func checkCatalogKey(cat *catalog.Catalog, kind domain.ItemKind, key string) error {
	switch kind {
	case domain.ItemKindSeed:
		seedKey, err := domain.ParseSeedKey(key)
		if err != nil {
			return err
		}
		_, err = cat.SeedEntry(seedKey.Name, seedKey.Rarity)
		return err
	case domain.ItemKindPlot:
		_, err := cat.PlotEntry(key)
		return err
	case domain.ItemKindLamp:
		_, err := cat.LampEntry(key)
		return err
	case domain.ItemKindAnimal:
		_, err := cat.AnimalEntry(key)
		return err
	}
	return fmt.Errorf("%w: %q", domain.ErrInvalidItemKind, kind)
}

// ToggleExclusion excludes an owned seed instance from planting, or
// re-includes it if already excluded. Ids of seeds no longer owned may be
// removed but not added.
func (s *service) ToggleExclusion(ctx context.Context, name string, id domain.SeedInstanceID) (*domain.StrategyReport, error) {
	key, ordinal, err := id.Parse()
	if err != nil {
		return nil, err
	}
	id = domain.NewSeedInstanceID(key, ordinal)

	return s.mutate(ctx, name, func(_ *catalog.Catalog, profile *domain.Profile, inv *domain.Inventory) error {
		_, wasExcluded := inv.ExclusionSet()[id]
		if !wasExcluded && ordinal >= domain.ClampQuantity(inv.Seeds[key.String()]) {
			return fmt.Errorf(ErrFmtUnknownSeedInstance, domain.ErrInvalidSeedKey, id)
		}
		excluded := inv.ToggleExclusion(id)
		logger.FromContext(ctx).Debug(LogMsgExclusionToggled, "profile", profile.Name, "seed", id, "excluded", excluded)
		return nil
	})
}

// SetObjective switches the objective the profile is optimised for
func (s *service) SetObjective(ctx context.Context, name string, objective string) (*domain.StrategyReport, error) {
	parsed, err := domain.ParseObjective(objective)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, name, func(_ *catalog.Catalog, profile *domain.Profile, inv *domain.Inventory) error {
		inv.Objective = parsed
		logger.FromContext(ctx).Info(LogMsgObjectiveChanged, "profile", profile.Name, "objective", parsed)
		return nil
	})
}

// Value returns the owned counts and worth of a profile's inventory
func (s *service) Value(ctx context.Context, name string) (*domain.Totals, error) {
	profile, err := s.profiles.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	totals := s.calculator.Totals(s.catalogs.Current(), profile.Inventory())
	logger.FromContext(ctx).Debug(LogMsgValuationCompleted, "profile", profile.Name, "value", totals.TotalValue)
	return &totals, nil
}

// Upgrades lists what it costs to merge a profile's seed up each rarity
func (s *service) Upgrades(ctx context.Context, name string, seed string) (*domain.UpgradePlan, error) {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return nil, fmt.Errorf("%w: seed name is required", domain.ErrInvalidInput)
	}
	profile, err := s.profiles.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	plan, err := s.calculator.UpgradePlan(s.catalogs.Current(), profile.Inventory(), seed)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgUpgradePlanBuilt, "profile", profile.Name, "seed", seed, "steps", len(plan.Steps))
	return &plan, nil
}
