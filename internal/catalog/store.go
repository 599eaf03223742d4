package catalog

import (
	"context"
	"sync"

	"github.com/osse101/PlotPlanner_Go/internal/logger"
	"github.com/osse101/PlotPlanner_Go/internal/metrics"
)

// Store holds the active catalog and swaps it atomically on reload.
type Store struct {
	mu       sync.RWMutex
	current  *Catalog
	loader   *Loader
	dir      string
	fallback bool
}

// NewStore loads the catalog from dir. When the files are missing or invalid
// the built-in fallback is used and a warning is logged; Reload can replace it later.
func NewStore(ctx context.Context, loader *Loader, dir string) *Store {
	s := &Store{loader: loader, dir: dir}
	cat, err := loader.LoadDir(dir)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgCatalogFallback, "dir", dir, "error", err)
		cat = Fallback()
		s.fallback = true
	} else {
		logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "dir", dir, "seeds", len(cat.seedNames), "digest", cat.Digest())
	}
	s.set(cat)
	return s
}

// NewStaticStore wraps an already built catalog.
func NewStaticStore(cat *Catalog) *Store {
	s := &Store{}
	s.set(cat)
	return s
}

// Current returns the active catalog. The returned value is immutable.
func (s *Store) Current() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// UsingFallback reports whether the built-in catalog is active.
func (s *Store) UsingFallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

// Reload re-reads the data directory. On failure the previous catalog stays
// active and the error is returned. It reports whether the content changed.
func (s *Store) Reload(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)
	if s.loader == nil {
		return false, nil
	}

	cat, err := s.loader.LoadDir(s.dir)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Warn(LogMsgCatalogReloadFailed, "dir", s.dir, "error", err)
		return false, err
	}

	s.mu.Lock()
	changed := s.current == nil || s.current.Digest() != cat.Digest()
	if changed {
		s.current = cat
	}
	s.fallback = false
	s.mu.Unlock()

	if !changed {
		metrics.CatalogReloads.WithLabelValues(metrics.OutcomeUnchanged).Inc()
		log.Debug(LogMsgCatalogUnchanged, "digest", cat.Digest())
		return false, nil
	}
	metrics.CatalogReloads.WithLabelValues(metrics.OutcomeChanged).Inc()
	recordSize(cat)
	log.Info(LogMsgCatalogReloaded, "digest", cat.Digest())
	return true, nil
}

func (s *Store) set(cat *Catalog) {
	s.mu.Lock()
	s.current = cat
	s.mu.Unlock()
	recordSize(cat)
}

func recordSize(cat *Catalog) {
	metrics.CatalogItems.WithLabelValues("seed").Set(float64(len(cat.seedNames)))
	metrics.CatalogItems.WithLabelValues("plot").Set(float64(len(cat.plotNames)))
	metrics.CatalogItems.WithLabelValues("lamp").Set(float64(len(cat.lampNames)))
	metrics.CatalogItems.WithLabelValues("animal").Set(float64(len(cat.animals)))
}

// ReloadJob re-reads the catalog when run by the worker pool.
type ReloadJob struct {
	Store *Store
}

// Process implements worker.Job.
func (j *ReloadJob) Process(ctx context.Context) error {
	_, err := j.Store.Reload(ctx)
	return err
}
