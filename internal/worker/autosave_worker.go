package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/PlotPlanner_Go/internal/concurrency"
	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/logger"
	"github.com/osse101/PlotPlanner_Go/internal/metrics"
)

// ProfileSaver persists one profile snapshot
type ProfileSaver interface {
	SaveProfile(ctx context.Context, profile *domain.Profile) error
}

type pendingSave struct {
	profile domain.Profile
	seq     uint64
}

// AutosaveWorker debounces profile writes. Every Schedule call restarts the
// profile's timer; when it fires the latest snapshot is queued on the pool.
// Snapshots are sequenced per profile so an older write never lands after a
// newer one. A fired snapshot stays readable as in-flight until it is written.
type AutosaveWorker struct {
	BaseWorker
	saver ProfileSaver
	pool  *Pool
	delay time.Duration
	locks *concurrency.LockManager

	stateMu  sync.Mutex
	pending  map[string]pendingSave
	inflight map[string]pendingSave
	nextSeq  map[string]uint64
	written  map[string]uint64
}

// NewAutosaveWorker creates an AutosaveWorker that writes through saver on pool
func NewAutosaveWorker(saver ProfileSaver, pool *Pool, delay time.Duration) *AutosaveWorker {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	w := &AutosaveWorker{
		saver:    saver,
		pool:     pool,
		delay:    delay,
		locks:    concurrency.NewLockManager(),
		pending:  make(map[string]pendingSave),
		inflight: make(map[string]pendingSave),
		nextSeq:  make(map[string]uint64),
		written:  make(map[string]uint64),
	}
	w.init()
	return w
}

// Schedule records a snapshot of profile and (re)starts its debounce timer
func (w *AutosaveWorker) Schedule(ctx context.Context, profile domain.Profile) {
	log := logger.FromContext(ctx)
	key := domain.ProfileKey(profile.Name)

	w.stateMu.Lock()
	w.nextSeq[key]++
	w.pending[key] = pendingSave{profile: profile.Clone(), seq: w.nextSeq[key]}
	w.stateMu.Unlock()

	replaced, started := w.resetTimer(key, w.delay, func() { w.fire(key) })
	if !started {
		w.takePending(key)
		log.Warn(LogMsgAutosaveAfterShutdown, "profile", profile.Name)
		return
	}
	w.updateGauge()

	if replaced {
		log.Debug(LogMsgAutosaveRescheduled, "profile", profile.Name, "delay", w.delay)
	} else {
		log.Debug(LogMsgAutosaveScheduled, "profile", profile.Name, "delay", w.delay)
	}
}

// Pending reports how many profiles have an unsaved snapshot
func (w *AutosaveWorker) Pending() int {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()
	return len(w.pending)
}

// PendingProfile returns the newest snapshot for name that is not yet
// written, whether still debouncing or already queued on the pool
func (w *AutosaveWorker) PendingProfile(name string) (domain.Profile, bool) {
	key := domain.ProfileKey(name)
	w.stateMu.Lock()
	defer w.stateMu.Unlock()
	if save, ok := w.pending[key]; ok {
		return save.profile.Clone(), true
	}
	if save, ok := w.inflight[key]; ok {
		return save.profile.Clone(), true
	}
	return domain.Profile{}, false
}

// Cancel drops any unsaved snapshot for name without writing it
func (w *AutosaveWorker) Cancel(name string) {
	key := domain.ProfileKey(name)
	w.stopTimer(key)
	w.takePending(key)
	w.updateGauge()
}

// SaveNow writes profile immediately, superseding any pending snapshot
func (w *AutosaveWorker) SaveNow(ctx context.Context, profile domain.Profile, trigger string) error {
	key := domain.ProfileKey(profile.Name)
	w.stopTimer(key)
	w.takePending(key)
	w.updateGauge()

	w.stateMu.Lock()
	w.nextSeq[key]++
	save := pendingSave{profile: profile.Clone(), seq: w.nextSeq[key]}
	w.stateMu.Unlock()

	return w.persist(ctx, save, trigger)
}

func (w *AutosaveWorker) fire(key string) {
	w.stateMu.Lock()
	save, ok := w.pending[key]
	if ok {
		delete(w.pending, key)
		w.inflight[key] = save
	}
	w.stateMu.Unlock()
	w.updateGauge()
	if !ok {
		return
	}
	logger.Debug(LogMsgAutosaveFired, "profile", save.profile.Name)

	job := JobFunc(func(ctx context.Context) error {
		return w.persist(ctx, save, metrics.TriggerAutosave)
	})
	if !w.pool.Enqueue(job) {
		// Pool already stopped; write inline so the change is not lost
		ctx, cancel := context.WithTimeout(context.Background(), DefaultJobTimeout)
		defer cancel()
		_ = w.persist(ctx, save, metrics.TriggerAutosave)
	}
}

func (w *AutosaveWorker) persist(ctx context.Context, save pendingSave, trigger string) error {
	key := domain.ProfileKey(save.profile.Name)
	lock := w.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	w.stateMu.Lock()
	stale := save.seq <= w.written[key]
	if stale {
		w.settleLocked(key)
	}
	w.stateMu.Unlock()
	if stale {
		return nil
	}

	log := logger.FromContext(ctx)
	profile := save.profile
	if err := w.saver.SaveProfile(ctx, &profile); err != nil {
		metrics.ProfileSaveErrors.WithLabelValues(trigger).Inc()
		log.Error(LogMsgAutosaveFailed, "profile", profile.Name, "trigger", trigger, "error", err)
		return fmt.Errorf("%s %q: %w", LogMsgAutosaveFailed, profile.Name, err)
	}

	w.stateMu.Lock()
	w.written[key] = save.seq
	w.settleLocked(key)
	w.stateMu.Unlock()

	metrics.ProfileSaves.WithLabelValues(trigger).Inc()
	log.Debug(LogMsgAutosavePersisted, "profile", profile.Name, "trigger", trigger)
	return nil
}

func (w *AutosaveWorker) takePending(key string) (pendingSave, bool) {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()
	save, ok := w.pending[key]
	if ok {
		delete(w.pending, key)
	}
	return save, ok
}

// settleLocked drops the in-flight snapshot once a write at least as new has landed
func (w *AutosaveWorker) settleLocked(key string) {
	if save, ok := w.inflight[key]; ok && save.seq <= w.written[key] {
		delete(w.inflight, key)
	}
}

func (w *AutosaveWorker) updateGauge() {
	metrics.PendingSaves.Set(float64(w.Pending()))
}

// Flush cancels every pending timer and writes the pending and in-flight
// snapshots synchronously
func (w *AutosaveWorker) Flush(ctx context.Context) error {
	w.stateMu.Lock()
	keys := make([]string, 0, len(w.pending)+len(w.inflight))
	for key := range w.pending {
		keys = append(keys, key)
	}
	for key := range w.inflight {
		if _, ok := w.pending[key]; !ok {
			keys = append(keys, key)
		}
	}
	w.stateMu.Unlock()
	sort.Strings(keys)

	if len(keys) > 0 {
		logger.FromContext(ctx).Info(LogMsgAutosaveFlushing, "count", len(keys))
	}

	var errs []error
	for _, key := range keys {
		w.stopTimer(key)
		save, ok := w.takePending(key)
		if !ok {
			w.stateMu.Lock()
			save, ok = w.inflight[key]
			w.stateMu.Unlock()
		}
		if !ok {
			continue
		}
		if err := w.persist(ctx, save, metrics.TriggerFlush); err != nil {
			errs = append(errs, err)
		}
	}
	w.updateGauge()
	return errors.Join(errs...)
}

// Shutdown cancels pending timers without writing and waits for in-flight fires
func (w *AutosaveWorker) Shutdown(ctx context.Context) error {
	err := w.shutdownInternal(ctx, autosaveWorkerName)
	w.stateMu.Lock()
	w.pending = make(map[string]pendingSave)
	w.inflight = make(map[string]pendingSave)
	w.stateMu.Unlock()
	w.updateGauge()
	return err
}
