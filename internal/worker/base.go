package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/PlotPlanner_Go/internal/logger"
)

// BaseWorker provides keyed timers for workers that defer work per entity
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[string]*time.Timer
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[string]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// resetTimer replaces any pending timer for key with one that calls fn after
// delay. It reports whether an earlier timer was cancelled and false for
// started when the worker is shut down.
func (w *BaseWorker) resetTimer(key string, delay time.Duration, fn func()) (replaced, started bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false, false
	}
	if timer, ok := w.timers[key]; ok {
		timer.Stop()
		replaced = true
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		w.mu.Lock()
		// A later reset may have swapped in a new timer before this one ran
		if w.timers[key] != timer {
			w.mu.Unlock()
			return
		}
		delete(w.timers, key)
		w.wg.Add(1)
		w.mu.Unlock()

		defer w.wg.Done()
		fn()
	})
	w.timers[key] = timer
	return replaced, true
}

func (w *BaseWorker) stopTimer(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	timer, ok := w.timers[key]
	if ok {
		timer.Stop()
		delete(w.timers, key)
	}
	return ok
}

func (w *BaseWorker) pendingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.shutdown)
	}
	for key, timer := range w.timers {
		timer.Stop()
		log.Info("Cancelled pending "+workerName+" execution", "key", key)
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
