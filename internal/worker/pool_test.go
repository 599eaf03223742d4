package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PlotPlanner_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	// Stop drains the queue before returning
	pool.Stop()

	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()

	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.Zero(t, atomic.LoadInt32(&executed))
}

func TestPool_TryEnqueueFull(t *testing.T) {
	pool := NewPool(1, 1)
	// Not started: the single slot fills and stays full
	assert.True(t, pool.TryEnqueue(JobFunc(func(context.Context) error { return nil })))
	assert.False(t, pool.TryEnqueue(JobFunc(func(context.Context) error { return nil })))

	pool.Start()
	pool.Stop()
}

func TestPool_JobErrorDoesNotStopWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, 4)
	pool.Start()

	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") }))
	pool.Enqueue(&testJob{executed: &executed})
	pool.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_JobGetsDeadline(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	got := make(chan bool, 1)
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		got <- ok && time.Until(deadline) > 0
		return nil
	}))
	pool.Stop()

	assert.True(t, <-got)
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(4, 4)
		pool.Start()
		pool.Stop()
	})
}
