// Package throttle forwards the newest value of a rapid stream at a
// bounded rate, dropping anything superseded before its flush slot.
package throttle

import (
	"context"
	"sync"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Throttle coalesces updates and flushes only the latest one, at most rps
// times per second. Update never blocks on the flush callback.
type Throttle[T any] struct {
	flushCallback func(T) error
	rl            ratelimit.Limiter
	logger        *zap.Logger

	mu      sync.Mutex
	latest  T
	pending bool

	wg   sync.WaitGroup
	stop chan struct{}
}

// New constructs a Throttle flushing through flushCallback.
func New[T any](logger *zap.Logger, flushCallback func(T) error, rps int) *Throttle[T] {
	return &Throttle[T]{
		logger:        logger,
		flushCallback: flushCallback,
		rl:            ratelimit.New(rps),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (t *Throttle[T]) Start(ctx context.Context) {
	t.wg.Add(1)
	go t.run(ctx)
}

// Stop flushes any pending value and stops the loop.
func (t *Throttle[T]) Stop() {
	close(t.stop)
	t.wg.Wait()
}

// Update replaces the pending value. Values superseded before the next
// flush slot are silently dropped.
func (t *Throttle[T]) Update(v T) {
	t.mu.Lock()
	t.latest = v
	t.pending = true
	t.mu.Unlock()
}

func (t *Throttle[T]) run(ctx context.Context) {
	defer t.wg.Done()

	for {
		select {
		case <-ctx.Done():
			t.flush()
			return
		case <-t.stop:
			t.flush()
			return
		default:
		}

		t.rl.Take()
		t.flush()
	}
}

func (t *Throttle[T]) flush() {
	t.mu.Lock()
	if !t.pending {
		t.mu.Unlock()
		return
	}
	v := t.latest
	t.pending = false
	t.mu.Unlock()

	if err := t.flushCallback(v); err != nil {
		t.logger.Error("value not flushed", zap.Error(err))
	}
}
