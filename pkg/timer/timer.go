package timer

import (
	"context"
	"sync"
	"time"
)

// Timer runs a callback once after a delay. It is created with After and
// owns a single goroutine that exits when the timer fires, is stopped, or
// the context is cancelled.
type Timer struct {
	done   chan struct{}
	cancel context.CancelFunc

	mu    sync.Mutex
	fired bool
}

// After schedules fn to run once after delay. The callback runs on its own
// goroutine. Cancelling ctx or calling Stop before the delay elapses
// prevents the callback from running.
func After(ctx context.Context, delay time.Duration, fn func()) (*Timer, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	if delay < 0 {
		return nil, ErrNegativeDelay
	}

	ctx, cancel := context.WithCancel(ctx)
	t := &Timer{done: make(chan struct{}), cancel: cancel}

	go func() {
		defer close(t.done)
		defer cancel()

		// Early exit when the context is pre-canceled
		select {
		case <-ctx.Done():
			return
		default:
		}

		tm := time.NewTimer(delay)
		defer tm.Stop()

		select {
		case <-ctx.Done():
			return
		case <-tm.C:
		}

		// The commit and Stop's read share the mutex: once fired is set the
		// callback is guaranteed to run, and a cancellation that won the
		// lock first suppresses it.
		t.mu.Lock()
		if ctx.Err() != nil {
			t.mu.Unlock()
			return
		}
		t.fired = true
		t.mu.Unlock()

		fn()
	}()

	return t, nil
}

// Stop cancels the timer and reports whether it prevented the callback from
// running: a true result means the callback has not run and never will.
// It is safe to call multiple times; Stop does not wait for a callback that
// is already in flight.
func (t *Timer) Stop() bool {
	// Cancel before reading fired: any commit not yet made under the mutex
	// will then observe the cancellation and abort.
	t.cancel()
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.fired
}

// Done returns a channel closed once the timer goroutine has finished,
// whether by firing, stopping, or context cancellation. A fired timer's
// channel closes only after the callback has returned.
func (t *Timer) Done() <-chan struct{} {
	return t.done
}

// Fired reports, without blocking, whether the callback has started.
func (t *Timer) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// Interval runs a callback repeatedly at a fixed period until stopped.
type Interval struct {
	done   chan struct{}
	cancel context.CancelFunc
}

// Every schedules fn to run every period until ctx is cancelled or Stop is
// called. Invocations run sequentially on one goroutine; a slow callback
// delays subsequent ticks rather than overlapping them.
func Every(ctx context.Context, period time.Duration, fn func()) (*Interval, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	if period <= 0 {
		return nil, ErrNonPositiveInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	iv := &Interval{done: make(chan struct{}), cancel: cancel}

	go func() {
		defer close(iv.done)
		defer cancel()

		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return iv, nil
}

// Stop cancels the interval. It is safe to call multiple times and does not
// wait for an in-flight callback.
func (iv *Interval) Stop() {
	iv.cancel()
}

// Done returns a channel closed once the interval goroutine has exited.
func (iv *Interval) Done() <-chan struct{} {
	return iv.done
}
