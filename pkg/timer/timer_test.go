package timer_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typekit/pkg/timer"
)

func TestAfter(t *testing.T) {
	t.Parallel()

	t.Run("fires once after the delay", func(t *testing.T) {
		t.Parallel()
		var fired atomic.Int32
		tm, err := timer.After(context.Background(), 20*time.Millisecond, func() {
			fired.Add(1)
		})
		require.NoError(t, err)

		select {
		case <-tm.Done():
		case <-time.After(time.Second):
			t.Fatal("timer did not complete in time")
		}

		assert.Equal(t, int32(1), fired.Load())
		assert.True(t, tm.Fired())
	})

	t.Run("stop prevents the callback", func(t *testing.T) {
		t.Parallel()
		var fired atomic.Int32
		tm, err := timer.After(context.Background(), 200*time.Millisecond, func() {
			fired.Add(1)
		})
		require.NoError(t, err)

		assert.True(t, tm.Stop())
		<-tm.Done()

		assert.Equal(t, int32(0), fired.Load())
		assert.False(t, tm.Fired())
	})

	t.Run("stop after firing reports false", func(t *testing.T) {
		t.Parallel()
		tm, err := timer.After(context.Background(), 10*time.Millisecond, func() {})
		require.NoError(t, err)
		<-tm.Done()
		assert.False(t, tm.Stop())
	})

	t.Run("context cancellation prevents the callback", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		var fired atomic.Int32
		tm, err := timer.After(ctx, 200*time.Millisecond, func() {
			fired.Add(1)
		})
		require.NoError(t, err)

		cancel()
		<-tm.Done()
		assert.Equal(t, int32(0), fired.Load())
	})

	t.Run("pre-canceled context never schedules", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var fired atomic.Int32
		tm, err := timer.After(ctx, time.Millisecond, func() { fired.Add(1) })
		require.NoError(t, err)
		<-tm.Done()
		assert.Equal(t, int32(0), fired.Load())
	})

	t.Run("zero delay fires immediately", func(t *testing.T) {
		t.Parallel()
		tm, err := timer.After(context.Background(), 0, func() {})
		require.NoError(t, err)
		<-tm.Done()
		assert.True(t, tm.Fired())
	})

	t.Run("stop result matches whether the callback ran", func(t *testing.T) {
		t.Parallel()
		// Race Stop against the firing timer: whichever way it lands,
		// a true result must mean the callback never ran and a false
		// result must mean it ran exactly once.
		for i := 0; i < 200; i++ {
			var fired atomic.Int32
			tm, err := timer.After(context.Background(), time.Millisecond, func() {
				fired.Add(1)
			})
			require.NoError(t, err)

			prevented := tm.Stop()
			<-tm.Done()

			if prevented {
				assert.Equal(t, int32(0), fired.Load())
			} else {
				assert.Equal(t, int32(1), fired.Load())
			}
		}
	})

	t.Run("rejects nil callback", func(t *testing.T) {
		t.Parallel()
		_, err := timer.After(context.Background(), time.Millisecond, nil)
		assert.ErrorIs(t, err, timer.ErrNilCallback)
	})

	t.Run("rejects negative delay", func(t *testing.T) {
		t.Parallel()
		_, err := timer.After(context.Background(), -time.Millisecond, func() {})
		assert.ErrorIs(t, err, timer.ErrNegativeDelay)
	})
}

func TestEvery(t *testing.T) {
	t.Parallel()

	t.Run("ticks repeatedly until stopped", func(t *testing.T) {
		t.Parallel()
		var ticks atomic.Int32
		iv, err := timer.Every(context.Background(), 10*time.Millisecond, func() {
			ticks.Add(1)
		})
		require.NoError(t, err)

		time.Sleep(120 * time.Millisecond)
		iv.Stop()
		<-iv.Done()

		got := ticks.Load()
		assert.GreaterOrEqual(t, got, int32(3))

		// No further ticks after Stop.
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, got, ticks.Load())
	})

	t.Run("context cancellation stops the interval", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		iv, err := timer.Every(ctx, 10*time.Millisecond, func() {})
		require.NoError(t, err)

		cancel()
		select {
		case <-iv.Done():
		case <-time.After(time.Second):
			t.Fatal("interval did not stop on context cancellation")
		}
	})

	t.Run("rejects nil callback", func(t *testing.T) {
		t.Parallel()
		_, err := timer.Every(context.Background(), time.Millisecond, nil)
		assert.ErrorIs(t, err, timer.ErrNilCallback)
	})

	t.Run("rejects non-positive period", func(t *testing.T) {
		t.Parallel()
		_, err := timer.Every(context.Background(), 0, func() {})
		assert.ErrorIs(t, err, timer.ErrNonPositiveInterval)
	})
}
