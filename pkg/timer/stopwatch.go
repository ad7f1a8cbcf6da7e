package timer

import (
	"sync"
	"time"
)

// Stopwatch measures elapsed wall-clock time. It starts running on
// creation and is safe for concurrent use.
type Stopwatch struct {
	mu      sync.Mutex
	started time.Time
	lap     time.Time
}

// Start returns a running Stopwatch.
func Start() *Stopwatch {
	now := time.Now()
	return &Stopwatch{started: now, lap: now}
}

// Elapsed returns the time since the stopwatch was started or last reset.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.started)
}

// Lap returns the time since the previous Lap call (or since start for the
// first lap) and begins a new lap.
func (s *Stopwatch) Lap() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	d := now.Sub(s.lap)
	s.lap = now
	return d
}

// Reset restarts the stopwatch and its current lap.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.started = now
	s.lap = now
}
