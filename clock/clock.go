package clock

import (
	"sync"
	"time"
)

// Clock reports elapsed simulation time since the scene started
type Clock interface {
	Now() time.Duration
}

// Sim is a monotonic simulation clock advanced by the tick loop.
// It never reads wall time, so timers driven by it are deterministic in tests.
type Sim struct {
	mu  sync.RWMutex
	now time.Duration
}

// NewSim creates a simulation clock starting at zero
func NewSim() *Sim {
	return &Sim{}
}

// Now returns the current simulation time
func (s *Sim) Now() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

// Advance moves the clock forward. Negative durations are ignored.
func (s *Sim) Advance(d time.Duration) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d > 0 {
		s.now += d
	}
	return s.now
}

// Seconds converts a float second count into a Duration
func Seconds(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
