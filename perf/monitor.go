package perf

import "time"

// FrameMonitor measures the real tick rate over half-second windows and
// reports drops below a threshold
type FrameMonitor struct {
	threshold float64
	warmup    time.Duration
	cooldown  time.Duration

	started  time.Time
	lastDrop time.Time
	frames   int
	elapsed  float64
	fps      float64
}

// NewFrameMonitor creates a monitor that ignores the first seconds of play
func NewFrameMonitor(threshold float64, now time.Time) *FrameMonitor {
	return &FrameMonitor{
		threshold: threshold,
		warmup:    3 * time.Second,
		cooldown:  10 * time.Second,
		started:   now,
		fps:       60,
	}
}

// Observe records one frame of dt seconds and reports a drop
func (m *FrameMonitor) Observe(now time.Time, dt float64) bool {
	m.frames++
	m.elapsed += dt
	if m.elapsed < 0.5 {
		return false
	}
	m.fps = float64(m.frames) / m.elapsed
	m.frames = 0
	m.elapsed = 0

	if m.fps >= m.threshold || now.Sub(m.started) < m.warmup {
		return false
	}
	if !m.lastDrop.IsZero() && now.Sub(m.lastDrop) < m.cooldown {
		return false
	}
	m.lastDrop = now
	return true
}

// FPS returns the last measured rate
func (m *FrameMonitor) FPS() float64 {
	return m.fps
}
