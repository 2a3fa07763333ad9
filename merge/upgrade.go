package merge

import "time"

// UpgradeState is the visibility of the free "level up all" action
type UpgradeState int

const (
	// UpgradeIdle: play has not started, the wait is not running
	UpgradeIdle UpgradeState = iota
	// UpgradeHidden: waiting for the next availability
	UpgradeHidden
	// UpgradeVisible: the action can be used until the window closes
	UpgradeVisible
)

// Transition is a state change reported by UpgradeTimer.Update
type Transition int

const (
	NoTransition Transition = iota
	BecameVisible
	Expired
)

// UpgradeTimer runs Hidden --(wait)--> Visible --(use | window)--> Hidden.
// The first wait may be shorter than the following ones.
type UpgradeTimer struct {
	firstWait time.Duration
	wait      time.Duration
	window    time.Duration

	state UpgradeState
	since time.Duration
	first bool
}

// NewUpgradeTimer creates an idle timer
func NewUpgradeTimer(cfg Config) *UpgradeTimer {
	return &UpgradeTimer{
		firstWait: cfg.FirstUpgradeWait,
		wait:      cfg.UpgradeWait,
		window:    cfg.UpgradeWindow,
		first:     true,
	}
}

// Start begins the first wait. Later calls are ignored.
func (u *UpgradeTimer) Start(now time.Duration) {
	if u.state != UpgradeIdle {
		return
	}
	u.state = UpgradeHidden
	u.since = now
}

// State returns the current state
func (u *UpgradeTimer) State() UpgradeState {
	return u.state
}

// Available reports whether the action can be used now
func (u *UpgradeTimer) Available() bool {
	return u.state == UpgradeVisible
}

func (u *UpgradeTimer) currentWait() time.Duration {
	if u.first {
		return u.firstWait
	}
	return u.wait
}

// Update advances at most one boundary. Boundaries are measured from the
// previous boundary rather than from now, so a late tick does not drift the
// schedule; call repeatedly until NoTransition to catch up on long gaps.
func (u *UpgradeTimer) Update(now time.Duration) Transition {
	switch u.state {
	case UpgradeHidden:
		if now-u.since >= u.currentWait() {
			u.since += u.currentWait()
			u.state = UpgradeVisible
			u.first = false
			return BecameVisible
		}
	case UpgradeVisible:
		if now-u.since >= u.window {
			u.since += u.window
			u.state = UpgradeHidden
			return Expired
		}
	}
	return NoTransition
}

// Use consumes the visible action and restarts the wait from now
func (u *UpgradeTimer) Use(now time.Duration) error {
	if u.state != UpgradeVisible {
		return ErrUpgradeUnavailable
	}
	u.state = UpgradeHidden
	u.since = now
	return nil
}

// Remaining returns the time left until the next transition
func (u *UpgradeTimer) Remaining(now time.Duration) time.Duration {
	var span time.Duration
	switch u.state {
	case UpgradeHidden:
		span = u.currentWait()
	case UpgradeVisible:
		span = u.window
	default:
		return 0
	}
	left := span - (now - u.since)
	if left < 0 {
		return 0
	}
	return left
}
