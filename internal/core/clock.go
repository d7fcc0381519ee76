package core

import "time"

// FrameClock turns wall-clock ticks into run-relative time.
// The first Tick after Reset starts the run at zero. Dt is clamped to
// MaxDelta so a stalled terminal or suspended process never produces a huge
// physics step.
type FrameClock struct {
	MaxDelta time.Duration
	start    time.Time
	last     time.Time
	started  bool
}

// NewFrameClock creates a clock with the given step clamp.
func NewFrameClock(maxDelta time.Duration) *FrameClock {
	return &FrameClock{MaxDelta: maxDelta}
}

// Tick advances the clock to now and returns the time since the run started
// and the clamped frame delta.
func (c *FrameClock) Tick(now time.Time) (elapsed, dt time.Duration) {
	if !c.started {
		c.start = now
		c.last = now
		c.started = true
		return 0, 0
	}

	dt = now.Sub(c.last)
	if dt < 0 {
		dt = 0
		now = c.last
	}
	if c.MaxDelta > 0 && dt > c.MaxDelta {
		dt = c.MaxDelta
	}
	c.last = now
	return now.Sub(c.start), dt
}

// Reset restarts the run clock on the next Tick.
func (c *FrameClock) Reset() {
	c.started = false
}
