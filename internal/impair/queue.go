package impair

import (
	"math/rand"
	"time"
)

// DelayConfig describes how intoxication postpones a buffered action.
type DelayConfig struct {
	MaxDelay  time.Duration // Delay at full intoxication
	MaxJitter time.Duration // +/- random spread at full intoxication
	Window    time.Duration // How long a press stays valid
}

// Scheduled is one pending action.
type Scheduled struct {
	At     time.Duration // Earliest time the action may run
	Expire time.Duration // Dropped once now passes this
}

// ActionQueue buffers presses of one action (the runner's jump) and runs
// each at most once, after its intoxication delay, as soon as the caller's
// precondition allows it.
type ActionQueue struct {
	entries []Scheduled
}

// Schedule queues a press made at now.
// Delay and jitter grow with EaseOutQuad(fraction).
func (q *ActionQueue) Schedule(now time.Duration, fraction float64, cfg DelayConfig, rng *rand.Rand) Scheduled {
	k := EaseOutQuad(clamp(fraction, 0, 1))
	delay := k * float64(cfg.MaxDelay)
	jitter := k * float64(cfg.MaxJitter)

	offset := 0.0
	if jitter > 0 && rng != nil {
		offset = (rng.Float64()*2 - 1) * jitter
	}

	s := Scheduled{
		At:     now + time.Duration(delay+offset),
		Expire: now + cfg.Window,
	}
	q.entries = append(q.entries, s)
	return s
}

// Update runs every due entry whose precondition holds and drops expired
// ones. An entry is either fired once or dropped once, never both.
func (q *ActionQueue) Update(now time.Duration, can func(now time.Duration) bool, fire func()) (fired, dropped int) {
	if len(q.entries) == 0 {
		return 0, 0
	}

	pending := q.entries[:0]
	for _, e := range q.entries {
		if now >= e.At && can(now) {
			fire()
			fired++
			continue
		}
		if now > e.Expire {
			dropped++
			continue
		}
		pending = append(pending, e)
	}
	q.entries = pending
	return fired, dropped
}

// Len returns the number of pending entries.
func (q *ActionQueue) Len() int {
	return len(q.entries)
}

// Pending returns a copy of the pending entries.
func (q *ActionQueue) Pending() []Scheduled {
	out := make([]Scheduled, len(q.entries))
	copy(out, q.entries)
	return out
}

// Clear discards all pending entries.
func (q *ActionQueue) Clear() {
	q.entries = q.entries[:0]
}
