package core

import "time"

// Default hold windows, close to common OS key-repeat settings.
const (
	DefaultHoldInitial = 550 * time.Millisecond
	DefaultHoldRepeat  = 120 * time.Millisecond
)

type holdState struct {
	last    time.Time
	repeats int
}

// HoldTracker infers held keys from terminal key presses.
// Terminals report key-down and autorepeat but no key-up, so a key counts
// as held for Initial after its first press and for Repeat after each
// autorepeat press.
type HoldTracker struct {
	Initial time.Duration
	Repeat  time.Duration
	keys    map[Action]*holdState
}

// NewHoldTracker creates a tracker with the default windows.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{
		Initial: DefaultHoldInitial,
		Repeat:  DefaultHoldRepeat,
		keys:    make(map[Action]*holdState),
	}
}

// Press records a key press at now. It reports whether this was a new press
// rather than an autorepeat of a held key.
func (h *HoldTracker) Press(a Action, now time.Time) bool {
	if h.keys == nil {
		h.keys = make(map[Action]*holdState)
	}
	st, ok := h.keys[a]
	if ok && h.within(st, now) {
		st.repeats++
		st.last = now
		return false
	}
	h.keys[a] = &holdState{last: now}
	return true
}

// Release forgets a key immediately.
func (h *HoldTracker) Release(a Action) {
	delete(h.keys, a)
}

// Held reports whether a is still considered down at now.
func (h *HoldTracker) Held(a Action, now time.Time) bool {
	st, ok := h.keys[a]
	if !ok {
		return false
	}
	if !h.within(st, now) {
		delete(h.keys, a)
		return false
	}
	return true
}

// Fill marks every currently held action on frame.
func (h *HoldTracker) Fill(frame *InputFrame, now time.Time) {
	for a := range h.keys {
		if h.Held(a, now) {
			frame.SetHeld(a)
		}
	}
}

// Reset forgets all keys.
func (h *HoldTracker) Reset() {
	for a := range h.keys {
		delete(h.keys, a)
	}
}

func (h *HoldTracker) within(st *holdState, now time.Time) bool {
	window := h.Initial
	if st.repeats > 0 {
		window = h.Repeat
	}
	return now.Sub(st.last) <= window
}
