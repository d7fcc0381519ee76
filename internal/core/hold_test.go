package core

import (
	"testing"
	"time"
)

func TestHoldTrackerTap(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(0, 0)

	if !h.Press(ActionLeft, t0) {
		t.Fatal("first press should be new")
	}
	if !h.Held(ActionLeft, t0.Add(DefaultHoldInitial)) {
		t.Error("key should be held through the initial window")
	}
	if h.Held(ActionLeft, t0.Add(DefaultHoldInitial+time.Millisecond)) {
		t.Error("key should be released after the initial window")
	}
	if h.Held(ActionRight, t0) {
		t.Error("unpressed key reported held")
	}
}

func TestHoldTrackerAutorepeat(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(0, 0)

	h.Press(ActionDrink, t0)
	at := t0.Add(500 * time.Millisecond)
	if h.Press(ActionDrink, at) {
		t.Fatal("press inside the window should count as autorepeat")
	}
	for i := 1; i <= 10; i++ {
		at = at.Add(33 * time.Millisecond)
		h.Press(ActionDrink, at)
	}
	if !h.Held(ActionDrink, at.Add(DefaultHoldRepeat)) {
		t.Error("key should stay held between repeats")
	}
	if h.Held(ActionDrink, at.Add(DefaultHoldRepeat+time.Millisecond)) {
		t.Error("key should release soon after repeats stop")
	}
}

func TestHoldTrackerReleaseAndFill(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(0, 0)
	h.Press(ActionLeft, t0)
	h.Press(ActionRight, t0)
	h.Release(ActionLeft)

	frame := NewInputFrame()
	h.Fill(&frame, t0.Add(10*time.Millisecond))
	if frame.IsHeld(ActionLeft) {
		t.Error("released key filled as held")
	}
	if !frame.IsHeld(ActionRight) {
		t.Error("held key missing from frame")
	}

	h.Reset()
	if h.Held(ActionRight, t0) {
		t.Error("Reset should forget keys")
	}
}
