package core

import (
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(50 * time.Millisecond)
	t0 := time.Unix(100, 0)

	now, dt := c.Tick(t0)
	if now != 0 || dt != 0 {
		t.Fatalf("first tick = (%v, %v), expected zeros", now, dt)
	}

	now, dt = c.Tick(t0.Add(16 * time.Millisecond))
	if now != 16*time.Millisecond || dt != 16*time.Millisecond {
		t.Errorf("second tick = (%v, %v)", now, dt)
	}

	// A long stall is clamped for physics but not for run time.
	now, dt = c.Tick(t0.Add(2 * time.Second))
	if dt != 50*time.Millisecond {
		t.Errorf("dt = %v, expected clamp to 50ms", dt)
	}
	if now != 2*time.Second {
		t.Errorf("now = %v, expected 2s", now)
	}

	// Clock going backwards never yields negative deltas.
	now, dt = c.Tick(t0.Add(time.Second))
	if dt != 0 || now != 2*time.Second {
		t.Errorf("backwards tick = (%v, %v)", now, dt)
	}

	c.Reset()
	now, _ = c.Tick(t0.Add(5 * time.Second))
	if now != 0 {
		t.Errorf("after reset now = %v, expected 0", now)
	}
}
