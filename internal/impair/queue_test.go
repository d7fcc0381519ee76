package impair

import (
	"math/rand"
	"testing"
	"time"
)

func TestQueueFiresSameFrameWithoutDelay(t *testing.T) {
	var q ActionQueue
	cfg := DelayConfig{Window: 120 * ms}
	s := q.Schedule(500*ms, 0.8, cfg, rand.New(rand.NewSource(1)))
	if s.At != 500*ms {
		t.Fatalf("At = %v, want 500ms", s.At)
	}

	fires := 0
	fired, dropped := q.Update(500*ms, func(time.Duration) bool { return true }, func() { fires++ })
	if fired != 1 || dropped != 0 || fires != 1 {
		t.Fatalf("fired=%d dropped=%d fires=%d, want 1/0/1", fired, dropped, fires)
	}
	if q.Len() != 0 {
		t.Fatalf("queue not empty after fire")
	}
}

func TestQueueWaitsForPrecondition(t *testing.T) {
	var q ActionQueue
	q.Schedule(0, 0, DelayConfig{Window: 120 * ms}, nil)

	grounded := false
	can := func(time.Duration) bool { return grounded }
	fires := 0
	fire := func() { fires++ }

	q.Update(50*ms, can, fire)
	if fires != 0 || q.Len() != 1 {
		t.Fatalf("fired while airborne")
	}

	grounded = true
	q.Update(100*ms, can, fire)
	if fires != 1 {
		t.Fatalf("fires = %d, want 1 once grounded", fires)
	}

	q.Update(110*ms, can, fire)
	if fires != 1 {
		t.Fatalf("double fire: %d", fires)
	}
}

func TestQueueDropsExpired(t *testing.T) {
	var q ActionQueue
	q.Schedule(0, 0, DelayConfig{Window: 120 * ms}, nil)

	never := func(time.Duration) bool { return false }
	fires := 0
	fire := func() { fires++ }

	if _, dropped := q.Update(120*ms, never, fire); dropped != 0 {
		t.Fatalf("dropped at expire boundary, want kept until now > expire")
	}
	if _, dropped := q.Update(121*ms, never, fire); dropped != 1 {
		t.Fatalf("entry not dropped after expiry")
	}

	// A late precondition must not resurrect the dropped entry.
	fired, _ := q.Update(130*ms, func(time.Duration) bool { return true }, fire)
	if fired != 0 || fires != 0 {
		t.Fatalf("dropped entry fired")
	}
}

func TestQueueDelayGrowsWithIntoxication(t *testing.T) {
	cfg := DelayConfig{MaxDelay: 200 * ms, Window: time.Second}

	var q ActionQueue
	sober := q.Schedule(0, 0, cfg, nil)
	half := q.Schedule(0, 0.5, cfg, nil)
	full := q.Schedule(0, 1, cfg, nil)

	if sober.At != 0 {
		t.Fatalf("sober delay = %v", sober.At)
	}
	if half.At != 150*ms {
		t.Fatalf("half delay = %v, want 150ms (ease-out)", half.At)
	}
	if full.At != 200*ms {
		t.Fatalf("full delay = %v, want 200ms", full.At)
	}
	if full.Expire != time.Second {
		t.Fatalf("expire = %v", full.Expire)
	}
}

func TestQueueJitterBounded(t *testing.T) {
	cfg := DelayConfig{MaxDelay: 100 * ms, MaxJitter: 40 * ms, Window: time.Second}
	rng := rand.New(rand.NewSource(9))
	var q ActionQueue
	for i := 0; i < 200; i++ {
		s := q.Schedule(0, 1, cfg, rng)
		if s.At < 60*ms || s.At > 140*ms {
			t.Fatalf("At = %v, want within 100ms +/- 40ms", s.At)
		}
	}
}

func TestQueueClear(t *testing.T) {
	var q ActionQueue
	q.Schedule(0, 0, DelayConfig{Window: time.Second}, nil)
	q.Schedule(0, 0, DelayConfig{Window: time.Second}, nil)
	q.Clear()
	if q.Len() != 0 {
		t.Fatalf("Len after Clear = %d", q.Len())
	}
}
