package impair

import (
	"testing"
	"time"
)

const ms = time.Millisecond

func TestLagZeroReturnsInstant(t *testing.T) {
	b := NewLagBuffer(8)
	b.Record(0.3, 0)
	b.Record(-0.7, 10*ms)

	for _, lag := range []time.Duration{0, -5 * ms} {
		if got := b.Sample(lag, 20*ms, 0.42); got != 0.42 {
			t.Errorf("Sample(lag=%v) = %v, want instant 0.42", lag, got)
		}
	}
}

func TestLagColdBufferFailsOpen(t *testing.T) {
	b := NewLagBuffer(8)
	if got := b.Sample(45*ms, 100*ms, 0.8); got != 0.8 {
		t.Fatalf("empty buffer = %v, want 0.8", got)
	}

	b.Record(1, 90*ms)
	if got := b.Sample(45*ms, 100*ms, 0.8); got != 0.8 {
		t.Fatalf("young buffer = %v, want 0.8", got)
	}
}

func TestLagPicksMostRecentQualifying(t *testing.T) {
	// Buzzed tier lag is 45ms. Query at 100ms targets 55ms: (1,40ms) is the
	// last sample at or before it.
	table := mustTable(t)
	lag := table.For(0.6).Effects.InputLag

	b := NewLagBuffer(DefaultLagCapacity)
	b.Record(0, 0)
	b.Record(1, 40*ms)
	b.Record(0.5, 90*ms)

	if got := b.Sample(lag, 100*ms, -1); got != 1 {
		t.Fatalf("Sample = %v, want 1", got)
	}
}

func TestLagBoundaryIsInclusive(t *testing.T) {
	b := NewLagBuffer(4)
	b.Record(0.2, 10*ms)
	b.Record(0.9, 55*ms)
	if got := b.Sample(45*ms, 100*ms, 0); got != 0.9 {
		t.Fatalf("Sample = %v, want 0.9 (timestamp equal to target)", got)
	}
}

func TestLagEvictsOldest(t *testing.T) {
	const capacity = 5
	const extra = 3
	b := NewLagBuffer(capacity)
	for i := 0; i < capacity+extra; i++ {
		b.Record(float64(i), time.Duration(i)*ms)
	}

	if b.Len() != capacity {
		t.Fatalf("Len = %d, want %d", b.Len(), capacity)
	}
	entries := b.Entries()
	for i, e := range entries {
		want := float64(i + extra)
		if e.Value != want {
			t.Fatalf("entries[%d] = %v, want %v", i, e.Value, want)
		}
		if i > 0 && e.At < entries[i-1].At {
			t.Fatalf("entries out of order at %d", i)
		}
	}
}

func TestLagTimestampsNeverDecrease(t *testing.T) {
	b := NewLagBuffer(4)
	b.Record(1, 50*ms)
	b.Record(2, 30*ms)
	entries := b.Entries()
	if entries[1].At != 50*ms {
		t.Fatalf("second timestamp = %v, want clamped to 50ms", entries[1].At)
	}
}

func TestLagReset(t *testing.T) {
	b := NewLagBuffer(4)
	b.Record(1, 0)
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("Len after reset = %d", b.Len())
	}
	if got := b.Sample(10*ms, 100*ms, 0.5); got != 0.5 {
		t.Fatalf("Sample after reset = %v, want instant", got)
	}
}
