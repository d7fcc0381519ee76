package impair

import "time"

// DefaultLagCapacity is the number of samples kept by a lag buffer.
const DefaultLagCapacity = 120

// Sample is one recorded control value.
type Sample struct {
	Value float64
	At    time.Duration
}

// LagBuffer is a bounded history of control samples used to replay input
// with a delay. It is a fixed-size ring: once full, each Record evicts the
// oldest sample.
type LagBuffer struct {
	buf   []Sample
	start int
	n     int
}

// NewLagBuffer creates a buffer holding at most capacity samples.
func NewLagBuffer(capacity int) *LagBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &LagBuffer{buf: make([]Sample, capacity)}
}

// Record appends a sample. Timestamps never go backwards: a sample older
// than the newest one is stored with the newest timestamp.
func (b *LagBuffer) Record(value float64, at time.Duration) {
	if b.n > 0 {
		if last := b.at(b.n - 1); at < last.At {
			at = last.At
		}
	}

	s := Sample{Value: value, At: at}
	if b.n < len(b.buf) {
		b.buf[(b.start+b.n)%len(b.buf)] = s
		b.n++
		return
	}
	b.buf[b.start] = s
	b.start = (b.start + 1) % len(b.buf)
}

// Sample returns the control value as it was lag ago.
// With lag <= 0, or when no recorded sample is old enough, the instantaneous
// value is returned so a cold buffer never stalls input. Otherwise the most
// recent sample recorded at or before now-lag wins.
func (b *LagBuffer) Sample(lag, now time.Duration, instant float64) float64 {
	if lag <= 0 {
		return instant
	}

	target := now - lag
	picked := instant
	for i := 0; i < b.n; i++ {
		s := b.at(i)
		if s.At > target {
			break
		}
		picked = s.Value
	}
	return picked
}

// Len returns the number of stored samples.
func (b *LagBuffer) Len() int {
	return b.n
}

// Cap returns the buffer capacity.
func (b *LagBuffer) Cap() int {
	return len(b.buf)
}

// Entries returns the stored samples, oldest first.
func (b *LagBuffer) Entries() []Sample {
	out := make([]Sample, b.n)
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}

// Reset drops all samples.
func (b *LagBuffer) Reset() {
	b.start = 0
	b.n = 0
}

func (b *LagBuffer) at(i int) Sample {
	return b.buf[(b.start+i)%len(b.buf)]
}
