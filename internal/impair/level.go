package impair

import (
	"math"
	"time"
)

// Level is the intoxication scalar of a single run.
// The value is clamped to [min, max] after every mutation.
type Level struct {
	value float64
	min   float64
	max   float64
	start float64
}

// NewLevel creates a level over [min, max] starting at start.
func NewLevel(min, max, start float64) *Level {
	if max < min {
		min, max = max, min
	}
	l := &Level{min: min, max: max, start: start}
	l.Reset()
	return l
}

// Reset puts the level back to its start value.
func (l *Level) Reset() {
	l.value = clamp(l.start, l.min, l.max)
}

// SetStart changes the value used by the next Reset.
func (l *Level) SetStart(start float64) {
	l.start = start
}

// Value returns the current raw value.
func (l *Level) Value() float64 {
	return l.value
}

// Bounds returns the clamping range.
func (l *Level) Bounds() (min, max float64) {
	return l.min, l.max
}

// Fraction returns the value normalized to [0, 1].
func (l *Level) Fraction() float64 {
	span := l.max - l.min
	if span <= 0 {
		return 0
	}
	return clamp((l.value-l.min)/span, 0, 1)
}

// Add applies a gain (or loss, when negative) event.
func (l *Level) Add(delta float64) {
	if math.IsNaN(delta) {
		return
	}
	l.value = clamp(l.value+delta, l.min, l.max)
}

// Decay lowers the value by perSecond over dt.
func (l *Level) Decay(perSecond float64, dt time.Duration) {
	if perSecond <= 0 || dt <= 0 {
		return
	}
	l.Add(-perSecond * dt.Seconds())
}

// Set overwrites the value, clamped.
func (l *Level) Set(value float64) {
	if math.IsNaN(value) {
		return
	}
	l.value = clamp(value, l.min, l.max)
}
