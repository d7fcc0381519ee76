// Package impair models intoxication: an accumulating scalar that is mapped
// onto ordered tiers of input, visual and audio distortion.
//
// Everything in this package is pure game logic. Randomness is injected,
// time is passed in as durations since the start of the run, and nothing
// here knows about terminals or sound devices.
package impair

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidTiers is returned when a tier table does not partition its domain.
var ErrInvalidTiers = errors.New("impair: invalid tier table")

// EffectProfile holds the distortion magnitudes applied while a tier is active.
type EffectProfile struct {
	CameraWobble float64       // Screen rotation/offset magnitude
	InputLag     time.Duration // Delay between control input and its effect
	InputJitter  float64       // Uniform noise added to the control signal
	InvertChance float64       // Per-second rate of sign inversion
	UIWarp       float64       // HUD scale oscillation magnitude
	Ghosting     float64       // Previous-frame blend amount
}

// IsZero reports whether the profile applies no distortion at all.
func (p EffectProfile) IsZero() bool {
	return p == EffectProfile{}
}

// Tier is one half-open range [Min, Max) of the intoxication domain.
type Tier struct {
	ID      string
	Min     float64
	Max     float64
	Effects EffectProfile
}

// Table is an ordered, gap-free partition of [Lo, Hi] into tiers.
// The zero Table has no tiers and always yields the zero Tier.
type Table struct {
	tiers []Tier
	lo    float64
	hi    float64
}

// NewTable validates tiers against the domain [lo, hi] and builds a table.
// Tiers must be sorted, contiguous, non-empty and cover the domain exactly.
func NewTable(tiers []Tier, lo, hi float64) (Table, error) {
	if len(tiers) == 0 {
		return Table{}, fmt.Errorf("%w: no tiers", ErrInvalidTiers)
	}
	if !(lo < hi) {
		return Table{}, fmt.Errorf("%w: empty domain [%g, %g]", ErrInvalidTiers, lo, hi)
	}

	seen := make(map[string]bool, len(tiers))
	for i, t := range tiers {
		if t.ID == "" {
			return Table{}, fmt.Errorf("%w: tier %d has no id", ErrInvalidTiers, i)
		}
		if seen[t.ID] {
			return Table{}, fmt.Errorf("%w: duplicate tier id %q", ErrInvalidTiers, t.ID)
		}
		seen[t.ID] = true

		if !(t.Min < t.Max) {
			return Table{}, fmt.Errorf("%w: tier %q has min %g >= max %g", ErrInvalidTiers, t.ID, t.Min, t.Max)
		}
		if i > 0 && tiers[i-1].Max != t.Min {
			prev := tiers[i-1]
			if prev.Max < t.Min {
				return Table{}, fmt.Errorf("%w: gap between %q and %q (%g..%g)", ErrInvalidTiers, prev.ID, t.ID, prev.Max, t.Min)
			}
			return Table{}, fmt.Errorf("%w: %q overlaps %q (%g > %g)", ErrInvalidTiers, prev.ID, t.ID, prev.Max, t.Min)
		}
	}

	if tiers[0].Min != lo {
		return Table{}, fmt.Errorf("%w: first tier starts at %g, domain starts at %g", ErrInvalidTiers, tiers[0].Min, lo)
	}
	if last := tiers[len(tiers)-1]; last.Max != hi {
		return Table{}, fmt.Errorf("%w: last tier ends at %g, domain ends at %g", ErrInvalidTiers, last.Max, hi)
	}

	owned := make([]Tier, len(tiers))
	copy(owned, tiers)
	return Table{tiers: owned, lo: lo, hi: hi}, nil
}

// For returns the tier containing value.
// Boundaries are half-open except the domain ceiling, which belongs to the
// last tier. Values outside the domain clamp to the nearest end and NaN maps
// to the first (sober) tier.
func (t Table) For(value float64) Tier {
	if len(t.tiers) == 0 {
		return Tier{}
	}
	if math.IsNaN(value) || value < t.tiers[0].Min {
		return t.tiers[0]
	}
	for _, tier := range t.tiers {
		if value >= tier.Min && value < tier.Max {
			return tier
		}
	}
	return t.tiers[len(t.tiers)-1]
}

// Index returns the position of the tier with the given id, or -1.
func (t Table) Index(id string) int {
	for i, tier := range t.tiers {
		if tier.ID == id {
			return i
		}
	}
	return -1
}

// Tiers returns a copy of the tiers in ascending order.
func (t Table) Tiers() []Tier {
	out := make([]Tier, len(t.tiers))
	copy(out, t.tiers)
	return out
}

// Len returns the number of tiers.
func (t Table) Len() int {
	return len(t.tiers)
}

// Domain returns the covered value range.
func (t Table) Domain() (lo, hi float64) {
	return t.lo, t.hi
}
