package impair

import (
	"math"
	"math/rand"
	"time"
)

// Distorter applies a tier's input effects to a control signal.
type Distorter struct {
	rng *rand.Rand
}

// NewDistorter creates a distorter drawing randomness from rng.
// A nil rng disables random effects.
func NewDistorter(rng *rand.Rand) *Distorter {
	return &Distorter{rng: rng}
}

// Apply distorts signal for one frame of length dt.
// Inversion is a Bernoulli trial with probability InvertChance*dt, applied
// before jitter. A profile without inversion or jitter returns signal
// unchanged and draws nothing from the random source.
func (d *Distorter) Apply(signal float64, p EffectProfile, dt time.Duration) float64 {
	if d == nil || d.rng == nil {
		return signal
	}

	out := signal
	if p.InvertChance > 0 && dt > 0 {
		if d.rng.Float64() < p.InvertChance*dt.Seconds() {
			out = -out
		}
	}
	if p.InputJitter > 0 {
		out += (d.rng.Float64()*2 - 1) * p.InputJitter
	}
	return out
}

// Warp is a presentational transform. It never feeds back into gameplay.
type Warp struct {
	Angle    float64 // Rotation in radians around the screen center
	OffsetX  float64 // Horizontal offset in world units
	OffsetY  float64 // Vertical offset in world units
	UIScale  float64 // HUD scale factor, 1 = unscaled
	Ghosting float64 // Previous-frame opacity in [0, 1]
}

// IsIdentity reports whether the warp leaves the frame untouched.
func (w Warp) IsIdentity() bool {
	return w.Angle == 0 && w.OffsetX == 0 && w.OffsetY == 0 &&
		(w.UIScale == 1 || w.UIScale == 0) && w.Ghosting == 0
}

// WarpFor derives the camera, HUD and ghosting transform for a tier profile
// at the given elapsed run time. Offsets are in screen cells.
func WarpFor(p EffectProfile, elapsed time.Duration) Warp {
	if p.CameraWobble == 0 && p.UIWarp == 0 && p.Ghosting == 0 {
		return Warp{UIScale: 1}
	}
	t := elapsed.Seconds()
	return Warp{
		Angle:    math.Sin(t*2.4) * p.CameraWobble * 0.08,
		OffsetX:  math.Sin(t*1.7) * p.CameraWobble * 12,
		OffsetY:  math.Cos(t*1.2) * p.CameraWobble * 8,
		UIScale:  1 + math.Sin(t*3.4)*p.UIWarp*0.15,
		Ghosting: clamp(p.Ghosting*0.6, 0, 1),
	}
}

// ScreenWobble is the runner's continuous camera wobble: a rotation of up to
// maxRotationDeg and a diagonal offset of up to maxOffset, both scaled by the
// intoxication fraction.
func ScreenWobble(fraction, maxRotationDeg, maxOffset float64, now time.Duration) Warp {
	fraction = clamp(fraction, 0, 1)
	if fraction == 0 {
		return Warp{UIScale: 1}
	}
	w := math.Sin(millis(now)*0.004) * fraction
	return Warp{
		Angle:   maxRotationDeg * w * math.Pi / 180,
		OffsetX: maxOffset * w,
		OffsetY: -maxOffset * w,
		UIScale: 1,
	}
}

// Sway returns the player sprite rotation in radians.
func Sway(fraction, maxRotationDeg float64, now time.Duration) float64 {
	fraction = clamp(fraction, 0, 1)
	if fraction == 0 || maxRotationDeg == 0 {
		return 0
	}
	return maxRotationDeg * math.Sin(millis(now)*0.006) * fraction * math.Pi / 180
}

// AudioParams shape the background music for a given intoxication.
type AudioParams struct {
	CutoffHz    float64 // Low-pass filter cutoff
	DetuneCents float64 // Pitch detune
	Gain        float64 // Linear gain
}

// Sober audio: filter fully open, no detune, near unity gain.
var soberAudio = AudioParams{CutoffHz: 12000, DetuneCents: 0, Gain: 0.95}

// AudioFor maps an intoxication fraction to music parameters. The filter
// closes from 12kHz towards 700Hz and a slow sine wobbles cutoff, pitch and
// gain proportionally to the fraction.
func AudioFor(fraction float64, now time.Duration) AudioParams {
	level := clamp(fraction, 0, 1)
	if level == 0 {
		return soberAudio
	}
	wobble := math.Sin(millis(now)*0.003) * level
	return AudioParams{
		CutoffHz:    lerp(12000, 700, level) + wobble*600,
		DetuneCents: wobble * 200,
		Gain:        0.95 + wobble*0.1,
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
