// Package input turns per-frame key and pointer state into the normalized
// control signals the games consume.
package input

import (
	"math"
	"time"

	"github.com/vovakirdan/beer-arcade/internal/core"
)

// Source identifies which device produced the tilt signal.
type Source int

const (
	SourceKeyboard Source = iota
	SourcePointer
)

func (s Source) String() string {
	if s == SourcePointer {
		return "pointer"
	}
	return "keyboard"
}

// TiltSettings tunes a TiltSampler.
type TiltSettings struct {
	AngularSpeed     float64       // rad/s while a direction is held
	MaxTilt          float64       // rad
	ReturnRate       float64       // Recentering speed with no direction held
	Deadzone         float64       // Pointer dead zone, normalized
	Sensitivity      float64       // Pointer gain
	KeyboardPriority time.Duration // Keyboard wins for this long after use
}

// TiltSampler produces the target tilt angle for each frame.
// The pointer is the analog source; without one, or while the keyboard was
// used recently, the keyboard integrates left/right into the angle.
type TiltSampler struct {
	cfg          TiltSettings
	target       float64
	lastKeyboard time.Duration
	usedKeyboard bool
	source       Source
}

// NewTiltSampler creates a sampler with the given settings.
func NewTiltSampler(cfg TiltSettings) *TiltSampler {
	return &TiltSampler{cfg: cfg}
}

// Reset centers the tilt and forgets device history.
func (s *TiltSampler) Reset() {
	s.target = 0
	s.lastKeyboard = 0
	s.usedKeyboard = false
	s.source = SourceKeyboard
}

// Target returns the last sampled tilt.
func (s *TiltSampler) Target() float64 {
	return s.target
}

// Source returns the device used by the last Sample.
func (s *TiltSampler) Source() Source {
	return s.source
}

// Sample reads one frame of input and returns the target tilt in
// [-MaxTilt, MaxTilt].
func (s *TiltSampler) Sample(in core.InputFrame, now, dt time.Duration) float64 {
	dir := direction(in)
	if dir != 0 || in.Has(core.ActionDrink) || in.IsHeld(core.ActionDrink) {
		s.lastKeyboard = now
		s.usedKeyboard = true
	}
	keyboardActive := s.usedKeyboard && now-s.lastKeyboard < s.cfg.KeyboardPriority

	maxTilt := s.cfg.MaxTilt
	if in.Pointer.Present && !keyboardActive {
		s.source = SourcePointer
		tilt := clamp(in.Pointer.X, -1, 1)
		if math.Abs(tilt) < s.cfg.Deadzone {
			tilt = 0
		}
		tilt *= s.cfg.Sensitivity
		s.target = clamp(tilt, -1, 1) * maxTilt
		return s.target
	}

	s.source = SourceKeyboard
	secs := dt.Seconds()
	if dir != 0 {
		s.target += float64(dir) * s.cfg.AngularSpeed * secs
	} else {
		s.target += (0 - s.target) * math.Min(1, secs*s.cfg.ReturnRate)
	}
	s.target = clamp(s.target, -maxTilt, maxTilt)
	return s.target
}

// DrinkHeld reports whether the drink control is down: the drink key or
// the primary pointer button.
func DrinkHeld(in core.InputFrame) bool {
	return in.IsHeld(core.ActionDrink) || in.Has(core.ActionDrink) || in.Pointer.Down
}

func direction(in core.InputFrame) int {
	dir := 0
	if in.IsHeld(core.ActionLeft) || in.Has(core.ActionLeft) {
		dir--
	}
	if in.IsHeld(core.ActionRight) || in.Has(core.ActionRight) {
		dir++
	}
	return dir
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
