package config

import "math"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "" which
// keeps the config as loaded.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// presetScaling describes how a preset bends intoxication.
// StartFraction < 0 keeps the configured start.
type presetScaling struct {
	StartFraction float64
	GainScale     float64
	DecayScale    float64
}

func scalingFor(preset DifficultyPreset) (presetScaling, bool) {
	switch preset {
	case DifficultyEasy:
		return presetScaling{StartFraction: 0, GainScale: 0.75, DecayScale: 2}, true
	case DifficultyNormal:
		return presetScaling{StartFraction: -1, GainScale: 1, DecayScale: 1}, true
	case DifficultyHard:
		return presetScaling{StartFraction: 0.5, GainScale: 1.25, DecayScale: 0.5}, true
	case DifficultyFixed:
		// No progression: intoxication stays at the configured start.
		return presetScaling{StartFraction: -1, GainScale: 0, DecayScale: 0}, true
	default:
		return presetScaling{}, false
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	s, ok := scalingFor(preset)
	if !ok {
		return
	}
	d := &cfg.Drunkenness
	if s.StartFraction >= 0 {
		d.Start = d.Min + s.StartFraction*(d.Max-d.Min)
	}
	d.PerBeer *= s.GainScale
	d.Decay.PerSecond *= s.DecayScale
	if s.DecayScale == 0 {
		d.Decay.Enabled = false
	}
}

// ApplyPourPreset modifies the config based on a difficulty preset.
func ApplyPourPreset(cfg *PourConfig, preset DifficultyPreset) {
	s, ok := scalingFor(preset)
	if !ok {
		return
	}
	d := &cfg.Drunk
	if s.StartFraction >= 0 {
		d.Start = d.Min + s.StartFraction*(d.Max-d.Min)
	}
	d.PerGlass *= s.GainScale
	d.PerSpill *= s.GainScale
	cfg.Penalty.DrunkAdd *= s.GainScale
	d.DecayPerSec *= s.DecayScale
}

// SpawnMultiplier scales runner spawn intervals with speed: 1 at the start
// speed, falling linearly to MinIntervalMultiplierAtMaxSpeed at max speed.
func (c RunnerConfig) SpawnMultiplier(speed float64) float64 {
	span := c.Speed.Max - c.Speed.Start
	if span <= 0 {
		return c.Spawn.MinIntervalMultiplierAtMaxSpeed
	}
	t := clampF((speed-c.Speed.Start)/span, 0, 1)
	return 1 + (c.Spawn.MinIntervalMultiplierAtMaxSpeed-1)*t
}

// MinSpawnSpacing is the minimum gap between spawned entities at speed:
// the larger of the fixed spacing and the distance covered in the minimum
// reaction time.
func (c RunnerConfig) MinSpawnSpacing(speed float64) float64 {
	return math.Max(c.Spacing.MinSpacingPx, speed*float64(c.Spacing.MinReactionTimeMs)/1000)
}

// RampBoost is the pour difficulty increase after some finished glasses.
type RampBoost struct {
	Steps      int
	FlowRate   float64 // Added to the base flow rate
	FoamGrowth float64 // Fractional foam growth increase
	DrunkGain  float64 // Fractional intoxication gain increase
}

// RampFor returns the ramp reached after drinks finished glasses.
func (c PourConfig) RampFor(drinks int) RampBoost {
	if c.Ramp.EveryDrinks <= 0 || drinks <= 0 {
		return RampBoost{}
	}
	steps := drinks / c.Ramp.EveryDrinks
	n := float64(steps)
	return RampBoost{
		Steps:      steps,
		FlowRate:   n * c.Ramp.FlowRate,
		FoamGrowth: n * c.Ramp.FoamGrowth,
		DrunkGain:  n * c.Ramp.DrunkGain,
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
