package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/pour.yaml
var defaultPourYAML []byte

func defaultTiers() []TierConfig {
	return []TierConfig{
		{ID: "sober", Min: 0, Max: 0.25},
		{ID: "tipsy", Min: 0.25, Max: 0.5},
		{ID: "buzzed", Min: 0.5, Max: 0.75},
		{ID: "drunk", Min: 0.75, Max: 1},
	}
}

// DefaultRunnerConfig returns the default Beer Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: RunnerWorld{
			Width:           1200,
			Height:          400,
			GroundY:         320,
			MaxFrameDeltaMs: 50,
		},
		Controls: RunnerControls{
			BufferMs:     120,
			CoyoteTimeMs: 90,
			PauseEnabled: true,
		},
		Score: RunnerScore{
			DistancePointsPerSecond: 10,
			BeerBonusPoints:         50,
			BestKey:                 "beerBest",
		},
		Speed: RunnerSpeed{
			Start: 380,
			Max:   980,
			Accel: 28,
		},
		Spawn: RunnerSpawn{
			BeerIntervalMs:                  Range{Min: 700, Max: 1600},
			WifeIntervalMs:                  Range{Min: 1300, Max: 2800},
			HoleIntervalMs:                  Range{Min: 1600, Max: 3200},
			MinIntervalMultiplierAtMaxSpeed: 0.6,
			RetryMs:                         120,
			FirstBeerMs:                     400,
			FirstWifeMs:                     800,
			FirstHoleMs:                     1200,
		},
		Spacing: RunnerSpacing{
			MinReactionTimeMs: 420,
			MinSpacingPx:      300,
			BeerClearancePx:   110,
		},
		Physics: RunnerPhysics{
			Gravity: 2800,
			Player: RunnerPlayer{
				Width:        140,
				Height:       140,
				StartX:       160,
				StartY:       180,
				HitboxInset:  Inset{Left: 35, Right: 35, Top: 35, Bottom: 35},
				JumpVelocity: -1040,
			},
		},
		Entities: RunnerEntities{
			Beer: RunnerBeer{Width: 120, Height: 120, YMin: 170, YMax: 200, XMargin: 120},
			Wife: RunnerWife{
				Width:       140,
				Height:      140,
				Y:           180,
				XMargin:     170,
				HitboxInset: Inset{Left: 20, Right: 20, Top: 20, Bottom: 20},
			},
			Hole: RunnerHole{Width: 140, Height: 56, Y: 320, XMargin: 200, GapWidth: 140, HitboxHeight: 20},
		},
		Drunkenness: RunnerDrunkenness{
			Min:          0,
			Max:          100,
			Start:        0,
			PerBeer:      12,
			Decay:        DecayConfig{Enabled: true, PerSecond: 1.2},
			ScreenWobble: ScreenWobble{MaxRotationDeg: 1.5, MaxOffsetPx: 6},
			Tiers:        defaultTiers(),
		},
		Debug: RunnerDebug{ShowHitboxes: true},
	}
}

// DefaultPourConfig returns the default Beer Pour configuration.
func DefaultPourConfig() PourConfig {
	tiers := defaultTiers()
	tiers[1].Effects = EffectsConfig{CameraWobble: 0.12, InputLagMs: 25, InputJitter: 0.02, UIWarp: 0.08}
	tiers[2].Effects = EffectsConfig{CameraWobble: 0.22, InputLagMs: 45, InputJitter: 0.05, InvertChance: 0.03, UIWarp: 0.16, Ghosting: 0.08}
	tiers[3].Effects = EffectsConfig{CameraWobble: 0.35, InputLagMs: 70, InputJitter: 0.09, InvertChance: 0.06, UIWarp: 0.26, Ghosting: 0.18}

	return PourConfig{
		DurationSeconds: 30,
		MaxFrameDeltaMs: 33,
		BestKey:         "pourBest",
		Controls: PourControls{
			AngularSpeed:       1.8,
			MaxTilt:            0.9,
			ReturnRate:         4,
			PointerDeadzone:    0.03,
			PointerSensitivity: 1,
			KeyboardPriorityMs: 1200,
			LagCapacity:        120,
		},
		Tilt: PourTilt{Inertia: 0.12, AutoCentering: 0.06},
		Liquid: PourLiquid{
			BaseFlowRate:      0.55,
			FlowCurveK:        6,
			FlowCurveX0:       0.35,
			PourThreshold:     0.18,
			SpillThreshold:    0.78,
			TiltSpillFactor:   1.4,
			SloshAmplitude:    0.08,
			SloshFrequency:    1.3,
			DrinkRate:         0.85,
			DrinkWeightFactor: 0.1,
			EmptyLevel:        0.05,
			MaxLevel:          1.2,
		},
		Foam: PourFoam{
			GrowthWhileDrinking: 0.28,
			GrowthIdle:          0.05,
			SkimWhileDrinking:   0.35,
			OverfillSpillFactor: 1.8,
			MaxLevel:            1.2,
		},
		Scoring: PourScoring{
			GlassPoints:  1,
			ComboEnabled: true,
			ResetOnSpill: true,
			BonusEvery:   5,
			BonusPoints:  1,
		},
		Penalty: PourPenalty{
			DrunkAdd:        0.2,
			TimeSubtract:    1,
			CooldownSeconds: 0.6,
			RimFlashSeconds: 0.5,
		},
		Ramp: PourRamp{EveryDrinks: 3, FlowRate: 0.08, FoamGrowth: 0.06, DrunkGain: 0.08},
		Drunk: PourDrunk{
			Min:         0,
			Max:         1,
			DecayPerSec: 0.015,
			PerGlass:    0.12,
			PerSpill:    0.2,
			Tiers:       tiers,
		},
		Glasses: []Glass{
			{ID: "mug", Label: "Mug", Weight: 1.2, Capacity: 1.0, Stability: 1.1, Foaminess: 1.0, PourSensitivity: 0.85, SpawnWeight: 0.35},
			{ID: "pint", Label: "Pint", Weight: 1.0, Capacity: 0.85, Stability: 1.0, Foaminess: 0.9, PourSensitivity: 1.0, SpawnWeight: 0.3},
			{ID: "pilsner", Label: "Pilsner", Weight: 0.9, Capacity: 0.75, Stability: 0.9, Foaminess: 1.05, PourSensitivity: 1.15, SpawnWeight: 0.22},
			{ID: "flute", Label: "Flute", Weight: 0.8, Capacity: 0.6, Stability: 0.78, Foaminess: 1.2, PourSensitivity: 1.25, SpawnWeight: 0.13},
		},
		Spawn: PourSpawn{
			EarlyGameSeconds: 8,
			EarlyAllowed:     []string{"mug", "pint"},
			LateAllowed:      []string{"mug", "pint", "pilsner", "flute"},
			StartLevel:       0.1,
			StartFoam:        0.05,
		},
		Comments: []string{
			"What a drinker!",
			"Maybe ease off a little tonight...",
			"Completely sloshed!",
			"Handles foam like a pro",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner":
		return defaultRunnerYAML
	case "pour":
		return defaultPourYAML
	default:
		return nil
	}
}
