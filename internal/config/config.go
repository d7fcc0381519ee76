// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the arcade.
package config

import (
	"time"

	"github.com/vovakirdan/beer-arcade/internal/impair"
)

// Range is an inclusive [min, max] pair.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Inset shrinks a sprite box into its hitbox.
type Inset struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// EffectsConfig is the YAML form of impair.EffectProfile.
type EffectsConfig struct {
	CameraWobble float64 `yaml:"camera_wobble"`
	InputLagMs   int     `yaml:"input_lag_ms"`
	InputJitter  float64 `yaml:"input_jitter"`
	InvertChance float64 `yaml:"invert_chance"`
	UIWarp       float64 `yaml:"ui_warp"`
	Ghosting     float64 `yaml:"ghosting"`
}

// TierConfig is one intoxication tier.
type TierConfig struct {
	ID      string        `yaml:"id"`
	Min     float64       `yaml:"min"`
	Max     float64       `yaml:"max"`
	Effects EffectsConfig `yaml:"effects"`
}

// RunnerConfig contains all configuration for the Beer Runner game.
// Distances are world pixels, times are milliseconds unless noted.
type RunnerConfig struct {
	World       RunnerWorld       `yaml:"world"`
	Controls    RunnerControls    `yaml:"controls"`
	Score       RunnerScore       `yaml:"score"`
	Speed       RunnerSpeed       `yaml:"speed"`
	Spawn       RunnerSpawn       `yaml:"spawn"`
	Spacing     RunnerSpacing     `yaml:"spacing"`
	Physics     RunnerPhysics     `yaml:"physics"`
	Entities    RunnerEntities    `yaml:"entities"`
	Drunkenness RunnerDrunkenness `yaml:"drunkenness"`
	Debug       RunnerDebug       `yaml:"debug"`
}

// RunnerWorld is the logical playfield.
type RunnerWorld struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	GroundY         float64 `yaml:"ground_y"`
	MaxFrameDeltaMs int     `yaml:"max_frame_delta_ms"`
}

// RunnerControls tunes jump input handling.
type RunnerControls struct {
	BufferMs     int  `yaml:"buffer_ms"`
	CoyoteTimeMs int  `yaml:"coyote_time_ms"`
	PauseEnabled bool `yaml:"pause_enabled"`
}

// RunnerScore defines scoring.
type RunnerScore struct {
	DistancePointsPerSecond float64 `yaml:"distance_points_per_second"`
	BeerBonusPoints         float64 `yaml:"beer_bonus_points"`
	BestKey                 string  `yaml:"best_key"`
}

// RunnerSpeed defines the scroll speed ramp in px/s.
type RunnerSpeed struct {
	Start float64 `yaml:"start"`
	Max   float64 `yaml:"max"`
	Accel float64 `yaml:"accel"`
}

// RunnerSpawn defines spawn intervals per entity.
type RunnerSpawn struct {
	BeerIntervalMs                  Range   `yaml:"beer_interval_ms"`
	WifeIntervalMs                  Range   `yaml:"wife_interval_ms"`
	HoleIntervalMs                  Range   `yaml:"hole_interval_ms"`
	MinIntervalMultiplierAtMaxSpeed float64 `yaml:"min_interval_multiplier_at_max_speed"`
	RetryMs                         int     `yaml:"retry_ms"`
	FirstBeerMs                     int     `yaml:"first_beer_ms"`
	FirstWifeMs                     int     `yaml:"first_wife_ms"`
	FirstHoleMs                     int     `yaml:"first_hole_ms"`
}

// RunnerSpacing keeps spawns fair.
type RunnerSpacing struct {
	MinReactionTimeMs int     `yaml:"min_reaction_time_ms"`
	MinSpacingPx      float64 `yaml:"min_spacing_px"`
	BeerClearancePx   float64 `yaml:"beer_clearance_px"`
}

// RunnerPhysics defines gravity and the player body.
type RunnerPhysics struct {
	Gravity float64      `yaml:"gravity"`
	Player  RunnerPlayer `yaml:"player"`
}

// RunnerPlayer defines the player sprite and jump.
type RunnerPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	HitboxInset  Inset   `yaml:"hitbox_inset"`
	JumpVelocity float64 `yaml:"jump_velocity"`
}

// RunnerEntities defines collectibles and obstacles.
type RunnerEntities struct {
	Beer RunnerBeer `yaml:"beer"`
	Wife RunnerWife `yaml:"wife"`
	Hole RunnerHole `yaml:"hole"`
}

// RunnerBeer is the collectible.
type RunnerBeer struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	YMin    float64 `yaml:"y_min"`
	YMax    float64 `yaml:"y_max"`
	XMargin float64 `yaml:"x_margin"`
}

// RunnerWife is the standing obstacle.
type RunnerWife struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Y           float64 `yaml:"y"`
	XMargin     float64 `yaml:"x_margin"`
	HitboxInset Inset   `yaml:"hitbox_inset"`
}

// RunnerHole is the gap in the ground.
type RunnerHole struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Y            float64 `yaml:"y"`
	XMargin      float64 `yaml:"x_margin"`
	GapWidth     float64 `yaml:"gap_width"`
	HitboxHeight float64 `yaml:"hitbox_height"`
}

// RunnerDrunkenness defines the intoxication level and its effects.
type RunnerDrunkenness struct {
	Min          float64      `yaml:"min"`
	Max          float64      `yaml:"max"`
	Start        float64      `yaml:"start"`
	PerBeer      float64      `yaml:"per_beer"`
	Decay        DecayConfig  `yaml:"decay"`
	JumpDelay    JumpDelay    `yaml:"jump_delay"`
	ScreenWobble ScreenWobble `yaml:"screen_wobble"`
	PlayerSway   PlayerSway   `yaml:"player_sway"`
	// Tiers partition the normalized [0, 1] fraction.
	Tiers []TierConfig `yaml:"tiers"`
}

// DecayConfig is passive sobering.
type DecayConfig struct {
	Enabled   bool    `yaml:"enabled"`
	PerSecond float64 `yaml:"per_second"`
}

// JumpDelay postpones jumps at high intoxication.
type JumpDelay struct {
	MaxDelayMs  int `yaml:"max_delay_ms"`
	MaxJitterMs int `yaml:"max_jitter_ms"`
}

// ScreenWobble is the runner camera wobble.
type ScreenWobble struct {
	MaxRotationDeg float64 `yaml:"max_rotation_deg"`
	MaxOffsetPx    float64 `yaml:"max_offset_px"`
}

// PlayerSway rotates the player sprite.
type PlayerSway struct {
	MaxRotationDeg float64 `yaml:"max_rotation_deg"`
}

// RunnerDebug toggles overlays.
type RunnerDebug struct {
	ShowHitboxes bool `yaml:"show_hitboxes"`
}

// PourConfig contains all configuration for the Beer Pour minigame.
type PourConfig struct {
	DurationSeconds float64      `yaml:"duration_seconds"`
	MaxFrameDeltaMs int          `yaml:"max_frame_delta_ms"`
	BestKey         string       `yaml:"best_key"`
	Controls        PourControls `yaml:"controls"`
	Tilt            PourTilt     `yaml:"tilt"`
	Liquid          PourLiquid   `yaml:"liquid"`
	Foam            PourFoam     `yaml:"foam"`
	Scoring         PourScoring  `yaml:"scoring"`
	Penalty         PourPenalty  `yaml:"penalty"`
	Ramp            PourRamp     `yaml:"ramp"`
	Drunk           PourDrunk    `yaml:"drunk"`
	Glasses         []Glass      `yaml:"glasses"`
	Spawn           PourSpawn    `yaml:"spawn"`
	Comments        []string     `yaml:"comments"`
}

// PourControls tunes tilt and drink input.
type PourControls struct {
	// Keyboard tilt speed in rad/s and the tilt limit in rad.
	AngularSpeed float64 `yaml:"angular_speed"`
	MaxTilt      float64 `yaml:"max_tilt"`
	// Recentering speed when no tilt key is held.
	ReturnRate float64 `yaml:"return_rate"`

	PointerDeadzone    float64 `yaml:"pointer_deadzone"`
	PointerSensitivity float64 `yaml:"pointer_sensitivity"`
	KeyboardPriorityMs int     `yaml:"keyboard_priority_ms"`
	LagCapacity        int     `yaml:"lag_capacity"`
}

// PourTilt is the glass response to the control signal.
type PourTilt struct {
	Inertia       float64 `yaml:"inertia"`
	AutoCentering float64 `yaml:"auto_centering"`
}

// PourLiquid defines flow into the glass.
type PourLiquid struct {
	BaseFlowRate      float64 `yaml:"base_flow_rate"`
	FlowCurveK        float64 `yaml:"flow_curve_k"`
	FlowCurveX0       float64 `yaml:"flow_curve_x0"`
	PourThreshold     float64 `yaml:"pour_threshold"`
	SpillThreshold    float64 `yaml:"spill_threshold"`
	TiltSpillFactor   float64 `yaml:"tilt_spill_factor"`
	SloshAmplitude    float64 `yaml:"slosh_amplitude"`
	SloshFrequency    float64 `yaml:"slosh_frequency"`
	DrinkRate         float64 `yaml:"drink_rate"`
	DrinkWeightFactor float64 `yaml:"drink_weight_factor"`
	EmptyLevel        float64 `yaml:"empty_level"`
	MaxLevel          float64 `yaml:"max_level"`
}

// PourFoam defines the beer head.
type PourFoam struct {
	GrowthWhileDrinking float64 `yaml:"growth_while_drinking"`
	GrowthIdle          float64 `yaml:"growth_idle"`
	SkimWhileDrinking   float64 `yaml:"skim_while_drinking"`
	OverfillSpillFactor float64 `yaml:"overfill_spill_factor"`
	MaxLevel            float64 `yaml:"max_level"`
}

// PourScoring defines points and combos.
type PourScoring struct {
	GlassPoints  int  `yaml:"glass_points"`
	ComboEnabled bool `yaml:"combo_enabled"`
	ResetOnSpill bool `yaml:"reset_on_spill"`
	BonusEvery   int  `yaml:"bonus_every"`
	BonusPoints  int  `yaml:"bonus_points"`
}

// PourPenalty is applied once per spill event.
type PourPenalty struct {
	DrunkAdd        float64 `yaml:"drunk_add"`
	TimeSubtract    float64 `yaml:"time_subtract_seconds"`
	CooldownSeconds float64 `yaml:"cooldown_seconds"`
	RimFlashSeconds float64 `yaml:"rim_flash_seconds"`
}

// PourRamp raises difficulty every few finished glasses.
type PourRamp struct {
	EveryDrinks int     `yaml:"every_drinks"`
	FlowRate    float64 `yaml:"flow_rate"`
	FoamGrowth  float64 `yaml:"foam_growth"`
	DrunkGain   float64 `yaml:"drunk_gain"`
}

// PourDrunk defines the intoxication level and its tiers.
type PourDrunk struct {
	Min         float64      `yaml:"min"`
	Max         float64      `yaml:"max"`
	Start       float64      `yaml:"start"`
	DecayPerSec float64      `yaml:"decay_per_sec"`
	PerGlass    float64      `yaml:"per_glass"`
	PerSpill    float64      `yaml:"per_spill"`
	Tiers       []TierConfig `yaml:"tiers"`
}

// Glass is one glass type.
type Glass struct {
	ID              string  `yaml:"id"`
	Label           string  `yaml:"label"`
	Weight          float64 `yaml:"weight"`
	Capacity        float64 `yaml:"capacity"`
	Stability       float64 `yaml:"stability"`
	Foaminess       float64 `yaml:"foaminess"`
	PourSensitivity float64 `yaml:"pour_sensitivity"`
	SpawnWeight     float64 `yaml:"spawn_weight"`
}

// PourSpawn picks glasses.
type PourSpawn struct {
	EarlyGameSeconds float64  `yaml:"early_game_seconds"`
	EarlyAllowed     []string `yaml:"early_allowed"`
	LateAllowed      []string `yaml:"late_allowed"`
	StartLevel       float64  `yaml:"start_level"`
	StartFoam        float64  `yaml:"start_foam"`
}

// Table builds the tier table over the domain [lo, hi].
func Table(tiers []TierConfig, lo, hi float64) (impair.Table, error) {
	out := make([]impair.Tier, len(tiers))
	for i, t := range tiers {
		out[i] = impair.Tier{
			ID:  t.ID,
			Min: t.Min,
			Max: t.Max,
			Effects: impair.EffectProfile{
				CameraWobble: t.Effects.CameraWobble,
				InputLag:     Millis(t.Effects.InputLagMs),
				InputJitter:  t.Effects.InputJitter,
				InvertChance: t.Effects.InvertChance,
				UIWarp:       t.Effects.UIWarp,
				Ghosting:     t.Effects.Ghosting,
			},
		}
	}
	return impair.NewTable(out, lo, hi)
}

// Millis converts a millisecond count to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Seconds converts fractional seconds to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// TierTable builds the runner's tier table. Tier bounds are written as
// fractions and scaled onto the [min, max] drunkenness range.
func (c RunnerConfig) TierTable() (impair.Table, error) {
	d := c.Drunkenness
	span := d.Max - d.Min
	scaled := make([]TierConfig, len(d.Tiers))
	for i, t := range d.Tiers {
		t.Min = d.Min + t.Min*span
		t.Max = d.Min + t.Max*span
		scaled[i] = t
	}
	return Table(scaled, d.Min, d.Max)
}

// DelayConfig returns the jump queue settings.
func (c RunnerConfig) DelayConfig() impair.DelayConfig {
	return impair.DelayConfig{
		MaxDelay:  Millis(c.Drunkenness.JumpDelay.MaxDelayMs),
		MaxJitter: Millis(c.Drunkenness.JumpDelay.MaxJitterMs),
		Window:    Millis(c.Controls.BufferMs),
	}
}

// MaxFrameDelta is the per-frame step clamp.
func (c RunnerConfig) MaxFrameDelta() time.Duration {
	return Millis(c.World.MaxFrameDeltaMs)
}

// TierTable builds the pour tier table over the drunk value domain.
func (c PourConfig) TierTable() (impair.Table, error) {
	return Table(c.Drunk.Tiers, c.Drunk.Min, c.Drunk.Max)
}

// MaxFrameDelta is the per-frame step clamp.
func (c PourConfig) MaxFrameDelta() time.Duration {
	return Millis(c.MaxFrameDeltaMs)
}

// Glass returns the glass with the given id.
func (c PourConfig) Glass(id string) (Glass, bool) {
	for _, g := range c.Glasses {
		if g.ID == id {
			return g, true
		}
	}
	return Glass{}, false
}
