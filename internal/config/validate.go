package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate. The game must not start with an
// invalid configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type validator struct {
	errs []error
}

func (v *validator) check(ok bool, format string, args ...any) {
	if !ok {
		v.errs = append(v.errs, fmt.Errorf(format, args...))
	}
}

func (v *validator) add(err error) {
	if err != nil {
		v.errs = append(v.errs, err)
	}
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(v.errs...))
}

func checkRange(v *validator, name string, r Range) {
	v.check(r.Min > 0, "%s.min must be positive, got %g", name, r.Min)
	v.check(r.Min <= r.Max, "%s.min %g exceeds max %g", name, r.Min, r.Max)
}

// Validate checks the runner configuration for values the game cannot run
// with.
func (c RunnerConfig) Validate() error {
	var v validator

	v.check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive")
	v.check(c.World.GroundY > 0 && c.World.GroundY <= c.World.Height, "world.ground_y %g outside the world", c.World.GroundY)
	v.check(c.World.MaxFrameDeltaMs > 0, "world.max_frame_delta_ms must be positive")

	v.check(c.Controls.BufferMs >= 0, "controls.buffer_ms must not be negative")
	v.check(c.Controls.CoyoteTimeMs >= 0, "controls.coyote_time_ms must not be negative")

	v.check(c.Speed.Start > 0, "speed.start must be positive")
	v.check(c.Speed.Start <= c.Speed.Max, "speed.start %g exceeds max %g", c.Speed.Start, c.Speed.Max)
	v.check(c.Speed.Accel >= 0, "speed.accel must not be negative")

	checkRange(&v, "spawn.beer_interval_ms", c.Spawn.BeerIntervalMs)
	checkRange(&v, "spawn.wife_interval_ms", c.Spawn.WifeIntervalMs)
	checkRange(&v, "spawn.hole_interval_ms", c.Spawn.HoleIntervalMs)
	m := c.Spawn.MinIntervalMultiplierAtMaxSpeed
	v.check(m > 0 && m <= 1, "spawn.min_interval_multiplier_at_max_speed must be in (0, 1], got %g", m)
	v.check(c.Spawn.RetryMs > 0, "spawn.retry_ms must be positive")

	p := c.Physics.Player
	v.check(p.Width > 0 && p.Height > 0, "physics.player size must be positive")
	v.check(p.HitboxInset.Left+p.HitboxInset.Right < p.Width, "physics.player hitbox inset leaves no width")
	v.check(p.HitboxInset.Top+p.HitboxInset.Bottom < p.Height, "physics.player hitbox inset leaves no height")
	v.check(p.JumpVelocity < 0, "physics.player.jump_velocity must be negative (up)")
	v.check(c.Physics.Gravity > 0, "physics.gravity must be positive")

	e := c.Entities
	v.check(e.Beer.YMin <= e.Beer.YMax, "entities.beer.y_min exceeds y_max")
	v.check(e.Hole.GapWidth > 0, "entities.hole.gap_width must be positive")
	v.check(e.Wife.HitboxInset.Left+e.Wife.HitboxInset.Right < e.Wife.Width, "entities.wife hitbox inset leaves no width")

	d := c.Drunkenness
	v.check(d.Min < d.Max, "drunkenness.min %g must be below max %g", d.Min, d.Max)
	v.check(d.Start >= d.Min && d.Start <= d.Max, "drunkenness.start %g outside [%g, %g]", d.Start, d.Min, d.Max)
	v.check(d.JumpDelay.MaxDelayMs >= 0 && d.JumpDelay.MaxJitterMs >= 0, "drunkenness.jump_delay must not be negative")
	if _, err := c.TierTable(); err != nil {
		v.add(fmt.Errorf("drunkenness.tiers: %w", err))
	}

	return v.err()
}

// Validate checks the pour configuration for values the game cannot run
// with.
func (c PourConfig) Validate() error {
	var v validator

	v.check(c.DurationSeconds > 0, "duration_seconds must be positive")
	v.check(c.MaxFrameDeltaMs > 0, "max_frame_delta_ms must be positive")

	ctl := c.Controls
	v.check(ctl.MaxTilt > 0, "controls.max_tilt must be positive")
	v.check(ctl.AngularSpeed > 0, "controls.angular_speed must be positive")
	v.check(ctl.PointerDeadzone >= 0 && ctl.PointerDeadzone < 1, "controls.pointer_deadzone must be in [0, 1)")
	v.check(ctl.LagCapacity > 0, "controls.lag_capacity must be positive")

	v.check(c.Tilt.Inertia > 0, "tilt.inertia must be positive")
	v.check(c.Liquid.PourThreshold < c.Liquid.SpillThreshold, "liquid.pour_threshold must be below spill_threshold")
	v.check(c.Liquid.EmptyLevel < c.Liquid.MaxLevel, "liquid.empty_level must be below max_level")
	v.check(c.Foam.MaxLevel > 0, "foam.max_level must be positive")

	if c.Scoring.ComboEnabled {
		v.check(c.Scoring.BonusEvery > 0, "scoring.bonus_every must be positive when combos are enabled")
	}
	v.check(c.Ramp.EveryDrinks > 0, "ramp.every_drinks must be positive")

	d := c.Drunk
	v.check(d.Min < d.Max, "drunk.min %g must be below max %g", d.Min, d.Max)
	v.check(d.Start >= d.Min && d.Start <= d.Max, "drunk.start %g outside [%g, %g]", d.Start, d.Min, d.Max)
	if _, err := c.TierTable(); err != nil {
		v.add(fmt.Errorf("drunk.tiers: %w", err))
	}

	v.check(len(c.Glasses) > 0, "glasses must not be empty")
	seen := make(map[string]bool, len(c.Glasses))
	for _, g := range c.Glasses {
		v.check(g.ID != "", "glass without id")
		v.check(!seen[g.ID], "duplicate glass %q", g.ID)
		seen[g.ID] = true
		v.check(g.Capacity > 0, "glass %q capacity must be positive", g.ID)
		v.check(g.SpawnWeight >= 0, "glass %q spawn_weight must not be negative", g.ID)
		v.check(g.Stability > 0, "glass %q stability must be positive", g.ID)
	}
	checkAllowed(&v, "spawn.early_allowed", c.Spawn.EarlyAllowed, c)
	checkAllowed(&v, "spawn.late_allowed", c.Spawn.LateAllowed, c)

	return v.err()
}

func checkAllowed(v *validator, name string, ids []string, c PourConfig) {
	total := 0.0
	for _, id := range ids {
		g, ok := c.Glass(id)
		v.check(ok, "%s references unknown glass %q", name, id)
		total += g.SpawnWeight
	}
	v.check(total > 0, "%s has no glass with a positive spawn_weight", name)
}
