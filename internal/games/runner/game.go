// Package runner implements Beer Runner, an endless side-scroller.
// The player collects beers and jumps over wives and holes while each beer
// makes the camera, controls and music progressively worse.
package runner

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/beer-arcade/internal/config"
	"github.com/vovakirdan/beer-arcade/internal/core"
	"github.com/vovakirdan/beer-arcade/internal/impair"
	"github.com/vovakirdan/beer-arcade/internal/registry"
)

// ID is the registry identifier.
const ID = "runner"

// End reasons reported in RunSummary.
const (
	ReasonHit  = "hit"
	ReasonFall = "fall"
)

type phase int

const (
	phaseTitle phase = iota
	phasePlaying
	phaseGameOver
)

// configOverride stores the configuration set via CLI
var configOverride *config.RunnerConfig

// UseConfig makes every new game use cfg. The caller validates it first.
func UseConfig(cfg config.RunnerConfig) {
	configOverride = &cfg
}

// player is the runner's body in world pixels.
type player struct {
	Box
	VY           float64
	LastGrounded time.Duration
}

// Game implements the Beer Runner game logic.
type Game struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	engine  *impair.Engine
	delay   impair.DelayConfig
	jumps   impair.ActionQueue
	spawner *Spawner

	phase     phase
	paused    bool
	now       time.Duration
	startedAt time.Duration
	snap      impair.Snapshot

	player player
	speed  float64
	score  float64
	best   int
	beers  int

	maxTier   int
	endReason string

	scratch *core.Screen
}

// New creates a game using the configured or default settings.
func New() *Game {
	if configOverride != nil {
		return NewWithConfig(*configOverride)
	}
	return NewWithConfig(config.DefaultRunnerConfig())
}

// NewWithConfig creates a game with an explicit configuration.
// An invalid tier table falls back to the default configuration.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	g := &Game{cfg: cfg}
	table, err := cfg.TierTable()
	if err != nil {
		g.cfg = config.DefaultRunnerConfig()
		table, _ = g.cfg.TierTable()
	}
	d := g.cfg.Drunkenness
	g.engine = impair.NewEngine(table, impair.NewLevel(d.Min, d.Max, d.Start))
	g.delay = g.cfg.DelayConfig()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Beer Runner"
}

// Description returns the menu pitch.
func (g *Game) Description() string {
	return "Grab beers, dodge the wife, jump the holes."
}

// MaxFrameDelta is the per-frame step clamp.
func (g *Game) MaxFrameDelta() time.Duration {
	return g.cfg.MaxFrameDelta()
}

// Reset initializes the game and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.spawner = NewSpawner(&g.cfg, g.rng)

	g.best = 0
	if runtime.Best != nil {
		if best, err := runtime.Best.Get(g.cfg.Score.BestKey); err == nil {
			g.best = best
		}
	}

	g.now = 0
	g.start(0)
	g.phase = phaseTitle
}

// start begins a fresh run at now.
func (g *Game) start(now time.Duration) {
	g.phase = phasePlaying
	g.paused = false
	g.startedAt = now
	g.speed = g.cfg.Speed.Start
	g.score = 0
	g.beers = 0
	g.endReason = ""

	g.engine.Level().Reset()
	g.snap = g.engine.Snapshot()
	g.maxTier = g.engine.Table().Index(g.snap.Tier.ID)

	p := g.cfg.Physics.Player
	g.player = player{
		Box:          Box{X: p.StartX, Y: p.StartY, W: p.Width, H: p.Height},
		LastGrounded: now,
	}
	g.jumps.Clear()
	g.spawner.Reset(now)
}

// Step advances the game by one frame.
func (g *Game) Step(f core.Frame) core.StepResult {
	g.now = f.Now
	dt := f.Dt
	if limit := g.MaxFrameDelta(); limit > 0 && dt > limit {
		dt = limit
	}
	if dt < 0 {
		dt = 0
	}

	// One tier per frame: physics and the following render share it.
	g.snap = g.engine.Snapshot()

	var sounds []core.Sound
	jumpPressed := f.Input.Has(core.ActionJump) || f.Input.Has(core.ActionConfirm) ||
		f.Input.Has(core.ActionTap)

	switch g.phase {
	case phaseTitle:
		if jumpPressed {
			g.start(f.Now)
		}
		return g.result(sounds)
	case phaseGameOver:
		if jumpPressed || f.Input.Has(core.ActionRestart) {
			g.start(f.Now)
		}
		return g.result(sounds)
	}

	if f.Input.Has(core.ActionPause) && g.cfg.Controls.PauseEnabled {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result(sounds)
	}

	if jumpPressed {
		g.jumps.Schedule(f.Now, g.snap.Fraction, g.delay, g.rng)
	}

	sounds = g.update(f.Now, dt, sounds)
	return g.result(sounds)
}

// update runs one frame of simulation while playing.
func (g *Game) update(now, dt time.Duration, sounds []core.Sound) []core.Sound {
	secs := dt.Seconds()

	g.speed = math.Min(g.cfg.Speed.Max, g.speed+g.cfg.Speed.Accel*secs)

	if d := g.cfg.Drunkenness.Decay; d.Enabled {
		g.engine.Level().Decay(d.PerSecond, dt)
	}

	g.jumps.Update(now, g.canJump, func() {
		g.player.VY = g.cfg.Physics.Player.JumpVelocity
		sounds = append(sounds, core.SoundJump)
	})

	// Gravity and landing.
	g.player.VY += g.cfg.Physics.Gravity * secs
	g.player.Y += g.player.VY * secs
	if floor := g.floorY(); g.player.Y >= floor {
		g.player.Y = floor
		g.player.VY = 0
		g.player.LastGrounded = now
	}

	g.spawner.Update(now, dt, g.speed)

	hitbox := g.playerHitbox()
	// Beers first, so a pickup on the fatal frame still counts.
	for i := 0; i < len(g.spawner.entities); i++ {
		e := g.spawner.entities[i]
		if e.Kind != KindBeer || !hitbox.Intersects(e.Box) {
			continue
		}
		g.spawner.Remove(i)
		i--
		g.beers++
		g.score += g.cfg.Score.BeerBonusPoints
		g.engine.Level().Add(g.cfg.Drunkenness.PerBeer)
		sounds = append(sounds, core.SoundBurp)
	}
	for _, e := range g.spawner.entities {
		switch e.Kind {
		case KindWife:
			if hitbox.Intersects(e.Hitbox(&g.cfg)) {
				return g.gameOver(ReasonHit, sounds)
			}
		case KindHole:
			if g.fellInto(e, hitbox) {
				return g.gameOver(ReasonFall, sounds)
			}
		}
	}

	g.score += g.cfg.Score.DistancePointsPerSecond * secs

	tier := g.engine.Table().Index(g.engine.Snapshot().Tier.ID)
	if tier > g.maxTier {
		g.maxTier = tier
	}
	return sounds
}

// floorY is the player's resting Y on the ground.
func (g *Game) floorY() float64 {
	return g.cfg.World.GroundY - g.player.H
}

// playerHitbox is the inset collision box.
func (g *Game) playerHitbox() Box {
	return g.player.Box.Inset(g.cfg.Physics.Player.HitboxInset)
}

// canJump allows a jump when standing on the ground or within the coyote
// window after leaving it.
func (g *Game) canJump(now time.Duration) bool {
	if g.player.Y >= g.floorY()-0.5 {
		return true
	}
	return now-g.player.LastGrounded <= config.Millis(g.cfg.Controls.CoyoteTimeMs)
}

// fellInto reports whether the player stands over a hole's gap.
func (g *Game) fellInto(hole Entity, hitbox Box) bool {
	if g.player.Bottom() < g.cfg.World.GroundY-1 {
		return false
	}
	return hitbox.X < hole.X+hole.Gap && hole.X < hitbox.Right()
}

// gameOver ends the run and records the best score.
func (g *Game) gameOver(reason string, sounds []core.Sound) []core.Sound {
	g.phase = phaseGameOver
	g.endReason = reason
	g.jumps.Clear()

	if reason == ReasonFall {
		sounds = append(sounds, core.SoundFall)
	} else {
		sounds = append(sounds, core.SoundScream)
	}
	sounds = append(sounds, core.SoundGameOver)

	final := g.Score()
	best, err := core.UpdateBest(g.runtime.Best, g.cfg.Score.BestKey, final)
	if err != nil {
		// Store unavailable: keep the best known to this session.
		best = max(g.best, final)
	}
	g.best = best
	return sounds
}

func (g *Game) result(sounds []core.Sound) core.StepResult {
	return core.StepResult{State: g.State(), Sounds: sounds}
}

// Score is the floored run score.
func (g *Game) Score() int {
	return int(math.Floor(g.score))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Best:     g.best,
		GameOver: g.phase == phaseGameOver,
		Paused:   g.paused,
		Tier:     g.snap.Tier.ID,
	}
}

// AudioParams shapes the background music for the current intoxication.
func (g *Game) AudioParams() impair.AudioParams {
	if g.phase != phasePlaying {
		return impair.AudioFor(0, g.now)
	}
	return impair.AudioFor(g.snap.Fraction, g.now)
}

// RunSummary describes the last run.
func (g *Game) RunSummary() core.RunSummary {
	tier := ""
	if tiers := g.engine.Table().Tiers(); g.maxTier >= 0 && g.maxTier < len(tiers) {
		tier = tiers[g.maxTier].ID
	}
	return core.RunSummary{
		Score:     g.Score(),
		MaxTier:   tier,
		Duration:  g.now - g.startedAt,
		EndReason: g.endReason,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
