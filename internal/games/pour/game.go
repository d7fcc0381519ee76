// Package pour implements Beer Pour, a timed minigame: tilt the glass to
// pour, hold drink to empty it, and don't spill while the drinks pile up.
package pour

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/beer-arcade/internal/config"
	"github.com/vovakirdan/beer-arcade/internal/core"
	"github.com/vovakirdan/beer-arcade/internal/impair"
	"github.com/vovakirdan/beer-arcade/internal/input"
	"github.com/vovakirdan/beer-arcade/internal/registry"
)

// ID is the registry identifier.
const ID = "pour"

// ReasonTime is the only way a pour run ends.
const ReasonTime = "time"

const popLife = 0.8

type phase int

const (
	phaseTitle phase = iota
	phasePlaying
	phaseResult
)

// configOverride stores the configuration set via CLI
var configOverride *config.PourConfig

// UseConfig makes every new game use cfg. The caller validates it first.
func UseConfig(cfg config.PourConfig) {
	configOverride = &cfg
}

// pop is floating score text.
type pop struct {
	Text string
	Life float64 // Seconds left
}

// Game implements the Beer Pour game logic.
type Game struct {
	cfg     config.PourConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	engine  *impair.Engine
	sampler *input.TiltSampler
	lag     *impair.LagBuffer
	distort *impair.Distorter

	phase     phase
	paused    bool
	now       time.Duration
	startedAt time.Duration
	snap      impair.Snapshot

	elapsed  float64 // Run time in seconds
	timeLeft float64

	tilt     float64 // Smoothed glass tilt in radians
	drinking bool
	glass    Glass

	score     int
	combo     int
	bestCombo int
	drinks    int
	best      int
	maxTier   int

	spillCooldown float64
	rimFlash      float64
	pops          []pop
	comment       string

	scratch *core.Screen
	prev    *core.Screen
}

// New creates a game using the configured or default settings.
func New() *Game {
	if configOverride != nil {
		return NewWithConfig(*configOverride)
	}
	return NewWithConfig(config.DefaultPourConfig())
}

// NewWithConfig creates a game with an explicit configuration.
// An invalid configuration falls back to the defaults.
func NewWithConfig(cfg config.PourConfig) *Game {
	if err := cfg.Validate(); err != nil {
		cfg = config.DefaultPourConfig()
	}
	g := &Game{cfg: cfg}
	table, _ := cfg.TierTable()
	d := cfg.Drunk
	g.engine = impair.NewEngine(table, impair.NewLevel(d.Min, d.Max, d.Start))

	c := cfg.Controls
	g.sampler = input.NewTiltSampler(input.TiltSettings{
		AngularSpeed:     c.AngularSpeed,
		MaxTilt:          c.MaxTilt,
		ReturnRate:       c.ReturnRate,
		Deadzone:         c.PointerDeadzone,
		Sensitivity:      c.PointerSensitivity,
		KeyboardPriority: config.Millis(c.KeyboardPriorityMs),
	})
	g.lag = impair.NewLagBuffer(c.LagCapacity)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Beer Pour"
}

// Description returns the menu pitch.
func (g *Game) Description() string {
	return "Tilt, drink, don't spill. The clock is running."
}

// MaxFrameDelta is the per-frame step clamp.
func (g *Game) MaxFrameDelta() time.Duration {
	return g.cfg.MaxFrameDelta()
}

// Reset initializes the game and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.distort = impair.NewDistorter(g.rng)

	g.best = 0
	if runtime.Best != nil {
		if best, err := runtime.Best.Get(g.cfg.BestKey); err == nil {
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
	g.elapsed = 0
	g.timeLeft = g.cfg.DurationSeconds

	g.score = 0
	g.combo = 0
	g.bestCombo = 0
	g.drinks = 0
	g.tilt = 0
	g.drinking = false
	g.spillCooldown = 0
	g.rimFlash = 0
	g.pops = g.pops[:0]
	g.comment = ""

	g.engine.Level().Reset()
	g.snap = g.engine.Snapshot()
	g.maxTier = g.engine.Table().Index(g.snap.Tier.ID)

	g.sampler.Reset()
	g.lag.Reset()
	g.spawnGlass()
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
	startPressed := f.Input.Has(core.ActionConfirm) || f.Input.Has(core.ActionJump)

	switch g.phase {
	case phaseTitle:
		if startPressed {
			g.start(f.Now)
		}
		return g.result(sounds)
	case phaseResult:
		if startPressed || f.Input.Has(core.ActionRestart) {
			g.start(f.Now)
		}
		return g.result(sounds)
	}

	if f.Input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result(sounds)
	}

	sounds = g.update(f, dt, sounds)
	return g.result(sounds)
}

// update runs one frame of simulation while playing.
func (g *Game) update(f core.Frame, dt time.Duration, sounds []core.Sound) []core.Sound {
	secs := dt.Seconds()
	g.elapsed += secs
	g.timeLeft -= secs
	if g.timeLeft <= 0 {
		return g.finish(sounds)
	}

	fx := g.snap.Effects()
	ramp := g.cfg.RampFor(g.drinks)

	// Control signal: sample, delay, distort, then smooth into the glass.
	target := g.sampler.Sample(f.Input, f.Now, dt)
	g.lag.Record(target, f.Now)
	signal := g.lag.Sample(fx.InputLag, f.Now, target)
	signal = g.distort.Apply(signal, fx, dt)

	tc := g.cfg.Tilt
	if tc.Inertia > 0 {
		smoothing := 1 - math.Exp(-secs*6/tc.Inertia)
		g.tilt += (signal - g.tilt) * smoothing
	} else {
		g.tilt = signal
	}
	g.tilt *= 1 - tc.AutoCentering*secs
	abs := math.Abs(g.tilt)

	liq := g.cfg.Liquid
	gl := &g.glass
	g.drinking = input.DrinkHeld(f.Input)

	poured := g.pourRate(abs, ramp) * secs
	drank := 0.0
	if g.drinking {
		rate := liq.DrinkRate * (1 + gl.Spec.Weight*liq.DrinkWeightFactor)
		drank = math.Min(gl.InGlass, rate*secs)
	}
	gl.InGlass = core.ClampF(gl.InGlass+poured-drank, 0, liq.MaxLevel)
	gl.Consumed += drank

	foam := g.cfg.Foam
	growth := foam.GrowthIdle
	if g.drinking {
		growth = foam.GrowthWhileDrinking
	}
	gl.Foam = core.ClampF(gl.Foam+growth*(1+ramp.FoamGrowth)*gl.Spec.Foaminess*secs, 0, foam.MaxLevel)
	if g.drinking {
		gl.Foam *= 1 - foam.SkimWhileDrinking*secs
	}

	if rate := g.spillRate(abs); rate > 0 {
		gl.InGlass = math.Max(0, gl.InGlass-rate*secs)
		gl.Foam = math.Max(0, gl.Foam-rate*secs)
		if g.spillCooldown <= 0 {
			sounds = g.spill(ramp, sounds)
		}
	}

	g.spillCooldown = math.Max(0, g.spillCooldown-secs)
	g.rimFlash = math.Max(0, g.rimFlash-secs)

	gl.SloshPhase += secs * liq.SloshFrequency
	gl.Slosh = math.Sin(gl.SloshPhase) * liq.SloshAmplitude

	if gl.Empty(liq.EmptyLevel) {
		sounds = g.complete(ramp, sounds)
	}

	g.engine.Level().Decay(g.cfg.Drunk.DecayPerSec, dt)
	g.updatePops(secs)

	tier := g.engine.Table().Index(g.engine.Snapshot().Tier.ID)
	if tier > g.maxTier {
		g.maxTier = tier
	}
	if g.timeLeft <= 0 {
		return g.finish(sounds)
	}
	return sounds
}

// pourRate is the flow into the glass per second at tilt magnitude abs.
func (g *Game) pourRate(abs float64, ramp config.RampBoost) float64 {
	liq := g.cfg.Liquid
	if abs < liq.PourThreshold {
		return 0
	}
	flow := liq.BaseFlowRate + ramp.FlowRate
	return flow * impair.Sigmoid(abs, liq.FlowCurveK, liq.FlowCurveX0) * g.glass.Spec.PourSensitivity
}

// spillRate is how fast the glass loses contents from overfill and tilt.
func (g *Game) spillRate(abs float64) float64 {
	overfill := math.Max(0, g.glass.InGlass+g.glass.Foam-1)
	tiltSpill := math.Max(0, abs-g.cfg.Liquid.SpillThreshold)
	return overfill*g.cfg.Foam.OverfillSpillFactor + tiltSpill*g.cfg.Liquid.TiltSpillFactor
}

// spill applies the once-per-cooldown penalty.
func (g *Game) spill(ramp config.RampBoost, sounds []core.Sound) []core.Sound {
	p := g.cfg.Penalty
	g.spillCooldown = p.CooldownSeconds
	g.rimFlash = p.RimFlashSeconds
	if g.cfg.Scoring.ResetOnSpill {
		g.combo = 0
	}
	g.timeLeft = math.Max(0, g.timeLeft-p.TimeSubtract)
	g.engine.Level().Add((p.DrunkAdd + g.cfg.Drunk.PerSpill) * (1 + ramp.DrunkGain))
	return append(sounds, core.SoundSpill)
}

// complete scores a finished glass and brings the next one.
func (g *Game) complete(ramp config.RampBoost, sounds []core.Sound) []core.Sound {
	sc := g.cfg.Scoring
	g.combo++
	g.bestCombo = max(g.bestCombo, g.combo)
	g.drinks++

	bonus := 0
	if sc.ComboEnabled && sc.BonusEvery > 0 && g.combo%sc.BonusEvery == 0 {
		bonus = sc.BonusPoints
	}
	g.score += sc.GlassPoints + bonus
	g.pops = append(g.pops, pop{Text: fmt.Sprintf("+%d", sc.GlassPoints+bonus), Life: popLife})

	g.engine.Level().Add(g.cfg.Drunk.PerGlass * (1 + ramp.DrunkGain))
	g.spawnGlass()
	return append(sounds, core.SoundSuccess)
}

func (g *Game) spawnGlass() {
	g.glass = newGlass(pickGlass(&g.cfg, g.elapsed, g.rng), g.cfg.Spawn)
}

func (g *Game) updatePops(secs float64) {
	kept := g.pops[:0]
	for _, p := range g.pops {
		p.Life -= secs
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	g.pops = kept
}

// finish ends the run when time is up.
func (g *Game) finish(sounds []core.Sound) []core.Sound {
	g.phase = phaseResult
	g.timeLeft = 0
	g.drinking = false
	if n := len(g.cfg.Comments); n > 0 {
		g.comment = g.cfg.Comments[g.rng.Intn(n)]
	}

	best, err := core.UpdateBest(g.runtime.Best, g.cfg.BestKey, g.score)
	if err != nil {
		// Store unavailable: keep the best known to this session.
		best = max(g.best, g.score)
	}
	g.best = best
	return append(sounds, core.SoundGameOver)
}

func (g *Game) result(sounds []core.Sound) core.StepResult {
	return core.StepResult{State: g.State(), Sounds: sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		GameOver: g.phase == phaseResult,
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

// maxTierID is the most severe tier reached this run.
func (g *Game) maxTierID() string {
	if tiers := g.engine.Table().Tiers(); g.maxTier >= 0 && g.maxTier < len(tiers) {
		return tiers[g.maxTier].ID
	}
	return ""
}

// RunSummary describes the last run.
func (g *Game) RunSummary() core.RunSummary {
	reason := ""
	if g.phase == phaseResult {
		reason = ReasonTime
	}
	return core.RunSummary{
		Score:     g.score,
		MaxTier:   g.maxTierID(),
		BestCombo: g.bestCombo,
		Duration:  config.Seconds(g.elapsed),
		EndReason: reason,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
