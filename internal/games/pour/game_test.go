package pour

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/beer-arcade/internal/config"
	"github.com/vovakirdan/beer-arcade/internal/core"
	"github.com/vovakirdan/beer-arcade/internal/impair"
)

const (
	ms    = time.Millisecond
	frame = 16 * time.Millisecond
	eps   = 1e-9
)

func newTestGame(t *testing.T, cfg config.PourConfig) (*Game, *core.MemoryBestScores) {
	t.Helper()
	store := core.NewMemoryBestScores()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7, Best: store})
	return g, store
}

// stepper drives a game with a fixed frame length.
type stepper struct {
	g   *Game
	now time.Duration
}

func (s *stepper) frame(in core.InputFrame) core.StepResult {
	s.now += frame
	return s.g.Step(core.Frame{Input: in, Now: s.now, Dt: frame})
}

func (s *stepper) step(actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return s.frame(in)
}

func (s *stepper) hold(actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.SetHeld(a)
	}
	return s.frame(in)
}

func (s *stepper) run(d time.Duration) []core.Sound {
	var sounds []core.Sound
	for end := s.now + d; s.now < end; {
		sounds = append(sounds, s.step().Sounds...)
	}
	return sounds
}

func start(t *testing.T, cfg config.PourConfig) (*stepper, *core.MemoryBestScores) {
	t.Helper()
	g, store := newTestGame(t, cfg)
	s := &stepper{g: g}
	s.step(core.ActionConfirm)
	if g.phase != phasePlaying {
		t.Fatalf("phase = %v after start, want playing", g.phase)
	}
	return s, store
}

func hasSound(sounds []core.Sound, want core.Sound) bool {
	for _, s := range sounds {
		if s == want {
			return true
		}
	}
	return false
}

// calmConfig removes every distortion so the glass follows input exactly.
func calmConfig() config.PourConfig {
	cfg := config.DefaultPourConfig()
	for i := range cfg.Drunk.Tiers {
		cfg.Drunk.Tiers[i].Effects = config.EffectsConfig{}
	}
	return cfg
}

func TestTitleWaitsForInput(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultPourConfig())
	s := &stepper{g: g}
	s.run(time.Second)
	if g.phase != phaseTitle || g.timeLeft != 30 {
		t.Fatalf("title advanced: phase=%v timeLeft=%v", g.phase, g.timeLeft)
	}
}

func TestTimerEndsRun(t *testing.T) {
	s, _ := start(t, config.DefaultPourConfig())
	g := s.g

	sounds := s.run(31 * time.Second)
	if g.phase != phaseResult {
		t.Fatalf("phase = %v after 31s, want result", g.phase)
	}
	if !hasSound(sounds, core.SoundGameOver) {
		t.Fatalf("no game over sound in %v", sounds)
	}
	if !g.State().GameOver || g.timeLeft != 0 {
		t.Fatalf("state = %+v timeLeft=%v", g.State(), g.timeLeft)
	}

	found := false
	for _, c := range g.cfg.Comments {
		if c == g.comment {
			found = true
		}
	}
	if !found {
		t.Fatalf("comment %q not from the configured pool", g.comment)
	}

	sum := g.RunSummary()
	if sum.EndReason != ReasonTime || sum.Duration > 31*time.Second {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestSoberTiltPassesThrough(t *testing.T) {
	s, _ := start(t, config.DefaultPourConfig())
	g := s.g

	for i := 0; i < 10; i++ {
		s.hold(core.ActionRight)
	}
	target := g.sampler.Target()
	if target <= 0 {
		t.Fatalf("target = %v after holding right", target)
	}
	if g.tilt <= 0 || g.tilt > target {
		t.Fatalf("tilt = %v, want in (0, %v]", g.tilt, target)
	}
	if g.lag.Len() != 10 {
		t.Fatalf("lag buffer holds %d samples, want 10", g.lag.Len())
	}
}

func TestLaggedTiltAtDrunkTier(t *testing.T) {
	cfg := calmConfig()
	cfg.Drunk.Start = 1
	cfg.Drunk.Tiers[3].Effects = config.EffectsConfig{InputLagMs: 100}
	s, _ := start(t, cfg)
	g := s.g

	if g.snap.Tier.ID != "drunk" {
		t.Fatalf("tier = %q, want drunk", g.snap.Tier.ID)
	}

	// Build 200ms of centered history, then push right.
	s.run(200 * ms)
	for i := 0; i < 3; i++ {
		s.hold(core.ActionRight)
	}
	if g.sampler.Target() <= 0 {
		t.Fatal("sampler ignored input")
	}
	if g.tilt != 0 {
		t.Fatalf("tilt = %v within the lag window, want 0", g.tilt)
	}

	for i := 0; i < 10; i++ {
		s.hold(core.ActionRight)
	}
	if g.tilt <= 0 {
		t.Fatalf("tilt = %v after the lag elapsed, want > 0", g.tilt)
	}
}

func TestPourRate(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultPourConfig())
	spec, _ := g.cfg.Glass("pint")
	g.glass = newGlass(spec, g.cfg.Spawn)

	none := config.RampBoost{}
	if r := g.pourRate(0.1, none); r != 0 {
		t.Fatalf("pourRate below threshold = %v", r)
	}
	want := 0.55 * impair.Sigmoid(0.5, 6, 0.35)
	if r := g.pourRate(0.5, none); math.Abs(r-want) > eps {
		t.Fatalf("pourRate(0.5) = %v, want %v", r, want)
	}
	if g.pourRate(0.5, none) <= g.pourRate(0.3, none) {
		t.Fatal("flow does not grow with tilt")
	}
	if g.pourRate(0.5, g.cfg.RampFor(3)) <= g.pourRate(0.5, none) {
		t.Fatal("ramp does not raise flow")
	}
}

func TestDrinkingDrainsGlass(t *testing.T) {
	s, _ := start(t, calmConfig())
	g := s.g
	g.glass.InGlass = 0.6
	g.glass.Consumed = 0

	before := g.glass.InGlass
	s.hold(core.ActionDrink)
	if !g.drinking {
		t.Fatal("drink hold not detected")
	}
	drank := before - g.glass.InGlass
	rate := g.cfg.Liquid.DrinkRate * (1 + g.glass.Spec.Weight*g.cfg.Liquid.DrinkWeightFactor)
	if math.Abs(drank-rate*frame.Seconds()) > eps {
		t.Fatalf("drank %v, want %v", drank, rate*frame.Seconds())
	}
	if math.Abs(g.glass.Consumed-drank) > eps {
		t.Fatalf("consumed = %v, want %v", g.glass.Consumed, drank)
	}
}

func TestGlassCompletion(t *testing.T) {
	s, _ := start(t, calmConfig())
	g := s.g
	g.glass.InGlass = 0.04
	g.glass.Consumed = g.glass.Spec.Capacity

	r := s.step()
	if !hasSound(r.Sounds, core.SoundSuccess) {
		t.Fatalf("sounds = %v, want success", r.Sounds)
	}
	if g.score != 1 || g.combo != 1 || g.drinks != 1 || g.bestCombo != 1 {
		t.Fatalf("score=%d combo=%d drinks=%d bestCombo=%d", g.score, g.combo, g.drinks, g.bestCombo)
	}
	if len(g.pops) != 1 || g.pops[0].Text != "+1" {
		t.Fatalf("pops = %+v", g.pops)
	}
	if g.glass.InGlass != g.cfg.Spawn.StartLevel || g.glass.Consumed != 0 {
		t.Fatalf("new glass = %+v", g.glass)
	}
	if lvl := g.engine.Level().Value(); lvl < 0.11 || lvl > 0.12 {
		t.Fatalf("level = %v, want just under 0.12", lvl)
	}
}

func TestComboBonus(t *testing.T) {
	s, _ := start(t, calmConfig())
	g := s.g
	g.combo = 4
	g.score = 4
	g.glass.InGlass = 0
	g.glass.Consumed = g.glass.Spec.Capacity

	s.step()
	if g.score != 6 || g.combo != 5 || g.bestCombo != 5 {
		t.Fatalf("score=%d combo=%d bestCombo=%d", g.score, g.combo, g.bestCombo)
	}
	if g.pops[len(g.pops)-1].Text != "+2" {
		t.Fatalf("pop = %q, want +2", g.pops[len(g.pops)-1].Text)
	}
}

func TestSpillPenaltyOncePerCooldown(t *testing.T) {
	s, _ := start(t, calmConfig())
	g := s.g
	g.combo = 3
	g.glass.InGlass = 1.1
	g.glass.Foam = 0.2

	r := s.step()
	if !hasSound(r.Sounds, core.SoundSpill) {
		t.Fatalf("sounds = %v, want spill", r.Sounds)
	}
	if g.combo != 0 {
		t.Fatalf("combo = %d after spill, want 0", g.combo)
	}
	if want := 30 - frame.Seconds() - 1; math.Abs(g.timeLeft-want) > eps {
		t.Fatalf("timeLeft = %v, want %v", g.timeLeft, want)
	}
	if want := 0.5 - frame.Seconds(); math.Abs(g.rimFlash-want) > eps {
		t.Fatalf("rimFlash = %v, want %v", g.rimFlash, want)
	}
	wantLevel := 0.4 - 0.015*frame.Seconds()
	if lvl := g.engine.Level().Value(); math.Abs(lvl-wantLevel) > eps {
		t.Fatalf("level = %v, want %v", lvl, wantLevel)
	}

	// Still overfilled, but inside the cooldown.
	before := g.timeLeft
	r = s.step()
	if hasSound(r.Sounds, core.SoundSpill) {
		t.Fatal("second spill inside cooldown")
	}
	if math.Abs(before-g.timeLeft-frame.Seconds()) > eps {
		t.Fatalf("timer dropped %v in one frame", before-g.timeLeft)
	}
}

func TestOverTiltSpills(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultPourConfig())
	g.glass.InGlass = 0.3
	g.glass.Foam = 0.1
	if r := g.spillRate(0.5); r != 0 {
		t.Fatalf("spillRate at moderate tilt = %v", r)
	}
	want := (0.88 - 0.78) * 1.4
	if r := g.spillRate(0.88); math.Abs(r-want) > eps {
		t.Fatalf("spillRate(0.88) = %v, want %v", r, want)
	}
}

func TestWeightedPickRespectsAllowLists(t *testing.T) {
	cfg := config.DefaultPourConfig()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		g := pickGlass(&cfg, 0, rng)
		if g.ID != "mug" && g.ID != "pint" {
			t.Fatalf("early pick %q outside the early list", g.ID)
		}
	}

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[pickGlass(&cfg, 10, rng).ID] = true
	}
	for _, id := range cfg.Spawn.LateAllowed {
		if !seen[id] {
			t.Fatalf("late picks never produced %q: %v", id, seen)
		}
	}

	if _, ok := weightedPick(nil, rng); ok {
		t.Fatal("weightedPick on no items reported ok")
	}
}

func TestPauseFreezesTimer(t *testing.T) {
	s, _ := start(t, config.DefaultPourConfig())
	g := s.g
	s.step(core.ActionPause)
	before := g.timeLeft
	s.run(time.Second)
	if g.timeLeft != before || !g.State().Paused {
		t.Fatalf("timer moved while paused: %v -> %v", before, g.timeLeft)
	}
	s.step(core.ActionPause)
	s.step()
	if g.timeLeft >= before {
		t.Fatal("timer stuck after resume")
	}
}

func TestRestartAfterResult(t *testing.T) {
	s, store := start(t, calmConfig())
	g := s.g
	g.score = 7
	g.timeLeft = 0.01
	s.step()
	if g.phase != phaseResult {
		t.Fatalf("phase = %v, want result", g.phase)
	}
	if best, _ := store.Get(g.cfg.BestKey); best != 7 || g.best != 7 {
		t.Fatalf("best stored=%d game=%d, want 7", best, g.best)
	}

	s.step(core.ActionRestart)
	if g.phase != phasePlaying || g.score != 0 || g.timeLeft != 30 || g.combo != 0 {
		t.Fatalf("restart left phase=%v score=%d timeLeft=%v", g.phase, g.score, g.timeLeft)
	}
	if g.engine.Level().Value() != 0 || g.lag.Len() != 0 {
		t.Fatal("restart kept intoxication or lag history")
	}
}

func TestDeterministicRuns(t *testing.T) {
	cfg := config.DefaultPourConfig()
	cfg.Drunk.Start = 0.6

	play := func() (*Game, []core.Sound) {
		s, _ := start(t, cfg)
		var sounds []core.Sound
		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			switch {
			case i%90 < 40:
				in.SetHeld(core.ActionRight)
			case i%90 < 60:
				in.SetHeld(core.ActionDrink)
			}
			sounds = append(sounds, s.frame(in).Sounds...)
		}
		return s.g, sounds
	}

	a, sa := play()
	b, sb := play()
	if a.tilt != b.tilt || a.glass != b.glass || a.score != b.score || a.timeLeft != b.timeLeft {
		t.Fatalf("runs diverged: %v/%v %+v/%+v", a.tilt, b.tilt, a.glass, b.glass)
	}
	if len(sa) != len(sb) {
		t.Fatalf("sound counts differ: %d vs %d", len(sa), len(sb))
	}
}

func TestRunSummaryAndAudio(t *testing.T) {
	cfg := calmConfig()
	s, _ := start(t, cfg)
	g := s.g
	if p := g.AudioParams(); p.CutoffHz != 12000 {
		t.Fatalf("sober audio = %+v", p)
	}

	g.engine.Level().Set(0.8)
	g.bestCombo = 3
	s.step()
	if p := g.AudioParams(); p.CutoffHz >= 12000 {
		t.Fatalf("drunk audio not filtered: %+v", p)
	}
	sum := g.RunSummary()
	if sum.MaxTier != "drunk" || sum.BestCombo != 3 || sum.EndReason != "" {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, calmConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "BEER POUR") {
		t.Fatalf("title screen missing text:\n%s", out)
	}

	s := &stepper{g: g}
	s.step(core.ActionConfirm)
	s.step()
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"TIME", "SCORE 0", "o o", g.glass.Spec.Label} {
		if !strings.Contains(out, want) {
			t.Fatalf("play screen missing %q:\n%s", want, out)
		}
	}
	if !strings.ContainsRune(out, WallChar) {
		t.Fatalf("no glass drawn:\n%s", out)
	}

	g.engine.Level().Set(0.9)
	s.step()
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "x x") {
		t.Fatalf("drunk face missing:\n%s", out)
	}

	g.timeLeft = 0.001
	s.step()
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "TIME UP") || !strings.Contains(out, "BEST COMBO") {
		t.Fatalf("result screen missing text:\n%s", out)
	}
}

func TestGlassProfiles(t *testing.T) {
	for _, tt := range []struct {
		id          string
		t           float64
		left, right float64
		ok          bool
	}{
		{"mug", 0, 0, 1, true},
		{"pint", 0, 0.1, 0.9, true},
		{"pint", 1, 0, 1, true},
		{"pilsner", 1, 0.4, 0.6, true},
		{"flute", 0, 0.35, 0.65, true},
		{"flute", 0.9, 0, 0, false},
	} {
		l, r, ok := profile(tt.id, tt.t)
		if ok != tt.ok || math.Abs(l-tt.left) > eps || math.Abs(r-tt.right) > eps {
			t.Errorf("profile(%q, %v) = %v, %v, %v", tt.id, tt.t, l, r, ok)
		}
	}
}

func TestRegistered(t *testing.T) {
	g := New()
	if g.ID() != ID || g.Title() != "Beer Pour" {
		t.Fatalf("id=%q title=%q", g.ID(), g.Title())
	}
	if g.MaxFrameDelta() != 33*ms {
		t.Fatalf("MaxFrameDelta = %v", g.MaxFrameDelta())
	}
}
