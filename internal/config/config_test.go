package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/beer-arcade/internal/impair"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	runner, err := decode(defaultRunnerYAML, func() RunnerConfig { return RunnerConfig{} })
	if err != nil {
		t.Fatalf("runner yaml: %v", err)
	}
	if !reflect.DeepEqual(runner, DefaultRunnerConfig()) {
		t.Errorf("embedded runner.yaml differs from DefaultRunnerConfig:\n%+v\nvs\n%+v", runner, DefaultRunnerConfig())
	}

	pour, err := decode(defaultPourYAML, func() PourConfig { return PourConfig{} })
	if err != nil {
		t.Fatalf("pour yaml: %v", err)
	}
	if !reflect.DeepEqual(pour, DefaultPourConfig()) {
		t.Errorf("embedded pour.yaml differs from DefaultPourConfig:\n%+v\nvs\n%+v", pour, DefaultPourConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("runner defaults invalid: %v", err)
	}
	if err := DefaultPourConfig().Validate(); err != nil {
		t.Errorf("pour defaults invalid: %v", err)
	}
}

func TestValidateRejectsTierGap(t *testing.T) {
	cfg := DefaultPourConfig()
	cfg.Drunk.Tiers[1].Max = 0.45

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	if !errors.Is(err, impair.ErrInvalidTiers) {
		t.Errorf("err = %v, want it to wrap ErrInvalidTiers", err)
	}
}

func TestValidateRunnerProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"speed range", func(c *RunnerConfig) { c.Speed.Start = 2000 }},
		{"spawn range", func(c *RunnerConfig) { c.Spawn.BeerIntervalMs = Range{Min: 900, Max: 100} }},
		{"jump up", func(c *RunnerConfig) { c.Physics.Player.JumpVelocity = 100 }},
		{"start outside", func(c *RunnerConfig) { c.Drunkenness.Start = 200 }},
		{"tiers short", func(c *RunnerConfig) { c.Drunkenness.Tiers = c.Drunkenness.Tiers[:2] }},
		{"frame clamp", func(c *RunnerConfig) { c.World.MaxFrameDeltaMs = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidatePourProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PourConfig)
	}{
		{"no glasses", func(c *PourConfig) { c.Glasses = nil }},
		{"unknown allowed", func(c *PourConfig) { c.Spawn.EarlyAllowed = []string{"stein"} }},
		{"zero weights", func(c *PourConfig) {
			for i := range c.Glasses {
				c.Glasses[i].SpawnWeight = 0
			}
		}},
		{"lag capacity", func(c *PourConfig) { c.Controls.LagCapacity = 0 }},
		{"thresholds", func(c *PourConfig) { c.Liquid.PourThreshold = 0.9 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPourConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	data := []byte("speed:\n  start: 500\n  max: 900\n  accel: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, want custom", src)
	}
	if cfg.Speed.Start != 500 {
		t.Errorf("speed.start = %v, want 500", cfg.Speed.Start)
	}
	if cfg.Physics.Gravity != 2800 {
		t.Errorf("unspecified gravity = %v, want default 2800", cfg.Physics.Gravity)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, _, err := LoadPour(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("duration_seconds: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadPour(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestTierTableConversion(t *testing.T) {
	table, err := DefaultPourConfig().TierTable()
	if err != nil {
		t.Fatal(err)
	}
	tier := table.For(0.6)
	if tier.ID != "buzzed" || tier.Effects.InputLag.Milliseconds() != 45 {
		t.Errorf("For(0.6) = %+v", tier)
	}
}

func TestRunnerTierTableScalesToLevel(t *testing.T) {
	table, err := DefaultRunnerConfig().TierTable()
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := table.Domain()
	if lo != 0 || hi != 100 {
		t.Fatalf("domain = [%v, %v], want [0, 100]", lo, hi)
	}
	tests := []struct {
		value float64
		want  string
	}{
		{0, "sober"},
		{24, "sober"},
		{25, "tipsy"},
		{60, "buzzed"},
		{100, "drunk"},
	}
	for _, tt := range tests {
		if got := table.For(tt.value).ID; got != tt.want {
			t.Errorf("For(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestPresets(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyHard)
	if cfg.Drunkenness.Start != 50 {
		t.Errorf("hard start = %v, want 50", cfg.Drunkenness.Start)
	}

	cfg = DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyFixed)
	if cfg.Drunkenness.Decay.Enabled || cfg.Drunkenness.PerBeer != 0 {
		t.Errorf("fixed preset should stop progression: %+v", cfg.Drunkenness)
	}

	cfg = DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Error("empty preset should not change the config")
	}

	pour := DefaultPourConfig()
	ApplyPourPreset(&pour, DifficultyEasy)
	if pour.Drunk.DecayPerSec != 0.03 {
		t.Errorf("easy decay = %v, want 0.03", pour.Drunk.DecayPerSec)
	}

	if ParsePreset("brutal") != "" || ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset mismatch")
	}
}

func TestSpawnMultiplier(t *testing.T) {
	cfg := DefaultRunnerConfig()
	tests := []struct {
		speed, want float64
	}{
		{380, 1},
		{680, 0.8},
		{980, 0.6},
		{2000, 0.6},
		{0, 1},
	}
	for _, tc := range tests {
		if got := cfg.SpawnMultiplier(tc.speed); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("SpawnMultiplier(%v) = %v, want %v", tc.speed, got, tc.want)
		}
	}

	if got := cfg.MinSpawnSpacing(380); got != 300 {
		t.Errorf("MinSpawnSpacing(380) = %v, want 300", got)
	}
	if got := cfg.MinSpawnSpacing(980); math.Abs(got-411.6) > 1e-9 {
		t.Errorf("MinSpawnSpacing(980) = %v, want 411.6", got)
	}
}

func TestRampFor(t *testing.T) {
	cfg := DefaultPourConfig()
	if r := cfg.RampFor(2); r.Steps != 0 || r.FlowRate != 0 {
		t.Errorf("RampFor(2) = %+v, want none", r)
	}
	r := cfg.RampFor(7)
	if r.Steps != 2 || math.Abs(r.FlowRate-0.16) > 1e-9 || math.Abs(r.DrunkGain-0.16) > 1e-9 {
		t.Errorf("RampFor(7) = %+v", r)
	}
}
