package pour

import (
	"math/rand"

	"github.com/vovakirdan/beer-arcade/internal/config"
)

// Glass is the glass currently in play. Levels are fractions of its height.
type Glass struct {
	Spec       config.Glass
	InGlass    float64 // Liquid level
	Foam       float64 // Head on top of the liquid
	Consumed   float64 // Drunk so far from this glass
	Slosh      float64 // Surface offset for rendering
	SloshPhase float64
}

// Empty reports whether the glass has been finished.
func (g Glass) Empty(emptyLevel float64) bool {
	return g.Consumed >= g.Spec.Capacity && g.InGlass <= emptyLevel
}

// newGlass starts a glass with the configured head start.
func newGlass(spec config.Glass, sp config.PourSpawn) Glass {
	return Glass{
		Spec:    spec,
		InGlass: sp.StartLevel,
		Foam:    sp.StartFoam,
	}
}

// allowedGlasses filters the configured glasses by the early or late list.
// Config order is kept so picks are reproducible.
func allowedGlasses(cfg *config.PourConfig, elapsed float64) []config.Glass {
	ids := cfg.Spawn.LateAllowed
	if elapsed < cfg.Spawn.EarlyGameSeconds {
		ids = cfg.Spawn.EarlyAllowed
	}
	out := make([]config.Glass, 0, len(ids))
	for _, g := range cfg.Glasses {
		for _, id := range ids {
			if g.ID == id {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

// weightedPick draws one glass proportionally to SpawnWeight.
// Falls back to the last item if rounding leaves r past the total.
func weightedPick(items []config.Glass, rng *rand.Rand) (config.Glass, bool) {
	if len(items) == 0 {
		return config.Glass{}, false
	}
	total := 0.0
	for _, it := range items {
		total += it.SpawnWeight
	}
	r := rng.Float64() * total
	acc := 0.0
	for _, it := range items {
		acc += it.SpawnWeight
		if r <= acc {
			return it, true
		}
	}
	return items[len(items)-1], true
}

// pickGlass chooses the next glass type for the given run time.
func pickGlass(cfg *config.PourConfig, elapsed float64, rng *rand.Rand) config.Glass {
	if g, ok := weightedPick(allowedGlasses(cfg, elapsed), rng); ok {
		return g
	}
	if len(cfg.Glasses) > 0 {
		return cfg.Glasses[0]
	}
	return config.Glass{ID: "mug", Label: "Mug", Weight: 1, Capacity: 1, Stability: 1, Foaminess: 1, PourSensitivity: 1, SpawnWeight: 1}
}
