package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/beer-arcade/internal/config"
)

// Kind identifies what a world entity is.
type Kind int

const (
	KindBeer Kind = iota
	KindWife
	KindHole
)

var kinds = [...]Kind{KindBeer, KindWife, KindHole}

func (k Kind) String() string {
	switch k {
	case KindBeer:
		return "beer"
	case KindWife:
		return "wife"
	case KindHole:
		return "hole"
	default:
		return "unknown"
	}
}

// Box is an axis-aligned rectangle in world pixels.
type Box struct {
	X, Y, W, H float64
}

// Right returns the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Inset shrinks the box by the given margins.
func (b Box) Inset(in config.Inset) Box {
	return Box{
		X: b.X + in.Left,
		Y: b.Y + in.Top,
		W: b.W - in.Left - in.Right,
		H: b.H - in.Top - in.Bottom,
	}
}

// Entity is a collectible or obstacle scrolling towards the player.
type Entity struct {
	Kind Kind
	Box
	// Gap is the hole opening width; zero for other kinds.
	Gap float64
}

// Hitbox returns the collision area of an obstacle.
// A hole collides as a thin strip sitting on the ground across its gap.
func (e Entity) Hitbox(cfg *config.RunnerConfig) Box {
	switch e.Kind {
	case KindWife:
		return e.Box.Inset(cfg.Entities.Wife.HitboxInset)
	case KindHole:
		h := cfg.Entities.Hole.HitboxHeight
		return Box{X: e.X, Y: cfg.World.GroundY - h, W: e.Gap, H: h}
	default:
		return e.Box
	}
}

// cullX is how far past the left edge an entity may travel before removal.
func (e Entity) cullX() float64 {
	if e.Kind == KindBeer {
		return -80
	}
	return -120
}

// Spawner places entities on independent timers.
type Spawner struct {
	cfg      *config.RunnerConfig
	rng      *rand.Rand
	entities []Entity
	next     [len(kinds)]time.Duration
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg *config.RunnerConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:      cfg,
		rng:      rng,
		entities: make([]Entity, 0, 16),
	}
}

// Reset clears the world and schedules the first spawns relative to now.
func (s *Spawner) Reset(now time.Duration) {
	s.entities = s.entities[:0]
	sp := s.cfg.Spawn
	s.next[KindBeer] = now + config.Millis(sp.FirstBeerMs)
	s.next[KindWife] = now + config.Millis(sp.FirstWifeMs)
	s.next[KindHole] = now + config.Millis(sp.FirstHoleMs)
}

// Entities returns the live entities, oldest first.
func (s *Spawner) Entities() []Entity {
	return s.entities
}

// Next returns when kind will next try to spawn.
func (s *Spawner) Next(k Kind) time.Duration {
	return s.next[k]
}

// Update runs due spawn timers, scrolls everything left by speed and culls
// entities that left the screen.
func (s *Spawner) Update(now, dt time.Duration, speed float64) {
	mult := s.cfg.SpawnMultiplier(speed)
	for _, k := range kinds {
		if now < s.next[k] {
			continue
		}
		spawned := s.trySpawn(k, speed)
		wait := s.interval(k) * mult
		if !spawned {
			wait += float64(s.cfg.Spawn.RetryMs)
		}
		s.next[k] = now + time.Duration(wait*float64(time.Millisecond))
	}

	dx := speed * dt.Seconds()
	kept := s.entities[:0]
	for _, e := range s.entities {
		e.X -= dx
		if e.Right() > e.cullX() {
			kept = append(kept, e)
		}
	}
	s.entities = kept
}

// Remove deletes the entity at index i.
func (s *Spawner) Remove(i int) {
	s.entities = append(s.entities[:i], s.entities[i+1:]...)
}

// interval draws the next spawn wait in milliseconds.
func (s *Spawner) interval(k Kind) float64 {
	var r config.Range
	switch k {
	case KindBeer:
		r = s.cfg.Spawn.BeerIntervalMs
	case KindWife:
		r = s.cfg.Spawn.WifeIntervalMs
	default:
		r = s.cfg.Spawn.HoleIntervalMs
	}
	return r.Min + s.rng.Float64()*(r.Max-r.Min)
}

// build creates an entity of kind just beyond the right edge.
func (s *Spawner) build(k Kind) Entity {
	ent := s.cfg.Entities
	w := s.cfg.World.Width
	switch k {
	case KindBeer:
		y := ent.Beer.YMin + s.rng.Float64()*(ent.Beer.YMax-ent.Beer.YMin)
		return Entity{Kind: k, Box: Box{X: w + ent.Beer.XMargin, Y: y, W: ent.Beer.Width, H: ent.Beer.Height}}
	case KindWife:
		return Entity{Kind: k, Box: Box{X: w + ent.Wife.XMargin, Y: ent.Wife.Y, W: ent.Wife.Width, H: ent.Wife.Height}}
	default:
		return Entity{
			Kind: k,
			Box:  Box{X: w + ent.Hole.XMargin, Y: ent.Hole.Y, W: ent.Hole.Width, H: ent.Hole.Height},
			Gap:  ent.Hole.GapWidth,
		}
	}
}

// trySpawn adds an entity of kind when spacing rules allow it.
func (s *Spawner) trySpawn(k Kind, speed float64) bool {
	e := s.build(k)
	if !s.hasSpacing(e.X, speed) {
		return false
	}
	if k == KindBeer && !s.beerClear(e) {
		return false
	}
	s.entities = append(s.entities, e)
	return true
}

// hasSpacing reports whether every live entity is at least the minimum
// spawn distance behind spawnX.
func (s *Spawner) hasSpacing(spawnX, speed float64) bool {
	gap := s.cfg.MinSpawnSpacing(speed)
	for _, e := range s.entities {
		if spawnX-e.X < gap {
			return false
		}
	}
	return true
}

// beerClear reports whether a beer keeps the clearance from all obstacles.
// Holes only block horizontally, across their gap.
func (s *Spawner) beerClear(beer Entity) bool {
	pad := s.cfg.Spacing.BeerClearancePx
	for _, o := range s.entities {
		switch o.Kind {
		case KindHole:
			if beer.X < o.X+o.Gap+pad && o.X-pad < beer.Right() {
				return false
			}
		case KindWife:
			grown := Box{X: o.X - pad, Y: o.Y - pad, W: o.W + 2*pad, H: o.H + 2*pad}
			if beer.Intersects(grown) {
				return false
			}
		}
	}
	return true
}
