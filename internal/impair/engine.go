package impair

// Snapshot is the impairment state observed by one frame.
// Physics and rendering of the same frame must read the same snapshot.
type Snapshot struct {
	Value    float64
	Fraction float64
	Tier     Tier
}

// Effects is shorthand for the active tier's profile.
func (s Snapshot) Effects() EffectProfile {
	return s.Tier.Effects
}

// Engine couples a level with its tier table.
type Engine struct {
	level *Level
	table Table
}

// NewEngine creates an engine for the given table and level.
func NewEngine(table Table, level *Level) *Engine {
	return &Engine{level: level, table: table}
}

// Level returns the mutable intoxication level.
func (e *Engine) Level() *Level {
	return e.level
}

// Table returns the tier table.
func (e *Engine) Table() Table {
	return e.table
}

// Snapshot captures the current value and its tier.
func (e *Engine) Snapshot() Snapshot {
	v := e.level.Value()
	return Snapshot{
		Value:    v,
		Fraction: e.level.Fraction(),
		Tier:     e.table.For(v),
	}
}
