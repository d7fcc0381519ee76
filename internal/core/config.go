package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int        // Screen width in characters
	ScreenH  int        // Screen height in characters
	TickRate int        // Frames per second requested from the driver
	Seed     int64      // RNG seed for deterministic gameplay
	Best     BestScores // Best-score store, nil means none
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Frame is everything a game needs to advance one step.
// Now is measured from the start of the run; Dt is already clamped.
type Frame struct {
	Input InputFrame
	Now   time.Duration
	Dt    time.Duration
}

// Sound is a one-shot sound effect requested by a game.
type Sound int

const (
	SoundNone Sound = iota
	SoundJump
	SoundBurp
	SoundScream
	SoundFall
	SoundGameOver
	SoundSuccess
	SoundSpill
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundBurp:
		return "burp"
	case SoundScream:
		return "scream"
	case SoundFall:
		return "fall"
	case SoundGameOver:
		return "game_over"
	case SoundSuccess:
		return "success"
	case SoundSpill:
		return "spill"
	default:
		return "none"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Best     int    // Best score known to the game
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Tier     string // Active intoxication tier id
}

// StepResult is returned by Game.Step() after each frame.
// Sounds lists the effects triggered during the frame, in order.
type StepResult struct {
	State  GameState
	Sounds []Sound
}

// RunSummary describes a finished run for the run history.
type RunSummary struct {
	Score     int
	MaxTier   string
	BestCombo int
	Duration  time.Duration
	EndReason string
}
