// Package audio plays the arcade's synthesized sound effects and the
// background loop whose filter and pitch follow the player's intoxication.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/beer-arcade/internal/core"
	"github.com/vovakirdan/beer-arcade/internal/impair"
)

const sampleRate = beep.SampleRate(44100)

// Player is what the platform drives once per frame.
type Player interface {
	Play(s core.Sound)
	Wobble(p impair.AudioParams)
	Close()
}

// Nop is a silent player.
type Nop struct{}

func (Nop) Play(core.Sound)            {}
func (Nop) Wobble(impair.AudioParams) {}
func (Nop) Close()                     {}

// Chain is the music signal path: drone, low-pass, gain.
// It is safe to adjust only while the consumer is not streaming.
type Chain struct {
	drone  *Drone
	filter *LowPass
	gain   *effects.Volume
	music  float64
}

// NewChain builds the music path at the given base volume.
func NewChain(rate beep.SampleRate, music float64) *Chain {
	drone := NewDrone(rate)
	filter := NewLowPass(drone, 12000, rate)
	return &Chain{
		drone:  drone,
		filter: filter,
		gain:   newVolume(filter, music),
		music:  music,
	}
}

// Apply sets filter cutoff, detune and gain from p.
func (c *Chain) Apply(p impair.AudioParams) {
	c.filter.SetCutoff(p.CutoffHz)
	c.drone.SetDetune(p.DetuneCents)
	setGain(c.gain, c.music*p.Gain)
}

// Streamer returns the chain output.
func (c *Chain) Streamer() beep.Streamer {
	return c.gain
}

// Speaker plays through the system audio device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	chain       *Chain
	music       *beep.Ctrl
	volume      float64
	initialized bool
}

// NewSpeaker creates an uninitialized speaker player.
// volume scales effects and music, in [0, 1].
func NewSpeaker(volume float64) *Speaker {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the audio device and starts the background loop.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	s.chain = NewChain(sampleRate, 0.6*s.volume)
	s.music = &beep.Ctrl{Streamer: s.chain.Streamer()}
	s.mixer.Add(s.music)
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes a one-shot effect into the output.
func (s *Speaker) Play(sound core.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := SoundFor(sound, sampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(newVolume(st, s.volume))
	speaker.Unlock()
}

// Wobble updates the background loop for the current intoxication.
func (s *Speaker) Wobble(p impair.AudioParams) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.chain.Apply(p)
	speaker.Unlock()
}

// Close silences everything and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.music.Paused = true
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Open returns a speaker player, or Nop when muted or when no audio device
// is available. The error reports why audio was disabled.
func Open(mute bool, volume float64) (Player, error) {
	if mute {
		return Nop{}, nil
	}
	sp := NewSpeaker(volume)
	if err := sp.Init(); err != nil {
		return Nop{}, err
	}
	return sp, nil
}
