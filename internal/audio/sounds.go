package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/beer-arcade/internal/core"
)

// Sound effect generators

func tone(freq float64, d time.Duration, w WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, w, rate), d, 5*time.Millisecond, d/2, rate)
}

func glide(from, to float64, d time.Duration, w WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(from, to, d, w, rate), d, 5*time.Millisecond, d/3, rate)
}

// SoundFor returns a fresh streamer for a game sound, or nil for SoundNone.
func SoundFor(s core.Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case core.SoundJump:
		return newVolume(glide(330, 660, 120*time.Millisecond, WaveSquare, rate), 0.25)

	case core.SoundBurp:
		d := 280 * time.Millisecond
		return beep.Mix(
			newVolume(glide(95, 70, d, WaveSaw, rate), 0.45),
			newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 20*time.Millisecond, d/2, rate), 0.12),
		)

	case core.SoundScream:
		return newVolume(glide(950, 520, 420*time.Millisecond, WaveSaw, rate), 0.3)

	case core.SoundFall:
		return newVolume(glide(700, 110, 650*time.Millisecond, WaveSine, rate), 0.45)

	case core.SoundGameOver:
		return newVolume(beep.Seq(
			tone(392, 180*time.Millisecond, WaveSquare, rate),
			tone(330, 180*time.Millisecond, WaveSquare, rate),
			tone(262, 360*time.Millisecond, WaveSquare, rate),
		), 0.25)

	case core.SoundSuccess:
		return newVolume(beep.Seq(
			tone(987.77, 80*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 220*time.Millisecond, WaveSquare, rate),
		), 0.2)

	case core.SoundSpill:
		d := 220 * time.Millisecond
		return newVolume(NewLowPass(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 10*time.Millisecond, d/2, rate), 1800, rate), 0.4)

	default:
		return nil
	}
}
