package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a finite wave, optionally gliding in pitch.
type oscillator struct {
	freq     float64
	glide    float64 // Hz per sample
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to
// another over its duration.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	glide := 0.0
	if samples > 0 {
		glide = (to - from) / float64(samples)
	}
	return &oscillator{
		freq:     from,
		glide:    glide,
		duration: samples,
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(samples) + int64(from))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveAt(o.wave, o.phase, o.rng)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.glide
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func waveAt(w WaveType, phase float64, rng *rand.Rand) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s in a linear attack/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain.
// math.Log2(0) is -Inf, so zero volume is rendered silent.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// setGain updates an existing volume effect to a linear gain.
func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(gain)
}

// LowPass is a one-pole low-pass filter with an adjustable cutoff.
type LowPass struct {
	Streamer beep.Streamer
	rate     beep.SampleRate
	alpha    float64
	state    [2]float64
}

// NewLowPass creates a filter on s with the given cutoff.
func NewLowPass(s beep.Streamer, cutoffHz float64, rate beep.SampleRate) *LowPass {
	lp := &LowPass{Streamer: s, rate: rate}
	lp.SetCutoff(cutoffHz)
	return lp
}

// SetCutoff moves the cutoff. Values at or above Nyquist open the filter.
func (lp *LowPass) SetCutoff(hz float64) {
	nyquist := float64(lp.rate) / 2
	switch {
	case hz <= 0:
		lp.alpha = 0
	case hz >= nyquist:
		lp.alpha = 1
	default:
		lp.alpha = 1 - math.Exp(-2*math.Pi*hz/float64(lp.rate))
	}
}

func (lp *LowPass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = lp.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			lp.state[c] += lp.alpha * (samples[i][c] - lp.state[c])
			samples[i][c] = lp.state[c]
		}
	}
	return n, ok
}

func (lp *LowPass) Err() error { return lp.Streamer.Err() }

// Detune returns freq shifted by the given number of cents.
func Detune(freq, cents float64) float64 {
	return freq * math.Pow(2, cents/1200)
}

// Drone is an endless detunable bass loop used as background music.
// It walks a short bar-room progression, one root per beat.
type Drone struct {
	rate   beep.SampleRate
	roots  []float64
	beat   int
	pos    int
	phases [3]float64
	cents  float64
}

// NewDrone creates the background loop.
func NewDrone(rate beep.SampleRate) *Drone {
	return &Drone{
		rate:  rate,
		roots: []float64{110, 110, 146.83, 130.81},
		beat:  rate.N(600 * time.Millisecond),
	}
}

// SetDetune sets the pitch offset in cents.
func (d *Drone) SetDetune(cents float64) {
	d.cents = cents
}

func (d *Drone) Stream(samples [][2]float64) (n int, ok bool) {
	ratios := [3]float64{1, 1.5, 2}
	gains := [3]float64{0.22, 0.1, 0.06}
	for i := range samples {
		step := (d.pos / d.beat) % len(d.roots)
		inBeat := float64(d.pos%d.beat) / float64(d.beat)
		pluck := math.Exp(-inBeat * 3)
		root := Detune(d.roots[step], d.cents)

		var val float64
		for v := range ratios {
			val += waveAt(WaveSine, d.phases[v], nil) * gains[v]
			d.phases[v] += root * ratios[v] / float64(d.rate)
			d.phases[v] -= math.Floor(d.phases[v])
		}
		val *= 0.4 + 0.6*pluck

		samples[i][0] = val
		samples[i][1] = val
		d.pos++
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }
