// pkg/audio/effects.go
package audio

import (
	"math"
	"math/rand/v2"
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

// oscillator generates a fixed-length wave whose frequency slides linearly
// from freq to endFreq.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq.
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential decay.
type envelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	decayRate     float64
	rate          beep.SampleRate
}

// NewEnvelope shapes s with a linear attack and a decay of decay per second.
func NewEnvelope(s beep.Streamer, attack time.Duration, decay float64, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:      s,
		attackSamples: rate.N(attack),
		decayRate:     decay,
		rate:          rate,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := math.Exp(-e.decayRate * float64(e.position) / float64(e.rate))
		if e.position < e.attackSamples {
			vol *= float64(e.position) / float64(e.attackSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withGain scales s by amp, a linear factor in (0, 1].
func withGain(s beep.Streamer, amp float64) beep.Streamer {
	if amp <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(amp)}
}

// Sound effect generators

// CreateMissileSound is a short falling zap.
func CreateMissileSound(rate beep.SampleRate) beep.Streamer {
	zap := NewSweep(1400, 400, 120*time.Millisecond, WaveSquare, rate)
	return withGain(NewEnvelope(zap, 5*time.Millisecond, 12, rate), 0.25)
}

// CreateMissileHitSound is a burst of noise over a low thump.
func CreateMissileHitSound(rate beep.SampleRate) beep.Streamer {
	const d = 350 * time.Millisecond
	burst := beep.Mix(
		withGain(NewOscillator(0, d, WaveNoise, rate), 0.6),
		withGain(NewSweep(120, 40, d, WaveSine, rate), 0.4),
	)
	return withGain(NewEnvelope(burst, 2*time.Millisecond, 9, rate), 0.5)
}

// CreateShipHitSound is a harsh low buzz.
func CreateShipHitSound(rate beep.SampleRate) beep.Streamer {
	buzz := NewSweep(180, 60, 450*time.Millisecond, WaveSaw, rate)
	return withGain(NewEnvelope(buzz, 5*time.Millisecond, 5, rate), 0.5)
}

// CreateGameOverSound plays three falling notes.
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		return NewEnvelope(NewOscillator(freq, 300*time.Millisecond, WaveSquare, rate), 10*time.Millisecond, 4, rate)
	}
	return withGain(beep.Seq(note(392), note(330), note(262)), 0.3)
}

// CreateVictorySound plays three rising notes.
func CreateVictorySound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		return NewEnvelope(NewOscillator(freq, 200*time.Millisecond, WaveSine, rate), 10*time.Millisecond, 3, rate)
	}
	return withGain(beep.Seq(note(523.25), note(659.25), note(783.99)), 0.4)
}
