package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] > peak {
				peak = smp[0]
			}
			if -smp[0] > peak {
				peak = -smp[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream() = (%d, %v), want (100, true)", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewSweep(800, 200, 50*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if n != rate.N(50*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, n, rate.N(50*time.Millisecond))
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
	}
}

// TestEnvelopeStartsSilent verifies the attack ramps from zero
func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	shaped := NewEnvelope(NewOscillator(0, 100*time.Millisecond, WaveSquare, rate), 10*time.Millisecond, 5, rate)

	samples := make([][2]float64, 2)
	shaped.Stream(samples)
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}
}

// TestSoundEffects verifies every effect is finite and audible
func TestSoundEffects(t *testing.T) {
	for _, sound := range []SoundType{SoundMissile, SoundMissileHit, SoundShipHit, SoundGameOver, SoundVictory} {
		s := soundEffect(sound)
		if s == nil {
			t.Fatalf("sound %d has no effect", sound)
		}
		n, peak := drain(t, s)
		if n == 0 || n > sampleRate.N(2*time.Second) {
			t.Errorf("sound %d: %d samples", sound, n)
		}
		if peak == 0 || peak > 1.0 {
			t.Errorf("sound %d: peak %f", sound, peak)
		}
	}
	if soundEffect(SoundType(99)) != nil {
		t.Error("unknown sound should have no effect")
	}
}
