package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/fieldtd/engine"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave WaveType
		freq float64
	}{
		{"sine", WaveSine, 440},
		{"square", WaveSquare, 220},
		{"saw", WaveSaw, 110},
		{"noise", WaveNoise, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(tt.freq, 50*time.Millisecond, tt.wave, rate)
			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Expected 100 samples, got %d (ok=%v)", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Errorf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("Sample %d differs between channels", i)
				}
				if tt.wave == WaveSquare && math.Abs(samples[i][0]) != 1 {
					t.Errorf("Square sample %d should be -1 or 1, got %f", i, samples[i][0])
				}
			}
		})
	}
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond

	osc := NewOscillator(440.0, duration, WaveSine, rate)
	if got := len(drain(osc)); got != rate.N(duration) {
		t.Errorf("Expected %d samples, got %d", rate.N(duration), got)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if ok || n != 0 {
		t.Errorf("Expected drained oscillator, got n=%d ok=%v", n, ok)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	duration := 100 * time.Millisecond

	osc := NewOscillator(0, duration, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, duration, 20*time.Millisecond, 20*time.Millisecond, rate)
	samples := drain(env)

	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[10][0] != 0.5 {
		t.Errorf("Expected half volume mid-attack, got %f", samples[10][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full volume in sustain, got %f", samples[50][0])
	}
	if samples[90][0] != 0.5 {
		t.Errorf("Expected half volume mid-release, got %f", samples[90][0])
	}
}

func TestCueSound(t *testing.T) {
	rate := beep.SampleRate(8000)

	if s := CueSound(engine.Cue{Type: "unknown"}, rate, 1); s != nil {
		t.Error("Expected nil sound for an unknown cue")
	}

	fire := drain(CueSound(engine.Cue{Type: engine.CueTowerFire, Tower: "laser"}, rate, 1))
	if len(fire) != rate.N(40*time.Millisecond) {
		t.Errorf("Expected %d fire samples, got %d", rate.N(40*time.Millisecond), len(fire))
	}

	muted := drain(CueSound(engine.Cue{Type: engine.CueWave}, rate, 0))
	for i, s := range muted {
		if s[0] != 0 {
			t.Fatalf("Expected silence at master volume 0, sample %d is %f", i, s[0])
		}
	}
}
