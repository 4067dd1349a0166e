package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/fieldtd/engine"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
// Noise is seeded from the frequency so cue renders are reproducible
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq) + 1)),
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
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
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
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a log2 volume, 0 or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// voice describes the synthesis of one cue type
type voice struct {
	freq     float64
	wave     WaveType
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	volume   float64
}

var voices = map[engine.CueType]voice{
	engine.CueTowerFire:     {freq: 660, wave: WaveSquare, duration: 40 * time.Millisecond, attack: 2 * time.Millisecond, release: 30 * time.Millisecond, volume: 0.25},
	engine.CueProjectileHit: {freq: 0, wave: WaveNoise, duration: 60 * time.Millisecond, attack: 1 * time.Millisecond, release: 50 * time.Millisecond, volume: 0.3},
	engine.CueMonsterDeath:  {freq: 220, wave: WaveSaw, duration: 150 * time.Millisecond, attack: 5 * time.Millisecond, release: 120 * time.Millisecond, volume: 0.4},
	engine.CueWave:          {freq: 440, wave: WaveSine, duration: 300 * time.Millisecond, attack: 20 * time.Millisecond, release: 200 * time.Millisecond, volume: 0.5},
	engine.CueGameOver:      {freq: 110, wave: WaveSaw, duration: 800 * time.Millisecond, attack: 10 * time.Millisecond, release: 600 * time.Millisecond, volume: 0.6},
}

// tower fire pitch per tower kind
var firePitch = map[string]float64{
	"basic":    660,
	"catapult": 330,
	"ice":      990,
	"laser":    1320,
}

// CueSound synthesizes the sound for one cue, nil for unknown cue types
func CueSound(c engine.Cue, rate beep.SampleRate, master float64) beep.Streamer {
	v, ok := voices[c.Type]
	if !ok {
		return nil
	}
	freq := v.freq
	if c.Type == engine.CueTowerFire {
		if p, ok := firePitch[c.Tower]; ok {
			freq = p
		}
	}
	osc := NewOscillator(freq, v.duration, v.wave, rate)
	shaped := NewEnvelope(osc, v.duration, v.attack, v.release, rate)
	return newVolume(shaped, v.volume*master)
}
