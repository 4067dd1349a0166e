package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fieldtd/engine"
)

// Player plays snapshot cues live through the system speaker
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	master      float64
	initialized bool
}

// NewPlayer creates a player, Initialize must succeed before cues are audible
func NewPlayer(rate beep.SampleRate) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   rate,
		master: 1.0,
	}
}

// Initialize opens the speaker with a 100ms buffer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cues of one snapshot
func (p *Player) Play(snap engine.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || len(snap.Cues) == 0 {
		return
	}
	speaker.Lock()
	for _, c := range snap.Cues {
		if s := CueSound(c, p.rate, p.master); s != nil {
			p.mixer.Add(s)
		}
	}
	speaker.Unlock()
}

// Cleanup silences pending sounds
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
