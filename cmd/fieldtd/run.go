package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fieldtd/audio"
	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/config"
	"github.com/lixenwraith/fieldtd/engine"
	"github.com/lixenwraith/fieldtd/navigation"
	"github.com/lixenwraith/fieldtd/network"
	"github.com/lixenwraith/fieldtd/parameter"
	"github.com/lixenwraith/fieldtd/render"
	"github.com/lixenwraith/fieldtd/system"
)

// summary is printed when a run ends
type summary struct {
	Frames     int
	Score      float64
	Resources  float64
	Towers     int
	Recomputes int
	GameOver   bool
}

func (s summary) String() string {
	state := "stopped"
	if s.GameOver {
		state = "game over"
	}
	return fmt.Sprintf("%s after %d frames: score %.0f, resources %.0f, %d towers, %d field recomputes",
		state, s.Frames, s.Score, s.Resources, s.Towers, s.Recomputes)
}

// newWorld builds a world from cfg with its pre-placed towers and default systems
func newWorld(cfg *config.Config) (*engine.World, error) {
	w := engine.NewWorld(engine.Arena(cfg.Arena),
		engine.WithLogger(log.Default()),
		engine.WithSeed(cfg.Simulation.Seed),
		engine.WithResources(cfg.Simulation.StartingResources),
	)
	for i, t := range cfg.Towers {
		kind, err := component.ParseTowerKind(t.Kind)
		if err != nil {
			return nil, fmt.Errorf("towers[%d]: %w", i, err)
		}
		if _, err := w.BuildTower(kind, t.X, t.Y); err != nil {
			return nil, fmt.Errorf("towers[%d] at (%d,%d): %w", i, t.X, t.Y, err)
		}
	}
	system.RegisterDefaults(w, cfg.Simulation.WaveInterval)
	return w, nil
}

// run steps the world until the tick budget, game over or ctx cancellation
// A nil screen runs headless
func run(ctx context.Context, cfg *config.Config, screen tcell.Screen) (summary, error) {
	w, err := newWorld(cfg)
	if err != nil {
		return summary{}, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var feed chan engine.Snapshot
	if cfg.Network.Enabled {
		netCfg := network.DefaultConfig()
		netCfg.Address = cfg.Network.Address
		netCfg.SendQueueSize = cfg.Network.SendQueue
		hub := network.NewHub(netCfg, log.Default())
		srv := &http.Server{Addr: netCfg.Address, Handler: hub.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("[NET] serve %s: %v", netCfg.Address, err)
			}
		}()
		defer func() {
			hub.Close()
			shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
			defer done()
			srv.Shutdown(shutdownCtx)
		}()

		feed = make(chan engine.Snapshot, netCfg.SendQueueSize)
		defer close(feed)
		go hub.Feed(ctx, feed)
		log.Printf("[NET] serving snapshots on %s", netCfg.Address)
	}

	var recorder *audio.Recorder
	if cfg.Audio.CueFile != "" {
		// Unthrottled runs still render cues at the nominal rate
		recorder = audio.NewRecorder(audio.DefaultSampleRate, cmp.Or(cfg.Simulation.TickRate, parameter.TickRate))
	}
	var player *audio.Player
	if cfg.Audio.Live {
		player = audio.NewPlayer(audio.DefaultSampleRate)
		if err := player.Initialize(); err != nil {
			log.Printf("[AUDIO] live playback unavailable: %v", err)
			player = nil
		} else {
			defer player.Cleanup()
		}
	}

	var view *render.FieldView
	var keys chan rune
	if screen != nil {
		kind, _ := navigation.ParseFieldKind(cfg.Render.Field)
		view = render.NewFieldView(screen, kind, cfg.Render.CellPx)
		keys = make(chan rune, 8)
		go pollKeys(screen, keys)
	}

	var tick <-chan time.Time
	if cfg.Simulation.TickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.Simulation.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	ticks := cfg.Simulation.Ticks
loop:
	for !w.GameOver() && (ticks == 0 || w.Frame < ticks) {
		if tick != nil {
			select {
			case <-ctx.Done():
				break loop
			case <-tick:
			}
		} else if ctx.Err() != nil {
			break loop
		}

		for pending := true; pending; {
			select {
			case r := <-keys:
				switch r {
				case 'q', 0:
					break loop
				case 't':
					view.Toggle()
				}
			default:
				pending = false
			}
		}

		if err := w.Step(); err != nil {
			return summarize(w), err
		}
		if cfg.Log.Debug {
			if err := w.Store.Validate(); err != nil {
				return summarize(w), fmt.Errorf("frame %d: store: %w", w.Frame, err)
			}
		}
		snap := w.Snapshot()

		if feed != nil {
			select {
			case feed <- snap:
			default:
				log.Printf("[NET] feed full, frame %d dropped", snap.Frame)
			}
		}
		if recorder != nil {
			recorder.Record(snap)
		}
		if player != nil {
			player.Play(snap)
		}
		if view != nil {
			view.Draw(snap, w.Fields.Field(view.Kind()))
		}
	}

	if recorder != nil {
		if err := recorder.WriteFile(cfg.Audio.CueFile); err != nil {
			return summarize(w), err
		}
		log.Printf("[AUDIO] wrote %d cues over %d frames to %s", recorder.Cues(), recorder.Frames(), cfg.Audio.CueFile)
	}
	return summarize(w), nil
}

// pollKeys forwards key runes, Escape and Ctrl-C arrive as 0
func pollKeys(screen tcell.Screen, keys chan<- rune) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				sendKey(keys, 0)
			case tcell.KeyRune:
				sendKey(keys, ev.Rune())
			}
		}
	}
}

func sendKey(keys chan<- rune, r rune) {
	select {
	case keys <- r:
	default:
	}
}

func summarize(w *engine.World) summary {
	return summary{
		Frames:     w.Frame,
		Score:      w.Player.Score,
		Resources:  w.Player.Resources,
		Towers:     w.Store.Count(component.KindTower),
		Recomputes: w.Fields.Stats().Recomputes,
		GameOver:   w.GameOver(),
	}
}
