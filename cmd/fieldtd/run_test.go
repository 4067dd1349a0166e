package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/fieldtd/config"
	"github.com/lixenwraith/fieldtd/engine"
)

func TestRunHeadless(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Ticks = 60
	cfg.Simulation.TickRate = 0
	cfg.Towers = []config.Tower{{Kind: "basic", X: 100, Y: 100}}
	cfg.Audio.CueFile = filepath.Join(t.TempDir(), "cues.wav")

	sum, err := run(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if sum.Frames != 60 {
		t.Errorf("Expected 60 frames, got %d", sum.Frames)
	}
	if sum.Towers != 1 {
		t.Errorf("Expected 1 tower, got %d", sum.Towers)
	}
	// Initial relaxation plus the pre-placed tower
	if sum.Recomputes != 2 {
		t.Errorf("Expected 2 recomputes, got %d", sum.Recomputes)
	}
	if sum.GameOver {
		t.Error("Expected no game over within 60 frames")
	}

	info, err := os.Stat(cfg.Audio.CueFile)
	if err != nil {
		t.Fatalf("Expected cue file: %v", err)
	}
	if info.Size() <= 44 {
		t.Errorf("Expected WAV data beyond the header, got %d bytes", info.Size())
	}
}

func TestRunCancelled(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.TickRate = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := run(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if sum.Frames != 0 {
		t.Errorf("Expected no frames after cancellation, got %d", sum.Frames)
	}
	if !strings.HasPrefix(sum.String(), "stopped after 0 frames") {
		t.Errorf("Unexpected summary %q", sum)
	}
}

func TestNewWorldRejectsBadTower(t *testing.T) {
	cfg := config.Default()
	cfg.Towers = []config.Tower{{Kind: "basic", X: 2000, Y: 20}}

	_, err := newWorld(cfg)
	if !errors.Is(err, engine.ErrInvalidCoordinate) {
		t.Errorf("Expected ErrInvalidCoordinate, got %v", err)
	}

	cfg.Towers = []config.Tower{{Kind: "mortar", X: 100, Y: 100}}
	if _, err := newWorld(cfg); err == nil {
		t.Error("Expected error for unknown tower kind")
	}
}

func TestSummaryString(t *testing.T) {
	s := summary{Frames: 12, Score: 3, Resources: 190, Towers: 2, Recomputes: 3, GameOver: true}
	want := "game over after 12 frames: score 3, resources 190, 2 towers, 3 field recomputes"
	if s.String() != want {
		t.Errorf("Expected %q, got %q", want, s.String())
	}
}
