package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"

	"github.com/lixenwraith/fieldtd/config"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file")
	viewFlag    = flag.Bool("view", false, "Draw the field viewer in the terminal")
	fieldFlag   = flag.String("field", "", "Field shown by the viewer: distance or threat")
	profileFlag = flag.String("profile", "", "Write a profile: cpu or mem")
	ticksFlag   = flag.Int("ticks", -1, "Frames to simulate, 0 runs until game over")
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 keeps the configured seed")
	debugFlag   = flag.Bool("debug", false, "Write a debug log")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir); logFile != nil {
		defer logFile.Close()
	}

	switch *profileFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q\n", *profileFlag)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var screen tcell.Screen
	if cfg.Render.Enabled {
		screen, err = tcell.NewScreen()
		if err == nil {
			err = screen.Init()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
			os.Exit(1)
		}
	}

	sum, err := run(ctx, cfg, screen)
	if screen != nil {
		screen.Fini()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fieldtd: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(sum)
}

// applyFlags overrides configuration with explicitly set flags
func applyFlags(cfg *config.Config) {
	if *viewFlag {
		cfg.Render.Enabled = true
	}
	if *fieldFlag != "" {
		cfg.Render.Field = *fieldFlag
	}
	if *ticksFlag >= 0 {
		cfg.Simulation.Ticks = *ticksFlag
	}
	if *seedFlag != 0 {
		cfg.Simulation.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
}
