package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/parameter"
)

// Arena mirrors engine.Arena so the engine does not depend on the file format
type Arena struct {
	Width      int `toml:"width"`
	Height     int `toml:"height"`
	GridWidth  int `toml:"grid_width"`
	GridHeight int `toml:"grid_height"`
	StartX     int `toml:"start_x"`
	StartY     int `toml:"start_y"`
	EndX       int `toml:"end_x"`
	EndY       int `toml:"end_y"`
}

// Simulation controls pacing and determinism
type Simulation struct {
	Seed              int64   `toml:"seed"`
	Ticks             int     `toml:"ticks"`     // 0 runs until game over
	TickRate          int     `toml:"tick_rate"` // Frames per second, 0 runs unthrottled
	WaveInterval      int     `toml:"wave_interval"`
	StartingResources float64 `toml:"starting_resources"`
}

// Tower is one pre-placed tower
type Tower struct {
	Kind string `toml:"kind"`
	X    int    `toml:"x"`
	Y    int    `toml:"y"`
}

// Network configures the snapshot feed
type Network struct {
	Enabled   bool   `toml:"enabled"`
	Address   string `toml:"address"`
	SendQueue int    `toml:"send_queue"`
}

// Audio configures cue synthesis
type Audio struct {
	CueFile string `toml:"cue_file"` // WAV output path, empty disables recording
	Live    bool   `toml:"live"`
}

// Render configures the terminal field viewer
type Render struct {
	Enabled bool   `toml:"enabled"`
	Field   string `toml:"field"`   // "distance" or "threat"
	CellPx  int    `toml:"cell_px"` // Arena pixels per terminal cell
}

// Log configures file logging
type Log struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Config is the full runtime configuration
type Config struct {
	Arena      Arena      `toml:"arena"`
	Simulation Simulation `toml:"simulation"`
	Towers     []Tower    `toml:"towers"`
	Network    Network    `toml:"network"`
	Audio      Audio      `toml:"audio"`
	Render     Render     `toml:"render"`
	Log        Log        `toml:"log"`
}

// Default returns the configuration described by the parameter package
func Default() *Config {
	return &Config{
		Arena: Arena{
			Width:      parameter.ArenaWidth,
			Height:     parameter.ArenaHeight,
			GridWidth:  parameter.GridWidth,
			GridHeight: parameter.GridHeight,
			StartX:     parameter.StartX,
			StartY:     parameter.StartY,
			EndX:       parameter.EndX,
			EndY:       parameter.EndY,
		},
		Simulation: Simulation{
			Seed:              1,
			TickRate:          parameter.TickRate,
			WaveInterval:      parameter.WaveInterval,
			StartingResources: parameter.StartingResources,
		},
		Network: Network{
			Address:   ":7777",
			SendQueue: 16,
		},
		Render: Render{
			Field:  "distance",
			CellPx: 10,
		},
		Log: Log{
			Dir: "logs",
		},
	}
}

// Load decodes path over the defaults and validates the result, an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validate %s", path)
	}
	return cfg, nil
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	a := c.Arena
	switch {
	case a.Width <= 0 || a.Height <= 0:
		return errors.Errorf("arena size %dx%d must be positive", a.Width, a.Height)
	case a.GridWidth <= 0 || a.GridHeight <= 0:
		return errors.Errorf("grid size %dx%d must be positive", a.GridWidth, a.GridHeight)
	case !inArena(a, a.StartX, a.StartY):
		return errors.Errorf("start (%d,%d) outside arena", a.StartX, a.StartY)
	case !inArena(a, a.EndX, a.EndY):
		return errors.Errorf("end (%d,%d) outside arena", a.EndX, a.EndY)
	}

	s := c.Simulation
	switch {
	case s.Ticks < 0:
		return errors.Errorf("ticks %d must not be negative", s.Ticks)
	case s.TickRate < 0:
		return errors.Errorf("tick_rate %d must not be negative", s.TickRate)
	case s.WaveInterval <= 0:
		return errors.Errorf("wave_interval %d must be positive", s.WaveInterval)
	case s.StartingResources < 0:
		return errors.Errorf("starting_resources %v must not be negative", s.StartingResources)
	}

	for i, t := range c.Towers {
		if _, err := component.ParseTowerKind(t.Kind); err != nil {
			return errors.Wrapf(err, "towers[%d]", i)
		}
		if !inArena(a, t.X, t.Y) {
			return errors.Errorf("towers[%d] at (%d,%d) outside arena", i, t.X, t.Y)
		}
	}

	if c.Network.Enabled && c.Network.Address == "" {
		return errors.New("network enabled without address")
	}
	if c.Network.SendQueue <= 0 {
		return errors.Errorf("send_queue %d must be positive", c.Network.SendQueue)
	}
	if c.Render.Field != "distance" && c.Render.Field != "threat" {
		return errors.Errorf("render field %q must be distance or threat", c.Render.Field)
	}
	if c.Render.CellPx <= 0 {
		return errors.Errorf("cell_px %d must be positive", c.Render.CellPx)
	}
	return nil
}

func inArena(a Arena, x, y int) bool {
	return x >= 0 && y >= 0 && x <= a.Width && y <= a.Height
}
