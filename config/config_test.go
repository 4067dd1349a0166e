package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fieldtd.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Arena.Width != 480 || cfg.Arena.EndX != 460 || cfg.Simulation.WaveInterval != 50 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[arena]
width = 240
height = 200
grid_width = 20
grid_height = 20
start_x = 10
start_y = 10
end_x = 230
end_y = 10

[simulation]
seed = 7
ticks = 500

[[towers]]
kind = "catapult"
x = 100
y = 100

[[towers]]
kind = "Ice"
x = 60
y = 20

[render]
field = "threat"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Arena.Width != 240 || cfg.Arena.GridWidth != 20 || cfg.Arena.EndX != 230 {
		t.Errorf("Arena not decoded: %+v", cfg.Arena)
	}
	if cfg.Simulation.Seed != 7 || cfg.Simulation.Ticks != 500 {
		t.Errorf("Simulation not decoded: %+v", cfg.Simulation)
	}
	// Unset keys keep their defaults
	if cfg.Simulation.WaveInterval != 50 || cfg.Simulation.StartingResources != 200 {
		t.Errorf("Defaults lost: %+v", cfg.Simulation)
	}
	if len(cfg.Towers) != 2 || cfg.Towers[1].Kind != "Ice" {
		t.Errorf("Towers not decoded: %+v", cfg.Towers)
	}
	if cfg.Render.Field != "threat" || cfg.Render.CellPx != 10 {
		t.Errorf("Render not decoded: %+v", cfg.Render)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[arena\nwidth = 1", "decode"},
		{"unknown key", "[arena]\ncolour = 3", "unknown key"},
		{"negative size", "[arena]\nwidth = -1", "arena size"},
		{"end outside", "[arena]\nend_x = 900", "end (900,20)"},
		{"bad tower", "[[towers]]\nkind = \"mortar\"\nx = 1\ny = 1", "towers[0]"},
		{"tower outside", "[[towers]]\nkind = \"basic\"\nx = 1\ny = 999", "outside arena"},
		{"wave interval", "[simulation]\nwave_interval = 0", "wave_interval"},
		{"render field", "[render]\nfield = \"heat\"", "render field"},
		{"network address", "[network]\nenabled = true\naddress = \"\"", "without address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
