package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded yaml = %+v\nexpected %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "speed:\n  initial: 12\ndisplay:\n  show_grid: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speed.Initial != 12 || !cfg.Display.ShowGrid {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Board.TileCount() != 20 || cfg.Speed.Max != 25 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestLoadInvalidCustomPath(t *testing.T) {
	path := writeConfig(t, "board:\n  canvas_size: 410\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "not a multiple") {
		t.Errorf("expected validation error, got %v", err)
	}

	path = writeConfig(t, "speed: [not, a, map]\n")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero grid", func(c *Config) { c.Board.GridSize = 0 }, "must be positive"},
		{"tiny board", func(c *Config) { c.Board.CanvasSize = 60 }, "too small"},
		{"min above max", func(c *Config) { c.Speed.Min = 30 }, "min <= max"},
		{"initial out of range", func(c *Config) { c.Speed.Initial = 40 }, "initial 40"},
		{"empty presets", func(c *Config) { c.Speed.Presets = nil }, "must not be empty"},
		{"unsorted presets", func(c *Config) { c.Speed.Presets = []float64{8, 5} }, "strictly increasing"},
		{"preset out of range", func(c *Config) { c.Speed.Presets = []float64{5, 30} }, "preset 30"},
		{"ramp every", func(c *Config) { c.Speed.RampEvery = 0 }, "ramp_every"},
		{"queue", func(c *Config) { c.Input.QueueLimit = 0 }, "queue_limit"},
		{"volume", func(c *Config) { c.Audio.Volume = 2 }, "volume"},
		{"fps", func(c *Config) { c.Display.FPS = 0 }, "fps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tt.want)
			}
		})
	}
}

func TestSettings(t *testing.T) {
	cfg := Default()
	cfg.Board.GridSize = 25
	s := cfg.Settings()

	if s.TileCount != 16 || s.InitialSpeed != 8 || s.QueueLimit != 3 || s.RampStep != 0.01 {
		t.Errorf("Settings() = %+v", s)
	}
	s.SpeedPresets[0] = 99
	if cfg.Speed.Presets[0] != 5 {
		t.Error("Settings() should copy the presets")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		initial  float64
		rampStep float64
	}{
		{DifficultyEasy, 5, 0.01},
		{DifficultyNormal, 8, 0.01},
		{DifficultyHard, 16, 0.01},
		{DifficultyInsane, 20, 0.01},
		{DifficultyFixed, 8, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Speed.Initial != tt.initial || cfg.Speed.RampStep != tt.rampStep {
				t.Errorf("initial=%v ramp=%v, expected %v and %v", cfg.Speed.Initial, cfg.Speed.RampStep, tt.initial, tt.rampStep)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, err := ParseDifficulty(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParseDifficulty(\"\") = %v, %v", p, err)
	}
	if p, err := ParseDifficulty("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficulty(hard) = %v, %v", p, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}
