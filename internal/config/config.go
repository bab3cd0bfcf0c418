// Package config provides YAML-based configuration loading and the
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Config contains all configuration for the snake game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the canvas geometry.
type BoardConfig struct {
	CanvasSize int `yaml:"canvas_size"`
	GridSize   int `yaml:"grid_size"`
}

// TileCount is the number of cells along each side of the board.
func (b BoardConfig) TileCount() int {
	if b.GridSize <= 0 {
		return 0
	}
	return b.CanvasSize / b.GridSize
}

// SpeedConfig defines speed limits, presets and the passive ramp.
type SpeedConfig struct {
	Initial   float64   `yaml:"initial"`
	Min       float64   `yaml:"min"`
	Max       float64   `yaml:"max"`
	Presets   []float64 `yaml:"presets"`
	RampEvery int       `yaml:"ramp_every"`
	RampStep  float64   `yaml:"ramp_step"`
}

// InputConfig defines input handling parameters.
type InputConfig struct {
	QueueLimit     int     `yaml:"queue_limit"`
	SwipeThreshold float64 `yaml:"swipe_threshold"`
}

// AudioConfig defines sound cue playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// DisplayConfig defines presentation parameters.
type DisplayConfig struct {
	FPS      int  `yaml:"fps"`
	ShowGrid bool `yaml:"show_grid"`
}

// Validate reports every inconsistency in the configuration at once.
func (c Config) Validate() error {
	var errs []error

	b := c.Board
	switch {
	case b.CanvasSize <= 0 || b.GridSize <= 0:
		errs = append(errs, fmt.Errorf("board: canvas_size and grid_size must be positive"))
	case b.CanvasSize%b.GridSize != 0:
		errs = append(errs, fmt.Errorf("board: canvas_size %d is not a multiple of grid_size %d", b.CanvasSize, b.GridSize))
	case b.TileCount() < 4:
		errs = append(errs, fmt.Errorf("board: %d tiles per side is too small to play", b.TileCount()))
	}

	s := c.Speed
	if s.Min <= 0 || s.Max < s.Min {
		errs = append(errs, fmt.Errorf("speed: need 0 < min <= max, got min %v max %v", s.Min, s.Max))
	} else {
		if s.Initial < s.Min || s.Initial > s.Max {
			errs = append(errs, fmt.Errorf("speed: initial %v outside [%v, %v]", s.Initial, s.Min, s.Max))
		}
		if len(s.Presets) == 0 {
			errs = append(errs, errors.New("speed: presets must not be empty"))
		}
		for i, p := range s.Presets {
			if p < s.Min || p > s.Max {
				errs = append(errs, fmt.Errorf("speed: preset %v outside [%v, %v]", p, s.Min, s.Max))
			}
			if i > 0 && p <= s.Presets[i-1] {
				errs = append(errs, fmt.Errorf("speed: presets must be strictly increasing"))
				break
			}
		}
	}
	if s.RampEvery <= 0 {
		errs = append(errs, fmt.Errorf("speed: ramp_every must be positive, got %d", s.RampEvery))
	}
	if s.RampStep < 0 {
		errs = append(errs, fmt.Errorf("speed: ramp_step must not be negative"))
	}

	if c.Input.QueueLimit <= 0 {
		errs = append(errs, fmt.Errorf("input: queue_limit must be positive, got %d", c.Input.QueueLimit))
	}
	if c.Input.SwipeThreshold <= 0 {
		errs = append(errs, fmt.Errorf("input: swipe_threshold must be positive"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio: volume %v outside [0, 1]", c.Audio.Volume))
	}
	if c.Display.FPS <= 0 || c.Display.FPS > 240 {
		errs = append(errs, fmt.Errorf("display: fps %d outside (0, 240]", c.Display.FPS))
	}

	return errors.Join(errs...)
}

// Settings converts the configuration into session tunables.
func (c Config) Settings() snake.Settings {
	return snake.Settings{
		TileCount:    c.Board.TileCount(),
		InitialSpeed: c.Speed.Initial,
		MinSpeed:     c.Speed.Min,
		MaxSpeed:     c.Speed.Max,
		SpeedPresets: append([]float64(nil), c.Speed.Presets...),
		RampEvery:    c.Speed.RampEvery,
		RampStep:     c.Speed.RampStep,
		QueueLimit:   c.Input.QueueLimit,
		ShowGrid:     c.Display.ShowGrid,
	}
}
