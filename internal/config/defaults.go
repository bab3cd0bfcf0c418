package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration. It matches defaults/snake.yaml.
func Default() Config {
	return Config{
		Board: BoardConfig{
			CanvasSize: 400,
			GridSize:   20,
		},
		Speed: SpeedConfig{
			Initial:   8,
			Min:       5,
			Max:       25,
			Presets:   []float64{5, 8, 12, 16, 20},
			RampEvery: 5,
			RampStep:  0.01,
		},
		Input: InputConfig{
			QueueLimit:     3,
			SwipeThreshold: 30,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Display: DisplayConfig{
			FPS:      60,
			ShowGrid: false,
		},
	}
}
