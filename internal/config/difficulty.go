package config

import "fmt"

// DifficultyPreset represents a named starting speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyInsane DifficultyPreset = "insane"
	DifficultyFixed  DifficultyPreset = "fixed" // Keep the configured speed, no passive ramp
)

// Presets lists the accepted preset names in order of speed.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyInsane, DifficultyFixed}

// ParseDifficulty validates a preset name. The empty string means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard, insane or fixed)", name)
}

// ApplyPreset modifies the config based on a difficulty preset. Named
// presets pick an entry of speed.presets from the slow end, the middle
// and the fast end.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	presets := cfg.Speed.Presets
	if len(presets) == 0 {
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = presets[0]
	case DifficultyHard:
		cfg.Speed.Initial = presets[min(len(presets)-1, len(presets)/2+1)]
	case DifficultyInsane:
		cfg.Speed.Initial = presets[len(presets)-1]
	case DifficultyFixed:
		cfg.Speed.RampStep = 0
	}
}
