package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Steer (mouse drags on the board work too)
  Enter/Space  - Start a game
  P/Esc        - Pause / resume
  R            - Restart after game over
  G            - Show / hide grid
  +/-          - Change speed
  ?            - More keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at the slowest preset speed
  normal - Start at the configured speed
  hard   - Start at a fast preset speed
  insane - Start at the fastest preset speed
  fixed  - Configured speed, no passive speed ramp

Examples:
  snake play
  snake play --difficulty easy
  snake play --speed 12 --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playTerminal(parseDifficulty()); err != nil {
		fatal("%v", err)
	}
}

// playTerminal runs one terminal game session until the user quits.
func playTerminal(difficulty config.DifficultyPreset) error {
	cfg, err := loadConfig(difficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sound, closeAudio := newAudio(cfg, logger)
	defer closeAudio()

	session := newSession(cfg, store, sound, logger)
	return tui.Run(session, tuiOptions(cfg))
}
