package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window with the full neon rendering:
glowing head, gradient body and radial food.

Keyboard controls match 'snake play'. Drag with the mouse or swipe on a
touch screen to steer.

Examples:
  snake window
  snake window --scale 2 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1.5, "Window size multiplier")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig(parseDifficulty())
	if err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sound, closeAudio := newAudio(cfg, logger)
	defer closeAudio()

	session := newSession(cfg, store, sound, logger)
	err = window.Run(session, window.Options{
		CanvasSize:     float64(cfg.Board.CanvasSize),
		SwipeThreshold: cfg.Input.SwipeThreshold,
		Scale:          flagScale,
	})
	if err != nil {
		fatal("%v", err)
	}
}
