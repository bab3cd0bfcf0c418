package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with difficulty picker",
	Long: `Open the start menu. Pick a difficulty with Left/Right, then Play.
Tab opens the scoreboard. Quitting a game returns to the menu.`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := runtimeConfig()
	difficulty := parseDifficulty()
	theme := tui.DefaultTheme()
	if flagMono {
		theme = tui.MonochromeTheme()
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	for {
		result, err := tui.RunMenu(cfg, difficulty, bestScore(logger), theme)
		if err != nil {
			fatal("running menu: %v", err)
		}
		cfg = result.Config
		difficulty = result.Difficulty

		switch result.Choice {
		case tui.MenuPlay:
			if err := playTerminal(difficulty); err != nil {
				fatal("%v", err)
			}
		case tui.MenuScores:
			if err := showScoreboard(cfg.ScreenW, cfg.ScreenH); err != nil {
				fatal("%v", err)
			}
		default:
			return
		}
	}
}

// bestScore reads the stored high score for the menu header.
func bestScore(logger *log.Logger) int {
	store := openStore(logger)
	if store == nil {
		return 0
	}
	defer store.Close()
	best, err := store.HighScore()
	if err != nil {
		logger.Debug("could not read best score", "path", flagDBPath, "err", err)
	}
	return best
}
