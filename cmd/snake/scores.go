package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and game history",
	Long: `Display the best score, the top games and overall stats.

In a terminal this opens an interactive table (Tab switches between top
and recent games). When output is piped, or with --plain, it prints a
plain listing instead.

Examples:
  snake scores
  snake scores --plain --limit 5
  snake scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to list")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print instead of opening the interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete the best score and all history")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagScoresReset {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fatal("opening scores database: %v", err)
		}
		defer store.Close()
		if err := store.Reset(); err != nil {
			fatal("resetting scores: %v", err)
		}
		fmt.Println("Scores reset.")
		return
	}

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		if err := showScoreboard(cfg.ScreenW, cfg.ScreenH); err != nil {
			fatal("%v", err)
		}
		return
	}

	if err := printScores(); err != nil {
		fatal("%v", err)
	}
}

// showScoreboard opens the interactive scoreboard.
func showScoreboard(width, height int) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()
	return tui.RunScoreboard(store, width, height)
}

func printScores() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	games, err := store.TopGames(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving games: %w", err)
	}
	best, err := store.HighScore()
	if err != nil {
		return fmt.Errorf("retrieving best score: %w", err)
	}

	fmt.Println("Snake - Top Games")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Length", "Speed", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "------", "-----", "----", "----")

	for i, g := range games {
		fmt.Printf("  %-4d  %-6d  %-6d  %-6.2f  %-8s  %s\n",
			i+1, g.Score, g.Length, g.Speed, g.Duration.Round(time.Second), g.EndedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)

	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Games: %d  Average: %.1f  Longest snake: %d  Played: %s\n",
			stats.Games, stats.AvgScore, stats.LongestSnake, stats.TotalTime.Round(time.Second))
	}
	return nil
}
