// snake is a neon snake game for the terminal, a desktop window and SSH.
//
// Usage:
//
//	snake play      - Play in the terminal
//	snake menu      - Start menu with difficulty picker and scores
//	snake window    - Play in a desktop window
//	snake serve     - Start SSH server for remote play
//	snake scores    - Show game history and best score
//
// Global flags:
//
//	--fps <rate>          - Display refresh rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible food placement
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Custom YAML config
//	--difficulty <preset> - easy, normal, hard, insane or fixed
//	--speed <value>       - Starting speed in ticks per second
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSpeed      float64
	flagLogLevel   string
	flagLogFile    string
	flagMono       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game on a wrapping neon grid",
	Long: `Snake on a square board whose edges wrap around. Eat food to grow:
red food is worth 1 point, gold food 3 points, and cyan food 1 point
plus a permanent speed boost. Running into yourself ends the game.

Available commands:
  play     - Play directly in the terminal
  menu     - Start menu with difficulty picker and scores
  window   - Play in a desktop window (mouse and touch swipes work)
  serve    - Start SSH server for remote play
  scores   - View game history and the best score

Examples:
  snake play
  snake play --difficulty hard
  snake window --scale 2
  snake serve --ssh :2222
  snake scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Display refresh rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, insane, fixed")
	rootCmd.PersistentFlags().Float64Var(&flagSpeed, "speed", 0, "Starting speed in ticks per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Grayscale terminal theme")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
