package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// loadConfig loads the YAML config and applies the difficulty and speed flags.
func loadConfig(difficulty config.DifficultyPreset) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	config.ApplyPreset(&cfg, difficulty)
	if flagSpeed > 0 {
		cfg.Speed.Initial = flagSpeed
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	return cfg, nil
}

// newLogger builds the process logger. Interactive hosts own the terminal,
// so they log nowhere unless --log-file is set.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the scores database. The game still runs without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// newAudio opens the speaker when audio is enabled. Any failure falls back
// to silence.
func newAudio(cfg config.Config, logger *log.Logger) (snake.Audio, func()) {
	if !cfg.Audio.Enabled {
		return audio.Nop{}, func() {}
	}
	sm := audio.NewSoundManager(cfg.Audio.Volume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable", "err", err)
		return audio.Nop{}, func() {}
	}
	return sm, sm.Cleanup
}

// newSession creates an idle session wired to the given ports.
func newSession(cfg config.Config, store *storage.Store, a snake.Audio, logger *log.Logger) *snake.Session {
	opts := []snake.Option{
		snake.WithAudio(a),
		snake.WithLogger(logger),
	}
	if store != nil {
		opts = append(opts, snake.WithStore(store))
	}
	if flagSeed != 0 {
		opts = append(opts, snake.WithSeed(flagSeed))
	}
	return snake.NewSession(cfg.Settings(), opts...)
}

// tuiOptions maps the config to terminal host options.
func tuiOptions(cfg config.Config) tui.Options {
	opts := tui.Options{
		FPS:            cfg.Display.FPS,
		CanvasSize:     float64(cfg.Board.CanvasSize),
		SwipeThreshold: cfg.Input.SwipeThreshold,
	}
	if flagMono {
		theme := tui.MonochromeTheme()
		opts.Theme = &theme
	}
	return opts
}

// runtimeConfig captures the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

func parseDifficulty() config.DifficultyPreset {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fatal("%v", err)
	}
	return preset
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
