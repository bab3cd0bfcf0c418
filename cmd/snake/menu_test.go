package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func withDBPath(t *testing.T, path string) {
	t.Helper()
	prev := flagDBPath
	flagDBPath = path
	t.Cleanup(func() { flagDBPath = prev })
}

func TestBestScoreReadsStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetHighScore(42); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	store.Close()

	withDBPath(t, path)
	var out bytes.Buffer
	logger := log.NewWithOptions(&out, log.Options{Level: log.DebugLevel})

	if got := bestScore(logger); got != 42 {
		t.Errorf("bestScore() = %d, expected 42", got)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected log output: %q", out.String())
	}
}

func TestBestScoreLogsUnavailableStore(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	withDBPath(t, filepath.Join(blocker, "sub", "scores.db"))

	var out bytes.Buffer
	logger := log.NewWithOptions(&out, log.Options{Level: log.DebugLevel})

	if got := bestScore(logger); got != 0 {
		t.Errorf("bestScore() = %d, expected 0", got)
	}
	if !strings.Contains(out.String(), "scores database unavailable") {
		t.Errorf("expected the open failure to be logged, got %q", out.String())
	}
}
