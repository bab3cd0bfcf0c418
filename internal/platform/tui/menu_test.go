package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return nm, cmd
}

func TestMenuDefaults(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "", 12, DefaultTheme())

	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("Difficulty() = %q, want normal", m.Difficulty())
	}
	if m.Choice() != MenuNone {
		t.Errorf("Choice() = %v, want none", m.Choice())
	}
	if !strings.Contains(m.View(), "Best: 12") {
		t.Error("menu should show the best score")
	}
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyInsane, 0, DefaultTheme())

	// Left and right only act on the difficulty row.
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyInsane {
		t.Fatalf("right on Play changed difficulty to %q", m.Difficulty())
	}

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("Difficulty() = %q, want fixed", m.Difficulty())
	}
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("Difficulty() = %q, want wrap to easy", m.Difficulty())
	}
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("Difficulty() = %q, want wrap back to fixed", m.Difficulty())
	}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"play", []tea.KeyMsg{{Type: tea.KeyEnter}}, MenuPlay},
		{"scores row", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuScores},
		{"scores shortcut", []tea.KeyMsg{{Type: tea.KeyTab}}, MenuScores},
		{"quit row", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuQuit},
		{"quit key", []tea.KeyMsg{runes("q")}, MenuQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(core.DefaultConfig(), "", 0, DefaultTheme())
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = menuUpdate(t, m, k)
			}
			if m.Choice() != tt.want {
				t.Errorf("Choice() = %v, want %v", m.Choice(), tt.want)
			}
			if cmd == nil {
				t.Error("a final choice should quit the menu program")
			}
		})
	}
}

func TestMenuTracksResize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "", 0, DefaultTheme())

	m, _ = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
