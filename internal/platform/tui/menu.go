package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// MenuChoice is what the user picked in the start menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// menu rows, top to bottom
const (
	rowPlay = iota
	rowDifficulty
	rowScores
	rowQuit
	rowCount
)

// MenuKeyMap defines the start menu bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Select, k.Scores, k.Quit}
}

func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the start menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓", "down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←", "easier"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("←/→", "difficulty"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor     int
	difficulty int // index into config.Presets
	best       int
	width      int
	height     int
	config     core.RuntimeConfig
	keys       MenuKeyMap
	help       help.Model
	theme      Theme
	choice     MenuChoice
}

// NewMenuModel creates a start menu showing the given best score and
// preselecting the given difficulty.
func NewMenuModel(cfg core.RuntimeConfig, difficulty config.DifficultyPreset, best int, theme Theme) MenuModel {
	idx := 0
	for i, p := range config.Presets {
		if p == difficulty {
			idx = i
		}
	}
	if difficulty == "" {
		idx = 1 // normal
	}

	return MenuModel{
		cursor:     rowPlay,
		difficulty: idx,
		best:       best,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
		theme:      theme,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.choice = MenuScores
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < rowCount-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Prev):
		if m.cursor == rowDifficulty {
			m.difficulty = (m.difficulty + len(config.Presets) - 1) % len(config.Presets)
		}

	case key.Matches(msg, m.keys.Next):
		if m.cursor == rowDifficulty {
			m.difficulty = (m.difficulty + 1) % len(config.Presets)
		}

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case rowPlay:
			m.choice = MenuPlay
			return m, tea.Quit
		case rowDifficulty:
			m.difficulty = (m.difficulty + 1) % len(config.Presets)
		case rowScores:
			m.choice = MenuScores
			return m, tea.Quit
		case rowQuit:
			m.choice = MenuQuit
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuQuit {
		return ""
	}

	rows := []string{
		"Play",
		fmt.Sprintf("Difficulty: ‹ %s ›", m.Difficulty()),
		"Scores",
		"Quit",
	}

	var items []string
	for i, row := range rows {
		if i == m.cursor {
			items = append(items, m.theme.MenuItemActive.Render("> "+row))
		} else {
			items = append(items, m.theme.MenuItemNormal.Render("  "+row))
		}
	}

	var b strings.Builder
	b.WriteString(m.theme.MenuTitle.Render("S N A K E"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.MenuDescription.Render(fmt.Sprintf("Best: %d", m.best)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, items...))
	b.WriteString("\n\n")
	b.WriteString(m.theme.MenuDescription.Render(difficultyHint(m.Difficulty())))

	body := lipgloss.JoinVertical(lipgloss.Center, b.String(), "", m.help.View(m.keys))
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func difficultyHint(p config.DifficultyPreset) string {
	switch p {
	case config.DifficultyEasy:
		return "Slowest start"
	case config.DifficultyHard:
		return "Fast start"
	case config.DifficultyInsane:
		return "Fastest start"
	case config.DifficultyFixed:
		return "Configured speed, no ramp"
	default:
		return "Configured start speed"
	}
}

// Choice returns what the user picked, MenuNone while still choosing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the currently selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.difficulty]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
}

// RunMenu runs the start menu and returns the selection.
func RunMenu(cfg core.RuntimeConfig, difficulty config.DifficultyPreset, best int, theme Theme) (MenuResult, error) {
	model := NewMenuModel(cfg, difficulty, best, theme)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuQuit, Config: cfg, Difficulty: difficulty}, nil
	}

	result := MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}
	if result.Choice == MenuNone {
		result.Choice = MenuQuit
	}
	return result, nil
}
