package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme contains the visual styles around the board.
type Theme struct {
	// Board frame
	Border core.Color

	// HUD styles
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDHighlight lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControl   lipgloss.Style

	// Overlay colors, drawn into the board cells
	OverlayTitle core.Color
	OverlayText  core.Color
	OverlayBest  core.Color

	// Help line
	Help lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the neon theme matching the board palette.
func DefaultTheme() Theme {
	return Theme{
		Border: "#1f6f78",

		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00fff0")).Bold(true),
		HUDHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd93d")).Bold(true),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDControl:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),

		OverlayTitle: "#00fff0",
		OverlayText:  core.ColorWhite,
		OverlayBest:  "#ffd93d",

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#00fff0")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd93d")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Border = core.ColorGray
	theme.HUDValue = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.HUDHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.OverlayTitle = core.ColorWhite
	theme.OverlayBest = core.ColorWhite
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	return theme
}
