package core

import (
	"fmt"
	"image/color"
)

// Color is a foreground color for a screen cell, stored as a "#rrggbb" hex string.
// The zero value keeps the terminal's default foreground.
type Color string

// ColorDefault leaves the cell in the terminal's default color.
const ColorDefault Color = ""

// Predefined colors used by HUD and overlays.
const (
	ColorGray  Color = "#8a8a8a"
	ColorWhite Color = "#f0f0f0"
	ColorCyan  Color = "#00fff0"
	ColorRed   Color = "#ff3d3d"
)

// ColorOf converts any image color to a hex Color. Alpha is dropped.
func ColorOf(c color.Color) Color {
	if c == nil {
		return ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
