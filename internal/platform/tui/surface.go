package tui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// Glyphs used on the text board.
const (
	glyphSegment   = '█'
	glyphFoodLeft  = '◖'
	glyphFoodRight = '◗'
	glyphGrid      = '·'
)

// ScreenSurface is a render.Surface over a region of a core.Screen.
// Every tile is two characters wide and one row tall, which keeps tiles
// roughly square on common terminal fonts.
type ScreenSurface struct {
	screen *core.Screen
	origin core.Rect
	size   float64
	colW   float64 // Pixels per character column
	rowH   float64 // Pixels per row
}

var _ render.Surface = (*ScreenSurface)(nil)

// NewScreenSurface maps a size x size pixel canvas of tiles x tiles cells
// onto screen, with its top-left tile at (x, y).
func NewScreenSurface(screen *core.Screen, x, y int, size float64, tiles int) *ScreenSurface {
	tiles = max(tiles, 1)
	return &ScreenSurface{
		screen: screen,
		origin: core.NewRect(x, y, tiles*2, tiles),
		size:   size,
		colW:   size / float64(tiles*2),
		rowH:   size / float64(tiles),
	}
}

// Bounds returns the screen region covered by the board.
func (s *ScreenSurface) Bounds() core.Rect { return s.origin }

func (s *ScreenSurface) Size() float64 { return s.size }

func (s *ScreenSurface) Clear() {
	s.screen.DrawRect(s.origin, ' ')
}

// SetShadow is a no-op: text cells have no glow.
func (s *ScreenSurface) SetShadow(color.Color, float64) {}

// FillRoundedRect fills every character whose center lies inside the rectangle.
// Corners are too small to show at this resolution.
func (s *ScreenSurface) FillRoundedRect(x, y, w, h, _ float64, fill color.Color) {
	c := core.ColorOf(fill)
	s.eachCell(x, y, x+w, y+h, func(col, row int, cx, cy float64) {
		s.set(col, row, glyphSegment, c)
	})
}

// StrokeLine draws vertical lines as dotted columns. Horizontal grid lines
// fall between text rows and are skipped.
func (s *ScreenSurface) StrokeLine(x1, y1, x2, y2, _ float64, c color.Color) {
	if x1 != x2 {
		return
	}
	col := int(math.Floor(x1 / s.colW))
	top := int(math.Floor(math.Min(y1, y2) / s.rowH))
	bottom := int(math.Ceil(math.Max(y1, y2) / s.rowH))
	fg := core.ColorOf(c)
	for row := top; row < bottom; row++ {
		if s.blank(col, row) {
			s.set(col, row, glyphGrid, fg)
		}
	}
}

// FillRadialCircle draws the covered characters as the two halves of a dot.
// A circle smaller than one character still marks the character at its center.
func (s *ScreenSurface) FillRadialCircle(cx, cy, r float64, inner, _ color.Color) {
	c := core.ColorOf(inner)
	drawn := false
	s.eachCell(cx-r, cy-r, cx+r, cy+r, func(col, row int, px, py float64) {
		if math.Hypot(px-cx, py-cy) > r {
			return
		}
		glyph := glyphFoodRight
		if px < cx {
			glyph = glyphFoodLeft
		}
		s.set(col, row, glyph, c)
		drawn = true
	})
	if !drawn {
		s.set(int(math.Floor(cx/s.colW)), int(math.Floor(cy/s.rowH)), glyphFoodLeft, c)
	}
}

// eachCell visits the characters whose centers fall in [x0, x1) x [y0, y1).
func (s *ScreenSurface) eachCell(x0, y0, x1, y1 float64, fn func(col, row int, cx, cy float64)) {
	for col := int(math.Floor(x0 / s.colW)); float64(col)*s.colW < x1; col++ {
		cx := (float64(col) + 0.5) * s.colW
		if cx < x0 || cx >= x1 {
			continue
		}
		for row := int(math.Floor(y0 / s.rowH)); float64(row)*s.rowH < y1; row++ {
			cy := (float64(row) + 0.5) * s.rowH
			if cy < y0 || cy >= y1 {
				continue
			}
			fn(col, row, cx, cy)
		}
	}
}

func (s *ScreenSurface) inside(col, row int) bool {
	return s.origin.Contains(s.origin.X+col, s.origin.Y+row)
}

func (s *ScreenSurface) blank(col, row int) bool {
	return s.inside(col, row) && s.screen.Get(s.origin.X+col, s.origin.Y+row) == ' '
}

func (s *ScreenSurface) set(col, row int, r rune, c core.Color) {
	if s.inside(col, row) {
		s.screen.SetCell(s.origin.X+col, s.origin.Y+row, core.Cell{Rune: r, Color: c})
	}
}
