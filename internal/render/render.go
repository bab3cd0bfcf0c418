// Package render draws a snake scene onto any canvas-like surface.
// It only reads the scene; all output goes through the Surface.
package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Surface is a 2D canvas in pixel coordinates, origin top-left.
type Surface interface {
	// Size is the side length of the square canvas in pixels.
	Size() float64
	Clear()
	// SetShadow sets the glow applied to subsequent fills. A zero blur disables it.
	SetShadow(c color.Color, blur float64)
	FillRoundedRect(x, y, w, h, radius float64, fill color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
	// FillRadialCircle fills a circle shading from inner at the center to outer at the rim.
	FillRadialCircle(cx, cy, r float64, inner, outer color.Color)
}

// Palette and geometry.
var (
	GridColor  = color.NRGBA{R: 0x00, G: 0xff, B: 0xea, A: 38}
	BodyStart  = mustHex("#00ffea")
	BodyEnd    = mustHex("#00a3a3")
	HeadColor  = mustHex("#00fff0")
	GlowColor  = HeadColor
	Background = color.NRGBA{R: 0x0b, G: 0x0f, B: 0x1a, A: 0xff}
)

const (
	segmentInset = 3
	bodyRadius   = 6
	headRadius   = 8
	foodMargin   = 4
	bodyGlow     = 15
	headGlow     = 25
	foodGlow     = 20
)

// Draw paints sc onto dst: clear, grid, food, then the snake from tail to head.
func Draw(dst Surface, sc snake.Scene) {
	dst.Clear()
	if sc.TileCount <= 0 {
		return
	}
	grid := dst.Size() / float64(sc.TileCount)

	if sc.ShowGrid {
		drawGrid(dst, sc.TileCount, grid)
	}
	if sc.Food.Placed() {
		drawFood(dst, sc.Food, grid)
	}
	drawSnake(dst, sc.Body, grid)
	dst.SetShadow(nil, 0)
}

func drawGrid(dst Surface, tiles int, grid float64) {
	size := dst.Size()
	for i := 0; i <= tiles; i++ {
		p := float64(i)*grid + 0.5
		dst.StrokeLine(p, 0, p, size, 1, GridColor)
		dst.StrokeLine(0, p, size, p, 1, GridColor)
	}
}

func drawFood(dst Surface, f snake.Food, grid float64) {
	inner, outer := f.Kind.Colors()
	cx := float64(f.Cell.X)*grid + grid/2
	cy := float64(f.Cell.Y)*grid + grid/2

	dst.SetShadow(inner, foodGlow)
	dst.FillRadialCircle(cx, cy, grid/2-foodMargin, inner, outer)
	dst.SetShadow(nil, 0)
}

func drawSnake(dst Surface, body []snake.Cell, grid float64) {
	size := dst.Size()
	side := grid - 2*segmentInset

	for i := len(body) - 1; i >= 0; i-- {
		x := float64(body[i].X)*grid + segmentInset
		y := float64(body[i].Y)*grid + segmentInset

		if i == 0 {
			dst.SetShadow(GlowColor, headGlow)
			dst.FillRoundedRect(x, y, side, side, headRadius, HeadColor)
			continue
		}
		dst.SetShadow(GlowColor, bodyGlow)
		dst.FillRoundedRect(x, y, side, side, bodyRadius, BodyColorAt(x+side/2, y+side/2, size))
	}
}

// BodyColorAt samples the diagonal body gradient that spans the whole canvas
// from the top-left corner to the bottom-right one.
func BodyColorAt(x, y, size float64) colorful.Color {
	if size <= 0 {
		return BodyStart
	}
	t := (x + y) / (2 * size)
	t = min(max(t, 0), 1)
	return BodyStart.BlendRgb(BodyEnd, t).Clamped()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
