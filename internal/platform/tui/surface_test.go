package tui

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var testInk = color.RGBA{R: 0, G: 255, B: 234, A: 255}

func newTestSurface() (*core.Screen, *ScreenSurface) {
	screen := core.NewScreen(42, 22)
	return screen, NewScreenSurface(screen, 1, 1, 400, 20)
}

func TestScreenSurfaceBounds(t *testing.T) {
	_, s := newTestSurface()

	if got := s.Bounds(); got != core.NewRect(1, 1, 40, 20) {
		t.Errorf("Bounds() = %+v, want 40x20 at (1,1)", got)
	}
	if s.Size() != 400 {
		t.Errorf("Size() = %v, want 400", s.Size())
	}
}

func TestScreenSurfaceFillRoundedRect(t *testing.T) {
	screen, s := newTestSurface()

	// Tile (0,0) inset by 3 pixels covers both of its characters.
	s.FillRoundedRect(3, 3, 14, 14, 6, testInk)

	for _, x := range []int{1, 2} {
		if got := screen.Get(x, 1); got != glyphSegment {
			t.Errorf("Get(%d, 1) = %q, want %q", x, got, glyphSegment)
		}
	}
	if got := screen.Get(3, 1); got != ' ' {
		t.Errorf("neighbor tile = %q, want blank", got)
	}
	if got := screen.GetCell(1, 1).Color; got != "#00ffea" {
		t.Errorf("segment color = %q, want #00ffea", got)
	}
}

func TestScreenSurfaceFillRadialCircle(t *testing.T) {
	tests := []struct {
		name  string
		r     float64
		cells map[[2]int]rune
	}{
		{
			name:  "food radius covers both halves",
			r:     6,
			cells: map[[2]int]rune{{11, 4}: glyphFoodLeft, {12, 4}: glyphFoodRight},
		},
		{
			name:  "tiny circle marks its center",
			r:     2,
			cells: map[[2]int]rune{{11, 4}: ' ', {12, 4}: glyphFoodLeft},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen, s := newTestSurface()
			// Center of tile (5,3).
			s.FillRadialCircle(110, 70, tt.r, testInk, color.Black)

			for pos, want := range tt.cells {
				if got := screen.Get(pos[0], pos[1]); got != want {
					t.Errorf("Get(%d, %d) = %q, want %q", pos[0], pos[1], got, want)
				}
			}
		})
	}
}

func TestScreenSurfaceStrokeLine(t *testing.T) {
	screen, s := newTestSurface()

	s.StrokeLine(0.5, 0, 0.5, 400, 1, testInk)
	s.StrokeLine(0, 20.5, 400, 20.5, 1, testInk)

	for y := 1; y <= 20; y++ {
		if got := screen.Get(1, y); got != glyphGrid {
			t.Fatalf("Get(1, %d) = %q, want grid dot", y, got)
		}
	}
	if got := screen.Get(5, 2); got != ' ' {
		t.Errorf("horizontal line drew %q, want nothing", got)
	}
}

func TestScreenSurfaceGridKeepsSegments(t *testing.T) {
	screen, s := newTestSurface()

	s.FillRoundedRect(3, 3, 14, 14, 6, testInk)
	s.StrokeLine(0.5, 0, 0.5, 400, 1, testInk)

	if got := screen.Get(1, 1); got != glyphSegment {
		t.Errorf("grid overwrote segment: %q", got)
	}
}

func TestScreenSurfaceClear(t *testing.T) {
	screen, s := newTestSurface()
	screen.DrawBox(core.NewRect(0, 0, 42, 22), core.ColorGray)

	s.FillRoundedRect(0, 0, 400, 400, 0, testInk)
	s.Clear()

	if got := screen.Get(10, 10); got != ' ' {
		t.Errorf("board cell = %q after Clear, want blank", got)
	}
	if got := screen.Get(0, 0); got != '┌' {
		t.Errorf("border = %q after Clear, want it kept", got)
	}
}

func TestScreenSurfaceClipsOutside(t *testing.T) {
	screen, s := newTestSurface()

	s.FillRoundedRect(-40, -40, 30, 30, 0, testInk)
	s.FillRoundedRect(400, 400, 30, 30, 0, testInk)

	if got := screen.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, want untouched", got)
	}
	if got := screen.Get(41, 21); got != ' ' {
		t.Errorf("Get(41, 21) = %q, want untouched", got)
	}
}
