package render

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type call struct {
	op     string
	x, y   float64
	radius float64
	blur   float64
	fill   color.Color
}

type recorder struct {
	size  float64
	calls []call
}

func (r *recorder) Size() float64 { return r.size }

func (r *recorder) Clear() { r.calls = append(r.calls, call{op: "clear"}) }

func (r *recorder) SetShadow(c color.Color, blur float64) {
	r.calls = append(r.calls, call{op: "shadow", blur: blur, fill: c})
}

func (r *recorder) FillRoundedRect(x, y, w, h, radius float64, fill color.Color) {
	r.calls = append(r.calls, call{op: "rect", x: x, y: y, radius: radius, fill: fill})
}

func (r *recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	r.calls = append(r.calls, call{op: "line", x: x1, y: y1, fill: c})
}

func (r *recorder) FillRadialCircle(cx, cy, radius float64, inner, outer color.Color) {
	r.calls = append(r.calls, call{op: "circle", x: cx, y: cy, radius: radius, fill: inner})
}

func (r *recorder) ops(op string) []call {
	var out []call
	for _, c := range r.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func scene(grid bool) snake.Scene {
	return snake.Scene{
		TileCount: 20,
		Body:      []snake.Cell{{X: 9, Y: 9}, {X: 8, Y: 9}, {X: 7, Y: 9}},
		Food:      snake.Food{Cell: snake.Cell{X: 2, Y: 3}, Kind: snake.FoodBonus},
		ShowGrid:  grid,
	}
}

func TestDrawOrder(t *testing.T) {
	r := &recorder{size: 400}
	Draw(r, scene(true))

	if r.calls[0].op != "clear" {
		t.Fatalf("first call = %q, expected clear", r.calls[0].op)
	}

	lastLine, circle, firstRect := -1, -1, -1
	for i, c := range r.calls {
		switch c.op {
		case "line":
			lastLine = i
		case "circle":
			circle = i
		case "rect":
			if firstRect < 0 {
				firstRect = i
			}
		}
	}
	if !(lastLine < circle && circle < firstRect) {
		t.Errorf("order: last line %d, food %d, first segment %d", lastLine, circle, firstRect)
	}
}

func TestDrawGridOnlyWhenVisible(t *testing.T) {
	r := &recorder{size: 400}
	Draw(r, scene(false))
	if n := len(r.ops("line")); n != 0 {
		t.Errorf("hidden grid drew %d lines", n)
	}

	r = &recorder{size: 400}
	Draw(r, scene(true))
	lines := r.ops("line")
	if len(lines) != 2*21 {
		t.Fatalf("grid drew %d lines, expected 42", len(lines))
	}
	if lines[0].x != 0.5 || lines[len(lines)-1].y != 400.5 {
		t.Errorf("grid lines should sit on half pixels, got %v and %v", lines[0].x, lines[len(lines)-1].y)
	}
}

func TestDrawFood(t *testing.T) {
	r := &recorder{size: 400}
	Draw(r, scene(false))

	circles := r.ops("circle")
	if len(circles) != 1 {
		t.Fatalf("drew %d food circles, expected 1", len(circles))
	}
	c := circles[0]
	if c.x != 50 || c.y != 70 || c.radius != 6 {
		t.Errorf("food circle at (%v, %v) r=%v, expected (50, 70) r=6", c.x, c.y, c.radius)
	}
	inner, _ := snake.FoodBonus.Colors()
	if c.fill != inner {
		t.Errorf("food inner color = %v, expected %v", c.fill, inner)
	}
}

func TestDrawHidesUnplacedFood(t *testing.T) {
	sc := scene(false)
	sc.Food = snake.Food{Cell: snake.NoCell}
	r := &recorder{size: 400}
	Draw(r, sc)
	if len(r.ops("circle")) != 0 {
		t.Error("food at NoCell should not be drawn")
	}
}

func TestDrawSnakeTailToHead(t *testing.T) {
	r := &recorder{size: 400}
	Draw(r, scene(false))

	rects := r.ops("rect")
	if len(rects) != 3 {
		t.Fatalf("drew %d segments, expected 3", len(rects))
	}
	if rects[0].x != 7*20+3 {
		t.Errorf("first segment x = %v, expected the tail at 143", rects[0].x)
	}
	head := rects[2]
	if head.x != 9*20+3 || head.y != 9*20+3 {
		t.Errorf("head at (%v, %v), expected (183, 183)", head.x, head.y)
	}
	if head.radius != 8 || rects[0].radius != 6 {
		t.Errorf("radii head=%v body=%v, expected 8 and 6", head.radius, rects[0].radius)
	}
	if head.fill != HeadColor {
		t.Errorf("head fill = %v, expected %v", head.fill, HeadColor)
	}
}

func TestDrawEndsWithoutShadow(t *testing.T) {
	r := &recorder{size: 400}
	Draw(r, scene(true))
	last := r.calls[len(r.calls)-1]
	if last.op != "shadow" || last.blur != 0 {
		t.Errorf("last call = %+v, expected the glow to be reset", last)
	}
}

func TestDrawEmptyBoard(t *testing.T) {
	r := &recorder{size: 400}
	Draw(r, snake.Scene{})
	if len(r.calls) != 1 {
		t.Errorf("empty scene made %d calls, expected only clear", len(r.calls))
	}
}

func TestBodyColorAt(t *testing.T) {
	if got := BodyColorAt(0, 0, 400); got.Hex() != BodyStart.Hex() {
		t.Errorf("top-left = %s, expected %s", got.Hex(), BodyStart.Hex())
	}
	if got := BodyColorAt(400, 400, 400); got.Hex() != BodyEnd.Hex() {
		t.Errorf("bottom-right = %s, expected %s", got.Hex(), BodyEnd.Hex())
	}
	mid := BodyColorAt(200, 200, 400)
	if mid.G >= BodyStart.G || mid.G <= BodyEnd.G {
		t.Errorf("midpoint green %v should sit between the ends", mid.G)
	}
}
