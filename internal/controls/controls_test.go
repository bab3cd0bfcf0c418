package controls

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key  string
		want snake.Direction
		ok   bool
	}{
		{"up", snake.Up, true},
		{"ArrowDown", snake.Down, true},
		{"w", snake.Up, true},
		{"W", snake.Up, true},
		{"a", snake.Left, true},
		{"S", snake.Down, true},
		{"d", snake.Right, true},
		{"right", snake.Right, true},
		{"x", snake.Direction{}, false},
		{"", snake.Direction{}, false},
	}
	for _, tt := range tests {
		got, ok := KeyDirection(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KeyDirection(%q) = %v, %v; expected %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSwipeDominantAxis(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   snake.Direction
		ok     bool
	}{
		{"right", 40, 10, snake.Right, true},
		{"left", -40, 5, snake.Left, true},
		{"down", 3, 45, snake.Down, true},
		{"up", -10, -31, snake.Up, true},
		{"below threshold", 30, 0, snake.Direction{}, false},
		{"diagonal tie", 50, 50, snake.Down, true},
		{"dominant axis under threshold", 10, 31, snake.Down, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSwipe(30)
			s.Begin(100, 100)
			got, ok := s.Move(100+tt.dx, 100+tt.dy)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Move = %v, %v; expected %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSwipeReanchors(t *testing.T) {
	s := NewSwipe(0)
	s.Begin(0, 0)

	if d, ok := s.Move(35, 0); !ok || d != snake.Right {
		t.Fatalf("first swipe = %v, %v", d, ok)
	}
	if _, ok := s.Move(50, 0); ok {
		t.Error("15px past the new anchor should not swipe")
	}
	if d, ok := s.Move(50, 40); !ok || d != snake.Down {
		t.Errorf("chained swipe = %v, %v; expected down", d, ok)
	}
}

func TestSwipeInactive(t *testing.T) {
	s := NewSwipe(30)
	if _, ok := s.Move(100, 0); ok {
		t.Error("Move without Begin should not swipe")
	}
	s.Begin(0, 0)
	s.End()
	if s.Active() {
		t.Error("End should finish the gesture")
	}
	if _, ok := s.Move(100, 0); ok {
		t.Error("Move after End should not swipe")
	}
}
