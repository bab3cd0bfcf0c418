// Package controls translates raw keyboard and touch input into snake headings.
package controls

import (
	"math"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// DefaultSwipeThreshold is the minimum travel in pixels that counts as a swipe.
const DefaultSwipeThreshold = 30

// KeyDirection maps arrow keys and WASD to a heading. Letter keys are
// matched case-insensitively. The second result is false for other keys.
func KeyDirection(key string) (snake.Direction, bool) {
	switch strings.ToLower(key) {
	case "up", "arrowup", "w":
		return snake.Up, true
	case "down", "arrowdown", "s":
		return snake.Down, true
	case "left", "arrowleft", "a":
		return snake.Left, true
	case "right", "arrowright", "d":
		return snake.Right, true
	}
	return snake.Direction{}, false
}

// Swipe classifies pointer drags into headings.
type Swipe struct {
	threshold float64
	active    bool
	x, y      float64
}

// NewSwipe creates a tracker. A non-positive threshold uses DefaultSwipeThreshold.
func NewSwipe(threshold float64) *Swipe {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Swipe{threshold: threshold}
}

// Begin anchors a new gesture at (x, y).
func (s *Swipe) Begin(x, y float64) {
	s.active = true
	s.x, s.y = x, y
}

// Move reports a heading once the pointer has traveled past the threshold
// on either axis. The heading follows the dominant axis. After a swipe the
// anchor moves to (x, y) so one drag can chain several turns.
func (s *Swipe) Move(x, y float64) (snake.Direction, bool) {
	if !s.active {
		return snake.Direction{}, false
	}
	dx, dy := x-s.x, y-s.y

	if math.Abs(dx) <= s.threshold && math.Abs(dy) <= s.threshold {
		return snake.Direction{}, false
	}

	// Ties go to the vertical axis
	var d snake.Direction
	switch {
	case math.Abs(dx) > math.Abs(dy) && dx > 0:
		d = snake.Right
	case math.Abs(dx) > math.Abs(dy):
		d = snake.Left
	case dy > 0:
		d = snake.Down
	default:
		d = snake.Up
	}

	s.x, s.y = x, y
	return d, true
}

// End finishes the gesture.
func (s *Swipe) End() {
	s.active = false
}

// Active reports whether a gesture is in progress.
func (s *Swipe) Active() bool { return s.active }
