// Package window hosts the snake game in a desktop window using Ebitengine.
// Keyboard, mouse drags and touch swipes steer the snake.
package window

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/controls"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// Layout constants in logical pixels.
const (
	hudHeight  = 28
	glyphW     = 6 // ebitenutil debug font
	glyphH     = 16
	hudPadding = 8
)

var overlayShade = color.NRGBA{R: 0, G: 0, B: 0, A: 170}

// Options configures the window host.
type Options struct {
	CanvasSize     float64 // Board side in logical pixels
	SwipeThreshold float64
	Scale          float64 // Window size multiplier
	Title          string
}

func (o Options) withDefaults() Options {
	if o.CanvasSize <= 0 {
		o.CanvasSize = 400
	}
	if o.SwipeThreshold <= 0 {
		o.SwipeThreshold = controls.DefaultSwipeThreshold
	}
	if o.Scale <= 0 {
		o.Scale = 1.5
	}
	if o.Title == "" {
		o.Title = "Snake"
	}
	return o
}

// Game implements ebiten.Game for one snake session.
type Game struct {
	session *snake.Session
	sched   *snake.Scheduler
	board   *ebiten.Image
	surface *ImageSurface
	swipe   *controls.Swipe
	touch   ebiten.TouchID
	touched bool
	opts    Options
	keys    []ebiten.Key
}

// NewGame creates a window host for session.
func NewGame(session *snake.Session, opts Options) *Game {
	opts = opts.withDefaults()
	size := int(math.Ceil(opts.CanvasSize))
	board := ebiten.NewImage(size, size)

	return &Game{
		session: session,
		sched:   snake.NewScheduler(session),
		board:   board,
		surface: NewImageSurface(board, opts.CanvasSize),
		swipe:   controls.NewSwipe(opts.SwipeThreshold),
		opts:    opts,
	}
}

// Update handles input, then lets the scheduler decide whether to step.
// Ebitengine calls it once per display refresh under SyncWithFPS.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		action := keyAction(k)
		if action == core.ActionQuit {
			return ebiten.Termination
		}
		g.session.Apply(action)
	}

	g.handlePointer()
	g.sched.Frame(time.Now())
	return nil
}

// handlePointer feeds the first active touch, or the left mouse button,
// into the swipe tracker.
func (g *Game) handlePointer() {
	if !g.touched {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			g.touch, g.touched = ids[0], true
			x, y := ebiten.TouchPosition(g.touch)
			g.swipe.Begin(float64(x), float64(y))
		}
	}
	if g.touched {
		if inpututil.IsTouchJustReleased(g.touch) {
			g.touched = false
			g.swipe.End()
			return
		}
		x, y := ebiten.TouchPosition(g.touch)
		g.steer(float64(x), float64(y))
		return
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.swipe.Begin(float64(x), float64(y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.swipe.End()
	case g.swipe.Active():
		g.steer(float64(x), float64(y))
	}
}

func (g *Game) steer(x, y float64) {
	if d, ok := g.swipe.Move(x, y); ok {
		g.session.Steer(d)
	}
}

// Draw renders the HUD, the board and the phase overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)

	render.Draw(g.surface, g.session.Scene())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, hudHeight)
	screen.DrawImage(g.board, op)

	ebitenutil.DebugPrintAt(screen, g.hudText(), hudPadding, (hudHeight-glyphH)/2)
	g.drawOverlay(screen)
}

func (g *Game) hudText() string {
	s := g.session
	speed := s.Speed()
	if s.Phase() == snake.PhaseIdle {
		speed = s.SelectedSpeed()
	}
	c := s.Controls()
	control := "[Enter] Start"
	if c.PauseEnabled {
		control = "[P] " + c.PauseLabel
	}
	return fmt.Sprintf("SCORE %d   BEST %d   SPEED %s   %s", s.Score(), s.HighScore(), speedLabel(speed), control)
}

func (g *Game) overlayLines() []string {
	s := g.session
	switch s.Phase() {
	case snake.PhaseIdle:
		return []string{"S N A K E", "", "Enter to start", "+/- to change speed"}
	case snake.PhasePaused:
		return []string{"PAUSED", "P to resume"}
	case snake.PhaseEnded:
		lines := []string{"GAME OVER", fmt.Sprintf("Final score %d", s.Score())}
		if s.NewHighScore() {
			lines = append(lines, "New high score!")
		}
		return append(lines, "R to restart")
	}
	return nil
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	lines := g.overlayLines()
	if len(lines) == 0 {
		return
	}

	size := g.opts.CanvasSize
	boxH := float64((len(lines) + 2) * glyphH)
	top := hudHeight + (size-boxH)/2
	vector.DrawFilledRect(screen, 0, float32(top), float32(size), float32(boxH), overlayShade, false)

	for i, line := range lines {
		x := (int(size) - len(line)*glyphW) / 2
		y := int(top) + (i+1)*glyphH
		ebitenutil.DebugPrintAt(screen, line, x, y)
	}
}

// Layout keeps a fixed logical resolution; Ebitengine scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	size := int(math.Ceil(g.opts.CanvasSize))
	return size, size + hudHeight
}

// keyAction maps a physical key to a game action. Direction keys share
// their names with the browser key names understood by controls.KeyDirection.
func keyAction(k ebiten.Key) core.Action {
	if d, ok := controls.KeyDirection(k.String()); ok {
		switch d {
		case snake.Up:
			return core.ActionUp
		case snake.Down:
			return core.ActionDown
		case snake.Left:
			return core.ActionLeft
		case snake.Right:
			return core.ActionRight
		}
	}

	switch k {
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace:
		return core.ActionStart
	case ebiten.KeyP, ebiten.KeyEscape:
		return core.ActionPause
	case ebiten.KeyR:
		return core.ActionRestart
	case ebiten.KeyG:
		return core.ActionToggleGrid
	case ebiten.KeyEqual, ebiten.KeyNumpadAdd, ebiten.KeyBracketRight:
		return core.ActionSpeedUp
	case ebiten.KeyMinus, ebiten.KeyNumpadSubtract, ebiten.KeyBracketLeft:
		return core.ActionSpeedDown
	case ebiten.KeyQ:
		return core.ActionQuit
	}
	return core.ActionNone
}

func speedLabel(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// Run opens the window and blocks until it is closed.
func Run(session *snake.Session, opts Options) error {
	g := NewGame(session, opts)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowSize(int(float64(w)*g.opts.Scale), int(float64(h)*g.opts.Scale))
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
