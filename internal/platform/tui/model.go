package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/controls"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// Options configures the terminal host.
type Options struct {
	FPS            int     // Display refresh rate driving the scheduler
	CanvasSize     float64 // Virtual pixels per board side
	SwipeThreshold float64 // Mouse drag distance in virtual pixels
	Theme          *Theme  // Nil uses DefaultTheme
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.CanvasSize <= 0 {
		o.CanvasSize = 400
	}
	if o.SwipeThreshold <= 0 {
		o.SwipeThreshold = controls.DefaultSwipeThreshold
	}
	return o
}

// Model is the Bubble Tea model hosting one snake session.
type Model struct {
	session *snake.Session
	sched   *snake.Scheduler
	screen  *core.Screen
	surface *ScreenSurface
	swipe   *controls.Swipe
	keys    KeyMap
	help    help.Model
	theme   Theme
	opts    Options
	width   int
	height  int
	looping bool // A tick is in flight
	quit    bool
}

// NewModel creates a model for session. The session should be idle.
func NewModel(session *snake.Session, opts Options) Model {
	opts = opts.withDefaults()
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	tiles := session.Settings().TileCount
	screen := core.NewScreen(tiles*2+2, tiles+2)
	screen.DrawBox(core.NewRect(0, 0, screen.Width(), screen.Height()), theme.Border)

	return Model{
		session: session,
		sched:   snake.NewScheduler(session),
		screen:  screen,
		surface: NewScreenSurface(screen, 1, 1, opts.CanvasSize, tiles),
		swipe:   controls.NewSwipe(opts.SwipeThreshold),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   theme,
		opts:    opts,
	}
}

// Init sets the window title. The frame loop starts with the first game.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("snake")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quit = true
		return m, tea.Quit
	}

	m.session.Apply(action)
	cmd := m.ensureLoop()
	return m, cmd
}

// handleMouse turns left-button drags into swipes. Cell coordinates are
// scaled to virtual pixels so the threshold matches the window host.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x := float64(msg.X) * m.surface.colW
	y := float64(msg.Y) * m.surface.rowH

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.swipe.Begin(x, y)
		}
	case tea.MouseActionMotion:
		if d, ok := m.swipe.Move(x, y); ok {
			m.session.Steer(d)
		}
	case tea.MouseActionRelease:
		m.swipe.End()
	}
	return m, nil
}

// handleTick runs one frame of the scheduler and requests the next one
// while the session is running or paused.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	res := m.sched.Frame(now)
	if !res.Continue {
		m.looping = false
		return m, nil
	}
	return m, tickCmd(m.opts.FPS)
}

// ensureLoop starts the frame loop after a game begins.
func (m *Model) ensureLoop() tea.Cmd {
	if m.looping || !m.sched.Active() {
		return nil
	}
	m.looping = true
	return tickCmd(m.opts.FPS)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quit {
		return ""
	}

	render.Draw(m.surface, m.session.Scene())
	m.drawOverlay()

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.hudView(),
		RenderScreen(m.screen),
		m.theme.Help.Render(m.help.View(m.keys)),
	)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) hudView() string {
	s := m.session
	t := m.theme
	sep := t.HUDSeparator.Render("  │  ")

	best := t.HUDValue.Render(fmt.Sprint(s.HighScore()))
	if s.NewHighScore() {
		best = t.HUDHighlight.Render(fmt.Sprint(s.HighScore()))
	}

	c := s.Controls()
	control := "enter Start"
	if c.PauseEnabled {
		control = "p " + c.PauseLabel
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		t.HUDLabel.Render("SCORE "), t.HUDValue.Render(fmt.Sprint(s.Score())), sep,
		t.HUDLabel.Render("BEST "), best, sep,
		t.HUDLabel.Render("SPEED "), t.HUDValue.Render(formatSpeed(m.displaySpeed())), sep,
		t.HUDControl.Render(control),
	)
}

// displaySpeed is the live speed during a game and the selector otherwise.
func (m Model) displaySpeed() float64 {
	if m.session.Phase() == snake.PhaseIdle {
		return m.session.SelectedSpeed()
	}
	return m.session.Speed()
}

// overlayLines returns the centered message for the current phase.
func (m Model) overlayLines() []overlayLine {
	s := m.session
	t := m.theme
	switch s.Phase() {
	case snake.PhaseIdle:
		return []overlayLine{
			{"S N A K E", t.OverlayTitle},
			{"", ""},
			{"enter to start", t.OverlayText},
			{fmt.Sprintf("speed %s  (+/-)", formatSpeed(s.SelectedSpeed())), t.OverlayText},
		}
	case snake.PhasePaused:
		return []overlayLine{
			{"PAUSED", t.OverlayTitle},
			{"p to resume", t.OverlayText},
		}
	case snake.PhaseEnded:
		lines := []overlayLine{
			{"GAME OVER", t.OverlayTitle},
			{fmt.Sprintf("final score %d", s.Score()), t.OverlayText},
		}
		if s.NewHighScore() {
			lines = append(lines, overlayLine{"new high score!", t.OverlayBest})
		}
		return append(lines, overlayLine{"r to restart", t.OverlayText})
	}
	return nil
}

type overlayLine struct {
	text  string
	color core.Color
}

func (m Model) drawOverlay() {
	lines := m.overlayLines()
	if len(lines) == 0 {
		return
	}

	board := m.surface.Bounds()
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	band := board.Centered(min(width+4, board.W), min(len(lines)+2, board.H))
	m.screen.DrawRect(band, ' ')

	top := band.Y + (band.H-len(lines))/2
	for i, l := range lines {
		m.screen.DrawTextCentered(top+i, l.text, l.color)
	}
}

func formatSpeed(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// Session returns the hosted session.
func (m Model) Session() *snake.Session { return m.session }

// Run starts the Bubble Tea program for session.
func Run(session *snake.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(session, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
