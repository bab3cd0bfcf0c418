package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// TickResult describes what a single simulation step did.
type TickResult struct {
	Moved bool     // The snake advanced one cell
	Ate   bool     // The new head landed on the food
	Kind  FoodKind // Kind of food eaten, valid when Ate
	Ended bool     // The step collided and ended the game
}

// Controls mirrors the state of the user-facing controls.
type Controls struct {
	StartEnabled bool
	PauseEnabled bool
	PauseLabel   string
}

// Session owns all game state and its lifecycle. All methods must be called
// from a single goroutine: the host's event loop.
type Session struct {
	settings Settings
	spawner  *Spawner
	store    Store
	audio    Audio
	logger   *log.Logger
	now      func() time.Time

	phase     Phase
	epoch     uint64 // Incremented on every start, lets the scheduler reset
	tick      uint64
	body      []Cell // Head at index 0
	velocity  Direction
	queue     *DirectionQueue
	food      Food
	score     int
	highScore int
	speed     float64
	selected  float64 // Speed selector value
	showGrid  bool
	startedAt time.Time
	newBest   bool
}

// Option customizes a Session.
type Option func(*Session)

// WithRand sets the randomness source used for food placement.
func WithRand(r Rand) Option {
	return func(s *Session) { s.spawner = NewSpawner(r, s.settings.TileCount) }
}

// WithSeed seeds a private math/rand source for food placement.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithStore sets the high score and history store.
func WithStore(st Store) Option {
	return func(s *Session) { s.store = st }
}

// WithAudio sets the sound cue player.
func WithAudio(a Audio) Option {
	return func(s *Session) {
		if a != nil {
			s.audio = a
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the wall clock used for game durations.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession creates an idle session and loads the persisted high score.
func NewSession(settings Settings, opts ...Option) *Session {
	settings = settings.normalized()
	s := &Session{
		settings: settings,
		audio:    silentAudio{},
		logger:   log.New(io.Discard),
		now:      time.Now,
		queue:    NewDirectionQueue(settings.QueueLimit),
		selected: core.ClampF(settings.InitialSpeed, settings.MinSpeed, settings.MaxSpeed),
		showGrid: settings.ShowGrid,
		food:     Food{Cell: NoCell},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.spawner == nil {
		s.spawner = NewSpawner(rand.New(rand.NewSource(time.Now().UnixNano())), settings.TileCount)
	}
	s.speed = s.selected

	if s.store != nil {
		hs, err := s.store.HighScore()
		if err != nil {
			s.logger.Warn("could not load high score", "error", err)
		}
		s.highScore = max(hs, 0)
	}
	return s
}

// Start begins a new game. Legal while idle or after a game has ended.
func (s *Session) Start() bool {
	if s.phase != PhaseIdle && s.phase != PhaseEnded {
		return false
	}
	s.begin()
	return true
}

// Restart begins a new game after the previous one ended.
func (s *Session) Restart() bool {
	if s.phase != PhaseEnded {
		return false
	}
	s.begin()
	return true
}

// begin initializes a fresh round.
func (s *Session) begin() {
	n := s.settings.TileCount
	c := n/2 - 1
	s.body = []Cell{
		{X: core.Wrap(c, n), Y: core.Wrap(c, n)}, // Head
		{X: core.Wrap(c-1, n), Y: core.Wrap(c, n)},
		{X: core.Wrap(c-2, n), Y: core.Wrap(c, n)},
	}
	s.velocity = Right
	s.queue.Reset()
	s.score = 0
	s.tick = 0
	s.speed = s.selected
	s.newBest = false
	s.food = s.spawner.Place(s.body)
	s.startedAt = s.now()
	s.epoch++
	s.phase = PhaseRunning

	s.logger.Debug("game started", "speed", s.speed, "food", s.food.Kind)
}

// TogglePause switches between running and paused.
func (s *Session) TogglePause() bool {
	switch s.phase {
	case PhaseRunning:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhaseRunning
	default:
		return false
	}
	s.audio.Play(CuePause)
	return true
}

// Steer queues a direction change. Accepted only while running.
func (s *Session) Steer(d Direction) bool {
	if s.phase != PhaseRunning {
		return false
	}
	return s.queue.Enqueue(d, s.velocity)
}

// SelectSpeed sets the speed selector. While a game is in progress the
// live speed takes the new value and the next tick is paced by it.
func (s *Session) SelectSpeed(v float64) {
	s.selected = core.ClampF(v, s.settings.MinSpeed, s.settings.MaxSpeed)
	if s.phase == PhaseRunning || s.phase == PhasePaused {
		s.speed = s.selected
	}
}

// CycleSpeed moves the selector to the next (step > 0) or previous preset.
func (s *Session) CycleSpeed(step int) {
	presets := s.settings.SpeedPresets
	if step > 0 {
		for _, p := range presets {
			if p > s.selected {
				s.SelectSpeed(p)
				return
			}
		}
		return
	}
	for i := len(presets) - 1; i >= 0; i-- {
		if presets[i] < s.selected {
			s.SelectSpeed(presets[i])
			return
		}
	}
}

// ToggleGrid shows or hides the grid lines.
func (s *Session) ToggleGrid() {
	s.showGrid = !s.showGrid
}

// Apply dispatches a semantic action. Returns false when the action is not
// legal in the current phase and was ignored.
func (s *Session) Apply(a core.Action) bool {
	switch a {
	case core.ActionUp:
		return s.Steer(Up)
	case core.ActionDown:
		return s.Steer(Down)
	case core.ActionLeft:
		return s.Steer(Left)
	case core.ActionRight:
		return s.Steer(Right)
	case core.ActionStart:
		return s.Start()
	case core.ActionPause:
		return s.TogglePause()
	case core.ActionRestart:
		return s.Restart()
	case core.ActionToggleGrid:
		s.ToggleGrid()
		return true
	case core.ActionSpeedUp:
		s.CycleSpeed(1)
		return true
	case core.ActionSpeedDown:
		s.CycleSpeed(-1)
		return true
	}
	return false
}

// Tick advances the simulation by one discrete step.
func (s *Session) Tick() TickResult {
	if s.phase != PhaseRunning || len(s.body) == 0 {
		return TickResult{}
	}
	s.tick++

	s.velocity = s.queue.Next(s.velocity)

	n := s.settings.TileCount
	head := s.body[0].Add(s.velocity)
	head = Cell{X: core.Wrap(head.X, n), Y: core.Wrap(head.Y, n)}

	if s.occupies(head) {
		s.end()
		return TickResult{Ended: true}
	}

	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	result := TickResult{Moved: true}
	if head == s.food.Cell {
		kind := s.food.Kind
		s.audio.Play(CueEat)
		s.score += kind.ScoreDelta()
		if d := kind.SpeedDelta(); d != 0 {
			s.speed = core.ClampF(s.speed+d, s.settings.MinSpeed, s.settings.MaxSpeed)
		}
		s.food = s.spawner.Place(s.body)
		result.Ate = true
		result.Kind = kind
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	if s.score > 0 && s.score%s.settings.RampEvery == 0 {
		s.speed = core.ClampF(s.speed+s.settings.RampStep, s.settings.MinSpeed, s.settings.MaxSpeed)
	}

	return result
}

// occupies reports whether any segment is on c.
func (s *Session) occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// end performs the terminal transition after a self-collision.
func (s *Session) end() {
	s.phase = PhaseEnded

	if s.score > s.highScore {
		s.highScore = s.score
		s.newBest = true
		if s.store != nil {
			if err := s.store.SetHighScore(s.highScore); err != nil {
				s.logger.Warn("could not save high score", "error", err)
			}
		}
		s.logger.Info("new high score", "score", s.highScore)
	}

	if s.store != nil {
		endedAt := s.now()
		rec := GameRecord{
			Score:    s.score,
			Length:   len(s.body),
			Speed:    s.speed,
			Duration: endedAt.Sub(s.startedAt),
			EndedAt:  endedAt,
		}
		if err := s.store.RecordGame(rec); err != nil {
			s.logger.Warn("could not record game", "error", err)
		}
	}

	s.audio.Play(CueGameOver)
	s.logger.Info("game over", "score", s.score, "length", len(s.body), "speed", s.speed, "ticks", s.tick)
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Epoch changes every time a new game begins.
func (s *Session) Epoch() uint64 { return s.epoch }

// Score returns the current score. After the game ends it is the final score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score known to this session.
func (s *Session) HighScore() int { return s.highScore }

// NewHighScore reports whether the last finished game set a new high score.
func (s *Session) NewHighScore() bool { return s.newBest }

// Speed returns the live speed in ticks/second.
func (s *Session) Speed() float64 { return s.speed }

// SelectedSpeed returns the speed selector value.
func (s *Session) SelectedSpeed() float64 { return s.selected }

// Interval returns the time between ticks at the live speed.
func (s *Session) Interval() time.Duration {
	return time.Duration(float64(time.Second) / s.speed)
}

// Velocity returns the live heading.
func (s *Session) Velocity() Direction { return s.velocity }

// Food returns the current food item.
func (s *Session) Food() Food { return s.food }

// Length returns the number of snake segments.
func (s *Session) Length() int { return len(s.body) }

// Body returns a copy of the snake, head first.
func (s *Session) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// GridVisible reports whether grid lines are drawn.
func (s *Session) GridVisible() bool { return s.showGrid }

// Settings returns the session tunables.
func (s *Session) Settings() Settings { return s.settings }

// Controls returns the enabled state of the start and pause controls.
func (s *Session) Controls() Controls {
	c := Controls{PauseLabel: "Pause"}
	switch s.phase {
	case PhaseIdle, PhaseEnded:
		c.StartEnabled = true
	case PhaseRunning:
		c.PauseEnabled = true
	case PhasePaused:
		c.PauseEnabled = true
		c.PauseLabel = "Resume"
	}
	return c
}
