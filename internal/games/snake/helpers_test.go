package snake

import (
	"math/rand"
	"testing"
	"time"
)

type memStore struct {
	high    int
	loadErr error
	sets    []int
	records []GameRecord
}

func (m *memStore) HighScore() (int, error) { return m.high, m.loadErr }

func (m *memStore) SetHighScore(score int) error {
	m.high = score
	m.sets = append(m.sets, score)
	return nil
}

func (m *memStore) RecordGame(r GameRecord) error {
	m.records = append(m.records, r)
	return nil
}

type cueRecorder struct {
	played []Cue
}

func (c *cueRecorder) Play(cue Cue) { c.played = append(c.played, cue) }

func (c *cueRecorder) count(cue Cue) int {
	n := 0
	for _, p := range c.played {
		if p == cue {
			n++
		}
	}
	return n
}

// scriptedRand replays fixed values, then falls back to a seeded source.
type scriptedRand struct {
	floats   []float64
	ints     []int
	fallback *rand.Rand
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) > 0 {
		v := r.floats[0]
		r.floats = r.floats[1:]
		return v
	}
	return r.fallback.Float64()
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v % n
	}
	return r.fallback.Intn(n)
}

func newScripted(floats []float64, ints []int) *scriptedRand {
	return &scriptedRand{floats: floats, ints: ints, fallback: rand.New(rand.NewSource(1))}
}

// newRunning returns a started session with the default 20x20 board.
func newRunning(t *testing.T, opts ...Option) (*Session, *memStore, *cueRecorder) {
	t.Helper()
	store := &memStore{}
	cues := &cueRecorder{}
	base := []Option{
		WithSeed(42),
		WithStore(store),
		WithAudio(cues),
		WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
	}
	s := NewSession(DefaultSettings(), append(base, opts...)...)
	if !s.Start() {
		t.Fatal("Start() should succeed from idle")
	}
	return s, store, cues
}

// placeFood puts food of the given kind at c.
func placeFood(s *Session, c Cell, kind FoodKind) {
	s.food = Food{Cell: c, Kind: kind}
}

// parkFood moves food somewhere the snake will not reach soon.
func parkFood(s *Session) {
	placeFood(s, Cell{X: 0, Y: 0}, FoodNormal)
}

// ahead returns the cell the head would move into without a turn.
func ahead(s *Session) Cell {
	n := s.settings.TileCount
	c := s.body[0].Add(s.velocity)
	return Cell{X: (c.X + n) % n, Y: (c.Y + n) % n}
}
