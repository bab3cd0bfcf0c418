package snake

import "time"

// Cue names a sound effect.
type Cue int

const (
	CueEat Cue = iota
	CuePause
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CuePause:
		return "pause"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Audio plays sound cues. Play is fire-and-forget: implementations restart
// the cue from the beginning and swallow any playback failure.
type Audio interface {
	Play(c Cue)
}

// GameRecord summarizes a finished game for history.
type GameRecord struct {
	Score    int
	Length   int
	Speed    float64
	Duration time.Duration
	EndedAt  time.Time
}

// Store persists the high score and finished games.
type Store interface {
	// HighScore returns the persisted high score, 0 when unset or malformed.
	HighScore() (int, error)
	SetHighScore(score int) error
	RecordGame(r GameRecord) error
}

type silentAudio struct{}

func (silentAudio) Play(Cue) {}
