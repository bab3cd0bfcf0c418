package snake

// Scene is the read-only view of a session that the render step draws.
type Scene struct {
	TileCount int
	Body      []Cell // Head at index 0
	Food      Food
	ShowGrid  bool
}

// Scene captures what should be drawn right now.
func (s *Session) Scene() Scene {
	food := s.food
	if s.phase == PhaseIdle {
		food = Food{Cell: NoCell}
	}
	return Scene{
		TileCount: s.settings.TileCount,
		Body:      s.Body(),
		Food:      food,
		ShowGrid:  s.showGrid,
	}
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	FoodKind  FoodKind
	Speed     float64
	Queued    int
}

// Snapshot returns the current game snapshot for determinism verification.
func (s *Session) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(s.body) > 0 {
		headX = s.body[0].X
		headY = s.body[0].Y
	}

	return Snapshot{
		Tick:      s.tick,
		Phase:     s.phase,
		Score:     s.score,
		HighScore: s.highScore,
		SnakeLen:  len(s.body),
		HeadX:     headX,
		HeadY:     headY,
		Dir:       s.velocity,
		FoodX:     s.food.Cell.X,
		FoodY:     s.food.Cell.Y,
		FoodKind:  s.food.Kind,
		Speed:     s.speed,
		Queued:    s.queue.Len(),
	}
}
