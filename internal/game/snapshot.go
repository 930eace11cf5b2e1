package game

// Snapshot captures the observable game state for determinism testing and
// debugging.
type Snapshot struct {
	Tick      uint64
	Score     int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	FreeCells int
	Phase     Phase
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(s.snake) > 0 {
		headX = s.snake[0].X
		headY = s.snake[0].Y
	}

	foodX, foodY := -1, -1
	if s.hasFood {
		foodX = s.food.X
		foodY = s.food.Y
	}

	return Snapshot{
		Tick:      s.tick,
		Score:     s.score,
		SnakeLen:  len(s.snake),
		HeadX:     headX,
		HeadY:     headY,
		Dir:       s.dir,
		FoodX:     foodX,
		FoodY:     foodY,
		FreeCells: s.free.Len(),
		Phase:     s.phase,
	}
}
