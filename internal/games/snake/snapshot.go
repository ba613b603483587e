package snake

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick      uint64
	SnakeLen  int
	HeadRow   int
	HeadCol   int
	Dir       string
	FoodRow   int
	FoodCol   int
	FoodEaten int
	State     State
	Cause     Cause
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		SnakeLen:  g.snake.Len(),
		HeadRow:   g.snake.Head.Row,
		HeadCol:   g.snake.Head.Col,
		Dir:       g.direction.String(),
		FoodRow:   g.food.Position.Row,
		FoodCol:   g.food.Position.Col,
		FoodEaten: g.eaten,
		State:     g.state,
		Cause:     g.cause,
	}
}
