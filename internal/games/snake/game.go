// Package snake implements the snake game state machine: the snake model,
// food placement and the termination check. It has no terminal or timing
// dependencies; the engine package drives it one tick at a time.
package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the game's position in its two-state lifecycle.
type State string

const (
	StateRunning  State = "running"
	StateGameOver State = "game_over"
)

// Game owns the grid, the snake and the food for one play-through.
type Game struct {
	grid      *core.Grid
	snake     *Snake
	food      Food
	spawner   *FoodSpawner
	direction core.Direction
	tick      uint64
	eaten     int
	state     State
	cause     Cause
}

// New creates a game on a fresh board with the starting snake and food.
func New(cfg core.RuntimeConfig, placement Placement) *Game {
	if cfg.Height == 0 || cfg.Width == 0 {
		cfg.Height, cfg.Width = core.BoardHeight, core.BoardWidth
	}
	if cfg.TickPeriod == 0 {
		cfg.TickPeriod = core.TickPeriod
	}

	g := &Game{
		grid:      core.NewGrid(cfg.Height, cfg.Width),
		snake:     NewSnake(cfg.TickPeriod),
		food:      NewFood(),
		spawner:   NewFoodSpawner(cfg.Seed, placement),
		direction: core.DirRight,
		state:     StateRunning,
	}
	g.snake.Paint(g.grid)
	g.food.Paint(g.grid)
	return g
}

// Steer applies direction change requests in arrival order. Each request is
// checked against the most recently accepted direction and dropped if it
// would reverse it. The direction in effect afterwards is returned.
func (g *Game) Steer(requests []core.Direction) core.Direction {
	for _, d := range requests {
		if d.IsOpposite(g.direction) {
			continue
		}
		g.direction = d
	}
	return g.direction
}

// Advance moves the snake one cell in the current direction and returns
// whether it ate the food.
func (g *Game) Advance() bool {
	if g.state == StateGameOver {
		return false
	}
	g.tick++
	consumed := g.snake.Advance(g.grid, g.direction, g.food)
	if consumed {
		g.food.Consumed = true
		g.eaten++
	}
	return consumed
}

// Compose repaints the snake and food onto the grid, replaces eaten food and
// returns the grid ready for display.
func (g *Game) Compose() *core.Grid {
	g.snake.Paint(g.grid)
	g.food.Paint(g.grid)
	g.spawner.MaybeRespawn(&g.food, g.snake, g.grid)
	return g.grid
}

// Check evaluates the termination predicate and moves the game to
// StateGameOver when it holds.
func (g *Game) Check() bool {
	if g.state == StateGameOver {
		return true
	}
	if cause := Collision(g.snake, g.grid.Height(), g.grid.Width()); cause != CauseNone {
		g.state = StateGameOver
		g.cause = cause
		return true
	}
	return false
}

// Step runs one complete tick without a display: steer, advance, compose
// and check. It reports whether the game is over.
func (g *Game) Step(requests []core.Direction) bool {
	g.Steer(requests)
	g.Advance()
	g.Compose()
	return g.Check()
}

// Grid returns the shared drawing surface.
func (g *Game) Grid() *core.Grid {
	return g.grid
}

// Snake returns the snake model.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the current food item.
func (g *Game) Food() Food {
	return g.food
}

// Direction returns the direction the snake will move next tick.
func (g *Game) Direction() core.Direction {
	return g.direction
}

// TickPeriod returns the time between ticks.
func (g *Game) TickPeriod() time.Duration {
	return g.snake.TickPeriod
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Cause returns why the game ended, or CauseNone while running.
func (g *Game) Cause() Cause {
	return g.cause
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, State: %s\n", g.tick, g.state))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", g.snake.Len(), g.direction))
	b.WriteString(fmt.Sprintf("Head: (%d, %d), Food: (%d, %d) consumed=%v\n",
		g.snake.Head.Row, g.snake.Head.Col, g.food.Position.Row, g.food.Position.Col, g.food.Consumed))
	return b.String()
}
