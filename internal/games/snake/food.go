package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single food item on the board.
type Food struct {
	Position core.Point
	Consumed bool
}

// NewFood returns the starting food at (5,8).
func NewFood() Food {
	return Food{Position: core.Pt(5, 8)}
}

// Paint writes the food onto the grid unless it has been eaten.
func (f Food) Paint(g *core.Grid) {
	if f.Consumed {
		return
	}
	g.Set(f.Position, core.CellFood)
}

// Placement selects how a new food position is drawn.
type Placement string

const (
	// PlacementUniform draws over the whole interior and may land on the
	// snake, matching the classic behaviour.
	PlacementUniform Placement = "uniform"
	// PlacementAvoidSnake draws uniformly over interior cells the snake
	// does not occupy.
	PlacementAvoidSnake Placement = "avoid-snake"
)

// ParsePlacement validates a placement policy name.
func ParsePlacement(s string) (Placement, error) {
	switch Placement(s) {
	case PlacementUniform, PlacementAvoidSnake:
		return Placement(s), nil
	case "":
		return PlacementAvoidSnake, nil
	default:
		return "", fmt.Errorf("snake: unknown food placement %q", s)
	}
}

// FoodSpawner places replacement food once the current item is eaten.
type FoodSpawner struct {
	rng       *rand.Rand
	placement Placement
}

// NewFoodSpawner creates a spawner with its own seeded RNG.
func NewFoodSpawner(seed int64, placement Placement) *FoodSpawner {
	return &FoodSpawner{
		rng:       rand.New(rand.NewSource(seed)),
		placement: placement,
	}
}

// MaybeRespawn replaces consumed food with a new item at a random strictly
// interior position and returns true. It is a no-op for uneaten food.
// With PlacementAvoidSnake and no free interior cell left, the food stays
// consumed and false is returned.
func (fs *FoodSpawner) MaybeRespawn(f *Food, s *Snake, g *core.Grid) bool {
	if !f.Consumed {
		return false
	}

	var pos core.Point
	switch fs.placement {
	case PlacementUniform:
		pos = core.Pt(1+fs.rng.Intn(g.Height()-2), 1+fs.rng.Intn(g.Width()-2))
	default:
		free := freeInteriorCells(s, g)
		if len(free) == 0 {
			return false
		}
		pos = free[fs.rng.Intn(len(free))]
	}

	g.Set(pos, core.CellFood)
	f.Position = pos
	f.Consumed = false
	return true
}

// freeInteriorCells collects interior cells the snake does not occupy.
func freeInteriorCells(s *Snake, g *core.Grid) []core.Point {
	cells := make([]core.Point, 0, (g.Height()-2)*(g.Width()-2))
	for row := 1; row < g.Height()-1; row++ {
		for col := 1; col < g.Width()-1; col++ {
			p := core.Pt(row, col)
			if !s.Occupies(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
