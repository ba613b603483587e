package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the player-controlled body: a head plus segments ordered from
// neck to tail. The head is never part of Body.
type Snake struct {
	Head       core.Point
	Body       []core.Point
	TickPeriod time.Duration
}

// NewSnake returns the starting snake: head at (5,6) with two segments
// trailing to the left.
func NewSnake(period time.Duration) *Snake {
	return &Snake{
		Head:       core.Pt(5, 6),
		Body:       []core.Point{core.Pt(5, 5), core.Pt(5, 4)},
		TickPeriod: period,
	}
}

// Len returns the total snake length including the head.
func (s *Snake) Len() int {
	return len(s.Body) + 1
}

// Occupies reports whether the head or any segment is at p.
func (s *Snake) Occupies(p core.Point) bool {
	return s.Head == p || s.onBody(p)
}

// onBody reports whether any body segment is at p.
func (s *Snake) onBody(p core.Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// Advance moves the head one cell in dir and updates the grid in place.
// It returns true when the new head lands on uneaten food; in that case the
// tail is kept so the snake grows by one segment. Marking the food consumed
// is left to the caller.
func (s *Snake) Advance(g *core.Grid, dir core.Direction, food Food) bool {
	oldHead := s.Head
	s.Head = oldHead.Add(dir.Delta())

	consumed := s.Head == food.Position && !food.Consumed

	g.Set(oldHead, core.CellBody)
	g.Set(s.Head, core.CellHead)

	if len(s.Body) > 0 && !consumed {
		tail := s.Body[len(s.Body)-1]
		s.Body = s.Body[:len(s.Body)-1]
		g.Set(tail, core.CellEmpty)
	}

	// The old head becomes the neck whether or not food was eaten.
	s.Body = append(s.Body, core.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = oldHead

	return consumed
}

// Paint writes the head and every body segment onto the grid.
func (s *Snake) Paint(g *core.Grid) {
	g.Set(s.Head, core.CellHead)
	for _, seg := range s.Body {
		g.Set(seg, core.CellBody)
	}
}
