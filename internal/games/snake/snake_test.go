package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(200 * time.Millisecond)

	if s.Head != core.Pt(5, 6) {
		t.Errorf("Head = %v, expected (5, 6)", s.Head)
	}
	if len(s.Body) != 2 || s.Body[0] != core.Pt(5, 5) || s.Body[1] != core.Pt(5, 4) {
		t.Errorf("Body = %v, expected [(5,5) (5,4)]", s.Body)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", s.Len())
	}
	if s.Occupies(s.Head) != true || s.onBody(s.Head) {
		t.Error("head should be occupied but not part of the body")
	}
}

func TestAdvanceWithoutFood(t *testing.T) {
	g := core.NewGrid(core.BoardHeight, core.BoardWidth)
	s := NewSnake(core.TickPeriod)
	s.Paint(g)
	food := Food{Position: core.Pt(10, 10)}

	consumed := s.Advance(g, core.DirRight, food)

	if consumed {
		t.Fatal("Advance() = true, expected false when food is elsewhere")
	}
	if s.Head != core.Pt(5, 7) {
		t.Errorf("Head = %v, expected (5, 7)", s.Head)
	}
	expected := []core.Point{core.Pt(5, 6), core.Pt(5, 5)}
	if len(s.Body) != len(expected) {
		t.Fatalf("Body = %v, expected %v", s.Body, expected)
	}
	for i := range expected {
		if s.Body[i] != expected[i] {
			t.Errorf("Body[%d] = %v, expected %v", i, s.Body[i], expected[i])
		}
	}

	// Grid follows the move: old head is body, tail cell is cleared
	if g.At(core.Pt(5, 7)) != core.CellHead {
		t.Errorf("new head cell = %v, expected head", g.At(core.Pt(5, 7)))
	}
	if g.At(core.Pt(5, 6)) != core.CellBody {
		t.Errorf("old head cell = %v, expected body", g.At(core.Pt(5, 6)))
	}
	if g.At(core.Pt(5, 4)) != core.CellEmpty {
		t.Errorf("old tail cell = %v, expected empty", g.At(core.Pt(5, 4)))
	}
}

func TestAdvanceEatsFood(t *testing.T) {
	g := core.NewGrid(core.BoardHeight, core.BoardWidth)
	s := NewSnake(core.TickPeriod)
	food := Food{Position: core.Pt(5, 7)}

	if !s.Advance(g, core.DirRight, food) {
		t.Fatal("Advance() = false, expected true when moving onto food")
	}
	if len(s.Body) != 3 {
		t.Errorf("len(Body) = %d, expected 3 after eating", len(s.Body))
	}
	if s.Body[0] != core.Pt(5, 6) || s.Body[2] != core.Pt(5, 4) {
		t.Errorf("Body = %v, expected old head prepended and tail kept", s.Body)
	}
}

func TestAdvanceIgnoresConsumedFood(t *testing.T) {
	g := core.NewGrid(core.BoardHeight, core.BoardWidth)
	s := NewSnake(core.TickPeriod)
	food := Food{Position: core.Pt(5, 7), Consumed: true}

	if s.Advance(g, core.DirRight, food) {
		t.Error("Advance() = true, expected false for already consumed food")
	}
	if len(s.Body) != 2 {
		t.Errorf("len(Body) = %d, expected 2", len(s.Body))
	}
}

func TestAdvanceEmptyBody(t *testing.T) {
	g := core.NewGrid(10, 10)
	s := &Snake{Head: core.Pt(3, 3)}

	if s.Advance(g, core.DirDown, Food{Position: core.Pt(8, 8)}) {
		t.Fatal("Advance() = true, expected false")
	}
	if s.Head != core.Pt(4, 3) {
		t.Errorf("Head = %v, expected (4, 3)", s.Head)
	}
	if len(s.Body) != 1 || s.Body[0] != core.Pt(3, 3) {
		t.Errorf("Body = %v, expected [(3,3)]", s.Body)
	}
}

func TestAdvanceEachDirection(t *testing.T) {
	tests := []struct {
		dir      core.Direction
		expected core.Point
	}{
		{core.DirUp, core.Pt(4, 5)},
		{core.DirDown, core.Pt(6, 5)},
		{core.DirLeft, core.Pt(5, 4)},
		{core.DirRight, core.Pt(5, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			g := core.NewGrid(12, 12)
			s := &Snake{Head: core.Pt(5, 5)}
			s.Advance(g, tc.dir, Food{Position: core.Pt(1, 1)})
			if s.Head != tc.expected {
				t.Errorf("Head = %v, expected %v", s.Head, tc.expected)
			}
		})
	}
}
