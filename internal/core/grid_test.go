package core

import (
	"strings"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(BoardHeight, BoardWidth)

	if g.Height() != 25 {
		t.Errorf("Height() = %d, expected 25", g.Height())
	}
	if g.Width() != 100 {
		t.Errorf("Width() = %d, expected 100", g.Width())
	}

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := Pt(row, col)
			border := row == 0 || row == g.Height()-1 || col == 0 || col == g.Width()-1
			switch {
			case border && g.At(p) != CellWall:
				t.Fatalf("At(%v) = %v, expected wall on the outer ring", p, g.At(p))
			case !border && g.At(p) != CellEmpty:
				t.Fatalf("At(%v) = %v, expected empty interior", p, g.At(p))
			}
		}
	}

	expectedWalls := 2*g.Width() + 2*(g.Height()-2)
	if n := g.Count(CellWall); n != expectedWalls {
		t.Errorf("Count(wall) = %d, expected %d", n, expectedWalls)
	}
}

func TestGridSetAt(t *testing.T) {
	g := NewGrid(5, 6)

	g.Set(Pt(2, 3), CellHead)
	if g.At(Pt(2, 3)) != CellHead {
		t.Errorf("At(2, 3) = %v, expected head", g.At(Pt(2, 3)))
	}

	// Out of bounds should be silent
	g.Set(Pt(-1, 0), CellFood)
	g.Set(Pt(0, -1), CellFood)
	g.Set(Pt(5, 0), CellFood)
	g.Set(Pt(0, 6), CellFood)
	if g.Count(CellFood) != 0 {
		t.Error("Out of bounds Set should not write anything")
	}

	// Out of bounds reads as wall
	if g.At(Pt(-1, 2)) != CellWall || g.At(Pt(2, 99)) != CellWall {
		t.Error("Out of bounds At should return wall")
	}
}

func TestGridRender(t *testing.T) {
	g := NewGrid(3, 4)
	g.Set(Pt(1, 1), CellHead)
	g.Set(Pt(1, 2), CellFood)

	glyphs := Glyphs{Empty: '.', Wall: '#', Body: 'o', Head: 'O', Food: '*'}
	expected := "####\n#O*#\n####\n"
	if got := g.Render(glyphs); got != expected {
		t.Errorf("Render() = %q, expected %q", got, expected)
	}

	rows := g.Rows(glyphs)
	if len(rows) != 3 {
		t.Fatalf("Rows() returned %d rows, expected 3", len(rows))
	}
	if rows[1] != "#O*#" {
		t.Errorf("Rows()[1] = %q, expected %q", rows[1], "#O*#")
	}
	if g.Row(7, glyphs) != "" {
		t.Error("Row() out of range should be empty")
	}
}

func TestGridRenderDeterministic(t *testing.T) {
	g := NewGrid(BoardHeight, BoardWidth)
	first := g.String()
	second := g.String()
	if first != second {
		t.Error("String() should be deterministic")
	}

	lines := strings.Split(strings.TrimSuffix(first, "\n"), "\n")
	if len(lines) != BoardHeight {
		t.Fatalf("String() has %d lines, expected %d", len(lines), BoardHeight)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != BoardWidth {
			t.Errorf("line %d has %d symbols, expected %d", i, n, BoardWidth)
		}
	}
}

func TestGridClone(t *testing.T) {
	g := NewGrid(4, 4)
	c := g.Clone()
	c.Set(Pt(1, 1), CellBody)

	if g.At(Pt(1, 1)) != CellEmpty {
		t.Error("Clone() should not share cells with the original")
	}
	if c.At(Pt(1, 1)) != CellBody {
		t.Error("Clone() should be writable")
	}
}

func TestCellColor(t *testing.T) {
	if CellHead.Color() == CellEmpty.Color() {
		t.Error("head should be colored differently from empty cells")
	}
	if CellFood.Color() != ColorBrightRed {
		t.Errorf("CellFood.Color() = %v, expected ColorBrightRed", CellFood.Color())
	}
}

func TestEveryColorHasACell(t *testing.T) {
	used := make(map[Color]bool)
	for _, c := range []Cell{CellEmpty, CellWall, CellBody, CellHead, CellFood} {
		used[c.Color()] = true
	}
	for col := ColorDefault; col <= ColorGray; col++ {
		if !used[col] {
			t.Errorf("color %d is not drawn by any cell", col)
		}
	}
}
