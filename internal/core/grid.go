package core

import (
	"strings"
)

// Cell is the symbolic state of a single grid position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellBody
	CellHead
	CellFood
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellBody:
		return "body"
	case CellHead:
		return "head"
	case CellFood:
		return "food"
	default:
		return "unknown"
	}
}

// Glyphs maps each cell state to the rune used to print it.
type Glyphs struct {
	Empty rune
	Wall  rune
	Body  rune
	Head  rune
	Food  rune
}

// DefaultGlyphs returns the classic block/circle glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Empty: ' ',
		Wall:  '■',
		Body:  '■',
		Head:  '●',
		Food:  '▣',
	}
}

// Rune returns the glyph for the given cell.
func (g Glyphs) Rune(c Cell) rune {
	switch c {
	case CellWall:
		return g.Wall
	case CellBody:
		return g.Body
	case CellHead:
		return g.Head
	case CellFood:
		return g.Food
	default:
		return g.Empty
	}
}

// Grid is a fixed-size cell buffer stored row-major in a flat slice.
// It is a shared drawing surface: the snake and food write into it every
// tick before it is printed.
type Grid struct {
	height int
	width  int
	cells  []Cell
}

// NewGrid creates a grid with walls on the outer ring and empty cells inside.
func NewGrid(height, width int) *Grid {
	g := &Grid{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if g.OnBorder(Point{Row: row, Col: col}) {
				g.cells[row*width+col] = CellWall
			}
		}
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// OnBorder reports whether p lies on the outer ring.
func (g *Grid) OnBorder(p Point) bool {
	return p.Row == 0 || p.Row == g.height-1 || p.Col == 0 || p.Col == g.width-1
}

// Set writes a cell. Out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(p Point, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Row*g.width+p.Col] = c
}

// At returns the cell at p. Anything outside the grid reads as wall.
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return CellWall
	}
	return g.cells[p.Row*g.width+p.Col]
}

// Count returns how many cells currently hold the given state.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{height: g.height, width: g.width, cells: cells}
}

// Row returns the printable form of a single row.
func (g *Grid) Row(row int, glyphs Glyphs) string {
	if row < 0 || row >= g.height {
		return ""
	}
	var sb strings.Builder
	sb.Grow(g.width * 3)
	for _, c := range g.cells[row*g.width : (row+1)*g.width] {
		sb.WriteRune(glyphs.Rune(c))
	}
	return sb.String()
}

// Rows returns every row in printable form, top to bottom.
func (g *Grid) Rows(glyphs Glyphs) []string {
	rows := make([]string, g.height)
	for row := range rows {
		rows[row] = g.Row(row, glyphs)
	}
	return rows
}

// Render returns the whole grid with every row newline-terminated.
func (g *Grid) Render(glyphs Glyphs) string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width*3 + 1))
	for row := 0; row < g.height; row++ {
		sb.WriteString(g.Row(row, glyphs))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the grid with the default glyphs.
func (g *Grid) String() string {
	return g.Render(DefaultGlyphs())
}
