// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no terminal libraries) to
// keep game logic pure and testable.
package core

// Point is a grid coordinate. Row grows downwards, Col grows to the right.
type Point struct {
	Row, Col int
}

// Pt is shorthand for Point{Row: row, Col: col}.
func Pt(row, col int) Point {
	return Point{Row: row, Col: col}
}

// Add returns the point shifted by the given delta.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Direction is one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{Row: -1}
	case DirDown:
		return Point{Row: 1}
	case DirLeft:
		return Point{Col: -1}
	case DirRight:
		return Point{Col: 1}
	default:
		return Point{}
	}
}

// Opposite returns the direct reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether d and other point in opposite directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
