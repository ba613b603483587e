package core

// Color represents a foreground color for a grid cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorBrightRed
	ColorGray
)

// Color returns the color a cell is drawn with by colored frontends.
func (c Cell) Color() Color {
	switch c {
	case CellWall:
		return ColorGray
	case CellBody:
		return ColorGreen
	case CellHead:
		return ColorBrightGreen
	case CellFood:
		return ColorBrightRed
	default:
		return ColorDefault
	}
}
