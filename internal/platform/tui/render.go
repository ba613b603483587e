package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	messageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderGrid converts a grid to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderGrid(g *core.Grid, glyphs core.Glyphs) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(g.Width()*g.Height()*2 + g.Height())

	for row, h := 0, g.Height(); row < h; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		col := 0
		for col < g.Width() {
			startColor := g.At(core.Pt(row, col)).Color()

			// Collect consecutive cells with same color
			var run strings.Builder
			for col < g.Width() {
				cell := g.At(core.Pt(row, col))
				if cell.Color() != startColor {
					break
				}
				run.WriteRune(glyphs.Rune(cell))
				col++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
