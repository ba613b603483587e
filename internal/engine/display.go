// Package engine runs the fixed-period simulation loop: it drains input,
// advances the game, redraws the display and stops on game over.
package engine

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameOverMessage is the final line emitted when the game ends.
const GameOverMessage = "Game Over!"

// ErrClear wraps display clear failures. A failed clear ends the run.
var ErrClear = errors.New("engine: display clear failed")

// Display is where frames go. Draw must not retain the grid after it
// returns; the loop keeps mutating it.
type Display interface {
	// Clear wipes the terminal before a frame is drawn.
	Clear() error
	// Draw prints the whole grid.
	Draw(g *core.Grid) error
	// Message prints a line of text after the last frame.
	Message(msg string) error
}

// MultiDisplay fans every call out to several displays. The first display
// is authoritative: its errors are returned, the others are best-effort.
type MultiDisplay []Display

// Clear implements Display.
func (m MultiDisplay) Clear() error {
	return m.each(func(d Display) error { return d.Clear() })
}

// Draw implements Display.
func (m MultiDisplay) Draw(g *core.Grid) error {
	return m.each(func(d Display) error { return d.Draw(g) })
}

// Message implements Display.
func (m MultiDisplay) Message(msg string) error {
	return m.each(func(d Display) error { return d.Message(msg) })
}

func (m MultiDisplay) each(fn func(Display) error) error {
	var first error
	for i, d := range m {
		if err := fn(d); err != nil && i == 0 {
			first = err
		}
	}
	return first
}
