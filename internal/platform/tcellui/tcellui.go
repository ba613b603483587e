// Package tcellui is a frontend built on tcell. It draws colored cells on
// the alternate screen and, once the screen is released, prints the final
// frame and message to stdout so they stay visible.
package tcellui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ID is the registry id of this frontend.
const ID = "tcell"

func init() {
	registry.Register(ID, func(opts registry.Options) registry.Frontend {
		return New(opts)
	})
}

// colorStyles maps core.Color to tcell styles.
var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorBrightGreen: tcell.StyleDefault.Foreground(tcell.ColorLime),
	core.ColorBrightRed:   tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// Frontend plays on a tcell screen.
type Frontend struct {
	opts      registry.Options
	newScreen func() (tcell.Screen, error)
	out       io.Writer
	logger    *log.Logger
}

// New creates a tcell frontend on the real terminal.
func New(opts registry.Options) *Frontend {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Frontend{
		opts:      opts,
		newScreen: tcell.NewScreen,
		out:       os.Stdout,
		logger:    opts.Logger.WithPrefix(ID),
	}
}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return ID }

// Title implements registry.Frontend.
func (f *Frontend) Title() string { return "Colored (tcell)" }

// Run implements registry.Frontend.
func (f *Frontend) Run(ctx context.Context, play registry.PlayFunc) (engine.Result, error) {
	s, err := f.newScreen()
	if err != nil {
		return engine.Result{}, fmt.Errorf("tcell: create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return engine.Result{}, fmt.Errorf("tcell: init screen: %w", err)
	}
	s.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := input.NewKeyState(f.opts.HoldWindow)
	pollDone := make(chan struct{})
	go func() {
		defer close(pollDone)
		f.pollEvents(s, keys, cancel)
	}()

	d := newDisplay(s, f.opts.Glyphs)
	res, err := play(ctx, keys, d)

	// Fini makes PollEvent return nil, which ends the poller.
	s.Fini()
	<-pollDone

	if werr := d.flush(f.out); werr != nil {
		f.logger.Error("print final frame", "error", werr)
	}
	return res, err
}

// pollEvents feeds key events into keys until the screen is finalized.
func (f *Frontend) pollEvents(s tcell.Screen, keys *input.KeyState, quit context.CancelFunc) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			k, ok := keyFromEvent(ev.Key(), ev.Rune())
			if !ok {
				continue
			}
			if f.opts.KeyMap.IsQuit(k) {
				f.logger.Debug("quit key", "key", k)
				quit()
				continue
			}
			keys.Press(k)
		case *tcell.EventResize:
			s.Sync()
		}
	}
}

// keyFromEvent converts a tcell key to a key name.
func keyFromEvent(k tcell.Key, r rune) (core.Key, bool) {
	switch k {
	case tcell.KeyRune:
		return core.KeyFromRune(r).Normalize(), true
	case tcell.KeyUp:
		return core.KeyUp, true
	case tcell.KeyDown:
		return core.KeyDown, true
	case tcell.KeyLeft:
		return core.KeyLeft, true
	case tcell.KeyRight:
		return core.KeyRight, true
	case tcell.KeyCtrlC:
		return core.KeyCtrlC, true
	case tcell.KeyEscape:
		return core.KeyEsc, true
	}
	return "", false
}

// display draws on a tcell screen and remembers the last frame and message
// so they can be printed after the screen is released.
type display struct {
	screen tcell.Screen
	glyphs core.Glyphs

	mu      sync.Mutex
	last    string
	message string
}

func newDisplay(s tcell.Screen, glyphs core.Glyphs) *display {
	return &display{screen: s, glyphs: glyphs}
}

// Clear implements engine.Display.
func (d *display) Clear() error {
	d.screen.Clear()
	return nil
}

// Draw implements engine.Display.
func (d *display) Draw(g *core.Grid) error {
	for row, h := 0, g.Height(); row < h; row++ {
		for col, w := 0, g.Width(); col < w; col++ {
			cell := g.At(core.Pt(row, col))
			style, ok := colorStyles[cell.Color()]
			if !ok {
				style = tcell.StyleDefault
			}
			d.screen.SetContent(col, row, d.glyphs.Rune(cell), nil, style)
		}
	}
	d.screen.Show()

	d.mu.Lock()
	d.last = g.Render(d.glyphs)
	d.mu.Unlock()
	return nil
}

// Message implements engine.Display.
func (d *display) Message(msg string) error {
	_, h := d.screen.Size()
	d.mu.Lock()
	row := strings.Count(d.last, "\n")
	d.message = msg
	d.mu.Unlock()

	if row >= h {
		row = h - 1
	}
	for i, r := range []rune(msg) {
		d.screen.SetContent(i, row, r, nil, tcell.StyleDefault.Bold(true))
	}
	d.screen.Show()
	return nil
}

// flush prints the last frame and message.
func (d *display) flush(out io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.last == "" {
		return nil
	}
	text := d.last
	if d.message != "" {
		text += d.message + "\n"
	}
	_, err := io.WriteString(out, text)
	return err
}
