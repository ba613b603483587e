// Package term is the default frontend: it puts the controlling terminal in
// raw mode, reads keys from stdin and prints every frame as plain text.
package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/cancelreader"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ID is the registry id of this frontend.
const ID = "term"

// escTimeout is how long a trailing ESC waits for the rest of a sequence
// before it counts as the Esc key.
const escTimeout = 50 * time.Millisecond

// ErrNotTerminal is returned when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("term: stdin is not a terminal")

func init() {
	registry.Register(ID, func(opts registry.Options) registry.Frontend {
		return New(opts)
	})
}

// Frontend plays on the controlling terminal.
type Frontend struct {
	opts   registry.Options
	in     *os.File
	out    io.Writer
	logger *log.Logger
}

// New creates a terminal frontend on stdin/stdout.
func New(opts registry.Options) *Frontend {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Frontend{
		opts:   opts,
		in:     os.Stdin,
		out:    os.Stdout,
		logger: opts.Logger.WithPrefix(ID),
	}
}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return ID }

// Title implements registry.Frontend.
func (f *Frontend) Title() string { return "Plain terminal" }

// Run implements registry.Frontend.
func (f *Frontend) Run(ctx context.Context, play registry.PlayFunc) (engine.Result, error) {
	fd := int(f.in.Fd())
	if !xterm.IsTerminal(fd) {
		return engine.Result{}, ErrNotTerminal
	}

	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return engine.Result{}, fmt.Errorf("term: enter raw mode: %w", err)
	}
	defer func() {
		if err := xterm.Restore(fd, state); err != nil {
			f.logger.Error("restore terminal", "error", err)
		}
	}()

	reader, err := cancelreader.NewReader(f.in)
	if err != nil {
		return engine.Result{}, fmt.Errorf("term: open input: %w", err)
	}
	defer reader.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := input.NewKeyState(f.opts.HoldWindow)
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		f.readKeys(reader, keys, cancel)
	}()

	io.WriteString(f.out, ansiHideCursor) //nolint:errcheck // Cosmetic
	defer io.WriteString(f.out, ansiShowCursor) //nolint:errcheck // Cosmetic

	res, err := play(ctx, keys, newDisplay(f.out, f.opts.Glyphs, f.opts.ClearMode))

	reader.Cancel()
	<-readDone
	return res, err
}

// readKeys feeds key presses into keys until the reader fails or is
// cancelled. A quit key calls quit instead. Bytes of an unfinished escape
// sequence wait up to escTimeout for the rest before being flushed.
func (f *Frontend) readKeys(r io.Reader, keys *input.KeyState, quit context.CancelFunc) {
	chunks := make(chan []byte)
	var readErr error
	go func() {
		defer close(chunks)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				chunks <- append([]byte(nil), buf[:n]...)
			}
			if err != nil {
				readErr = err
				return
			}
		}
	}()

	var dec keyDecoder
	var escTimer <-chan time.Time
	for {
		select {
		case b, ok := <-chunks:
			if !ok {
				f.press(dec.flush(), keys, quit)
				if !errors.Is(readErr, cancelreader.ErrCanceled) && !errors.Is(readErr, io.EOF) {
					f.logger.Error("read input", "error", readErr)
				}
				return
			}
			f.press(dec.feed(b), keys, quit)
			escTimer = nil
			if dec.hasPending() {
				escTimer = time.After(escTimeout)
			}
		case <-escTimer:
			escTimer = nil
			f.press(dec.flush(), keys, quit)
		}
	}
}

func (f *Frontend) press(ks []core.Key, keys *input.KeyState, quit context.CancelFunc) {
	for _, k := range ks {
		if f.opts.KeyMap.IsQuit(k) {
			f.logger.Debug("quit key", "key", k)
			quit()
			continue
		}
		keys.Press(k)
	}
}
