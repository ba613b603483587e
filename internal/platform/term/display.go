package term

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ANSI sequences written to the terminal.
const (
	ansiClear      = "\x1b[H\x1b[2J"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// display prints frames as plain text. Lines end in CRLF because the
// terminal is in raw mode while the game runs.
type display struct {
	out    io.Writer
	glyphs core.Glyphs
	clear  func() error
}

func newDisplay(out io.Writer, glyphs core.Glyphs, mode string) *display {
	d := &display{out: out, glyphs: glyphs}
	if mode == "ansi" {
		d.clear = d.clearANSI
	} else {
		d.clear = d.clearShell
	}
	return d
}

// Clear implements engine.Display.
func (d *display) Clear() error {
	return d.clear()
}

// Draw implements engine.Display.
func (d *display) Draw(g *core.Grid) error {
	frame := strings.Join(g.Rows(d.glyphs), "\r\n") + "\r\n"
	if _, err := io.WriteString(d.out, frame); err != nil {
		return fmt.Errorf("term: write frame: %w", err)
	}
	return nil
}

// Message implements engine.Display.
func (d *display) Message(msg string) error {
	if _, err := io.WriteString(d.out, msg+"\r\n"); err != nil {
		return fmt.Errorf("term: write message: %w", err)
	}
	return nil
}

func (d *display) clearANSI() error {
	if _, err := io.WriteString(d.out, ansiClear); err != nil {
		return fmt.Errorf("term: clear: %w", err)
	}
	return nil
}

// clearShell runs the platform's clear command against the output.
func (d *display) clearShell() error {
	cmd := clearCommand()
	cmd.Stdout = d.out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("term: run %s: %w", cmd.Path, err)
	}
	return nil
}

func clearCommand() *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/c", "cls")
	}
	return exec.Command("clear")
}
