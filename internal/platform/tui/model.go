package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// frameMsg carries one drawn frame from the simulation loop.
type frameMsg struct {
	view  string // styled
	plain string // glyphs only, for screenshots
}

// messageMsg carries the text printed after the last frame.
type messageMsg string

// doneMsg is sent once the play function returns.
type doneMsg struct {
	result engine.Result
	err    error
}

// channelDisplay hands frames to the Bubble Tea program. The simulation
// loop runs outside the program, so every call is a message send.
type channelDisplay struct {
	ctx    context.Context
	out    chan<- tea.Msg
	glyphs core.Glyphs
}

// Clear implements engine.Display. Every View replaces the whole frame, so
// there is nothing to wipe.
func (d *channelDisplay) Clear() error {
	return d.ctx.Err()
}

// Draw implements engine.Display.
func (d *channelDisplay) Draw(g *core.Grid) error {
	return d.send(frameMsg{view: RenderGrid(g, d.glyphs), plain: g.Render(d.glyphs)})
}

// Message implements engine.Display.
func (d *channelDisplay) Message(msg string) error {
	return d.send(messageMsg(msg))
}

func (d *channelDisplay) send(msg tea.Msg) error {
	select {
	case d.out <- msg:
		return nil
	case <-d.ctx.Done():
		return d.ctx.Err()
	}
}

// Model is the Bubble Tea model for one game. Key presses feed a KeyState
// polled by the input bridge; frames come back from the loop as messages.
type Model struct {
	opts   registry.Options
	play   registry.PlayFunc
	ctx    context.Context
	cancel context.CancelFunc
	keys   *input.KeyState
	events chan tea.Msg
	done   chan doneMsg
	help   help.Model
	logger *log.Logger

	view    string
	plain   string
	message string
	result  engine.Result
	err     error

	holdOnExit bool // wait for a key after game over instead of quitting
	finished   bool
	quitting   bool
}

// NewModel creates a model that runs play when the program starts.
// Cancelling ctx ends the game.
func NewModel(ctx context.Context, opts registry.Options, play registry.PlayFunc, holdOnExit bool) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	ctx, cancel := context.WithCancel(ctx)
	return Model{
		opts:       opts,
		play:       play,
		ctx:        ctx,
		cancel:     cancel,
		keys:       input.NewKeyState(opts.HoldWindow),
		events:     make(chan tea.Msg),
		done:       make(chan doneMsg, 1),
		help:       help.New(),
		logger:     opts.Logger.WithPrefix(ID),
		holdOnExit: holdOnExit,
	}
}

// Init starts the game.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.runPlay(), m.waitForEvent())
}

// runPlay runs the play function to completion off the program's goroutine.
func (m Model) runPlay() tea.Cmd {
	return func() tea.Msg {
		d := &channelDisplay{ctx: m.ctx, out: m.events, glyphs: m.opts.Glyphs}
		res, err := m.play(m.ctx, m.keys, d)
		m.done <- doneMsg{result: res, err: err}
		return nil
	}
}

// waitForEvent delivers the next frame, message or completion.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.events:
			return msg
		case d := <-m.done:
			return d
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		m.view = msg.view
		m.plain = msg.plain
		return m, m.waitForEvent()

	case messageMsg:
		m.message = string(msg)
		return m, m.waitForEvent()

	case doneMsg:
		m.finished = true
		m.result = msg.result
		m.err = msg.err
		m.cancel()
		m.logger.Debug("game finished", "ticks", msg.result.Ticks, "error", msg.err)
		if m.quitting || !m.holdOnExit {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.finished {
		// Any key leaves the game over screen
		m.quitting = true
		return m, tea.Quit
	}

	k := core.Key(msg.String()).Normalize()
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
	case m.opts.KeyMap.IsQuit(k):
		// Quit once the loop has stopped
		m.quitting = true
		m.cancel()
	default:
		m.keys.Press(k)
	}
	return m, nil
}

// saveScreenshot saves the current frame to a file.
func (m Model) saveScreenshot() {
	if m.plain == "" {
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.plain), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.view)

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(messageStyle.Render(m.message))
	}

	switch {
	case m.finished && m.holdOnExit:
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("press any key to leave"))
	case !m.finished && m.view != "":
		b.WriteString("\n")
		b.WriteString(m.help.ShortHelpView(m.opts.KeyMap.ShortHelp()))
	}

	if m.finished && !m.holdOnExit {
		b.WriteString("\n")
	}
	return b.String()
}

// Result returns the outcome once the program has exited.
func (m Model) Result() (engine.Result, error) {
	return m.result, m.err
}
