// Package tui provides the Bubble Tea frontend and the SSH server that
// serves it via Wish.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ID is the registry id of this frontend.
const ID = "tea"

func init() {
	registry.Register(ID, func(opts registry.Options) registry.Frontend {
		return New(opts)
	})
}

// Frontend plays inside a Bubble Tea program on the local terminal.
type Frontend struct {
	opts    registry.Options
	options []tea.ProgramOption
}

// New creates a Bubble Tea frontend.
func New(opts registry.Options, options ...tea.ProgramOption) *Frontend {
	return &Frontend{opts: opts, options: options}
}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return ID }

// Title implements registry.Frontend.
func (f *Frontend) Title() string { return "Styled (Bubble Tea)" }

// Run implements registry.Frontend.
func (f *Frontend) Run(ctx context.Context, play registry.PlayFunc) (engine.Result, error) {
	model := NewModel(ctx, f.opts, play, false)

	p := tea.NewProgram(model, f.options...)
	final, err := p.Run()
	if err != nil {
		return engine.Result{}, fmt.Errorf("tea: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return engine.Result{}, fmt.Errorf("tea: unexpected final model %T", final)
	}
	return m.Result()
}
