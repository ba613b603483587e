// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the CLI to
// discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/input"
)

// PlayFunc runs one game against a keyboard and a display until it ends or
// ctx is cancelled.
type PlayFunc func(ctx context.Context, kb input.Keyboard, d engine.Display) (engine.Result, error)

// Frontend owns a terminal for the duration of a game.
// It provides the Keyboard and Display a PlayFunc needs and restores the
// terminal when the game is over.
type Frontend interface {
	// ID returns a unique identifier (e.g., "term", "tcell").
	// Used for the --frontend flag and the config file.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run acquires the terminal, runs play and releases the terminal.
	// A quit key cancels the context passed to play.
	Run(ctx context.Context, play PlayFunc) (engine.Result, error)
}

// Options are the settings shared by every frontend.
type Options struct {
	Glyphs     core.Glyphs
	KeyMap     input.KeyMap
	HoldWindow time.Duration
	ClearMode  string // "shell" or "ansi"; only the term frontend uses it
	Logger     *log.Logger
}

// DefaultOptions returns options matching the built-in configuration.
func DefaultOptions() Options {
	return Options{
		Glyphs:     core.DefaultGlyphs(),
		KeyMap:     input.DefaultKeyMap(),
		HoldWindow: input.DefaultHoldWindow,
		ClearMode:  "shell",
		Logger:     log.New(io.Discard),
	}
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory creates a frontend configured with opts.
type Factory func(opts Options) Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(DefaultOptions()).Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
// Returns an error if the ID is not registered.
func Create(id string, opts Options) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return f(opts), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
