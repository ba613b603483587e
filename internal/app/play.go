// Package app wires a game, the input bridge and the simulation loop into a
// play function that any frontend can run.
package app

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Options configures one game.
type Options struct {
	Runtime   core.RuntimeConfig
	Placement snake.Placement
	KeyMap    input.KeyMap

	// PollInterval and QueueCapacity tune the input bridge. Zero values use
	// core.PollInterval and core.QueueCapacity.
	PollInterval  time.Duration
	QueueCapacity int

	// Spectators receive a copy of every frame. Optional.
	Spectators engine.Display

	Logger *log.Logger
}

// PlayFunc returns a registry.PlayFunc that plays one game with opts.
func PlayFunc(opts Options) registry.PlayFunc {
	return func(ctx context.Context, kb input.Keyboard, d engine.Display) (engine.Result, error) {
		return Play(ctx, opts, kb, d)
	}
}

// Play runs the input bridge and the simulation loop side by side until the
// game ends. The bridge is stopped as soon as the loop returns. A quit
// (cancelled ctx) is reported as context.Canceled together with the partial
// result.
func Play(ctx context.Context, opts Options, kb input.Keyboard, d engine.Display) (engine.Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Spectators != nil {
		d = engine.MultiDisplay{d, opts.Spectators}
	}

	game := snake.New(opts.Runtime, opts.Placement)
	bridge := input.NewBridge(kb, opts.PollInterval, opts.QueueCapacity, logger)
	loop := engine.NewLoop(game, d, bridge.Events(), opts.KeyMap, logger)

	g, gctx := errgroup.WithContext(ctx)
	bridgeCtx, stopBridge := context.WithCancel(gctx)
	defer stopBridge()

	g.Go(func() error {
		return bridge.Run(bridgeCtx)
	})

	var res engine.Result
	g.Go(func() error {
		defer stopBridge()
		r, err := loop.Run(gctx)
		res = r
		return err
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game aborted", "error", err)
		return res, err
	}
	if ctx.Err() != nil {
		logger.Info("game quit", "ticks", res.Ticks, "length", res.Length)
		return res, ctx.Err()
	}
	return res, nil
}
