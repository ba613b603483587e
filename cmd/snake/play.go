package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/app"
	"github.com/vovakirdan/tui-snake/internal/platform/spectate"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var flagSpectate string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the configured frontend.

Controls:
  W/Up      - Move up
  S/Down    - Move down
  A/Left    - Move left
  D/Right   - Move right
  Esc/Ctrl+C - Quit

The snake cannot reverse onto itself; a request for the opposite
direction is ignored. The game ends when the head hits a wall or
the body, and "Game Over!" is printed under the last frame.

Frontends:
  term   - Plain text, cleared and redrawn every tick (default)
  tcell  - Colored cells on the alternate screen
  tea    - Styled Bubble Tea view

Examples:
  snake play
  snake play --frontend tcell
  snake play --seed 42
  snake play --spectate :8081   # watch with any websocket client`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve frames to websocket viewers on this address")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The grid owns the terminal; without a log file logs are discarded
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	if !registry.Exists(cfg.Frontend) {
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available frontends.")
		return fmt.Errorf("unknown frontend %q", cfg.Frontend)
	}
	fe, err := registry.Create(cfg.Frontend, frontendOptions(cfg, logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := resolveSeed()
	opts := gameOptions(cfg, seed, logger)

	if flagSpectate != "" {
		hub := spectate.NewHub(cfg.GlyphSet(), logger)
		srv, err := spectate.Listen(flagSpectate, hub)
		if err != nil {
			return err
		}
		spectateCtx, stopSpectate := context.WithCancel(ctx)
		defer stopSpectate()
		go func() {
			if err := srv.Serve(spectateCtx); err != nil {
				logger.Error("spectator server", "error", err)
			}
		}()
		opts.Spectators = hub
	}

	logger.Info("starting game", "frontend", fe.ID(), "seed", seed, "placement", opts.Placement)

	res, err := fe.Run(ctx, app.PlayFunc(opts))
	if errors.Is(err, context.Canceled) {
		logger.Info("quit", "ticks", res.Ticks, "length", res.Length)
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("finished",
		"cause", res.Cause,
		"ticks", res.Ticks,
		"length", res.Length,
		"eaten", res.Eaten,
		"duration", res.Duration,
	)
	return nil
}
