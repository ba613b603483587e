package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/app"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFrontend != "" {
		cfg.Frontend = flagFrontend
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the logger. Logs go to the configured file, or to
// fallback when no file is set.
func newLogger(cfg config.SnakeConfig, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if cfg.Log.File != "" {
		path, err := config.ExpandHome(cfg.Log.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           cfg.LogLevel(),
	})
	return logger, closeFn, nil
}

// frontendOptions converts the config into the settings frontends share.
func frontendOptions(cfg config.SnakeConfig, logger *log.Logger) registry.Options {
	return registry.Options{
		Glyphs:     cfg.GlyphSet(),
		KeyMap:     cfg.KeyMap(),
		HoldWindow: cfg.HoldWindow(),
		ClearMode:  cfg.Display.Clear,
		Logger:     logger,
	}
}

// gameOptions converts the config into the settings for one game.
func gameOptions(cfg config.SnakeConfig, seed int64, logger *log.Logger) app.Options {
	rc := core.DefaultConfig()
	rc.Seed = seed
	return app.Options{
		Runtime:   rc,
		Placement: cfg.Placement(),
		KeyMap:    cfg.KeyMap(),
		Logger:    logger,
	}
}

// resolveSeed returns the --seed flag, or a time-based seed when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
