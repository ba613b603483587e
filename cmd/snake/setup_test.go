package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagFrontend, flagLogFile, flagLogLevel = "", "", "", ""
		flagSeed = 0
	})
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("frontend: tea\nlog:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	flagConfig = path
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Frontend != "tea" || cfg.LogLevel() != log.WarnLevel {
		t.Errorf("loadConfig() = frontend %q level %v, expected the file values", cfg.Frontend, cfg.LogLevel())
	}

	flagFrontend = "tcell"
	flagLogLevel = "debug"
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Frontend != "tcell" || cfg.LogLevel() != log.DebugLevel {
		t.Errorf("loadConfig() = frontend %q level %v, expected the flag values", cfg.Frontend, cfg.LogLevel())
	}

	flagLogLevel = "shouting"
	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() should reject an invalid --log-level")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "logs", "snake.log")
	flagConfig = filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(flagConfig, []byte("{}\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	flagLogFile = path

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}

	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "snake") {
		t.Errorf("log file = %q, expected the prefixed message", data)
	}
}

func TestGameOptionsUseFixedBoard(t *testing.T) {
	resetFlags(t)

	flagConfig = filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(flagConfig, []byte("{}\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}

	opts := gameOptions(cfg, 42, nil)
	if opts.Runtime.Height != core.BoardHeight || opts.Runtime.Width != core.BoardWidth {
		t.Errorf("board = %dx%d, expected %dx%d", opts.Runtime.Height, opts.Runtime.Width, core.BoardHeight, core.BoardWidth)
	}
	if opts.Runtime.TickPeriod != core.TickPeriod || opts.Runtime.Seed != 42 {
		t.Errorf("runtime = %+v, expected the fixed tick period and seed 42", opts.Runtime)
	}

	fo := frontendOptions(cfg, nil)
	if fo.Glyphs != core.DefaultGlyphs() || fo.ClearMode != "shell" {
		t.Errorf("frontendOptions() = %+v, expected default glyphs and shell clear", fo)
	}
}

func TestResolveSeed(t *testing.T) {
	resetFlags(t)

	flagSeed = 7
	if resolveSeed() != 7 {
		t.Errorf("resolveSeed() = %d, expected 7", resolveSeed())
	}
	flagSeed = 0
	if resolveSeed() == 0 {
		t.Error("resolveSeed() should pick a time-based seed when unset")
	}
}

func TestFrontendsRegistered(t *testing.T) {
	for _, id := range []string{"term", "tcell", "tea"} {
		if !registry.Exists(id) {
			t.Errorf("frontend %q is not registered", id)
		}
	}
}

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:2222", "ssh localhost -p 2222"},
		{"example.com:4000", "ssh example.com -p 4000"},
		{"example.com:22", "ssh example.com"},
	}

	for _, tc := range tests {
		if got := connectHint(tc.addr); got != tc.expected {
			t.Errorf("connectHint(%q) = %q, expected %q", tc.addr, got, tc.expected)
		}
	}
}
