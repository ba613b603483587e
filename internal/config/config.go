// Package config provides YAML-based configuration loading for the snake
// game. Board size and tick period are fixed and deliberately absent.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/input"
)

// SnakeConfig contains all user-tunable settings.
type SnakeConfig struct {
	Frontend string         `yaml:"frontend"`
	Controls ControlsConfig `yaml:"controls"`
	Glyphs   GlyphsConfig   `yaml:"glyphs"`
	Food     FoodConfig     `yaml:"food"`
	Display  DisplayConfig  `yaml:"display"`
	Input    InputConfig    `yaml:"input"`
	Log      LogConfig      `yaml:"log"`
}

// ControlsConfig lists the key names bound to each action.
type ControlsConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// GlyphsConfig holds the single-character symbol printed for each cell.
type GlyphsConfig struct {
	Empty string `yaml:"empty"`
	Wall  string `yaml:"wall"`
	Body  string `yaml:"body"`
	Head  string `yaml:"head"`
	Food  string `yaml:"food"`
}

// FoodConfig selects the food placement policy.
type FoodConfig struct {
	Placement string `yaml:"placement"` // "avoid-snake" or "uniform"
}

// DisplayConfig controls how the plain terminal frontend clears the screen.
type DisplayConfig struct {
	Clear string `yaml:"clear"` // "shell" runs clear/cls, "ansi" writes an escape sequence
}

// InputConfig tunes keyboard sampling.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a key counts as held after its last event
}

// LogConfig sets where diagnostics go. The grid owns the terminal, so an
// empty file discards logs while playing.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Clear modes for DisplayConfig.
const (
	ClearShell = "shell"
	ClearANSI  = "ansi"
)

// Validate checks the configuration for values the game cannot use.
func (c SnakeConfig) Validate() error {
	bindings := map[string][]string{
		"up":    c.Controls.Up,
		"down":  c.Controls.Down,
		"left":  c.Controls.Left,
		"right": c.Controls.Right,
	}
	for name, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("config: no keys bound to %s", name)
		}
	}

	glyphs := map[string]string{
		"empty": c.Glyphs.Empty,
		"wall":  c.Glyphs.Wall,
		"body":  c.Glyphs.Body,
		"head":  c.Glyphs.Head,
		"food":  c.Glyphs.Food,
	}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: glyph %s must be exactly one character, got %q", name, g)
		}
	}

	if _, err := snake.ParsePlacement(c.Food.Placement); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	switch c.Display.Clear {
	case ClearShell, ClearANSI:
	default:
		return fmt.Errorf("config: unknown clear mode %q", c.Display.Clear)
	}

	if c.Input.HoldMS < 0 {
		return fmt.Errorf("config: hold_ms must not be negative, got %d", c.Input.HoldMS)
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// KeyMap builds the steering key map.
func (c SnakeConfig) KeyMap() input.KeyMap {
	return input.NewKeyMap(c.Controls.Up, c.Controls.Down, c.Controls.Left, c.Controls.Right, c.Controls.Quit)
}

// GlyphSet converts the glyph strings to runes. Call Validate first.
func (c SnakeConfig) GlyphSet() core.Glyphs {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	return core.Glyphs{
		Empty: first(c.Glyphs.Empty),
		Wall:  first(c.Glyphs.Wall),
		Body:  first(c.Glyphs.Body),
		Head:  first(c.Glyphs.Head),
		Food:  first(c.Glyphs.Food),
	}
}

// Placement returns the parsed food placement policy.
func (c SnakeConfig) Placement() snake.Placement {
	p, err := snake.ParsePlacement(c.Food.Placement)
	if err != nil {
		return snake.PlacementAvoidSnake
	}
	return p
}

// HoldWindow returns the key hold window as a duration.
func (c SnakeConfig) HoldWindow() time.Duration {
	if c.Input.HoldMS <= 0 {
		return input.DefaultHoldWindow
	}
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}

// LogLevel returns the parsed log level, defaulting to info.
func (c SnakeConfig) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
