package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Frontend: "term",
		Controls: ControlsConfig{
			Up:    []string{"w", "up"},
			Down:  []string{"s", "down"},
			Left:  []string{"a", "left"},
			Right: []string{"d", "right"},
			Quit:  []string{"ctrl+c", "esc"},
		},
		Glyphs: GlyphsConfig{
			Empty: " ",
			Wall:  "■",
			Body:  "■",
			Head:  "●",
			Food:  "▣",
		},
		Food: FoodConfig{
			Placement: "avoid-snake",
		},
		Display: DisplayConfig{
			Clear: ClearShell,
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
