// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play with the configured frontend
//	snake play               - Same as above
//	snake list               - List available frontends
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snake/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--frontend <id>     - Frontend to play with (term, tcell, tea)
//	--log-file <path>   - Write logs to this file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/tcellui"
	_ "github.com/vovakirdan/tui-snake/internal/platform/term"
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFrontend string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake runs on a fixed 25x100 board. Steer with WASD or the arrow
keys, eat food to grow and avoid the walls and your own body.

Available commands:
  play     - Play a game (default)
  list     - Show all available frontends
  serve    - Start SSH server for remote play

Examples:
  snake
  snake play --frontend tcell
  snake play --seed 42 --spectate :8081
  snake serve --ssh :2222`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagFrontend, "frontend", "", "Frontend id (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}
