package core

import "time"

// Board and pacing constants. They are fixed for the process lifetime.
const (
	BoardHeight = 25
	BoardWidth  = 100

	TickPeriod    = 200 * time.Millisecond
	PollInterval  = 10 * time.Millisecond
	QueueCapacity = 100
)

// RuntimeConfig contains configuration passed to a game at creation.
type RuntimeConfig struct {
	Height     int           // Grid rows, including the wall ring
	Width      int           // Grid columns, including the wall ring
	TickPeriod time.Duration // Time between simulation ticks
	Seed       int64         // RNG seed for food placement
}

// DefaultConfig returns a RuntimeConfig for the standard 25x100 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Height:     BoardHeight,
		Width:      BoardWidth,
		TickPeriod: TickPeriod,
		Seed:       0, // 0 means use current time in platform layer
	}
}
