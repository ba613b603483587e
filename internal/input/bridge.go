package input

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Bridge polls a Keyboard at a fixed interval and forwards every key held at
// sample time as a discrete event. A key held across several samples is
// forwarded once per sample.
type Bridge struct {
	kb       Keyboard
	interval time.Duration
	events   chan core.Key
	logger   *log.Logger
}

// NewBridge creates a bridge whose event queue holds up to capacity keys.
func NewBridge(kb Keyboard, interval time.Duration, capacity int, logger *log.Logger) *Bridge {
	if interval <= 0 {
		interval = core.PollInterval
	}
	if capacity <= 0 {
		capacity = core.QueueCapacity
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bridge{
		kb:       kb,
		interval: interval,
		events:   make(chan core.Key, capacity),
		logger:   logger.WithPrefix("input"),
	}
}

// Events returns the receive side of the event queue.
func (b *Bridge) Events() <-chan core.Key {
	return b.events
}

// Run samples the keyboard until ctx is cancelled. A full queue blocks the
// bridge, never the consumer. Run returns nil on cancellation.
func (b *Bridge) Run(ctx context.Context) error {
	b.logger.Debug("bridge started", "interval", b.interval, "capacity", cap(b.events))
	defer b.logger.Debug("bridge stopped")

	timer := time.NewTimer(b.interval)
	defer timer.Stop()

	for {
		for _, k := range b.kb.PressedKeys() {
			select {
			case b.events <- k:
			case <-ctx.Done():
				return nil
			}
		}

		timer.Reset(b.interval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil
		}
	}
}

// Drain returns every event currently queued without waiting for more.
func Drain(events <-chan core.Key) []core.Key {
	var keys []core.Key
	for {
		select {
		case k, ok := <-events:
			if !ok {
				return keys
			}
			keys = append(keys, k)
		default:
			return keys
		}
	}
}
