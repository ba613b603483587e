package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/input"
)

// Result summarizes a finished run.
type Result struct {
	Ticks    uint64
	Length   int
	Eaten    int
	Cause    snake.Cause
	Duration time.Duration
}

// Loop is the consumer side of the input queue and the sole owner of the
// game state while it runs.
type Loop struct {
	game    *snake.Game
	display Display
	events  <-chan core.Key
	keymap  input.KeyMap
	logger  *log.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewLoop wires a game to its display and input queue.
func NewLoop(game *snake.Game, display Display, events <-chan core.Key, keymap input.KeyMap, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		game:    game,
		display: display,
		events:  events,
		keymap:  keymap,
		logger:  logger.WithPrefix("engine"),
		now:     time.Now,
		sleep:   sleepContext,
	}
}

// Run ticks the game until it ends, the display fails, or ctx is cancelled.
// Each tick starts no sooner than one tick period after the previous one;
// an overrun tick is followed immediately by the next without catch-up.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	start := l.now()
	last := start
	period := l.game.TickPeriod()
	l.logger.Info("game started", "period", period)

	for {
		if err := ctx.Err(); err != nil {
			return l.result(start), err
		}
		if wait := period - l.now().Sub(last); wait > 0 {
			if err := l.sleep(ctx, wait); err != nil {
				return l.result(start), err
			}
		}
		last = l.now()

		over, err := l.tick()
		if err != nil {
			l.logger.Error("tick failed", "error", err)
			return l.result(start), err
		}
		if over {
			res := l.result(start)
			l.logger.Info("game over", "cause", res.Cause, "ticks", res.Ticks, "length", res.Length)
			if err := l.display.Message(GameOverMessage); err != nil {
				return res, fmt.Errorf("engine: print game over: %w", err)
			}
			return res, nil
		}
	}
}

// tick runs one simulation step and reports whether the game is over.
func (l *Loop) tick() (bool, error) {
	keys := input.Drain(l.events)
	dir := l.game.Steer(l.keymap.Directions(keys))

	if l.game.Advance() {
		l.logger.Debug("food eaten", "length", l.game.Snake().Len())
	}

	if err := l.display.Clear(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrClear, err)
	}

	grid := l.game.Compose()
	if err := l.display.Draw(grid); err != nil {
		return false, fmt.Errorf("engine: draw frame: %w", err)
	}

	over := l.game.Check()
	if l.logger.GetLevel() <= log.DebugLevel {
		snap := l.game.Snapshot()
		l.logger.Debug("tick", "n", snap.Tick, "keys", len(keys), "dir", dir,
			"head", fmt.Sprintf("%d,%d", snap.HeadRow, snap.HeadCol), "len", snap.SnakeLen)
	}
	return over, nil
}

func (l *Loop) result(start time.Time) Result {
	snap := l.game.Snapshot()
	return Result{
		Ticks:    snap.Tick,
		Length:   snap.SnakeLen,
		Eaten:    snap.FoodEaten,
		Cause:    snap.Cause,
		Duration: l.now().Sub(start),
	}
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
