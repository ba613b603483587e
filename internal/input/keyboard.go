// Package input samples keyboard state and forwards key events to the
// simulation loop over a buffered channel.
package input

import (
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Keyboard reports which keys are currently held down.
type Keyboard interface {
	PressedKeys() []core.Key
}

// DefaultHoldWindow is how long a key counts as held after its last press
// or auto-repeat event.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyState turns a stream of terminal key presses into a pollable set of
// held keys. Terminals report presses and auto-repeats but never releases,
// so a key stays held until hold has passed without a new event for it.
// It is safe for concurrent use: frontends call Press from their event
// goroutine while the bridge polls PressedKeys.
type KeyState struct {
	mu   sync.Mutex
	hold time.Duration
	now  func() time.Time
	last map[core.Key]time.Time
}

// NewKeyState creates an empty key state with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyState{
		hold: hold,
		now:  time.Now,
		last: make(map[core.Key]time.Time),
	}
}

// Press records a press or auto-repeat of the key.
func (ks *KeyState) Press(k core.Key) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	ks.last[k] = ks.now()
}

// Release forgets the key immediately.
func (ks *KeyState) Release(k core.Key) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	delete(ks.last, k)
}

// PressedKeys returns held keys ordered from least to most recently pressed,
// so the newest key is forwarded last. Expired keys are dropped.
func (ks *KeyState) PressedKeys() []core.Key {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	now := ks.now()
	keys := make([]core.Key, 0, len(ks.last))
	for k, at := range ks.last {
		if now.Sub(at) > ks.hold {
			delete(ks.last, k)
			continue
		}
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		ti, tj := ks.last[keys[i]], ks.last[keys[j]]
		if ti.Equal(tj) {
			return keys[i] < keys[j]
		}
		return ti.Before(tj)
	})
	return keys
}
