package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap binds key names to steering directions and to quitting.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns WASD plus arrow-key steering, with Ctrl+C and Esc
// to quit.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(
		[]string{"w", "up"},
		[]string{"s", "down"},
		[]string{"a", "left"},
		[]string{"d", "right"},
		[]string{"ctrl+c", "esc"},
	)
}

// NewKeyMap builds a key map from key name lists.
func NewKeyMap(up, down, left, right, quit []string) KeyMap {
	return KeyMap{
		Up:    binding(up, "up"),
		Down:  binding(down, "down"),
		Left:  binding(left, "left"),
		Right: binding(right, "right"),
		Quit:  binding(quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	normalized := make([]string, len(keys))
	for i, k := range keys {
		normalized[i] = string(core.Key(k).Normalize())
	}
	return key.NewBinding(
		key.WithKeys(normalized...),
		key.WithHelp(strings.Join(normalized, "/"), desc),
	)
}

// matches reports whether k is one of the binding's keys.
func matches(b key.Binding, k core.Key) bool {
	if !b.Enabled() {
		return false
	}
	name := string(k.Normalize())
	for _, bk := range b.Keys() {
		if bk == name {
			return true
		}
	}
	return false
}

// Direction maps a key to a steering direction. Unbound keys report false.
func (km KeyMap) Direction(k core.Key) (core.Direction, bool) {
	switch {
	case matches(km.Up, k):
		return core.DirUp, true
	case matches(km.Down, k):
		return core.DirDown, true
	case matches(km.Left, k):
		return core.DirLeft, true
	case matches(km.Right, k):
		return core.DirRight, true
	}
	return 0, false
}

// Directions maps keys to directions in order, skipping unbound keys.
func (km KeyMap) Directions(keys []core.Key) []core.Direction {
	dirs := make([]core.Direction, 0, len(keys))
	for _, k := range keys {
		if d, ok := km.Direction(k); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// IsQuit reports whether k is bound to quitting.
func (km KeyMap) IsQuit(k core.Key) bool {
	return matches(km.Quit, k)
}

// ShortHelp returns the bindings in display order.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Left, km.Down, km.Right, km.Quit}
}
