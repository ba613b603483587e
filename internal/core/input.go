package core

import "strings"

// Key names a physical key as reported by a frontend, using Bubble Tea's
// naming ("w", "up", "ctrl+c").
type Key string

// Well-known key names shared by all frontends.
const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyCtrlC Key = "ctrl+c"
	KeyEsc   Key = "esc"
)

// KeyFromRune returns the key name for a printable rune.
func KeyFromRune(r rune) Key {
	return Key(string(r))
}

// Normalize lowercases single-character keys so that "W" and "w" bind alike.
func (k Key) Normalize() Key {
	if len([]rune(string(k))) == 1 {
		return Key(strings.ToLower(string(k)))
	}
	return k
}

func (k Key) String() string {
	return string(k)
}
