package term

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// keyDecoder turns raw-mode terminal bytes into key names. Reads may split
// an escape sequence anywhere, so an unfinished sequence is held back and
// completed by the next read. A lone ESC is only the Esc key once flush
// says no more bytes are coming.
type keyDecoder struct {
	pending []byte
}

// feed decodes b, prefixed by whatever the previous read left unfinished.
func (d *keyDecoder) feed(b []byte) []core.Key {
	data := append(d.pending, b...)
	d.pending = nil

	var keys []core.Key
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case c == 0x03:
			keys = append(keys, core.KeyCtrlC)
		case c == 0x1b:
			n, k, ok := escapeSequence(data[i:])
			if n == 0 {
				d.pending = append([]byte(nil), data[i:]...)
				return keys
			}
			if ok {
				keys = append(keys, k)
			}
			i += n - 1
		case c >= 0x20 && c < 0x7f:
			keys = append(keys, core.KeyFromRune(rune(c)).Normalize())
		}
	}
	return keys
}

// flush ends the current burst of input. A held-back lone ESC becomes the
// Esc key; any other unfinished sequence is dropped.
func (d *keyDecoder) flush() []core.Key {
	p := d.pending
	d.pending = nil
	if len(p) == 1 && p[0] == 0x1b {
		return []core.Key{core.KeyEsc}
	}
	return nil
}

// hasPending reports whether bytes are held back for the next read.
func (d *keyDecoder) hasPending() bool {
	return len(d.pending) > 0
}

// escapeSequence measures the sequence at the start of b, which begins with
// ESC. It returns the number of bytes consumed, or 0 when b ends before the
// sequence does. Only arrow keys produce a key.
func escapeSequence(b []byte) (int, core.Key, bool) {
	if len(b) < 2 {
		return 0, "", false
	}
	switch b[1] {
	case 'O':
		if len(b) < 3 {
			return 0, "", false
		}
		k, ok := arrowKey(b[2])
		return 3, k, ok
	case '[':
		// Parameter and intermediate bytes run up to a final byte in 0x40-0x7e
		for j := 2; j < len(b); j++ {
			if b[j] >= 0x40 && b[j] <= 0x7e {
				k, ok := arrowKey(b[j])
				return j + 1, k, ok
			}
			if b[j] < 0x20 || b[j] > 0x3f {
				// Malformed; drop the introducer and decode the rest as keys
				return 2, "", false
			}
		}
		return 0, "", false
	}
	// ESC followed by an ordinary byte (alt+key): the byte is decoded on its own
	return 1, "", false
}

func arrowKey(c byte) (core.Key, bool) {
	switch c {
	case 'A':
		return core.KeyUp, true
	case 'B':
		return core.KeyDown, true
	case 'C':
		return core.KeyRight, true
	case 'D':
		return core.KeyLeft, true
	}
	return "", false
}
