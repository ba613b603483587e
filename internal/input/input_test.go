package input

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// fakeKeyboard returns a fixed set of keys and counts samples.
type fakeKeyboard struct {
	mu      sync.Mutex
	keys    []core.Key
	samples int
}

func (f *fakeKeyboard) PressedKeys() []core.Key {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.samples++
	return append([]core.Key(nil), f.keys...)
}

func (f *fakeKeyboard) set(keys ...core.Key) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = keys
}

func (f *fakeKeyboard) sampleCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.samples
}

func TestKeyStateHoldWindow(t *testing.T) {
	ks := NewKeyState(100 * time.Millisecond)
	now := time.Unix(1000, 0)
	ks.now = func() time.Time { return now }

	ks.Press("w")
	if keys := ks.PressedKeys(); len(keys) != 1 || keys[0] != "w" {
		t.Fatalf("PressedKeys() = %v, expected [w]", keys)
	}

	now = now.Add(50 * time.Millisecond)
	ks.Press("d")
	keys := ks.PressedKeys()
	if len(keys) != 2 || keys[0] != "w" || keys[1] != "d" {
		t.Fatalf("PressedKeys() = %v, expected [w d] ordered by press time", keys)
	}

	// w expires, d is still within its window
	now = now.Add(60 * time.Millisecond)
	keys = ks.PressedKeys()
	if len(keys) != 1 || keys[0] != "d" {
		t.Fatalf("PressedKeys() = %v, expected [d]", keys)
	}

	// Auto-repeat keeps the key alive
	ks.Press("d")
	now = now.Add(90 * time.Millisecond)
	if keys := ks.PressedKeys(); len(keys) != 1 {
		t.Fatalf("PressedKeys() = %v, expected d to still be held", keys)
	}

	ks.Release("d")
	if keys := ks.PressedKeys(); len(keys) != 0 {
		t.Errorf("PressedKeys() = %v, expected none after Release", keys)
	}
}

func TestKeyStateDefaultHold(t *testing.T) {
	ks := NewKeyState(0)
	if ks.hold != DefaultHoldWindow {
		t.Errorf("hold = %v, expected %v", ks.hold, DefaultHoldWindow)
	}
}

func TestBridgeForwardsHeldKeysEverySample(t *testing.T) {
	kb := &fakeKeyboard{}
	kb.set("w")
	b := NewBridge(kb, time.Millisecond, 100, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	// A held key is re-sent on each sample
	received := 0
	timeout := time.After(2 * time.Second)
	for received < 5 {
		select {
		case k := <-b.Events():
			if k != "w" {
				t.Fatalf("received %q, expected w", k)
			}
			received++
		case <-timeout:
			t.Fatalf("received %d events before timeout, expected 5", received)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, expected nil on cancellation", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}

func TestBridgeBlocksOnFullQueue(t *testing.T) {
	kb := &fakeKeyboard{}
	kb.set("a", "b", "c")
	b := NewBridge(kb, time.Millisecond, 2, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	// Nobody consumes: the bridge must stall on the third key of the first
	// sample instead of sampling again.
	time.Sleep(50 * time.Millisecond)
	if n := kb.sampleCount(); n != 1 {
		t.Errorf("sampleCount = %d, expected 1 while the queue is full", n)
	}
	if n := len(b.Events()); n != 2 {
		t.Errorf("queued = %d, expected 2", n)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() = %v, expected nil", err)
	}
}

func TestDrain(t *testing.T) {
	ch := make(chan core.Key, 10)
	if keys := Drain(ch); len(keys) != 0 {
		t.Errorf("Drain(empty) = %v, expected nothing", keys)
	}

	ch <- "a"
	ch <- "up"
	ch <- "w"
	keys := Drain(ch)
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "up" || keys[2] != "w" {
		t.Errorf("Drain() = %v, expected [a up w] in arrival order", keys)
	}
	if len(ch) != 0 {
		t.Error("Drain() should empty the channel")
	}

	ch <- "s"
	close(ch)
	if keys := Drain(ch); len(keys) != 1 {
		t.Errorf("Drain(closed) = %v, expected [s]", keys)
	}
}

func TestKeyMapDirection(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      core.Key
		expected core.Direction
		ok       bool
	}{
		{"w", core.DirUp, true},
		{"W", core.DirUp, true},
		{"up", core.DirUp, true},
		{"a", core.DirLeft, true},
		{"s", core.DirDown, true},
		{"right", core.DirRight, true},
		{"x", 0, false},
		{"ctrl+c", 0, false},
	}

	for _, tc := range tests {
		d, ok := km.Direction(tc.key)
		if ok != tc.ok || (ok && d != tc.expected) {
			t.Errorf("Direction(%q) = %v, %v; expected %v, %v", tc.key, d, ok, tc.expected, tc.ok)
		}
	}

	if !km.IsQuit("ctrl+c") || km.IsQuit("q") {
		t.Error("IsQuit() should match ctrl+c only among these keys")
	}
}

func TestKeyMapDirections(t *testing.T) {
	km := NewKeyMap([]string{"K"}, []string{"j"}, []string{"h"}, []string{"l"}, nil)

	dirs := km.Directions([]core.Key{"h", "x", "k", "l"})
	expected := []core.Direction{core.DirLeft, core.DirUp, core.DirRight}
	if len(dirs) != len(expected) {
		t.Fatalf("Directions() = %v, expected %v", dirs, expected)
	}
	for i := range expected {
		if dirs[i] != expected[i] {
			t.Errorf("Directions()[%d] = %v, expected %v", i, dirs[i], expected[i])
		}
	}

	if len(km.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings, expected 5", len(km.ShortHelp()))
	}
}
