package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		expected Point
	}{
		{"up", DirUp, Pt(-1, 0)},
		{"down", DirDown, Pt(1, 0)},
		{"left", DirLeft, Pt(0, -1)},
		{"right", DirRight, Pt(0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.expected {
				t.Errorf("Delta() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir, expected Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		if got := tc.dir.Opposite(); got != tc.expected {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.dir, got, tc.expected)
		}
		if !tc.dir.IsOpposite(tc.expected) {
			t.Errorf("%v.IsOpposite(%v) = false, expected true", tc.dir, tc.expected)
		}
		if tc.dir.IsOpposite(tc.dir) {
			t.Errorf("%v.IsOpposite(itself) = true, expected false", tc.dir)
		}
	}

	// Perpendicular directions are never opposite
	if DirUp.IsOpposite(DirLeft) || DirRight.IsOpposite(DirDown) {
		t.Error("perpendicular directions should not be opposite")
	}
}

func TestPointAdd(t *testing.T) {
	p := Pt(5, 6).Add(DirRight.Delta())
	if p != Pt(5, 7) {
		t.Errorf("Add() = %v, expected (5, 7)", p)
	}

	p = Pt(1, 1).Add(DirUp.Delta())
	if p != Pt(0, 1) {
		t.Errorf("Add() = %v, expected (0, 1)", p)
	}
}

func TestDirectionString(t *testing.T) {
	if DirUp.String() != "up" || DirRight.String() != "right" {
		t.Errorf("unexpected direction names: %s, %s", DirUp, DirRight)
	}
	if Direction(42).String() != "unknown" {
		t.Errorf("String() = %q, expected \"unknown\"", Direction(42).String())
	}
}

func TestKeyNormalize(t *testing.T) {
	tests := []struct {
		in, expected Key
	}{
		{"W", "w"},
		{"w", "w"},
		{KeyUp, KeyUp},
		{KeyCtrlC, KeyCtrlC},
	}

	for _, tc := range tests {
		if got := tc.in.Normalize(); got != tc.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
