package snake

// Cause explains why a game ended.
type Cause string

const (
	CauseNone Cause = ""
	CauseWall Cause = "wall"
	CauseSelf Cause = "self"
)

// Collision classifies the snake's head against the board of the given size.
// A head on the outer ring is a wall hit; a head on any body segment is a
// self hit.
func Collision(s *Snake, height, width int) Cause {
	h := s.Head
	if h.Row <= 0 || h.Row >= height-1 || h.Col <= 0 || h.Col >= width-1 {
		return CauseWall
	}
	if s.onBody(h) {
		return CauseSelf
	}
	return CauseNone
}

// IsTerminal reports whether the game must stop.
func IsTerminal(s *Snake, height, width int) bool {
	return Collision(s, height, width) != CauseNone
}
