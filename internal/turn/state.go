package turn

// RunState says whose move it is.
type RunState uint8

const (
	// Paused waits for the player's input.
	Paused RunState = iota
	// Running resolves monster moves, combat and deaths on the next tick.
	Running
)

func (s RunState) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	}
	return "unknown"
}

// Key is the input the controller understands, already decoded from the terminal.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyAttack
	KeyOther
)

// delta converts a movement key to a step. ok is false for non-movement keys.
func (k Key) delta() (dx, dy int, ok bool) {
	switch k {
	case KeyLeft:
		return -1, 0, true
	case KeyRight:
		return 1, 0, true
	case KeyUp:
		return 0, -1, true
	case KeyDown:
		return 0, 1, true
	}
	return 0, 0, false
}
