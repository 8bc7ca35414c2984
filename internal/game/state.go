// Package game provides the session state machine and the main game loop.
package game

// State represents where a session is in its lifecycle.
type State int

const (
	// StatePlaying is the initial state: the player picks encounters from the menu.
	StatePlaying State = iota
	// StateDead is terminal: an encounter brought health to zero.
	StateDead
	// StateQuit is terminal: the player chose to stop (or input ran out).
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the session has ended.
func (s State) IsTerminal() bool {
	return s == StateDead || s == StateQuit
}
