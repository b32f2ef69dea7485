package timer

// State represents the lifecycle state of the countdown engine.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}
