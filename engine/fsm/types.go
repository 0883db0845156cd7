package fsm

// Mode is the run state of the simulation
type Mode uint8

const (
	// Running advances the simulation every tick (initial mode)
	Running Mode = iota
	// Paused suspends movement, collision and apple logic; rendering continues
	Paused
	// Restarting re-initializes the snake on the next processed tick
	Restarting
)

// String returns the mode name used in logs, the status bar and the spectator feed
func (m Mode) String() string {
	switch m {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Restarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// ActionFunc executes a side effect while a pending transition is processed
type ActionFunc[T any] func(ctx T)

// TransitionFunc observes a mode change as it is requested
type TransitionFunc func(from, to Mode)

// MarshalText encodes the mode by name
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
