package system

// State holds the per-simulation flags passed into every system call
// The run mode lives in the state machine, the game owns both
type State struct {
	// AteApple is set by the apple system and consumed by the next snake advance
	AteApple bool

	// StartMove is true once the head velocity was non-zero on a previous tick since the last reset
	StartMove bool

	// Score counts apples eaten since the last restart
	Score int
}

// Reset clears every flag, used on restart
func (s *State) Reset() {
	*s = State{}
}
