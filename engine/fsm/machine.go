package fsm

// Machine is the cyclic Running/Paused/Restarting state machine gating the simulation.
// Requests (Pause, Restart, Resume) only record the target mode and raise the changed flag;
// the effect is applied by Process at the start of the next tick.
// T is the context type passed to registered actions (e.g., *game.Game)
//
// Not safe for concurrent use: requests and Process run on the tick goroutine
type Machine[T any] struct {
	mode            Mode
	changed         bool
	movementEnabled bool

	actions   map[Mode][]ActionFunc[T]
	observers []TransitionFunc
}

// NewMachine creates a machine in Running mode with movement enabled
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		mode:            Running,
		movementEnabled: true,
		actions:         make(map[Mode][]ActionFunc[T]),
	}
}

// RegisterAction adds a side effect run by Process when a pending transition into mode is handled
func (m *Machine[T]) RegisterAction(mode Mode, fn ActionFunc[T]) {
	m.actions[mode] = append(m.actions[mode], fn)
}

// OnTransition adds an observer notified for every effective mode change
func (m *Machine[T]) OnTransition(fn TransitionFunc) {
	m.observers = append(m.observers, fn)
}

// Pause requests the Paused mode, returns false if already paused
func (m *Machine[T]) Pause() bool {
	return m.transition(Paused)
}

// Restart requests the Restarting mode, returns false if a restart is already pending
func (m *Machine[T]) Restart() bool {
	return m.transition(Restarting)
}

// Resume requests the Running mode, returns false if already running
func (m *Machine[T]) Resume() bool {
	return m.transition(Running)
}

// transition switches to target and raises the changed flag, no-op when already there
func (m *Machine[T]) transition(target Mode) bool {
	if m.mode == target {
		return false
	}
	from := m.mode
	m.mode = target
	m.changed = true

	for _, fn := range m.observers {
		fn(from, target)
	}
	return true
}

// Process applies a pending transition, does nothing when the changed flag is clear
//
//   - Paused: disables the movement phase, the flag stays set until a further transition
//   - Restarting: runs the Restarting actions, re-enables movement, resumes and clears the flag
//   - Running: re-enables movement and clears the flag
func (m *Machine[T]) Process(ctx T) {
	if !m.changed {
		return
	}

	switch m.mode {
	case Paused:
		m.movementEnabled = false
	case Restarting:
		for _, fn := range m.actions[Restarting] {
			fn(ctx)
		}
		m.movementEnabled = true
		m.Resume()
		m.changed = false
	case Running:
		for _, fn := range m.actions[Running] {
			fn(ctx)
		}
		m.movementEnabled = true
		m.changed = false
	}
}

// Mode returns the current mode
func (m *Machine[T]) Mode() Mode {
	return m.mode
}

// Changed reports whether a transition is waiting to be processed
func (m *Machine[T]) Changed() bool {
	return m.changed
}

// MovementEnabled reports whether the movement phase runs this tick
func (m *Machine[T]) MovementEnabled() bool {
	return m.movementEnabled
}
