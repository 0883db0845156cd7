package event

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// === Input Commands ===

	// EventDirectionRequest sets the head velocity
	// Trigger: input handler | Consumer: game tick | Payload: *DirectionPayload
	EventDirectionRequest

	// EventPauseRequest requests the Paused mode
	// Trigger: input handler | Consumer: game tick | Payload: nil
	EventPauseRequest

	// EventRestartRequest requests the Restarting mode
	// Trigger: input handler | Consumer: game tick | Payload: nil
	EventRestartRequest

	// EventResumeRequest requests the Running mode after a manual pause
	// Trigger: input handler | Consumer: game tick | Payload: nil
	EventResumeRequest

	// === Simulation Outcomes ===

	// EventAppleEaten signals an apple was consumed and replaced
	// Trigger: game tick | Consumer: audio, logging | Payload: *AppleEatenPayload
	EventAppleEaten EventType = iota + 100 // Offset keeps commands and outcomes apart

	// EventCollision signals a wall or self collision, the machine is now paused
	// Trigger: game tick | Consumer: audio, logging | Payload: *CollisionPayload
	EventCollision

	// EventRestarted signals the snake was re-initialized
	// Trigger: game tick | Consumer: audio, logging | Payload: nil
	EventRestarted

	// EventModeChanged signals a state machine transition
	// Trigger: game tick | Consumer: logging | Payload: *ModeChangedPayload
	EventModeChanged
)

var typeNames = map[EventType]string{
	EventNone:             "none",
	EventDirectionRequest: "direction_request",
	EventPauseRequest:     "pause_request",
	EventRestartRequest:   "restart_request",
	EventResumeRequest:    "resume_request",
	EventAppleEaten:       "apple_eaten",
	EventCollision:        "collision",
	EventRestarted:        "restarted",
	EventModeChanged:      "mode_changed",
}

// String returns the snake_case event name
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single entry in an EventQueue
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Simulation tick the event was emitted or consumed on
}
