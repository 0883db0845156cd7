package input

import (
	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/event"
	"github.com/byrax15/snake-gl/system"
)

// IntentType is the game action a key resolves to
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentPause
	IntentRestart
	IntentResume
	IntentQuit
)

var intentNames = [...]string{
	IntentNone:    "none",
	IntentUp:      "up",
	IntentDown:    "down",
	IntentLeft:    "left",
	IntentRight:   "right",
	IntentPause:   "pause",
	IntentRestart: "restart",
	IntentResume:  "resume",
	IntentQuit:    "quit",
}

func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// ToEvent converts an intent into the command submitted to the game
// Quit and None have no game command
func (i IntentType) ToEvent() (event.GameEvent, bool) {
	switch i {
	case IntentUp:
		return directionEvent(system.DirectionUp), true
	case IntentDown:
		return directionEvent(system.DirectionDown), true
	case IntentLeft:
		return directionEvent(system.DirectionLeft), true
	case IntentRight:
		return directionEvent(system.DirectionRight), true
	case IntentPause:
		return event.GameEvent{Type: event.EventPauseRequest}, true
	case IntentRestart:
		return event.GameEvent{Type: event.EventRestartRequest}, true
	case IntentResume:
		return event.GameEvent{Type: event.EventResumeRequest}, true
	default:
		return event.GameEvent{}, false
	}
}

func directionEvent(v core.Point) event.GameEvent {
	return event.GameEvent{
		Type:    event.EventDirectionRequest,
		Payload: &event.DirectionPayload{Velocity: v},
	}
}
