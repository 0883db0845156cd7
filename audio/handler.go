package audio

import (
	"github.com/byrax15/snake-gl/event"
)

// Player is the cue surface the event handler drives
type Player interface {
	PlayEat()
	PlayCrash()
	PlayRestart()
}

// EventHandler maps outcome events to sound cues
type EventHandler struct {
	player Player
}

func NewEventHandler(player Player) *EventHandler {
	return &EventHandler{player: player}
}

func (h *EventHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventAppleEaten,
		event.EventCollision,
		event.EventRestarted,
	}
}

func (h *EventHandler) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventAppleEaten:
		h.player.PlayEat()
	case event.EventCollision:
		h.player.PlayCrash()
	case event.EventRestarted:
		h.player.PlayRestart()
	}
}
