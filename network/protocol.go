package network

import (
	"github.com/byrax15/snake-gl/event"
	"github.com/byrax15/snake-gl/game"
)

// Message types
const (
	MessageSnapshot = "snapshot"
	MessageEvent    = "event"
)

// Message is the JSON envelope sent to spectators
type Message struct {
	Type     string         `json:"type"`
	Snapshot *game.Snapshot `json:"snapshot,omitempty"`
	Event    string         `json:"event,omitempty"`
	Tick     uint64         `json:"tick,omitempty"`
	Payload  any            `json:"payload,omitempty"`
}

func snapshotMessage(s game.Snapshot) Message {
	return Message{Type: MessageSnapshot, Snapshot: &s, Tick: s.Tick}
}

func eventMessage(ev event.GameEvent) Message {
	return Message{
		Type:    MessageEvent,
		Event:   ev.Type.String(),
		Tick:    ev.Tick,
		Payload: ev.Payload,
	}
}
