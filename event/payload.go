package event

import (
	"github.com/byrax15/snake-gl/core"
)

// DirectionPayload carries the requested head velocity
type DirectionPayload struct {
	Velocity core.Point `json:"velocity"`
}

// AppleEatenPayload describes a consumed apple
type AppleEatenPayload struct {
	Position    core.Point `json:"position"`    // Where the apple was eaten
	Replacement core.Point `json:"replacement"` // Where its replacement spawned
	Score       int        `json:"score"`       // Apples eaten since the last restart
}

// CollisionCause tells what the head ran into
type CollisionCause uint8

const (
	CauseWall CollisionCause = iota
	CauseSelf
)

// String returns the cause name
func (c CollisionCause) String() string {
	if c == CauseSelf {
		return "self"
	}
	return "wall"
}

// CollisionPayload describes a detected collision
type CollisionPayload struct {
	Cause    CollisionCause `json:"cause"`
	Position core.Point     `json:"position"` // Head position on detection
	Length   int            `json:"length"`   // Snake length including head
}

// ModeChangedPayload describes a state machine transition
type ModeChangedPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MarshalText encodes the cause by name
func (c CollisionCause) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
