package engine

import (
	"github.com/byrax15/snake-gl/component"
	"github.com/byrax15/snake-gl/core"
)

// ComponentStore provides direct pointers to every typed component store
// Systems cache it once at construction to avoid per-tick lookups
type ComponentStore struct {
	Position *Store[core.Point]
	Velocity *Store[component.VelocityComponent]
	Render   *Store[component.RenderComponent]

	// Role tags
	Head  *Store[component.HeadComponent]
	Tail  *Store[component.TailComponent]
	Apple *Store[component.AppleComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Position: NewStore[core.Point](),
		Velocity: NewStore[component.VelocityComponent](),
		Render:   NewStore[component.RenderComponent](),
		Head:     NewStore[component.HeadComponent](),
		Tail:     NewStore[component.TailComponent](),
		Apple:    NewStore[component.AppleComponent](),
	}
}

// all returns every store for uniform lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Position,
		cs.Velocity,
		cs.Render,
		cs.Head,
		cs.Tail,
		cs.Apple,
	}
}
