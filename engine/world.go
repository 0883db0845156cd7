package engine

import (
	"sync"

	"github.com/byrax15/snake-gl/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	live         map[core.Entity]struct{}

	Components ComponentStore
	allStores  []AnyStore
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		live:         make(map[core.Entity]struct{}),
		Components:   newComponentStore(),
	}
	w.allStores = w.Components.all()
	return w
}

// CreateEntity reserves a new entity ID without adding any components
// Use NewEntity for transactional construction
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.live[id] = struct{}{}
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	delete(w.live, e)
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.RemoveComponent(e)
	}
}

// IsAlive reports whether the entity was created and not yet destroyed
func (w *World) IsAlive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.live[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.live)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	w.live = make(map[core.Entity]struct{})
	for _, store := range w.allStores {
		store.ClearAllComponent()
	}
}
