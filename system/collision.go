package system

import (
	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/event"
	"github.com/byrax15/snake-gl/grid"
)

// Pauser receives the pause request raised by a detected collision
type Pauser interface {
	Pause() bool
}

// Collision describes what the head ran into
type Collision struct {
	Cause    event.CollisionCause
	Position core.Point
}

// CollisionSystem tests the head against the grid bounds and the tail chain
// Detection is advisory: it requests a pause and repairs nothing
type CollisionSystem struct {
	grid   *grid.Space
	snake  *SnakeSystem
	pauser Pauser
}

func NewCollisionSystem(g *grid.Space, snake *SnakeSystem, pauser Pauser) *CollisionSystem {
	return &CollisionSystem{
		grid:   g,
		snake:  snake,
		pauser: pauser,
	}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

// Check runs after the snake advance, on a hit it requests a pause and returns the collision
// Wall takes precedence over self when both apply
func (s *CollisionSystem) Check() (Collision, bool) {
	head := s.snake.HeadPosition()

	if s.grid.OutOfBounds(head) {
		s.pauser.Pause()
		return Collision{Cause: event.CauseWall, Position: head}, true
	}

	for _, pos := range s.snake.TailPositions() {
		if pos == head {
			s.pauser.Pause()
			return Collision{Cause: event.CauseSelf, Position: head}, true
		}
	}

	return Collision{}, false
}
