package system

import (
	"github.com/byrax15/snake-gl/component"
	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/engine"
	"github.com/byrax15/snake-gl/parameter/visual"
	"github.com/byrax15/snake-gl/vmath"
)

// Eaten records one consumed apple and where its replacement spawned
type Eaten struct {
	Position    core.Point
	Replacement core.Point
}

// AppleSystem spawns apples and detects when a head reaches one
// Replacement cells are not checked against the snake body
type AppleSystem struct {
	world  *engine.World
	picker vmath.CellPicker
}

func NewAppleSystem(world *engine.World, picker vmath.CellPicker) *AppleSystem {
	return &AppleSystem{
		world:  world,
		picker: picker,
	}
}

func (s *AppleSystem) Name() string {
	return "apple"
}

// Spawn creates n apples at picked cells
func (s *AppleSystem) Spawn(n int) {
	for i := 0; i < n; i++ {
		s.create()
	}
}

// Update compares every live apple against every head position
// Each match destroys the apple, creates a replacement and sets state.AteApple
func (s *AppleSystem) Update(state *State) []Eaten {
	apples := s.world.Query().
		With(s.world.Components.Apple).
		With(s.world.Components.Position).
		Execute()
	heads := s.world.Query().
		With(s.world.Components.Head).
		With(s.world.Components.Position).
		Execute()

	var eaten []Eaten
	for _, apple := range apples {
		applePos, _ := s.world.Components.Position.GetComponent(apple)
		for _, head := range heads {
			headPos, _ := s.world.Components.Position.GetComponent(head)
			if headPos != applePos {
				continue
			}

			s.world.DestroyEntity(apple)
			replacement := s.create()
			state.AteApple = true
			state.Score++
			eaten = append(eaten, Eaten{Position: applePos, Replacement: replacement})
			break
		}
	}
	return eaten
}

// Positions returns the positions of all live apples
func (s *AppleSystem) Positions() []core.Point {
	apples := s.world.Query().
		With(s.world.Components.Apple).
		With(s.world.Components.Position).
		Execute()

	out := make([]core.Point, 0, len(apples))
	for _, e := range apples {
		pos, _ := s.world.Components.Position.GetComponent(e)
		out = append(out, pos)
	}
	return out
}

// Count returns the number of live apples
func (s *AppleSystem) Count() int {
	return s.world.Components.Apple.CountEntity()
}

func (s *AppleSystem) create() core.Point {
	pos := s.picker()
	engine.With(
		engine.With(
			engine.With(s.world.NewEntity(), s.world.Components.Position, pos),
			s.world.Components.Render, component.RenderComponent{Color: visual.AppleColor},
		),
		s.world.Components.Apple, component.AppleComponent{},
	).Build()
	return pos
}
