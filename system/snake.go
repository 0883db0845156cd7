package system

import (
	"github.com/byrax15/snake-gl/component"
	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/engine"
	"github.com/byrax15/snake-gl/parameter"
	"github.com/byrax15/snake-gl/parameter/visual"
	"github.com/byrax15/snake-gl/vmath"
)

// Direction commands, one axis at ±1
var (
	DirectionUp    = core.Point{X: 0, Y: 1}
	DirectionDown  = core.Point{X: 0, Y: -1}
	DirectionLeft  = core.Point{X: -1, Y: 0}
	DirectionRight = core.Point{X: 1, Y: 0}
)

// SnakeSystem owns the head entity and its ordered tail chain
type SnakeSystem struct {
	world  *engine.World
	jitter vmath.ColorJitter

	head core.Entity
}

// NewSnakeSystem creates the system, the snake is created by Spawn
func NewSnakeSystem(world *engine.World, jitter vmath.ColorJitter) *SnakeSystem {
	return &SnakeSystem{
		world:  world,
		jitter: jitter,
	}
}

func (s *SnakeSystem) Name() string {
	return "snake"
}

// Spawn creates the head at the origin with the initial tails, replacing any previous snake
func (s *SnakeSystem) Spawn() core.Entity {
	if s.head != 0 && s.world.IsAlive(s.head) {
		s.destroyTails()
		s.world.DestroyEntity(s.head)
	}

	s.head = engine.With(
		engine.With(
			engine.With(
				engine.With(s.world.NewEntity(), s.world.Components.Position, core.Point{}),
				s.world.Components.Velocity, component.VelocityComponent{},
			),
			s.world.Components.Render, component.RenderComponent{Color: visual.HeadColor},
		),
		s.world.Components.Head, component.HeadComponent{},
	).Build()

	s.spawnInitialTails()
	return s.head
}

// Reset destroys every tail, recreates the initial tails and returns the head to the origin at rest
func (s *SnakeSystem) Reset() {
	if s.head == 0 || !s.world.IsAlive(s.head) {
		s.Spawn()
		return
	}

	s.destroyTails()
	s.world.Components.Position.SetComponent(s.head, core.Point{})
	s.world.Components.Velocity.SetComponent(s.head, component.VelocityComponent{})
	s.spawnInitialTails()
}

// AdvanceOneStep moves the snake by one cell along the head velocity
//
//  1. Before the first move only records whether a direction exists
//  2. A pending apple appends a tail at the pre-move head position
//  3. Every tail takes its predecessor's position, walking from the tip toward the head
//  4. The head moves by its velocity
//  5. StartMove follows whether the velocity is non-zero
func (s *SnakeSystem) AdvanceOneStep(state *State) {
	vel := s.Velocity()
	moving := !vel.IsZero()

	if !state.StartMove {
		state.StartMove = moving
		return
	}

	headPos := s.HeadPosition()
	hc, _ := s.world.Components.Head.GetComponent(s.head)

	if state.AteApple {
		hc.Chain = append(hc.Chain, s.createTail(headPos))
		s.world.Components.Head.SetComponent(s.head, hc)
		state.AteApple = false
	}

	positions := s.world.Components.Position
	for i := len(hc.Chain) - 1; i > 0; i-- {
		prev, _ := positions.GetComponent(hc.Chain[i-1])
		positions.SetComponent(hc.Chain[i], prev)
	}
	if len(hc.Chain) > 0 {
		positions.SetComponent(hc.Chain[0], headPos)
	}

	positions.SetComponent(s.head, headPos.Add(vel.Vec()))

	state.StartMove = moving
}

// SetVelocity replaces the head velocity, components are clamped to {-1, 0, 1}
func (s *SnakeSystem) SetVelocity(v core.Point) {
	s.world.Components.Velocity.SetComponent(s.head, component.VelocityComponent{
		X: sign(v.X),
		Y: sign(v.Y),
	})
}

func (s *SnakeSystem) Up()    { s.SetVelocity(DirectionUp) }
func (s *SnakeSystem) Down()  { s.SetVelocity(DirectionDown) }
func (s *SnakeSystem) Left()  { s.SetVelocity(DirectionLeft) }
func (s *SnakeSystem) Right() { s.SetVelocity(DirectionRight) }

// Head returns the head entity, zero before Spawn
func (s *SnakeSystem) Head() core.Entity {
	return s.head
}

func (s *SnakeSystem) HeadPosition() core.Point {
	pos, _ := s.world.Components.Position.GetComponent(s.head)
	return pos
}

func (s *SnakeSystem) Velocity() component.VelocityComponent {
	vel, _ := s.world.Components.Velocity.GetComponent(s.head)
	return vel
}

// Tails returns the tail chain ordered from the head toward the tip
func (s *SnakeSystem) Tails() []core.Entity {
	hc, ok := s.world.Components.Head.GetComponent(s.head)
	if !ok {
		return nil
	}
	out := make([]core.Entity, len(hc.Chain))
	copy(out, hc.Chain)
	return out
}

// TailPositions returns tail positions ordered from the head toward the tip
func (s *SnakeSystem) TailPositions() []core.Point {
	chain := s.Tails()
	out := make([]core.Point, 0, len(chain))
	for _, e := range chain {
		if pos, ok := s.world.Components.Position.GetComponent(e); ok {
			out = append(out, pos)
		}
	}
	return out
}

// Length returns the number of segments including the head
func (s *SnakeSystem) Length() int {
	if s.head == 0 {
		return 0
	}
	return 1 + len(s.Tails())
}

func (s *SnakeSystem) spawnInitialTails() {
	chain := make([]core.Entity, 0, len(parameter.SnakeStartTailOffsets))
	for _, off := range parameter.SnakeStartTailOffsets {
		chain = append(chain, s.createTail(core.Point{X: off[0], Y: off[1]}))
	}
	s.world.Components.Head.SetComponent(s.head, component.HeadComponent{Chain: chain})
}

func (s *SnakeSystem) createTail(pos core.Point) core.Entity {
	color := visual.TailColor
	if s.jitter != nil {
		color = color.Scale(s.jitter())
	}

	return engine.With(
		engine.With(
			engine.With(s.world.NewEntity(), s.world.Components.Position, pos),
			s.world.Components.Render, component.RenderComponent{Color: color},
		),
		s.world.Components.Tail, component.TailComponent{Head: s.head},
	).Build()
}

func (s *SnakeSystem) destroyTails() {
	hc, ok := s.world.Components.Head.GetComponent(s.head)
	if !ok {
		return
	}
	for _, e := range hc.Chain {
		s.world.DestroyEntity(e)
	}
	s.world.Components.Head.SetComponent(s.head, component.HeadComponent{})
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
