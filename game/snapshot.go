package game

import (
	"github.com/byrax15/snake-gl/component"
	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/engine/fsm"
)

// EntityView is the read-only render tuple of one segment or apple
type EntityView struct {
	Position core.Point     `json:"position"`
	DeviceX  float32        `json:"device_x"`
	DeviceY  float32        `json:"device_y"`
	Color    core.Color     `json:"color"`
	Role     component.Role `json:"role"`
}

// Snapshot is an immutable copy of the simulation published after every tick
// Entities are ordered head, tails from head to tip, then apples
type Snapshot struct {
	Tick     uint64       `json:"tick"`
	Dim      int          `json:"dim"`
	Mode     fsm.Mode     `json:"mode"`
	Crashed  bool         `json:"crashed"`
	Score    int          `json:"score"`
	Length   int          `json:"length"`
	Entities []EntityView `json:"entities"`
}

// Head returns the head view, false if the snapshot holds no head
func (s Snapshot) Head() (EntityView, bool) {
	for _, e := range s.Entities {
		if e.Role == component.RoleHead {
			return e, true
		}
	}
	return EntityView{}, false
}

// ByRole returns the views with the given role in snapshot order
func (s Snapshot) ByRole(role component.Role) []EntityView {
	var out []EntityView
	for _, e := range s.Entities {
		if e.Role == role {
			out = append(out, e)
		}
	}
	return out
}

// buildSnapshot reads the world on the tick goroutine
func (g *Game) buildSnapshot() *Snapshot {
	snap := &Snapshot{
		Tick:    g.tick,
		Dim:     g.grid.Dim(),
		Mode:    g.machine.Mode(),
		Crashed: g.crashed,
		Score:   g.state.Score,
		Length:  g.snake.Length(),
	}

	head := g.snake.Head()
	tails := g.snake.Tails()
	apples := g.world.Query().
		With(g.world.Components.Apple).
		With(g.world.Components.Position).
		Execute()

	snap.Entities = make([]EntityView, 0, 1+len(tails)+len(apples))
	snap.Entities = append(snap.Entities, g.view(head, component.RoleHead))
	for _, e := range tails {
		snap.Entities = append(snap.Entities, g.view(e, component.RoleTail))
	}
	for _, e := range apples {
		snap.Entities = append(snap.Entities, g.view(e, component.RoleApple))
	}
	return snap
}

func (g *Game) view(e core.Entity, role component.Role) EntityView {
	pos, _ := g.world.Components.Position.GetComponent(e)
	rc, _ := g.world.Components.Render.GetComponent(e)
	dx, dy := g.grid.ToDeviceCoordinates(pos)
	return EntityView{
		Position: pos,
		DeviceX:  dx,
		DeviceY:  dy,
		Color:    rc.Color,
		Role:     role,
	}
}
