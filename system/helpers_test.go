package system

import (
	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/engine"
	"github.com/byrax15/snake-gl/grid"
	"github.com/byrax15/snake-gl/vmath"
)

// scriptedPicker returns the given cells in order, repeating the last one
func scriptedPicker(cells ...core.Point) vmath.CellPicker {
	i := 0
	return func() core.Point {
		p := cells[i]
		if i < len(cells)-1 {
			i++
		}
		return p
	}
}

func unitJitter() float64 { return 1 }

type countingPauser struct {
	calls int
}

func (p *countingPauser) Pause() bool {
	p.calls++
	return true
}

type fixture struct {
	world     *engine.World
	grid      *grid.Space
	snake     *SnakeSystem
	collision *CollisionSystem
	pauser    *countingPauser
	state     *State
}

func newFixture(dim int) *fixture {
	w := engine.NewWorld()
	g := grid.MustNew(dim)
	snake := NewSnakeSystem(w, unitJitter)
	snake.Spawn()
	pauser := &countingPauser{}
	return &fixture{
		world:     w,
		grid:      g,
		snake:     snake,
		collision: NewCollisionSystem(g, snake, pauser),
		pauser:    pauser,
		state:     &State{},
	}
}

func pointsEqual(a, b []core.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
