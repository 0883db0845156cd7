package system

import (
	"testing"

	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/event"
)

func TestCollision_NoHitAtSpawn(t *testing.T) {
	f := newFixture(24)

	if _, hit := f.collision.Check(); hit {
		t.Error("Expected no collision at spawn")
	}
	if f.pauser.calls != 0 {
		t.Errorf("Expected no pause request, got %d", f.pauser.calls)
	}
}

func TestCollision_WallOnEachAxis(t *testing.T) {
	cases := []struct {
		name string
		pos  core.Point
		hit  bool
	}{
		{"max x", core.Point{X: 11, Y: 0}, false},
		{"past max x", core.Point{X: 12, Y: 0}, true},
		{"min y", core.Point{X: 0, Y: -12}, false},
		{"past min y", core.Point{X: 0, Y: -13}, true},
		{"past max y", core.Point{X: 3, Y: 12}, true},
		{"past min x", core.Point{X: -13, Y: 3}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(24)
			f.world.Components.Position.SetComponent(f.snake.Head(), tc.pos)

			c, hit := f.collision.Check()
			if hit != tc.hit {
				t.Fatalf("Expected hit=%v at %v, got %v", tc.hit, tc.pos, hit)
			}
			if hit && c.Cause != event.CauseWall {
				t.Errorf("Expected wall cause, got %v", c.Cause)
			}
			if hit && f.pauser.calls != 1 {
				t.Errorf("Expected one pause request, got %d", f.pauser.calls)
			}
		})
	}
}

func TestCollision_WalkingIntoWall(t *testing.T) {
	f := newFixture(24)
	f.snake.Up()
	f.snake.AdvanceOneStep(f.state)

	steps := 0
	for {
		f.snake.AdvanceOneStep(f.state)
		steps++
		if c, hit := f.collision.Check(); hit {
			if c.Position != (core.Point{X: 0, Y: 12}) {
				t.Errorf("Expected hit at (0,12), got %v", c.Position)
			}
			break
		}
		if steps > 20 {
			t.Fatal("Expected a wall collision within 20 steps")
		}
	}
	if steps != 12 {
		t.Errorf("Expected collision on step 12, got %d", steps)
	}
}

func TestCollision_Self(t *testing.T) {
	f := newFixture(24)
	// Reversing onto the first tail
	f.snake.Down()
	f.snake.AdvanceOneStep(f.state)
	f.snake.AdvanceOneStep(f.state)

	c, hit := f.collision.Check()
	if !hit {
		t.Fatal("Expected self collision")
	}
	if c.Cause != event.CauseSelf {
		t.Errorf("Expected self cause, got %v", c.Cause)
	}
	if c.Position != (core.Point{X: 0, Y: -1}) {
		t.Errorf("Expected hit at (0,-1), got %v", c.Position)
	}
	if f.pauser.calls != 1 {
		t.Errorf("Expected one pause request, got %d", f.pauser.calls)
	}
}
