package component

import (
	"github.com/byrax15/snake-gl/core"
)

// VelocityComponent is an integer per-tick displacement, each axis in {-1, 0, 1}
type VelocityComponent struct {
	X, Y int
}

// Vec returns the velocity as a displacement point
func (v VelocityComponent) Vec() core.Point {
	return core.Point{X: v.X, Y: v.Y}
}

// IsZero reports whether the entity is standing still
func (v VelocityComponent) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
