// Package grid defines the bounded square play field and its coordinate mapping.
package grid

import (
	"github.com/pkg/errors"

	"github.com/byrax15/snake-gl/core"
)

var (
	// ErrOddDimension is returned when the requested side length is odd
	ErrOddDimension = errors.New("grid must have an even size")

	// ErrNonPositiveDimension is returned when the requested side length is zero or negative
	ErrNonPositiveDimension = errors.New("grid must have a positive size")
)

// Space is a square grid of dim×dim cells centered on the origin.
// Valid coordinates per axis are [-dim/2, dim/2-1]. Immutable after construction.
type Space struct {
	dim int
}

// New creates a grid of side dim, which must be positive and even
func New(dim int) (*Space, error) {
	if dim <= 0 {
		return nil, errors.Wrapf(ErrNonPositiveDimension, "dim=%d", dim)
	}
	if dim%2 != 0 {
		return nil, errors.Wrapf(ErrOddDimension, "dim=%d", dim)
	}
	return &Space{dim: dim}, nil
}

// MustNew is New for static configuration, panics on an invalid dim
func MustNew(dim int) *Space {
	s, err := New(dim)
	if err != nil {
		panic(err)
	}
	return s
}

// Dim returns the side length
func (s *Space) Dim() int {
	return s.dim
}

// Min returns the lowest valid coordinate on either axis
func (s *Space) Min() int {
	return -s.dim / 2
}

// Max returns the highest valid coordinate on either axis
func (s *Space) Max() int {
	return s.dim/2 - 1
}

// Cells returns the total number of cells
func (s *Space) Cells() int {
	return s.dim * s.dim
}

// OutOfBounds reports whether either axis of p falls outside [Min, Max]
func (s *Space) OutOfBounds(p core.Point) bool {
	lo, hi := s.Min(), s.Max()
	return p.X < lo || p.X > hi || p.Y < lo || p.Y > hi
}

// Clamp returns p with both axes clamped into bounds
func (s *Space) Clamp(p core.Point) core.Point {
	return core.Point{X: clamp(p.X, s.Min(), s.Max()), Y: clamp(p.Y, s.Min(), s.Max())}
}

// ToDeviceCoordinates maps a cell to normalized device space, p/dim per axis
func (s *Space) ToDeviceCoordinates(p core.Point) (float32, float32) {
	d := float32(s.dim)
	return float32(p.X) / d, float32(p.Y) / d
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
