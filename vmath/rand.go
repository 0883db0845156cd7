package vmath

import (
	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/grid"
)

// FastRand is a xorshift64 generator, deterministic for a given seed
// Not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator, a zero seed is replaced since xorshift would stay at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// ColorJitter produces a multiplier applied to a base color at segment creation
type ColorJitter func() float64

// CellPicker produces an in-bounds grid cell
type CellPicker func() core.Point

// NewColorJitter returns a generator uniform in [1-spread, 1+spread)
func NewColorJitter(rng *FastRand, spread float64) ColorJitter {
	return func() float64 {
		return 1 + (rng.Float64()*2-1)*spread
	}
}

// NewCellPicker returns a generator drawing each axis independently and uniformly from the grid range
func NewCellPicker(rng *FastRand, g *grid.Space) CellPicker {
	return func() core.Point {
		return core.Point{
			X: g.Min() + rng.Intn(g.Dim()),
			Y: g.Min() + rng.Intn(g.Dim()),
		}
	}
}
