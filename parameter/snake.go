package parameter

// Grid defaults
const (
	// DefaultGridDim is the side length of the square play field, must be even
	DefaultGridDim = 24

	// DefaultAppleCount is the number of live apples in the simple configuration
	DefaultAppleCount = 1
)

// Initial snake layout relative to the origin
var (
	// SnakeStartTailOffsets are the tail positions created at spawn and on every restart, head-adjacent first
	SnakeStartTailOffsets = [2][2]int{{0, -1}, {0, -2}}
)

// DefaultColorJitter is the half-width of the uniform multiplier applied to tail colors (1 ± jitter)
const DefaultColorJitter = 0.2
