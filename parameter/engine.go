package parameter

import "time"

// Game Loop & Engine Timing
const (
	// DefaultTickRate is the number of simulation steps per second
	DefaultTickRate = 10

	// GameUpdateInterval is the tick interval at DefaultTickRate
	GameUpdateInterval = time.Second / DefaultTickRate

	// MaxTickLag is how many intervals the scheduler may fall behind before it resyncs
	MaxTickLag = 2
)

// ECS & Resources Limits
const (
	// EventQueueSize is the capacity of the outcome event ring
	EventQueueSize = 256

	// CommandQueueSize is the capacity of the input command ring, a few ticks of key repeat
	CommandQueueSize = 64

	// StoreInitialCapacity pre-sizes the dense entity slice of each component store
	StoreInitialCapacity = 64
)

// Logging
const (
	// MaxLogSizeMB rotates the log file once a write would take it past this many megabytes
	MaxLogSizeMB = 10

	// MaxLogBackups is the number of rotated log files kept next to the active one
	MaxLogBackups = 3
)
