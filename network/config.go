package network

import (
	"time"
)

// Config holds spectator feed configuration
type Config struct {
	// Address to bind, empty disables the feed
	Address string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout      time.Duration
	ReadTimeout       time.Duration // Pong deadline
	HeartbeatInterval time.Duration // Ping period, must be below ReadTimeout

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int   // Frames buffered per subscriber before drops
	MaxMessageSize  int64 // Inbound limit, spectators only send control frames
}

// DefaultConfig returns defaults for a local spectator feed
func DefaultConfig() *Config {
	return &Config{
		Address:           "",
		MaxPeers:          16,
		WriteTimeout:      5 * time.Second,
		ReadTimeout:       30 * time.Second,
		HeartbeatInterval: 10 * time.Second,
		ReadBufferSize:    1024,
		WriteBufferSize:   16 * 1024,
		SendQueueSize:     16,
		MaxMessageSize:    512,
	}
}
