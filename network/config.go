package network

import (
	"time"
)

// Config holds snapshot feed configuration
type Config struct {
	// Address to bind
	Address string

	// Timing
	WriteTimeout time.Duration
	PingInterval time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	// SendQueueSize bounds snapshots queued per subscriber, extras are dropped
	SendQueueSize int
}

// DefaultConfig returns local-safe defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         ":7777",
		WriteTimeout:    5 * time.Second,
		PingInterval:    20 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 16 * 1024,
		SendQueueSize:   16,
	}
}
