package service

import "time"

// Config holds configuration for the a2a feed service.
type Config struct {
	// Interval is the cadence at which synthetic queries are generated.
	Interval time.Duration
	// TapeSize is the capacity of the query ring buffer.
	TapeSize int
	// EventBuffer is the size of the external events channel.
	EventBuffer int
	// DropEvents determines whether the events channel drops on overflow.
	DropEvents bool
	// Seed seeds the generator; 0 means seed from the clock.
	Seed int64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Interval:    3 * time.Second,
		TapeSize:    100,
		EventBuffer: 256,
		DropEvents:  true,
	}
}
