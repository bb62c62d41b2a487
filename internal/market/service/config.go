package service

import "time"

// Config holds configuration for the market service.
type Config struct {
	// MinTickInterval and MaxTickInterval bound the randomized cadence;
	// each market re-draws a uniform interval in this range after every tick.
	MinTickInterval time.Duration
	MaxTickInterval time.Duration
	// EventBuffer is the size of the consolidated market events channel.
	EventBuffer int
	// DropEvents determines whether the events channel drops on overflow.
	DropEvents bool
	// TapeSize is the capacity of the cross-SKU trade tape.
	TapeSize int
	// Seed seeds per-market random sources; 0 means seed from the clock.
	Seed int64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		MinTickInterval: 800 * time.Millisecond,
		MaxTickInterval: 1200 * time.Millisecond,
		EventBuffer:     1024,
		DropEvents:      true,
		TapeSize:        200,
	}
}
