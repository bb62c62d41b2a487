package service

import (
	"time"

	"github.com/agentfair/agorasim/internal/graph/core"
)

// Config holds configuration for the graph layout service.
type Config struct {
	// FrameInterval is the integrator cadence (the animation-frame stand-in).
	FrameInterval time.Duration
	// Force is the layout tuning passed to the integrator.
	Force core.ForceConfig
	// Width and Height are the initial logical canvas dimensions.
	Width, Height float64
	// Seed seeds the node-scatter random source; 0 means seed from the clock.
	Seed int64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		FrameInterval: 16 * time.Millisecond,
		Force:         core.DefaultForceConfig(),
		Width:         800,
		Height:        600,
	}
}
