package wfc

import (
	"time"
)

// Config includes settings for a solver run.
type Config struct {
	// StackBound caps the backtracking stack: when full the oldest
	// entry is evicted (its placement is never undone), trading
	// completeness for bounded memory.
	StackBound int

	// StepDelay paces the loop for animation; zero for headless runs.
	StepDelay time.Duration

	// Seed for the random source; 0 means time-based.
	Seed int64
}

// DefaultConfig returns solver settings with default values.
func DefaultConfig() *Config {
	return &Config{
		StackBound: 100,
		StepDelay:  5 * time.Millisecond,
	}
}
