package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the fixed simulation step (~60 ticks per second)
	TickInterval = 16 * time.Millisecond

	// IntentBufferSize is the capacity of the input intent channel
	IntentBufferSize = 256
)
