package sqlite

import "time"

// Countdown represents a single recorded countdown run.
// The configured duration is stored as a flat second count.
type Countdown struct {
	ID                int64
	ConfiguredSeconds int64
	StartedAt         time.Time
	FinishedAt        *time.Time // Using pointer to allow NULL values
	Completed         bool
}
