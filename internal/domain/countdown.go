package domain

import (
	"time"
)

// Countdown represents a single countdown run in the domain model.
// This is a pure domain model without database-specific concerns.
type Countdown struct {
	ID         int64
	Configured Duration
	StartedAt  time.Time
	FinishedAt *time.Time
	Completed  bool
}

// NewCountdown creates a new Countdown started at the given instant.
func NewCountdown(configured Duration, startedAt time.Time) Countdown {
	return Countdown{
		Configured: configured,
		StartedAt:  startedAt,
	}
}

// IsRunning returns true if the countdown has not finished yet.
func (c Countdown) IsRunning() bool {
	return c.FinishedAt == nil
}

// Finish marks the countdown as finished at the given instant. Completed is
// true when the countdown ran to zero, false when it was stopped early.
func (c Countdown) Finish(at time.Time, completed bool) Countdown {
	c.FinishedAt = &at
	c.Completed = completed
	return c
}

// Elapsed returns the wall-clock time between start and finish.
// If the countdown is still running, it returns the time up to now.
func (c Countdown) Elapsed() time.Duration {
	if c.FinishedAt == nil {
		return time.Since(c.StartedAt)
	}
	return c.FinishedAt.Sub(c.StartedAt)
}

// IsValid checks if the countdown has valid data.
func (c Countdown) IsValid() bool {
	if !c.Configured.IsValid() {
		return false
	}
	if c.StartedAt.IsZero() {
		return false
	}
	if c.FinishedAt != nil && c.FinishedAt.Before(c.StartedAt) {
		return false
	}
	return true
}
