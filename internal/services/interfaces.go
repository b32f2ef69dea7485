package services

import (
	"context"

	"github.com/aleksandrpnshkn/gnome-timer/internal/domain"
	"github.com/aleksandrpnshkn/gnome-timer/internal/timer"
)

// StatusView represents a countdown status snapshot formatted for presentation
type StatusView struct {
	State      string `json:"state"`
	Configured string `json:"configured"`
	Remaining  string `json:"remaining"`
}

// NewStatusView converts an engine status into its presentation form
func NewStatusView(status timer.Status) StatusView {
	return StatusView{
		State:      status.State.String(),
		Configured: status.Configured.String(),
		Remaining:  status.Remaining.String(),
	}
}

// HistoryEntry represents a recorded countdown with presentation fields
type HistoryEntry struct {
	Countdown *domain.Countdown `json:"countdown"`
	Duration  string            `json:"duration"` // Human-readable configured duration
	Outcome   string            `json:"outcome"`  // "completed", "interrupted" or "running"
}

// CountdownService drives a single countdown through its lifecycle
type CountdownService interface {
	// Lifecycle operations
	Start(ctx context.Context, configured domain.Duration) error
	Pause() error
	Resume() error
	Stop(ctx context.Context) error

	// State inspection
	Status() StatusView
	Running() bool

	// Done returns a channel that closes when the current countdown reaches
	// zero or is stopped. When no countdown is active the channel is closed.
	Done() <-chan struct{}
}

// HistoryService handles recorded countdown queries
type HistoryService interface {
	ListHistory(ctx context.Context) ([]*HistoryEntry, error)
	SearchHistory(ctx context.Context, opts domain.SearchOptions) ([]*HistoryEntry, error)
	ClearHistory(ctx context.Context) (int64, error)
}
