package api

import (
	"context"
	"time"

	"github.com/aleksandrpnshkn/gnome-timer/internal/domain"
	"github.com/aleksandrpnshkn/gnome-timer/internal/errors"
	"github.com/aleksandrpnshkn/gnome-timer/internal/services"
	"github.com/aleksandrpnshkn/gnome-timer/internal/validation"
)

// API defines the interface for all countdown and history operations.
// It is the single entry point shared by the CLI commands and the status
// daemon handlers.
type API interface {
	// Countdown operations
	Start(ctx context.Context, input string) error
	Pause() error
	Resume() error
	Stop(ctx context.Context) error
	Status() services.StatusView
	Running() bool

	// Wait blocks until the active countdown ends or the context is done.
	Wait(ctx context.Context) error

	// History operations
	ListHistory(ctx context.Context) ([]*services.HistoryEntry, error)
	SearchHistory(ctx context.Context, since string, completedOnly bool) ([]*services.HistoryEntry, error)
	ClearHistory(ctx context.Context) (int64, error)
}

// timeNow is replaced in tests to pin shorthand parsing to a fixed instant
var timeNow = time.Now

type apiImpl struct {
	countdown services.CountdownService
	history   services.HistoryService
	validator *validation.Validator
}

// New creates a new API instance.
func New(countdown services.CountdownService, history services.HistoryService) API {
	return &apiImpl{
		countdown: countdown,
		history:   history,
		validator: validation.NewValidator(),
	}
}

// Start parses the duration input and begins a countdown.
// Accepted forms are bare seconds ("90"), colon notation ("25:00") and Go
// duration strings ("25m").
func (a *apiImpl) Start(ctx context.Context, input string) error {
	configured, err := domain.ParseDuration(input)
	if err != nil {
		return errors.NewInvalidInputError("duration", input, err.Error())
	}
	return a.countdown.Start(ctx, configured)
}

func (a *apiImpl) Pause() error {
	return a.countdown.Pause()
}

func (a *apiImpl) Resume() error {
	return a.countdown.Resume()
}

func (a *apiImpl) Stop(ctx context.Context) error {
	return a.countdown.Stop(ctx)
}

func (a *apiImpl) Status() services.StatusView {
	return a.countdown.Status()
}

func (a *apiImpl) Running() bool {
	return a.countdown.Running()
}

// Wait blocks until the countdown ends or the context is canceled. Waiting on
// an idle countdown returns immediately.
func (a *apiImpl) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-a.countdown.Done():
		return nil
	}
}

func (a *apiImpl) ListHistory(ctx context.Context) ([]*services.HistoryEntry, error) {
	return a.history.ListHistory(ctx)
}

// SearchHistory queries recorded countdowns. The since argument is a time
// shorthand like "2h" or "1w" and may be empty to search without a lower
// bound.
func (a *apiImpl) SearchHistory(ctx context.Context, since string, completedOnly bool) ([]*services.HistoryEntry, error) {
	opts := domain.SearchOptions{CompletedOnly: completedOnly}

	if since != "" {
		startedAfter, ok := a.validator.ParseTimeShorthand(since, timeNow())
		if !ok {
			return nil, errors.NewInvalidInputError("since", since, "expected a time shorthand like 30m, 2h, 1d, 1w, 1mo or 1y")
		}
		opts.StartedAfter = &startedAfter
	}

	return a.history.SearchHistory(ctx, opts)
}

func (a *apiImpl) ClearHistory(ctx context.Context) (int64, error) {
	return a.history.ClearHistory(ctx)
}
