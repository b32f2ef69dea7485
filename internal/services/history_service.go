package services

import (
	"context"

	"github.com/aleksandrpnshkn/gnome-timer/internal/domain"
	"github.com/aleksandrpnshkn/gnome-timer/internal/errors"
	"github.com/aleksandrpnshkn/gnome-timer/internal/repository/sqlite"
	"github.com/aleksandrpnshkn/gnome-timer/internal/validation"
)

// historyServiceImpl implements the HistoryService interface
type historyServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.CountdownValidator
}

// NewHistoryService creates a new HistoryService instance
func NewHistoryService(repo sqlite.Repository) HistoryService {
	return &historyServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewCountdownValidator(),
	}
}

// ListHistory returns all recorded countdowns, most recent first
func (h *historyServiceImpl) ListHistory(ctx context.Context) ([]*HistoryEntry, error) {
	dbCountdowns, err := h.repo.ListCountdowns(ctx)
	if err != nil {
		return nil, err
	}

	return h.toEntries(dbCountdowns), nil
}

// SearchHistory returns recorded countdowns matching the given options
func (h *historyServiceImpl) SearchHistory(ctx context.Context, opts domain.SearchOptions) ([]*HistoryEntry, error) {
	if err := h.validator.ValidateSearchOptions(opts); err != nil {
		return nil, errors.NewValidationError("invalid search options", err)
	}

	dbCountdowns, err := h.repo.SearchCountdowns(ctx, h.mapper.SearchOptions.ToDatabase(opts))
	if err != nil {
		return nil, err
	}

	return h.toEntries(dbCountdowns), nil
}

// ClearHistory deletes all recorded countdowns and returns how many were removed
func (h *historyServiceImpl) ClearHistory(ctx context.Context) (int64, error) {
	return h.repo.DeleteAllCountdowns(ctx)
}

// toEntries converts database countdowns into presentation entries
func (h *historyServiceImpl) toEntries(dbCountdowns []*sqlite.Countdown) []*HistoryEntry {
	entries := make([]*HistoryEntry, len(dbCountdowns))
	for i, dbCountdown := range dbCountdowns {
		countdown := h.mapper.Countdown.FromDatabase(*dbCountdown)
		entries[i] = &HistoryEntry{
			Countdown: &countdown,
			Duration:  countdown.Configured.String(),
			Outcome:   outcomeOf(countdown),
		}
	}
	return entries
}

// outcomeOf describes how a recorded countdown ended
func outcomeOf(countdown domain.Countdown) string {
	switch {
	case countdown.FinishedAt == nil:
		return "running"
	case countdown.Completed:
		return "completed"
	default:
		return "interrupted"
	}
}
