package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleksandrpnshkn/gnome-timer/internal/domain"
	"github.com/aleksandrpnshkn/gnome-timer/internal/errors"
	"github.com/aleksandrpnshkn/gnome-timer/internal/notify"
	"github.com/aleksandrpnshkn/gnome-timer/internal/refresh"
	"github.com/aleksandrpnshkn/gnome-timer/internal/repository/sqlite"
	"github.com/aleksandrpnshkn/gnome-timer/internal/timer"
	"github.com/aleksandrpnshkn/gnome-timer/internal/validation"
)

// CountdownServiceOptions configures optional countdown service behaviour
type CountdownServiceOptions struct {
	HistoryEnabled bool
	WriteTimeout   time.Duration
	MaxCountdown   time.Duration
}

// countdownServiceImpl implements the CountdownService interface
type countdownServiceImpl struct {
	engine    *timer.Engine
	loop      *refresh.Loop
	notifier  notify.Notifier
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.CountdownValidator
	clock     timer.Clock
	logger    zerolog.Logger
	opts      CountdownServiceOptions

	mu      sync.Mutex
	current *domain.Countdown
	done    chan struct{}
}

// NewCountdownService creates a new CountdownService instance. The repository
// may be nil when history recording is disabled.
func NewCountdownService(
	engine *timer.Engine,
	loop *refresh.Loop,
	notifier notify.Notifier,
	repo sqlite.Repository,
	logger zerolog.Logger,
	opts CountdownServiceOptions,
) CountdownService {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	validator := validation.NewCountdownValidator()
	if opts.MaxCountdown > 0 {
		validator = validation.NewCountdownValidatorWithMaxCountdown(opts.MaxCountdown)
	}

	s := &countdownServiceImpl{
		engine:    engine,
		loop:      loop,
		notifier:  notifier,
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validator,
		clock:     timer.RealClock{},
		logger:    logger,
		opts:      opts,
	}
	loop.OnComplete(s.handleCompletion)
	return s
}

// Start begins a new countdown with the given duration
func (s *countdownServiceImpl) Start(ctx context.Context, configured domain.Duration) error {
	if err := s.validator.ValidateDurationForStart(configured); err != nil {
		return errors.NewValidationError("invalid countdown duration", err)
	}

	if err := s.engine.Start(configured); err != nil {
		return err
	}

	s.mu.Lock()
	countdown := domain.NewCountdown(configured, s.clock.Now())
	s.current = &countdown
	s.done = make(chan struct{})
	s.mu.Unlock()

	if err := s.loop.Start(); err != nil {
		// Roll the engine back so a later Start finds a clean state
		_ = s.engine.Stop()
		s.mu.Lock()
		done := s.done
		s.current = nil
		s.done = nil
		s.mu.Unlock()
		if done != nil {
			close(done)
		}
		return err
	}

	s.logger.Info().
		Str("configured", configured.String()).
		Msg("countdown started")
	return nil
}

// Pause suspends the running countdown and its refresh loop
func (s *countdownServiceImpl) Pause() error {
	if err := s.engine.Pause(); err != nil {
		return err
	}
	s.loop.Stop()

	s.logger.Info().Msg("countdown paused")
	return nil
}

// Resume continues a paused countdown and restarts the refresh loop
func (s *countdownServiceImpl) Resume() error {
	if err := s.engine.Resume(); err != nil {
		return err
	}
	if err := s.loop.Start(); err != nil {
		return err
	}

	s.logger.Info().Msg("countdown resumed")
	return nil
}

// Stop aborts the current countdown and records it as interrupted
func (s *countdownServiceImpl) Stop(ctx context.Context) error {
	s.loop.Stop()
	if err := s.engine.Stop(); err != nil {
		return err
	}

	s.mu.Lock()
	current := s.current
	done := s.done
	s.current = nil
	s.done = nil
	s.mu.Unlock()

	if current != nil {
		finished := current.Finish(s.clock.Now(), false)
		s.recordHistory(ctx, finished)
	}
	if done != nil {
		close(done)
	}

	s.logger.Info().Msg("countdown stopped")
	return nil
}

// Status returns a presentation snapshot of the current countdown
func (s *countdownServiceImpl) Status() StatusView {
	return NewStatusView(s.engine.Status())
}

// Running returns true while a countdown is active, paused included
func (s *countdownServiceImpl) Running() bool {
	return s.engine.State() != timer.StateStopped
}

// Done returns a channel closed when the active countdown ends
func (s *countdownServiceImpl) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return s.done
}

// handleCompletion runs when the refresh loop observes the countdown reach zero
func (s *countdownServiceImpl) handleCompletion() {
	s.mu.Lock()
	current := s.current
	done := s.done
	s.current = nil
	s.done = nil
	s.mu.Unlock()

	if err := s.notifier.Notify("Countdown finished", "The countdown has reached zero."); err != nil {
		s.logger.Warn().Err(err).Msg("failed to send completion notification")
	}

	if current != nil {
		ctx, cancel := context.WithTimeout(context.Background(), s.opts.WriteTimeout)
		defer cancel()
		finished := current.Finish(s.clock.Now(), true)
		s.recordHistory(ctx, finished)
	}

	if done != nil {
		close(done)
	}

	s.logger.Info().Msg("countdown completed")
}

// recordHistory persists a finished countdown. Failures are logged rather than
// propagated so a broken database never blocks the timer itself.
func (s *countdownServiceImpl) recordHistory(ctx context.Context, countdown domain.Countdown) {
	if !s.opts.HistoryEnabled || s.repo == nil {
		return
	}

	dbCountdown := s.mapper.Countdown.ToDatabase(countdown)
	if err := s.repo.CreateCountdown(ctx, &dbCountdown); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record countdown history")
	}
}
