package timer

import (
	"sync"
	"time"

	"github.com/aleksandrpnshkn/gnome-timer/internal/domain"
	"github.com/aleksandrpnshkn/gnome-timer/internal/errors"
)

// Status is a point-in-time snapshot of the engine.
type Status struct {
	State      State
	Configured domain.Duration
	Remaining  domain.Duration
}

// Engine is the countdown state machine. Remaining time is always derived by
// subtraction from an absolute finish instant, never by decrementing a counter
// each tick, so the countdown stays correct across host sleep and missed or
// delayed refresh callbacks.
//
// One Engine is created per process and outlives any UI surface attached to
// it. All transitions are guarded by a mutex since CLI signal handlers, HTTP
// handlers and the refresh goroutine may call in concurrently.
type Engine struct {
	mu         sync.Mutex
	clock      Clock
	state      State
	configured domain.Duration
	finishAt   time.Time     // zero unless Playing or Paused
	pausedAt   time.Time     // zero unless Paused
	remaining  time.Duration // frozen at the pause instant while Paused
}

// NewEngine creates a stopped engine using the given clock.
// A nil clock defaults to the system clock.
func NewEngine(clock Clock) *Engine {
	if clock == nil {
		clock = RealClock{}
	}
	return &Engine{
		clock: clock,
		state: StateStopped,
	}
}

// Start begins a countdown of the given duration. The finish instant is fixed
// here as now + duration. Starting is only valid while stopped; callers must
// Stop first rather than restart over a live countdown.
func (e *Engine) Start(configured domain.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateStopped {
		return errors.NewInvalidStateError("start", e.state.String())
	}
	if !configured.IsValid() {
		return errors.NewValidationError("configured duration components are out of range", nil).
			WithContext("duration", configured.String())
	}

	now := e.clock.Now()
	e.configured = configured
	e.finishAt = now.Add(configured.Std())
	e.remaining = configured.Std()
	e.state = StatePlaying
	return nil
}

// Pause suspends a playing countdown, remembering the instant the pause began.
// Remaining time is frozen at this instant and reported unchanged until Resume.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePlaying {
		return errors.NewInvalidStateError("pause", e.state.String())
	}

	now := e.clock.Now()
	if left := e.finishAt.Sub(now); left > 0 {
		e.remaining = left
	}
	e.pausedAt = now
	e.state = StatePaused
	return nil
}

// Resume continues a paused countdown. The finish instant is shifted forward
// by exactly the paused wall-clock span so paused time never counts against
// the countdown.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePaused {
		return errors.NewInvalidStateError("resume", e.state.String())
	}

	e.finishAt = e.finishAt.Add(e.clock.Now().Sub(e.pausedAt))
	e.pausedAt = time.Time{}
	e.state = StatePlaying
	return nil
}

// Stop aborts the countdown and clears all timestamps and the remaining time.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateStopped {
		return errors.NewInvalidStateError("stop", e.state.String())
	}

	e.reset()
	return nil
}

// Update recomputes the remaining time.
//
// While playing it derives remaining = finishAt - now; once that reaches zero
// the engine transitions to stopped and reports done exactly once. While
// paused it returns the cached remaining value unchanged. Updating a stopped
// engine is a caller error.
func (e *Engine) Update() (time.Duration, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case StateStopped:
		return 0, false, errors.NewInvalidStateError("update", e.state.String())
	case StatePaused:
		return e.remaining, false, nil
	}

	left := e.finishAt.Sub(e.clock.Now())
	if left <= 0 {
		e.reset()
		return 0, true, nil
	}

	e.remaining = left
	return left, false, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Status returns a snapshot of the engine for display.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{
		State:      e.state,
		Configured: e.configured,
		Remaining:  domain.DurationFromStd(e.remaining),
	}
}

// reset clears countdown state. Callers must hold the mutex.
func (e *Engine) reset() {
	e.state = StateStopped
	e.finishAt = time.Time{}
	e.pausedAt = time.Time{}
	e.remaining = 0
}
