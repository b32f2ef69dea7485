package refresh

import (
	"sync"
	"time"

	"github.com/aleksandrpnshkn/gnome-timer/internal/display"
	"github.com/aleksandrpnshkn/gnome-timer/internal/errors"
	"github.com/aleksandrpnshkn/gnome-timer/internal/timer"
)

// DefaultInterval is the refresh cadence used when none is configured.
const DefaultInterval = 500 * time.Millisecond

// Loop drives the periodic countdown refresh: on every tick it asks the
// engine to recompute the remaining time and forwards the result to the
// display sink. When the engine reports expiry the loop tears itself down,
// signals the sink once and fires the completion callback once.
//
// A Loop maintains at most one active schedule. Starting a running loop is a
// caller error; stopping is idempotent.
type Loop struct {
	mu         sync.Mutex
	engine     *timer.Engine
	sink       display.Sink
	interval   time.Duration
	schedule   Scheduler
	onComplete func()
	cancel     func()
	running    bool
}

// NewLoop creates a Loop refreshing on the given interval using the ticker
// scheduler. A non-positive interval falls back to DefaultInterval.
func NewLoop(engine *timer.Engine, sink display.Sink, interval time.Duration) *Loop {
	return NewLoopWithScheduler(engine, sink, interval, TickerScheduler)
}

// NewLoopWithScheduler creates a Loop with an injected scheduler. Tests use
// this to drive ticks manually.
func NewLoopWithScheduler(engine *timer.Engine, sink display.Sink, interval time.Duration, schedule Scheduler) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if sink == nil {
		sink = display.NopSink{}
	}
	return &Loop{
		engine:   engine,
		sink:     sink,
		interval: interval,
		schedule: schedule,
	}
}

// OnComplete registers a callback fired exactly once when the countdown
// expires naturally. It must be set before Start.
func (l *Loop) OnComplete(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onComplete = fn
}

// Start begins refreshing. The first update runs synchronously before any
// scheduled tick so the display reflects the countdown immediately rather
// than one interval late.
func (l *Loop) Start() error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return errors.NewInvalidStateError("start refresh loop", "running")
	}
	l.running = true
	l.mu.Unlock()

	if !l.tick() {
		// Expired or lost the engine on the immediate update; nothing to
		// schedule.
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		l.cancel = l.schedule(l.interval, l.tick)
	}
	return nil
}

// Stop deterministically unschedules the pending tick. Once Stop returns no
// further tick can reach the sink. Stopping an idle loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.running = false
	l.mu.Unlock()

	// Must not hold the mutex here: cancel waits for an in-flight tick.
	if cancel != nil {
		cancel()
	}
}

// Running reports whether the loop currently has an active schedule.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// tick performs one refresh. The boolean return keeps the schedule alive.
func (l *Loop) tick() bool {
	remaining, done, err := l.engine.Update()
	if err != nil {
		// The engine was stopped externally between ticks; wind down
		// without touching the display.
		l.finish()
		return false
	}

	if done {
		l.sink.ShowDone()
		onComplete := l.finish()
		if onComplete != nil {
			onComplete()
		}
		return false
	}

	l.sink.ShowRemaining(remaining, l.engine.State())
	return true
}

// finish clears the schedule bookkeeping and returns the completion callback,
// if any.
func (l *Loop) finish() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.running = false
	l.cancel = nil
	return l.onComplete
}
