package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksandrpnshkn/gnome-timer/internal/display"
	"github.com/aleksandrpnshkn/gnome-timer/internal/domain"
	"github.com/aleksandrpnshkn/gnome-timer/internal/errors"
	"github.com/aleksandrpnshkn/gnome-timer/internal/refresh"
	"github.com/aleksandrpnshkn/gnome-timer/internal/repository/sqlite"
	"github.com/aleksandrpnshkn/gnome-timer/internal/timer"
)

// fakeClock is a manually advanced clock for deterministic tests
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// manualScheduler lets tests fire ticks by hand
type manualScheduler struct {
	mu       sync.Mutex
	fn       func() bool
	canceled int
}

func (s *manualScheduler) schedule(interval time.Duration, fn func() bool) func() {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.canceled++
		s.fn = nil
		s.mu.Unlock()
	}
}

func (s *manualScheduler) fire() {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// memoryRepo is an in-memory Repository for service tests
type memoryRepo struct {
	mu         sync.Mutex
	countdowns []*sqlite.Countdown
	nextID     int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{nextID: 1}
}

func (r *memoryRepo) CreateCountdown(ctx context.Context, countdown *sqlite.Countdown) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	countdown.ID = r.nextID
	r.nextID++
	stored := *countdown
	r.countdowns = append(r.countdowns, &stored)
	return nil
}

func (r *memoryRepo) ListCountdowns(ctx context.Context) ([]*sqlite.Countdown, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*sqlite.Countdown, len(r.countdowns))
	copy(result, r.countdowns)
	return result, nil
}

func (r *memoryRepo) SearchCountdowns(ctx context.Context, opts sqlite.SearchOptions) ([]*sqlite.Countdown, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*sqlite.Countdown
	for _, c := range r.countdowns {
		if opts.StartedAfter != nil && c.StartedAt.Before(*opts.StartedAfter) {
			continue
		}
		if opts.StartedBefore != nil && c.StartedAt.After(*opts.StartedBefore) {
			continue
		}
		if opts.CompletedOnly && !c.Completed {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *memoryRepo) DeleteAllCountdowns(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := int64(len(r.countdowns))
	r.countdowns = nil
	return count, nil
}

func (r *memoryRepo) Close() error { return nil }

// captureNotifier records notifications for assertions
type captureNotifier struct {
	mu        sync.Mutex
	summaries []string
}

func (n *captureNotifier) Notify(summary, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.summaries = append(n.summaries, summary)
	return nil
}

func (n *captureNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.summaries)
}

type serviceFixture struct {
	clock    *fakeClock
	sched    *manualScheduler
	repo     *memoryRepo
	notifier *captureNotifier
	service  CountdownService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	clock := newFakeClock()
	sched := &manualScheduler{}
	repo := newMemoryRepo()
	notifier := &captureNotifier{}

	engine := timer.NewEngine(clock)
	loop := refresh.NewLoopWithScheduler(engine, display.NopSink{}, 500*time.Millisecond, sched.schedule)
	service := NewCountdownService(engine, loop, notifier, repo, zerolog.Nop(), CountdownServiceOptions{
		HistoryEnabled: true,
	})

	return &serviceFixture{
		clock:    clock,
		sched:    sched,
		repo:     repo,
		notifier: notifier,
		service:  service,
	}
}

func TestCountdownService_Start(t *testing.T) {
	t.Run("should start a valid countdown", func(t *testing.T) {
		f := newServiceFixture(t)

		err := f.service.Start(context.Background(), domain.NewDuration(0, 25, 0))
		require.NoError(t, err)

		assert.True(t, f.service.Running())
		status := f.service.Status()
		assert.Equal(t, "playing", status.State)
		assert.Equal(t, "00:25:00", status.Configured)
	})

	t.Run("should reject a zero duration", func(t *testing.T) {
		f := newServiceFixture(t)

		err := f.service.Start(context.Background(), domain.NewDuration(0, 0, 0))
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
		assert.False(t, f.service.Running())
	})

	t.Run("should reject starting while already running", func(t *testing.T) {
		f := newServiceFixture(t)

		require.NoError(t, f.service.Start(context.Background(), domain.NewDuration(0, 5, 0)))

		err := f.service.Start(context.Background(), domain.NewDuration(0, 10, 0))
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidState))
	})

	t.Run("should reject starting while paused", func(t *testing.T) {
		f := newServiceFixture(t)

		require.NoError(t, f.service.Start(context.Background(), domain.NewDuration(0, 5, 0)))
		require.NoError(t, f.service.Pause())

		err := f.service.Start(context.Background(), domain.NewDuration(0, 10, 0))
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidState))
	})
}

func TestCountdownService_PauseResume(t *testing.T) {
	t.Run("should pause and resume the countdown", func(t *testing.T) {
		f := newServiceFixture(t)

		require.NoError(t, f.service.Start(context.Background(), domain.NewDuration(0, 5, 0)))
		f.clock.Advance(1 * time.Minute)

		require.NoError(t, f.service.Pause())
		assert.Equal(t, "paused", f.service.Status().State)

		// Time spent paused must not consume the countdown
		f.clock.Advance(8 * time.Hour)

		require.NoError(t, f.service.Resume())
		status := f.service.Status()
		assert.Equal(t, "playing", status.State)
		assert.Equal(t, "00:04:00", status.Remaining)
	})

	t.Run("should reject pause while stopped", func(t *testing.T) {
		f := newServiceFixture(t)

		err := f.service.Pause()
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidState))
	})

	t.Run("should reject resume while playing", func(t *testing.T) {
		f := newServiceFixture(t)

		require.NoError(t, f.service.Start(context.Background(), domain.NewDuration(0, 5, 0)))

		err := f.service.Resume()
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidState))
	})
}

func TestCountdownService_Stop(t *testing.T) {
	t.Run("should record an interrupted countdown", func(t *testing.T) {
		f := newServiceFixture(t)

		require.NoError(t, f.service.Start(context.Background(), domain.NewDuration(0, 5, 0)))
		f.clock.Advance(2 * time.Minute)

		require.NoError(t, f.service.Stop(context.Background()))
		assert.False(t, f.service.Running())

		recorded, err := f.repo.ListCountdowns(context.Background())
		require.NoError(t, err)
		require.Len(t, recorded, 1)
		assert.Equal(t, int64(300), recorded[0].ConfiguredSeconds)
		assert.False(t, recorded[0].Completed)
		require.NotNil(t, recorded[0].FinishedAt)
	})

	t.Run("should reject stop while stopped", func(t *testing.T) {
		f := newServiceFixture(t)

		err := f.service.Stop(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidState))
	})

	t.Run("should close the done channel", func(t *testing.T) {
		f := newServiceFixture(t)

		require.NoError(t, f.service.Start(context.Background(), domain.NewDuration(0, 5, 0)))
		done := f.service.Done()

		require.NoError(t, f.service.Stop(context.Background()))

		select {
		case <-done:
		default:
			t.Fatal("done channel should be closed after stop")
		}
	})
}

func TestCountdownService_Completion(t *testing.T) {
	t.Run("should notify and record when the countdown expires", func(t *testing.T) {
		f := newServiceFixture(t)

		require.NoError(t, f.service.Start(context.Background(), domain.NewDuration(0, 0, 5)))
		done := f.service.Done()

		f.clock.Advance(6 * time.Second)
		f.sched.fire()

		select {
		case <-done:
		default:
			t.Fatal("done channel should be closed after expiry")
		}

		assert.False(t, f.service.Running())
		assert.Equal(t, 1, f.notifier.count())

		recorded, err := f.repo.ListCountdowns(context.Background())
		require.NoError(t, err)
		require.Len(t, recorded, 1)
		assert.True(t, recorded[0].Completed)
	})

	t.Run("should allow a fresh start after completion", func(t *testing.T) {
		f := newServiceFixture(t)

		require.NoError(t, f.service.Start(context.Background(), domain.NewDuration(0, 0, 5)))
		f.clock.Advance(6 * time.Second)
		f.sched.fire()

		require.NoError(t, f.service.Start(context.Background(), domain.NewDuration(0, 10, 0)))
		assert.Equal(t, "playing", f.service.Status().State)
	})

	t.Run("should not record history when disabled", func(t *testing.T) {
		clock := newFakeClock()
		sched := &manualScheduler{}
		repo := newMemoryRepo()

		engine := timer.NewEngine(clock)
		loop := refresh.NewLoopWithScheduler(engine, display.NopSink{}, 500*time.Millisecond, sched.schedule)
		service := NewCountdownService(engine, loop, notifyNop{}, repo, zerolog.Nop(), CountdownServiceOptions{
			HistoryEnabled: false,
		})

		require.NoError(t, service.Start(context.Background(), domain.NewDuration(0, 0, 5)))
		clock.Advance(6 * time.Second)
		sched.fire()

		recorded, err := repo.ListCountdowns(context.Background())
		require.NoError(t, err)
		assert.Empty(t, recorded)
	})
}

func TestCountdownService_Done(t *testing.T) {
	t.Run("should return a closed channel when idle", func(t *testing.T) {
		f := newServiceFixture(t)

		select {
		case <-f.service.Done():
		default:
			t.Fatal("done channel should be closed when no countdown is active")
		}
	})
}

// notifyNop satisfies notify.Notifier without recording anything
type notifyNop struct{}

func (notifyNop) Notify(summary, body string) error { return nil }
