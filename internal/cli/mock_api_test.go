package cli

import (
	"context"
	"sync"

	"github.com/aleksandrpnshkn/gnome-timer/internal/services"
)

// mockAPI implements api.API for command handler tests
type mockAPI struct {
	mu sync.Mutex

	startInputs []string
	stops       int
	startErr    error
	stopErr     error
	clearErr    error

	status  services.StatusView
	running bool

	entries    []*services.HistoryEntry
	listCalls  int
	searchUsed bool
	lastSince  string
	lastOnly   bool
	cleared    int64

	doneChan chan struct{}
}

func newMockAPI() *mockAPI {
	return &mockAPI{}
}

func (m *mockAPI) Start(ctx context.Context, input string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.startErr != nil {
		return m.startErr
	}
	m.startInputs = append(m.startInputs, input)
	m.running = true
	return nil
}

func (m *mockAPI) Pause() error  { return nil }
func (m *mockAPI) Resume() error { return nil }

func (m *mockAPI) Stop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopErr != nil {
		return m.stopErr
	}
	m.stops++
	m.running = false
	return nil
}

func (m *mockAPI) Status() services.StatusView {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *mockAPI) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *mockAPI) Wait(ctx context.Context) error {
	m.mu.Lock()
	done := m.doneChan
	m.mu.Unlock()
	if done == nil {
		closed := make(chan struct{})
		close(closed)
		done = closed
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

func (m *mockAPI) ListHistory(ctx context.Context) ([]*services.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	return m.entries, nil
}

func (m *mockAPI) SearchHistory(ctx context.Context, since string, completedOnly bool) ([]*services.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchUsed = true
	m.lastSince = since
	m.lastOnly = completedOnly
	return m.entries, nil
}

func (m *mockAPI) ClearHistory(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return 0, m.clearErr
	}
	return m.cleared, nil
}
