package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// MockReplayGuard implements domain.ReplayGuard for testing. With no
// overrides it behaves as an in-memory first-writer-wins map without expiry.
type MockReplayGuard struct {
	FirstSeenFunc func(ctx context.Context, key string, ttl time.Duration) (bool, error)
	WaitFunc      func(ctx context.Context, key string) (time.Duration, error)
	ReleaseFunc   func(ctx context.Context, key string) error

	mu   sync.Mutex
	seen map[string]struct{}
}

// NewMockReplayGuard creates a new MockReplayGuard with default behaviors
func NewMockReplayGuard() *MockReplayGuard {
	return &MockReplayGuard{seen: make(map[string]struct{})}
}

func (m *MockReplayGuard) FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if m.FirstSeenFunc != nil {
		return m.FirstSeenFunc(ctx, key, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.seen[key]; ok {
		return false, nil
	}
	m.seen[key] = struct{}{}
	return true, nil
}

func (m *MockReplayGuard) Wait(ctx context.Context, key string) (time.Duration, error) {
	if m.WaitFunc != nil {
		return m.WaitFunc(ctx, key)
	}
	return 0, nil
}

func (m *MockReplayGuard) Release(ctx context.Context, key string) error {
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.seen, key)
	return nil
}

// Compile-time interface compliance verification
var _ domain.ReplayGuard = (*MockReplayGuard)(nil)
