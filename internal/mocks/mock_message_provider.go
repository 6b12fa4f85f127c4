package mocks

import (
	"context"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// MockMessageProvider implements domain.MessageProvider for testing
type MockMessageProvider struct {
	SendFunc func(ctx context.Context, from, to, body string) (string, string, error)
}

// NewMockMessageProvider creates a new MockMessageProvider with default behaviors
func NewMockMessageProvider() *MockMessageProvider {
	return &MockMessageProvider{}
}

func (m *MockMessageProvider) Send(ctx context.Context, from, to, body string) (string, string, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, from, to, body)
	}
	return "SM00000000000000000000000000000000", "queued", nil
}

// Compile-time interface compliance verification
var _ domain.MessageProvider = (*MockMessageProvider)(nil)
