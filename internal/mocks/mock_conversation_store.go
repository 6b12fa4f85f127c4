package mocks

import (
	"context"
	"time"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// MockConversationStore implements domain.ConversationStore for testing
type MockConversationStore struct {
	RecordMessageFunc  func(ctx context.Context, businessID uint, contactNumber, direction, body, providerSID, status string) (*domain.Message, error)
	ListByBusinessFunc func(ctx context.Context, businessID uint) ([]*domain.Conversation, error)
	ListMessagesFunc   func(ctx context.Context, conversationID uint) ([]*domain.Message, error)
	MarkReadFunc       func(ctx context.Context, conversationID uint) error
}

// NewMockConversationStore creates a new MockConversationStore with default behaviors
func NewMockConversationStore() *MockConversationStore {
	return &MockConversationStore{}
}

func (m *MockConversationStore) RecordMessage(ctx context.Context, businessID uint, contactNumber, direction, body, providerSID, status string) (*domain.Message, error) {
	if m.RecordMessageFunc != nil {
		return m.RecordMessageFunc(ctx, businessID, contactNumber, direction, body, providerSID, status)
	}
	return &domain.Message{
		ID:             1,
		ConversationID: 1,
		Direction:      direction,
		Body:           body,
		ProviderSID:    providerSID,
		Status:         status,
		CreatedAt:      time.Now(),
	}, nil
}

func (m *MockConversationStore) ListByBusiness(ctx context.Context, businessID uint) ([]*domain.Conversation, error) {
	if m.ListByBusinessFunc != nil {
		return m.ListByBusinessFunc(ctx, businessID)
	}
	return []*domain.Conversation{}, nil
}

func (m *MockConversationStore) ListMessages(ctx context.Context, conversationID uint) ([]*domain.Message, error) {
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx, conversationID)
	}
	return []*domain.Message{}, nil
}

func (m *MockConversationStore) MarkRead(ctx context.Context, conversationID uint) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, conversationID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.ConversationStore = (*MockConversationStore)(nil)
