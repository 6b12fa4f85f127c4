package mocks

import (
	"context"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// MockVerificationRepository implements domain.VerificationRepository for testing
type MockVerificationRepository struct {
	CreateAttemptFunc func(ctx context.Context, attempt *domain.VerificationAttempt) error
	LatestAttemptFunc func(ctx context.Context, businessID uint, phone string) (*domain.VerificationAttempt, error)
	CreateCheckFunc   func(ctx context.Context, check *domain.VerificationCheck) error
}

// NewMockVerificationRepository creates a new MockVerificationRepository with default behaviors
func NewMockVerificationRepository() *MockVerificationRepository {
	return &MockVerificationRepository{}
}

func (m *MockVerificationRepository) CreateAttempt(ctx context.Context, attempt *domain.VerificationAttempt) error {
	if m.CreateAttemptFunc != nil {
		return m.CreateAttemptFunc(ctx, attempt)
	}
	attempt.ID = 1
	return nil
}

func (m *MockVerificationRepository) LatestAttempt(ctx context.Context, businessID uint, phone string) (*domain.VerificationAttempt, error) {
	if m.LatestAttemptFunc != nil {
		return m.LatestAttemptFunc(ctx, businessID, phone)
	}
	return nil, domain.ErrAttemptNotFound
}

func (m *MockVerificationRepository) CreateCheck(ctx context.Context, check *domain.VerificationCheck) error {
	if m.CreateCheckFunc != nil {
		return m.CreateCheckFunc(ctx, check)
	}
	check.ID = 1
	return nil
}

// Compile-time interface compliance verification
var _ domain.VerificationRepository = (*MockVerificationRepository)(nil)
