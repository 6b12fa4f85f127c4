package mocks

import (
	"context"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// MockBusinessRepository implements domain.BusinessRepository for testing
type MockBusinessRepository struct {
	CreateFunc             func(ctx context.Context, business *domain.Business) error
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.Business, error)
	FindByPhoneFunc        func(ctx context.Context, phone string) (*domain.Business, error)
	FindByCustomNumberFunc func(ctx context.Context, number string) (*domain.Business, error)
	ListFunc               func(ctx context.Context) ([]*domain.Business, error)
	UpdateFunc             func(ctx context.Context, business *domain.Business) error
	ActivateFunc           func(ctx context.Context, id uint) error
	DeleteFunc             func(ctx context.Context, id uint) error
}

// NewMockBusinessRepository creates a new MockBusinessRepository with default behaviors
func NewMockBusinessRepository() *MockBusinessRepository {
	return &MockBusinessRepository{}
}

func (m *MockBusinessRepository) Create(ctx context.Context, business *domain.Business) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, business)
	}
	business.ID = 1
	return nil
}

func (m *MockBusinessRepository) FindByID(ctx context.Context, id uint) (*domain.Business, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrBusinessNotFound
}

func (m *MockBusinessRepository) FindByPhone(ctx context.Context, phone string) (*domain.Business, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, domain.ErrBusinessNotFound
}

func (m *MockBusinessRepository) FindByCustomNumber(ctx context.Context, number string) (*domain.Business, error) {
	if m.FindByCustomNumberFunc != nil {
		return m.FindByCustomNumberFunc(ctx, number)
	}
	return nil, domain.ErrBusinessNotFound
}

func (m *MockBusinessRepository) List(ctx context.Context) ([]*domain.Business, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*domain.Business{}, nil
}

func (m *MockBusinessRepository) Update(ctx context.Context, business *domain.Business) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, business)
	}
	return nil
}

func (m *MockBusinessRepository) Activate(ctx context.Context, id uint) error {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, id)
	}
	return nil
}

func (m *MockBusinessRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.BusinessRepository = (*MockBusinessRepository)(nil)
