package mocks

import (
	"context"
	"time"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// MockBusinessService implements domain.BusinessService for handler tests
type MockBusinessService struct {
	RegisterFunc           func(ctx context.Context, name, email, phone string) (*domain.Business, error)
	GetFunc                func(ctx context.Context, id uint) (*domain.Business, error)
	ListFunc               func(ctx context.Context) ([]*domain.Business, error)
	ActivateFunc           func(ctx context.Context, id uint) error
	DeactivateFunc         func(ctx context.Context, id uint) error
	AssignCustomNumberFunc func(ctx context.Context, id uint, number string) (*domain.Business, error)
}

func NewMockBusinessService() *MockBusinessService {
	return &MockBusinessService{}
}

func (m *MockBusinessService) Register(ctx context.Context, name, email, phone string) (*domain.Business, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, phone)
	}
	return &domain.Business{
		ID:               1,
		Name:             name,
		ContactEmail:     email,
		Phone:            phone,
		VerifyServiceSID: "VA00000000000000000000000000000000",
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}, nil
}

func (m *MockBusinessService) Get(ctx context.Context, id uint) (*domain.Business, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrBusinessNotFound
}

func (m *MockBusinessService) List(ctx context.Context) ([]*domain.Business, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*domain.Business{}, nil
}

func (m *MockBusinessService) Activate(ctx context.Context, id uint) error {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, id)
	}
	return nil
}

func (m *MockBusinessService) Deactivate(ctx context.Context, id uint) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *MockBusinessService) AssignCustomNumber(ctx context.Context, id uint, number string) (*domain.Business, error) {
	if m.AssignCustomNumberFunc != nil {
		return m.AssignCustomNumberFunc(ctx, id, number)
	}
	return nil, domain.ErrBusinessNotFound
}

// MockVerificationService implements domain.VerificationService for handler tests
type MockVerificationService struct {
	SendCodeFunc  func(ctx context.Context, businessID uint, phone, channel string) (*domain.SendCodeResult, error)
	CheckCodeFunc func(ctx context.Context, businessID uint, phone, code string) (*domain.CheckCodeResult, error)
}

func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

func (m *MockVerificationService) SendCode(ctx context.Context, businessID uint, phone, channel string) (*domain.SendCodeResult, error) {
	if m.SendCodeFunc != nil {
		return m.SendCodeFunc(ctx, businessID, phone, channel)
	}
	attempt := &domain.VerificationAttempt{
		ID:             1,
		BusinessID:     businessID,
		Phone:          phone,
		Channel:        domain.ChannelSMS,
		ProviderStatus: "pending",
		ProviderSID:    "VE00000000000000000000000000000000",
	}
	return &domain.SendCodeResult{Attempt: attempt, Status: "pending"}, nil
}

func (m *MockVerificationService) CheckCode(ctx context.Context, businessID uint, phone, code string) (*domain.CheckCodeResult, error) {
	if m.CheckCodeFunc != nil {
		return m.CheckCodeFunc(ctx, businessID, phone, code)
	}
	valid := code == "123456"
	status := "pending"
	if valid {
		status = "approved"
	}
	check := &domain.VerificationCheck{
		ID:             1,
		AttemptID:      1,
		BusinessID:     businessID,
		Phone:          phone,
		Code:           code,
		ProviderStatus: status,
		Success:        valid,
	}
	return &domain.CheckCodeResult{Check: check, Valid: valid}, nil
}

// MockMessagingService implements domain.MessagingService for handler tests
type MockMessagingService struct {
	SendFunc    func(ctx context.Context, businessID uint, to, body string) (*domain.Message, error)
	ReceiveFunc func(ctx context.Context, inbound *domain.InboundMessage) (*domain.Message, error)
}

func NewMockMessagingService() *MockMessagingService {
	return &MockMessagingService{}
}

func (m *MockMessagingService) Send(ctx context.Context, businessID uint, to, body string) (*domain.Message, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, businessID, to, body)
	}
	return &domain.Message{
		ID:             1,
		ConversationID: 1,
		Direction:      domain.DirectionOutbound,
		Body:           body,
		ProviderSID:    "SM00000000000000000000000000000000",
		Status:         "queued",
		CreatedAt:      time.Now(),
	}, nil
}

func (m *MockMessagingService) Receive(ctx context.Context, inbound *domain.InboundMessage) (*domain.Message, error) {
	if m.ReceiveFunc != nil {
		return m.ReceiveFunc(ctx, inbound)
	}
	return &domain.Message{
		ID:             1,
		ConversationID: 1,
		Direction:      domain.DirectionInbound,
		Body:           inbound.Body,
		ProviderSID:    inbound.ProviderSID,
		Status:         "received",
		CreatedAt:      time.Now(),
	}, nil
}

// Compile-time interface compliance verification
var (
	_ domain.BusinessService     = (*MockBusinessService)(nil)
	_ domain.VerificationService = (*MockVerificationService)(nil)
	_ domain.MessagingService    = (*MockMessagingService)(nil)
)
