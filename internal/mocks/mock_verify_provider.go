package mocks

import (
	"context"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// MockVerifyProvider implements domain.VerifyProvider for testing
type MockVerifyProvider struct {
	CreateServiceFunc func(ctx context.Context, friendlyName string) (string, error)
	SendCodeFunc      func(ctx context.Context, serviceSID, phone, channel string) (string, string, error)
	CheckCodeFunc     func(ctx context.Context, serviceSID, phone, code string) (string, bool, error)
}

// NewMockVerifyProvider creates a new MockVerifyProvider with default behaviors
func NewMockVerifyProvider() *MockVerifyProvider {
	return &MockVerifyProvider{}
}

func (m *MockVerifyProvider) CreateService(ctx context.Context, friendlyName string) (string, error) {
	if m.CreateServiceFunc != nil {
		return m.CreateServiceFunc(ctx, friendlyName)
	}
	return "VA00000000000000000000000000000000", nil
}

func (m *MockVerifyProvider) SendCode(ctx context.Context, serviceSID, phone, channel string) (string, string, error) {
	if m.SendCodeFunc != nil {
		return m.SendCodeFunc(ctx, serviceSID, phone, channel)
	}
	return "VE00000000000000000000000000000000", "pending", nil
}

func (m *MockVerifyProvider) CheckCode(ctx context.Context, serviceSID, phone, code string) (string, bool, error) {
	if m.CheckCodeFunc != nil {
		return m.CheckCodeFunc(ctx, serviceSID, phone, code)
	}
	// Default behavior: accept "123456" as the valid code
	if code == "123456" {
		return "approved", true, nil
	}
	return "pending", false, nil
}

// Compile-time interface compliance verification
var _ domain.VerifyProvider = (*MockVerifyProvider)(nil)
