package services

import (
	"context"
	"errors"
	"testing"

	"github.com/almog-gaya/nextprop-sub005/domain"
	"github.com/almog-gaya/nextprop-sub005/internal/mocks"
)

func TestBusinessService_Register(t *testing.T) {
	t.Run("successful registration provisions a verify service", func(t *testing.T) {
		repo := mocks.NewMockBusinessRepository()
		provider := mocks.NewMockVerifyProvider()

		var updated *domain.Business
		repo.UpdateFunc = func(ctx context.Context, b *domain.Business) error {
			updated = b
			return nil
		}
		provider.CreateServiceFunc = func(ctx context.Context, friendlyName string) (string, error) {
			if friendlyName != "Acme Realty" {
				t.Errorf("CreateService friendlyName = %q, want %q", friendlyName, "Acme Realty")
			}
			return "VA123", nil
		}

		svc := NewBusinessService(repo, provider)
		business, err := svc.Register(context.Background(), "Acme Realty", "owner@acme.test", "+1 (202) 555-0123")
		if err != nil {
			t.Fatalf("Register() unexpected error: %v", err)
		}
		if business.Phone != "+12025550123" {
			t.Errorf("Register() phone = %q, want normalized %q", business.Phone, "+12025550123")
		}
		if business.VerifyServiceSID != "VA123" {
			t.Errorf("Register() verify service sid = %q, want %q", business.VerifyServiceSID, "VA123")
		}
		if business.IsActive {
			t.Error("Register() business should start inactive")
		}
		if updated == nil {
			t.Error("Register() should persist the verify service sid")
		}
	})

	t.Run("rejects unparseable phone number", func(t *testing.T) {
		svc := NewBusinessService(mocks.NewMockBusinessRepository(), mocks.NewMockVerifyProvider())
		_, err := svc.Register(context.Background(), "Acme", "owner@acme.test", "not-a-number")
		if !errors.Is(err, domain.ErrInvalidPhoneNumber) {
			t.Errorf("Register() error = %v, want ErrInvalidPhoneNumber", err)
		}
	})

	t.Run("rejects duplicate phone number", func(t *testing.T) {
		repo := mocks.NewMockBusinessRepository()
		repo.FindByPhoneFunc = func(ctx context.Context, phone string) (*domain.Business, error) {
			return &domain.Business{ID: 7, Phone: phone}, nil
		}

		svc := NewBusinessService(repo, mocks.NewMockVerifyProvider())
		_, err := svc.Register(context.Background(), "Acme", "owner@acme.test", "+12025550123")
		if !errors.Is(err, domain.ErrBusinessExists) {
			t.Errorf("Register() error = %v, want ErrBusinessExists", err)
		}
	})

	t.Run("uniqueness check failure aborts registration", func(t *testing.T) {
		repo := mocks.NewMockBusinessRepository()
		transient := errors.New("connection reset by peer")
		repo.FindByPhoneFunc = func(ctx context.Context, phone string) (*domain.Business, error) {
			return nil, transient
		}
		repo.CreateFunc = func(ctx context.Context, business *domain.Business) error {
			t.Error("Create should not run when the uniqueness check cannot complete")
			return nil
		}

		svc := NewBusinessService(repo, mocks.NewMockVerifyProvider())
		_, err := svc.Register(context.Background(), "Acme", "owner@acme.test", "+12025550100")
		if !errors.Is(err, transient) {
			t.Errorf("Register() error = %v, want the repository failure surfaced", err)
		}
	})

	t.Run("rolls back the business when provisioning fails", func(t *testing.T) {
		repo := mocks.NewMockBusinessRepository()
		provider := mocks.NewMockVerifyProvider()

		deleted := false
		repo.DeleteFunc = func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		}
		provider.CreateServiceFunc = func(ctx context.Context, friendlyName string) (string, error) {
			return "", &domain.ProviderError{Op: "create verify service", Code: 20003, Status: 401}
		}

		svc := NewBusinessService(repo, provider)
		_, err := svc.Register(context.Background(), "Acme", "owner@acme.test", "+12025550123")
		if err == nil {
			t.Fatal("Register() expected error when provisioning fails")
		}
		if !deleted {
			t.Error("Register() should delete the business after a provisioning failure")
		}
		if _, ok := domain.AsProviderError(err); !ok {
			t.Errorf("Register() error should wrap the provider error, got %v", err)
		}
	})
}

func TestBusinessService_AssignCustomNumber(t *testing.T) {
	existing := &domain.Business{ID: 1, Name: "Acme", Phone: "+12025550100"}

	t.Run("assigns a normalized number", func(t *testing.T) {
		repo := mocks.NewMockBusinessRepository()
		repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Business, error) {
			b := *existing
			return &b, nil
		}

		svc := NewBusinessService(repo, mocks.NewMockVerifyProvider())
		business, err := svc.AssignCustomNumber(context.Background(), 1, "+1 202 555 0199")
		if err != nil {
			t.Fatalf("AssignCustomNumber() unexpected error: %v", err)
		}
		if !business.UseCustomNumber || business.CustomNumber != "+12025550199" {
			t.Errorf("AssignCustomNumber() = %+v, want custom number +12025550199 enabled", business)
		}
		if business.SenderNumber() != "+12025550199" {
			t.Errorf("SenderNumber() = %q, want %q", business.SenderNumber(), "+12025550199")
		}
	})

	t.Run("rejects a number owned by another business", func(t *testing.T) {
		repo := mocks.NewMockBusinessRepository()
		repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Business, error) {
			b := *existing
			return &b, nil
		}
		repo.FindByCustomNumberFunc = func(ctx context.Context, number string) (*domain.Business, error) {
			return &domain.Business{ID: 2, CustomNumber: number}, nil
		}

		svc := NewBusinessService(repo, mocks.NewMockVerifyProvider())
		_, err := svc.AssignCustomNumber(context.Background(), 1, "+12025550199")
		if !errors.Is(err, domain.ErrBusinessExists) {
			t.Errorf("AssignCustomNumber() error = %v, want ErrBusinessExists", err)
		}
	})

	t.Run("allows reassigning a business its own number", func(t *testing.T) {
		repo := mocks.NewMockBusinessRepository()
		repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Business, error) {
			b := *existing
			return &b, nil
		}
		repo.FindByCustomNumberFunc = func(ctx context.Context, number string) (*domain.Business, error) {
			return &domain.Business{ID: 1, CustomNumber: number}, nil
		}

		svc := NewBusinessService(repo, mocks.NewMockVerifyProvider())
		if _, err := svc.AssignCustomNumber(context.Background(), 1, "+12025550199"); err != nil {
			t.Errorf("AssignCustomNumber() unexpected error: %v", err)
		}
	})

	t.Run("unknown business", func(t *testing.T) {
		svc := NewBusinessService(mocks.NewMockBusinessRepository(), mocks.NewMockVerifyProvider())
		_, err := svc.AssignCustomNumber(context.Background(), 99, "+12025550199")
		if !errors.Is(err, domain.ErrBusinessNotFound) {
			t.Errorf("AssignCustomNumber() error = %v, want ErrBusinessNotFound", err)
		}
	})

	t.Run("uniqueness check failure aborts assignment", func(t *testing.T) {
		repo := mocks.NewMockBusinessRepository()
		repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Business, error) {
			b := *existing
			return &b, nil
		}
		transient := errors.New("connection reset by peer")
		repo.FindByCustomNumberFunc = func(ctx context.Context, number string) (*domain.Business, error) {
			return nil, transient
		}
		repo.UpdateFunc = func(ctx context.Context, business *domain.Business) error {
			t.Error("Update should not run when the uniqueness check cannot complete")
			return nil
		}

		svc := NewBusinessService(repo, mocks.NewMockVerifyProvider())
		_, err := svc.AssignCustomNumber(context.Background(), 1, "+12025550199")
		if !errors.Is(err, transient) {
			t.Errorf("AssignCustomNumber() error = %v, want the repository failure surfaced", err)
		}
	})
}
