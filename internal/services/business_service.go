package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/almog-gaya/nextprop-sub005/domain"
	"github.com/almog-gaya/nextprop-sub005/internal/phone"
)

// BusinessServiceImpl implements domain.BusinessService
type BusinessServiceImpl struct {
	businessRepo   domain.BusinessRepository
	verifyProvider domain.VerifyProvider
}

// NewBusinessService creates a new business registry service
func NewBusinessService(businessRepo domain.BusinessRepository, verifyProvider domain.VerifyProvider) domain.BusinessService {
	return &BusinessServiceImpl{
		businessRepo:   businessRepo,
		verifyProvider: verifyProvider,
	}
}

// Register implements domain.BusinessService. The business starts inactive
// and a verification service is provisioned for it; if provisioning fails
// the just-created row is rolled back so no orphaned tenant remains.
func (s *BusinessServiceImpl) Register(ctx context.Context, name, email, rawPhone string) (*domain.Business, error) {
	normalized, err := phone.Normalize(rawPhone)
	if err != nil {
		return nil, err
	}

	if _, err := s.businessRepo.FindByPhone(ctx, normalized); err == nil {
		return nil, domain.ErrBusinessExists
	} else if !errors.Is(err, domain.ErrBusinessNotFound) {
		return nil, fmt.Errorf("failed to check phone uniqueness: %w", err)
	}

	business := &domain.Business{
		Name:         name,
		ContactEmail: email,
		Phone:        normalized,
		IsActive:     false,
	}
	if err := s.businessRepo.Create(ctx, business); err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	serviceSID, err := s.verifyProvider.CreateService(ctx, name)
	if err != nil {
		if delErr := s.businessRepo.Delete(ctx, business.ID); delErr != nil {
			return nil, fmt.Errorf("failed to roll back business %d after provisioning error: %v: %w", business.ID, delErr, err)
		}
		return nil, fmt.Errorf("failed to provision verification service: %w", err)
	}

	business.VerifyServiceSID = serviceSID
	if err := s.businessRepo.Update(ctx, business); err != nil {
		return nil, fmt.Errorf("failed to store verification service id: %w", err)
	}

	return business, nil
}

// Get implements domain.BusinessService
func (s *BusinessServiceImpl) Get(ctx context.Context, id uint) (*domain.Business, error) {
	return s.businessRepo.FindByID(ctx, id)
}

// List implements domain.BusinessService
func (s *BusinessServiceImpl) List(ctx context.Context) ([]*domain.Business, error) {
	return s.businessRepo.List(ctx)
}

// Activate implements domain.BusinessService. Only the check-code flow calls
// this, after a successful verification check.
func (s *BusinessServiceImpl) Activate(ctx context.Context, id uint) error {
	return s.businessRepo.Activate(ctx, id)
}

// Deactivate implements domain.BusinessService as a soft delete
func (s *BusinessServiceImpl) Deactivate(ctx context.Context, id uint) error {
	return s.businessRepo.Delete(ctx, id)
}

// AssignCustomNumber implements domain.BusinessService
func (s *BusinessServiceImpl) AssignCustomNumber(ctx context.Context, id uint, number string) (*domain.Business, error) {
	normalized, err := phone.Normalize(number)
	if err != nil {
		return nil, err
	}

	business, err := s.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if other, err := s.businessRepo.FindByCustomNumber(ctx, normalized); err == nil {
		if other.ID != id {
			return nil, domain.ErrBusinessExists
		}
	} else if !errors.Is(err, domain.ErrBusinessNotFound) {
		return nil, fmt.Errorf("failed to check number uniqueness: %w", err)
	}
	if other, err := s.businessRepo.FindByPhone(ctx, normalized); err == nil {
		if other.ID != id {
			return nil, domain.ErrBusinessExists
		}
	} else if !errors.Is(err, domain.ErrBusinessNotFound) {
		return nil, fmt.Errorf("failed to check number uniqueness: %w", err)
	}

	business.UseCustomNumber = true
	business.CustomNumber = normalized
	if err := s.businessRepo.Update(ctx, business); err != nil {
		return nil, fmt.Errorf("failed to assign custom number: %w", err)
	}

	return business, nil
}
