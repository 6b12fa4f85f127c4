package services

import (
	"context"
	"fmt"
	"time"

	"github.com/almog-gaya/nextprop-sub005/domain"
	"github.com/almog-gaya/nextprop-sub005/internal/phone"
)

// VerificationServiceImpl implements domain.VerificationService.
// State per (business, phone): unverified -> code_sent -> verified | failed.
// A failed check may transition back to code_sent through a new SendCode;
// nothing here retries automatically.
type VerificationServiceImpl struct {
	businessRepo     domain.BusinessRepository
	verificationRepo domain.VerificationRepository
	provider         domain.VerifyProvider
	guard            domain.ReplayGuard
	config           VerificationConfig
}

type VerificationConfig struct {
	ResendWindow time.Duration
}

// NewVerificationService creates a new verification service
func NewVerificationService(
	businessRepo domain.BusinessRepository,
	verificationRepo domain.VerificationRepository,
	provider domain.VerifyProvider,
	guard domain.ReplayGuard,
	config VerificationConfig,
) domain.VerificationService {
	return &VerificationServiceImpl{
		businessRepo:     businessRepo,
		verificationRepo: verificationRepo,
		provider:         provider,
		guard:            guard,
		config:           config,
	}
}

// SendCode implements domain.VerificationService
func (s *VerificationServiceImpl) SendCode(ctx context.Context, businessID uint, phoneNumber, channel string) (*domain.SendCodeResult, error) {
	if channel == "" {
		channel = domain.ChannelSMS
	}
	if channel != domain.ChannelSMS && channel != domain.ChannelVoice {
		return nil, domain.ErrInvalidChannel
	}
	if err := phone.ValidateE164(phoneNumber); err != nil {
		return nil, err
	}

	business, err := s.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	resendKey := fmt.Sprintf("verify:res:%s", phoneNumber)
	first, err := s.guard.FirstSeen(ctx, resendKey, s.config.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to check resend throttle: %w", err)
	}
	if !first {
		wait, _ := s.guard.Wait(ctx, resendKey)
		return nil, fmt.Errorf("%w: retry in %d seconds", domain.ErrResendThrottled, int64(wait.Seconds()))
	}

	sid, status, err := s.provider.SendCode(ctx, business.VerifyServiceSID, phoneNumber, channel)
	if err != nil {
		// Free the throttle window so the caller may retry immediately
		s.guard.Release(ctx, resendKey)
		return nil, err
	}

	attempt := &domain.VerificationAttempt{
		BusinessID:     businessID,
		Phone:          phoneNumber,
		Channel:        channel,
		ProviderStatus: status,
		ProviderSID:    sid,
	}
	if err := s.verificationRepo.CreateAttempt(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to record verification attempt: %w", err)
	}

	return &domain.SendCodeResult{Attempt: attempt, Status: status}, nil
}

// CheckCode implements domain.VerificationService. A check requires a prior
// attempt for the same phone; the success flag mirrors the provider verdict.
// Activating the business on success is the caller's responsibility.
func (s *VerificationServiceImpl) CheckCode(ctx context.Context, businessID uint, phoneNumber, code string) (*domain.CheckCodeResult, error) {
	if err := phone.ValidateE164(phoneNumber); err != nil {
		return nil, err
	}

	business, err := s.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	attempt, err := s.verificationRepo.LatestAttempt(ctx, businessID, phoneNumber)
	if err != nil {
		return nil, err
	}

	status, valid, err := s.provider.CheckCode(ctx, business.VerifyServiceSID, phoneNumber, code)
	if err != nil {
		return nil, err
	}

	check := &domain.VerificationCheck{
		AttemptID:      attempt.ID,
		BusinessID:     businessID,
		Phone:          phoneNumber,
		Code:           code,
		ProviderStatus: status,
		Success:        valid,
	}
	if err := s.verificationRepo.CreateCheck(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to record verification check: %w", err)
	}

	return &domain.CheckCodeResult{Check: check, Valid: valid}, nil
}
