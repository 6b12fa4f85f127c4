package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// VerificationRepositoryImpl implements domain.VerificationRepository using GORM.
// Attempts and checks are insert-only; nothing here mutates existing rows.
type VerificationRepositoryImpl struct {
	db *gorm.DB
}

// DBVerificationAttempt represents the database model for VerificationAttempt
type DBVerificationAttempt struct {
	ID             uint   `gorm:"primaryKey"`
	BusinessID     uint   `gorm:"index"`
	Phone          string `gorm:"index;size:32"`
	Channel        string `gorm:"size:16"`
	ProviderStatus string `gorm:"size:32"`
	ProviderSID    string `gorm:"column:provider_sid;size:64"`
	CreatedAt      time.Time
}

func (DBVerificationAttempt) TableName() string {
	return "verification_attempts"
}

// DBVerificationCheck represents the database model for VerificationCheck
type DBVerificationCheck struct {
	ID             uint   `gorm:"primaryKey"`
	AttemptID      uint   `gorm:"index"`
	BusinessID     uint   `gorm:"index"`
	Phone          string `gorm:"size:32"`
	Code           string `gorm:"size:16"`
	ProviderStatus string `gorm:"size:32"`
	Success        bool
	CreatedAt      time.Time
}

func (DBVerificationCheck) TableName() string {
	return "verification_checks"
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) domain.VerificationRepository {
	return &VerificationRepositoryImpl{db: db}
}

// CreateAttempt implements domain.VerificationRepository
func (r *VerificationRepositoryImpl) CreateAttempt(ctx context.Context, attempt *domain.VerificationAttempt) error {
	dbAttempt := &DBVerificationAttempt{
		BusinessID:     attempt.BusinessID,
		Phone:          attempt.Phone,
		Channel:        attempt.Channel,
		ProviderStatus: attempt.ProviderStatus,
		ProviderSID:    attempt.ProviderSID,
	}
	if err := r.db.WithContext(ctx).Create(dbAttempt).Error; err != nil {
		return err
	}
	attempt.ID = dbAttempt.ID
	attempt.CreatedAt = dbAttempt.CreatedAt
	return nil
}

// LatestAttempt implements domain.VerificationRepository
func (r *VerificationRepositoryImpl) LatestAttempt(ctx context.Context, businessID uint, phone string) (*domain.VerificationAttempt, error) {
	var dbAttempt DBVerificationAttempt
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND phone = ?", businessID, phone).
		Order("id DESC").
		First(&dbAttempt).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAttemptNotFound
		}
		return nil, err
	}

	return &domain.VerificationAttempt{
		ID:             dbAttempt.ID,
		BusinessID:     dbAttempt.BusinessID,
		Phone:          dbAttempt.Phone,
		Channel:        dbAttempt.Channel,
		ProviderStatus: dbAttempt.ProviderStatus,
		ProviderSID:    dbAttempt.ProviderSID,
		CreatedAt:      dbAttempt.CreatedAt,
	}, nil
}

// CreateCheck implements domain.VerificationRepository
func (r *VerificationRepositoryImpl) CreateCheck(ctx context.Context, check *domain.VerificationCheck) error {
	dbCheck := &DBVerificationCheck{
		AttemptID:      check.AttemptID,
		BusinessID:     check.BusinessID,
		Phone:          check.Phone,
		Code:           check.Code,
		ProviderStatus: check.ProviderStatus,
		Success:        check.Success,
	}
	if err := r.db.WithContext(ctx).Create(dbCheck).Error; err != nil {
		return err
	}
	check.ID = dbCheck.ID
	check.CreatedAt = dbCheck.CreatedAt
	return nil
}
