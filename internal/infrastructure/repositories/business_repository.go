package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// BusinessRepositoryImpl implements domain.BusinessRepository using GORM
type BusinessRepositoryImpl struct {
	db *gorm.DB
}

// DBBusiness represents the database model for Business (with GORM tags)
type DBBusiness struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"size:255"`
	ContactEmail     string `gorm:"size:255"`
	Phone            string `gorm:"size:32;uniqueIndex:idx_businesses_phone,where:deleted_at IS NULL"`
	VerifyServiceSID string `gorm:"column:verify_service_sid;size:64"`
	UseCustomNumber  bool
	CustomNumber     string `gorm:"index;size:32"`
	IsActive         bool   `gorm:"index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBBusiness) TableName() string {
	return "businesses"
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) domain.BusinessRepository {
	return &BusinessRepositoryImpl{db: db}
}

// Create implements domain.BusinessRepository. The partial unique index on
// phone rejects concurrent registrations that both pass the service-level
// uniqueness read.
func (r *BusinessRepositoryImpl) Create(ctx context.Context, business *domain.Business) error {
	dbBusiness := r.domainToDB(business)
	if err := r.db.WithContext(ctx).Create(dbBusiness).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrBusinessExists
		}
		return err
	}
	business.ID = dbBusiness.ID
	business.CreatedAt = dbBusiness.CreatedAt
	business.UpdatedAt = dbBusiness.UpdatedAt
	return nil
}

// FindByID implements domain.BusinessRepository
func (r *BusinessRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Business, error) {
	var dbBusiness DBBusiness
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbBusiness).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbBusiness), nil
}

// FindByPhone implements domain.BusinessRepository
func (r *BusinessRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.Business, error) {
	var dbBusiness DBBusiness
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&dbBusiness).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbBusiness), nil
}

// FindByCustomNumber implements domain.BusinessRepository
func (r *BusinessRepositoryImpl) FindByCustomNumber(ctx context.Context, number string) (*domain.Business, error) {
	var dbBusiness DBBusiness
	err := r.db.WithContext(ctx).
		Where("use_custom_number = ? AND custom_number = ?", true, number).
		First(&dbBusiness).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbBusiness), nil
}

// List implements domain.BusinessRepository
func (r *BusinessRepositoryImpl) List(ctx context.Context) ([]*domain.Business, error) {
	var dbBusinesses []DBBusiness
	if err := r.db.WithContext(ctx).Find(&dbBusinesses).Error; err != nil {
		return nil, err
	}

	businesses := make([]*domain.Business, 0, len(dbBusinesses))
	for i := range dbBusinesses {
		businesses = append(businesses, r.dbToDomain(&dbBusinesses[i]))
	}
	return businesses, nil
}

// Update implements domain.BusinessRepository
func (r *BusinessRepositoryImpl) Update(ctx context.Context, business *domain.Business) error {
	dbBusiness := r.domainToDB(business)
	if err := r.db.WithContext(ctx).Save(dbBusiness).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrBusinessExists
		}
		return err
	}
	return nil
}

// Activate implements domain.BusinessRepository
func (r *BusinessRepositoryImpl) Activate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&DBBusiness{}).Where("id = ?", id).Update("is_active", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

// Delete implements domain.BusinessRepository as a soft delete
func (r *BusinessRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBBusiness{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

// domainToDB converts domain business to database business
func (r *BusinessRepositoryImpl) domainToDB(business *domain.Business) *DBBusiness {
	return &DBBusiness{
		ID:               business.ID,
		Name:             business.Name,
		ContactEmail:     business.ContactEmail,
		Phone:            business.Phone,
		VerifyServiceSID: business.VerifyServiceSID,
		UseCustomNumber:  business.UseCustomNumber,
		CustomNumber:     business.CustomNumber,
		IsActive:         business.IsActive,
	}
}

// dbToDomain converts database business to domain business
func (r *BusinessRepositoryImpl) dbToDomain(dbBusiness *DBBusiness) *domain.Business {
	return &domain.Business{
		ID:               dbBusiness.ID,
		Name:             dbBusiness.Name,
		ContactEmail:     dbBusiness.ContactEmail,
		Phone:            dbBusiness.Phone,
		VerifyServiceSID: dbBusiness.VerifyServiceSID,
		UseCustomNumber:  dbBusiness.UseCustomNumber,
		CustomNumber:     dbBusiness.CustomNumber,
		IsActive:         dbBusiness.IsActive,
		CreatedAt:        dbBusiness.CreatedAt,
		UpdatedAt:        dbBusiness.UpdatedAt,
	}
}
