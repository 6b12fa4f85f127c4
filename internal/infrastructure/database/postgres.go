package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/almog-gaya/nextprop-sub005/internal/infrastructure/repositories"
)

// Open creates a new database connection with production-ready settings
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surface unique-constraint violations as gorm.ErrDuplicatedKey
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates or updates the tables backing the registry,
// verification log, and conversation store.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBBusiness{},
		&repositories.DBVerificationAttempt{},
		&repositories.DBVerificationCheck{},
		&repositories.DBConversation{},
		&repositories.DBMessage{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
