package database

import (
	"fmt"

	"carelink_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs the schema migration for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Supplier{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
