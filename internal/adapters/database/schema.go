package database

import (
	"context"

	"gorm.io/gorm"
	"terraweave.app/pkg/errors"
)

// Migrate creates missing tables, columns and indexes. Existing data is never dropped.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return errors.NewValidationError("database cannot be nil")
	}

	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.NewDatabaseError("failed to migrate schema", err)
	}

	return nil
}
