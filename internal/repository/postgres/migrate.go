package postgres

import (
	"context"
	"fmt"

	"movieRecommender/domain"

	"gorm.io/gorm"
)

// Migrate creates or updates the movies and user_preferences tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&domain.Movie{}, &domain.UserPreference{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
