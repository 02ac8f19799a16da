package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"movieRecommender/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// GetPreferences returns ok=false when the user has no stored profile.
func (r *PreferenceRepository) GetPreferences(ctx context.Context, userID string) (domain.RawPreferences, bool, error) {
	var row domain.UserPreference

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RawPreferences{}, false, nil
	}
	if err != nil {
		return domain.RawPreferences{}, false, err
	}

	var raw domain.RawPreferences
	if err := json.Unmarshal(row.Preferences, &raw); err != nil {
		return domain.RawPreferences{}, false, fmt.Errorf("failed to decode preferences for %s: %w", userID, err)
	}

	return raw, true, nil
}

func (r *PreferenceRepository) SavePreferences(ctx context.Context, userID string, raw domain.RawPreferences) error {
	payload, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	row := domain.UserPreference{
		UserID:      userID,
		Preferences: datatypes.JSON(payload),
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"preferences", "updated_at"}),
		}).
		Create(&row).Error
}

func (r *PreferenceRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	var ids []string

	err := r.DB.WithContext(ctx).
		Model(&domain.UserPreference{}).
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
