package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// ErrUserNotFound means no preference profile is stored for the user.
var ErrUserNotFound = errors.New("user not found")

// RawPreferences is the stored, user-editable shape of a preference profile.
type RawPreferences struct {
	MinReleaseYear     int      `json:"min_release_year" yaml:"min_release_year" validate:"gte=0"`
	DesiredGenres      []string `json:"desired_genres" yaml:"desired_genres" validate:"dive,required"`
	ForbiddenGenres    []string `json:"forbidden_genres" yaml:"forbidden_genres" validate:"dive,required"`
	PreferAwardWinning bool     `json:"prefer_award_winning" yaml:"prefer_award_winning"`
	FavoriteDirectors  []string `json:"favorite_directors" yaml:"favorite_directors" validate:"dive,required"`
	PreferredRuntime   *int     `json:"preferred_runtime" yaml:"preferred_runtime" validate:"omitempty,gt=0"`
	RuntimeTolerance   *int     `json:"runtime_tolerance,omitempty" yaml:"runtime_tolerance" validate:"omitempty,gte=0"`
}

// PreferenceProfile is the normalized record the recommender consumes.
type PreferenceProfile struct {
	UserID             string
	MinReleaseYear     int
	DesiredGenres      GenreSet
	ForbiddenGenres    GenreSet
	PreferAwardWinning bool
	FavoriteDirectors  map[string]struct{}
	PreferredRuntime   *int
	RuntimeTolerance   int
}

// IsFavoriteDirector reports whether director is one of the favorites.
// An unknown (empty) director never matches.
func (p PreferenceProfile) IsFavoriteDirector(director string) bool {
	if director == "" {
		return false
	}
	_, ok := p.FavoriteDirectors[director]
	return ok
}

// CREATE TABLE public.user_preferences (
//     user_id     TEXT PRIMARY KEY,
//     preferences JSONB NOT NULL,
//     created_at  TIMESTAMPTZ DEFAULT NOW(),
//     updated_at  TIMESTAMPTZ DEFAULT NOW()
// );

type UserPreference struct {
	UserID      string         `gorm:"column:user_id;primaryKey"`
	Preferences datatypes.JSON `gorm:"column:preferences;type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
