package recommend

import (
	"strings"

	"movieRecommender/domain"
	"movieRecommender/pkg/logger"
)

// Normalize turns stored preferences into the profile the engine consumes:
// unknown genre names are dropped, director names trimmed, and the runtime
// tolerance defaulted when the profile does not carry one.
func Normalize(userID string, raw domain.RawPreferences, defaultTolerance int) domain.PreferenceProfile {
	desired, droppedDesired := domain.ParseGenreSet(raw.DesiredGenres)
	forbidden, droppedForbidden := domain.ParseGenreSet(raw.ForbiddenGenres)
	if len(droppedDesired) > 0 || len(droppedForbidden) > 0 {
		logger.Debug("preference_unknown_genres",
			"user_id", userID,
			"desired", droppedDesired,
			"forbidden", droppedForbidden,
		)
	}

	directors := make(map[string]struct{}, len(raw.FavoriteDirectors))
	for _, d := range raw.FavoriteDirectors {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		directors[d] = struct{}{}
	}

	var runtime *int
	if raw.PreferredRuntime != nil && *raw.PreferredRuntime > 0 {
		v := *raw.PreferredRuntime
		runtime = &v
	}

	tolerance := defaultTolerance
	if raw.RuntimeTolerance != nil {
		tolerance = *raw.RuntimeTolerance
	}
	if tolerance < 0 {
		tolerance = 0
	}

	minYear := raw.MinReleaseYear
	if minYear < 0 {
		minYear = 0
	}

	return domain.PreferenceProfile{
		UserID:             userID,
		MinReleaseYear:     minYear,
		DesiredGenres:      desired,
		ForbiddenGenres:    forbidden,
		PreferAwardWinning: raw.PreferAwardWinning,
		FavoriteDirectors:  directors,
		PreferredRuntime:   runtime,
		RuntimeTolerance:   tolerance,
	}
}
