package recommend

import (
	"strings"

	"movieRecommender/domain"
)

const (
	ReasonGenreMismatch      = "genre mismatch"
	ReasonDirectorOff        = "director off-preference"
	ReasonRuntimeOff         = "runtime off-tolerance"
	ReasonMatchesPreferences = "matches preferences"
)

// IsNovel decides whether a movie sits outside the profile and explains why.
//
// With desired genres set, a movie is novel when it matches none of them and
// also misses on director or runtime. Without desired genres, missing on
// director or runtime is enough.
func IsNovel(m domain.Movie, p domain.PreferenceProfile) (bool, string) {
	hasDesired := !p.DesiredGenres.IsEmpty()
	genreMatch := hasDesired && !m.Genres.Intersect(p.DesiredGenres).IsEmpty()
	directorOff := len(p.FavoriteDirectors) > 0 && !p.IsFavoriteDirector(m.Director)

	runtimeOff := false
	if dev, ok := runtimeDeviation(m, p); ok {
		runtimeOff = dev > p.RuntimeTolerance
	}

	var novel bool
	reasons := make([]string, 0, 3)
	if hasDesired {
		novel = !genreMatch && (directorOff || runtimeOff)
		if !genreMatch {
			reasons = append(reasons, ReasonGenreMismatch)
		}
	} else {
		novel = directorOff || runtimeOff
	}
	if directorOff {
		reasons = append(reasons, ReasonDirectorOff)
	}
	if runtimeOff {
		reasons = append(reasons, ReasonRuntimeOff)
	}

	if len(reasons) == 0 {
		return novel, ReasonMatchesPreferences
	}
	return novel, strings.Join(reasons, ", ")
}

// classify attaches novelty fields unless they are already present.
func classify(c domain.ScoredCandidate, p domain.PreferenceProfile) domain.ScoredCandidate {
	if c.Classified() {
		return c
	}
	novel, reason := IsNovel(c.Movie, p)
	return c.WithNovelty(novel, reason)
}

// withNovelty returns a classified copy of pool.
func withNovelty(pool []domain.ScoredCandidate, p domain.PreferenceProfile) []domain.ScoredCandidate {
	out := make([]domain.ScoredCandidate, len(pool))
	for i, c := range pool {
		out[i] = classify(c, p)
	}
	return out
}
