package recommend

import (
	"sort"

	"movieRecommender/domain"
)

// Score ranks the catalog against a profile and returns the best topK rows.
//
// Hard filters: release year below the profile minimum, or membership in any
// forbidden genre. The score is the number of desired genres matched plus the
// award, director and runtime bonuses. Ties keep catalog order.
func (e *Engine) Score(catalog *domain.Catalog, profile domain.PreferenceProfile, topK int) []domain.ScoredCandidate {
	if topK <= 0 {
		return []domain.ScoredCandidate{}
	}
	ranked := e.rank(catalog, profile)
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

// rank scores every movie that survives the hard filters, best first.
func (e *Engine) rank(catalog *domain.Catalog, profile domain.PreferenceProfile) []domain.ScoredCandidate {
	scored := make([]domain.ScoredCandidate, 0, catalog.Len())
	for i := 0; i < catalog.Len(); i++ {
		m := catalog.At(i)
		if m.ReleaseYear < profile.MinReleaseYear {
			continue
		}
		if !m.Genres.Intersect(profile.ForbiddenGenres).IsEmpty() {
			continue
		}
		scored = append(scored, domain.ScoredCandidate{
			Movie: m,
			Score: e.affinity(m, profile),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func (e *Engine) affinity(m domain.Movie, p domain.PreferenceProfile) float64 {
	score := float64(m.Genres.Intersect(p.DesiredGenres).Len())

	if p.PreferAwardWinning && m.HasAwards {
		score += e.cfg.AwardWeight
	}
	if p.IsFavoriteDirector(m.Director) {
		score += e.cfg.DirectorWeight
	}
	if dev, ok := runtimeDeviation(m, p); ok && dev <= p.RuntimeTolerance {
		score += e.cfg.RuntimeWeight
	}

	return score
}

// runtimeDeviation is |runtime - preferred|; ok is false when either side is unknown.
func runtimeDeviation(m domain.Movie, p domain.PreferenceProfile) (int, bool) {
	if p.PreferredRuntime == nil || m.Runtime == nil {
		return 0, false
	}
	d := *m.Runtime - *p.PreferredRuntime
	if d < 0 {
		d = -d
	}
	return d, true
}
