package recommend

import (
	"math/rand"
	"sort"

	"movieRecommender/domain"
)

// BuildPools splits the catalog into an exploit pool (best in-profile
// candidates) and an explore pool (novel candidates, padded up to a floor).
// The two pools never share a movie id.
func (e *Engine) BuildPools(
	catalog *domain.Catalog,
	profile domain.PreferenceProfile,
	candidateWidth int,
	exploreExtra int,
	rng *rand.Rand,
) ([]domain.ScoredCandidate, []domain.ScoredCandidate) {

	if rng == nil {
		rng = newRand(nil)
	}

	// 1) exploit = scorer output over a wide candidate window
	width := max(candidateWidth, e.cfg.MinCandidateWidth)
	exploit := e.Score(catalog, profile, width)
	if len(exploit) == 0 {
		return []domain.ScoredCandidate{}, []domain.ScoredCandidate{}
	}
	inExploit := idSet(exploit)

	// 2) base universe for exploration: year filter only, minus exploit
	baseWide := make([]domain.ScoredCandidate, 0, catalog.Len())
	for i := 0; i < catalog.Len(); i++ {
		m := catalog.At(i)
		if m.ReleaseYear < profile.MinReleaseYear {
			continue
		}
		if _, ok := inExploit[m.ID]; ok {
			continue
		}
		novel, reason := IsNovel(m, profile)
		c := domain.ScoredCandidate{Movie: m, Score: e.affinity(m, profile)}
		baseWide = append(baseWide, c.WithNovelty(novel, reason))
	}

	// 3) genuinely novel candidates
	explore := make([]domain.ScoredCandidate, 0, len(baseWide))
	inExplore := make(map[int64]struct{}, len(baseWide))
	for _, c := range baseWide {
		if c.IsNovel() {
			explore = append(explore, c)
			inExplore[c.ID] = struct{}{}
		}
	}

	// 4) floor enforcement
	floor := min(e.cfg.MaxExploreFloor, exploreExtra)
	if len(explore) < floor {
		// a) lowest-scoring exploit tail
		for _, c := range lowestScoring(exploit, floor) {
			if _, ok := inExplore[c.ID]; ok {
				continue
			}
			explore = append(explore, c)
			inExplore[c.ID] = struct{}{}
		}

		// b) random fill from base_wide; only ids outside exploit count toward the floor
		if need := floor - countOutside(explore, inExploit); need > 0 {
			rest := make([]domain.ScoredCandidate, 0, len(baseWide))
			for _, c := range baseWide {
				if _, ok := inExplore[c.ID]; !ok {
					rest = append(rest, c)
				}
			}
			for _, c := range sampleCandidates(rest, need, rng) {
				explore = append(explore, c)
				inExplore[c.ID] = struct{}{}
			}
		}
	}

	// 5) disjointness
	out := explore[:0]
	for _, c := range explore {
		if _, ok := inExploit[c.ID]; ok {
			continue
		}
		out = append(out, c)
	}

	return exploit, out
}

func idSet(pool []domain.ScoredCandidate) map[int64]struct{} {
	ids := make(map[int64]struct{}, len(pool))
	for _, c := range pool {
		ids[c.ID] = struct{}{}
	}
	return ids
}

func countOutside(pool []domain.ScoredCandidate, ids map[int64]struct{}) int {
	n := 0
	for _, c := range pool {
		if _, ok := ids[c.ID]; !ok {
			n++
		}
	}
	return n
}

// lowestScoring returns up to n candidates, lowest score first.
func lowestScoring(pool []domain.ScoredCandidate, n int) []domain.ScoredCandidate {
	tail := make([]domain.ScoredCandidate, len(pool))
	copy(tail, pool)
	sort.SliceStable(tail, func(i, j int) bool {
		return tail[i].Score < tail[j].Score
	})
	if len(tail) > n {
		tail = tail[:n]
	}
	return tail
}

// sampleCandidates draws n distinct entries uniformly (partial Fisher-Yates).
func sampleCandidates(pool []domain.ScoredCandidate, n int, rng *rand.Rand) []domain.ScoredCandidate {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	out := make([]domain.ScoredCandidate, 0, n)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out = append(out, pool[idx[i]])
	}
	return out
}
