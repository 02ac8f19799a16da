package recommend

import (
	"math/rand"
	"sort"

	"movieRecommender/domain"
)

// Select runs ε-greedy over two disjoint pools. Each step draws u ~ U[0,1):
// when u < epsilon and an unchosen explore entry remains, one is taken
// uniformly at random; otherwise the best unchosen exploit entry is taken.
// Selection stops early when both pools are exhausted.
func (e *Engine) Select(
	exploit []domain.ScoredCandidate,
	explore []domain.ScoredCandidate,
	profile domain.PreferenceProfile,
	topK int,
	epsilon float64,
	rng *rand.Rand,
) []domain.Pick {

	if topK <= 0 || (len(exploit) == 0 && len(explore) == 0) {
		return []domain.Pick{}
	}
	if rng == nil {
		rng = newRand(nil)
	}

	ranked := withNovelty(exploit, profile)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	pool := withNovelty(explore, profile)

	picks := make([]domain.Pick, 0, min(topK, len(ranked)+len(pool)))
	chosen := make(map[int64]struct{}, cap(picks))
	available := make([]int, 0, len(pool))
	cursor := 0

	for len(picks) < topK {
		var (
			candidate domain.ScoredCandidate
			found     bool
			strategy  = domain.PickExploit
		)

		if rng.Float64() < epsilon && len(pool) > 0 {
			available = available[:0]
			for i, c := range pool {
				if _, ok := chosen[c.ID]; !ok {
					available = append(available, i)
				}
			}
			if len(available) > 0 {
				candidate = pool[available[rng.Intn(len(available))]]
				strategy = domain.PickExplore
				found = true
			}
		}

		if !found {
			for cursor < len(ranked) {
				if _, ok := chosen[ranked[cursor].ID]; !ok {
					break
				}
				cursor++
			}
			if cursor < len(ranked) {
				candidate = ranked[cursor]
				cursor++
				found = true
			}
		}

		if !found {
			break
		}

		chosen[candidate.ID] = struct{}{}
		picks = append(picks, domain.Pick{
			ScoredCandidate: candidate,
			Strategy:        strategy,
		})
	}

	return picks
}
