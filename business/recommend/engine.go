package recommend

import (
	"math/rand"
	"sync/atomic"
	"time"

	"movieRecommender/domain"
)

// Engine holds scoring weights and pool sizing. It carries no per-request
// state and is safe for concurrent use.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// ExploreOptions parameterizes one exploration request. A nil Seed makes
// selection nondeterministic across calls.
type ExploreOptions struct {
	TopK           int
	Epsilon        float64
	CandidateWidth int
	ExploreExtra   int
	Seed           *int64
}

// ExploreDefaults returns request options filled from config defaults.
func (c Config) ExploreDefaults() ExploreOptions {
	return ExploreOptions{
		TopK:           c.DefaultTopK,
		Epsilon:        c.DefaultEpsilon,
		CandidateWidth: c.DefaultCandidateWidth,
		ExploreExtra:   c.DefaultExploreExtra,
	}
}

// Recommend is the plain constraint-based ranking.
func (e *Engine) Recommend(catalog *domain.Catalog, profile domain.PreferenceProfile, topK int) domain.Recommendation {
	ranked := e.rank(catalog, profile)
	if len(ranked) == 0 {
		return domain.Recommendation{Status: domain.StatusNoMatch, Results: []domain.ScoredCandidate{}}
	}
	if topK <= 0 {
		return domain.Recommendation{Status: domain.StatusOK, Results: []domain.ScoredCandidate{}}
	}
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return domain.Recommendation{Status: domain.StatusOK, Results: ranked}
}

// RecommendWithExploration builds the pools and runs ε-greedy selection
// with a random source owned by this call.
func (e *Engine) RecommendWithExploration(
	catalog *domain.Catalog,
	profile domain.PreferenceProfile,
	opts ExploreOptions,
) domain.ExplorationResult {

	rng := newRand(opts.Seed)

	exploit, explore := e.BuildPools(catalog, profile, opts.CandidateWidth, opts.ExploreExtra, rng)
	if len(exploit) == 0 {
		return domain.ExplorationResult{
			Status: domain.StatusNoMatch,
			Picks:  []domain.Pick{},
		}
	}

	picks := e.Select(exploit, explore, profile, opts.TopK, opts.Epsilon, rng)

	novelCount := 0
	for _, p := range picks {
		if p.IsNovel() {
			novelCount++
		}
	}

	return domain.ExplorationResult{
		Status: domain.StatusOK,
		Picks:  picks,
		Diagnostics: domain.Diagnostics{
			ExploitPoolSize: len(exploit),
			ExplorePoolSize: len(explore),
			ExploreRatio:    float64(novelCount) / float64(max(1, len(picks))),
		},
	}
}

// DebugPools returns both pools with novelty attached, without selecting.
func (e *Engine) DebugPools(
	catalog *domain.Catalog,
	profile domain.PreferenceProfile,
	opts ExploreOptions,
) domain.PoolDebug {

	exploit, explore := e.BuildPools(catalog, profile, opts.CandidateWidth, opts.ExploreExtra, newRand(opts.Seed))
	status := domain.StatusOK
	if len(exploit) == 0 {
		status = domain.StatusNoMatch
	}
	return domain.PoolDebug{
		Status:  status,
		Exploit: withNovelty(exploit, profile),
		Explore: withNovelty(explore, profile),
	}
}

var seedSalt atomic.Int64

// newRand returns a generator private to the caller. Unseeded generators
// mix the clock with a counter so concurrent calls do not collide.
func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed)) //nolint:gosec // math/rand is fine for recommendation sampling
	}
	s := time.Now().UnixNano() ^ seedSalt.Add(0x1E3779B97F4A7C15)
	return rand.New(rand.NewSource(s)) //nolint:gosec // math/rand is fine for recommendation sampling
}
