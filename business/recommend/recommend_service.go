package recommend

import (
	"context"
	"fmt"

	"movieRecommender/domain"
	"movieRecommender/pkg/logger"
)

var ErrUserNotFound = domain.ErrUserNotFound

// ---- Repository interfaces ----

type PreferenceRepository interface {
	GetPreferences(ctx context.Context, userID string) (domain.RawPreferences, bool, error)
}

// ---- Usecase / Service ----

// RecommendationService serves recommendations for stored users over a
// catalog loaded once at startup.
type RecommendationService struct {
	catalog  *domain.Catalog
	prefRepo PreferenceRepository
	engine   *Engine
	cfg      Config
}

func NewRecommendationService(
	catalog *domain.Catalog,
	prefRepo PreferenceRepository,
	cfg Config,
) *RecommendationService {
	return &RecommendationService{
		catalog:  catalog,
		prefRepo: prefRepo,
		engine:   NewEngine(cfg),
		cfg:      cfg,
	}
}

// Defaults returns the configured request defaults.
func (s *RecommendationService) Defaults() ExploreOptions {
	return s.cfg.ExploreDefaults()
}

// Recommend returns the plain constraint-based ranking for a user.
func (s *RecommendationService) Recommend(
	ctx context.Context,
	userID string,
	topK int,
) (domain.Recommendation, error) {

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.Recommendation{}, err
	}

	rec := s.engine.Recommend(s.catalog, profile, topK)

	logger.Debug("recommend",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", userID,
		"top_k", topK,
		"status", rec.Status,
		"count", len(rec.Results),
	)
	RecommendResponsesTotal.WithLabelValues("constraint", string(rec.Status)).Inc()

	return rec, nil
}

// RecommendWithExploration returns an ε-greedy mix of exploit and explore picks.
func (s *RecommendationService) RecommendWithExploration(
	ctx context.Context,
	userID string,
	opts ExploreOptions,
) (domain.ExplorationResult, error) {

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.ExplorationResult{}, err
	}

	res := s.engine.RecommendWithExploration(s.catalog, profile, opts)

	explorePicks := 0
	for _, p := range res.Picks {
		PicksTotal.WithLabelValues(string(p.Strategy)).Inc()
		if p.Strategy == domain.PickExplore {
			explorePicks++
		}
	}
	PoolSize.WithLabelValues("exploit").Observe(float64(res.Diagnostics.ExploitPoolSize))
	PoolSize.WithLabelValues("explore").Observe(float64(res.Diagnostics.ExplorePoolSize))
	RecommendResponsesTotal.WithLabelValues("bandit", string(res.Status)).Inc()

	logger.Debug("recommend_bandit",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", userID,
		"top_k", opts.TopK,
		"epsilon", opts.Epsilon,
		"candidate_width", opts.CandidateWidth,
		"explore_extra", opts.ExploreExtra,
		"seeded", opts.Seed != nil,
		"status", res.Status,
		"count", len(res.Picks),
		"explore_picks", explorePicks,
		"exploit_pool", res.Diagnostics.ExploitPoolSize,
		"explore_pool", res.Diagnostics.ExplorePoolSize,
	)

	return res, nil
}

// DebugPools exposes the pools a bandit request would select from.
func (s *RecommendationService) DebugPools(
	ctx context.Context,
	userID string,
	opts ExploreOptions,
) (domain.PoolDebug, error) {

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.PoolDebug{}, err
	}

	dbg := s.engine.DebugPools(s.catalog, profile, opts)

	logger.Debug("recommend_debug_pools",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", userID,
		"exploit_pool", len(dbg.Exploit),
		"explore_pool", len(dbg.Explore),
	)

	return dbg, nil
}

func (s *RecommendationService) loadProfile(ctx context.Context, userID string) (domain.PreferenceProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.PreferenceProfile{}, fmt.Errorf("context error: %w", err)
	}

	raw, ok, err := s.prefRepo.GetPreferences(ctx, userID)
	if err != nil {
		return domain.PreferenceProfile{}, fmt.Errorf("load preferences: %w", err)
	}
	if !ok {
		return domain.PreferenceProfile{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	return Normalize(userID, raw, s.cfg.DefaultRuntimeTolerance), nil
}
