package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"movieRecommender/business/recommend"
	"movieRecommender/domain"
	"movieRecommender/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate *validator.Validate
		service  RecommendationService
		timeout  time.Duration
	}

	RecommendationService interface {
		Recommend(ctx context.Context, userID string, topK int) (domain.Recommendation, error)
		RecommendWithExploration(ctx context.Context, userID string, opts recommend.ExploreOptions) (domain.ExplorationResult, error)
		DebugPools(ctx context.Context, userID string, opts recommend.ExploreOptions) (domain.PoolDebug, error)
		Defaults() recommend.ExploreOptions
	}

	RecommendQuery struct {
		TopK int `validate:"gte=1,lte=100"`
	}

	BanditQuery struct {
		TopK          int     `validate:"gte=1,lte=100"`
		Epsilon       float64 `validate:"gte=0,lte=1"`
		CandidatePool int     `validate:"gte=1,lte=10000"`
		ExploreExtra  int     `validate:"gte=0,lte=10000"`
		Seed          int64
		HasSeed       bool
	}

	RecommendationResponse struct {
		Status  domain.Status            `json:"status"`
		UserID  string                   `json:"user_id"`
		Message string                   `json:"message,omitempty"`
		Count   int                      `json:"count"`
		Results []domain.ScoredCandidate `json:"results"`
	}

	BanditResponse struct {
		Status      domain.Status       `json:"status"`
		UserID      string              `json:"user_id"`
		Message     string              `json:"message,omitempty"`
		Epsilon     float64             `json:"epsilon"`
		Count       int                 `json:"count"`
		Results     []domain.Pick       `json:"results"`
		Diagnostics *domain.Diagnostics `json:"diagnostics,omitempty"`
	}

	PoolDebugResponse struct {
		domain.PoolDebug
		UserID  string `json:"user_id"`
		Message string `json:"message,omitempty"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate: validator.New(),
		service:  svc,
		timeout:  10 * time.Second,
	}
}

// GET /api/v1/recommendations/:user_id?top_k=5
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	userID := c.Param("user_id")

	q := RecommendQuery{TopK: h.service.Defaults().TopK}
	if err := echo.QueryParamsBinder(c).Int("top_k", &q.TopK).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rec, err := h.service.Recommend(ctx, userID, q.TopK)
	if errors.Is(err, recommend.ErrUserNotFound) {
		return c.JSON(http.StatusOK, RecommendationResponse{
			Status:  domain.StatusNoMatch,
			UserID:  userID,
			Message: userNotFoundMessage(userID),
			Results: []domain.ScoredCandidate{},
		})
	}
	if err != nil {
		logger.Error("Failed to recommend", "user_id", userID, err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	resp := RecommendationResponse{
		Status:  rec.Status,
		UserID:  userID,
		Count:   len(rec.Results),
		Results: rec.Results,
	}
	if rec.Status == domain.StatusNoMatch {
		resp.Message = noMatchMessage(userID)
	}

	return c.JSON(http.StatusOK, resp)
}

// GET /api/v1/recommendations_bandit/:user_id?top_k=5&epsilon=0.2&candidate_pool=100&explore_extra=200&seed=42
func (h *RecommendationHandler) RecommendBandit(c echo.Context) error {
	userID := c.Param("user_id")

	q, err := h.bindBanditQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res, err := h.service.RecommendWithExploration(ctx, userID, q.options())
	if errors.Is(err, recommend.ErrUserNotFound) {
		return c.JSON(http.StatusOK, BanditResponse{
			Status:  domain.StatusNoMatch,
			UserID:  userID,
			Message: userNotFoundMessage(userID),
			Epsilon: q.Epsilon,
			Results: []domain.Pick{},
		})
	}
	if err != nil {
		logger.Error("Failed to recommend with exploration", "user_id", userID, err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	resp := BanditResponse{
		Status:  res.Status,
		UserID:  userID,
		Epsilon: q.Epsilon,
		Count:   len(res.Picks),
		Results: res.Picks,
	}
	if res.Status == domain.StatusNoMatch {
		resp.Message = noMatchMessage(userID)
	} else {
		diag := res.Diagnostics
		resp.Diagnostics = &diag
	}

	return c.JSON(http.StatusOK, resp)
}

// GET /api/v1/recommendations_bandit/:user_id/debug
func (h *RecommendationHandler) DebugPools(c echo.Context) error {
	userID := c.Param("user_id")

	q, err := h.bindBanditQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	dbg, err := h.service.DebugPools(ctx, userID, q.options())
	if errors.Is(err, recommend.ErrUserNotFound) {
		return c.JSON(http.StatusOK, PoolDebugResponse{
			PoolDebug: domain.PoolDebug{
				Status:  domain.StatusNoMatch,
				Exploit: []domain.ScoredCandidate{},
				Explore: []domain.ScoredCandidate{},
			},
			UserID:  userID,
			Message: userNotFoundMessage(userID),
		})
	}
	if err != nil {
		logger.Error("Failed to build debug pools", "user_id", userID, err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, PoolDebugResponse{PoolDebug: dbg, UserID: userID})
}

func (h *RecommendationHandler) bindBanditQuery(c echo.Context) (BanditQuery, error) {
	d := h.service.Defaults()
	q := BanditQuery{
		TopK:          d.TopK,
		Epsilon:       d.Epsilon,
		CandidatePool: d.CandidateWidth,
		ExploreExtra:  d.ExploreExtra,
	}

	err := echo.QueryParamsBinder(c).
		Int("top_k", &q.TopK).
		Float64("epsilon", &q.Epsilon).
		Int("candidate_pool", &q.CandidatePool).
		Int("explore_extra", &q.ExploreExtra).
		Int64("seed", &q.Seed).
		BindError()
	if err != nil {
		return BanditQuery{}, err
	}
	q.HasSeed = c.QueryParam("seed") != ""

	if err := h.validate.Struct(&q); err != nil {
		return BanditQuery{}, err
	}
	return q, nil
}

func (q BanditQuery) options() recommend.ExploreOptions {
	opts := recommend.ExploreOptions{
		TopK:           q.TopK,
		Epsilon:        q.Epsilon,
		CandidateWidth: q.CandidatePool,
		ExploreExtra:   q.ExploreExtra,
	}
	if q.HasSeed {
		seed := q.Seed
		opts.Seed = &seed
	}
	return opts
}

func userNotFoundMessage(userID string) string {
	return fmt.Sprintf("User '%s' not found.", userID)
}

func noMatchMessage(userID string) string {
	return fmt.Sprintf("No recommendations found for '%s' with current preferences.", userID)
}
