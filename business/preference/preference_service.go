package preference

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"movieRecommender/domain"
	"movieRecommender/pkg/logger"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidPreferences = errors.New("invalid preferences")
	ErrUserNotFound       = domain.ErrUserNotFound
)

// ---- Repository interfaces ----

type Repository interface {
	GetPreferences(ctx context.Context, userID string) (domain.RawPreferences, bool, error)
	SavePreferences(ctx context.Context, userID string, raw domain.RawPreferences) error
	ListUserIDs(ctx context.Context) ([]string, error)
}

// ---- Usecase / Service ----

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository, validate *validator.Validate) *Service {
	if validate == nil {
		validate = validator.New()
	}
	return &Service{
		repo:     repo,
		validate: validate,
	}
}

func (s *Service) Get(ctx context.Context, userID string) (domain.RawPreferences, error) {
	if err := ctx.Err(); err != nil {
		return domain.RawPreferences{}, fmt.Errorf("context error: %w", err)
	}

	raw, ok, err := s.repo.GetPreferences(ctx, userID)
	if err != nil {
		return domain.RawPreferences{}, fmt.Errorf("get preferences: %w", err)
	}
	if !ok {
		return domain.RawPreferences{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	return raw, nil
}

// Save validates and stores a profile, creating or replacing it.
func (s *Service) Save(ctx context.Context, userID string, raw domain.RawPreferences) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidPreferences)
	}
	if strings.TrimSpace(userID) != userID {
		return fmt.Errorf("%w: user id %q has surrounding whitespace", ErrInvalidPreferences, userID)
	}
	if err := s.validate.Struct(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
	}

	if _, dropped := domain.ParseGenreSet(raw.DesiredGenres); len(dropped) > 0 {
		logger.Warn("preference_unknown_genres", "user_id", userID, "desired", dropped)
	}
	if _, dropped := domain.ParseGenreSet(raw.ForbiddenGenres); len(dropped) > 0 {
		logger.Warn("preference_unknown_genres", "user_id", userID, "forbidden", dropped)
	}

	if err := s.repo.SavePreferences(ctx, userID, raw); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	logger.Info("preferences_saved", "user_id", userID)
	return nil
}

// List returns every user id with a stored profile, sorted.
func (s *Service) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	ids, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	sort.Strings(ids)
	return ids, nil
}
