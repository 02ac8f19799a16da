package catalog

import (
	"context"
	"fmt"

	"movieRecommender/domain"
	"movieRecommender/pkg/logger"
)

// ---- Repository interfaces ----

type MovieSource interface {
	FindAll(ctx context.Context) ([]domain.Movie, error)
}

type MovieSink interface {
	UpsertMany(ctx context.Context, movies []domain.Movie) error
}

// Load reads every movie from src and freezes them into a Catalog.
func Load(ctx context.Context, src MovieSource) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	movies, err := src.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	cat, err := domain.NewCatalog(movies)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	logger.Info("catalog_loaded", "movies", cat.Len())
	return cat, nil
}

// Import copies the movies of src into dst and returns how many were written.
// Duplicate ids in src are rejected before anything is written.
func Import(ctx context.Context, src MovieSource, dst MovieSink) (int, error) {
	cat, err := Load(ctx, src)
	if err != nil {
		return 0, err
	}

	if err := dst.UpsertMany(ctx, cat.Movies()); err != nil {
		return 0, fmt.Errorf("import catalog: %w", err)
	}

	logger.Info("catalog_imported", "movies", cat.Len())
	return cat.Len(), nil
}
