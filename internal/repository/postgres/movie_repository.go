package postgres

import (
	"context"
	"fmt"

	"movieRecommender/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepository struct {
	DB *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{DB: db}
}

// FindAll returns every movie in id order.
func (r *MovieRepository) FindAll(ctx context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie

	if err := r.DB.WithContext(ctx).Order("movie_id ASC").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}

	return movies, nil
}

// UpsertMany writes movies in batches, replacing rows with the same id.
func (r *MovieRepository) UpsertMany(ctx context.Context, movies []domain.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "movie_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"movie_title",
				"release_year",
				"runtime",
				"awards",
				"director",
				"genres",
			}),
		}).
		CreateInBatches(&movies, 500).Error
}
