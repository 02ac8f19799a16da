package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// CREATE TABLE public.movies (
//     movie_id     BIGINT PRIMARY KEY,
//     movie_title  TEXT NOT NULL,
//     release_year INTEGER NOT NULL,
//     runtime      INTEGER,
//     awards       BOOLEAN DEFAULT FALSE,
//     director     TEXT,
//     genres       INTEGER NOT NULL DEFAULT 0
// );

type Movie struct {
	ID          int64    `gorm:"column:movie_id;primaryKey" json:"movie_id"`
	Title       string   `gorm:"column:movie_title;type:text;not null" json:"movie_title"`
	ReleaseYear int      `gorm:"column:release_year;not null" json:"release_year"`
	Runtime     *int     `gorm:"column:runtime" json:"runtime"`
	HasAwards   bool     `gorm:"column:awards;default:false" json:"awards"`
	Director    string   `gorm:"column:director;type:text" json:"director"`
	Genres      GenreSet `gorm:"column:genres;not null;default:0" json:"genres"`
}

func (Movie) TableName() string {
	return "movies"
}

// MarshalJSON renders the set as genre names.
func (s GenreSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

func (s *GenreSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s, _ = ParseGenreSet(names)
	return nil
}

var ErrDuplicateMovie = errors.New("duplicate movie id")

// Catalog is the read-only movie table shared by every request.
// Movies are kept in ascending id order; that order is the tie-break
// order used by ranking.
type Catalog struct {
	movies []Movie
	index  map[int64]int
}

// NewCatalog copies movies into a new catalog.
func NewCatalog(movies []Movie) (*Catalog, error) {
	sorted := make([]Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	index := make(map[int64]int, len(sorted))
	for i, m := range sorted {
		if _, ok := index[m.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateMovie, m.ID)
		}
		index[m.ID] = i
	}

	return &Catalog{movies: sorted, index: index}, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.movies)
}

// At returns the i-th movie in catalog order.
func (c *Catalog) At(i int) Movie {
	return c.movies[i]
}

func (c *Catalog) Get(id int64) (Movie, bool) {
	if c == nil {
		return Movie{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// Movies returns a copy of the catalog rows.
func (c *Catalog) Movies() []Movie {
	out := make([]Movie, c.Len())
	if c != nil {
		copy(out, c.movies)
	}
	return out
}
