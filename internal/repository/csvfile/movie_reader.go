package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"movieRecommender/domain"
	"movieRecommender/pkg/logger"
)

var ErrMissingColumn = errors.New("missing required column")

var releaseDateLayouts = []string{
	"02-Jan-2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006",
}

// MovieReader loads the enriched movie table from a CSV file. Required
// columns are movie_id, movie_title and release_date; runtime, awards,
// director and one 0/1 column per known genre are optional.
type MovieReader struct {
	path string
}

func NewMovieReader(path string) *MovieReader {
	return &MovieReader{path: path}
}

func (r *MovieReader) FindAll(ctx context.Context) ([]domain.Movie, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return ReadMovies(ctx, f)
}

// ReadMovies parses rows until EOF. Rows whose release date cannot be
// parsed are skipped, since no release-year filter can admit them.
func ReadMovies(ctx context.Context, in io.Reader) ([]domain.Movie, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols := indexColumns(header)
	for _, name := range []string{"movie_id", "movie_title", "release_date"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	genreCols := make(map[domain.Genre]int)
	for _, g := range domain.AllGenres() {
		if i, ok := cols[strings.ToLower(g.String())]; ok {
			genreCols[g] = i
		}
	}

	var (
		movies  []domain.Movie
		skipped int
		line    = 1
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context error: %w", err)
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		m, ok, err := parseMovie(rec, cols, genreCols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			skipped++
			continue
		}
		movies = append(movies, m)
	}

	if skipped > 0 {
		logger.Warn("catalog_rows_skipped", "reason", "unparseable release_date", "count", skipped)
	}

	return movies, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	return cols
}

func parseMovie(rec []string, cols map[string]int, genreCols map[domain.Genre]int) (domain.Movie, bool, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	id, err := strconv.ParseInt(field("movie_id"), 10, 64)
	if err != nil {
		return domain.Movie{}, false, fmt.Errorf("invalid movie_id %q", field("movie_id"))
	}

	year, ok := parseReleaseYear(field("release_date"))
	if !ok {
		return domain.Movie{}, false, nil
	}

	m := domain.Movie{
		ID:          id,
		Title:       field("movie_title"),
		ReleaseYear: year,
		Runtime:     parseRuntime(field("runtime")),
		HasAwards:   parseAwards(field("awards")),
		Director:    field("director"),
	}

	for g, i := range genreCols {
		if i < len(rec) && parseFlag(rec[i]) {
			m.Genres = m.Genres.With(g)
		}
	}

	return m, true, nil
}

func parseReleaseYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), true
		}
	}
	return 0, false
}

// parseRuntime returns nil for missing, non-numeric or non-positive values.
func parseRuntime(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return nil
	}
	n := int(v + 0.5)
	return &n
}

// parseAwards treats any positive count as "has awards".
func parseAwards(s string) bool {
	if s == "" {
		return false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v > 0
}

func parseFlag(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v != 0
	}
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
