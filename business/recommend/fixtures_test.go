package recommend

import (
	"fmt"
	"math/rand"
	"testing"

	"movieRecommender/domain"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

type movieOpt func(*domain.Movie)

func withDirector(d string) movieOpt { return func(m *domain.Movie) { m.Director = d } }

func withRuntime(r int) movieOpt { return func(m *domain.Movie) { m.Runtime = intPtr(r) } }

func withAwards() movieOpt { return func(m *domain.Movie) { m.HasAwards = true } }

func withGenres(gs ...domain.Genre) movieOpt {
	return func(m *domain.Movie) { m.Genres = domain.NewGenreSet(gs...) }
}

func movie(id int64, year int, opts ...movieOpt) domain.Movie {
	m := domain.Movie{ID: id, Title: fmt.Sprintf("movie-%d", id), ReleaseYear: year}
	for _, o := range opts {
		o(&m)
	}
	return m
}

func newCatalog(t testing.TB, movies ...domain.Movie) *domain.Catalog {
	t.Helper()
	cat, err := domain.NewCatalog(movies)
	require.NoError(t, err)
	return cat
}

func directors(names ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

var fixtureDirectors = []string{"Leone", "Ford", "Kurosawa", "Varda", "Hitchcock", "Wilder", ""}

// randomCatalog builds n movies with random years, genres, directors,
// runtimes and awards.
func randomCatalog(t testing.TB, rng *rand.Rand, n int) *domain.Catalog {
	t.Helper()
	genres := domain.AllGenres()
	movies := make([]domain.Movie, 0, n)
	for i := 0; i < n; i++ {
		m := movie(int64(i+1), 1950+rng.Intn(70), withDirector(fixtureDirectors[rng.Intn(len(fixtureDirectors))]))
		for k := 0; k < 1+rng.Intn(3); k++ {
			m.Genres = m.Genres.With(genres[rng.Intn(len(genres))])
		}
		if rng.Intn(5) > 0 {
			m.Runtime = intPtr(70 + rng.Intn(120))
		}
		m.HasAwards = rng.Intn(4) == 0
		movies = append(movies, m)
	}
	return newCatalog(t, movies...)
}

// randomProfile draws a profile that may leave any field at its zero value.
func randomProfile(rng *rand.Rand) domain.PreferenceProfile {
	genres := domain.AllGenres()
	p := domain.PreferenceProfile{
		UserID:             "random",
		MinReleaseYear:     1950 + rng.Intn(60),
		PreferAwardWinning: rng.Intn(2) == 0,
		FavoriteDirectors:  map[string]struct{}{},
		RuntimeTolerance:   rng.Intn(30),
	}
	for k := 0; k < rng.Intn(3); k++ {
		p.DesiredGenres = p.DesiredGenres.With(genres[rng.Intn(len(genres))])
	}
	if rng.Intn(3) == 0 {
		p.ForbiddenGenres = p.ForbiddenGenres.With(genres[rng.Intn(len(genres))])
	}
	for k := 0; k < rng.Intn(3); k++ {
		p.FavoriteDirectors[fixtureDirectors[rng.Intn(len(fixtureDirectors)-1)]] = struct{}{}
	}
	if rng.Intn(2) == 0 {
		p.PreferredRuntime = intPtr(80 + rng.Intn(80))
	}
	return p
}

func candidateIDs(pool []domain.ScoredCandidate) []int64 {
	out := make([]int64, len(pool))
	for i, c := range pool {
		out[i] = c.ID
	}
	return out
}

func pickIDs(picks []domain.Pick) []int64 {
	out := make([]int64, len(picks))
	for i, p := range picks {
		out[i] = p.ID
	}
	return out
}
