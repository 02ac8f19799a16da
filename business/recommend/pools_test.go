package recommend

import (
	"math/rand"
	"testing"

	"movieRecommender/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// actionComedyCatalog holds nAction Action movies followed by nComedy Comedy
// movies, none with a director or runtime.
func actionComedyCatalog(t *testing.T, nAction, nComedy int) *domain.Catalog {
	movies := make([]domain.Movie, 0, nAction+nComedy)
	for i := 0; i < nAction; i++ {
		movies = append(movies, movie(int64(i+1), 2000, withGenres(domain.GenreAction)))
	}
	for i := 0; i < nComedy; i++ {
		movies = append(movies, movie(int64(nAction+i+1), 2000, withGenres(domain.GenreComedy)))
	}
	return newCatalog(t, movies...)
}

func TestBuildPools_Disjoint(t *testing.T) {
	e := NewEngine(DefaultConfig())
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		cat := randomCatalog(t, rng, 20+rng.Intn(300))
		profile := randomProfile(rng)
		width := rng.Intn(150)
		extra := rng.Intn(250)

		exploit, explore := e.BuildPools(cat, profile, width, extra, rand.New(rand.NewSource(int64(i))))

		require.LessOrEqual(t, len(exploit), max(width, 20))
		inExploit := idSet(exploit)
		seen := make(map[int64]struct{}, len(explore))
		for _, c := range explore {
			_, dup := inExploit[c.ID]
			require.False(t, dup, "id %d in both pools", c.ID)
			_, again := seen[c.ID]
			require.False(t, again, "id %d twice in explore", c.ID)
			seen[c.ID] = struct{}{}
			require.GreaterOrEqual(t, c.ReleaseYear, profile.MinReleaseYear)
		}
	}
}

func TestBuildPools_NovelCandidatesAllIncluded(t *testing.T) {
	e := NewEngine(DefaultConfig())
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 50; i++ {
		cat := randomCatalog(t, rng, 250)
		profile := randomProfile(rng)

		exploit, explore := e.BuildPools(cat, profile, 30, 200, rng)
		if len(exploit) == 0 {
			continue
		}
		inExploit := idSet(exploit)
		inExplore := idSet(explore)

		for _, m := range cat.Movies() {
			if m.ReleaseYear < profile.MinReleaseYear {
				continue
			}
			if _, ok := inExploit[m.ID]; ok {
				continue
			}
			if novel, _ := IsNovel(m, profile); novel {
				_, ok := inExplore[m.ID]
				require.True(t, ok, "novel movie %d missing from explore", m.ID)
			}
		}
	}
}

func TestBuildPools_NoCandidates(t *testing.T) {
	e := NewEngine(DefaultConfig())
	cat := actionComedyCatalog(t, 5, 5)

	exploit, explore := e.BuildPools(cat, domain.PreferenceProfile{MinReleaseYear: 2100}, 100, 200, nil)

	assert.NotNil(t, exploit)
	assert.NotNil(t, explore)
	assert.Empty(t, exploit)
	assert.Empty(t, explore)
}

func TestBuildPools_ExploitWidthHasFloor(t *testing.T) {
	e := NewEngine(DefaultConfig())
	cat := actionComedyCatalog(t, 30, 30)
	profile := domain.PreferenceProfile{DesiredGenres: domain.NewGenreSet(domain.GenreAction)}

	exploit, _ := e.BuildPools(cat, profile, 5, 0, rand.New(rand.NewSource(1)))
	assert.Len(t, exploit, 20)

	exploit, _ = e.BuildPools(cat, profile, 45, 0, rand.New(rand.NewSource(1)))
	assert.Len(t, exploit, 45)
}

func TestBuildPools_Padding(t *testing.T) {
	e := NewEngine(DefaultConfig())
	profile := domain.PreferenceProfile{DesiredGenres: domain.NewGenreSet(domain.GenreAction)}

	tests := []struct {
		name         string
		nComedy      int
		exploreExtra int
		wantExplore  int
	}{
		{"floor capped at fifty", 110, 200, 50},
		{"floor follows explore_extra", 110, 10, 10},
		{"zero explore_extra disables padding", 110, 0, 0},
		{"base universe smaller than floor", 5, 200, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := actionComedyCatalog(t, 20, tt.nComedy)

			exploit, explore := e.BuildPools(cat, profile, 20, tt.exploreExtra, rand.New(rand.NewSource(9)))

			require.Len(t, exploit, 20)
			assert.Len(t, explore, tt.wantExplore)
			for _, c := range explore {
				assert.True(t, c.Genres.Has(domain.GenreComedy))
				assert.False(t, c.IsNovel(), "padding entries here are not novel")
			}
		})
	}
}

func TestBuildPools_NoPaddingWhenEnoughNovel(t *testing.T) {
	e := NewEngine(DefaultConfig())

	movies := make([]domain.Movie, 0, 100)
	for i := 0; i < 20; i++ {
		movies = append(movies, movie(int64(i+1), 2000, withGenres(domain.GenreWestern), withDirector("Leone")))
	}
	// 60 novel: wrong genre and wrong director
	for i := 0; i < 60; i++ {
		movies = append(movies, movie(int64(100+i), 2000, withGenres(domain.GenreDrama), withDirector("Bergman")))
	}
	// 20 not novel: wrong genre, right director
	for i := 0; i < 20; i++ {
		movies = append(movies, movie(int64(200+i), 2000, withGenres(domain.GenreDrama), withDirector("Leone")))
	}
	cat := newCatalog(t, movies...)
	profile := domain.PreferenceProfile{
		DesiredGenres:     domain.NewGenreSet(domain.GenreWestern),
		FavoriteDirectors: directors("Leone"),
	}

	exploit, explore := e.BuildPools(cat, profile, 20, 200, rand.New(rand.NewSource(2)))

	require.Len(t, exploit, 20)
	for _, c := range exploit {
		assert.True(t, c.Genres.Has(domain.GenreWestern))
	}
	require.Len(t, explore, 60)
	for _, c := range explore {
		assert.True(t, c.IsNovel())
		assert.Equal(t, "genre mismatch, director off-preference", c.NoveltyReason)
	}
}

func TestBuildPools_SameSeedSamePools(t *testing.T) {
	e := NewEngine(DefaultConfig())
	cat := actionComedyCatalog(t, 20, 300)
	profile := domain.PreferenceProfile{DesiredGenres: domain.NewGenreSet(domain.GenreAction)}

	_, a := e.BuildPools(cat, profile, 20, 200, rand.New(rand.NewSource(42)))
	_, b := e.BuildPools(cat, profile, 20, 200, rand.New(rand.NewSource(42)))

	assert.Equal(t, candidateIDs(a), candidateIDs(b))
}

func TestSampleCandidates(t *testing.T) {
	pool := make([]domain.ScoredCandidate, 10)
	for i := range pool {
		pool[i] = domain.ScoredCandidate{Movie: movie(int64(i), 2000)}
	}
	rng := rand.New(rand.NewSource(1))

	got := sampleCandidates(pool, 4, rng)
	assert.Len(t, got, 4)
	assert.Len(t, idSet(got), 4)

	assert.Len(t, sampleCandidates(pool, 50, rng), 10)
	assert.Empty(t, sampleCandidates(pool, 0, rng))
	assert.Empty(t, sampleCandidates(nil, 3, rng))
}

func TestLowestScoring(t *testing.T) {
	pool := []domain.ScoredCandidate{
		{Movie: movie(1, 2000), Score: 3},
		{Movie: movie(2, 2000), Score: 1},
		{Movie: movie(3, 2000), Score: 2},
		{Movie: movie(4, 2000), Score: 1},
	}

	assert.Equal(t, []int64{2, 4, 3}, candidateIDs(lowestScoring(pool, 3)))
	assert.Equal(t, []int64{1, 2, 3, 4}, candidateIDs(pool), "input order is untouched")
}
