package recommend

import (
	"testing"

	"movieRecommender/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	raw := domain.RawPreferences{
		MinReleaseYear:     1990,
		DesiredGenres:      []string{"sci-fi", "Mumblecore", "Thriller"},
		ForbiddenGenres:    []string{"Horror", "Vaporwave"},
		PreferAwardWinning: true,
		FavoriteDirectors:  []string{" Ridley Scott ", "", "James Cameron"},
		PreferredRuntime:   intPtr(120),
	}

	p := Normalize("u1", raw, 15)

	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, 1990, p.MinReleaseYear)
	assert.Equal(t, domain.NewGenreSet(domain.GenreSciFi, domain.GenreThriller), p.DesiredGenres)
	assert.Equal(t, domain.NewGenreSet(domain.GenreHorror), p.ForbiddenGenres)
	assert.True(t, p.PreferAwardWinning)
	assert.Equal(t, directors("Ridley Scott", "James Cameron"), p.FavoriteDirectors)
	require.NotNil(t, p.PreferredRuntime)
	assert.Equal(t, 120, *p.PreferredRuntime)
	assert.Equal(t, 15, p.RuntimeTolerance)
}

func TestNormalize_RuntimeTolerance(t *testing.T) {
	tests := []struct {
		name      string
		tolerance *int
		want      int
	}{
		{"missing uses default", nil, 15},
		{"explicit zero is kept", intPtr(0), 0},
		{"explicit value", intPtr(25), 25},
		{"negative clamps to zero", intPtr(-5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize("u", domain.RawPreferences{RuntimeTolerance: tt.tolerance}, 15)
			assert.Equal(t, tt.want, p.RuntimeTolerance)
		})
	}
}

func TestNormalize_Defaults(t *testing.T) {
	p := Normalize("u", domain.RawPreferences{MinReleaseYear: -10, PreferredRuntime: intPtr(0)}, 15)

	assert.Zero(t, p.MinReleaseYear)
	assert.True(t, p.DesiredGenres.IsEmpty())
	assert.True(t, p.ForbiddenGenres.IsEmpty())
	assert.False(t, p.PreferAwardWinning)
	assert.NotNil(t, p.FavoriteDirectors)
	assert.Empty(t, p.FavoriteDirectors)
	assert.Nil(t, p.PreferredRuntime)
}

func TestNormalize_DoesNotAliasInput(t *testing.T) {
	raw := domain.RawPreferences{PreferredRuntime: intPtr(100)}

	p := Normalize("u", raw, 15)
	*raw.PreferredRuntime = 200

	assert.Equal(t, 100, *p.PreferredRuntime)
}
