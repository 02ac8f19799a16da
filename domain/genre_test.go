package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenre(t *testing.T) {
	tests := []struct {
		name  string
		want  Genre
		known bool
	}{
		{"Action", GenreAction, true},
		{"  comedy ", GenreComedy, true},
		{"SCI-FI", GenreSciFi, true},
		{"Children's", GenreChildrens, true},
		{"unknown", GenreUnknown, true},
		{"Space Opera", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := ParseGenre(tt.name)
			assert.Equal(t, tt.known, ok)
			if tt.known {
				assert.Equal(t, tt.want, g)
			}
		})
	}
}

func TestParseGenreSetDropsUnknownNames(t *testing.T) {
	s, dropped := ParseGenreSet([]string{"Drama", "Nonexistent", "Comedy", "drama"})

	assert.Equal(t, NewGenreSet(GenreDrama, GenreComedy), s)
	assert.Equal(t, []string{"Nonexistent"}, dropped)
	assert.Equal(t, 2, s.Len())
}

func TestGenreSetOperations(t *testing.T) {
	a := NewGenreSet(GenreAction, GenreThriller, GenreWar)
	b := NewGenreSet(GenreThriller, GenreDrama)

	assert.True(t, a.Has(GenreWar))
	assert.False(t, a.Has(GenreDrama))
	assert.Equal(t, NewGenreSet(GenreThriller), a.Intersect(b))
	assert.True(t, a.Intersect(NewGenreSet(GenreHorror)).IsEmpty())
	assert.Equal(t, []string{"Action", "Thriller", "War"}, a.Names())

	// out-of-range genres are ignored
	assert.Equal(t, a, a.With(Genre(200)))
	assert.False(t, a.Has(Genre(200)))
}

func TestAllGenresCoversEveryColumn(t *testing.T) {
	all := AllGenres()
	require.Len(t, all, 19)

	var s GenreSet
	for _, g := range all {
		s = s.With(g)
	}
	assert.Equal(t, 19, s.Len())
}

func TestGenreSetJSON(t *testing.T) {
	in := NewGenreSet(GenreComedy, GenreRomance)

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `["Comedy","Romance"]`, string(data))

	var out GenreSet
	require.NoError(t, json.Unmarshal([]byte(`["romance","Comedy","Polka"]`), &out))
	assert.Equal(t, in, out)
}
