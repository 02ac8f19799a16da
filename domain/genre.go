package domain

import (
	"math/bits"
	"strings"
)

// Genre is one of the fixed genre columns known when the catalog is loaded.
type Genre uint8

const (
	GenreUnknown Genre = iota
	GenreAction
	GenreAdventure
	GenreAnimation
	GenreChildrens
	GenreComedy
	GenreCrime
	GenreDocumentary
	GenreDrama
	GenreFantasy
	GenreFilmNoir
	GenreHorror
	GenreMusical
	GenreMystery
	GenreRomance
	GenreSciFi
	GenreThriller
	GenreWar
	GenreWestern

	genreCount
)

// column names as they appear in the enriched movies table
var genreNames = [genreCount]string{
	GenreUnknown:     "unknown",
	GenreAction:      "Action",
	GenreAdventure:   "Adventure",
	GenreAnimation:   "Animation",
	GenreChildrens:   "Children's",
	GenreComedy:      "Comedy",
	GenreCrime:       "Crime",
	GenreDocumentary: "Documentary",
	GenreDrama:       "Drama",
	GenreFantasy:     "Fantasy",
	GenreFilmNoir:    "Film-Noir",
	GenreHorror:      "Horror",
	GenreMusical:     "Musical",
	GenreMystery:     "Mystery",
	GenreRomance:     "Romance",
	GenreSciFi:       "Sci-Fi",
	GenreThriller:    "Thriller",
	GenreWar:         "War",
	GenreWestern:     "Western",
}

var genreByName = func() map[string]Genre {
	m := make(map[string]Genre, genreCount)
	for g, name := range genreNames {
		m[strings.ToLower(name)] = Genre(g)
	}
	return m
}()

func (g Genre) String() string {
	if g >= genreCount {
		return "invalid"
	}
	return genreNames[g]
}

// AllGenres returns every known genre in column order.
func AllGenres() []Genre {
	out := make([]Genre, 0, genreCount)
	for g := Genre(0); g < genreCount; g++ {
		out = append(out, g)
	}
	return out
}

// ParseGenre resolves a column name case-insensitively.
func ParseGenre(name string) (Genre, bool) {
	g, ok := genreByName[strings.ToLower(strings.TrimSpace(name))]
	return g, ok
}

// GenreSet is a membership bitset over the known genres.
type GenreSet uint32

// NewGenreSet builds a set from genres.
func NewGenreSet(genres ...Genre) GenreSet {
	var s GenreSet
	for _, g := range genres {
		s = s.With(g)
	}
	return s
}

// ParseGenreSet keeps the names that resolve to a known genre and
// reports the ones that were dropped.
func ParseGenreSet(names []string) (GenreSet, []string) {
	var (
		s       GenreSet
		dropped []string
	)
	for _, name := range names {
		g, ok := ParseGenre(name)
		if !ok {
			dropped = append(dropped, name)
			continue
		}
		s = s.With(g)
	}
	return s, dropped
}

func (s GenreSet) With(g Genre) GenreSet {
	if g >= genreCount {
		return s
	}
	return s | 1<<g
}

func (s GenreSet) Has(g Genre) bool {
	return g < genreCount && s&(1<<g) != 0
}

func (s GenreSet) IsEmpty() bool { return s == 0 }

// Len is the number of genres in the set.
func (s GenreSet) Len() int { return bits.OnesCount32(uint32(s)) }

// Intersect returns the genres present in both sets.
func (s GenreSet) Intersect(o GenreSet) GenreSet { return s & o }

// Genres lists members in column order.
func (s GenreSet) Genres() []Genre {
	out := make([]Genre, 0, s.Len())
	for g := Genre(0); g < genreCount; g++ {
		if s.Has(g) {
			out = append(out, g)
		}
	}
	return out
}

// Names lists member column names in column order.
func (s GenreSet) Names() []string {
	out := make([]string, 0, s.Len())
	for _, g := range s.Genres() {
		out = append(out, g.String())
	}
	return out
}
