package models

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Genre is a key of the fixed discovery genre table.
type Genre string

const (
	GenreAction    Genre = "action"
	GenreComedy    Genre = "comedy"
	GenreAdventure Genre = "adventure"
	GenreAnimation Genre = "animation"
	GenreCrime     Genre = "crime"
	GenreDrama     Genre = "drama"
	GenreFantasy   Genre = "fantasy"
	GenreHorror    Genre = "horror"
	GenreMystery   Genre = "mystery"
	GenreRomance   Genre = "romance"
	GenreSciFi     Genre = "scifi"
	GenreThriller  Genre = "thriller"
	GenreWar       Genre = "war"
)

// genreIDs maps each key to the TMDB genre id expected by /discover/movie.
var genreIDs = map[Genre]int{
	GenreAction:    28,
	GenreComedy:    35,
	GenreAdventure: 12,
	GenreAnimation: 16,
	GenreCrime:     80,
	GenreDrama:     18,
	GenreFantasy:   14,
	GenreHorror:    27,
	GenreMystery:   9648,
	GenreRomance:   10749,
	GenreSciFi:     878,
	GenreThriller:  53,
	GenreWar:       10752,
}

// GenreID resolves a genre key through the table.
func GenreID(g Genre) (int, bool) {
	id, ok := genreIDs[g]
	return id, ok
}

// ParseGenre normalizes user input ("Horror", " horror ") to a known key.
func ParseGenre(raw string) (Genre, bool) {
	g := Genre(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := genreIDs[g]
	return g, ok
}

// Genres lists every key in alphabetical order.
func Genres() []Genre {
	out := make([]Genre, 0, len(genreIDs))
	for g := range genreIDs {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GenreEntry is the JSON form of one table row.
type GenreEntry struct {
	Key  Genre  `json:"key"`
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DisplayName is the label shown on genre rows and tags.
func (g Genre) DisplayName() string {
	if g == GenreSciFi {
		return "Sci-Fi"
	}
	return cases.Title(language.English).String(string(g))
}

// GenreTable returns the table as ordered entries.
func GenreTable() []GenreEntry {
	keys := Genres()
	out := make([]GenreEntry, 0, len(keys))
	for _, g := range keys {
		out = append(out, GenreEntry{Key: g, ID: genreIDs[g], Name: g.DisplayName()})
	}
	return out
}
