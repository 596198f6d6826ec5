package models

import (
	"encoding/json"
	"net/http"
)

// Movie shapes are read-only projections of TMDB responses. Field names on
// the wire match the upstream snake_case names.

// MovieBanner is the popular-list shape used by hero headers and poster rows.
type MovieBanner struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Overview     string `json:"overview"`
	BackdropPath string `json:"backdrop_path"`
}

// MovieBase is the discovery shape used by genre rows.
type MovieBase struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	ReleaseDate  string `json:"release_date"`
	BackdropPath string `json:"backdrop_path"`
}

type GenreTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the subset of /movie/{id} the detail page reads.
type MovieDetails struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	ReleaseDate  string     `json:"release_date"`
	Status       string     `json:"status"`
	Overview     string     `json:"overview"`
	Tagline      string     `json:"tagline"`
	BackdropPath string     `json:"backdrop_path"`
	PosterPath   string     `json:"poster_path"`
	Genres       []GenreTag `json:"genres"`
}

// DecodeMovieDetails reads the detail fields out of a raw movie payload.
func DecodeMovieDetails(raw json.RawMessage) (*MovieDetails, error) {
	var details MovieDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// MovieCreditPerson is shared by cast and crew entries.
type MovieCreditPerson struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	ProfilePath        string `json:"profile_path"`
	KnownForDepartment string `json:"known_for_department"`
}

type MovieCredits struct {
	Cast []MovieCreditPerson `json:"cast"`
	Crew []MovieCreditPerson `json:"crew"`
}

const DepartmentDirecting = "Directing"

// Director returns the first crew member whose department is Directing.
func (c *MovieCredits) Director() (string, bool) {
	if c == nil {
		return "", false
	}
	for _, person := range c.Crew {
		if person.KnownForDepartment == DepartmentDirecting {
			return person.Name, true
		}
	}
	return "", false
}

// WatchProviderResponse is the whole upstream response for
// /movie/{id}/watch/providers, not only its body.
type WatchProviderResponse struct {
	Status int             `json:"status"`
	Header http.Header     `json:"-"`
	Body   json.RawMessage `json:"body"`
}

// DirectorState tells apart why a detail page has no director line.
type DirectorState string

const (
	DirectorFound       DirectorState = "found"
	DirectorNotFound    DirectorState = "not_found"
	DirectorFetchFailed DirectorState = "fetch_failed"
)
