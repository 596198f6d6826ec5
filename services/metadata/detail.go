package metadata

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strconv"
	"strings"

	"cinescope/models"
)

// MovieDetail is everything the movie page renders.
type MovieDetail struct {
	Movie         *models.MovieDetails
	Raw           json.RawMessage
	Credits       *models.MovieCredits
	Director      string
	DirectorState models.DirectorState
}

// MovieDetail loads the movie and then resolves the director of the movie
// that was loaded, which in fixture mode is not the requested one. It returns
// nil when the movie itself has no value.
func (s *Service) MovieDetail(ctx context.Context, id string) *MovieDetail {
	raw := s.MovieByID(ctx, id)
	if raw == nil {
		return nil
	}
	details, err := models.DecodeMovieDetails(raw)
	if err != nil {
		log.Printf("[movies] %s %v", msgMovieFailed, err)
		return nil
	}
	if details.ID == 0 {
		log.Printf("[movies] %s payload for %q has no movie id", msgMovieFailed, id)
		return nil
	}

	detail := &MovieDetail{Movie: details, Raw: raw}
	detail.Credits, detail.Director, detail.DirectorState = s.ResolveDirector(ctx, strconv.FormatInt(details.ID, 10))
	return detail
}

// ResolveDirector fetches watch providers straight through the API client,
// then credits, strictly in that order, and looks for the first crew member
// in the Directing department. A failure at either step stops the lookup.
func (s *Service) ResolveDirector(ctx context.Context, id string) (*models.MovieCredits, string, models.DirectorState) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, "", models.DirectorFetchFailed
	}

	providers, err := s.tmdb.get(ctx, "watch_providers", "/movie/"+url.PathEscape(id)+"/watch/providers", nil, validJSON)
	if err != nil {
		log.Printf("[movies] %s %v", msgProvidersFailed, err)
		return nil, "", models.DirectorFetchFailed
	}

	credits := s.MovieCredits(ctx, id)
	s.debugf("[movies] detail id=%s providers status=%d credits=%v", id, providers.status, credits != nil)
	if credits == nil {
		return nil, "", models.DirectorFetchFailed
	}

	name, ok := credits.Director()
	if !ok {
		log.Printf("[movies] no crew member in %s department for movie %s", models.DepartmentDirecting, id)
		return credits, "", models.DirectorNotFound
	}
	return credits, name, models.DirectorFound
}
