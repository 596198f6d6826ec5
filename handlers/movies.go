package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"cinescope/models"
	metadatapkg "cinescope/services/metadata"
)

//go:generate mockgen -source=movies.go -destination=mock_movie_service_test.go -package=handlers

type movieService interface {
	PopularMovies(context.Context) []models.MovieBanner
	MovieByID(context.Context, string) json.RawMessage
	MoviesByGenre(context.Context, models.Genre) []models.MovieBase
	WatchProviders(context.Context, string) *models.WatchProviderResponse
	MovieCredits(context.Context, string) *models.MovieCredits
	ResolveDirector(context.Context, string) (*models.MovieCredits, string, models.DirectorState)
	MovieDetail(context.Context, string) *metadatapkg.MovieDetail
	HomeFeed(context.Context, []models.Genre) *metadatapkg.HomeFeed
	FixtureMode() bool
}

var _ movieService = (*metadatapkg.Service)(nil)

// MoviesHandler exposes the movie operations as JSON under /api.
type MoviesHandler struct {
	Service movieService
}

func NewMoviesHandler(s movieService) *MoviesHandler {
	return &MoviesHandler{Service: s}
}

// providersResponse is the watch-provider payload as the API returns it.
type providersResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type directorResponse struct {
	State models.DirectorState `json:"state"`
	Name  string               `json:"name,omitempty"`
}

func (h *MoviesHandler) Popular(w http.ResponseWriter, r *http.Request) {
	movies := h.Service.PopularMovies(r.Context())
	if movies == nil {
		writeJSONError(w, "popular movies unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

func (h *MoviesHandler) Movie(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}
	raw := h.Service.MovieByID(r.Context(), id)
	if raw == nil {
		writeJSONError(w, "movie unavailable", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		log.Printf("[http] write movie %s: %v", id, err)
	}
}

// Genres lists the supported genre keys with their TMDB ids.
func (h *MoviesHandler) Genres(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.GenreTable())
}

func (h *MoviesHandler) GenreMovies(w http.ResponseWriter, r *http.Request) {
	genre, ok := models.ParseGenre(mux.Vars(r)["genre"])
	if !ok {
		writeJSONError(w, "unknown genre", http.StatusNotFound)
		return
	}
	movies := h.Service.MoviesByGenre(r.Context(), genre)
	if movies == nil {
		writeJSONError(w, "genre movies unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

func (h *MoviesHandler) Providers(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}
	resp := h.Service.WatchProviders(r.Context(), id)
	if resp == nil {
		writeJSONError(w, "watch providers unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, providersResponse{Status: resp.Status, Body: resp.Body})
}

func (h *MoviesHandler) Credits(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}
	credits := h.Service.MovieCredits(r.Context(), id)
	if credits == nil {
		writeJSONError(w, "credits unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, credits)
}

// Director always answers 200; the state says whether a name was found.
func (h *MoviesHandler) Director(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}
	_, name, state := h.Service.ResolveDirector(r.Context(), id)
	writeJSON(w, http.StatusOK, directorResponse{State: state, Name: name})
}

// NotFound keeps unknown /api paths answering in JSON.
func (h *MoviesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, "not found", http.StatusNotFound)
}

func movieID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		writeJSONError(w, "movie id is required", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[http] encode response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
