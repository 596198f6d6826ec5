package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cinescope/handlers"
)

// NewRouter returns a router with request ids and access logging installed.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(accessLogMiddleware)
	return r
}

// Register mounts the pages, the JSON API and the operational endpoints onto
// the provided router.
func Register(
	r *mux.Router,
	pagesHandler *handlers.PagesHandler,
	moviesHandler *handlers.MoviesHandler,
	healthHandler *handlers.HealthHandler,
) {
	r.HandleFunc("/healthz", healthHandler.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(corsMiddleware)
	api.NotFoundHandler = instrument(http.HandlerFunc(moviesHandler.NotFound))

	api.HandleFunc("/movies/popular", moviesHandler.Popular).Methods(http.MethodGet)
	api.HandleFunc("/movies/popular", handleOptions).Methods(http.MethodOptions)
	api.HandleFunc("/movies/{id}", moviesHandler.Movie).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}", handleOptions).Methods(http.MethodOptions)
	api.HandleFunc("/movies/{id}/providers", moviesHandler.Providers).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}/providers", handleOptions).Methods(http.MethodOptions)
	api.HandleFunc("/movies/{id}/credits", moviesHandler.Credits).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}/credits", handleOptions).Methods(http.MethodOptions)
	api.HandleFunc("/movies/{id}/director", moviesHandler.Director).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}/director", handleOptions).Methods(http.MethodOptions)
	api.HandleFunc("/genres", moviesHandler.Genres).Methods(http.MethodGet)
	api.HandleFunc("/genres", handleOptions).Methods(http.MethodOptions)
	api.HandleFunc("/genres/{genre}/movies", moviesHandler.GenreMovies).Methods(http.MethodGet)
	api.HandleFunc("/genres/{genre}/movies", handleOptions).Methods(http.MethodOptions)

	r.HandleFunc("/", pagesHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/genre/{genre}", pagesHandler.Genre).Methods(http.MethodGet)
	r.HandleFunc("/movie/{id}", pagesHandler.Movie).Methods(http.MethodGet)
	r.NotFoundHandler = instrument(http.HandlerFunc(pagesHandler.NotFound))
	r.MethodNotAllowedHandler = instrument(http.HandlerFunc(methodNotAllowed))
}
