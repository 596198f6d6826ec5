package metadata

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"cinescope/models"
)

// Messages logged when an operation yields no value.
const (
	msgPopularFailed   = "There is something wrong with popular API!"
	msgMovieFailed     = "There is something wrong with movie API!"
	msgGenreFailed     = "There is something wrong with genre movie API!"
	msgProvidersFailed = "There is something wrong with watch provider API!"
	msgCreditsFailed   = "There is something wrong with credits API!"
)

// Config is everything the service needs; it never reads the environment.
type Config struct {
	APIKey   string
	BaseURL  string
	Language string
	// FixtureMode substitutes fixture data for live calls where a fixture
	// exists (popular, movie by id, movies by genre).
	FixtureMode bool
	Fixtures    *FixtureStore
	HTTPClient  *http.Client
	// Debug enables per-request [tmdb] and [movies] trace lines.
	Debug bool
}

// Service wraps the TMDB movie endpoints. Every operation logs and returns
// nil on failure; callers treat nil as "no value".
type Service struct {
	tmdb        *tmdbClient
	fixtures    *FixtureStore
	fixtureMode bool
	debug       bool
}

func NewService(cfg Config) *Service {
	fixtures := cfg.Fixtures
	if fixtures == nil {
		fixtures = NewEmbeddedFixtureStore()
	}
	tmdb := newTMDBClient(cfg.BaseURL, cfg.APIKey, cfg.Language, cfg.HTTPClient)
	tmdb.debug = cfg.Debug
	return &Service{
		tmdb:        tmdb,
		fixtures:    fixtures,
		fixtureMode: cfg.FixtureMode,
		debug:       cfg.Debug,
	}
}

func (s *Service) debugf(format string, args ...any) {
	if s.debug {
		log.Printf(format, args...)
	}
}

// FixtureMode reports whether fixtures replace live calls.
func (s *Service) FixtureMode() bool {
	return s.fixtureMode
}

// PopularMovies returns page 1 of the popular listing narrowed to banners.
func (s *Service) PopularMovies(ctx context.Context) []models.MovieBanner {
	if s.fixtureMode {
		movies, err := s.fixtures.Popular()
		if err != nil {
			log.Printf("[movies] %s %v", msgPopularFailed, err)
			return nil
		}
		fixtureHits.WithLabelValues("popular").Inc()
		return movies
	}

	movies, err := s.tmdb.popular(ctx)
	if err != nil {
		log.Printf("[movies] %s %v", msgPopularFailed, err)
		return nil
	}
	return movies
}

// MovieByID returns the upstream movie body unmodified. An empty id yields
// nil without any work.
func (s *Service) MovieByID(ctx context.Context, id string) json.RawMessage {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	if s.fixtureMode {
		movie, err := s.fixtures.Movie()
		if err != nil {
			log.Printf("[movies] %s %v", msgMovieFailed, err)
			return nil
		}
		fixtureHits.WithLabelValues("movie").Inc()
		return movie
	}

	movie, err := s.tmdb.movie(ctx, id)
	if err != nil {
		log.Printf("[movies] %s %v", msgMovieFailed, err)
		return nil
	}
	return movie
}

// MoviesByGenre returns page 1 of the discovery listing for genre, sorted by
// popularity and narrowed to MovieBase.
func (s *Service) MoviesByGenre(ctx context.Context, genre models.Genre) []models.MovieBase {
	if s.fixtureMode {
		movies, err := s.fixtures.Genre(genre)
		if err != nil {
			log.Printf("[movies] %s %v", msgGenreFailed, err)
			return nil
		}
		fixtureHits.WithLabelValues("genre").Inc()
		return movies
	}

	genreID, ok := models.GenreID(genre)
	if !ok {
		log.Printf("[movies] %s unknown genre %q", msgGenreFailed, genre)
		return nil
	}

	movies, err := s.tmdb.discover(ctx, genreID)
	if err != nil {
		log.Printf("[movies] %s %v", msgGenreFailed, err)
		return nil
	}
	return movies
}

// WatchProviders returns the whole upstream response. There is no fixture
// for this endpoint, so it always goes to the network.
func (s *Service) WatchProviders(ctx context.Context, id string) *models.WatchProviderResponse {
	resp, err := s.tmdb.watchProviders(ctx, strings.TrimSpace(id))
	if err != nil {
		log.Printf("[movies] %s %v", msgProvidersFailed, err)
		return nil
	}
	return resp
}

// MovieCredits returns cast and crew narrowed to MovieCreditPerson. There is
// no fixture for this endpoint. On failure it returns nil, not empty lists.
func (s *Service) MovieCredits(ctx context.Context, id string) *models.MovieCredits {
	credits, err := s.tmdb.credits(ctx, strings.TrimSpace(id))
	if err != nil {
		log.Printf("[movies] %s %v", msgCreditsFailed, err)
		return nil
	}
	return credits
}

// GenreRow is one titled poster row on the home page.
type GenreRow struct {
	Genre  models.Genre
	Name   string
	Movies []models.MovieBase
}

// HomeFeed is the data behind the home page.
type HomeFeed struct {
	Popular []models.MovieBanner
	Rows    []GenreRow
}

const homeFeedConcurrency = 4

// HomeFeed fetches the popular list, then every genre row concurrently.
// Rows that fail are kept with nil Movies so their order is stable.
func (s *Service) HomeFeed(ctx context.Context, genres []models.Genre) *HomeFeed {
	feed := &HomeFeed{
		Popular: s.PopularMovies(ctx),
		Rows:    make([]GenreRow, len(genres)),
	}

	p := pool.New().WithMaxGoroutines(homeFeedConcurrency)
	for idx, genre := range genres {
		idx, genre := idx, genre
		p.Go(func() {
			feed.Rows[idx] = GenreRow{
				Genre:  genre,
				Name:   genre.DisplayName(),
				Movies: s.MoviesByGenre(ctx, genre),
			}
		})
	}
	p.Wait()

	return feed
}
