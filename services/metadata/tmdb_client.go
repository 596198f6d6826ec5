package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"cinescope/models"
)

const (
	tmdbBaseURL      = "https://api.themoviedb.org/3"
	tmdbImageBaseURL = "https://image.tmdb.org/t/p"

	PosterSize   = "w500"
	BackdropSize = "w1280"
	ProfileSize  = "w185"

	// discoverIncludeVideo is sent verbatim as the include_video flag.
	discoverIncludeVideo = "ture"

	maxResponseBytes = 8 << 20
)

var errEmptyID = errors.New("movie id required")

type tmdbClient struct {
	baseURL  string
	apiKey   string
	language string
	httpc    *http.Client
	debug    bool
}

func newTMDBClient(baseURL, apiKey, language string, httpc *http.Client) *tmdbClient {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = tmdbBaseURL
	}
	language = strings.TrimSpace(language)
	if language == "" {
		language = "en-US"
	}
	return &tmdbClient{
		baseURL:  baseURL,
		apiKey:   strings.TrimSpace(apiKey),
		language: language,
		httpc:    httpc,
	}
}

// tmdbResponse is a fully read upstream response.
type tmdbResponse struct {
	status int
	header http.Header
	body   []byte
}

// get performs a single GET against baseURL+endpoint with api_key appended.
// Transport failures, non-2xx statuses and bodies rejected by decode are
// returned as errors; there is no retry.
func (c *tmdbClient) get(ctx context.Context, label, endpoint string, query url.Values, decode func([]byte) error) (*tmdbResponse, error) {
	start := time.Now()
	resp, err := c.do(ctx, endpoint, query)
	if err == nil && decode != nil {
		if derr := decode(resp.body); derr != nil {
			resp, err = nil, &requestError{kind: outcomeDecode, err: fmt.Errorf("tmdb %s: %w", endpoint, derr)}
		}
	}
	observeTMDBRequest(label, start, err)
	if c.debug {
		log.Printf("[tmdb] GET %s took %s err=%v", endpoint, time.Since(start).Round(time.Millisecond), err)
	}
	return resp, err
}

func (c *tmdbClient) do(ctx context.Context, endpoint string, query url.Values) (*tmdbResponse, error) {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, &requestError{kind: outcomeTransport, err: err}
	}

	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &requestError{kind: outcomeTransport, err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Printf("[tmdb] http error on %s: %v", endpoint, err)
		return nil, &requestError{kind: outcomeTransport, err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &requestError{kind: outcomeTransport, err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[tmdb] %s returned status %d", endpoint, resp.StatusCode)
		return nil, &requestError{
			kind: outcomeStatus,
			err:  fmt.Errorf("tmdb %s failed: %s", endpoint, resp.Status),
		}
	}

	return &tmdbResponse{status: resp.StatusCode, header: resp.Header.Clone(), body: body}, nil
}

// getJSON is get with the body decoded into v.
func (c *tmdbClient) getJSON(ctx context.Context, label, endpoint string, query url.Values, v any) error {
	_, err := c.get(ctx, label, endpoint, query, func(body []byte) error {
		return json.Unmarshal(body, v)
	})
	return err
}

// validJSON accepts any well-formed JSON body.
func validJSON(body []byte) error {
	if !json.Valid(body) {
		return errors.New("response is not valid JSON")
	}
	return nil
}

type tmdbListResponse[T any] struct {
	Page    int `json:"page"`
	Results []T `json:"results"`
}

// decodeResults rejects list payloads without a results array.
func decodeResults[T any](body []byte, dst *tmdbListResponse[T]) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return err
	}
	if dst.Results == nil {
		return errors.New("response has no results")
	}
	return nil
}

type tmdbPopularResult struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Overview     string `json:"overview"`
	BackdropPath string `json:"backdrop_path"`
}

type tmdbDiscoverResult struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	ReleaseDate  string `json:"release_date"`
	BackdropPath string `json:"backdrop_path"`
}

type tmdbCreditPerson struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	ProfilePath        string `json:"profile_path"`
	KnownForDepartment string `json:"known_for_department"`
}

type tmdbCreditsResponse struct {
	ID   int64              `json:"id"`
	Cast []tmdbCreditPerson `json:"cast"`
	Crew []tmdbCreditPerson `json:"crew"`
}

func (c *tmdbClient) popular(ctx context.Context) ([]models.MovieBanner, error) {
	q := url.Values{}
	q.Set("language", c.language)
	q.Set("page", "1")

	var payload tmdbListResponse[tmdbPopularResult]
	_, err := c.get(ctx, "popular", "/movie/popular", q, func(body []byte) error {
		return decodeResults(body, &payload)
	})
	if err != nil {
		return nil, err
	}

	movies := make([]models.MovieBanner, len(payload.Results))
	for idx, r := range payload.Results {
		movies[idx] = models.MovieBanner{
			ID:           r.ID,
			Title:        r.Title,
			Overview:     r.Overview,
			BackdropPath: r.BackdropPath,
		}
	}
	return movies, nil
}

// movie returns the /movie/{id} body as received.
func (c *tmdbClient) movie(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, errEmptyID
	}
	q := url.Values{}
	q.Set("language", c.language)

	resp, err := c.get(ctx, "movie", "/movie/"+url.PathEscape(id), q, validJSON)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(resp.body), nil
}

func (c *tmdbClient) discover(ctx context.Context, genreID int) ([]models.MovieBase, error) {
	q := url.Values{}
	q.Set("language", c.language)
	q.Set("sort_by", "popularity.desc")
	q.Set("include_video", discoverIncludeVideo)
	q.Set("page", "1")
	q.Set("with_genres", fmt.Sprintf("%d", genreID))

	var payload tmdbListResponse[tmdbDiscoverResult]
	_, err := c.get(ctx, "discover", "/discover/movie", q, func(body []byte) error {
		return decodeResults(body, &payload)
	})
	if err != nil {
		return nil, err
	}

	movies := make([]models.MovieBase, len(payload.Results))
	for idx, r := range payload.Results {
		movies[idx] = models.MovieBase{
			ID:           r.ID,
			Title:        r.Title,
			ReleaseDate:  r.ReleaseDate,
			BackdropPath: r.BackdropPath,
		}
	}
	return movies, nil
}

func (c *tmdbClient) watchProviders(ctx context.Context, id string) (*models.WatchProviderResponse, error) {
	if id == "" {
		return nil, errEmptyID
	}
	resp, err := c.get(ctx, "watch_providers", "/movie/"+url.PathEscape(id)+"/watch/providers", nil, validJSON)
	if err != nil {
		return nil, err
	}
	return &models.WatchProviderResponse{
		Status: resp.status,
		Header: resp.header,
		Body:   json.RawMessage(resp.body),
	}, nil
}

func (c *tmdbClient) credits(ctx context.Context, id string) (*models.MovieCredits, error) {
	if id == "" {
		return nil, errEmptyID
	}
	var payload tmdbCreditsResponse
	if err := c.getJSON(ctx, "credits", "/movie/"+url.PathEscape(id)+"/credits", nil, &payload); err != nil {
		return nil, err
	}
	return &models.MovieCredits{
		Cast: narrowCredits(payload.Cast),
		Crew: narrowCredits(payload.Crew),
	}, nil
}

// narrowCredits keeps a nil upstream array nil.
func narrowCredits(people []tmdbCreditPerson) []models.MovieCreditPerson {
	if people == nil {
		return nil
	}
	out := make([]models.MovieCreditPerson, len(people))
	for idx, p := range people {
		out[idx] = models.MovieCreditPerson{
			ID:                 p.ID,
			Name:               p.Name,
			ProfilePath:        p.ProfilePath,
			KnownForDepartment: p.KnownForDepartment,
		}
	}
	return out
}

// ImageURL builds a TMDB image URL for an image reference such as
// "/abc.jpg". Empty references yield "".
func ImageURL(imagePath, size string) string {
	trimmed := strings.TrimSpace(imagePath)
	if trimmed == "" {
		return ""
	}
	if size == "" {
		size = "original"
	}
	return fmt.Sprintf("%s/%s", tmdbImageBaseURL, path.Join(size, strings.TrimPrefix(trimmed, "/")))
}
