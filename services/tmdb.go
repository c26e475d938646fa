package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrEmptyQuery    = errors.New("search query is empty")
	ErrMovieNotFound = errors.New("movie not found")
)

// TMDBService calls the TMDB REST API. Responses are opaque JSON relayed
// to the caller as-is. Every call is a single attempt, no retries.
type TMDBService struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

func NewTMDBService(apiKey, baseURL string) *TMDBService {
	if baseURL == "" {
		baseURL = "https://api.themoviedb.org/3"
	}
	return &TMDBService{
		APIKey:  apiKey,
		BaseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Popular fetches the upstream popular-movies page.
func (s *TMDBService) Popular(ctx context.Context) (json.RawMessage, error) {
	return s.get(ctx, "/movie/popular", nil)
}

// Search queries movies by title. An empty or whitespace-only query is
// rejected before any network call.
func (s *TMDBService) Search(ctx context.Context, query string) (json.RawMessage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	params := url.Values{}
	params.Set("query", query)
	return s.get(ctx, "/search/movie", params)
}

// MovieByID fetches details for a single movie. Any upstream failure is
// reported as ErrMovieNotFound; the upstream detail stays in the wrapped
// error for logging only.
func (s *TMDBService) MovieByID(ctx context.Context, id string) (json.RawMessage, error) {
	body, err := s.get(ctx, "/movie/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMovieNotFound, err)
	}
	return body, nil
}

func (s *TMDBService) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", s.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
