package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const (
	tmdbBaseURL      = "https://api.themoviedb.org/3"
	tmdbImageBaseURL = "https://image.tmdb.org/t/p/w500"
)

// ErrUpstream covers everything that can go wrong talking to TMDB:
// transport failures, non-2xx responses and unparseable bodies.
var ErrUpstream = errors.New("catalog service error")

// CatalogResult is one movie as TMDB describes it.
type CatalogResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
	Overview    string `json:"overview"`
}

type tmdbSearchResponse struct {
	Results []CatalogResult `json:"results"`
}

// TMDBClient wraps the two read-only TMDB endpoints this app needs.
// No caching, no retries; a failed call surfaces to the handler.
type TMDBClient struct {
	apiKey string
	client *http.Client
}

func NewTMDBClient(apiKey string, client *http.Client) *TMDBClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &TMDBClient{apiKey: apiKey, client: client}
}

// Search queries TMDB's movie search and returns the first page of results.
func (c *TMDBClient) Search(ctx context.Context, query string) ([]CatalogResult, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query)
	searchURL := fmt.Sprintf("%s/search/movie?%s", tmdbBaseURL, params.Encode())

	var parsed tmdbSearchResponse
	if err := c.getJSON(ctx, searchURL, &parsed); err != nil {
		return nil, err
	}
	return parsed.Results, nil
}

// Get fetches full details for a single movie by its TMDB id.
func (c *TMDBClient) Get(ctx context.Context, id int) (*CatalogResult, error) {
	detailURL := fmt.Sprintf("%s/movie/%d?api_key=%s", tmdbBaseURL, id, url.QueryEscape(c.apiKey))

	var result CatalogResult
	if err := c.getJSON(ctx, detailURL, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *TMDBClient) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	return nil
}

// ImageURL builds a full poster URL from a TMDB poster path.
func ImageURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return tmdbImageBaseURL + posterPath
}
