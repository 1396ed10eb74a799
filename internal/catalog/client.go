package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"moviefinder/internal/domain"
)

const (
	// DefaultBaseURL is the TMDB v3 API root.
	DefaultBaseURL = "https://api.themoviedb.org/3"
	// DefaultLanguage is the language hint sent with every request.
	DefaultLanguage = "en-US"
	// DefaultTimeout bounds every upstream call.
	DefaultTimeout = 10 * time.Second
)

// Config holds what the client needs to talk to TMDB.
type Config struct {
	BaseURL  string
	APIKey   string
	Language string
	Timeout  time.Duration
}

// Client fetches movie records from TMDB and shapes them into
// domain.MovieRef. Responses are cached in Redis when a cache is attached.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
	cache      *Cache
}

// SearchParams narrows a catalog search. Query drives text search; with no
// Query the client falls back to discovery filtered by year and genre.
type SearchParams struct {
	Query   string
	Year    string
	GenreID int64
}

// listResponse is the TMDB paged envelope.
type listResponse struct {
	Page    int               `json:"page"`
	Results []domain.MovieRef `json:"results"`
}

type genreListResponse struct {
	Genres []domain.Genre `json:"genres"`
}

// NewClient creates a TMDB client. cache may be nil to disable caching.
func NewClient(cfg Config, cache *Cache) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		language:   cfg.Language,
		cache:      cache,
	}
}

// Search runs a text search, or a discovery query when params.Query is empty.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]domain.MovieRef, error) {
	values := c.baseValues()
	values.Set("include_adult", "false")
	values.Set("page", "1")

	path := "/discover/movie"
	if params.Query != "" {
		path = "/search/movie"
		values.Set("query", params.Query)
	}
	if params.Year != "" {
		values.Set("primary_release_year", params.Year)
	}
	if params.GenreID > 0 {
		values.Set("with_genres", strconv.FormatInt(params.GenreID, 10))
	}

	cacheKey := "search:" + path + "?" + values.Encode()
	var cached listResponse
	if c.cache.get(ctx, cacheKey, &cached) {
		return cached.Results, nil
	}

	var resp listResponse
	if err := c.getJSON(ctx, path, values, &resp); err != nil {
		return nil, err
	}
	c.cache.set(ctx, cacheKey, resp, SearchTTL)
	return resp.Results, nil
}

// Trending returns today's trending movies.
func (c *Client) Trending(ctx context.Context) ([]domain.MovieRef, error) {
	var cached listResponse
	if c.cache.get(ctx, "trending", &cached) {
		return cached.Results, nil
	}

	var resp listResponse
	if err := c.getJSON(ctx, "/trending/movie/day", c.baseValues(), &resp); err != nil {
		return nil, err
	}
	c.cache.set(ctx, "trending", resp, TrendingTTL)
	return resp.Results, nil
}

// MovieByID fetches the full record for one movie. Returns
// domain.ErrNotFound when TMDB does not know the id.
func (c *Client) MovieByID(ctx context.Context, id int64) (*domain.MovieRef, error) {
	cacheKey := "movie:" + strconv.FormatInt(id, 10)
	var cached domain.MovieRef
	if c.cache.get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	var movie domain.MovieRef
	path := "/movie/" + strconv.FormatInt(id, 10)
	if err := c.getJSON(ctx, path, c.baseValues(), &movie); err != nil {
		return nil, err
	}
	c.cache.set(ctx, cacheKey, movie, DetailsTTL)
	return &movie, nil
}

// Genres returns the catalog's movie genre list.
func (c *Client) Genres(ctx context.Context) ([]domain.Genre, error) {
	var cached genreListResponse
	if c.cache.get(ctx, "genres", &cached) {
		return cached.Genres, nil
	}

	var resp genreListResponse
	if err := c.getJSON(ctx, "/genre/movie/list", c.baseValues(), &resp); err != nil {
		return nil, err
	}
	c.cache.set(ctx, "genres", resp, GenresTTL)
	return resp.Genres, nil
}

func (c *Client) baseValues() url.Values {
	values := url.Values{}
	values.Set("api_key", c.apiKey)
	values.Set("language", c.language)
	return values
}

// getJSON performs a GET against the catalog and decodes the response body.
func (c *Client) getJSON(ctx context.Context, path string, values url.Values, dest any) error {
	reqURL := c.baseURL + path + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("decode catalog response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("catalog returned %s: %s", resp.Status, string(body))
	}
}
