// Package catalog is the read-only bridge to the public YTS movie API. The
// application owns no part of that contract: responses are decoded and
// passed through, failures surface to the caller, nothing is cached.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrUpstream wraps every catalog failure so handlers can answer with a
// single bad-gateway kind.
var ErrUpstream = errors.New("movie catalog unavailable")

type Movie struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Year            int      `json:"year"`
	Rating          float64  `json:"rating"`
	Runtime         int      `json:"runtime"`
	Genres          []string `json:"genres"`
	Summary         string   `json:"summary"`
	DescriptionFull string   `json:"description_full"`
	Language        string   `json:"language"`
	MediumCover     string   `json:"medium_cover_image"`
	LargeCover      string   `json:"large_cover_image"`
	URL             string   `json:"url"`
}

type MovieList struct {
	MovieCount int     `json:"movie_count"`
	Limit      int     `json:"limit"`
	PageNumber int     `json:"page_number"`
	Movies     []Movie `json:"movies"`
}

type listResponse struct {
	Status        string    `json:"status"`
	StatusMessage string    `json:"status_message"`
	Data          MovieList `json:"data"`
}

type detailsResponse struct {
	Status        string `json:"status"`
	StatusMessage string `json:"status_message"`
	Data          struct {
		Movie Movie `json:"movie"`
	} `json:"data"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListMovies fetches one page of the catalog.
func (c *Client) ListMovies(ctx context.Context, page, limit int) (*MovieList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var decoded listResponse
	if err := c.get(ctx, "/list_movies.json", query, &decoded); err != nil {
		return nil, err
	}
	if decoded.Status != "ok" {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, decoded.StatusMessage)
	}

	return &decoded.Data, nil
}

// MovieDetails fetches a single movie by its catalog id.
func (c *Client) MovieDetails(ctx context.Context, movieID int) (*Movie, error) {
	query := url.Values{}
	query.Set("movie_id", strconv.Itoa(movieID))

	var decoded detailsResponse
	if err := c.get(ctx, "/movie_details.json", query, &decoded); err != nil {
		return nil, err
	}
	if decoded.Status != "ok" {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, decoded.StatusMessage)
	}
	// YTS answers "ok" with a zero movie for unknown ids.
	if decoded.Data.Movie.ID == 0 {
		return nil, fmt.Errorf("%w: movie %d not found", ErrUpstream, movieID)
	}

	return &decoded.Data.Movie, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}
