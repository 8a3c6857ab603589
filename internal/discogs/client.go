package discogs

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

const userAgent = "waxcrate/0.1"

// SearchResult is a single candidate release from a database search. Search
// payloads are thinner than release details; the import flow follows up with
// Release for the selected candidate.
type SearchResult struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Year       string   `json:"year"`
	Country    string   `json:"country"`
	Format     []string `json:"format"`
	Label      []string `json:"label"`
	Thumb      string   `json:"thumb"`
	CoverImage string   `json:"cover_image"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// Artist is one credited artist on a release.
type Artist struct {
	Name string `json:"name"`
}

// Image is one release image; type "primary" is the canonical cover.
type Image struct {
	URI  string `json:"uri"`
	Type string `json:"type"`
}

// ReleaseLabel is one label credit on a release.
type ReleaseLabel struct {
	Name string `json:"name"`
}

// ReleaseTrack is one tracklist entry on a release.
type ReleaseTrack struct {
	Position string `json:"position"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// Release is the full release record used to populate an album on import.
type Release struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Artists   []Artist       `json:"artists"`
	Year      int            `json:"year"`
	Released  string         `json:"released"`
	Images    []Image        `json:"images"`
	Genres    []string       `json:"genres"`
	Styles    []string       `json:"styles"`
	Labels    []ReleaseLabel `json:"labels"`
	Tracklist []ReleaseTrack `json:"tracklist"`
	Notes     string         `json:"notes"`
}

// Client provides access to the Discogs database API.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a Discogs client.
func New(token, baseURL string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("discogs token required")
	}
	if baseURL == "" {
		return nil, errors.New("discogs base url required")
	}
	client := &Client{
		token:      token,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Search runs a free-text release search.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("q", query)
	return c.search(ctx, params)
}

// SearchByArtistTitle searches for releases matching an artist and title.
func (c *Client) SearchByArtistTitle(ctx context.Context, artist, title string) ([]SearchResult, error) {
	if artist == "" && title == "" {
		return nil, errors.New("artist or title required")
	}
	params := url.Values{}
	if artist != "" {
		params.Set("artist", artist)
	}
	if title != "" {
		params.Set("release_title", title)
	}
	return c.search(ctx, params)
}

// SearchByBarcode looks up releases by barcode. Zero results is a normal
// outcome, returned as an empty slice, and distinct from a lookup failure.
func (c *Client) SearchByBarcode(ctx context.Context, barcode string) ([]SearchResult, error) {
	if barcode == "" {
		return nil, errors.New("barcode must not be empty")
	}
	params := url.Values{}
	params.Set("barcode", barcode)
	return c.search(ctx, params)
}

func (c *Client) search(ctx context.Context, params url.Values) ([]SearchResult, error) {
	endpoint, err := url.Parse(c.baseURL + "/database/search")
	if err != nil {
		return nil, fmt.Errorf("parse discogs url: %w", err)
	}
	params.Set("type", "release")
	endpoint.RawQuery = params.Encode()

	var payload searchResponse
	if err := c.get(ctx, endpoint.String(), &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Release fetches the full release record for an identifier.
func (c *Client) Release(ctx context.Context, id int64) (*Release, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid release id %d", id)
	}
	var payload Release
	if err := c.get(ctx, c.baseURL+"/releases/"+strconv.FormatInt(id, 10), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Discogs token="+c.token)
	req.Header.Set("User-Agent", userAgent)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("discogs returned %d (latency=%v)", resp.StatusCode, latency)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode discogs response: %w", err)
	}
	return nil
}
