package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// tokenSlack refreshes the access token slightly before it expires so a
// request never races the expiry.
const tokenSlack = 30 * time.Second

// AlbumArtist is one credited artist on an album.
type AlbumArtist struct {
	Name string `json:"name"`
}

// AlbumImage is one cover image; Spotify orders them largest first.
type AlbumImage struct {
	URL string `json:"url"`
}

// ExternalURLs carries the public web links for an entity.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// Album is a Spotify album record as returned by search and detail endpoints.
type Album struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Artists      []AlbumArtist `json:"artists"`
	ReleaseDate  string        `json:"release_date"`
	Images       []AlbumImage  `json:"images"`
	Genres       []string      `json:"genres"`
	Label        string        `json:"label"`
	ExternalURLs ExternalURLs  `json:"external_urls"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type searchResponse struct {
	Albums struct {
		Items []Album `json:"items"`
	} `json:"albums"`
}

// Client provides access to the Spotify Web API using the client-credentials
// flow. Access tokens are cached until shortly before expiry.
type Client struct {
	clientID     string
	clientSecret string
	tokenURL     string
	baseURL      string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
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

// New creates a Spotify client.
func New(clientID, clientSecret, tokenURL, baseURL string, opts ...Option) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("spotify client credentials required")
	}
	if tokenURL == "" || baseURL == "" {
		return nil, errors.New("spotify endpoints required")
	}
	client := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     tokenURL,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchAlbums searches Spotify for albums matching the query. An empty query
// is a validation error, not an empty search.
func (c *Client) SearchAlbums(ctx context.Context, query string) ([]Album, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("search query cannot be empty")
	}

	endpoint, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("parse spotify url: %w", err)
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "album")
	endpoint.RawQuery = params.Encode()

	var payload searchResponse
	if err := c.get(ctx, endpoint.String(), &payload); err != nil {
		return nil, err
	}
	return payload.Albums.Items, nil
}

// Album fetches the full album record for an identifier.
func (c *Client) Album(ctx context.Context, id string) (*Album, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("album id required")
	}
	var payload Album
	if err := c.get(ctx, c.baseURL+"/albums/"+url.PathEscape(id), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode spotify response: %w", err)
	}
	return nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	body := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, body)
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("spotify token endpoint returned %d", resp.StatusCode)
	}

	var payload tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", errors.New("spotify token response missing access_token")
	}

	c.accessToken = payload.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(payload.ExpiresIn)*time.Second - tokenSlack)
	return c.accessToken, nil
}
