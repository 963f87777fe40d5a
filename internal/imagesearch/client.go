package imagesearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

const (
	defaultBaseURL     = "https://duckduckgo.com"
	defaultHTTPTimeout = 15 * time.Second

	// maxImageBytes caps a single download; anything larger is not a
	// recipe photo worth embedding.
	maxImageBytes = 20 << 20
)

// ErrNoResults indicates the search returned no images for the query.
var ErrNoResults = errors.New("no image results")

// vqdPattern extracts the request token embedded in the search landing page.
var vqdPattern = regexp.MustCompile(`vqd=["']?([\d-]+)["']?`)

// Config captures the runtime settings for the search client.
type Config struct {
	BaseURL        string
	UserAgent      string
	TimeoutSeconds int
}

// Client queries the DuckDuckGo image search API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a search client. An empty user agent selects a random
// browser user agent for the lifetime of the client.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = randomUserAgent()
	}
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Result is a single image search hit.
type Result struct {
	Title  string `json:"title"`
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// SearchImage returns the first large photo result for query.
func (c *Client) SearchImage(ctx context.Context, query string) (*Result, error) {
	token, err := c.requestToken(ctx, query)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("l", "us-en")
	params.Set("o", "json")
	params.Set("q", query)
	params.Set("vqd", token)
	params.Set("f", ",,,,,type:photo,size:Large")
	params.Set("p", "1")

	body, err := c.get(ctx, c.cfg.BaseURL+"/i.js?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("search images for %q: %w", query, err)
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode image results for %q: %w", query, err)
	}
	if len(decoded.Results) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoResults, query)
	}
	return &decoded.Results[0], nil
}

// Download fetches the image bytes at imageURL.
func (c *Client) Download(ctx context.Context, imageURL string) ([]byte, error) {
	body, err := c.get(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	return body, nil
}

// requestToken fetches the landing page and extracts the vqd token the image
// endpoint requires.
func (c *Client) requestToken(ctx context.Context, query string) (string, error) {
	body, err := c.get(ctx, c.cfg.BaseURL+"/?"+url.Values{"q": {query}}.Encode())
	if err != nil {
		return "", fmt.Errorf("request search token: %w", err)
	}
	m := vqdPattern.FindSubmatch(body)
	if m == nil {
		return "", fmt.Errorf("request search token: no vqd token in response")
	}
	return string(m[1]), nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Referer", c.cfg.BaseURL+"/")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, err
	}
	return body, nil
}
