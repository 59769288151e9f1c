package tvmaze

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

// Image holds the artwork URLs TVMaze attaches to shows and episodes.
type Image struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// Season describes a single TVMaze season entry. Number is a pointer because
// TVMaze can omit it; the importer treats a missing number as malformed data.
type Season struct {
	ID     int64 `json:"id"`
	Number *int  `json:"number"`
}

// Episode describes a single TVMaze episode entry.
type Episode struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Season  *int   `json:"season"`
	Number  *int   `json:"number"`
	AirDate string `json:"airdate"`
	Image   *Image `json:"image"`
}

// Embeds carries the seasons and episodes requested via embed[] parameters.
type Embeds struct {
	Seasons  []Season  `json:"seasons"`
	Episodes []Episode `json:"episodes"`
}

// Show models the TVMaze show payload with embedded seasons and episodes.
type Show struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Image    *Image `json:"image"`
	Embedded Embeds `json:"_embedded"`
}

// Fetcher defines the TVMaze operations the importer depends on.
type Fetcher interface {
	ShowWithEmbeds(ctx context.Context, showCode string) (*Show, []byte, error)
}

// Client provides access to the TVMaze API. No authentication is required.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Fetcher = (*Client)(nil)

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

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a TVMaze client.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tvmaze base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ShowWithEmbeds fetches a show with its seasons and episodes embedded. It
// returns both the decoded payload and the raw body so callers can cache the
// response verbatim.
func (c *Client) ShowWithEmbeds(ctx context.Context, showCode string) (*Show, []byte, error) {
	showCode = strings.TrimSpace(showCode)
	if showCode == "" {
		return nil, nil, errors.New("show code must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/shows/" + url.PathEscape(showCode))
	if err != nil {
		return nil, nil, fmt.Errorf("parse tvmaze url: %w", err)
	}
	params := url.Values{}
	params.Add("embed[]", "episodes")
	params.Add("embed[]", "seasons")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("tvmaze show %s returned %d (latency=%v)", showCode, resp.StatusCode, latency)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read tvmaze response: %w", err)
	}

	show, err := ParseShow(body)
	if err != nil {
		return nil, nil, err
	}
	return show, body, nil
}

// ParseShow decodes a cached or freshly fetched show payload.
func ParseShow(data []byte) (*Show, error) {
	var show Show
	if err := json.Unmarshal(data, &show); err != nil {
		return nil, fmt.Errorf("decode tvmaze show: %w", err)
	}
	return &show, nil
}
