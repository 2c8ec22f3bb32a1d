package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Query carries the compiled query options for a single collection request.
type Query struct {
	Filter  string
	OrderBy string
	Top     int
	Skip    int
	Count   bool
}

// Page is the decoded response envelope returned by the backend for a
// collection request.
type Page struct {
	Count int64             `json:"@odata.count"`
	Value []json.RawMessage `json:"value"`
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the default HTTP client used for backend requests.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) { cl.httpClient = c }
}

// WithToken sets a bearer token attached to every backend request.
func WithToken(token string) ClientOption {
	return func(cl *Client) { cl.token = token }
}

// Client issues collection queries against the upstream query backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	logger     zerolog.Logger
}

// NewClient creates a Client for the given base URL with sensible defaults.
func NewClient(baseURL string, logger zerolog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Ping checks that the backend base URL answers at all. Any HTTP status
// counts as reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build backend request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}

// QueryCollection fetches one page of the named collection using the compiled
// query options.
func (c *Client) QueryCollection(ctx context.Context, collection string, q Query) (*Page, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}
	u = u.JoinPath(collection)

	params := url.Values{}
	if q.Filter != "" {
		params.Set("$filter", q.Filter)
	}
	if q.OrderBy != "" {
		params.Set("$orderby", q.OrderBy)
	}
	if q.Top > 0 {
		params.Set("$top", strconv.Itoa(q.Top))
	}
	if q.Skip > 0 {
		params.Set("$skip", strconv.Itoa(q.Skip))
	}
	if q.Count {
		params.Set("$count", "true")
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("collection", collection).
		Str("filter", q.Filter).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend query")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode backend response: %w", err)
	}
	return &page, nil
}
