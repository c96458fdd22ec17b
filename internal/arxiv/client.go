package arxiv

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/corpuscan/corpuscan/internal/config"
)

// Client queries the ArXiv Atom API with throttling-aware retries.
type Client struct {
	// cfg provides the endpoint, retry budget and backoff delay.
	cfg *config.Config

	// logger for structured logging.
	logger *slog.Logger

	// client is the HTTP client used for all requests.
	client *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithClientLogger sets a custom logger for the client.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client, used by tests to point the
// client at an httptest server.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a Client with the given configuration.
func NewClient(cfg *config.Config, opts ...ClientOption) *Client {
	c := &Client{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: 15 * time.Second}
	}
	return c
}

// Search fetches up to maxResults entries matching query and returns the
// raw Atom response. HTTP 429 and transport errors are retried with the
// configured backoff until the retry budget is spent; other HTTP errors
// fail immediately.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]byte, error) {
	endpoint := c.cfg.ArxivBaseURL + "?" + url.Values{
		"search_query": {query},
		"start":        {"0"},
		"max_results":  {strconv.Itoa(maxResults)},
	}.Encode()

	var lastErr error
	for attempt := 1; attempt <= c.cfg.ArxivRetries+1; attempt++ {
		data, retryable, err := c.request(ctx, endpoint)
		if err == nil {
			c.logger.Info("fetched results from ArXiv API",
				"query", query,
				"maxResults", maxResults,
			)
			return data, nil
		}
		lastErr = err
		if !retryable || attempt > c.cfg.ArxivRetries {
			break
		}

		c.logger.Warn("request failed, backing off",
			"error", err,
			"backoff", c.cfg.ArxivBackoff,
			"attempt", attempt,
			"retries", c.cfg.ArxivRetries,
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.ArxivBackoff):
		}
	}
	return nil, fmt.Errorf("arxiv query failed: %w", lastErr)
}

// request performs one attempt. The bool reports whether the failure is
// worth retrying.
func (c *Client) request(ctx context.Context, endpoint string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		// Transport errors are transient more often than not.
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, true, fmt.Errorf("HTTP 429 received")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response: %w", err)
	}
	return data, false, nil
}
