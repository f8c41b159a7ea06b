package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/logger"
)

// DefaultTimeout is the HTTP request timeout when none is configured.
const DefaultTimeout = 30 * time.Second

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Client runs GROQ queries against one project and dataset.
type Client struct {
	http        *http.Client
	baseURL     string
	dataset     string
	apiVersion  string
	rateLimiter *RateLimiter
}

// NewClient creates a query client. A token, when set, is sent as a bearer
// token through an oauth2 transport; without one only public documents of
// the dataset are visible.
func NewClient(ctx context.Context, cfg domain.SanitySettings, timeout time.Duration) (*Client, error) {
	if !cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{}
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	}
	httpClient.Timeout = timeout

	return NewClientWithHTTPClient(httpClient, BaseURL(cfg), cfg.Dataset, cfg.APIVersion), nil
}

// NewClientWithHTTPClient creates a client against an explicit base URL.
// Used by tests with httptest servers.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, dataset, apiVersion string) *Client {
	return &Client{
		http:        httpClient,
		baseURL:     baseURL,
		dataset:     dataset,
		apiVersion:  strings.TrimPrefix(apiVersion, "v"),
		rateLimiter: NewRateLimiter(),
	}
}

// BaseURL returns the API host for the settings. Authenticated requests
// bypass the CDN so drafts and fresh edits are visible.
func BaseURL(cfg domain.SanitySettings) string {
	host := "api"
	if cfg.UseCDN && cfg.Token == "" {
		host = "apicdn"
	}
	return fmt.Sprintf("https://%s.%s.sanity.io", cfg.ProjectID, host)
}

// queryResponse is the envelope returned by the query endpoint.
type queryResponse struct {
	Result json.RawMessage `json:"result"`
	MS     int             `json:"ms"`
}

type errorResponse struct {
	Error struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	} `json:"error"`
	Message string `json:"message"`
}

// Query runs a GROQ query and decodes its result into out. Params are
// JSON-encoded and passed as $name query parameters.
func (c *Client) Query(ctx context.Context, groq string, params map[string]any, out any) error {
	endpoint, err := c.queryURL(groq, params)
	if err != nil {
		return err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sanity query: %w: %w", domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{RetryAt: c.rateLimiter.Backoff(resp)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	var envelope queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	logger.Debug("sanity query took %dms", envelope.MS)

	if out == nil || len(envelope.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

func (c *Client) queryURL(groq string, params map[string]any) (string, error) {
	q := url.Values{}
	q.Set("query", groq)

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		encoded, err := json.Marshal(params[name])
		if err != nil {
			return "", fmt.Errorf("encode param %s: %w", name, err)
		}
		q.Set("$"+name, string(encoded))
	}

	return fmt.Sprintf("%s/v%s/data/query/%s?%s",
		c.baseURL, c.apiVersion, url.PathEscape(c.dataset), q.Encode()), nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var er errorResponse
	if json.Unmarshal(body, &er) == nil {
		switch {
		case er.Error.Description != "":
			apiErr.Type = er.Error.Type
			apiErr.Message = er.Error.Description
		case er.Message != "":
			apiErr.Message = er.Message
		}
	}
	return apiErr
}

// RateLimiter returns the client's rate limiter.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}
