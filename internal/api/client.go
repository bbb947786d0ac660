// Package api is the single choke-point for calls to the remote
// invoicing service. It injects the bearer token when one is stored,
// normalizes every failure into one error shape, and exposes a typed
// function per resource operation. Requests are fire-once: no retries,
// no deduplication.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/invoicing/invoicectl/internal/tokenstore"
)

const userAgent = "invoicectl/1.0"

// TokenSource yields the current bearer token. It returns
// tokenstore.ErrNoToken when no token is stored, in which case the
// request is sent unauthenticated and the server decides whether that
// is an error.
type TokenSource interface {
	Get() (string, error)
}

// Config configures the API client.
type Config struct {
	// BaseURL is the base path of the API (e.g. "http://localhost:8000/api").
	BaseURL string

	// Timeout is the overall per-request timeout. Zero leaves the
	// transport default in place.
	Timeout time.Duration

	// Tokens supplies the bearer token. Optional.
	Tokens TokenSource

	// Logger is used for request-level debug logging. Optional.
	Logger *zap.Logger
}

// Client is the HTTP client for the invoicing API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	logger     *zap.Logger
}

// NewClient creates a client for the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: invalid base URL %q", cfg.BaseURL)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		tokens:     cfg.Tokens,
		logger:     logger,
	}, nil
}

// do executes a single request and decodes the JSON response into out
// (when out is non-nil). Every failure is reported as an *Error, except
// context cancellation, which is passed through so callers can tell an
// abandoned screen apart from a failed call.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("api: creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Attach the bearer token iff one is stored. An empty store is not
	// an error here; the request simply goes out unauthenticated.
	if c.tokens != nil {
		token, err := c.tokens.Get()
		switch {
		case err == nil:
			req.Header.Set("Authorization", "Bearer "+token)
		case errors.Is(err, tokenstore.ErrNoToken):
		default:
			return fmt.Errorf("api: reading token: %w", err)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Debug("transport failure",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return newTransportError()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Debug("reading response body failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return newTransportError()
	}

	c.logger.Debug("request complete",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			c.logger.Debug("decoding response failed",
				zap.String("method", method),
				zap.String("path", path),
				zap.Error(err))
			return newTransportError()
		}
	}
	return nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// put performs a PUT request.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// delete performs a DELETE request.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// listEnvelope is the wrapper the server places around list responses.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}
