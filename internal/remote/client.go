// Package remote is the authenticated JSON client for the salon backend.
// Every entity store and the availability fetcher go through it; nothing
// else in the gateway talks HTTP to the backend directly.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maisonbelle/salon-admin/internal/observability/metrics"
	"github.com/maisonbelle/salon-admin/internal/session"
	"github.com/maisonbelle/salon-admin/pkg/logging"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
	metrics    *metrics.GatewayMetrics
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.GatewayMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logging.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Get(ctx context.Context, sess *session.Session, path string, out any) error {
	return c.do(ctx, sess, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, sess *session.Session, path string, body, out any) error {
	return c.do(ctx, sess, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, sess *session.Session, path string, body, out any) error {
	return c.do(ctx, sess, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, sess *session.Session, path string, out any) error {
	return c.do(ctx, sess, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, sess *session.Session, method, path string, body, out any) error {
	if !sess.Valid(time.Now()) {
		return session.ErrNotAuthenticated
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("remote: marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else if method == http.MethodPost || method == http.MethodPut {
		// The backend rejects bodyless POST/PUT on the status routes.
		reader = strings.NewReader("{}")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("remote: create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+sess.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, "transport_error", started)
		c.logger.Warn("backend request failed", "method", method, "path", path, "error", err.Error())
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.observe(method, "api_error", started)
		return c.apiError(resp)
	}

	c.observe(method, "ok", started)

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if !isJSON(resp) {
		return ErrNotJSON
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrNotJSON, err)
	}

	return nil
}

// apiError extracts a user-facing message from the error body.
func (c *Client) apiError(resp *http.Response) error {
	message := resp.Status
	if text := http.StatusText(resp.StatusCode); text != "" {
		message = text
	}

	if isJSON(resp) {
		var body struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if err := json.Unmarshal(raw, &body); err == nil {
			if body.Message != "" {
				message = body.Message
			} else if body.Error != "" {
				message = body.Error
			}
		}
	}

	return &APIError{Status: resp.StatusCode, Message: message}
}

func (c *Client) observe(method, outcome string, started time.Time) {
	c.metrics.ObserveRemote(method, outcome, time.Since(started).Seconds())
}

func isJSON(resp *http.Response) bool {
	return strings.Contains(resp.Header.Get("Content-Type"), "application/json")
}
