package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"quizogram-client/internal/auth"
)

const defaultTimeout = 15 * time.Second

// Client issues authenticated requests against the Quizogram service and
// normalizes failures into a small error taxonomy (see errors.go). It never
// retries; every call site decides on recovery locally.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  auth.Store
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithTimeout sets the per-request timeout on the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

func New(baseURL string, tokens auth.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL reports the resolved service root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// call performs one request. 2xx with a JSON body yields the raw body, 2xx
// with an empty or non-JSON body yields nil. A 401 clears the stored
// credential as a side effect and returns ErrUnauthenticated.
func (c *Client) call(ctx context.Context, method, path string, body io.Reader, contentType string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if res.StatusCode == http.StatusUnauthorized {
		if err := c.tokens.Clear(); err != nil {
			log.Printf("clear credential after 401: %v", err)
		}
		return nil, ErrUnauthenticated
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{Status: res.StatusCode, Message: rejectionMessage(data)}
	}

	if len(data) == 0 || !strings.Contains(res.Header.Get("Content-Type"), "application/json") {
		return nil, nil
	}
	return json.RawMessage(data), nil
}

// do marshals in (when non-nil) as JSON and decodes the response into out
// (when non-nil). An empty body where out is expected is a decode failure.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	raw, err := c.call(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if raw == nil {
		return fmt.Errorf("%w: empty body", ErrDecode)
	}
	return unmarshal(raw, out)
}

// rejectionMessage extracts the service's human-readable failure reason.
// The service wraps it as {"detail": "..."}; anything else (plain text,
// structured validation errors) passes through trimmed.
func rejectionMessage(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(body))
}

func unmarshal(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
