// Package httpbackend implements the controller backend over HTTP JSON
// endpoints, for applications whose confirmation service lives behind a
// REST API.
package httpbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrEmptyBaseURL signals that the client was constructed without a target.
var ErrEmptyBaseURL = errors.New("httpbackend: base URL is empty")

const defaultTimeout = 10 * time.Second

// Option customises the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithConfirmPath overrides the confirmation endpoint path.
func WithConfirmPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.confirmPath = path
		}
	}
}

// WithResendPath overrides the resend endpoint path.
func WithResendPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.resendPath = path
		}
	}
}

// WithHeader adds a header to every request, e.g. an API key.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// Client talks to a confirmation service over HTTP. It satisfies the
// controller Backend interface.
type Client struct {
	baseURL     string
	confirmPath string
	resendPath  string
	headers     map[string]string
	http        *http.Client
}

// New constructs a client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, ErrEmptyBaseURL
	}

	client := &Client{
		baseURL:     trimmed,
		confirmPath: "/auth/confirm",
		resendPath:  "/auth/resend",
		headers:     make(map[string]string),
		http:        &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

type confirmRequest struct {
	Identifier string `json:"identifier"`
	Code       string `json:"code"`
}

type confirmResponse struct {
	Confirmed bool `json:"confirmed"`
}

type resendRequest struct {
	Identifier string `json:"identifier"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ConfirmCode submits the verification code. A 2xx response with a falsy
// confirmed flag is reported as unconfirmed without an error.
func (c *Client) ConfirmCode(ctx context.Context, identifier, code string) (bool, error) {
	body, err := c.post(ctx, c.confirmPath, confirmRequest{Identifier: identifier, Code: code})
	if err != nil {
		return false, err
	}

	var resp confirmResponse
	if len(body) == 0 {
		// An empty 2xx body means the service confirmed without detail.
		return true, nil
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, fmt.Errorf("httpbackend: decode confirm response: %w", err)
	}
	return resp.Confirmed, nil
}

// ResendCode asks the service to send a fresh verification code.
func (c *Client) ResendCode(ctx context.Context, identifier string) error {
	_, err := c.post(ctx, c.resendPath, resendRequest{Identifier: identifier})
	return err
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("httpbackend: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("httpbackend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpbackend: %s: %w", path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("httpbackend: read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, serviceError(path, res.StatusCode, body)
	}
	return body, nil
}

func serviceError(path string, status int, body []byte) error {
	var resp errorResponse
	if json.Unmarshal(body, &resp) == nil && resp.Error != "" {
		return fmt.Errorf("httpbackend: %s: %s (status %d)", path, resp.Error, status)
	}
	return fmt.Errorf("httpbackend: %s: unexpected status %d", path, status)
}
