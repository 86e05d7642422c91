package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// Client implements Gateway over the catalog REST API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

var _ Gateway = (*Client)(nil)

// NewClient constructs a Client bound to the provided base URL
// (e.g. "http://localhost:5001").
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("catalog: base URL is required")
	}
	parsed, err := url.Parse(strings.TrimRight(trimmed, "/"))
	if err != nil {
		return nil, fmt.Errorf("catalog: invalid base URL: %w", err)
	}
	c := &Client{
		baseURL:    parsed,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// List fetches the full product collection.
func (c *Client) List(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get fetches a single product by ID.
func (c *Client) Get(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Create persists a new product.
func (c *Client) Create(ctx context.Context, fields ProductFields) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/api/products", fields, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces a product's fields.
func (c *Client) Update(ctx context.Context, id string, fields ProductFields) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), fields, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a product.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil)
}

// Health checks the /api health endpoint and returns its message.
func (c *Client) Health(ctx context.Context) (string, error) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/api", nil, &body); err != nil {
		return "", err
	}
	return body.Message, nil
}

// do performs a single JSON request. There is no retry: every call is one
// attempt that runs to completion or failure.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("catalog: encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("catalog: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog: decode response: %w", err)
	}
	return nil
}

// statusError maps a non-2xx response to a gateway error.
func (c *Client) statusError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		if payload.Error != "" {
			return fmt.Errorf("%w: %s", ErrInvalidInput, payload.Error)
		}
		return ErrInvalidInput
	default:
		return fmt.Errorf("catalog: server returned status %d", resp.StatusCode)
	}
}
