package cloudflare

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cfadmin/cloudflare-client-go/internal/api"
)

// Params maps parameter names to values for a single call. Placement
// depends on the verb: GET parameters go in the query string, POST
// parameters in a form-encoded body, and PUT/PATCH/DELETE parameters in a
// JSON body.
type Params map[string]any

// Client issues authenticated calls against the v4 API. Its configuration
// is fixed at construction and it is safe for concurrent use; only the
// diagnostic snapshot is shared mutable state, and nothing reads it for
// control flow.
type Client struct {
	apiClient *api.Client
}

// New creates a client for the given API key and account email.
func New(key, email string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		Key:            key,
		Email:          email,
		BaseURL:        cfg.baseURL,
		UserAgent:      cfg.userAgent,
		ConnectTimeout: cfg.connectTimeout,
		RequestTimeout: cfg.requestTimeout,
		HTTPClient:     cfg.httpClient,
		Logger:         cfg.logger,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{apiClient: apiClient}, nil
}

// Call dispatches a single request for the given verb and relative
// endpoint and returns the parsed envelope. Every failure mode is reported
// as exactly one of the four error kinds: *CredentialError,
// *TransportError, *HTTPError, or *APIError. No retries are attempted.
func (c *Client) Call(ctx context.Context, method, endpoint string, params Params) (*Response, error) {
	resp, err := c.apiClient.Do(ctx, method, endpoint, params)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// Get issues a GET request; params are encoded into the query string.
func (c *Client) Get(ctx context.Context, endpoint string, params Params) (*Response, error) {
	return c.Call(ctx, http.MethodGet, endpoint, params)
}

// Post issues a POST request; params are sent as a form-encoded body.
func (c *Client) Post(ctx context.Context, endpoint string, params Params) (*Response, error) {
	return c.Call(ctx, http.MethodPost, endpoint, params)
}

// Put issues a PUT request; params are sent as a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, params Params) (*Response, error) {
	return c.Call(ctx, http.MethodPut, endpoint, params)
}

// Patch issues a PATCH request; params are sent as a JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, params Params) (*Response, error) {
	return c.Call(ctx, http.MethodPatch, endpoint, params)
}

// Delete issues a DELETE request; params are sent as a JSON body.
func (c *Client) Delete(ctx context.Context, endpoint string, params Params) (*Response, error) {
	return c.Call(ctx, http.MethodDelete, endpoint, params)
}

// LastSnapshot returns the raw response record from the most recent call,
// or nil if no response has been received. Under concurrent use the
// snapshot belongs to whichever call finished last; it is diagnostic only.
func (c *Client) LastSnapshot() *Snapshot {
	return c.apiClient.LastSnapshot()
}
