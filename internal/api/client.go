package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Wire constants for the v4 API.
const (
	// DefaultBaseURL is the fixed endpoint all requests are issued against.
	DefaultBaseURL = "https://api.cloudflare.com/client/v4/"

	// DefaultConnectTimeout bounds connection establishment. This is an
	// interactive admin API, not a bulk data channel.
	DefaultConnectTimeout = 1500 * time.Millisecond

	// DefaultRequestTimeout bounds the whole round trip.
	DefaultRequestTimeout = 3 * time.Second

	// HeaderAuthKey carries the API key.
	HeaderAuthKey = "X-Auth-Key"

	// HeaderAuthEmail carries the account email.
	HeaderAuthEmail = "X-Auth-Email"
)

// Config holds the immutable settings an API client is built from.
type Config struct {
	Key            string
	Email          string
	BaseURL        string
	UserAgent      string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration

	// HTTPClient, when set, replaces the default transport. Tests use it
	// to substitute canned responses without a network dependency.
	HTTPClient *http.Client

	Logger zerolog.Logger
}

// Client issues authenticated requests against the v4 API and classifies
// every outcome into one of the package's error types. The configuration
// is fixed at construction; a Client is safe for concurrent use.
type Client struct {
	key        string
	email      string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger

	mu       sync.Mutex
	snapshot *Snapshot
}

// NewClient creates an API client from cfg, applying defaults for any
// zero-valued setting.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Key == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Email == "" {
		return nil, ErrMissingEmail
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: connectTimeout,
			},
		}
	}

	return &Client{
		key:        cfg.Key,
		email:      cfg.Email,
		baseURL:    baseURL,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}, nil
}

// SetHTTPClient replaces the underlying HTTP client. Intended for tests.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Do dispatches a single request and classifies its outcome. The key is
// validated on every call, not just at construction, because validation is
// cheap and guards against a mutated key reaching the wire. Exactly one
// network attempt is made; no retries.
func (c *Client) Do(ctx context.Context, method, endpoint string, params map[string]any) (*Response, error) {
	if err := ValidateKey(c.key); err != nil {
		return nil, err
	}

	req, err := c.buildRequest(ctx, method, endpoint, params)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("endpoint", endpoint).
		Msg("dispatching API request")

	start := time.Now()
	resp, doErr := c.httpClient.Do(req)
	return c.classify(requestID, req.URL.String(), resp, doErr, time.Since(start))
}

// buildRequest constructs the HTTP request for a verb/endpoint/params
// triple. Parameter placement depends on the verb: GET puts them in the
// query string, POST sends a form-encoded body (a compatibility decision
// the remote service expects; see DESIGN.md), and PUT/PATCH/DELETE send a
// JSON body.
func (c *Client) buildRequest(ctx context.Context, method, endpoint string, params map[string]any) (*http.Request, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported method %q", method)
	}

	target := c.baseURL + strings.TrimPrefix(endpoint, "/")

	var body io.Reader
	contentType := "application/json"

	switch method {
	case http.MethodGet:
		if len(params) > 0 {
			target += "?" + encodeValues(params)
		}
	case http.MethodPost:
		if len(params) > 0 {
			body = strings.NewReader(encodeValues(params))
		}
		contentType = "application/x-www-form-urlencoded"
	default:
		if len(params) > 0 {
			data, err := json.Marshal(params)
			if err != nil {
				return nil, fmt.Errorf("marshal request body: %w", err)
			}
			body = bytes.NewReader(data)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set(HeaderAuthKey, c.key)
	req.Header.Set(HeaderAuthEmail, c.email)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}

// encodeValues flattens a parameter map into URL-encoded form, stringifying
// non-string values.
func encodeValues(params map[string]any) string {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, fmt.Sprint(v))
	}
	return values.Encode()
}

// LastSnapshot returns the most recently recorded response snapshot, or
// nil if no response has been received yet. Diagnostic only: under
// concurrent use the snapshot belongs to whichever call finished last.
func (c *Client) LastSnapshot() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

func (c *Client) storeSnapshot(s *Snapshot) {
	c.mu.Lock()
	c.snapshot = s
	c.mu.Unlock()
}
