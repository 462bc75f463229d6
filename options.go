package cloudflare

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL        string
	userAgent      string
	connectTimeout time.Duration
	requestTimeout time.Duration
	httpClient     *http.Client
	logger         zerolog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL overrides the API base URL. Useful for tests against a mock
// server.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client, bypassing the default
// transport and its timeouts. Tests use this to substitute canned
// responses without a real network call.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithConnectTimeout sets the connection-establishment timeout.
// Default: 1.5 seconds.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.connectTimeout = timeout
	}
}

// WithRequestTimeout sets the overall per-request timeout.
// Default: 3 seconds.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.requestTimeout = timeout
	}
}

// WithLogger sets the logger used for request/response debug logging.
// Default: a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}
