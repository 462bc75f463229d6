package cloudflare

import (
	"time"

	"github.com/cfadmin/cloudflare-client-go/internal/api"
)

// KeyLength is the exact length of a valid API key.
const KeyLength = api.KeyLength

// Documented service limits. The client does not enforce these; they are
// published so callers can self-throttle.
const (
	// RateLimitRequests is the number of API requests permitted per
	// RateLimitWindow.
	RateLimitRequests = 1200

	// RateLimitWindow is the window the request rate limit applies to.
	RateLimitWindow = 5 * time.Minute

	// TagPurgeLimitPerDay is the number of tag-purge operations permitted
	// per 24 hours.
	TagPurgeLimitPerDay = 200

	// TagsPerPurgeRequest is the maximum number of tags accepted by a
	// single purge request.
	TagsPerPurgeRequest = 30
)

// Wire constants, re-exported for callers that inspect outgoing requests.
const (
	DefaultBaseURL  = api.DefaultBaseURL
	HeaderAuthKey   = api.HeaderAuthKey
	HeaderAuthEmail = api.HeaderAuthEmail
)

// Default timeouts for the built-in transport.
const (
	DefaultConnectTimeout = api.DefaultConnectTimeout
	DefaultRequestTimeout = api.DefaultRequestTimeout
)
