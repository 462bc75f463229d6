package api

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingEmail is returned when no account email is provided.
	ErrMissingEmail = errors.New("account email is required")

	// ErrInvalidCredentials is returned when the API key fails local
	// validation or the remote service rejects it with a 403.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTransport is returned for network-level failures: connection
	// refusal, DNS failure, connect or read timeout.
	ErrTransport = errors.New("transport failure")

	// ErrHTTPStatus is returned when a round trip completes with an
	// unexpected HTTP status.
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrAPIFailure is returned when a 200-status response carries a
	// failure envelope or an undecodable body.
	ErrAPIFailure = errors.New("API reported failure")
)

// CredentialError indicates the API key was rejected, either by local
// pre-flight validation or by the remote service (HTTP 403).
type CredentialError struct {
	StatusCode int // always 403
	Reason     string
	Remote     bool // true when the rejection came from the service
}

func (e *CredentialError) Error() string {
	if e.Remote {
		return fmt.Sprintf("credentials rejected by service (status %d): %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("invalid credentials: %s", e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *CredentialError) Is(target error) bool {
	return target == ErrInvalidCredentials
}

// TransportError represents a network-level failure with no usable HTTP
// response: connection refusal, DNS failure, or a timeout.
type TransportError struct {
	Err     error
	URL     string
	Timeout bool
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// HTTPError represents a completed round trip with a status other than
// 200 or 301.
type HTTPError struct {
	StatusCode int
	Reason     string // HTTP reason phrase
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *HTTPError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// APIError represents an application-level failure: a 200-status response
// whose envelope reports success=false, contains errors, or cannot be
// decoded at all. StatusCode is 0 for decode failures, which carry no
// status-derived code.
type APIError struct {
	StatusCode int
	Reason     string
	Errors     []ResponseInfo // structured errors from the envelope
	DecodeErr  error          // set when the body failed to parse
}

func (e *APIError) Error() string {
	if e.DecodeErr != nil {
		return fmt.Sprintf("undecodable API response: %v", e.DecodeErr)
	}
	if len(e.Errors) > 0 {
		parts := make([]string, 0, len(e.Errors))
		for _, info := range e.Errors {
			parts = append(parts, fmt.Sprintf("%d: %s", info.Code, info.Message))
		}
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, strings.Join(parts, "; "))
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Reason)
}

// Unwrap returns the decode error, if any.
func (e *APIError) Unwrap() error {
	return e.DecodeErr
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return target == ErrAPIFailure
}
