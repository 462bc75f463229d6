package api

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// classify turns the raw outcome of a dispatch into exactly one of the
// package's four error kinds, or a parsed envelope on full success. It is
// an ordered pipeline; later checks are only reached when earlier ones
// pass:
//
//  1. transport failure (no usable response)
//  2. remote credential rejection (403)
//  3. unexpected HTTP status (anything but 200/301)
//  4. undecodable envelope
//  5. envelope reporting failure
//  6. success
func (c *Client) classify(requestID, reqURL string, resp *http.Response, doErr error, elapsed time.Duration) (*Response, error) {
	if doErr != nil {
		return nil, c.classifyTransport(requestID, reqURL, doErr)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	snap := &Snapshot{
		RequestID:  requestID,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    resp.Header.Clone(),
		Body:       body,
		ReceivedAt: time.Now(),
		Duration:   elapsed,
	}
	c.storeSnapshot(snap)

	c.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("received API response")

	if readErr != nil {
		return nil, &TransportError{Err: readErr, URL: reqURL, Timeout: isTimeout(readErr)}
	}

	if resp.StatusCode == http.StatusForbidden {
		return nil, &CredentialError{
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
			Remote:     true,
		}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusMovedPermanently {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
		}
	}

	var envelope Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		// Decode failures carry no status-derived code.
		return nil, &APIError{
			Reason:    "undecodable response payload",
			DecodeErr: err,
		}
	}
	snap.Envelope = &envelope

	// A success flag without a clean error list (or vice versa) is a
	// failure, never partially surfaced. The structured error list rides
	// along for diagnostics.
	if !envelope.Success || len(envelope.Errors) > 0 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
			Errors:     envelope.Errors,
		}
	}

	return &envelope, nil
}

// classifyTransport maps an error from http.Client.Do onto the taxonomy.
// Go's transport never raises on status codes, so unlike exception-based
// clients everything arriving here is network-level by construction.
func (c *Client) classifyTransport(requestID, reqURL string, doErr error) error {
	c.logger.Debug().
		Str("request_id", requestID).
		Err(doErr).
		Msg("API request failed in transport")

	return &TransportError{
		Err:     doErr,
		URL:     reqURL,
		Timeout: isTimeout(doErr),
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
