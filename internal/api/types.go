package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// ResponseInfo is a single code/message pair from the envelope's errors or
// messages lists.
type ResponseInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Response is the JSON envelope the service wraps every payload in.
// Result is opaque to this layer and forwarded to the caller untouched.
type Response struct {
	Success  bool            `json:"success"`
	Errors   []ResponseInfo  `json:"errors"`
	Messages []ResponseInfo  `json:"messages"`
	Result   json.RawMessage `json:"result"`
}

// DecodeResult unmarshals the opaque result payload into v.
func (r *Response) DecodeResult(v any) error {
	return json.Unmarshal(r.Result, v)
}

// Snapshot holds the most recently received raw response and its parsed
// envelope. It exists purely for post-hoc debugging; nothing reads it for
// control flow and its contents are overwritten on every call.
type Snapshot struct {
	RequestID  string
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	Envelope   *Response
	ReceivedAt time.Time
	Duration   time.Duration
}
