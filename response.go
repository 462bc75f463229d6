package cloudflare

import "github.com/cfadmin/cloudflare-client-go/internal/api"

// Response is the envelope the v4 API wraps every payload in: a success
// flag, structured error and message lists, and an opaque result forwarded
// to the caller.
type Response = api.Response

// ResponseInfo is a single code/message pair from the envelope's errors or
// messages lists.
type ResponseInfo = api.ResponseInfo

// Snapshot is the raw record of the most recently received response,
// retained purely for post-hoc debugging.
type Snapshot = api.Snapshot
