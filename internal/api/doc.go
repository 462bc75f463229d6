// Package api implements the request/response pipeline for the v4 API:
// pre-flight credential validation, request construction with verb-dependent
// parameter placement, a single dispatch over a shared transport, and an
// ordered classifier that maps every outcome onto a closed set of error
// types.
package api
