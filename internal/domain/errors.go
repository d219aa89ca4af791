// Package domain defines domain-level errors shared by all stock data sources.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service layer. The HTTP layer maps them
// to status codes; everything else surfaces as an internal error.
var (
	// ErrInvalidRequest indicates a required parameter was missing or unusable.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound indicates the requested symbol, file, or filtered result
	// set does not exist.
	ErrNotFound = errors.New("not found")
)

// UpstreamError carries a non-success status returned by the remote market
// data provider. The status code is passed through to the API caller as-is.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
}
