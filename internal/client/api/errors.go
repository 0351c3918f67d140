package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/vehiclehub/internal/common"
)

// ErrUnavailable matches every NetworkError.
var ErrUnavailable = errors.New("server unavailable")

// HTTPError is a non-2xx response. Message comes from the body's "message"
// field, or defaults to "request failed: <status>".
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

// Is lets callers match common status codes with the shared sentinels.
func (e *HTTPError) Is(target error) bool {
	switch target {
	case common.ErrorUnauthorized:
		return e.Status == http.StatusUnauthorized
	case common.ErrorForbidden:
		return e.Status == http.StatusForbidden
	case common.ErrorNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// NetworkError is a transport-level failure: no response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }
func (e *NetworkError) Is(target error) bool {
	return target == ErrUnavailable
}

// DecodeError is a 2xx response whose body is not the expected JSON.
type DecodeError struct {
	Status int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response (status %d): %v", e.Status, e.Err)
}
func (e *DecodeError) Unwrap() error { return e.Err }
