// Package common defines shared constants and sentinel errors used across
// the vehiclehub client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Remote resource errors.
	ErrorNotFound     = errors.New("not found")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Local state errors.
	ErrorNotAuthenticated = errors.New("not authenticated")
	ErrorInvalidInput     = errors.New("invalid input")
)
