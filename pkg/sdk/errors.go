package keepstack

import "errors"

// Sentinel errors mapped from API error responses.
// Use errors.Is() to check.
var (
	// ErrInvalidRequest is returned on HTTP 400.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnauthorized is returned on HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstreamUnavailable is returned on HTTP 502 (embedding provider down).
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")
)

// APIError carries the server's error envelope alongside the HTTP status.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Unwrap maps the status code onto a sentinel so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 400:
		return ErrInvalidRequest
	case 401:
		return ErrUnauthorized
	case 502:
		return ErrUpstreamUnavailable
	default:
		return nil
	}
}
