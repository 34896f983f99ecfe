package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP response (connection refused, DNS, timeout). Errors of this class
// wrap ErrUnavailable so callers can test with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// APIError is a backend failure: the server responded with a non-2xx status.
// Message carries the server-supplied error text when the body had one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: %d %s", e.Status, http.StatusText(e.Status))
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsUnavailable reports whether err is a transport-level failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
