package sentry

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// APIError is returned for any non-success response from the Sentry API.
// Detail carries the "detail" message from the response body when the API
// provided one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("sentry: API error: status=%d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("sentry: API error: status=%d detail=%q", e.StatusCode, e.Detail)
}

// NotFound reports whether the error is a 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Unauthorized reports whether the error is a 401.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// RateLimited reports whether the error is a 429, meaning the retry
// budget was exhausted while the API kept answering 429.
func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// AsAPIError unwraps err and returns the *APIError inside it, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
