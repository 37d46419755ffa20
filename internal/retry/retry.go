// Package retry holds the retryability rules shared by the retry
// middleware.
package retry

import (
	"net/http"
	"strconv"
	"time"
)

// ShouldRetry reports whether a status code is worth retrying:
//   - 429 Too Many Requests (rate limit exceeded)
//   - 5xx server errors
//
// Other 4xx codes are the caller's fault and never retried.
func ShouldRetry(statusCode int) bool {
	return statusCode >= 500 || statusCode == http.StatusTooManyRequests
}

// ParseRetryAfter parses a Retry-After header value, which is either a
// number of seconds ("120") or an HTTP-date. Returns 0 for empty or
// unparseable values, and for dates in the past.
func ParseRetryAfter(retryAfterHeader string) time.Duration {
	if retryAfterHeader == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
		if seconds < 0 {
			return 0
		}
		return time.Duration(seconds) * time.Second
	}

	if at, err := http.ParseTime(retryAfterHeader); err == nil {
		if wait := time.Until(at); wait > 0 {
			return wait
		}
	}

	return 0
}
