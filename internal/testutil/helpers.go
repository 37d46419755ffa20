// Package testutil provides shared HTTP test server helpers.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Response is a canned HTTP response for sequence servers.
type Response struct {
	Body       string
	StatusCode int
	Header     http.Header
}

// NewMockServer creates a test server that validates the request path and
// bearer token, then replies with the given body and status.
func NewMockServer(t *testing.T, expectedPath, token, responseBody string, statusCode int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, expectedPath, r.URL.Path, "Request path should match expected")

		if token != "" {
			assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"), "Authorization header should carry the bearer token")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, err := w.Write([]byte(responseBody))
		require.NoError(t, err, "Failed to write response body")
	}))
}

// NewMockServerWithHandler creates a test server with a custom handler for
// scenarios that need to inspect the request themselves.
func NewMockServerWithHandler(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(handler)
}

// NewMockServerMulti creates a test server routing by URL path. Requests
// to unknown paths fail the test.
func NewMockServerMulti(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("Unexpected request path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w, r)
	}))
}

// NewMockServerSequence creates a test server that replies with the given
// responses in order. Useful for pagination and retry scenarios.
func NewMockServerSequence(t *testing.T, responses []Response) *httptest.Server {
	t.Helper()

	callCount := 0
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if callCount >= len(responses) {
			t.Errorf("More requests than configured responses (got %d requests, have %d responses)",
				callCount+1, len(responses))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		resp := responses[callCount]
		callCount++

		for key, values := range resp.Header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		_, err := w.Write([]byte(resp.Body))
		require.NoError(t, err, "Failed to write response body")
	}))
}
