package sentry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sentry "github.com/crowdstack/go-sentry"
)

const testToken = "test-token"

// newTestClient builds a client pointed at a mock server. Retries are
// kept but with a millisecond backoff so failure tests stay fast.
func newTestClient(t *testing.T, serverURL string) *sentry.Client {
	t.Helper()

	client, err := sentry.NewWithConfig(&sentry.ClientConfig{
		Token:         testToken,
		BaseURL:       serverURL + "/api/0/",
		RetryWaitTime: time.Millisecond,
	})
	require.NoError(t, err)

	return client
}
