package middleware

import (
	"crypto/tls"
	"net/http"
)

// TLSConfig returns a middleware that applies a TLS configuration to the
// transport. Useful for self-hosted Sentry installations with private CAs
// or for enforcing a minimum TLS version.
func TLSConfig(config *tls.Config) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		transport, ok := next.(*http.Transport)
		if !ok {
			defaultTransport, ok := http.DefaultTransport.(*http.Transport)
			if !ok {
				// Should never happen, but handle gracefully
				return next
			}
			transport = defaultTransport.Clone()
			transport.ForceAttemptHTTP2 = true
		} else {
			transport = transport.Clone()
		}

		transport.TLSClientConfig = config

		return transport
	}
}

// InsecureSkipVerify returns a TLS config that skips certificate
// verification. Only for development against self-hosted instances with
// self-signed certificates.
func InsecureSkipVerify() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true, //nolint:gosec // Opt-in feature for dev/test environments.
	}
}
