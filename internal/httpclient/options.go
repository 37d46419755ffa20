package httpclient

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. A nil client is
// ignored and the default (30s timeout) is kept.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.base = client
		}
	}
}

// WithTimeout sets the request timeout on the underlying client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.base.Timeout = timeout
	}
}

// WithTransport sets the base transport that middleware will wrap.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.base.Transport = transport
	}
}

// WithMiddleware appends middleware to the chain.
//
//	WithMiddleware(A, B, C) builds A(B(C(transport)))
//
// so requests flow A -> B -> C -> transport and responses return in
// reverse. Outer concerns (observability) go first, inner concerns
// (rate limiting, retries) last.
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, middleware...)
	}
}
