// Package httpclient provides the middleware-chaining HTTP client used by
// the go-sentry API client.
package httpclient

import (
	"net/http"
	"time"
)

// Middleware wraps an http.RoundTripper to add behavior. The first
// middleware in a chain is the outermost layer.
type Middleware func(http.RoundTripper) http.RoundTripper

// Client is an http.Client assembled from a base client and a middleware
// chain.
type Client struct {
	base       *http.Client
	middleware []Middleware
}

// New builds a client from the given options and wires the middleware
// chain into the client's transport.
func New(opts ...Option) *Client {
	c := &Client{
		base: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.middleware) > 0 {
		transport := c.base.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}

		// Wrap in reverse so the first middleware ends up outermost.
		for i := len(c.middleware) - 1; i >= 0; i-- {
			transport = c.middleware[i](transport)
		}

		c.base.Transport = transport
	}

	return c
}

// Do executes a request through the middleware chain.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.base.Do(req)
}

// HTTPClient returns the underlying http.Client for code that expects one.
func (c *Client) HTTPClient() *http.Client {
	return c.base
}
