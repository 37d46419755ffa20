package middleware

import (
	"maps"
	"net/http"
)

// BearerAuth returns a middleware that sets the Authorization header to
// "Bearer <token>" on every request. Sentry auth tokens (user, internal
// integration, and org tokens) all authenticate this way.
func BearerAuth(token string) func(http.RoundTripper) http.RoundTripper {
	return Auth("Authorization", "Bearer "+token)
}

// Auth returns a middleware that sets an arbitrary header on every
// request. Requests are cloned before mutation so callers can reuse them.
func Auth(headerName, headerValue string) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &authTransport{
			next:        next,
			headerName:  headerName,
			headerValue: headerValue,
		}
	}
}

type authTransport struct {
	next        http.RoundTripper
	headerName  string
	headerValue string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = cloneRequest(req)
	req.Header.Set(t.headerName, t.headerValue)

	//nolint:wrapcheck // Middleware passes through errors from the next handler.
	return t.next.RoundTrip(req)
}

// cloneRequest makes a shallow copy of the request with its own header map.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = make(http.Header, len(req.Header))
	maps.Copy(r.Header, req.Header)
	return r
}
