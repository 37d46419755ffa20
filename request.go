package sentry

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/go-querystring/query"
)

// maxErrorBody bounds how much of an error response body is read for the
// APIError detail message.
const maxErrorBody = 4 << 10

// newRequest builds a request for a path relative to the API root, e.g.
// "organizations/acme/teams/". Sentry paths always carry a trailing
// slash. A non-nil body is marshaled as JSON.
func (c *Client) newRequest(ctx context.Context, method, path string, q url.Values, body any) (*http.Request, error) {
	u, err := c.baseURL.Parse(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid request path %q", path)
	}
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do executes the request, maps non-success responses to *APIError,
// decodes a JSON body into out (when out is non-nil), and returns the
// next-page cursor from the Link header, if any.
//
// When wantStatus is empty any 2xx response counts as success; otherwise
// the status must match one of the listed codes.
func (c *Client) do(req *http.Request, out any, wantStatus ...int) (*Cursor, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	if !statusOK(resp.StatusCode, wantStatus) {
		return nil, errors.WithStack(newAPIError(resp))
	}

	next := parseLink(resp.Header.Get("Link"))

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s %s response", req.Method, req.URL.Path)
		}
	}

	return next, nil
}

func statusOK(statusCode int, wantStatus []int) bool {
	if len(wantStatus) == 0 {
		return statusCode >= 200 && statusCode < 300
	}
	for _, want := range wantStatus {
		if statusCode == want {
			return true
		}
	}
	return false
}

// newAPIError reads the error payload, which Sentry reports as
// {"detail": "..."} for most endpoints.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		apiErr.Detail = payload.Detail
		return apiErr
	}

	apiErr.Detail = strings.TrimSpace(string(body))
	return apiErr
}

// get fetches path and decodes the response into out, returning the
// next-page cursor for paginated endpoints.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) (*Cursor, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any, wantStatus ...int) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	_, err = c.do(req, out, wantStatus...)
	return err
}

func (c *Client) put(ctx context.Context, path string, q url.Values, body, out any) error {
	req, err := c.newRequest(ctx, http.MethodPut, path, q, body)
	if err != nil {
		return err
	}
	_, err = c.do(req, out)
	return err
}

func (c *Client) delete(ctx context.Context, path string, q url.Values, wantStatus ...int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, q, nil)
	if err != nil {
		return err
	}
	_, err = c.do(req, nil, wantStatus...)
	return err
}

// listQuery encodes a list options struct into query parameters. A nil
// options pointer yields empty values.
func listQuery(opts any) (url.Values, error) {
	v := reflect.ValueOf(opts)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return url.Values{}, nil
	}

	q, err := query.Values(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode list options")
	}
	return q, nil
}
