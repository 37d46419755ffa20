package sentry

import (
	"iter"
	"net/url"
	"strings"
)

// Cursor identifies a position in a paginated result set. Cursors are
// opaque values minted by the API and handed back via the Link response
// header.
type Cursor string

// ListOptions are the common parameters for list operations. A zero
// value requests the first page.
type ListOptions struct {
	// Cursor resumes listing from the next cursor returned by a
	// previous page.
	Cursor Cursor `url:"cursor,omitempty"`
}

// parseLink extracts the next-page cursor from a Link response header:
//
//	<https://sentry.io/api/0/projects/?cursor=0:100:0>; rel="next"; results="true"; cursor="0:100:0"
//
// It returns nil when there is no next page, which the API signals with
// results="false" or by omitting the rel="next" entry entirely.
// Malformed headers are treated as a single page.
func parseLink(header string) *Cursor {
	for _, link := range strings.Split(header, ",") {
		segments := strings.Split(link, ";")
		if len(segments) < 2 {
			continue
		}

		target := strings.TrimSpace(segments[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}

		params := make(map[string]string, len(segments)-1)
		for _, segment := range segments[1:] {
			key, value, ok := strings.Cut(strings.TrimSpace(segment), "=")
			if !ok {
				continue
			}
			params[key] = strings.Trim(value, `"`)
		}

		if params["rel"] != "next" {
			continue
		}
		if params["results"] == "false" {
			return nil
		}

		if cursor, ok := params["cursor"]; ok && cursor != "" {
			c := Cursor(cursor)
			return &c
		}

		// Older header variants omit the cursor attribute; fall back to
		// the cursor query parameter of the target URL.
		if u, err := url.Parse(strings.Trim(target, "<>")); err == nil {
			if cursor := u.Query().Get("cursor"); cursor != "" {
				c := Cursor(cursor)
				return &c
			}
		}
	}

	return nil
}

// paginate adapts a page-fetching function into an iterator that walks
// every page starting from the given cursor. The first error is yielded
// once and ends the iteration.
func paginate[T any](start Cursor, fetch func(Cursor) ([]T, *Cursor, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		cursor := start
		for {
			items, next, err := fetch(cursor)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}

			if next == nil {
				return
			}
			cursor = *next
		}
	}
}
