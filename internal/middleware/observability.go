package middleware

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/crowdstack/go-sentry/observability"
)

// Observability returns a middleware that logs requests and records
// request metrics.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{
			next:    next,
			logger:  logger,
			metrics: metrics,
		}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	urlStr := req.URL.String()

	t.logger.Debug("http request started",
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "url", Value: urlStr},
		observability.Field{Key: "path", Value: req.URL.Path},
	)

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.logger.Error("http request failed",
			observability.Field{Key: "method", Value: req.Method},
			observability.Field{Key: "url", Value: urlStr},
			observability.Field{Key: "duration", Value: duration},
			observability.Field{Key: "error", Value: err.Error()},
		)

		t.metrics.RecordError("http_request", "NetworkError")

		//nolint:wrapcheck // Observability logs the error but passes it through unchanged.
		return nil, err
	}

	fields := []observability.Field{
		{Key: "method", Value: req.Method},
		{Key: "url", Value: urlStr},
		{Key: "status", Value: resp.StatusCode},
		{Key: "duration", Value: duration},
	}

	if resp.StatusCode >= http.StatusBadRequest {
		t.logger.Warn("http request completed with error", fields...)
	} else {
		t.logger.Debug("http request completed", fields...)
	}

	t.metrics.RecordHTTPRequest(req.Method, normalizePath(req.URL.Path), resp.StatusCode, duration)

	return resp, nil
}

var (
	// issueIDPattern matches numeric issue identifiers: /issues/123456.
	issueIDPattern = regexp.MustCompile(`/issues/\d+`)
	// orgPattern matches the organization slug segment: /organizations/{org}.
	orgPattern = regexp.MustCompile(`/organizations/[^/]+`)
	// orgScopedPattern matches the two leading slug segments of project- and
	// team-scoped paths: /projects/{org}/{proj} and /teams/{org}/{team}.
	orgScopedPattern = regexp.MustCompile(`/(projects|teams)/[^/]+/[^/]+`)

	// normalizedPathCache avoids re-running the regexes for paths already
	// seen. The endpoint set is small in practice, so the cache stays tiny
	// and hot.
	normalizedPathCache sync.Map
)

// normalizePath replaces organization, project, team, and issue
// identifiers in a request path with placeholders so that metrics labels
// stay bounded.
//
// Examples:
//   - /api/0/organizations/acme/issues/92751/events/
//     → /api/0/organizations/:organization/issues/:issue/events/
//   - /api/0/projects/acme/backend/issues/
//     → /api/0/projects/:organization/:project/issues/
//   - /api/0/teams/acme/platform/
//     → /api/0/teams/:organization/:team/
func normalizePath(path string) string {
	if cached, ok := normalizedPathCache.Load(path); ok {
		//nolint:forcetypeassert // Cache only ever stores strings.
		return cached.(string)
	}

	normalized := issueIDPattern.ReplaceAllString(path, "/issues/:issue")
	normalized = orgPattern.ReplaceAllString(normalized, "/organizations/:organization")
	normalized = orgScopedPattern.ReplaceAllStringFunc(normalized, func(match string) string {
		if match[1] == 'p' {
			return "/projects/:organization/:project"
		}
		return "/teams/:organization/:team"
	})

	normalizedPathCache.Store(path, normalized)

	return normalized
}
