package observability

import "time"

// MetricsRecorder receives client-side metrics. Implementations can feed
// Prometheus, StatsD, OpenTelemetry, or anything else.
type MetricsRecorder interface {
	// RecordHTTPRequest records a completed HTTP request. The path has
	// organization, project, and issue identifiers replaced with
	// placeholders to keep label cardinality bounded.
	RecordHTTPRequest(method, path string, statusCode int, duration time.Duration)

	// RecordRetry records a retry attempt against an endpoint.
	RecordRetry(attempt int, endpoint string)

	// RecordRateLimit records a rate limit wait before a request.
	RecordRateLimit(endpoint string, wait time.Duration)

	// RecordError records an error occurrence by operation and type.
	RecordError(operation, errorType string)
}

type noopMetricsRecorder struct{}

// NoopMetricsRecorder returns a MetricsRecorder that does nothing. It is
// the default when no recorder is configured.
//
//nolint:ireturn // Factory returns the interface on purpose.
func NoopMetricsRecorder() MetricsRecorder {
	return &noopMetricsRecorder{}
}

func (m *noopMetricsRecorder) RecordHTTPRequest(string, string, int, time.Duration) {}
func (m *noopMetricsRecorder) RecordRetry(int, string)                              {}
func (m *noopMetricsRecorder) RecordRateLimit(string, time.Duration)                {}
func (m *noopMetricsRecorder) RecordError(string, string)                           {}
