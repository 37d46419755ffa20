// Package observability defines the logging and metrics hooks used by the
// go-sentry client.
//
// The client never writes to a log or a metrics backend directly. Instead it
// calls the Logger and MetricsRecorder interfaces defined here, which default
// to no-op implementations. Consumers plug in their own backends:
//
//	logger := myLogger{} // implements observability.Logger
//	client, err := sentry.NewWithConfig(&sentry.ClientConfig{
//		Token:  token,
//		Logger: logger,
//	})
//
// # Logger
//
// Logger supports leveled, structured logging with key-value Fields. Any
// logging library (slog, zap, logrus) can be adapted in a few lines; see
// examples/observability for an slog adapter.
//
// # MetricsRecorder
//
// MetricsRecorder receives HTTP request outcomes, retry attempts, rate limit
// waits, and error occurrences. Request paths are normalized (organization,
// project, and issue identifiers replaced with placeholders) before being
// recorded, so a Prometheus implementation will not suffer unbounded label
// cardinality.
//
// # Defaults
//
// When no Logger or MetricsRecorder is configured the client uses no-op
// implementations, so observability costs nothing unless asked for.
package observability
