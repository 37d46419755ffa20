package observability

// Field is a structured logging key-value pair.
type Field struct {
	Key   string
	Value any
}

// Logger is the structured logging interface consumed by the client.
// Implementations can delegate to any logging library (slog, zap, logrus).
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...Field)

	// With returns a logger that includes the given fields on every
	// subsequent log call.
	With(fields ...Field) Logger
}

type noopLogger struct{}

// NoopLogger returns a Logger that discards everything. It is the default
// when no logger is configured.
//
//nolint:ireturn // Factory returns the interface on purpose.
func NoopLogger() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(string, ...Field) {}
func (l *noopLogger) Info(string, ...Field)  {}
func (l *noopLogger) Warn(string, ...Field)  {}
func (l *noopLogger) Error(string, ...Field) {}

//nolint:ireturn // Must return the interface to satisfy Logger.
func (l *noopLogger) With(...Field) Logger { return l }
