package middleware

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/crowdstack/go-sentry/observability"
)

// RateLimitConfig configures the rate limit middleware.
type RateLimitConfig struct {
	Limiter *rate.Limiter
	Logger  observability.Logger
	Metrics observability.MetricsRecorder
}

// RateLimit returns a middleware that waits on a token bucket before each
// request. A nil limiter disables rate limiting.
func RateLimit(cfg RateLimitConfig) func(http.RoundTripper) http.RoundTripper {
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &rateLimitTransport{
			next:    next,
			limiter: cfg.Limiter,
			logger:  cfg.Logger,
			metrics: cfg.Metrics,
		}
	}
}

type rateLimitTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter == nil {
		return t.next.RoundTrip(req)
	}

	if err := t.wait(req); err != nil {
		return nil, err
	}

	return t.next.RoundTrip(req)
}

func (t *rateLimitTransport) wait(req *http.Request) error {
	ctx := req.Context()

	reservation := t.limiter.Reserve()
	if !reservation.OK() {
		return errors.New("rate limit reservation failed")
	}

	delay := reservation.Delay()
	if delay == 0 {
		return nil
	}

	t.logger.Debug("rate limit delay",
		observability.Field{Key: "delay", Value: delay},
		observability.Field{Key: "path", Value: req.URL.Path},
	)

	t.metrics.RecordRateLimit(req.URL.Path, delay)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		reservation.Cancel()
		return errors.Wrap(ctx.Err(), "context canceled during rate limit wait")
	}
}
