package sentry

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/crowdstack/go-sentry/internal/httpclient"
	"github.com/crowdstack/go-sentry/internal/middleware"
	"github.com/crowdstack/go-sentry/internal/ratelimit"
	"github.com/crowdstack/go-sentry/observability"
)

const (
	// DefaultBaseURL is the API root of sentry.io. Self-hosted
	// installations override it via ClientConfig.BaseURL.
	DefaultBaseURL = "https://sentry.io/api/0/"

	// DefaultRateLimitPerMinute paces outgoing requests. Sentry enforces
	// per-organization concurrency limits server-side; the client-side
	// bucket keeps bursts polite without throttling normal use.
	DefaultRateLimitPerMinute = 600

	// DefaultMaxRetries is the default number of retries for failed requests.
	DefaultMaxRetries = 3
	// DefaultRetryWaitTime is the default initial wait between retries.
	DefaultRetryWaitTime = 1 * time.Second
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "go-sentry/1.0"
)

// Client is a Sentry Web API client. All operations are safe for
// concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *httpclient.Client
	userAgent  string
	logger     observability.Logger
	metrics    observability.MetricsRecorder
}

// Compile-time check that Client covers the full API surface.
var _ API = (*Client)(nil)

// ClientConfig holds configuration for the Sentry API client.
type ClientConfig struct {
	// Token is a Sentry auth token, sent as "Authorization: Bearer".
	// Ignored when TokenSource is set.
	Token string

	// TokenSource supplies rotating tokens (e.g. OAuth app installs).
	// When set, it takes precedence over Token.
	TokenSource oauth2.TokenSource

	// BaseURL is the API root (defaults to https://sentry.io/api/0/).
	// Point it at /api/0/ of a self-hosted installation to use one.
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	HTTPClient *http.Client

	// RateLimitPerMinute sets the client-side rate limit. Zero means
	// the default; a negative value disables client-side limiting.
	RateLimitPerMinute int

	// MaxRetries sets the maximum number of retries for failed requests.
	MaxRetries int

	// RetryWaitTime sets the initial wait between retries.
	RetryWaitTime time.Duration

	// Timeout sets the HTTP client timeout.
	Timeout time.Duration

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// TLS overrides the TLS configuration, for self-hosted
	// installations with private CAs.
	TLS *tls.Config

	// Logger for observability (optional, no-op if nil).
	Logger observability.Logger

	// Metrics recorder for observability (optional, no-op if nil).
	Metrics observability.MetricsRecorder
}

// New creates a client for sentry.io with default settings: 3 retries
// with exponential backoff, a 600 requests/minute client-side rate
// limit, and a 30 second timeout. For anything custom, use NewWithConfig.
func New(token string) (*Client, error) {
	return NewWithConfig(&ClientConfig{Token: token})
}

// NewWithConfig creates a client with custom configuration. Either Token
// or TokenSource is required.
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.Token == "" && cfg.TokenSource == nil {
		return nil, errors.New("auth token is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RateLimitPerMinute == 0 {
		cfg.RateLimitPerMinute = DefaultRateLimitPerMinute
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryWaitTime == 0 {
		cfg.RetryWaitTime = DefaultRetryWaitTime
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	// Sentry routes require the trailing slash; relative resolution
	// below depends on the base ending with one.
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", cfg.BaseURL)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observability.NoopLogger()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	// Middleware chain from outermost to innermost:
	// Observability -> RateLimit -> Retry -> auth. Auth sits inside the
	// retry loop so replayed requests carry a fresh token.
	chain := []httpclient.Middleware{
		middleware.Observability(logger, metrics),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: limiterFor(cfg.RateLimitPerMinute),
			Logger:  logger,
			Metrics: metrics,
		}),
		middleware.Retry(middleware.RetryConfig{
			MaxRetries:  cfg.MaxRetries,
			InitialWait: cfg.RetryWaitTime,
			Logger:      logger,
			Metrics:     metrics,
		}),
		authMiddleware(cfg),
	}

	if cfg.TLS != nil {
		chain = append(chain, middleware.TLSConfig(cfg.TLS))
	}

	httpClient := httpclient.New(
		httpclient.WithHTTPClient(cfg.HTTPClient),
		httpclient.WithTimeout(cfg.Timeout),
		httpclient.WithMiddleware(chain...),
	)

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
		logger:     logger,
		metrics:    metrics,
	}, nil
}

func limiterFor(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute < 0 {
		return nil
	}
	return ratelimit.NewRateLimiter(requestsPerMinute)
}

func authMiddleware(cfg *ClientConfig) httpclient.Middleware {
	if cfg.TokenSource != nil {
		return func(next http.RoundTripper) http.RoundTripper {
			return &oauth2.Transport{
				Source: cfg.TokenSource,
				Base:   next,
			}
		}
	}
	return middleware.BearerAuth(cfg.Token)
}
