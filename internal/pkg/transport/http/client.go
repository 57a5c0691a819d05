// Package http provides a configurable HTTP client with retry logic used to
// reach ledger RPC nodes. It wraps the retryablehttp.Client from HashiCorp and
// exposes functional options for customizing timeouts, retry behavior and logging.
package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration      // maximum duration for a single HTTP request
	retryWaitMin time.Duration      // minimum delay between retry attempts
	retryWaitMax time.Duration      // maximum delay between retry attempts
	retryMax     int                // maximum number of retry attempts
	logger       *zap.SugaredLogger // optional logger for retry attempts
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// leveledLogger adapts a SugaredLogger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	l *zap.SugaredLogger
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (l leveledLogger) Error(msg string, keysAndValues ...any) { l.l.Errorw(msg, keysAndValues...) }
func (l leveledLogger) Info(msg string, keysAndValues ...any)  { l.l.Infow(msg, keysAndValues...) }
func (l leveledLogger) Debug(msg string, keysAndValues ...any) { l.l.Debugw(msg, keysAndValues...) }
func (l leveledLogger) Warn(msg string, keysAndValues ...any)  { l.l.Warnw(msg, keysAndValues...) }

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, default values are used:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//   - logger:       none
//
// Rate limited (429) and 5xx responses are retried with backoff; the
// Retry-After header is honored.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	if cfg.logger != nil {
		client.Logger = leveledLogger{l: cfg.logger}
	}
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.Backoff = retryablehttp.DefaultBackoff
	return client
}

// NewStandardClient is NewClient exposed as a plain *http.Client, for code
// that only depends on net/http.
func NewStandardClient(opts ...Option) *http.Client {
	return NewClient(opts...).StandardClient()
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithLogger reports retry attempts through l.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}
