// Package retry provides a configurable retry mechanism for idempotent ledger
// reads (account fetches, blockhash lookups, program account scans). It wraps
// the retry-go package from Avast behind a small interface with functional options.
//
// Transaction submission must never go through this package: re-sending a
// write is left to the caller.
//
// Basic usage:
//
//	r := retry.New()
//	info, err := retry.Do(ctx, r, func() ([]byte, error) {
//	    return ledger.GetAccountInfo(ctx, address)
//	})
package retry

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted, the
	// error is classified as permanent, or ctx is done.
	//
	// The operation must be idempotent.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint             // maximum number of attempts, including the first one
	delay       time.Duration    // base delay between attempts
	maxDelay    time.Duration    // cap for the exponential backoff
	lastErrOnly bool             // whether to return only the last error
	retryIf     func(error) bool // decides whether an error is worth another attempt
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates a Retry configured with the provided options.
//
// Default configuration:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second, doubled on each retry
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - retryIf:     every error except context cancellation and deadline
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		retryIf:     IsTransient,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// IsTransient is the default retry predicate. Context errors are permanent.
func IsTransient(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(r.cfg.retryIf),
		retry.Context(ctx),
	)
}

// Do runs operation through r and returns its value on success.
func Do[T any](ctx context.Context, r Retry, operation func() (T, error)) (T, error) {
	var result T
	err := r.Execute(ctx, func() error {
		v, err := operation()
		if err != nil {
			return err
		}

		result = v
		return nil
	})

	return result, err
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between retry attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether to return only the last error.
// When false, the errors of every attempt are combined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf replaces the predicate deciding which errors are retried.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}
