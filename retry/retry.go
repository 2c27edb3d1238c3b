package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net/http"
	"time"
)

var (
	DefaultMaxRetries = 3
	DefaultBaseWait   = 1 * time.Second
)

// Func is a function that can be retried.
type Func func() error

// APIError is implemented by errors that carry an HTTP status code.
// Errors that do not implement it are treated as transient.
type APIError interface {
	error
	StatusCode() int
}

// Option configures the retry behavior.
type Option func(*config)

type config struct {
	maxRetries int
	baseWait   time.Duration
}

// WithMaxRetries sets the maximum number of attempts.
func WithMaxRetries(n int) Option {
	return func(c *config) { c.maxRetries = n }
}

// WithBaseWait sets the base wait duration for the exponential backoff.
func WithBaseWait(d time.Duration) Option {
	return func(c *config) { c.baseWait = d }
}

// Do executes the given function, retrying transient failures with
// exponential backoff and jitter. A non-retryable APIError is returned
// immediately.
func Do(ctx context.Context, f Func, opts ...Option) error {
	c := &config{
		maxRetries: DefaultMaxRetries,
		baseWait:   DefaultBaseWait,
	}
	for _, opt := range opts {
		opt(c)
	}

	var lastError error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(float64(c.baseWait) * math.Pow(2, float64(attempt-1)))
			jitter := time.Duration(rand.Float64() * float64(backoff) * 0.1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		err := f()
		if err == nil {
			return nil
		}
		lastError = err

		var apiErr APIError
		if errors.As(err, &apiErr) && !ShouldRetry(apiErr.StatusCode()) {
			return err
		}
	}
	return lastError
}

// ShouldRetry reports whether the given status code should trigger a retry.
func ShouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusInternalServerError ||
		statusCode == http.StatusBadGateway ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}
