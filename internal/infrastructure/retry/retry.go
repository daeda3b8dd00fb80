// Package retry provides a generic retry mechanism with exponential backoff.
// It lives entirely in the I/O layer: the analysis pipeline itself never
// retries anything.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the maximum number of attempts, including the first.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay grows after each retry.
	Multiplier float64

	// JitterFactor is the fraction of random jitter added to each delay
	// (0.1 means up to 10%).
	JitterFactor float64

	// RetryIf is an optional predicate deciding whether an error is
	// retryable. If nil, all errors are retried.
	RetryIf func(error) bool
}

// DefaultConfig provides sensible defaults for retry behavior.
var DefaultConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
}

// SourceConfig is tuned for remote history-source fetches.
var SourceConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// Do executes the function with retry logic.
// It returns nil if the function succeeds, or the last error if all
// attempts fail or the error is not retryable.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleepTime(delay, cfg.MaxDelay, cfg.JitterFactor)):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return lastErr
}

// sleepTime caps the delay and applies jitter.
func sleepTime(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	if maxDelay > 0 && delay > maxDelay {
		delay = maxDelay
	}
	if jitterFactor > 0 {
		jitter := time.Duration(rand.Float64() * jitterFactor * float64(delay))
		delay += jitter
	}
	return delay
}
