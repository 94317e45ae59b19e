package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrAttemptsExhausted is returned when Poll runs out of attempts.
var ErrAttemptsExhausted = errors.New("attempts exhausted")

// Config holds polling configuration.
type Config struct {
	MaxAttempts int
	Interval    time.Duration
}

// Option is a functional option for poll configuration.
type Option func(*Config)

// CheckFunc inspects remote state once. It returns done=true when the
// awaited condition holds. A non-nil error stops polling immediately.
type CheckFunc func(ctx context.Context, attempt int) (done bool, err error)

// Poll calls check until it reports done, returns an error, or MaxAttempts
// checks have been made. Between checks it waits Interval. It does not wait
// after the final attempt. Context cancellation is respected between attempts.
func Poll(ctx context.Context, check CheckFunc, opts ...Option) error {
	cfg := &Config{
		MaxAttempts: 15,
		Interval:    10 * time.Second,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		done, err := check(ctx, attempt)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		if attempt < cfg.MaxAttempts {
			timer := time.NewTimer(cfg.Interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return fmt.Errorf("context cancelled after %d attempts: %w", attempt, ctx.Err())
			case <-timer.C:
			}
		}
	}

	return fmt.Errorf("gave up after %d attempts: %w", cfg.MaxAttempts, ErrAttemptsExhausted)
}

// WithMaxAttempts sets the maximum number of checks.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// WithInterval sets the wait between checks.
func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}
