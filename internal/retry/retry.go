// Package retry provides the shared retry-with-backoff routine used by
// the hiscores fetcher and the Discord notifier.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// Config controls the backoff schedule.
type Config struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int
	// BaseDelay is the wait before the second attempt; each further
	// attempt doubles it.
	BaseDelay time.Duration
	// MaxDelay caps the computed wait. Zero means no cap.
	MaxDelay time.Duration
}

// DefaultConfig returns the schedule used when none is configured.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    30 * time.Second,
	}
}

// Do runs op until it succeeds, fails non-transiently, or exhausts
// cfg.MaxAttempts. transient classifies errors: a false return surfaces
// the error immediately without further attempts. Context errors are
// never retried. The last error is returned after exhaustion.
func Do(ctx context.Context, cfg Config, transient func(error) bool, op func(context.Context) error) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := range cfg.MaxAttempts {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if transient != nil && !transient(err) {
			return err
		}

		// Last attempt — don't sleep, just return the error.
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait(cfg, attempt, err)):
		}
	}
	return lastErr
}

// DelayHinter is implemented by errors carrying a server-provided wait
// (e.g. a rate-limit response); the hint overrides the backoff schedule.
type DelayHinter interface {
	DelayHint() time.Duration
}

func wait(cfg Config, attempt int, err error) time.Duration {
	var h DelayHinter
	if errors.As(err, &h) {
		if d := h.DelayHint(); d > 0 {
			return d
		}
	}
	return backoff(cfg, attempt)
}

// backoff computes the wait after the given zero-based attempt:
// BaseDelay·2^attempt with ±20% jitter, capped at MaxDelay.
func backoff(cfg Config, attempt int) time.Duration {
	wait := float64(cfg.BaseDelay) * math.Pow(2, float64(attempt))
	if cfg.MaxDelay > 0 && wait > float64(cfg.MaxDelay) {
		wait = float64(cfg.MaxDelay)
	}

	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
