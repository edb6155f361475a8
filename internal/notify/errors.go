package notify

import (
	"errors"
	"fmt"
	"time"
)

// AuthError indicates the chat platform rejected our credentials or
// permissions (401/403). Never retried; fatal when raised during the
// mandatory publish step, counted when raised during a marker update.
type AuthError struct {
	Op     string
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("notifier %s: not authorized (status %d)", e.Op, e.Status)
}

// RateLimitError indicates a 429 response. Transient; RetryAfter is
// honored when the platform provided it.
type RateLimitError struct {
	Op         string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("notifier %s: rate limited (retry after %s)", e.Op, e.RetryAfter)
}

// DelayHint lets the retry loop honor the platform's Retry-After.
func (e *RateLimitError) DelayHint() time.Duration { return e.RetryAfter }

// APIError covers any other non-success response from the platform.
// Server-side statuses are transient, the rest are not.
type APIError struct {
	Op     string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notifier %s: status %d: %s", e.Op, e.Status, e.Body)
}

// IsTransient classifies notifier errors for the retry loop.
func IsTransient(err error) bool {
	var auth *AuthError
	if errors.As(err, &auth) {
		return false
	}
	if errors.Is(err, ErrMemberNotFound) {
		return false
	}
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return true
	}
	var api *APIError
	if errors.As(err, &api) {
		return api.Status >= 500
	}
	// Network-level failures are worth retrying.
	return true
}
