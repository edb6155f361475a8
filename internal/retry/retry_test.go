package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errBoom = errors.New("boom")

func fastConfig(attempts int) Config {
	return Config{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func neverTransient(error) bool { return false }

func TestDoSucceedsFirstTry(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), nil, func(ctx context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDoRetriesTransientUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(5), func(error) bool { return true }, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errBoom
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), func(error) bool { return true }, func(ctx context.Context) error {
		calls++
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want last error surfaced", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDoNonTransientSurfacesImmediately(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(5), neverTransient, func(ctx context.Context) error {
		calls++
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want errBoom", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on non-transient)", calls)
	}
}

func TestDoContextErrorNotRetried(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(5), func(error) bool { return true }, func(ctx context.Context) error {
		calls++
		return context.DeadlineExceeded
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDoStopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, Config{MaxAttempts: 10, BaseDelay: time.Hour}, func(error) bool { return true }, func(ctx context.Context) error {
		calls++
		cancel()
		return errBoom
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestBackoffDoubles(t *testing.T) {
	cfg := Config{MaxAttempts: 5, BaseDelay: 100 * time.Millisecond, MaxDelay: time.Hour}

	// Jitter is ±20%, so check the midpoint bands don't overlap.
	for attempt, ms := range []int{100, 200, 400, 800} {
		want := time.Duration(ms) * time.Millisecond
		got := backoff(cfg, attempt)
		lo := time.Duration(float64(want) * 0.8)
		hi := time.Duration(float64(want) * 1.2)
		if got < lo || got > hi {
			t.Errorf("backoff(attempt=%d) = %v, want within [%v, %v]", attempt, got, lo, hi)
		}
	}
}

func TestBackoffCapped(t *testing.T) {
	cfg := Config{MaxAttempts: 10, BaseDelay: time.Second, MaxDelay: 2 * time.Second}
	got := backoff(cfg, 8)
	if got > time.Duration(float64(cfg.MaxDelay)*1.2) {
		t.Errorf("backoff = %v, want capped near %v", got, cfg.MaxDelay)
	}
}

type hintedError struct{ after time.Duration }

func (e *hintedError) Error() string            { return "rate limited" }
func (e *hintedError) DelayHint() time.Duration { return e.after }

func TestWaitHonorsDelayHint(t *testing.T) {
	cfg := fastConfig(3)
	got := wait(cfg, 0, &hintedError{after: 42 * time.Millisecond})
	if got != 42*time.Millisecond {
		t.Errorf("wait = %v, want the hinted 42ms", got)
	}
}
