// Package source fetches and parses the clan hiscores page into the
// per-cycle observation snapshot.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clanwatch/clanwatch/internal/retry"
	"github.com/clanwatch/clanwatch/internal/roster"
)

// Client fetches the hiscores page over HTTP with retry on transient
// failures.
type Client struct {
	url   string
	http  *http.Client
	retry retry.Config
	now   func() time.Time
	log   *logrus.Entry
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithRetry overrides the retry schedule.
func WithRetry(cfg retry.Config) ClientOption {
	return func(c *Client) { c.retry = cfg }
}

// WithClock overrides the observation timestamp source, for tests.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) { c.now = now }
}

// NewClient creates a Client for the given hiscores page URL.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:   url,
		http:  &http.Client{Timeout: 30 * time.Second},
		retry: retry.DefaultConfig(),
		now:   time.Now,
		log:   logrus.WithField("component", "source"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the current snapshot. Transient failures are retried;
// once exhausted they degrade to an empty snapshot ("no data this
// cycle") rather than an error. Non-transient failures return a
// FetchError.
func (c *Client) Fetch(ctx context.Context) ([]roster.Observation, error) {
	var observations []roster.Observation

	err := retry.Do(ctx, c.retry, isTransient, func(ctx context.Context) error {
		obs, err := c.fetchOnce(ctx)
		if err != nil {
			return err
		}
		observations = obs
		return nil
	})
	if err != nil {
		if isTransient(err) {
			c.log.WithError(err).Warn("fetch retries exhausted, treating as empty snapshot")
			return nil, nil
		}
		return nil, err
	}

	return observations, nil
}

func (c *Client) fetchOnce(ctx context.Context) ([]roster.Observation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &transientError{err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to parse.
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, &transientError{err: fmt.Errorf("status %d", resp.StatusCode)}
	default:
		return nil, &FetchError{URL: c.url, Status: resp.StatusCode}
	}

	observations, err := ParseRoster(resp.Body, c.now())
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: fmt.Errorf("parse page: %w", err)}
	}
	return observations, nil
}

func isTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}
