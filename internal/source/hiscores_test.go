package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanwatch/clanwatch/internal/retry"
)

const rosterPage = `<html><body>
<table class="clan-hiscores">
  <tr><th>Name</th><th>Rank</th><th>Score</th></tr>
  <tr><td>Alice</td><td>Leader</td><td>1,234,567</td></tr>
  <tr><td>Bob</td><td>Member</td><td>890</td></tr>
  <tr><td colspan="3">decorative row</td></tr>
</table>
</body></html>`

func fastRetry(attempts int) retry.Config {
	return retry.Config{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestParseRoster(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	observations, err := ParseRoster(strings.NewReader(rosterPage), now)
	require.NoError(t, err)
	require.Len(t, observations, 2)

	assert.Equal(t, "Alice", observations[0].Name)
	assert.Equal(t, 1234567, observations[0].Score)
	assert.Equal(t, now, observations[0].ObservedAt)
	assert.Equal(t, "Bob", observations[1].Name)
	assert.Equal(t, 890, observations[1].Score)
}

func TestParseRosterNoMembers(t *testing.T) {
	pages := []string{
		`<html><body><p>maintenance</p></body></html>`,
		`<html><body><table><tr><th>Name</th><th>Score</th></tr></table></body></html>`,
		``,
	}
	for _, page := range pages {
		observations, err := ParseRoster(strings.NewReader(page), time.Now())
		require.NoError(t, err)
		assert.Empty(t, observations, "page %q", page)
	}
}

func TestFetchParsesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rosterPage))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetry(fastRetry(1)))
	observations, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, observations, 2)
	assert.Equal(t, "Alice", observations[0].Name)
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(rosterPage))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetry(fastRetry(5)))
	observations, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, observations, 2)
	assert.Equal(t, 3, calls)
}

func TestFetchExhaustedRetriesMeansNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetry(fastRetry(2)))
	observations, err := client.Fetch(context.Background())
	require.NoError(t, err, "exhausted transient retries degrade to an empty snapshot")
	assert.Empty(t, observations)
}

func TestFetchClientErrorIsFatal(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetry(fastRetry(5)))
	_, err := client.Fetch(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
	assert.Equal(t, 1, calls, "client errors must not be retried")
}
