package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, tag string, status int) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		fmt.Fprintf(w, `{"tag_name":%q}`, tag)
	}))
	t.Cleanup(srv.Close)
	return NewChecker(WithReleasesURL(srv.URL))
}

func TestCheckUpdateAvailable(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	result, err := c.Check(context.Background(), "v1.1.0")
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
}

func TestCheckAlreadyLatest(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	result, err := c.Check(context.Background(), "v1.2.0")
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckHandlesUnprefixedVersions(t *testing.T) {
	c := newTestChecker(t, "1.3.0", http.StatusOK)

	result, err := c.Check(context.Background(), "1.2.9")
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheckDevBuild(t *testing.T) {
	c := newTestChecker(t, "v1.0.0", http.StatusOK)

	_, err := c.Check(context.Background(), "(devel)")
	require.ErrorIs(t, err, ErrDevBuild)
}

func TestCheckFeedFailure(t *testing.T) {
	c := newTestChecker(t, "", http.StatusInternalServerError)

	_, err := c.Check(context.Background(), "v1.0.0")
	require.Error(t, err)
}

func TestCheckInvalidTag(t *testing.T) {
	c := newTestChecker(t, "nightly", http.StatusOK)

	_, err := c.Check(context.Background(), "v1.0.0")
	require.Error(t, err)
}
