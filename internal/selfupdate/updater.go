// Package selfupdate checks GitHub releases for a newer clanwatch
// build. It only reports; deployments are refreshed by the operator.
package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var ErrDevBuild = errors.New("cannot check a development build")

const defaultReleasesURL = "https://api.github.com/repos/clanwatch/clanwatch/releases/latest"

// Checker queries the release feed.
type Checker struct {
	releasesURL string
	http        *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithReleasesURL overrides the release feed endpoint, for tests.
func WithReleasesURL(url string) Option {
	return func(c *Checker) { c.releasesURL = url }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.http.Timeout = d }
}

// NewChecker creates a Checker against the project's GitHub releases.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		releasesURL: defaultReleasesURL,
		http:        &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckResult describes the latest published release relative to the
// running build.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

// Check fetches the latest release tag and compares it to version.
func (c *Checker) Check(ctx context.Context, version string) (*CheckResult, error) {
	if version == "(devel)" {
		return nil, ErrDevBuild
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releasesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch latest release: status %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if release.TagName == "" {
		return nil, errors.New("release feed returned no tag")
	}

	current := canonical(version)
	latest := canonical(release.TagName)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("release tag %q is not a valid version", release.TagName)
	}

	return &CheckResult{
		CurrentVersion:  version,
		LatestVersion:   release.TagName,
		UpdateAvailable: !semver.IsValid(current) || semver.Compare(latest, current) > 0,
	}, nil
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
