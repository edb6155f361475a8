package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clanwatch/clanwatch/internal/retry"
	"github.com/clanwatch/clanwatch/internal/roster"
)

// Discord message content limit.
const maxMessageLen = 2000

// ErrMemberNotFound indicates no guild member matched the roster name.
// Grant treats this as a failure; revoke treats it as a no-op.
var ErrMemberNotFound = errors.New("guild member not found")

// DiscordConfig holds the identifiers and credentials for the target
// guild. BaseURL is overridable for tests.
type DiscordConfig struct {
	BaseURL   string
	Token     string
	ChannelID string
	GuildID   string
	RoleID    string
	Retry     retry.Config
}

// Discord implements Notifier against the Discord REST API.
type Discord struct {
	cfg  DiscordConfig
	http *http.Client
	log  *logrus.Entry
}

// NewDiscord creates a Discord notifier.
func NewDiscord(cfg DiscordConfig, opts ...DiscordOption) *Discord {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://discord.com/api/v10"
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = retry.DefaultConfig()
	}
	d := &Discord{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
		log:  logrus.WithField("component", "notify"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a Discord notifier.
type DiscordOption func(*Discord)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) DiscordOption {
	return func(d *Discord) { d.http = hc }
}

func (d *Discord) PublishChangeSummary(ctx context.Context, changes []roster.ChangeEvent) error {
	return d.publish(ctx, FormatChangeSummary(changes))
}

func (d *Discord) PublishInitialSnapshot(ctx context.Context, observations []roster.Observation) error {
	return d.publish(ctx, FormatInitialSnapshot(observations))
}

// publish posts content to the configured channel, splitting on line
// boundaries when it exceeds the platform's message length limit.
func (d *Discord) publish(ctx context.Context, content string) error {
	for _, chunk := range splitMessage(content, maxMessageLen) {
		body, err := json.Marshal(map[string]string{"content": chunk})
		if err != nil {
			return fmt.Errorf("encode message: %w", err)
		}
		err = retry.Do(ctx, d.cfg.Retry, IsTransient, func(ctx context.Context) error {
			path := fmt.Sprintf("/channels/%s/messages", d.cfg.ChannelID)
			return d.call(ctx, "publish", http.MethodPost, path, body, nil)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *Discord) GrantMarker(ctx context.Context, name string) error {
	return retry.Do(ctx, d.cfg.Retry, IsTransient, func(ctx context.Context) error {
		id, err := d.resolveMember(ctx, name)
		if err != nil {
			return err
		}
		path := fmt.Sprintf("/guilds/%s/members/%s/roles/%s", d.cfg.GuildID, id, d.cfg.RoleID)
		return d.call(ctx, "grant marker", http.MethodPut, path, nil, nil)
	})
}

func (d *Discord) RevokeMarker(ctx context.Context, name string) error {
	err := retry.Do(ctx, d.cfg.Retry, IsTransient, func(ctx context.Context) error {
		id, err := d.resolveMember(ctx, name)
		if err != nil {
			return err
		}
		path := fmt.Sprintf("/guilds/%s/members/%s/roles/%s", d.cfg.GuildID, id, d.cfg.RoleID)
		return d.call(ctx, "revoke marker", http.MethodDelete, path, nil, nil)
	})
	if errors.Is(err, ErrMemberNotFound) {
		// Nothing to revoke from; not an error.
		d.log.WithField("name", name).Debug("revoke skipped, member not in guild")
		return nil
	}
	return err
}

// resolveMember maps a roster name to a guild user ID via the member
// search endpoint. Exact (case-insensitive) matches on nickname or
// username win; otherwise the first result is taken.
func (d *Discord) resolveMember(ctx context.Context, name string) (string, error) {
	path := fmt.Sprintf("/guilds/%s/members/search?query=%s&limit=10",
		d.cfg.GuildID, url.QueryEscape(name))

	var results []struct {
		Nick string `json:"nick"`
		User struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := d.call(ctx, "resolve member", http.MethodGet, path, nil, &results); err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("%w: %q", ErrMemberNotFound, name)
	}

	for _, r := range results {
		if strings.EqualFold(r.Nick, name) || strings.EqualFold(r.User.Username, name) {
			return r.User.ID, nil
		}
	}
	return results[0].User.ID, nil
}

// call performs one authenticated API request and decodes the response
// into out when it is non-nil.
func (d *Discord) call(ctx context.Context, op, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, d.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bot "+d.cfg.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("%s: decode response: %w", op, err)
			}
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{Op: op, Status: resp.StatusCode}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{Op: op, RetryAfter: retryAfter(resp)}
	default:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(payload))}
	}
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.ParseFloat(v, 64); err == nil {
			return time.Duration(secs * float64(time.Second))
		}
	}
	return 0
}

// splitMessage breaks content into chunks of at most limit bytes,
// preferring line boundaries.
func splitMessage(content string, limit int) []string {
	if len(content) <= limit {
		return []string{content}
	}

	var chunks []string
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		if b.Len() > 0 && b.Len()+len(line)+1 > limit {
			chunks = append(chunks, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}
