package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/clanwatch/clanwatch/internal/retry"
	"github.com/clanwatch/clanwatch/internal/roster"
)

type fakeGuild struct {
	t        *testing.T
	messages []string
	roles    map[string][]string // user id -> role ids
	members  map[string]string   // name -> user id

	failPublish int // respond with this status on publish when non-zero
	publishTrys int
}

func (g *fakeGuild) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /channels/{channel}/messages", func(w http.ResponseWriter, r *http.Request) {
		g.publishTrys++
		if g.failPublish != 0 {
			w.WriteHeader(g.failPublish)
			return
		}
		var body struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			g.t.Errorf("decode message body: %v", err)
		}
		g.messages = append(g.messages, body.Content)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{}`)
	})

	mux.HandleFunc("GET /guilds/{guild}/members/search", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		id, ok := g.members[query]
		if !ok {
			fmt.Fprint(w, `[]`)
			return
		}
		fmt.Fprintf(w, `[{"nick":%q,"user":{"id":%q,"username":%q}}]`, query, id, query)
	})

	mux.HandleFunc("PUT /guilds/{guild}/members/{user}/roles/{role}", func(w http.ResponseWriter, r *http.Request) {
		user, role := r.PathValue("user"), r.PathValue("role")
		for _, have := range g.roles[user] {
			if have == role {
				// Granting an already-held role is a platform no-op.
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		g.roles[user] = append(g.roles[user], role)
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("DELETE /guilds/{guild}/members/{user}/roles/{role}", func(w http.ResponseWriter, r *http.Request) {
		user, role := r.PathValue("user"), r.PathValue("role")
		var kept []string
		for _, have := range g.roles[user] {
			if have != role {
				kept = append(kept, have)
			}
		}
		g.roles[user] = kept
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

func newTestDiscord(t *testing.T, guild *fakeGuild) (*Discord, *httptest.Server) {
	t.Helper()
	guild.t = t
	if guild.roles == nil {
		guild.roles = map[string][]string{}
	}
	if guild.members == nil {
		guild.members = map[string]string{}
	}
	srv := httptest.NewServer(guild.handler())
	t.Cleanup(srv.Close)

	d := NewDiscord(DiscordConfig{
		BaseURL:   srv.URL,
		Token:     "test-token",
		ChannelID: "chan1",
		GuildID:   "guild1",
		RoleID:    "role1",
		Retry:     retry.Config{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond},
	})
	return d, srv
}

func TestPublishChangeSummary(t *testing.T) {
	guild := &fakeGuild{}
	d, _ := newTestDiscord(t, guild)

	changes := []roster.ChangeEvent{
		{Name: "Alice", OldScore: 1000, NewScore: 1200, Delta: 200},
		{Name: "Bob", OldScore: 500, NewScore: 450, Delta: -50},
	}
	if err := d.PublishChangeSummary(context.Background(), changes); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(guild.messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(guild.messages))
	}
	msg := guild.messages[0]
	if !strings.Contains(msg, "Alice: 1,000 → 1,200 (+200)") {
		t.Errorf("message missing Alice line: %q", msg)
	}
	if !strings.Contains(msg, "Bob: 500 → 450 (-50)") {
		t.Errorf("message missing Bob line: %q", msg)
	}
}

func TestPublishRetriesServerError(t *testing.T) {
	guild := &fakeGuild{failPublish: http.StatusBadGateway}
	d, _ := newTestDiscord(t, guild)

	err := d.PublishInitialSnapshot(context.Background(), []roster.Observation{{Name: "Alice", Score: 100}})
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if guild.publishTrys != 3 {
		t.Errorf("attempts = %d, want 3", guild.publishTrys)
	}
}

func TestPublishAuthErrorNotRetried(t *testing.T) {
	guild := &fakeGuild{failPublish: http.StatusForbidden}
	d, _ := newTestDiscord(t, guild)

	err := d.PublishInitialSnapshot(context.Background(), []roster.Observation{{Name: "Alice", Score: 100}})

	var auth *AuthError
	if !errors.As(err, &auth) {
		t.Fatalf("err = %v, want AuthError", err)
	}
	if guild.publishTrys != 1 {
		t.Errorf("attempts = %d, auth errors must not be retried", guild.publishTrys)
	}
}

func TestGrantMarker(t *testing.T) {
	guild := &fakeGuild{members: map[string]string{"Alice": "42"}}
	d, _ := newTestDiscord(t, guild)

	if err := d.GrantMarker(context.Background(), "Alice"); err != nil {
		t.Fatalf("grant: %v", err)
	}
	if got := guild.roles["42"]; len(got) != 1 || got[0] != "role1" {
		t.Errorf("roles = %v, want [role1]", got)
	}

	// Granting again is a no-op, not an error.
	if err := d.GrantMarker(context.Background(), "Alice"); err != nil {
		t.Fatalf("second grant: %v", err)
	}
}

func TestGrantMarkerUnknownMemberFails(t *testing.T) {
	guild := &fakeGuild{}
	d, _ := newTestDiscord(t, guild)

	err := d.GrantMarker(context.Background(), "Stranger")
	if !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("err = %v, want ErrMemberNotFound", err)
	}
}

func TestRevokeMarker(t *testing.T) {
	guild := &fakeGuild{
		members: map[string]string{"Bob": "7"},
		roles:   map[string][]string{"7": {"role1"}},
	}
	d, _ := newTestDiscord(t, guild)

	if err := d.RevokeMarker(context.Background(), "Bob"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if got := guild.roles["7"]; len(got) != 0 {
		t.Errorf("roles = %v, want none", got)
	}
}

func TestRevokeMarkerUnknownMemberIsNoOp(t *testing.T) {
	guild := &fakeGuild{}
	d, _ := newTestDiscord(t, guild)

	if err := d.RevokeMarker(context.Background(), "Ghost"); err != nil {
		t.Fatalf("revoking an absent member must be a no-op, got %v", err)
	}
}

func TestPublishSplitsLongMessages(t *testing.T) {
	guild := &fakeGuild{}
	d, _ := newTestDiscord(t, guild)

	var observations []roster.Observation
	for i := range 200 {
		observations = append(observations, roster.Observation{
			Name:  fmt.Sprintf("MemberWithALongName%03d", i),
			Score: i * 1000,
		})
	}
	if err := d.PublishInitialSnapshot(context.Background(), observations); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(guild.messages) < 2 {
		t.Fatalf("messages = %d, want the announcement chunked", len(guild.messages))
	}
	for i, m := range guild.messages {
		if len(m) > maxMessageLen {
			t.Errorf("chunk %d is %d bytes, exceeds limit", i, len(m))
		}
	}
}
