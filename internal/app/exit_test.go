package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/clanwatch/clanwatch/internal/config"
	"github.com/clanwatch/clanwatch/internal/notify"
	"github.com/clanwatch/clanwatch/internal/source"
	"github.com/clanwatch/clanwatch/internal/store"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitOK},
		{"config", &config.ValidationError{Field: "CLANWATCH_SOURCE_URL", Reason: "required"}, ExitConfig},
		{"persistence", &store.PersistError{Op: "commit", Err: errors.New("disk full")}, ExitPersistence},
		{"fetch", &source.FetchError{URL: "https://x", Status: 404}, ExitFetch},
		{"notifier auth", &notify.AuthError{Op: "publish", Status: 403}, ExitNotifierAuth},
		{"timeout", context.DeadlineExceeded, ExitTimeout},
		{"wrapped persistence", fmt.Errorf("cycle: %w", &store.PersistError{Op: "tx", Err: errors.New("locked")}), ExitPersistence},
		{"unclassified", errors.New("something odd"), ExitFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOperatorMessage(t *testing.T) {
	if msg := OperatorMessage(nil); msg != "" {
		t.Errorf("nil error should yield no message, got %q", msg)
	}

	err := &config.ValidationError{Field: "CLANWATCH_DISCORD_TOKEN", Reason: "required"}
	msg := OperatorMessage(err)
	if msg == "" {
		t.Fatal("fatal errors must produce an operator message")
	}
}
