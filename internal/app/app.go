// Package app wires the pipeline together and maps the error taxonomy
// to process exit codes for the external scheduler.
package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clanwatch/clanwatch/internal/config"
	"github.com/clanwatch/clanwatch/internal/cycle"
	"github.com/clanwatch/clanwatch/internal/notify"
	"github.com/clanwatch/clanwatch/internal/retry"
	"github.com/clanwatch/clanwatch/internal/roster"
	"github.com/clanwatch/clanwatch/internal/source"
	"github.com/clanwatch/clanwatch/internal/store"
)

// Run executes one cycle with the given configuration and database
// path. It owns the store lifetime for the duration of the cycle.
func Run(ctx context.Context, cfg *config.Config, dbPath string) error {
	setupLogging(cfg.LogLevel)

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	policy := store.ArchiveDelete
	if cfg.KeepDeparted {
		policy = store.ArchiveDeactivate
	}
	repo := st.Roster(policy)

	retryCfg := retry.Config{
		MaxAttempts: cfg.RetryAttempts,
		BaseDelay:   cfg.RetryBaseDelay,
		MaxDelay:    30 * time.Second,
	}

	src := source.NewClient(cfg.SourceURL, source.WithRetry(retryCfg))
	notifier := notify.NewDiscord(notify.DiscordConfig{
		BaseURL:   cfg.DiscordBaseURL,
		Token:     cfg.DiscordToken,
		ChannelID: cfg.ChannelID,
		GuildID:   cfg.GuildID,
		RoleID:    cfg.RoleID,
		Retry:     retryCfg,
	})
	engine := roster.NewEngine(repo)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	orch := cycle.New(src, engine, repo, notifier)
	_, err = orch.RunCycle(ctx)
	return err
}

func setupLogging(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
