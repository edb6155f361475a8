package config

import (
	"errors"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		SourceURL:      "https://example.com/clan/hiscores",
		RetryAttempts:  3,
		RetryBaseDelay: 500 * time.Millisecond,
		DiscordToken:   "token",
		ChannelID:      "chan",
		GuildID:        "guild",
		RoleID:         "role",
		Timeout:        2 * time.Minute,
		LogLevel:       "info",
	}
}

func TestValidateOK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing source", func(c *Config) { c.SourceURL = "" }, "CLANWATCH_SOURCE_URL"},
		{"missing token", func(c *Config) { c.DiscordToken = "" }, "CLANWATCH_DISCORD_TOKEN"},
		{"missing channel", func(c *Config) { c.ChannelID = "" }, "CLANWATCH_CHANNEL_ID"},
		{"missing guild", func(c *Config) { c.GuildID = "" }, "CLANWATCH_GUILD_ID"},
		{"missing role", func(c *Config) { c.RoleID = "" }, "CLANWATCH_ROLE_ID"},
		{"zero attempts", func(c *Config) { c.RetryAttempts = 0 }, "CLANWATCH_RETRY_ATTEMPTS"},
		{"negative delay", func(c *Config) { c.RetryBaseDelay = -time.Second }, "CLANWATCH_RETRY_BASE_DELAY"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "CLANWATCH_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CLANWATCH_SOURCE_URL", "https://example.com/hiscores")
	t.Setenv("CLANWATCH_DISCORD_TOKEN", "tok")
	t.Setenv("CLANWATCH_CHANNEL_ID", "c1")
	t.Setenv("CLANWATCH_GUILD_ID", "g1")
	t.Setenv("CLANWATCH_ROLE_ID", "r1")
	t.Setenv("CLANWATCH_RETRY_ATTEMPTS", "5")
	t.Setenv("CLANWATCH_RETRY_BASE_DELAY", "250ms")
	t.Setenv("CLANWATCH_KEEP_DEPARTED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RetryAttempts != 5 {
		t.Errorf("retry attempts = %d, want 5", cfg.RetryAttempts)
	}
	if cfg.RetryBaseDelay != 250*time.Millisecond {
		t.Errorf("base delay = %v, want 250ms", cfg.RetryBaseDelay)
	}
	if !cfg.KeepDeparted {
		t.Error("keep departed should be set")
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("timeout = %v, want default 2m", cfg.Timeout)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("CLANWATCH_SOURCE_URL", "")
	t.Setenv("CLANWATCH_DISCORD_TOKEN", "")

	_, err := Load()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
