// Package config loads the process configuration from CLANWATCH_*
// environment variables into an immutable struct passed to the rest of
// the pipeline at construction.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full configuration surface.
type Config struct {
	// SourceURL is the clan hiscores page to scrape.
	SourceURL string `env:"CLANWATCH_SOURCE_URL"`

	// DBPath is the SQLite database file. Empty selects the default
	// XDG data path.
	DBPath string `env:"CLANWATCH_DB"`

	// RetryAttempts and RetryBaseDelay parameterize the shared backoff
	// schedule used by the fetcher and the notifier.
	RetryAttempts  int           `env:"CLANWATCH_RETRY_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay time.Duration `env:"CLANWATCH_RETRY_BASE_DELAY" envDefault:"500ms"`

	// Discord target identifiers.
	DiscordToken   string `env:"CLANWATCH_DISCORD_TOKEN"`
	DiscordBaseURL string `env:"CLANWATCH_DISCORD_API"`
	ChannelID      string `env:"CLANWATCH_CHANNEL_ID"`
	GuildID        string `env:"CLANWATCH_GUILD_ID"`
	RoleID         string `env:"CLANWATCH_ROLE_ID"`

	// KeepDeparted switches the archive policy from delete-with-cascade
	// to deactivation, preserving score history across rejoins.
	KeepDeparted bool `env:"CLANWATCH_KEEP_DEPARTED"`

	// Timeout bounds one whole cycle.
	Timeout time.Duration `env:"CLANWATCH_TIMEOUT" envDefault:"2m"`

	// LogLevel controls audit log verbosity: debug, info, warn, error.
	LogLevel string `env:"CLANWATCH_LOG_LEVEL" envDefault:"info"`
}

// ValidationError reports an unusable configuration value. It maps to
// its own process exit code so schedulers can tell misconfiguration
// apart from runtime failures.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, &ValidationError{Field: "environment", Reason: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every value a cycle depends on is present.
func (c *Config) Validate() error {
	switch {
	case c.SourceURL == "":
		return &ValidationError{Field: "CLANWATCH_SOURCE_URL", Reason: "required"}
	case c.DiscordToken == "":
		return &ValidationError{Field: "CLANWATCH_DISCORD_TOKEN", Reason: "required"}
	case c.ChannelID == "":
		return &ValidationError{Field: "CLANWATCH_CHANNEL_ID", Reason: "required"}
	case c.GuildID == "":
		return &ValidationError{Field: "CLANWATCH_GUILD_ID", Reason: "required"}
	case c.RoleID == "":
		return &ValidationError{Field: "CLANWATCH_ROLE_ID", Reason: "required"}
	case c.RetryAttempts < 1:
		return &ValidationError{Field: "CLANWATCH_RETRY_ATTEMPTS", Reason: "must be at least 1"}
	case c.RetryBaseDelay <= 0:
		return &ValidationError{Field: "CLANWATCH_RETRY_BASE_DELAY", Reason: "must be positive"}
	case c.Timeout <= 0:
		return &ValidationError{Field: "CLANWATCH_TIMEOUT", Reason: "must be positive"}
	}
	return nil
}
