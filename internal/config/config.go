// Package config defines the bot configuration and how it is loaded.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"turfbot/internal/domain/entities"
)

const defaultLogoURL = "https://cdn.discordapp.com/attachments/1416457141740503050/1416457187428925510/skandinavien_tribe.png"

type Config struct {
	// Token is the Discord bot token.
	Token string `koanf:"token"`

	// GuildID scopes slash command registration; empty registers globally.
	GuildID string `koanf:"guild_id"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Locale is used for the public views and as the fallback for replies.
	Locale string `koanf:"locale"`

	FightTTL           time.Duration `koanf:"fight_ttl"`
	LineupTTL          time.Duration `koanf:"lineup_ttl"`
	CreationSessionTTL time.Duration `koanf:"creation_session_ttl"`

	LogoURL string `koanf:"logo_url"`

	// MetricsAddr enables /metrics and /healthz when set, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	// DatabaseURL enables the event journal when set.
	DatabaseURL string `koanf:"database_url"`
}

// New returns the defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Locale:             "de",
		FightTTL:           entities.FightTTL,
		LineupTTL:          entities.LineupTTL,
		CreationSessionTTL: 15 * time.Minute,
		LogoURL:            defaultLogoURL,
	}
}

// TTL returns the lifetime configured for an event type.
func (c *Config) TTL(t entities.EventType) time.Duration {
	if t == entities.EventTypeFight {
		return c.FightTTL
	}
	return c.LineupTTL
}

// validate checks the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: token is required (TURF_TOKEN or DISCORD_TOKEN)")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: guild_id must be a Discord guild ID (digits only)")
		}
	}

	if c.FightTTL <= 0 || c.LineupTTL <= 0 {
		return fmt.Errorf("config: fight_ttl and lineup_ttl must be positive")
	}
	if c.CreationSessionTTL <= 0 {
		return fmt.Errorf("config: creation_session_ttl must be positive")
	}

	if strings.TrimSpace(c.DatabaseURL) != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid database_url (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid database_url (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	return nil
}
