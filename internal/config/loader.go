package config

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "TURF_"

// Load builds a Config by layering, low to high precedence:
//  1. defaults (New)
//  2. YAML file if TURF_CONFIG is set
//  3. env vars with the TURF_ prefix (TURF_FIGHT_TTL -> fight_ttl)
//
// A .env file in the working directory is read into the environment first.
// DISCORD_TOKEN is honoured when no token is configured otherwise.
func Load(_ context.Context) (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, ...).
	_ = godotenv.Load()

	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv("DISCORD_TOKEN")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
