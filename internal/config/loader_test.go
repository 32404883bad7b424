package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"TURF_CONFIG", "TURF_TOKEN", "TURF_GUILD_ID", "TURF_FIGHT_TTL", "TURF_LINEUP_TTL",
	"TURF_LOCALE", "TURF_METRICS_ADDR", "TURF_DATABASE_URL", "DISCORD_TOKEN",
}

func clearConfigEnvVars() {
	for _, k := range configEnvVars {
		_ = os.Unsetenv(k)
	}
}

func TestConfigLoader(t *testing.T) {
	Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		Reset(clearConfigEnvVars)

		Convey("When no token is available", func() {
			_, err := Load(ctx)

			Convey("Then loading fails", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When only DISCORD_TOKEN is set", func() {
			_ = os.Setenv("DISCORD_TOKEN", "from-discord-env")
			cfg, err := Load(ctx)

			Convey("Then it is used with the defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Token, ShouldEqual, "from-discord-env")
				So(cfg.FightTTL, ShouldEqual, 12*time.Hour)
			})
		})

		Convey("When environment variables are set", func() {
			_ = os.Setenv("TURF_TOKEN", "tok")
			_ = os.Setenv("DISCORD_TOKEN", "ignored")
			_ = os.Setenv("TURF_FIGHT_TTL", "6h")
			_ = os.Setenv("TURF_GUILD_ID", "123")
			_ = os.Setenv("TURF_METRICS_ADDR", ":9090")
			cfg, err := Load(ctx)

			Convey("Then they override the defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Token, ShouldEqual, "tok")
				So(cfg.FightTTL, ShouldEqual, 6*time.Hour)
				So(cfg.LineupTTL, ShouldEqual, 24*time.Hour)
				So(cfg.GuildID, ShouldEqual, "123")
				So(cfg.MetricsAddr, ShouldEqual, ":9090")
			})
		})

		Convey("When a YAML file is given", func() {
			path := filepath.Join(t.TempDir(), "turf.yaml")
			content := "token: file-token\nlineup_ttl: 30m\nlocale: en\n"
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
			_ = os.Setenv("TURF_CONFIG", path)
			_ = os.Setenv("TURF_LOCALE", "de")
			cfg, err := Load(ctx)

			Convey("Then file values apply and env still wins", func() {
				So(err, ShouldBeNil)
				So(cfg.Token, ShouldEqual, "file-token")
				So(cfg.LineupTTL, ShouldEqual, 30*time.Minute)
				So(cfg.Locale, ShouldEqual, "de")
			})
		})

		Convey("When the YAML file is missing", func() {
			_ = os.Setenv("TURF_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
			_, err := Load(ctx)

			Convey("Then loading fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
