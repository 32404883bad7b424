package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"turfbot/internal/adapters/discord"
	"turfbot/internal/adapters/http/api"
	"turfbot/internal/application"
	"turfbot/internal/config"
	"turfbot/internal/domain/entities"
	"turfbot/internal/domain/view"
	"turfbot/internal/infrastructure/database"
	"turfbot/internal/infrastructure/i18n"
	"turfbot/internal/infrastructure/memory"
	"turfbot/internal/ports/output"
	"turfbot/pkg/logger"
	"turfbot/pkg/metrics"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "bot stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	translator, err := i18n.NewTranslator(cfg.Locale, log.Named("i18n"))
	if err != nil {
		return err
	}
	m := metrics.NewManager()

	var journal output.EventJournal
	if cfg.DatabaseURL != "" {
		if err := database.RunMigrations(ctx, cfg.DatabaseURL, log.Named("database")); err != nil {
			return err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log.Named("database"))
		if err != nil {
			return err
		}
		defer pool.Close()
		journal = database.NewJournalRepository(pool)
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return err
	}
	platform := discord.NewPlatform(session)
	renderer := view.NewRenderer(translator.For(cfg.Locale), cfg.LogoURL)

	events := application.NewEventService(memory.NewEventStore(), platform, renderer,
		application.WithLogger(log.Named("events")),
		application.WithMetrics(m),
		application.WithJournal(journal),
		application.WithTTL(entities.EventTypeFight, cfg.TTL(entities.EventTypeFight)),
		application.WithTTL(entities.EventTypeLineup, cfg.TTL(entities.EventTypeLineup)),
	)
	defer events.Shutdown()

	creation := application.NewCreationService(memory.NewSessionStore(cfg.CreationSessionTTL, nil), events, nil)
	router := application.NewInteractionRouter(events, platform, log.Named("router"), m)
	handler := discord.NewHandler(router, events, creation, translator, log.Named("discord"))
	bot := discord.NewBot(session, cfg.GuildID, cfg.Locale, translator, handler, log.Named("bot"))

	if cfg.MetricsAddr != "" {
		srv := startHTTP(ctx, cfg.MetricsAddr, api.NewServer(events, m.Handler(), log.Named("http")), log)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error(shutdownCtx, "http shutdown failed", logger.Error(err))
			}
		}()
	}

	return bot.Start(ctx)
}

func startHTTP(ctx context.Context, addr string, server *api.Server, log logger.Logger) *http.Server {
	mux := http.NewServeMux()
	server.Register(mux)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "http server failed", logger.Error(err))
		}
	}()
	return srv
}
