package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"turfbot/internal/ports/output"
	"turfbot/pkg/logger"
)

const (
	commandAnnounce = "announce"
	commandBoard    = "einteilung"
)

// Bot is the Discord adapter.
type Bot struct {
	session    *discordgo.Session
	guildID    string
	locale     string
	translator output.Translator
	handler    *Handler
	log        logger.Logger
}

// NewBot attaches the interaction handler to the session. Commands are
// registered in guildID, or globally when it is empty.
func NewBot(s *discordgo.Session, guildID, locale string, translator output.Translator, handler *Handler, log logger.Logger) *Bot {
	if log == nil {
		log = logger.Nop()
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	bot := &Bot{
		session:    s,
		guildID:    guildID,
		locale:     locale,
		translator: translator,
		handler:    handler,
		log:        log,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.log.Info(context.Background(), "gateway ready",
			logger.String("user", r.User.Username),
			logger.Int("guilds", len(r.Guilds)))
	})
}

func (b *Bot) handleInteraction(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		switch ic.ApplicationCommandData().Name {
		case commandAnnounce:
			b.handler.HandleAnnounce(s, ic)
		case commandBoard:
			b.handler.HandleBoard(s, ic)
		}
	case discordgo.InteractionModalSubmit:
		b.handler.HandleModalSubmit(s, ic)
	case discordgo.InteractionMessageComponent:
		b.handler.HandleComponent(s, ic)
	}
}

func (b *Bot) commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{Name: commandAnnounce, Description: b.translator.T(b.locale, "command_announce", nil)},
		{Name: commandBoard, Description: b.translator.T(b.locale, "command_board", nil)},
	}
}

// Start opens the gateway, registers the slash commands and blocks until ctx
// is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway session: %w", err)
	}
	defer func() {
		if err := b.session.Close(); err != nil {
			b.log.Warn(context.Background(), "gateway close failed", logger.Error(err))
		}
	}()

	appID := b.session.State.User.ID
	for _, cmd := range b.commands() {
		if _, err := b.session.ApplicationCommandCreate(appID, b.guildID, cmd, discordgo.WithContext(ctx)); err != nil {
			b.log.Warn(ctx, "command registration failed", logger.String("command", cmd.Name), logger.Error(err))
		}
	}

	b.log.Info(ctx, "bot online", logger.String("guild_id", b.guildID))
	<-ctx.Done()
	b.log.Info(context.Background(), "bot stopping")
	return nil
}
