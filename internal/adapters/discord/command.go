package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"turfbot/internal/domain"
	"turfbot/internal/domain/entities"
	"turfbot/internal/domain/view"
	"turfbot/pkg/logger"
	pkgdiscord "turfbot/pkg/discord"
)

// HandleAnnounce opens a creation session and asks for the event type.
func (h *Handler) HandleAnnounce(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	ctx := context.Background()
	i := ic.Interaction
	user := interactionUser(i)
	if user == nil {
		return
	}
	sess, err := h.creation.Begin(ctx, i.GuildID, user.ID)
	if err != nil {
		h.log.Error(ctx, "begin creation failed", logger.String("user_id", user.ID), logger.Error(err))
		h.respondEphemeral(s, i, h.t(i, pkgdiscord.DomainErrorKey(err), nil))
		return
	}

	options := make([]view.Option, 0, 2)
	for _, typ := range []entities.EventType{entities.EventTypeFight, entities.EventTypeLineup} {
		options = append(options, view.Option{Label: h.t(i, "create_type_"+string(typ), nil), Value: string(typ)})
	}
	h.respondEphemeral(s, i, h.t(i, "create_prompt_type", nil),
		pkgdiscord.StringSelect(flowID(prefixNewType, sess.ID), h.t(i, "create_type_placeholder", nil), options))
}

// HandleBoard asks where to post the assignment board of the last fight.
func (h *Handler) HandleBoard(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	ctx := context.Background()
	i := ic.Interaction
	ev, err := h.events.LastFightEvent(ctx)
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		h.respondEphemeral(s, i, h.t(i, "board_no_event", nil))
		return
	case err != nil:
		h.log.Error(ctx, "resolve last fight failed", logger.Error(err))
		h.respondEphemeral(s, i, h.t(i, pkgdiscord.DomainErrorKey(err), nil))
		return
	}
	h.respondEphemeral(s, i, h.t(i, "board_prompt_channel", nil),
		pkgdiscord.ChannelSelect(flowID(prefixBoardChannel, ev.ID), h.t(i, "board_channel_placeholder", nil)))
}
