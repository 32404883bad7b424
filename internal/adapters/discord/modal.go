package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"turfbot/pkg/logger"
	pkgdiscord "turfbot/pkg/discord"
)

// HandleModalSubmit takes the description of a creation session and asks for
// the target channel.
func (h *Handler) HandleModalSubmit(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	ctx := context.Background()
	i := ic.Interaction
	data := i.ModalSubmitData()
	step, sessionID := parseFlowID(data.CustomID)
	if step != stepNewDescription {
		h.log.Debug(ctx, "unknown modal", logger.String("custom_id", data.CustomID))
		return
	}
	user := interactionUser(i)
	if user == nil {
		return
	}
	desc := pkgdiscord.ExtractTextInput(data, descriptionInputID)
	if _, err := h.creation.Describe(ctx, sessionID, user.ID, desc); err != nil {
		h.log.Info(ctx, "description rejected", logger.String("session_id", sessionID), logger.Error(err))
		h.respondEphemeral(s, i, h.t(i, pkgdiscord.DomainErrorKey(err), nil))
		return
	}
	h.respondEphemeral(s, i, h.t(i, "create_prompt_channel", nil),
		pkgdiscord.ChannelSelect(flowID(prefixNewChannel, sessionID), h.t(i, "create_channel_placeholder", nil)))
}
