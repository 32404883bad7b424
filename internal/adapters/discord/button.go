package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"turfbot/internal/application"
	"turfbot/internal/domain/view"
	"turfbot/pkg/logger"
)

// HandleComponent dispatches button and select activations.
func (h *Handler) HandleComponent(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	data := ic.MessageComponentData()
	if ref, ok := view.ParseComponentID(data.CustomID); ok {
		h.handleEventComponent(s, ic.Interaction, ref, data.Values)
		return
	}
	step, id := parseFlowID(data.CustomID)
	switch step {
	case stepNewType:
		h.handleTypeSelected(s, ic.Interaction, id, data.Values)
	case stepNewChannel:
		h.handleCreateChannel(s, ic.Interaction, id, data.Values)
	case stepBoardChannel:
		h.handleBoardChannel(s, ic.Interaction, id, data.Values)
	default:
		h.log.Debug(context.Background(), "unknown component", logger.String("custom_id", data.CustomID))
	}
}

// handleEventComponent routes join, leave, delete and category selects. The
// reply is deferred because the router pushes both views before returning.
func (h *Handler) handleEventComponent(s *discordgo.Session, i *discordgo.Interaction, ref view.ComponentRef, values []string) {
	user := interactionUser(i)
	if user == nil {
		return
	}
	if !h.deferEphemeral(s, i) {
		return
	}
	ctx := context.Background()
	reply := h.router.Route(ctx, application.Action{
		Kind:        ref.Action,
		EventID:     ref.EventID,
		GuildID:     i.GuildID,
		UserID:      user.ID,
		DisplayName: displayName(i),
		Category:    ref.Category,
		Values:      values,
	})
	h.editDeferred(ctx, s, i, h.replyText(i, reply))
}
