package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"turfbot/internal/domain"
	"turfbot/pkg/logger"
	pkgdiscord "turfbot/pkg/discord"
)

const descriptionMaxLength = 1000

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// handleTypeSelected stores the event type and opens the description modal.
func (h *Handler) handleTypeSelected(s *discordgo.Session, i *discordgo.Interaction, sessionID string, values []string) {
	ctx := context.Background()
	user := interactionUser(i)
	if user == nil {
		return
	}
	if _, err := h.creation.ChooseType(ctx, sessionID, user.ID, firstValue(values)); err != nil {
		h.log.Info(ctx, "type selection rejected", logger.String("session_id", sessionID), logger.Error(err))
		h.respondEphemeral(s, i, h.t(i, pkgdiscord.DomainErrorKey(err), nil))
		return
	}
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: flowID(prefixNewDesc, sessionID),
			Title:    h.t(i, "create_modal_title", nil),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  descriptionInputID,
						Label:     h.t(i, "create_modal_label", nil),
						Style:     discordgo.TextInputParagraph,
						Required:  true,
						MaxLength: descriptionMaxLength,
					},
				}},
			},
		},
	})
	if err != nil {
		h.log.Warn(ctx, "modal response failed", logger.String("session_id", sessionID), logger.Error(err))
	}
}

// handleCreateChannel completes the creation flow in the chosen channel.
func (h *Handler) handleCreateChannel(s *discordgo.Session, i *discordgo.Interaction, sessionID string, values []string) {
	user := interactionUser(i)
	if user == nil || !h.deferEphemeral(s, i) {
		return
	}
	ctx := context.Background()
	ev, err := h.creation.Complete(ctx, sessionID, user.ID, firstValue(values))
	if err != nil {
		h.log.Error(ctx, "create event failed", logger.String("session_id", sessionID), logger.Error(err))
		h.editDeferred(ctx, s, i, h.t(i, pkgdiscord.DomainErrorKey(err), nil))
		return
	}
	typeLabel := h.t(i, "create_type_"+string(ev.Type), nil)
	h.editDeferred(ctx, s, i, h.t(i, "create_started", map[string]any{"Type": typeLabel}))
}

// handleBoardChannel posts the assignment board in the chosen channel.
func (h *Handler) handleBoardChannel(s *discordgo.Session, i *discordgo.Interaction, eventID string, values []string) {
	if !h.deferEphemeral(s, i) {
		return
	}
	ctx := context.Background()
	_, created, err := h.events.StartAssignmentSession(ctx, eventID, firstValue(values))
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		h.editDeferred(ctx, s, i, h.t(i, "board_no_event", nil))
	case err != nil:
		h.log.Error(ctx, "start assignment failed", logger.String("event_id", eventID), logger.Error(err))
		h.editDeferred(ctx, s, i, h.t(i, pkgdiscord.DomainErrorKey(err), nil))
	case !created:
		h.editDeferred(ctx, s, i, h.t(i, "board_already_started", nil))
	default:
		h.editDeferred(ctx, s, i, h.t(i, "board_started", nil))
	}
}
