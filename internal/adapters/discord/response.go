package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"turfbot/internal/application"
	"turfbot/pkg/logger"
)

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

// interactionUser returns the acting user for guild and DM interactions.
func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func displayName(i *discordgo.Interaction) string {
	if name := resolveDisplayName(i.Member); name != "" {
		return name
	}
	if u := interactionUser(i); u != nil {
		if u.GlobalName != "" {
			return u.GlobalName
		}
		return u.Username
	}
	return ""
}

// t renders a catalog entry in the interacting user's locale.
func (h *Handler) t(i *discordgo.Interaction, key string, data map[string]any) string {
	return h.translator.T(string(i.Locale), key, data)
}

// replyText renders a router reply, translating Localized values first.
func (h *Handler) replyText(i *discordgo.Interaction, r application.Reply) string {
	var data map[string]any
	if r.Data != nil {
		data = make(map[string]any, len(r.Data))
		for k, v := range r.Data {
			if l, ok := v.(application.Localized); ok {
				v = h.t(i, string(l), nil)
			}
			data[k] = v
		}
	}
	return h.t(i, r.Key, data)
}

func (h *Handler) respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string, components ...discordgo.MessageComponent) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		h.log.Warn(context.Background(), "interaction response failed", logger.String("interaction_id", i.ID), logger.Error(err))
	}
}

// deferEphemeral acknowledges the interaction so slow work can follow.
func (h *Handler) deferEphemeral(s *discordgo.Session, i *discordgo.Interaction) bool {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		h.log.Warn(context.Background(), "interaction defer failed", logger.String("interaction_id", i.ID), logger.Error(err))
		return false
	}
	return true
}

// editDeferred replaces the deferred placeholder with the final text.
func (h *Handler) editDeferred(ctx context.Context, s *discordgo.Session, i *discordgo.Interaction, content string) {
	empty := []discordgo.MessageComponent{}
	if _, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{
		Content:    &content,
		Components: &empty,
	}, discordgo.WithContext(ctx)); err != nil {
		h.log.Warn(ctx, "interaction edit failed", logger.String("interaction_id", i.ID), logger.Error(err))
	}
}
