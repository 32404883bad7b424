package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"turfbot/internal/domain"
	"turfbot/internal/domain/entities"
	"turfbot/internal/domain/view"
	"turfbot/internal/ports/output"
	pkgdiscord "turfbot/pkg/discord"
)

var _ output.MessagingPlatform = (*Platform)(nil)

// Platform implements the messaging port on a discordgo session.
type Platform struct {
	session *discordgo.Session
}

func NewPlatform(s *discordgo.Session) *Platform {
	return &Platform{session: s}
}

func (p *Platform) SendMessage(ctx context.Context, channelID string, v view.View) (string, error) {
	msg, err := p.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildEmbed(v)},
		Components: pkgdiscord.BuildComponents(v),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", mapError("send", err)
	}
	return msg.ID, nil
}

func (p *Platform) EditMessage(ctx context.Context, loc entities.Location, v view.View) error {
	embeds := []*discordgo.MessageEmbed{pkgdiscord.BuildEmbed(v)}
	components := pkgdiscord.BuildComponents(v)
	_, err := p.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         loc.MessageID,
		Channel:    loc.ChannelID,
		Embeds:     &embeds,
		Components: &components,
	}, discordgo.WithContext(ctx))
	return mapError("edit", err)
}

func (p *Platform) DeleteMessage(ctx context.Context, loc entities.Location) error {
	return mapError("delete", p.session.ChannelMessageDelete(loc.ChannelID, loc.MessageID, discordgo.WithContext(ctx)))
}

func (p *Platform) FetchMessage(ctx context.Context, loc entities.Location) error {
	_, err := p.session.ChannelMessage(loc.ChannelID, loc.MessageID, discordgo.WithContext(ctx))
	return mapError("fetch", err)
}

// IsAdmin reports whether the member owns the guild or holds a role with the
// Administrator permission. The state cache is tried before REST.
func (p *Platform) IsAdmin(ctx context.Context, guildID, userID string) (bool, error) {
	guild, err := p.session.State.Guild(guildID)
	if err != nil {
		if guild, err = p.session.Guild(guildID, discordgo.WithContext(ctx)); err != nil {
			return false, mapError("guild", err)
		}
	}
	if guild.OwnerID == userID {
		return true, nil
	}
	member, err := p.session.State.Member(guildID, userID)
	if err != nil {
		if member, err = p.session.GuildMember(guildID, userID, discordgo.WithContext(ctx)); err != nil {
			return false, mapError("member", err)
		}
	}
	return hasAdminRole(guild.Roles, guildID, member.Roles), nil
}

// hasAdminRole checks the member's roles and the implicit @everyone role,
// whose ID equals the guild ID.
func hasAdminRole(roles []*discordgo.Role, guildID string, memberRoles []string) bool {
	held := make(map[string]struct{}, len(memberRoles)+1)
	held[guildID] = struct{}{}
	for _, id := range memberRoles {
		held[id] = struct{}{}
	}
	for _, r := range roles {
		if _, ok := held[r.ID]; ok && r.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}
	return false
}

// mapError turns discordgo failures into the port's error values.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var rest *discordgo.RESTError
	if errors.As(err, &rest) {
		if rest.Message != nil {
			switch rest.Message.Code {
			case discordgo.ErrCodeUnknownMessage, discordgo.ErrCodeUnknownChannel:
				return fmt.Errorf("%s: %w: %w", op, output.ErrMessageNotFound, err)
			}
		}
		if rest.Response != nil && rest.Response.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w: %w", op, output.ErrMessageNotFound, err)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPlatformUnavailable, err)
}
