package discord

import (
	"github.com/bwmarrin/discordgo"

	"turfbot/internal/domain/view"
)

var buttonStyles = map[view.ButtonStyle]discordgo.ButtonStyle{
	view.ButtonSecondary: discordgo.SecondaryButton,
	view.ButtonSuccess:   discordgo.SuccessButton,
	view.ButtonDanger:    discordgo.DangerButton,
}

// BuildEmbed converts a rendered view into a Discord embed.
func BuildEmbed(v view.View) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       v.Title,
		Description: v.Body,
		Color:       v.Color,
	}
	for _, f := range v.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	if v.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: v.Footer}
	}
	if v.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: v.ImageURL}
	}
	return embed
}

// BuildComponents lays out the buttons of a view in one row and gives each
// select a row of its own.
func BuildComponents(v view.View) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	if len(v.Buttons) > 0 {
		row := discordgo.ActionsRow{}
		for _, b := range v.Buttons {
			style, ok := buttonStyles[b.Style]
			if !ok {
				style = discordgo.SecondaryButton
			}
			row.Components = append(row.Components, discordgo.Button{
				CustomID: b.CustomID,
				Label:    b.Label,
				Style:    style,
			})
		}
		rows = append(rows, row)
	}
	for _, s := range v.Selects {
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{buildSelect(s)}})
	}
	return rows
}

func buildSelect(s view.Select) discordgo.SelectMenu {
	minValues := s.MinValues
	menu := discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    s.CustomID,
		Placeholder: s.Placeholder,
		MinValues:   &minValues,
		MaxValues:   s.MaxValues,
	}
	for _, o := range s.Options {
		menu.Options = append(menu.Options, discordgo.SelectMenuOption{
			Label:   o.Label,
			Value:   o.Value,
			Default: o.Default,
		})
	}
	return menu
}

// ChannelSelect builds a single text channel picker row.
func ChannelSelect(customID, placeholder string) discordgo.ActionsRow {
	one := 1
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.SelectMenu{
			MenuType:     discordgo.ChannelSelectMenu,
			CustomID:     customID,
			Placeholder:  placeholder,
			MinValues:    &one,
			MaxValues:    1,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
	}}
}

// StringSelect builds a single-choice select row.
func StringSelect(customID, placeholder string, options []view.Option) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		buildSelect(view.Select{CustomID: customID, Placeholder: placeholder, Options: options, MinValues: 1, MaxValues: 1}),
	}}
}
