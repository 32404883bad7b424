package discord

import "github.com/bwmarrin/discordgo"

// ExtractTextInput returns the value of the text input with customID, or ""
// when the modal has no such field.
func ExtractTextInput(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}
