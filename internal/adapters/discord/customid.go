package discord

import "strings"

// Custom IDs of the command flows. Event components are handled by the view
// package; these carry a creation session ID or, for the board flow, an event
// ID.
const (
	prefixNewType      = "turf_new_type_"
	prefixNewDesc      = "turf_new_desc_"
	prefixNewChannel   = "turf_new_channel_"
	prefixBoardChannel = "turf_board_channel_"

	descriptionInputID = "description"
)

type flowStep int

const (
	stepUnknown flowStep = iota
	stepNewType
	stepNewDescription
	stepNewChannel
	stepBoardChannel
)

var flowPrefixes = []struct {
	prefix string
	step   flowStep
}{
	{prefixNewType, stepNewType},
	{prefixNewDesc, stepNewDescription},
	{prefixNewChannel, stepNewChannel},
	{prefixBoardChannel, stepBoardChannel},
}

func flowID(prefix, id string) string {
	return prefix + id
}

// parseFlowID returns the step and the session or event ID of a flow custom ID.
func parseFlowID(customID string) (flowStep, string) {
	for _, f := range flowPrefixes {
		if id, ok := strings.CutPrefix(customID, f.prefix); ok && id != "" {
			return f.step, id
		}
	}
	return stepUnknown, ""
}
