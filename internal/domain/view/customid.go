package view

import (
	"strings"

	"turfbot/internal/domain/entities"
)

// Action is the kind of activation a component id stands for.
type Action string

const (
	ActionJoin   Action = "join"
	ActionLeave  Action = "leave"
	ActionDelete Action = "delete"
	ActionAssign Action = "assign"
)

const customIDPrefix = "turf_"

// NoneOptionValue is the value of the placeholder option shown when an event
// has no participants.
const NoneOptionValue = "none"

func ButtonID(action Action, eventID string) string {
	return customIDPrefix + string(action) + "_" + eventID
}

func AssignID(cat entities.Category, eventID string) string {
	return customIDPrefix + string(ActionAssign) + "_" + string(cat) + "_" + eventID
}

// ComponentRef is a parsed event component id.
type ComponentRef struct {
	Action   Action
	Category entities.Category
	EventID  string
}

// ParseComponentID decodes ids built by ButtonID and AssignID.
func ParseComponentID(customID string) (ComponentRef, bool) {
	rest, ok := strings.CutPrefix(customID, customIDPrefix)
	if !ok {
		return ComponentRef{}, false
	}
	action, rest, ok := strings.Cut(rest, "_")
	if !ok || rest == "" {
		return ComponentRef{}, false
	}
	ref := ComponentRef{Action: Action(action)}
	switch ref.Action {
	case ActionJoin, ActionLeave, ActionDelete:
		ref.EventID = rest
	case ActionAssign:
		cat, id, ok := strings.Cut(rest, "_")
		if !ok || id == "" {
			return ComponentRef{}, false
		}
		c, err := entities.ParseCategory(cat)
		if err != nil {
			return ComponentRef{}, false
		}
		ref.Category, ref.EventID = c, id
	default:
		return ComponentRef{}, false
	}
	return ref, true
}
