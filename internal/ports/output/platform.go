package output

import (
	"context"
	"errors"

	"turfbot/internal/domain/entities"
	"turfbot/internal/domain/view"
)

// ErrMessageNotFound is returned when the addressed message or its channel no
// longer exists.
var ErrMessageNotFound = errors.New("message not found")

// MessagingPlatform is the chat platform seen from the core. Failures other
// than ErrMessageNotFound wrap domain.ErrPlatformUnavailable.
type MessagingPlatform interface {
	SendMessage(ctx context.Context, channelID string, v view.View) (messageID string, err error)
	EditMessage(ctx context.Context, loc entities.Location, v view.View) error
	DeleteMessage(ctx context.Context, loc entities.Location) error
	FetchMessage(ctx context.Context, loc entities.Location) error
	Authorizer
}

// Authorizer answers capability questions about guild members.
type Authorizer interface {
	IsAdmin(ctx context.Context, guildID, userID string) (bool, error)
}
