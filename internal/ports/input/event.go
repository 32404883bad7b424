package input

import (
	"context"

	"turfbot/internal/domain/entities"
)

// CreateEventRequest holds the accumulated selections of the creation flow.
type CreateEventRequest struct {
	GuildID     string
	CreatorID   string
	Type        entities.EventType
	Description string
	ChannelID   string
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*entities.Event, error)
	GetEvent(ctx context.Context, eventID string) (*entities.Event, error)
	Join(ctx context.Context, eventID, userID, displayName string) (bool, error)
	Leave(ctx context.Context, eventID, userID string) (bool, error)
	Assign(ctx context.Context, eventID string, cat entities.Category, userIDs []string) (bool, error)
	StartAssignmentSession(ctx context.Context, eventID, channelID string) (entities.Location, bool, error)
	DeleteEvent(ctx context.Context, eventID, actorID string) (bool, error)
	Expire(ctx context.Context, eventID string) (bool, error)
	LastFightEvent(ctx context.Context) (*entities.Event, error)
}
