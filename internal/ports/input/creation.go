package input

import (
	"context"

	"turfbot/internal/domain/entities"
)

// CreationUseCase drives the step-by-step /announce flow.
type CreationUseCase interface {
	Begin(ctx context.Context, guildID, userID string) (*entities.CreationSession, error)
	ChooseType(ctx context.Context, sessionID, userID, eventType string) (*entities.CreationSession, error)
	Describe(ctx context.Context, sessionID, userID, description string) (*entities.CreationSession, error)
	Complete(ctx context.Context, sessionID, userID, channelID string) (*entities.Event, error)
}
