package output

import (
	"context"

	"turfbot/internal/domain/entities"
)

// EventStore owns every live event. Returned events are copies; changes go
// through Mutate.
type EventStore interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	// Mutate applies fn to the stored event atomically and returns a copy of
	// the result.
	Mutate(ctx context.Context, id string, fn func(*entities.Event) error) (*entities.Event, error)
	Delete(ctx context.Context, id string) (*entities.Event, error)
	Count(ctx context.Context) int
	SetLastFightEvent(ctx context.Context, id string)
	LastFightEvent(ctx context.Context) (string, bool)
}

// SessionStore keeps in-progress creation flows.
type SessionStore interface {
	Save(ctx context.Context, session *entities.CreationSession) error
	Find(ctx context.Context, id string) (*entities.CreationSession, error)
	Delete(ctx context.Context, id string)
}
