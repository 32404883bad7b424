package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"turfbot/internal/domain"
	"turfbot/internal/domain/entities"
	"turfbot/internal/ports/input"
	"turfbot/internal/ports/output"
)

var _ input.CreationUseCase = (*CreationService)(nil)

// CreationService walks a user through type -> description -> channel. The
// selections travel in an explicit session keyed by an opaque ID that the
// adapter embeds in component custom IDs.
type CreationService struct {
	sessions output.SessionStore
	events   input.EventUseCase
	now      func() time.Time
}

func NewCreationService(sessions output.SessionStore, events input.EventUseCase, now func() time.Time) *CreationService {
	if now == nil {
		now = time.Now
	}
	return &CreationService{sessions: sessions, events: events, now: now}
}

func (s *CreationService) Begin(ctx context.Context, guildID, userID string) (*entities.CreationSession, error) {
	sess := &entities.CreationSession{
		ID:        uuid.NewString(),
		GuildID:   guildID,
		UserID:    userID,
		CreatedAt: s.now(),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *CreationService) ChooseType(ctx context.Context, sessionID, userID, eventType string) (*entities.CreationSession, error) {
	typ, err := entities.ParseEventType(eventType)
	if err != nil {
		return nil, err
	}
	sess, err := s.find(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	sess.Type = typ
	return sess, s.sessions.Save(ctx, sess)
}

func (s *CreationService) Describe(ctx context.Context, sessionID, userID, description string) (*entities.CreationSession, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}
	sess, err := s.find(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	sess.Description = description
	return sess, s.sessions.Save(ctx, sess)
}

// Complete creates the event in channelID and ends the session.
func (s *CreationService) Complete(ctx context.Context, sessionID, userID, channelID string) (*entities.Event, error) {
	sess, err := s.find(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if !sess.Ready() {
		return nil, domain.ErrSessionIncomplete
	}
	ev, err := s.events.CreateEvent(ctx, input.CreateEventRequest{
		GuildID:     sess.GuildID,
		CreatorID:   sess.UserID,
		Type:        sess.Type,
		Description: sess.Description,
		ChannelID:   channelID,
	})
	if err != nil {
		return nil, err
	}
	s.sessions.Delete(ctx, sessionID)
	return ev, nil
}

// find only hands a session to the user who started it.
func (s *CreationService) find(ctx context.Context, sessionID, userID string) (*entities.CreationSession, error) {
	sess, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.UserID != userID {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}
