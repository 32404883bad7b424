package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"turfbot/internal/domain"
	"turfbot/internal/domain/entities"
	"turfbot/internal/domain/view"
	"turfbot/internal/ports/input"
	"turfbot/internal/ports/output"
	"turfbot/pkg/logger"
	"turfbot/pkg/metrics"
)

var _ input.EventUseCase = (*EventService)(nil)

// EventService is the event state machine. Every mutation is applied to the
// store first; pushing the views afterwards is best effort and never undoes it.
type EventService struct {
	store     output.EventStore
	renderer  *view.Renderer
	platform  output.MessagingPlatform
	sync      *ViewSynchronizer
	scheduler *ExpiryScheduler
	journal   output.EventJournal
	metrics   *metrics.Manager
	log       logger.Logger
	now       func() time.Time
	ttl       map[entities.EventType]time.Duration
}

type Option func(*EventService)

func WithLogger(l logger.Logger) Option {
	return func(s *EventService) {
		if l != nil {
			s.log = l
		}
	}
}

func WithMetrics(m *metrics.Manager) Option {
	return func(s *EventService) { s.metrics = m }
}

func WithJournal(j output.EventJournal) Option {
	return func(s *EventService) {
		if j != nil {
			s.journal = j
		}
	}
}

func WithScheduler(sch *ExpiryScheduler) Option {
	return func(s *EventService) {
		if sch != nil {
			s.scheduler = sch
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *EventService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTTL overrides the lifetime of one event type.
func WithTTL(t entities.EventType, d time.Duration) Option {
	return func(s *EventService) {
		if d > 0 {
			s.ttl[t] = d
		}
	}
}

func NewEventService(store output.EventStore, platform output.MessagingPlatform, renderer *view.Renderer, opts ...Option) *EventService {
	s := &EventService{
		store:    store,
		renderer: renderer,
		platform: platform,
		journal:  nopJournal{},
		log:      logger.Nop(),
		now:      time.Now,
		ttl: map[entities.EventType]time.Duration{
			entities.EventTypeFight:  entities.FightTTL,
			entities.EventTypeLineup: entities.LineupTTL,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.scheduler == nil {
		s.scheduler = NewExpiryScheduler(nil)
	}
	s.sync = NewViewSynchronizer(platform, renderer, s.log.Named("sync"), s.metrics)
	return s
}

// CreateEvent posts the announcement and registers the event under the ID of
// the posted message. The first post has no buttons; they are attached by the
// refresh that follows, once the ID is known.
func (s *EventService) CreateEvent(ctx context.Context, req input.CreateEventRequest) (*entities.Event, error) {
	typ, err := entities.ParseEventType(string(req.Type))
	if err != nil {
		return nil, err
	}
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		return nil, domain.ErrEmptyDescription
	}
	if req.ChannelID == "" {
		return nil, fmt.Errorf("create event: missing channel")
	}

	ttl := s.ttl[typ]
	ev := entities.NewEvent("", req.GuildID, req.CreatorID, typ, desc,
		entities.Location{ChannelID: req.ChannelID}, s.now(), ttl)

	msgID, err := s.platform.SendMessage(ctx, req.ChannelID, s.renderer.Announce(ev))
	if err != nil {
		return nil, fmt.Errorf("send announcement: %w", err)
	}
	ev.ID = msgID
	ev.Announce.MessageID = msgID

	if err := s.store.Create(ctx, ev); err != nil {
		return nil, err
	}
	if typ == entities.EventTypeFight {
		s.store.SetLastFightEvent(ctx, ev.ID)
	}
	id := ev.ID
	s.scheduler.Schedule(id, ttl, func() {
		_, _ = s.Expire(context.Background(), id)
	})

	s.metrics.EventCreated(string(typ))
	s.metrics.SetActiveEvents(s.store.Count(ctx))
	s.record(ctx, ev, output.JournalCreated, req.CreatorID)
	s.log.Info(ctx, "event created",
		logger.String("event_id", id),
		logger.String("type", string(typ)),
		logger.String("channel_id", req.ChannelID),
		logger.Any("expires_at", ev.ExpiresAt))

	s.sync.Refresh(ctx, ev)
	return ev.Clone(), nil
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (*entities.Event, error) {
	return s.store.FindByID(ctx, eventID)
}

// Join adds the user to the participants. A missing event returns
// domain.ErrEventNotFound and changes nothing.
func (s *EventService) Join(ctx context.Context, eventID, userID, displayName string) (bool, error) {
	return s.apply(ctx, eventID, func(ev *entities.Event) bool {
		return ev.Join(userID, displayName, s.now())
	})
}

// Leave removes the user from the participants and from every category.
func (s *EventService) Leave(ctx context.Context, eventID, userID string) (bool, error) {
	return s.apply(ctx, eventID, func(ev *entities.Event) bool {
		return ev.Leave(userID)
	})
}

// Assign moves the users into cat. Concurrent calls are last-write-wins.
func (s *EventService) Assign(ctx context.Context, eventID string, cat entities.Category, userIDs []string) (bool, error) {
	if _, err := entities.ParseCategory(string(cat)); err != nil {
		return false, err
	}
	return s.apply(ctx, eventID, func(ev *entities.Event) bool {
		return ev.Assign(cat, userIDs)
	})
}

func (s *EventService) apply(ctx context.Context, eventID string, fn func(*entities.Event) bool) (bool, error) {
	changed := false
	ev, err := s.store.Mutate(ctx, eventID, func(ev *entities.Event) error {
		changed = fn(ev)
		return nil
	})
	if err != nil {
		return false, err
	}
	if changed {
		s.sync.Refresh(ctx, ev)
	}
	return changed, nil
}

// StartAssignmentSession posts the assignment board for the event. An event
// gets at most one board: later calls return the existing location and
// created=false.
func (s *EventService) StartAssignmentSession(ctx context.Context, eventID, channelID string) (entities.Location, bool, error) {
	ev, err := s.store.FindByID(ctx, eventID)
	if err != nil {
		return entities.Location{}, false, err
	}
	if ev.HasAssignmentBoard() {
		return *ev.Assignment, false, nil
	}

	msgID, err := s.platform.SendMessage(ctx, channelID, s.renderer.Assignment(ev))
	if err != nil {
		return entities.Location{}, false, fmt.Errorf("send assignment board: %w", err)
	}
	loc := entities.Location{ChannelID: channelID, MessageID: msgID}

	var existing *entities.Location
	updated, err := s.store.Mutate(ctx, eventID, func(ev *entities.Event) error {
		if ev.HasAssignmentBoard() {
			cur := *ev.Assignment
			existing = &cur
			return nil
		}
		ev.Assignment = &loc
		return nil
	})
	switch {
	case err != nil:
		// The event went away while the board was being posted.
		s.sync.Cleanup(ctx, loc)
		return entities.Location{}, false, err
	case existing != nil:
		s.sync.Cleanup(ctx, loc)
		return *existing, false, nil
	}

	s.record(ctx, updated, output.JournalSessionStarted, "")
	s.log.Info(ctx, "assignment board started",
		logger.String("event_id", eventID),
		logger.String("channel_id", channelID))
	s.sync.Refresh(ctx, updated)
	return loc, true, nil
}

// DeleteEvent removes the event and its views. Deleting an unknown event is a
// no-op that reports false.
func (s *EventService) DeleteEvent(ctx context.Context, eventID, actorID string) (bool, error) {
	return s.remove(ctx, eventID, output.JournalDeleted, actorID)
}

// Expire is DeleteEvent on behalf of the scheduler.
func (s *EventService) Expire(ctx context.Context, eventID string) (bool, error) {
	return s.remove(ctx, eventID, output.JournalExpired, "")
}

func (s *EventService) remove(ctx context.Context, eventID string, kind output.JournalKind, actorID string) (bool, error) {
	ev, err := s.store.Delete(ctx, eventID)
	if errors.Is(err, domain.ErrEventNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.scheduler.Cancel(eventID)

	s.metrics.EventRemoved(string(kind))
	s.metrics.SetActiveEvents(s.store.Count(ctx))
	s.record(ctx, ev, kind, actorID)
	s.log.Info(ctx, "event removed",
		logger.String("event_id", eventID),
		logger.String("reason", string(kind)),
		logger.Int("participants", len(ev.Participants)))

	s.sync.Cleanup(ctx, ev.Locations()...)
	return true, nil
}

// LastFightEvent resolves the last-fight pointer. A pointer to an event that
// no longer exists yields domain.ErrEventNotFound.
func (s *EventService) LastFightEvent(ctx context.Context) (*entities.Event, error) {
	id, ok := s.store.LastFightEvent(ctx)
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return s.store.FindByID(ctx, id)
}

// ActiveEvents returns the number of live events.
func (s *EventService) ActiveEvents(ctx context.Context) int {
	return s.store.Count(ctx)
}

// Shutdown stops every pending expiry.
func (s *EventService) Shutdown() {
	s.scheduler.Stop()
}

func (s *EventService) record(ctx context.Context, ev *entities.Event, kind output.JournalKind, actorID string) {
	err := s.journal.Record(ctx, output.JournalEntry{
		EventID:      ev.ID,
		GuildID:      ev.GuildID,
		EventType:    string(ev.Type),
		Kind:         kind,
		ActorID:      actorID,
		Participants: len(ev.Participants),
		RecordedAt:   s.now(),
	})
	if err != nil {
		s.metrics.JournalFailure()
		s.log.Warn(ctx, "journal write failed", logger.String("event_id", ev.ID), logger.Error(err))
	}
}

type nopJournal struct{}

func (nopJournal) Record(context.Context, output.JournalEntry) error { return nil }
