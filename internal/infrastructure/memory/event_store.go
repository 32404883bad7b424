// Package memory holds the process-lifetime stores. Nothing here survives a
// restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"turfbot/internal/domain"
	"turfbot/internal/domain/entities"
	"turfbot/internal/ports/output"
)

var _ output.EventStore = (*EventStore)(nil)

// EventStore maps announcement message IDs to events. discordgo runs every
// handler on its own goroutine, so all access is serialized.
type EventStore struct {
	mu        sync.Mutex
	events    map[string]*entities.Event
	lastFight string
}

func NewEventStore() *EventStore {
	return &EventStore{events: make(map[string]*entities.Event)}
}

func (s *EventStore) Create(_ context.Context, event *entities.Event) error {
	if event == nil || event.ID == "" {
		return fmt.Errorf("create event: missing id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[event.ID]; ok {
		return fmt.Errorf("create event %s: already exists", event.ID)
	}
	s.events[event.ID] = event.Clone()
	return nil
}

func (s *EventStore) FindByID(_ context.Context, id string) (*entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return ev.Clone(), nil
}

// Mutate runs fn on a working copy and commits it only when fn succeeds.
func (s *EventStore) Mutate(_ context.Context, id string, fn func(*entities.Event) error) (*entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	work := ev.Clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	s.events[id] = work
	return work.Clone(), nil
}

func (s *EventStore) Delete(_ context.Context, id string) (*entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	delete(s.events, id)
	return ev, nil
}

func (s *EventStore) Count(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// SetLastFightEvent overwrites the pointer. Deleting the event does not clear
// it; readers check the id against the store.
func (s *EventStore) SetLastFightEvent(_ context.Context, id string) {
	s.mu.Lock()
	s.lastFight = id
	s.mu.Unlock()
}

func (s *EventStore) LastFightEvent(_ context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFight, s.lastFight != ""
}
