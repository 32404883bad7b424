package memory

import (
	"context"
	"sync"
	"time"

	"turfbot/internal/domain"
	"turfbot/internal/domain/entities"
	"turfbot/internal/ports/output"
)

var _ output.SessionStore = (*SessionStore)(nil)

// SessionStore keeps creation sessions for ttl. Expired sessions are dropped
// lazily on every Save and reported as missing by Find.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*entities.CreationSession
}

func NewSessionStore(ttl time.Duration, now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{ttl: ttl, now: now, sessions: make(map[string]*entities.CreationSession)}
}

func (s *SessionStore) Save(_ context.Context, session *entities.CreationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
		}
	}
	c := *session
	s.sessions[session.ID] = &c
	return nil
}

func (s *SessionStore) Find(_ context.Context, id string) (*entities.CreationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess, s.now()) {
		delete(s.sessions, id)
		return nil, domain.ErrSessionNotFound
	}
	c := *sess
	return &c, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) expired(sess *entities.CreationSession, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.CreatedAt) > s.ttl
}
