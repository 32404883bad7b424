package entities

import "time"

// CreationSession carries the selections of an in-progress /announce flow
// between its steps.
type CreationSession struct {
	ID          string
	GuildID     string
	UserID      string
	Type        EventType
	Description string
	CreatedAt   time.Time
}

// Ready reports whether the session holds everything needed to create an event.
func (s *CreationSession) Ready() bool {
	return s.Type != "" && s.Description != ""
}
