package entities

import "time"

// Participant represents a user who opted in to an event.
type Participant struct {
	UserID      string
	DisplayName string // captured at join, used for select labels
	JoinedAt    time.Time
}
