package output

import (
	"context"
	"time"
)

type JournalKind string

const (
	JournalCreated        JournalKind = "created"
	JournalSessionStarted JournalKind = "session_started"
	JournalDeleted        JournalKind = "deleted"
	JournalExpired        JournalKind = "expired"
)

// JournalEntry is one lifecycle record of an event.
type JournalEntry struct {
	EventID      string
	GuildID      string
	EventType    string
	Kind         JournalKind
	ActorID      string
	Participants int
	RecordedAt   time.Time
}

// EventJournal is an append-only audit trail. It is never read back into
// live state.
type EventJournal interface {
	Record(ctx context.Context, entry JournalEntry) error
}
