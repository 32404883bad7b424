package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"turfbot/internal/ports/output"
)

var _ output.EventJournal = (*JournalRepository)(nil)

// execer is the part of pgxpool.Pool the repository needs.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// JournalRepository appends lifecycle records to event_journal.
type JournalRepository struct {
	db execer
}

func NewJournalRepository(db execer) *JournalRepository {
	return &JournalRepository{db: db}
}

const insertJournalEntry = `
INSERT INTO event_journal (event_id, guild_id, event_type, kind, actor_id, participants, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now()))`

func (r *JournalRepository) Record(ctx context.Context, e output.JournalEntry) error {
	if _, err := r.db.Exec(ctx, insertJournalEntry, journalArgs(e)...); err != nil {
		return fmt.Errorf("record %s for event %s: %w", e.Kind, e.EventID, err)
	}
	return nil
}

func journalArgs(e output.JournalEntry) []any {
	return []any{
		e.EventID,
		e.GuildID,
		e.EventType,
		string(e.Kind),
		e.ActorID,
		int32(e.Participants),
		timeToTimestamptz(e.RecordedAt),
	}
}

// timeToTimestamptz maps the zero time to NULL, which the insert replaces
// with now().
func timeToTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}
