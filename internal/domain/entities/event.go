package entities

import (
	"slices"
	"time"

	"turfbot/internal/domain"
)

// EventType is fixed at creation.
type EventType string

const (
	EventTypeFight  EventType = "fight"
	EventTypeLineup EventType = "lineup"
)

// Default lifetimes, measured from creation.
const (
	FightTTL  = 12 * time.Hour
	LineupTTL = 24 * time.Hour
)

func ParseEventType(s string) (EventType, error) {
	switch t := EventType(s); t {
	case EventTypeFight, EventTypeLineup:
		return t, nil
	}
	return "", domain.ErrInvalidEventType
}

// Category is one of the assignment buckets of the board.
type Category string

const (
	CategoryMass      Category = "mass"
	CategoryAnti      Category = "anti"
	CategoryFreestyle Category = "freestyle"
)

// Categories lists every category in board order.
var Categories = []Category{CategoryMass, CategoryAnti, CategoryFreestyle}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if slices.Contains(Categories, c) {
		return c, nil
	}
	return "", domain.ErrInvalidCategory
}

// Location addresses a message on the platform.
type Location struct {
	ChannelID string
	MessageID string
}

func (l Location) IsZero() bool {
	return l.ChannelID == "" || l.MessageID == ""
}

// Event is the authoritative record of one turf event. Its ID is the message
// ID of the announcement.
type Event struct {
	ID           string
	GuildID      string
	CreatorID    string
	Type         EventType
	Description  string
	Participants []Participant        // join order
	Categories   map[Category][]string // assignment order
	Announce     Location
	Assignment   *Location // nil until an assignment board is posted
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// NewEvent builds an event with no participants and empty categories.
func NewEvent(id, guildID, creatorID string, typ EventType, description string, announce Location, createdAt time.Time, ttl time.Duration) *Event {
	cats := make(map[Category][]string, len(Categories))
	for _, c := range Categories {
		cats[c] = nil
	}
	return &Event{
		ID:          id,
		GuildID:     guildID,
		CreatorID:   creatorID,
		Type:        typ,
		Description: description,
		Categories:  cats,
		Announce:    announce,
		CreatedAt:   createdAt,
		ExpiresAt:   createdAt.Add(ttl),
	}
}

func (e *Event) HasParticipant(userID string) bool {
	return slices.ContainsFunc(e.Participants, func(p Participant) bool { return p.UserID == userID })
}

// Participant returns the participant entry for userID.
func (e *Event) Participant(userID string) (Participant, bool) {
	for _, p := range e.Participants {
		if p.UserID == userID {
			return p, true
		}
	}
	return Participant{}, false
}

// Join adds userID to the participants. It reports whether the event changed.
func (e *Event) Join(userID, displayName string, at time.Time) bool {
	if userID == "" || e.HasParticipant(userID) {
		return false
	}
	e.Participants = append(e.Participants, Participant{UserID: userID, DisplayName: displayName, JoinedAt: at})
	return true
}

// Leave removes userID from the participants and from every category.
func (e *Event) Leave(userID string) bool {
	before := len(e.Participants)
	e.Participants = slices.DeleteFunc(e.Participants, func(p Participant) bool { return p.UserID == userID })
	changed := len(e.Participants) != before
	if e.unassign(userID, "") {
		changed = true
	}
	return changed
}

// Assign moves every listed participant into cat, removing them from any
// other category. IDs that are not participants are skipped.
func (e *Event) Assign(cat Category, userIDs []string) bool {
	changed := false
	for _, id := range userIDs {
		if !e.HasParticipant(id) {
			continue
		}
		if e.unassign(id, cat) {
			changed = true
		}
		if !slices.Contains(e.Categories[cat], id) {
			e.Categories[cat] = append(e.Categories[cat], id)
			changed = true
		}
	}
	return changed
}

// unassign removes userID from every category except keep.
func (e *Event) unassign(userID string, keep Category) bool {
	changed := false
	for c, members := range e.Categories {
		if c == keep {
			continue
		}
		if i := slices.Index(members, userID); i >= 0 {
			e.Categories[c] = slices.Delete(members, i, i+1)
			changed = true
		}
	}
	return changed
}

// CategoryOf returns the category userID is assigned to.
func (e *Event) CategoryOf(userID string) (Category, bool) {
	for _, c := range Categories {
		if slices.Contains(e.Categories[c], userID) {
			return c, true
		}
	}
	return "", false
}

func (e *Event) HasAssignmentBoard() bool {
	return e.Assignment != nil && !e.Assignment.IsZero()
}

// Locations returns every rendered message of the event.
func (e *Event) Locations() []Location {
	locs := []Location{e.Announce}
	if e.HasAssignmentBoard() {
		locs = append(locs, *e.Assignment)
	}
	return locs
}

// Clone returns a deep copy safe to read outside the store.
func (e *Event) Clone() *Event {
	c := *e
	c.Participants = slices.Clone(e.Participants)
	c.Categories = make(map[Category][]string, len(e.Categories))
	for k, v := range e.Categories {
		c.Categories[k] = slices.Clone(v)
	}
	if e.Assignment != nil {
		loc := *e.Assignment
		c.Assignment = &loc
	}
	return &c
}
