package entities

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"turfbot/internal/domain"
)

func newTestEvent() *Event {
	created := time.Date(2026, 3, 6, 18, 0, 0, 0, time.UTC)
	return NewEvent("m1", "g1", "creator", EventTypeFight, "Friday clash", Location{ChannelID: "c1", MessageID: "m1"}, created, FightTTL)
}

func TestEventMembership(t *testing.T) {
	Convey("Given a fresh fight event", t, func() {
		ev := newTestEvent()
		now := time.Now()

		Convey("It expires 12 hours after creation", func() {
			So(ev.ExpiresAt.Sub(ev.CreatedAt), ShouldEqual, 12*time.Hour)
			So(ev.Categories, ShouldContainKey, CategoryMass)
			So(ev.Categories, ShouldContainKey, CategoryAnti)
			So(ev.Categories, ShouldContainKey, CategoryFreestyle)
		})

		Convey("Joining twice keeps a single entry", func() {
			So(ev.Join("u1", "Alice", now), ShouldBeTrue)
			So(ev.Join("u1", "Alice", now), ShouldBeFalse)
			So(len(ev.Participants), ShouldEqual, 1)
		})

		Convey("Join order is preserved", func() {
			ev.Join("u2", "Bob", now)
			ev.Join("u1", "Alice", now)
			So(ev.Participants[0].UserID, ShouldEqual, "u2")
			So(ev.Participants[1].UserID, ShouldEqual, "u1")
		})

		Convey("The last of a join/leave sequence wins", func() {
			ev.Join("u1", "Alice", now)
			ev.Leave("u1")
			ev.Join("u1", "Alice", now)
			So(ev.HasParticipant("u1"), ShouldBeTrue)
			ev.Leave("u1")
			So(ev.Leave("u1"), ShouldBeFalse)
			So(ev.HasParticipant("u1"), ShouldBeFalse)
		})

		Convey("Leaving purges every category", func() {
			ev.Join("u1", "Alice", now)
			ev.Assign(CategoryAnti, []string{"u1"})
			So(ev.Leave("u1"), ShouldBeTrue)
			for _, c := range Categories {
				So(ev.Categories[c], ShouldNotContain, "u1")
			}
		})

		Convey("Rejoining does not restore the previous category", func() {
			ev.Join("u1", "Alice", now)
			ev.Assign(CategoryMass, []string{"u1"})
			ev.Leave("u1")
			ev.Join("u1", "Alice", now)
			_, ok := ev.CategoryOf("u1")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestEventAssign(t *testing.T) {
	Convey("Given an event with three participants", t, func() {
		ev := newTestEvent()
		now := time.Now()
		ev.Join("u1", "Alice", now)
		ev.Join("u2", "Bob", now)
		ev.Join("u3", "Carol", now)

		Convey("Assignment is exclusive across categories", func() {
			ev.Assign(CategoryMass, []string{"u1", "u2"})
			ev.Assign(CategoryAnti, []string{"u2", "u3"})
			So(ev.Categories[CategoryMass], ShouldResemble, []string{"u1"})
			So(ev.Categories[CategoryAnti], ShouldResemble, []string{"u2", "u3"})

			for _, id := range []string{"u1", "u2", "u3"} {
				count := 0
				for _, c := range Categories {
					for _, m := range ev.Categories[c] {
						if m == id {
							count++
						}
					}
				}
				So(count, ShouldEqual, 1)
			}
		})

		Convey("Reassigning to the same category is a no-op", func() {
			So(ev.Assign(CategoryFreestyle, []string{"u1"}), ShouldBeTrue)
			So(ev.Assign(CategoryFreestyle, []string{"u1"}), ShouldBeFalse)
			So(ev.Categories[CategoryFreestyle], ShouldResemble, []string{"u1"})
		})

		Convey("Non-participants are never assigned", func() {
			So(ev.Assign(CategoryAnti, []string{"ghost"}), ShouldBeFalse)
			So(ev.Categories[CategoryAnti], ShouldBeEmpty)
		})

		Convey("Duplicate ids in one call are assigned once", func() {
			ev.Assign(CategoryAnti, []string{"u1", "u1"})
			So(ev.Categories[CategoryAnti], ShouldResemble, []string{"u1"})
		})
	})
}

func TestEventClone(t *testing.T) {
	Convey("A clone does not share state with the original", t, func() {
		ev := newTestEvent()
		ev.Join("u1", "Alice", time.Now())
		ev.Assign(CategoryMass, []string{"u1"})
		ev.Assignment = &Location{ChannelID: "c2", MessageID: "m2"}

		c := ev.Clone()
		c.Leave("u1")
		c.Assignment.MessageID = "other"

		So(ev.HasParticipant("u1"), ShouldBeTrue)
		So(ev.Categories[CategoryMass], ShouldResemble, []string{"u1"})
		So(ev.Assignment.MessageID, ShouldEqual, "m2")
		So(len(ev.Locations()), ShouldEqual, 2)
	})
}

func TestParse(t *testing.T) {
	Convey("Parsing types and categories", t, func() {
		typ, err := ParseEventType("lineup")
		So(err, ShouldBeNil)
		So(typ, ShouldEqual, EventTypeLineup)

		_, err = ParseEventType("party")
		So(err, ShouldEqual, domain.ErrInvalidEventType)

		cat, err := ParseCategory("anti")
		So(err, ShouldBeNil)
		So(cat, ShouldEqual, CategoryAnti)

		_, err = ParseCategory("none")
		So(err, ShouldEqual, domain.ErrInvalidCategory)
	})
}
