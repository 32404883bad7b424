package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"turfbot/internal/domain"
	"turfbot/internal/domain/entities"
)

func storedEvent(id string, typ entities.EventType) *entities.Event {
	return entities.NewEvent(id, "g1", "creator", typ, "desc",
		entities.Location{ChannelID: "c1", MessageID: id}, time.Now(), entities.FightTTL)
}

func TestEventStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		s := NewEventStore()

		Convey("Unknown ids report ErrEventNotFound", func() {
			_, err := s.FindByID(ctx, "nope")
			So(err, ShouldEqual, domain.ErrEventNotFound)
			_, err = s.Mutate(ctx, "nope", func(*entities.Event) error { return nil })
			So(err, ShouldEqual, domain.ErrEventNotFound)
			_, err = s.Delete(ctx, "nope")
			So(err, ShouldEqual, domain.ErrEventNotFound)
		})

		Convey("Created events can be read back as copies", func() {
			So(s.Create(ctx, storedEvent("1", entities.EventTypeFight)), ShouldBeNil)
			So(s.Create(ctx, storedEvent("1", entities.EventTypeFight)), ShouldNotBeNil)
			So(s.Count(ctx), ShouldEqual, 1)

			ev, err := s.FindByID(ctx, "1")
			So(err, ShouldBeNil)
			ev.Join("u1", "Alice", time.Now())

			again, _ := s.FindByID(ctx, "1")
			So(again.Participants, ShouldBeEmpty)
		})

		Convey("Mutate commits only on success", func() {
			_ = s.Create(ctx, storedEvent("1", entities.EventTypeFight))
			boom := errors.New("boom")
			_, err := s.Mutate(ctx, "1", func(ev *entities.Event) error {
				ev.Join("u1", "Alice", time.Now())
				return boom
			})
			So(err, ShouldEqual, boom)
			ev, _ := s.FindByID(ctx, "1")
			So(ev.Participants, ShouldBeEmpty)

			ev, err = s.Mutate(ctx, "1", func(ev *entities.Event) error {
				ev.Join("u1", "Alice", time.Now())
				return nil
			})
			So(err, ShouldBeNil)
			So(ev.HasParticipant("u1"), ShouldBeTrue)
		})

		Convey("Delete removes the record", func() {
			_ = s.Create(ctx, storedEvent("1", entities.EventTypeFight))
			ev, err := s.Delete(ctx, "1")
			So(err, ShouldBeNil)
			So(ev.ID, ShouldEqual, "1")
			So(s.Count(ctx), ShouldEqual, 0)
		})

		Convey("The last fight pointer is overwritten and survives deletion", func() {
			_, ok := s.LastFightEvent(ctx)
			So(ok, ShouldBeFalse)
			s.SetLastFightEvent(ctx, "1")
			s.SetLastFightEvent(ctx, "2")
			_, _ = s.Delete(ctx, "2")
			id, ok := s.LastFightEvent(ctx)
			So(ok, ShouldBeTrue)
			So(id, ShouldEqual, "2")
		})

		Convey("Concurrent joins on one event are all kept", func() {
			_ = s.Create(ctx, storedEvent("1", entities.EventTypeFight))
			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, _ = s.Mutate(ctx, "1", func(ev *entities.Event) error {
						ev.Join(fmt.Sprintf("u%d", i), "", time.Now())
						return nil
					})
				}(i)
			}
			wg.Wait()
			ev, _ := s.FindByID(ctx, "1")
			So(ev.Participants, ShouldHaveLength, 50)
		})
	})
}

func TestSessionStore(t *testing.T) {
	Convey("Given a session store with a 15 minute ttl", t, func() {
		ctx := context.Background()
		now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		s := NewSessionStore(15*time.Minute, func() time.Time { return now })

		So(s.Save(ctx, &entities.CreationSession{ID: "a", UserID: "u1", CreatedAt: now}), ShouldBeNil)

		Convey("A fresh session is found", func() {
			sess, err := s.Find(ctx, "a")
			So(err, ShouldBeNil)
			So(sess.UserID, ShouldEqual, "u1")
		})

		Convey("An expired session is gone", func() {
			now = now.Add(16 * time.Minute)
			_, err := s.Find(ctx, "a")
			So(err, ShouldEqual, domain.ErrSessionNotFound)
			So(s.Len(), ShouldEqual, 0)
		})

		Convey("Saving purges expired sessions", func() {
			now = now.Add(16 * time.Minute)
			_ = s.Save(ctx, &entities.CreationSession{ID: "b", CreatedAt: now})
			So(s.Len(), ShouldEqual, 1)
		})

		Convey("Delete drops the session", func() {
			s.Delete(ctx, "a")
			_, err := s.Find(ctx, "a")
			So(err, ShouldEqual, domain.ErrSessionNotFound)
		})
	})
}
