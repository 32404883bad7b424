package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()), WithNamespace("test"))

		Convey("Counters and gauges record", func() {
			m.EventCreated("fight")
			m.EventCreated("fight")
			m.EventRemoved("expired")
			m.SetActiveEvents(3)
			m.ActionHandled("join", OutcomeOK)
			m.PlatformFailure("edit", "not_found")
			m.JournalFailure()

			So(testutil.ToFloat64(m.eventsCreated.WithLabelValues("fight")), ShouldEqual, 2)
			So(testutil.ToFloat64(m.eventsRemoved.WithLabelValues("expired")), ShouldEqual, 1)
			So(testutil.ToFloat64(m.activeEvents), ShouldEqual, 3)
			So(testutil.ToFloat64(m.actionsHandled.WithLabelValues("join", OutcomeOK)), ShouldEqual, 1)
			So(testutil.ToFloat64(m.platformFailures.WithLabelValues("edit", "not_found")), ShouldEqual, 1)
			So(testutil.ToFloat64(m.journalFailures), ShouldEqual, 1)
		})

		Convey("The handler serves the namespace", func() {
			m.EventCreated("lineup")
			rec := httptest.NewRecorder()
			m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `test_events_created_total{type="lineup"} 1`)
		})
	})

	Convey("A nil manager is a no-op", t, func() {
		var m *Manager
		So(func() {
			m.EventCreated("fight")
			m.ActionHandled("join", OutcomeOK)
			m.ObserveViewPush("announce", 0.1)
		}, ShouldNotPanic)
	})
}
