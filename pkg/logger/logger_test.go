package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWriter(&buf), ShouldBeNil)
		ctx := context.Background()

		Convey("Fields, component and source are written", func() {
			Named("sync").Warn(ctx, "edit failed", String("event_id", "42"), Error(errors.New("boom")))
			out := buf.String()
			So(out, ShouldContainSubstring, "level=WARN")
			So(out, ShouldContainSubstring, "component=sync")
			So(out, ShouldContainSubstring, "event_id=42")
			So(out, ShouldContainSubstring, "error=boom")
			So(out, ShouldContainSubstring, "logger_test.go")
		})

		Convey("Debug lines are filtered at info level", func() {
			Get().Debug(ctx, "hidden")
			So(buf.String(), ShouldBeEmpty)

			So(SetLevelString("debug"), ShouldBeNil)
			Get().Debug(ctx, "shown")
			So(buf.String(), ShouldContainSubstring, "shown")
		})

		Convey("Unknown levels are rejected", func() {
			So(SetLevelString("loud"), ShouldNotBeNil)
			So(SetLevelString("WARNING"), ShouldBeNil)
		})

		Convey("A nil writer is rejected", func() {
			So(InitWriter(nil), ShouldNotBeNil)
		})
	})
}
