package i18n

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/pelletier/go-toml/v2"

	"turfbot/pkg/logger"
)

func TestTranslator(t *testing.T) {
	Convey("Given a German default translator", t, func() {
		tr, err := NewTranslator("de", logger.Nop())
		So(err, ShouldBeNil)

		Convey("Plain keys resolve in the default locale", func() {
			So(tr.T("", "reply_joined", nil), ShouldEqual, "✅ Du bist eingetragen!")
		})

		Convey("Template data is applied", func() {
			So(tr.T("de", "announce_participants", map[string]any{"Count": 2}), ShouldEqual, "✅ Teilnehmer (2)")
			So(tr.T("de", "announce_body", map[string]any{"Description": "Friday clash"}), ShouldContainSubstring, "__**Friday clash**__")
		})

		Convey("Regional user locales fall back to the base language", func() {
			So(tr.T("en-US", "reply_left", nil), ShouldEqual, "❌ You left the event!")
		})

		Convey("Unknown locales fall back to the default", func() {
			So(tr.T("ja", "category_mass", nil), ShouldEqual, "Masse")
		})

		Convey("Unknown keys come back unchanged", func() {
			So(tr.T("de", "does_not_exist", nil), ShouldEqual, "does_not_exist")
			So(tr.T("de", "", nil), ShouldEqual, "")
		})

		Convey("For binds a locale", func() {
			So(tr.For("en")("category_mass", nil), ShouldEqual, "Mass")
		})
	})

	Convey("An invalid default locale is rejected", t, func() {
		_, err := NewTranslator("not a locale!", nil)
		So(err, ShouldNotBeNil)
	})
}

func TestCatalogsMatch(t *testing.T) {
	Convey("Both catalogs define the same keys", t, func() {
		keys := func(file string) map[string]bool {
			raw, err := localeFS.ReadFile(file)
			So(err, ShouldBeNil)
			var m map[string]any
			So(toml.NewDecoder(bytes.NewReader(raw)).Decode(&m), ShouldBeNil)
			out := make(map[string]bool, len(m))
			for k := range m {
				out[k] = true
			}
			return out
		}
		So(keys("active.en.toml"), ShouldResemble, keys("active.de.toml"))
	})
}
