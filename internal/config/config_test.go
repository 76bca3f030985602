package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewDefaults(t *testing.T) {
	Convey("Given a default config", t, func() {
		c := New()
		So(c.LogLevel, ShouldEqual, "info")
		So(c.OutputDir, ShouldEqual, "reports")
		So(c.FilledStatuses, ShouldContain, "Finished/Pre Arranged")
		So(len(c.FilledStatuses), ShouldEqual, 4)
		So(c.DatabaseURL, ShouldBeEmpty)
	})
}
