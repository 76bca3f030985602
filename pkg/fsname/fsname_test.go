package fsname_test

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/subcentral/fillrate/pkg/fsname"
)

func TestClean(t *testing.T) {
	Convey("Given names with illegal characters", t, func() {
		Convey("All illegal characters are removed", func() {
			out := fsname.Clean(`P.S. <101>: "Best"/School\|?* `)
			for _, c := range `<>:"/\|?*` {
				So(out, ShouldNotContainSubstring, string(c))
			}
			So(strings.TrimSpace(out), ShouldEqual, out)
		})

		Convey("Control characters are removed", func() {
			out := fsname.Clean("A\nB\tC\rD")
			So(out, ShouldEqual, "A_B_C_D")
		})

		Convey("Underscore runs collapse", func() {
			So(fsname.Clean("A//\\\\B"), ShouldEqual, "A_B")
		})

		Convey("Leading and trailing whitespace is trimmed", func() {
			So(fsname.Clean("  M015 School  "), ShouldEqual, "M015 School")
		})
	})

	Convey("Given overlong names", t, func() {
		long := strings.Repeat("x", 500)
		out := fsname.Clean(long)
		So(len([]rune(out)), ShouldEqual, 200)
	})

	Convey("Given degenerate input", t, func() {
		So(fsname.Clean(""), ShouldEqual, "unnamed")
		So(fsname.Clean(`***`), ShouldEqual, "unnamed")
		So(fsname.Clean("   "), ShouldEqual, "unnamed")
	})

	Convey("Clean is idempotent so links always match written names", t, func() {
		raw := ` Q300: The "Academy"/Annex *`
		once := fsname.Clean(raw)
		So(fsname.Clean(once), ShouldEqual, once)
	})
}
