package metrics

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerSnapshot(t *testing.T) {
	Convey("Given a fresh metrics manager", t, func() {
		m := NewManager(WithNamespace("test"), WithSubsystem("run"))

		Convey("When counters are incremented", func() {
			m.recordsLoaded.Add(3)
			m.rowsSkipped.WithLabelValues("bad_date").Inc()
			m.reportsWritten.WithLabelValues("district").Inc()
			m.reportsWritten.WithLabelValues("district").Inc()
			m.runDurationSeconds.Set(1.5)

			Convey("Then the snapshot reflects them", func() {
				lines, err := m.Snapshot()
				So(err, ShouldBeNil)
				joined := strings.Join(lines, "\n")
				So(joined, ShouldContainSubstring, "test_run_records_loaded_total=3")
				So(joined, ShouldContainSubstring, `test_run_rows_skipped_total{reason="bad_date"}=1`)
				So(joined, ShouldContainSubstring, `test_run_reports_written_total{scope="district"}=2`)
				So(joined, ShouldContainSubstring, "test_run_run_duration_seconds=1.5")
			})
		})

		Convey("When nothing has been counted", func() {
			lines, err := m.Snapshot()
			So(err, ShouldBeNil)
			So(lines, ShouldNotBeEmpty) // plain counters and gauges gather at zero
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Helpers do not panic and snapshot gathers", func() {
			So(func() {
				RecordLoaded(2)
				RecordRowSkipped("bad_district")
				RecordReportWritten("school")
				RecordChartWritten()
				RecordRunDuration(0.25)
			}, ShouldNotPanic)

			lines, err := Snapshot()
			So(err, ShouldBeNil)
			So(lines, ShouldNotBeEmpty)
		})
	})
}
