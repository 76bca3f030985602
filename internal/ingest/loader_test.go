package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/subcentral/fillrate/internal/domain/model"
)

const header = "Job #,Classification,Type,Status,Location,District,Job Start\n"

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSVStructure(t *testing.T) {
	Convey("Given a CSV missing required columns", t, func() {
		path := writeCSV(t, "bad.csv", "Classification,Type,Location\nPARA,Vacancy,M015\n")

		Convey("Then the load fails naming every missing column", func() {
			_, err := New().LoadCSV(context.Background(), path)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "Status")
			So(err.Error(), ShouldContainSubstring, "District")
			So(err.Error(), ShouldContainSubstring, "Job Start")
		})
	})

	Convey("Given a missing input file", t, func() {
		_, err := New().LoadCSV(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
		So(err, ShouldNotBeNil)
	})

	Convey("Given a header-only CSV", t, func() {
		path := writeCSV(t, "empty.csv", header)

		Convey("Then the load succeeds with zero records", func() {
			res, err := New().LoadCSV(context.Background(), path)
			So(err, ShouldBeNil)
			So(res.Records, ShouldBeEmpty)
			So(res.Issues, ShouldBeEmpty)
			So(res.Dates.Valid, ShouldBeFalse)
		})
	})
}

func TestLoadCSVRowCleaning(t *testing.T) {
	Convey("Given rows with mixed date forms", t, func() {
		path := writeCSV(t, "dates.csv", header+
			`1,SPANISH SPEAKING PARA,Vacancy,Finished/Pre Arranged,M015,5,44197`+"\n"+
			`2,SPANISH SPEAKING PARA,Vacancy,Open,M015,5,2021-01-01`+"\n"+
			`3,SPANISH SPEAKING PARA,Absence,Open,M015,5,not-a-date`+"\n")

		res, err := New().LoadCSV(context.Background(), path)
		So(err, ShouldBeNil)

		Convey("Then serial and ISO dates agree", func() {
			want := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
			So(res.Records, ShouldHaveLength, 3)
			So(res.Records[0].Start, ShouldNotBeNil)
			So(res.Records[0].Start.Equal(want), ShouldBeTrue)
			So(res.Records[1].Start.Equal(want), ShouldBeTrue)
		})

		Convey("And the unparseable date is flagged, not fatal", func() {
			So(res.Records[2].Start, ShouldBeNil)
			So(res.Issues, ShouldHaveLength, 1)
			So(res.Issues[0].Reason, ShouldEqual, ReasonBadDate)
			So(res.Issues[0].Row, ShouldEqual, 3)
		})

		Convey("And the date range only covers valid dates", func() {
			So(res.Dates.Valid, ShouldBeTrue)
			So(res.Dates.Earliest.Equal(res.Dates.Latest), ShouldBeTrue)
		})
	})

	Convey("Given rows with dirty classifications and districts", t, func() {
		path := writeCSV(t, "dirty.csv", header+
			"1,\"SPANISH\nSPEAKING   PARA\",vacancy,Open,M015,5.0,44197\n"+
			`2,PARA,Absence,Open,Q300,not-a-district,44197`+"\n"+
			`3,PARA,Coverage,Open,Q300,5,44197`+"\n")

		res, err := New().LoadCSV(context.Background(), path)
		So(err, ShouldBeNil)

		Convey("Then classification whitespace is collapsed", func() {
			So(res.Records[0].Classification, ShouldEqual, "SPANISH SPEAKING PARA")
		})

		Convey("And float-formatted districts coerce to integers", func() {
			So(res.Records[0].District, ShouldEqual, 5)
		})

		Convey("And a bad district keeps the record citywide-only", func() {
			So(res.Records[1].District, ShouldEqual, model.DistrictUnknown)
			So(res.Records[1].HasDistrict(), ShouldBeFalse)
			So(res.Records, ShouldHaveLength, 2) // unknown type row dropped
		})

		Convey("And the unknown job type row is dropped with an issue", func() {
			reasons := map[string]int{}
			for _, issue := range res.Issues {
				reasons[issue.Reason]++
			}
			So(reasons[ReasonBadDistrict], ShouldEqual, 1)
			So(reasons[ReasonUnknownType], ShouldEqual, 1)
		})
	})

	Convey("Given filled and unfilled statuses", t, func() {
		path := writeCSV(t, "status.csv", header+
			`1,PARA,Vacancy,Finished/IVR Assigned,M015,5,44197`+"\n"+
			`2,PARA,Vacancy,No Sub Required,M015,5,44197`+"\n")

		res, err := New().LoadCSV(context.Background(), path)
		So(err, ShouldBeNil)
		So(res.Records[0].Fill, ShouldEqual, model.FillFilled)
		So(res.Records[1].Fill, ShouldEqual, model.FillUnfilled)
		So(res.Records[1].Status, ShouldEqual, "No Sub Required")
	})

	Convey("Given a custom filled-status set", t, func() {
		path := writeCSV(t, "custom.csv", header+
			`1,PARA,Vacancy,Assigned,M015,5,44197`+"\n")

		loader := New(WithFilledStatuses([]string{"Assigned"}))
		res, err := loader.LoadCSV(context.Background(), path)
		So(err, ShouldBeNil)
		So(res.Records[0].Fill, ShouldEqual, model.FillFilled)
	})
}

func TestLoadCSVMultipleFiles(t *testing.T) {
	Convey("Given two input files", t, func() {
		a := writeCSV(t, "a.csv", header+`1,PARA,Vacancy,Open,M015,5,44197`+"\n")
		b := writeCSV(t, "b.csv", header+`1,PARA,Absence,Open,K123,14,44200`+"\n")

		Convey("Then records concatenate in order", func() {
			res, err := New().LoadCSV(context.Background(), a, b)
			So(err, ShouldBeNil)
			So(res.Records, ShouldHaveLength, 2)
			So(res.Records[0].Borough, ShouldEqual, "Manhattan")
			So(res.Records[1].Borough, ShouldEqual, "Brooklyn")
		})
	})

	Convey("Given a cancelled context", t, func() {
		path := writeCSV(t, "c.csv", header)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New().LoadCSV(ctx, path)
		So(err, ShouldEqual, context.Canceled)
	})
}

func TestBoroughForLocation(t *testing.T) {
	Convey("Given location codes", t, func() {
		cases := map[string]string{
			"M015": "Manhattan",
			"K123": "Brooklyn",
			"Q300": "Queens",
			"X400": "Bronx",
			"R044": "Staten Island",
			"r044": "Staten Island",
			" Z99": BoroughUnknown,
			"":     BoroughUnknown,
			"  ":   BoroughUnknown,
		}
		for loc, want := range cases {
			So(BoroughForLocation(loc), ShouldEqual, want)
		}
	})
}

func TestParseStartDate(t *testing.T) {
	Convey("Given date cells", t, func() {
		Convey("Serial 44197 is 2021-01-01", func() {
			got, err := parseStartDate("44197")
			So(err, ShouldBeNil)
			So(got.Equal(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)), ShouldBeTrue)
		})

		Convey("Serial fractions truncate to the date", func() {
			got, err := parseStartDate("44197.75")
			So(err, ShouldBeNil)
			So(got.Equal(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)), ShouldBeTrue)
		})

		Convey("Slash dates parse", func() {
			got, err := parseStartDate("1/1/2021")
			So(err, ShouldBeNil)
			So(got.Equal(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)), ShouldBeTrue)
		})

		Convey("Out-of-range serials fail", func() {
			_, err := parseStartDate("-5")
			So(err, ShouldNotBeNil)
			_, err = parseStartDate("99999999")
			So(err, ShouldNotBeNil)
		})

		Convey("Garbage fails", func() {
			_, err := parseStartDate("not-a-date")
			So(err, ShouldNotBeNil)
			_, err = parseStartDate("")
			So(err, ShouldNotBeNil)
		})
	})
}
