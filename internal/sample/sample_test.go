package sample_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/subcentral/fillrate/internal/domain/model"
	"github.com/subcentral/fillrate/internal/ingest"
	"github.com/subcentral/fillrate/internal/sample"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.csv")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestWriteCSV(t *testing.T) {
	Convey("Given a seeded generator", t, func() {
		gen := sample.New(sample.WithRows(200), sample.WithSeed(42))

		var buf bytes.Buffer
		So(gen.WriteCSV(&buf), ShouldBeNil)

		Convey("Then the same seed reproduces identical output", func() {
			var again bytes.Buffer
			So(sample.New(sample.WithRows(200), sample.WithSeed(42)).WriteCSV(&again), ShouldBeNil)
			So(again.String(), ShouldEqual, buf.String())
		})

		Convey("And a different seed produces different output", func() {
			var other bytes.Buffer
			So(sample.New(sample.WithRows(200), sample.WithSeed(43)).WriteCSV(&other), ShouldBeNil)
			So(other.String(), ShouldNotEqual, buf.String())
		})

		Convey("And the loader accepts every generated row", func() {
			path := writeTemp(t, buf.Bytes())
			res, err := ingest.New().LoadCSV(context.Background(), path)
			So(err, ShouldBeNil)
			So(res.Records, ShouldHaveLength, 200)
			So(res.Issues, ShouldBeEmpty)
			So(res.Dates.Valid, ShouldBeTrue)

			var filled int
			for _, rec := range res.Records {
				So(rec.Borough, ShouldNotEqual, "Unknown")
				if rec.Fill == model.FillFilled {
					filled++
				}
			}
			So(filled, ShouldBeGreaterThan, 0)
			So(filled, ShouldBeLessThan, 200)
		})
	})
}
