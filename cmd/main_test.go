package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/subcentral/fillrate/internal/config"
	"github.com/subcentral/fillrate/internal/sample"
	"github.com/subcentral/fillrate/pkg/logger"
)

func TestRun(t *testing.T) {
	convey.Convey("Given a generated input CSV and a fresh output directory", t, func() {
		if err := logger.Init(); err != nil {
			t.Fatalf("init logger: %v", err)
		}

		dir := t.TempDir()
		input := filepath.Join(dir, "postings.csv")
		f, err := os.Create(input)
		convey.So(err, convey.ShouldBeNil)
		convey.So(sample.New(sample.WithRows(300), sample.WithSeed(7)).WriteCSV(f), convey.ShouldBeNil)
		convey.So(f.Close(), convey.ShouldBeNil)

		cfg := config.New()
		cfg.InputPaths = []string{input}
		cfg.OutputDir = filepath.Join(dir, "reports")
		cfg.LogoPath = ""

		convey.Convey("When the pipeline runs end to end", func() {
			err := run(context.Background(), logger.Get(), cfg)

			convey.Convey("Then it succeeds and writes the citywide page", func() {
				convey.So(err, convey.ShouldBeNil)
				_, statErr := os.Stat(filepath.Join(cfg.OutputDir, "index.html"))
				convey.So(statErr, convey.ShouldBeNil)
				_, statErr = os.Stat(filepath.Join(cfg.OutputDir, "bar_chart.html"))
				convey.So(statErr, convey.ShouldBeNil)
			})

			convey.Convey("And running again over the same output succeeds", func() {
				convey.So(run(context.Background(), logger.Get(), cfg), convey.ShouldBeNil)
			})
		})
	})

	convey.Convey("Given configuration from the environment", t, func() {
		t.Setenv("FILLRATE_INPUT_PATHS", "postings.csv")
		t.Setenv("FILLRATE_OUTPUT_DIR", "out")

		convey.Convey("Then configuration should be loadable", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.InputPaths, convey.ShouldResemble, []string{"postings.csv"})
			convey.So(cfg.OutputDir, convey.ShouldEqual, "out")
		})
	})
}
