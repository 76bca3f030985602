package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadValidation(t *testing.T) {
	Convey("Given no configuration at all", t, func() {
		t.Setenv("FILLRATE_CONFIG", "")

		Convey("Then Load fails because input paths are required", func() {
			_, err := Load(context.Background())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "input path")
		})
	})
}

func TestLoadFromEnv(t *testing.T) {
	Convey("Given env configuration", t, func() {
		t.Setenv("FILLRATE_CONFIG", "")
		t.Setenv("FILLRATE_INPUT_PATHS", "postings.csv")
		t.Setenv("FILLRATE_OUTPUT_DIR", "out")
		t.Setenv("FILLRATE_LOG_LEVEL", "debug")

		Convey("Then env values override defaults", func() {
			cfg, err := Load(context.Background())
			So(err, ShouldBeNil)
			So(cfg.InputPaths, ShouldResemble, []string{"postings.csv"})
			So(cfg.OutputDir, ShouldEqual, "out")
			So(cfg.LogLevel, ShouldEqual, "debug")

			Convey("And untouched defaults survive", func() {
				So(len(cfg.FilledStatuses), ShouldEqual, 4)
			})
		})
	})
}

func TestLoadFromFileAndEnvPrecedence(t *testing.T) {
	Convey("Given a YAML file and an overriding env var", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "fillrate.yaml")
		yaml := "input_paths:\n  - a.csv\n  - b.csv\noutput_dir: from_file\nlog_level: warn\n"
		So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)

		t.Setenv("FILLRATE_CONFIG", path)
		t.Setenv("FILLRATE_OUTPUT_DIR", "from_env")

		Convey("Then env wins over file, file wins over defaults", func() {
			cfg, err := Load(context.Background())
			So(err, ShouldBeNil)
			So(cfg.OutputDir, ShouldEqual, "from_env")
			So(cfg.LogLevel, ShouldEqual, "warn")
			So(cfg.InputPaths, ShouldResemble, []string{"a.csv", "b.csv"})
		})
	})
}

func TestLoadMissingFile(t *testing.T) {
	Convey("Given a FILLRATE_CONFIG pointing nowhere", t, func() {
		t.Setenv("FILLRATE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

		Convey("Then Load fails with the load sentinel", func() {
			_, err := Load(context.Background())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, ErrLoadConfig.Error())
		})
	})
}
