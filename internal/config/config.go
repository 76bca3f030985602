// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration for one pipeline run.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// InputPaths lists the posting CSV files to ingest.
	InputPaths []string `koanf:"input_paths"`

	// OutputDir is the root of the generated report tree. It is fully
	// regenerated on every run.
	OutputDir string `koanf:"output_dir"`

	// LogoPath points at the branding image copied into the output root.
	// Empty or missing files produce a warning, not a failure.
	LogoPath string `koanf:"logo_path"`

	// FilledStatuses enumerates the raw status values counted as filled.
	FilledStatuses []string `koanf:"filled_statuses"`

	// DatabaseURL, when set, enables archival of the citywide run summary
	// to Postgres.
	DatabaseURL string `koanf:"database_url"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		OutputDir: "reports",
		LogoPath:  "Horizontal_logo_White_PublicSchools.png",
		FilledStatuses: []string{
			"Finished/Admin Assigned",
			"Finished/IVR Assigned",
			"Finished/Pre Arranged",
			"Finished/Web Sub Search",
		},
	}
}
