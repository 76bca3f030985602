package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/subcentral/fillrate/internal/archive"
	"github.com/subcentral/fillrate/internal/config"
	"github.com/subcentral/fillrate/internal/domain/aggregate"
	"github.com/subcentral/fillrate/internal/ingest"
	"github.com/subcentral/fillrate/internal/report/assemble"
	"github.com/subcentral/fillrate/pkg/logger"
	"github.com/subcentral/fillrate/pkg/metrics"
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if err := run(ctx, log, cfg); err != nil {
		log.Error(ctx, "pipeline run failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	started := time.Now()
	runID := uuid.New()
	log.Info(ctx, "starting pipeline run",
		logger.String("run_id", runID.String()),
		logger.Any("inputs", cfg.InputPaths),
		logger.String("output_dir", cfg.OutputDir),
	)

	loader := ingest.New(ingest.WithFilledStatuses(cfg.FilledStatuses))
	res, err := loader.LoadCSV(ctx, cfg.InputPaths...)
	if err != nil {
		return err
	}
	log.Info(ctx, "loaded job records",
		logger.Int("records", len(res.Records)),
		logger.Int("flagged_rows", len(res.Issues)),
		logger.String("dates", res.Dates.Label()),
	)
	for _, issue := range res.Issues {
		log.Debug(ctx, "flagged input row",
			logger.String("file", issue.File),
			logger.Int("row", issue.Row),
			logger.String("reason", issue.Reason),
			logger.String("detail", issue.Detail),
		)
	}

	sum := aggregate.New().Aggregate(res.Records)
	root := assemble.Build(sum)

	asm := assemble.New(
		assemble.WithLogger(log.Named("assemble")),
		assemble.WithLogo(cfg.LogoPath),
	)
	if err := asm.Write(ctx, root, cfg.OutputDir, res.Dates); err != nil {
		return err
	}
	log.Info(ctx, "report tree written", logger.String("output_dir", cfg.OutputDir))

	if cfg.DatabaseURL != "" {
		if err := archiveRun(ctx, cfg.DatabaseURL, runID, res, sum); err != nil {
			// Archival is best-effort; the HTML output already exists.
			log.Warn(ctx, "archival skipped", logger.Error(err))
		}
	}

	metrics.RecordRunDuration(time.Since(started).Seconds())
	if lines, err := metrics.Snapshot(); err == nil {
		for _, line := range lines {
			log.Debug(ctx, "metric", logger.String("value", line))
		}
	}
	log.Info(ctx, "pipeline run finished",
		logger.String("run_id", runID.String()),
		logger.Float64("duration_seconds", time.Since(started).Seconds()),
	)
	return nil
}

func archiveRun(ctx context.Context, dsn string, runID uuid.UUID, res *ingest.Result, sum *aggregate.Summary) error {
	ar, err := archive.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer ar.Close()

	return ar.StoreRun(ctx, runID, res.Dates, archive.Flatten(sum), sum.CityMetrics().Total(), len(res.Issues))
}
