// Package archive persists per-run aggregate statistics to Postgres.
//
// Archival is optional: the pipeline only opens a database when a DSN is
// configured, and the HTML output never depends on it. Each run inserts one
// run row plus one stat row per scope and classification bucket.
package archive

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"github.com/subcentral/fillrate/internal/domain/model"
	"github.com/subcentral/fillrate/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS fillrate_run (
	id           UUID PRIMARY KEY,
	generated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	period_start DATE,
	period_end   DATE,
	total_jobs   INTEGER NOT NULL,
	flagged_rows INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS fillrate_stat (
	run_id           UUID NOT NULL REFERENCES fillrate_run(id) ON DELETE CASCADE,
	scope            TEXT NOT NULL,
	scope_id         TEXT NOT NULL,
	classification   TEXT NOT NULL,
	vacancy_filled   INTEGER NOT NULL,
	vacancy_unfilled INTEGER NOT NULL,
	absence_filled   INTEGER NOT NULL,
	absence_unfilled INTEGER NOT NULL,
	PRIMARY KEY (run_id, scope, scope_id, classification)
);`

// Archiver stores run statistics in Postgres.
type Archiver struct {
	db  *sql.DB
	log logger.Logger
}

// Open connects to Postgres, verifies the connection, and ensures the
// archive tables exist.
func Open(ctx context.Context, dsn string, opts ...Option) (*Archiver, error) {
	a := &Archiver{log: logger.Named("archive")}
	for _, opt := range opts {
		opt(a)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenDatabase, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrOpenDatabase, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrMigrate, err)
	}

	a.db = db
	return a, nil
}

// Close releases the database connection.
func (a *Archiver) Close() error { return a.db.Close() }

// StoreRun inserts the run header and every stat row in one transaction.
func (a *Archiver) StoreRun(ctx context.Context, runID uuid.UUID, dates model.DateRange, rows []Row, totalJobs, flaggedRows int) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrStoreRun, err)
	}
	defer tx.Rollback()

	var start, end interface{}
	if dates.Valid {
		start, end = dates.Earliest, dates.Latest
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO fillrate_run (id, period_start, period_end, total_jobs, flagged_rows)
		 VALUES ($1, $2, $3, $4, $5)`,
		runID, start, end, totalJobs, flaggedRows,
	)
	if err != nil {
		return fmt.Errorf("%w: run row: %v", ErrStoreRun, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO fillrate_stat
		 (run_id, scope, scope_id, classification,
		  vacancy_filled, vacancy_unfilled, absence_filled, absence_unfilled)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
	)
	if err != nil {
		return fmt.Errorf("%w: prepare: %v", ErrStoreRun, err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx,
			runID, row.Scope, row.ScopeID, row.Classification,
			row.Metrics.VacancyFilled, row.Metrics.VacancyUnfilled,
			row.Metrics.AbsenceFilled, row.Metrics.AbsenceUnfilled,
		)
		if err != nil {
			return fmt.Errorf("%w: stat row %s/%s/%s: %v", ErrStoreRun, row.Scope, row.ScopeID, row.Classification, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrStoreRun, err)
	}
	a.log.Info(ctx, "archived run statistics",
		logger.String("run_id", runID.String()),
		logger.Int("rows", len(rows)),
	)
	return nil
}
