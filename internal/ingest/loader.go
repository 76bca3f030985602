// Package ingest loads posting CSVs into cleaned, typed job records.
//
// Loading is strict about structure and lenient about rows: a missing
// required column aborts the load, while row-level problems (bad dates,
// non-integer districts, unknown job types) are flagged as issues and the
// run continues. Every flagged row is counted; nothing is dropped silently.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/subcentral/fillrate/internal/domain/model"
	"github.com/subcentral/fillrate/pkg/metrics"
)

// Required input columns, matched after header whitespace is trimmed.
const (
	colClassification = "Classification"
	colType           = "Type"
	colStatus         = "Status"
	colLocation       = "Location"
	colDistrict       = "District"
	colJobStart       = "Job Start"
)

var requiredColumns = []string{
	colClassification, colType, colStatus, colLocation, colDistrict, colJobStart,
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// RowIssue records one flagged input row.
type RowIssue struct {
	File   string
	Row    int // 1-based data row number within the file
	Reason string
	Detail string
}

// Result is the outcome of loading one or more CSV sources.
type Result struct {
	Records []model.JobRecord
	Issues  []RowIssue
	Dates   model.DateRange
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithFilledStatuses replaces the set of raw statuses counted as filled.
func WithFilledStatuses(statuses []string) Option {
	return func(l *Loader) {
		if len(statuses) == 0 {
			return
		}
		l.filled = make(map[string]struct{}, len(statuses))
		for _, s := range statuses {
			l.filled[s] = struct{}{}
		}
	}
}

// Loader reads posting CSVs into JobRecords.
type Loader struct {
	filled map[string]struct{}
}

// defaultFilledStatuses mirror the source system's terminal assigned states.
var defaultFilledStatuses = []string{
	"Finished/Admin Assigned",
	"Finished/IVR Assigned",
	"Finished/Pre Arranged",
	"Finished/Web Sub Search",
}

// New creates a Loader with configuration options.
func New(opts ...Option) *Loader {
	l := &Loader{}
	WithFilledStatuses(defaultFilledStatuses)(l)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadCSV reads every path in order and returns the combined records, row
// issues, and the date range over valid job-start dates. Structural problems
// (unreadable file, missing column) fail the whole load.
func (l *Loader) LoadCSV(ctx context.Context, paths ...string) (*Result, error) {
	res := &Result{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := l.loadFile(path, res); err != nil {
			return nil, err
		}
	}
	metrics.RecordLoaded(len(res.Records))
	for _, issue := range res.Issues {
		metrics.RecordRowSkipped(issue.Reason)
	}
	return res, nil
}

func (l *Loader) loadFile(path string, res *Result) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOpenInput, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are handled per cell

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrReadInput, path, err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for row := 1; ; row++ {
		cells, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %s row %d: %v", ErrReadInput, path, row, err)
		}
		l.loadRow(path, row, cells, cols, res)
	}
}

// indexColumns maps required column names to their positions, failing with
// every missing column named.
func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, want := range requiredColumns {
		if _, ok := cols[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func (l *Loader) loadRow(path string, row int, cells []string, cols map[string]int, res *Result) {
	cell := func(name string) string {
		i := cols[name]
		if i >= len(cells) {
			return ""
		}
		return cells[i]
	}

	jobType, err := model.ParseJobType(cell(colType))
	if err != nil {
		res.Issues = append(res.Issues, RowIssue{File: path, Row: row, Reason: ReasonUnknownType, Detail: err.Error()})
		return
	}

	rec := model.JobRecord{
		Classification: cleanClassification(cell(colClassification)),
		Type:           jobType,
		Status:         strings.TrimSpace(cell(colStatus)),
		Location:       strings.TrimSpace(cell(colLocation)),
	}
	rec.Borough = BoroughForLocation(rec.Location)
	if _, ok := l.filled[rec.Status]; ok {
		rec.Fill = model.FillFilled
	}

	rec.District = model.DistrictUnknown
	if d, err := parseDistrict(cell(colDistrict)); err != nil {
		res.Issues = append(res.Issues, RowIssue{File: path, Row: row, Reason: ReasonBadDistrict, Detail: err.Error()})
	} else {
		rec.District = d
	}

	if start, err := parseStartDate(cell(colJobStart)); err != nil {
		res.Issues = append(res.Issues, RowIssue{File: path, Row: row, Reason: ReasonBadDate, Detail: err.Error()})
	} else {
		rec.Start = &start
		res.Dates = res.Dates.Observe(start)
	}

	res.Records = append(res.Records, rec)
}

// cleanClassification strips line breaks and collapses whitespace runs.
func cleanClassification(s string) string {
	s = strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// parseDistrict coerces a district cell to an integer. Float-formatted cells
// like "5.0" are accepted when integral, matching spreadsheet exports.
func parseDistrict(cell string) (int, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, fmt.Errorf("empty district cell")
	}
	if d, err := strconv.Atoi(s); err == nil {
		return d, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.Trunc(f) != f {
		return 0, fmt.Errorf("non-integer district %q", cell)
	}
	return int(f), nil
}
