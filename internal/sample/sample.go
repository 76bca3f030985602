// Package sample generates synthetic posting CSVs for local runs and demos.
//
// Output is deterministic for a given seed so generated fixtures can be
// regenerated byte-for-byte. The generator deliberately includes the messy
// shapes real exports have: serial dates, float-formatted districts, and
// classifications with embedded line breaks.
package sample

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var header = []string{"Job #", "Classification", "Type", "Status", "Location", "District", "Job Start"}

var classifications = []string{
	"PARAPROFESSIONAL",
	"SPANISH SPEAKING PARA",
	"FRENCH SPEAKING PARA",
	"MANDARIN SPEAKING PARA",
	"SIGN LANGUAGE PARA",
}

var filledStatuses = []string{
	"Finished/Admin Assigned",
	"Finished/IVR Assigned",
	"Finished/Pre Arranged",
	"Finished/Web Sub Search",
}

var unfilledStatuses = []string{
	"Finished/Unfilled",
	"Active/Open",
	"Cancelled/Admin Cancelled",
}

// site is one school location with its district.
type site struct {
	location string
	district int
}

var sites = []site{
	{"M015", 1}, {"M020", 2}, {"M188", 3},
	{"K025", 13}, {"K110", 14}, {"K321", 15},
	{"Q300", 24}, {"Q130", 25},
	{"X040", 7}, {"X075", 8},
	{"R001", 31},
	{"M850", 97}, // citywide special district
}

// serialEpoch matches spreadsheet serial date numbering.
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithRows sets how many data rows to generate.
func WithRows(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.rows = n
		}
	}
}

// WithSeed fixes the random source so output is reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.seed = seed }
}

// WithPeriod sets the date window job starts are drawn from.
func WithPeriod(start, end time.Time) Option {
	return func(g *Generator) {
		if end.After(start) {
			g.start, g.end = start, end
		}
	}
}

// Generator produces synthetic posting CSVs.
type Generator struct {
	rows int
	seed int64

	start time.Time
	end   time.Time
}

// New creates a Generator with configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{
		rows:  500,
		seed:  1,
		start: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		end:   time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WriteCSV writes the header and every generated row.
func (g *Generator) WriteCSV(w io.Writer) error {
	rng := rand.New(rand.NewSource(g.seed))

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < g.rows; i++ {
		if err := cw.Write(g.row(rng)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (g *Generator) row(rng *rand.Rand) []string {
	s := sites[rng.Intn(len(sites))]
	class := classifications[rng.Intn(len(classifications))]

	jobType := "Vacancy"
	if rng.Intn(2) == 1 {
		jobType = "Absence"
	}

	// Roughly two thirds of postings end up filled.
	status := unfilledStatuses[rng.Intn(len(unfilledStatuses))]
	if rng.Intn(3) < 2 {
		status = filledStatuses[rng.Intn(len(filledStatuses))]
	}

	day := g.start.AddDate(0, 0, rng.Intn(daysBetween(g.start, g.end)+1))

	// A slice of rows mimics raw export quirks.
	district := strconv.Itoa(s.district)
	dateCell := day.Format("2006-01-02")
	switch rng.Intn(10) {
	case 0:
		district = fmt.Sprintf("%d.0", s.district)
	case 1:
		dateCell = strconv.Itoa(int(day.Sub(serialEpoch).Hours() / 24))
	case 2:
		class = class + "\n"
	}

	jobID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("job-%d-%d", g.seed, rng.Int63())))
	return []string{jobID.String(), class, jobType, status, s.location, district, dateCell}
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
