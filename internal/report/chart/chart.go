// Package chart turns aggregated rows into chart specifications and renders
// them as standalone HTML documents.
//
// Builders are pure and filesystem-free; the assembler decides where the
// rendered charts live.
package chart

import (
	"strings"

	"github.com/subcentral/fillrate/internal/domain/model"
)

// Series colors, matched across bar and pie charts so filled/unfilled reads
// the same everywhere.
const (
	colorVacancyFilled   = "darkgreen"
	colorVacancyUnfilled = "lightcoral"
	colorAbsenceFilled   = "forestgreen"
	colorAbsenceUnfilled = "red"
)

// Row is one classification's metrics inside a scope.
type Row struct {
	Classification string
	Metrics        model.Metrics
}

// BarSpec describes a grouped four-series bar chart for one scope.
type BarSpec struct {
	Title           string
	Classifications []string // display names, one group per classification
	VacancyFilled   []int
	VacancyUnfilled []int
	AbsenceFilled   []int
	AbsenceUnfilled []int
}

// Empty reports whether the spec has no groups; it still renders as a
// placeholder chart rather than being omitted.
func (s BarSpec) Empty() bool { return len(s.Classifications) == 0 }

// PieSpec describes one classification's filled/unfilled donut.
type PieSpec struct {
	Classification string
	Display        string
	Total          int
	Metrics        model.Metrics
}

// DisplayClassification shortens a classification for chart labels.
func DisplayClassification(classification string) string {
	return strings.ReplaceAll(classification, " SPEAKING PARA", "")
}

// BuildBar builds the grouped bar spec for a scope. Counts are integers end
// to end; no rate math happens here.
func BuildBar(title string, rows []Row) BarSpec {
	spec := BarSpec{Title: title}
	for _, row := range rows {
		spec.Classifications = append(spec.Classifications, DisplayClassification(row.Classification))
		spec.VacancyFilled = append(spec.VacancyFilled, row.Metrics.VacancyFilled)
		spec.VacancyUnfilled = append(spec.VacancyUnfilled, row.Metrics.VacancyUnfilled)
		spec.AbsenceFilled = append(spec.AbsenceFilled, row.Metrics.AbsenceFilled)
		spec.AbsenceUnfilled = append(spec.AbsenceUnfilled, row.Metrics.AbsenceUnfilled)
	}
	return spec
}

// BuildPies builds one donut spec per classification that has postings.
// Zero-total classifications are skipped; a zero-total scope yields nil.
func BuildPies(rows []Row) []PieSpec {
	var pies []PieSpec
	for _, row := range rows {
		if !row.Metrics.HasData() {
			continue
		}
		pies = append(pies, PieSpec{
			Classification: row.Classification,
			Display:        DisplayClassification(row.Classification),
			Total:          row.Metrics.Total(),
			Metrics:        row.Metrics,
		})
	}
	return pies
}
