package assemble

import (
	"fmt"
	"strings"

	"github.com/subcentral/fillrate/internal/domain/model"
	"github.com/subcentral/fillrate/internal/report/chart"
	"github.com/subcentral/fillrate/pkg/fsname"
)

// noDataRate is shown where a rate has no denominator.
const noDataRate = "n/a"

// rowView is one formatted line of a metrics table.
type rowView struct {
	Name            string
	VacancyFilled   int
	VacancyUnfilled int
	TotalVacancy    int
	VacancyRate     string
	AbsenceFilled   int
	AbsenceUnfilled int
	TotalAbsence    int
	AbsenceRate     string
	Total           int
	OverallRate     string
}

// childView is one row of the child scope listing.
type childView struct {
	Label   string
	Href    string
	Total   int
	Rate    string
	HasData bool
}

// pieView pairs a donut file with its label for iframe embedding.
type pieView struct {
	File    string
	Display string
}

// pageData is the fully formatted input to the page template. All numbers
// arrive pre-formatted so the template stays logic-free.
type pageData struct {
	Title        string
	Heading      string
	DateLabel    string
	LogoPath     string
	Nav          []Link
	HasData      bool
	Summary      rowView
	Rows         []rowView
	ChildHeading string
	Children     []childView
	Comparisons  []rowView
	BarFile      string
	Pies         []pieView
}

func formatRate(rate float64, whole int) string {
	if whole == 0 {
		return noDataRate
	}
	return fmt.Sprintf("%.1f%%", rate*100)
}

func metricsRow(name string, m model.Metrics) rowView {
	return rowView{
		Name:            name,
		VacancyFilled:   m.VacancyFilled,
		VacancyUnfilled: m.VacancyUnfilled,
		TotalVacancy:    m.TotalVacancy(),
		VacancyRate:     formatRate(m.VacancyFillRate(), m.TotalVacancy()),
		AbsenceFilled:   m.AbsenceFilled,
		AbsenceUnfilled: m.AbsenceUnfilled,
		TotalAbsence:    m.TotalAbsence(),
		AbsenceRate:     formatRate(m.AbsenceFillRate(), m.TotalAbsence()),
		Total:           m.Total(),
		OverallRate:     formatRate(m.OverallFillRate(), m.Total()),
	}
}

// pieFile derives the donut file name for a classification. The same value
// feeds both the written file and the page's iframe reference.
func pieFile(classification string) string {
	clean := fsname.Clean(strings.ReplaceAll(classification, " ", "_"))
	return "pie_" + clean + ".html"
}

func childHeading(scope model.Scope) string {
	switch scope {
	case model.ScopeCity:
		return "Summary by Borough"
	case model.ScopeBorough:
		return "Summary by District"
	case model.ScopeDistrict:
		return "Summary by School"
	default:
		return ""
	}
}

// buildPage formats a node into template input. logoPath is already
// depth-relative; empty means no logo block.
func buildPage(node *Node, dateLabel, logoPath string) pageData {
	data := pageData{
		Title:        "Substitute Paraprofessional Jobs Report - " + node.Heading,
		Heading:      node.Heading,
		DateLabel:    dateLabel,
		LogoPath:     logoPath,
		Nav:          node.Nav,
		HasData:      node.Metrics.HasData(),
		Summary:      metricsRow("All Classifications", node.Metrics),
		ChildHeading: childHeading(node.Scope),
		BarFile:      barFile,
	}

	for _, row := range node.Rows {
		data.Rows = append(data.Rows, metricsRow(chart.DisplayClassification(row.Classification), row.Metrics))
	}
	for _, child := range node.Children {
		data.Children = append(data.Children, childView{
			Label:   child.Label,
			Href:    node.ChildLink(child),
			Total:   child.Metrics.Total(),
			Rate:    formatRate(child.Metrics.OverallFillRate(), child.Metrics.Total()),
			HasData: child.Metrics.HasData(),
		})
	}
	for _, comp := range node.Comparisons {
		data.Comparisons = append(data.Comparisons, metricsRow(comp.Label, comp.Metrics))
	}
	for _, pie := range node.Pies {
		data.Pies = append(data.Pies, pieView{File: pieFile(pie.Classification), Display: pie.Display})
	}
	return data
}
