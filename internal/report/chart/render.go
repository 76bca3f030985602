package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderBar writes the bar spec as a standalone HTML document.
func RenderBar(spec BarSpec, w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Classification"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Jobs"}),
	)

	bar.SetXAxis(spec.Classifications).
		AddSeries("Vacancy Filled", barData(spec.VacancyFilled),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorVacancyFilled})).
		AddSeries("Vacancy Unfilled", barData(spec.VacancyUnfilled),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorVacancyUnfilled})).
		AddSeries("Absence Filled", barData(spec.AbsenceFilled),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorAbsenceFilled})).
		AddSeries("Absence Unfilled", barData(spec.AbsenceUnfilled),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorAbsenceUnfilled}))

	bar.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

// RenderPie writes the donut spec as a standalone HTML document.
func RenderPie(spec PieSpec, w io.Writer) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s (%d total jobs)", spec.Display, spec.Total),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "400px", Height: "450px"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	data := []opts.PieData{
		{Name: "Vacancy Filled", Value: spec.Metrics.VacancyFilled, ItemStyle: &opts.ItemStyle{Color: colorVacancyFilled}},
		{Name: "Vacancy Unfilled", Value: spec.Metrics.VacancyUnfilled, ItemStyle: &opts.ItemStyle{Color: colorVacancyUnfilled}},
		{Name: "Absence Filled", Value: spec.Metrics.AbsenceFilled, ItemStyle: &opts.ItemStyle{Color: colorAbsenceFilled}},
		{Name: "Absence Unfilled", Value: spec.Metrics.AbsenceUnfilled, ItemStyle: &opts.ItemStyle{Color: colorAbsenceUnfilled}},
	}

	pie.AddSeries("jobs", data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c} ({d}%)"}),
			charts.WithPieChartOpts(opts.PieChart{Radius: []string{"30%", "60%"}}),
		)

	if err := pie.Render(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

func barData(values []int) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}
	return data
}
