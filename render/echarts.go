// Package render draws engine series as interactive HTML charts through
// go-echarts. It only consumes *engine.Series; no aggregation happens here.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/DalgoT4D/DalgoLite-sub001/engine"
)

// ============================================================================
// ECHARTS RENDERER - Series -> go-echarts chart
// ============================================================================
// bar, histogram  -> charts.Bar (histogram bars touch)
// line            -> charts.Line
// scatter         -> charts.Scatter over the category axis
// pie             -> charts.Pie, one slice color per label
// ============================================================================

const (
	chartWidth  = "900px"
	chartHeight = "500px"

	emptySubtitle = "No data for this configuration."
)

// ErrNilSeries is returned when asked to render nothing.
var ErrNilSeries = errors.New("render: nil series")

// Renderable is a chart that can be written on its own or added to a page.
type Renderable interface {
	components.Charter
	Render(w io.Writer) error
}

// Chart converts a series into a go-echarts chart.
func Chart(series *engine.Series) (Renderable, error) {
	if series == nil {
		return nil, ErrNilSeries
	}

	global := globalOptions(series)
	switch series.ChartType {
	case engine.ChartBar, engine.ChartHistogram:
		return barChart(series, global), nil
	case engine.ChartLine:
		return lineChart(series, global), nil
	case engine.ChartScatter:
		return scatterChart(series, global), nil
	case engine.ChartPie:
		return pieChart(series, global), nil
	default:
		return nil, fmt.Errorf("render: %w: %q", engine.ErrUnsupportedChartType, series.ChartType)
	}
}

// WriteHTML renders a single series as a standalone HTML page.
func WriteHTML(w io.Writer, series *engine.Series) error {
	chart, err := Chart(series)
	if err != nil {
		return err
	}
	return chart.Render(w)
}

// WriteDashboard renders several series on one HTML page, in order.
func WriteDashboard(w io.Writer, title string, series []*engine.Series) error {
	page := components.NewPage()
	page.PageTitle = title
	for i, s := range series {
		chart, err := Chart(s)
		if err != nil {
			return fmt.Errorf("chart %d: %w", i+1, err)
		}
		page.AddCharts(chart)
	}
	return page.Render(w)
}

func globalOptions(series *engine.Series) []charts.GlobalOpts {
	title := opts.Title{Title: series.Title}
	if series.IsEmpty() {
		title.Subtitle = emptySubtitle
	}

	trigger := "axis"
	if series.ChartType == engine.ChartPie {
		trigger = "item"
	}

	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(title),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: trigger,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
	}
}

// styleFor maps a dataset's solid colors to an ECharts item style.
func styleFor(ds engine.Dataset) opts.ItemStyle {
	return opts.ItemStyle{
		Color:       ds.BackgroundColor,
		BorderColor: ds.BorderColor,
	}
}

func barChart(series *engine.Series, global []charts.GlobalOpts) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(global...)
	bar.SetXAxis(series.Labels)

	for _, ds := range series.Datasets {
		data := make([]opts.BarData, len(ds.Values))
		for i, v := range ds.Values {
			data[i] = opts.BarData{Value: v}
		}
		seriesOpts := []charts.SeriesOpts{charts.WithItemStyleOpts(styleFor(ds))}
		if series.ChartType == engine.ChartHistogram {
			seriesOpts = append(seriesOpts, charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "0%"}))
		}
		bar.AddSeries(ds.Label, data, seriesOpts...)
	}
	return bar
}

func lineChart(series *engine.Series, global []charts.GlobalOpts) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(global...)
	line.SetXAxis(series.Labels)

	for _, ds := range series.Datasets {
		data := make([]opts.LineData, len(ds.Values))
		for i, v := range ds.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(ds.Label, data,
			charts.WithItemStyleOpts(styleFor(ds)),
			charts.WithLineStyleOpts(opts.LineStyle{Color: ds.BorderColor}),
		)
	}
	return line
}

func scatterChart(series *engine.Series, global []charts.GlobalOpts) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(global...)
	scatter.SetXAxis(series.Labels)

	for _, ds := range series.Datasets {
		data := make([]opts.ScatterData, len(ds.Values))
		for i, v := range ds.Values {
			data[i] = opts.ScatterData{Value: v}
		}
		scatter.AddSeries(ds.Label, data, charts.WithItemStyleOpts(styleFor(ds)))
	}
	return scatter
}

func pieChart(series *engine.Series, global []charts.GlobalOpts) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(global...)

	for _, ds := range series.Datasets {
		data := make([]opts.PieData, len(series.Labels))
		for i, label := range series.Labels {
			var v float64
			if i < len(ds.Values) {
				v = ds.Values[i]
			}
			slice := opts.PieData{Name: label, Value: v}
			if i < len(ds.BackgroundColors) {
				slice.ItemStyle = &opts.ItemStyle{
					Color:       ds.BackgroundColors[i],
					BorderColor: ds.BorderColor,
				}
			}
			data[i] = slice
		}
		pie.AddSeries(ds.Label, data).
			SetSeriesOptions(
				charts.WithPieChartOpts(opts.PieChart{
					Radius: []string{"0%", "70%"},
				}),
			)
	}
	return pie
}
