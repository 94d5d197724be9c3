package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DalgoT4D/DalgoLite-sub001/engine"
)

func salesSeries(t *testing.T, chartType engine.ChartType) *engine.Series {
	t.Helper()
	series, err := engine.ExecuteTable(
		engine.ChartSpec{
			ChartType:   chartType,
			XColumn:     "region",
			YColumn:     "sales",
			Aggregation: engine.AggSum,
			Title:       "Sales by region",
		},
		[]string{"region", "sales"},
		[][]engine.CellValue{
			{engine.Text("east"), engine.Number(10)},
			{engine.Text("west"), engine.Number(5)},
			{engine.Text("east"), engine.Number(20)},
		},
		engine.WithLogger(nil),
	)
	require.NoError(t, err)
	return series
}

func TestChartTypes(t *testing.T) {
	tests := []struct {
		chartType engine.ChartType
		check     func(t *testing.T, c Renderable)
	}{
		{engine.ChartBar, func(t *testing.T, c Renderable) { assert.IsType(t, &charts.Bar{}, c) }},
		{engine.ChartHistogram, func(t *testing.T, c Renderable) { assert.IsType(t, &charts.Bar{}, c) }},
		{engine.ChartLine, func(t *testing.T, c Renderable) { assert.IsType(t, &charts.Line{}, c) }},
		{engine.ChartScatter, func(t *testing.T, c Renderable) { assert.IsType(t, &charts.Scatter{}, c) }},
		{engine.ChartPie, func(t *testing.T, c Renderable) { assert.IsType(t, &charts.Pie{}, c) }},
	}
	for _, tt := range tests {
		t.Run(string(tt.chartType), func(t *testing.T) {
			chart, err := Chart(salesSeries(t, tt.chartType))
			require.NoError(t, err)
			tt.check(t, chart)
		})
	}
}

func TestChartErrors(t *testing.T) {
	_, err := Chart(nil)
	assert.True(t, errors.Is(err, ErrNilSeries))

	_, err = Chart(&engine.Series{ChartType: "radar"})
	assert.True(t, errors.Is(err, engine.ErrUnsupportedChartType))
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, salesSeries(t, engine.ChartBar)))

	html := buf.String()
	assert.Contains(t, html, "Sales by region")
	assert.Contains(t, html, "Sum of sales")
	assert.Contains(t, html, "east")
	assert.Contains(t, html, engine.DefaultFillColor)
}

func TestWriteHTMLPieColors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, salesSeries(t, engine.ChartPie)))
	assert.Contains(t, buf.String(), engine.DefaultPalette[0])
	assert.Contains(t, buf.String(), engine.DefaultPalette[1])
}

func TestWriteHTMLEmptySeries(t *testing.T) {
	var buf bytes.Buffer
	empty := &engine.Series{ChartType: engine.ChartHistogram, Labels: []string{}, Datasets: []engine.Dataset{{Label: "age"}}}
	require.NoError(t, WriteHTML(&buf, empty))
	assert.Contains(t, buf.String(), emptySubtitle)
}

func TestWriteDashboard(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDashboard(&buf, "Regional overview", []*engine.Series{
		salesSeries(t, engine.ChartBar),
		salesSeries(t, engine.ChartPie),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Regional overview")

	err = WriteDashboard(&buf, "broken", []*engine.Series{salesSeries(t, engine.ChartBar), nil})
	assert.ErrorContains(t, err, "chart 2")
}
