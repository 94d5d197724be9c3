package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeriesSolidColors(t *testing.T) {
	groups := []Group{{Label: "a", Value: 1}, {Label: "b", Value: 2}}
	spec := ChartSpec{ChartType: ChartLine, XColumn: "day", YColumn: "temp", Aggregation: AggMax, Title: "Peak"}

	series := BuildSeries(spec, groups, WithSolidColors("fill", "edge"), quiet)
	require.Len(t, series.Datasets, 1)
	ds := series.Datasets[0]
	assert.Equal(t, "Peak", series.Title)
	assert.Equal(t, "Max of temp", ds.Label)
	assert.Equal(t, "fill", ds.BackgroundColor)
	assert.Equal(t, "edge", ds.BorderColor)
	assert.Nil(t, ds.BackgroundColors)
	assert.Equal(t, []float64{1, 2}, ds.Values)
}

func TestBuildSeriesPie(t *testing.T) {
	groups := []Group{{Label: "a", Value: 1}, {Label: "b", Value: 2}, {Label: "c", Value: 3}}
	series := BuildSeries(ChartSpec{ChartType: ChartPie, XColumn: "x"}, groups, WithPalette([]string{"p0", "p1"}), quiet)
	ds := series.Datasets[0]
	assert.Equal(t, []string{"p0", "p1", "p0"}, ds.BackgroundColors)
	assert.Equal(t, "#FFFFFF", ds.BorderColor)
}

func TestBuildHistogramSeries(t *testing.T) {
	bins := []Bin{{Label: "0.0-5.0", Count: 4}, {Label: "5.0-10.0", Count: 1}}
	series := BuildHistogramSeries(ChartSpec{ChartType: ChartHistogram, XColumn: "age"}, bins,
		WithHistogramColors("h", "hb"), quiet)

	assert.Equal(t, ChartHistogram, series.ChartType)
	assert.Equal(t, []string{"0.0-5.0", "5.0-10.0"}, series.Labels)
	ds := series.Datasets[0]
	assert.Equal(t, "age", ds.Label)
	assert.Equal(t, []float64{4, 1}, ds.Values)
	assert.Equal(t, "h", ds.BackgroundColor)
	assert.Equal(t, "hb", ds.BorderColor)
}

func TestAssignColorsEmptyPalette(t *testing.T) {
	assert.Equal(t, DefaultPalette[:2], assignColors(nil, 2))
	assert.Empty(t, assignColors([]string{"x"}, 0))
}
