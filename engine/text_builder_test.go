package engine

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	series, err := Execute(ChartSpec{ChartType: ChartBar, XColumn: "region", YColumn: "sales", Aggregation: AggSum}, salesView(), quiet)
	require.NoError(t, err)

	s := Summarize(series)
	assert.Equal(t, 3, s.Points)
	assert.Equal(t, 35.0, s.Total)
	assert.Equal(t, "east", s.TopLabel)
	assert.Equal(t, "3 categories; total 35; top: east (30)", s.Reply)
}

func TestSummarizeHistogramAndTies(t *testing.T) {
	series := &Series{
		ChartType: ChartHistogram,
		Labels:    []string{"0.0-1.0"},
		Datasets:  []Dataset{{Values: []float64{1500}}},
	}
	assert.Equal(t, "1 bin; total 1,500; top: 0.0-1.0 (1,500)", Summarize(series).Reply)

	tied := &Series{Labels: []string{"a", "b"}, Datasets: []Dataset{{Values: []float64{2, 2}}}}
	assert.Equal(t, "a", Summarize(tied).TopLabel)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, "No data for this configuration.", Summarize(&Series{}).Reply)
	assert.Equal(t, "No data for this configuration.", Summarize(nil).Reply)
}

func TestSummarizeHugeTotalIsFinite(t *testing.T) {
	series := &Series{
		ChartType: ChartBar,
		Labels:    []string{"a", "b"},
		Datasets:  []Dataset{{Values: []float64{1e308, 1e308}}},
	}
	s := Summarize(series)
	assert.Equal(t, math.MaxFloat64, s.Total)
	assert.NotContains(t, s.Reply, "Inf")
	_, err := json.Marshal(s)
	require.NoError(t, err)
}
