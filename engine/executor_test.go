package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// EXECUTOR TESTS
// ============================================================================

var quiet = WithLogger(nil)

func TestExecuteBarSum(t *testing.T) {
	spec := ChartSpec{ChartType: ChartBar, XColumn: "region", YColumn: "sales", Aggregation: AggSum}
	series, err := Execute(spec, salesView(), quiet)
	require.NoError(t, err)

	want := &Series{
		ChartType: ChartBar,
		Labels:    []string{"east", "west", "north"},
		Datasets: []Dataset{{
			Label:           "Sum of sales",
			Values:          []float64{30, 5, 0},
			BackgroundColor: DefaultFillColor,
			BorderColor:     DefaultBorderColor,
			BorderWidth:     1,
		}},
	}
	if diff := cmp.Diff(want, series); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteTable(t *testing.T) {
	series, err := ExecuteTable(
		ChartSpec{ChartType: "LINE", XColumn: "month", YColumn: "temp", Aggregation: "Avg"},
		[]string{"month", "temp"},
		[][]CellValue{
			{Text("jan"), Number(2)},
			{Text("feb"), Text("5")},
			{Text("jan"), Number(4)},
		},
		quiet,
	)
	require.NoError(t, err)
	assert.Equal(t, ChartLine, series.ChartType)
	assert.Equal(t, []string{"jan", "feb"}, series.Labels)
	assert.Equal(t, []float64{3, 5}, series.Values())
	assert.Equal(t, "Avg of temp", series.Datasets[0].Label)
}

func TestExecuteDefaultsToCount(t *testing.T) {
	series, err := Execute(ChartSpec{XColumn: "region"}, salesView(), quiet)
	require.NoError(t, err)
	assert.Equal(t, ChartBar, series.ChartType)
	assert.Equal(t, []float64{2, 1, 1}, series.Values())
	assert.Equal(t, "Count of region", series.Datasets[0].Label)

	series, err = Execute(ChartSpec{ChartType: ChartBar, XColumn: "region", Aggregation: AggSum}, salesView(), quiet)
	require.NoError(t, err)
	assert.Equal(t, "Count of region", series.Datasets[0].Label, "sum without y column is a count")
}

func TestExecutePieUsesPalette(t *testing.T) {
	rows := make([][]CellValue, 12)
	for i := range rows {
		rows[i] = []CellValue{Text(fmt.Sprintf("slice%d", i)), Number(float64(i))}
	}
	palette := []string{"red", "green", "blue"}
	series, err := ExecuteTable(
		ChartSpec{ChartType: ChartPie, XColumn: "name", YColumn: "v", Aggregation: AggSum},
		[]string{"name", "v"}, rows, WithPalette(palette), quiet,
	)
	require.NoError(t, err)

	ds := series.Datasets[0]
	require.Len(t, ds.BackgroundColors, 12)
	assert.Empty(t, ds.BackgroundColor)
	assert.Equal(t, "red", ds.BackgroundColors[0])
	assert.Equal(t, "red", ds.BackgroundColors[3])
	assert.Equal(t, "blue", ds.BackgroundColors[11])
}

func TestExecutePieDefaultPaletteWraps(t *testing.T) {
	rows := make([][]CellValue, 11)
	for i := range rows {
		rows[i] = []CellValue{Text(fmt.Sprintf("s%d", i))}
	}
	series, err := ExecuteTable(ChartSpec{ChartType: ChartPie, XColumn: "s"}, []string{"s"}, rows, quiet)
	require.NoError(t, err)
	colors := series.Datasets[0].BackgroundColors
	assert.Equal(t, DefaultPalette[0], colors[10])
}

func TestExecuteHistogram(t *testing.T) {
	rows := make([][]CellValue, 0, 12)
	for i := 1; i <= 10; i++ {
		rows = append(rows, []CellValue{Number(float64(i)), Text("ignored")})
	}
	rows = append(rows, []CellValue{Text("oops"), Null()}, []CellValue{Null()})

	series, err := ExecuteTable(
		ChartSpec{ChartType: ChartHistogram, XColumn: "score", YColumn: "other", Aggregation: AggSum},
		[]string{"score", "other"}, rows, quiet,
	)
	require.NoError(t, err)
	require.Len(t, series.Labels, 4)
	assert.Equal(t, []float64{3, 2, 2, 3}, series.Values())

	ds := series.Datasets[0]
	assert.Equal(t, "score", ds.Label)
	assert.Equal(t, DefaultHistogramFillColor, ds.BackgroundColor)
	assert.NotEqual(t, DefaultFillColor, ds.BackgroundColor)
}

func TestExecuteHistogramNoNumericValues(t *testing.T) {
	series, err := ExecuteTable(
		ChartSpec{ChartType: ChartHistogram, XColumn: "name"},
		[]string{"name"}, [][]CellValue{{Text("a")}, {Null()}}, quiet,
	)
	require.NoError(t, err)
	require.NotNil(t, series)
	assert.True(t, series.IsEmpty())
	require.Len(t, series.Datasets, 1)
	assert.Empty(t, series.Datasets[0].Values)
}

func TestExecuteColumnNotFound(t *testing.T) {
	_, err := Execute(ChartSpec{ChartType: ChartBar, XColumn: "country"}, salesView(), quiet)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrColumnNotFound))
	assert.Equal(t, KindColumnNotFound, KindOf(err))

	var cnf *ColumnNotFoundError
	require.True(t, errors.As(err, &cnf))
	assert.Equal(t, "country", cnf.Column)
	assert.Contains(t, err.Error(), `"country"`)
	assert.Contains(t, err.Error(), "region, sales")

	_, err = Execute(ChartSpec{ChartType: ChartBar, XColumn: "region", YColumn: "profit", Aggregation: AggSum}, salesView(), quiet)
	require.True(t, errors.As(err, &cnf))
	assert.Equal(t, "profit", cnf.Column)

	_, err = Execute(ChartSpec{ChartType: ChartHistogram, XColumn: "missing"}, salesView(), quiet)
	assert.True(t, errors.Is(err, ErrColumnNotFound))
}

func TestExecuteInvalidSpec(t *testing.T) {
	_, err := Execute(ChartSpec{ChartType: "radar", XColumn: "region"}, salesView(), quiet)
	assert.True(t, errors.Is(err, ErrUnsupportedChartType))
	assert.Equal(t, KindInvalidSpec, KindOf(err))

	_, err = Execute(ChartSpec{ChartType: ChartBar, XColumn: "region", YColumn: "sales", Aggregation: "mode"}, salesView(), quiet)
	assert.True(t, errors.Is(err, ErrUnsupportedAggregation))

	_, err = Execute(ChartSpec{ChartType: ChartBar}, salesView(), quiet)
	assert.True(t, errors.Is(err, ErrMissingXColumn))
}

func TestExecuteEmptyTable(t *testing.T) {
	series, err := ExecuteTable(ChartSpec{XColumn: "a"}, []string{"a"}, nil, quiet)
	require.NoError(t, err)
	assert.True(t, series.IsEmpty())
	assert.Len(t, series.Datasets, 1)
}

func TestExecuteDeterministic(t *testing.T) {
	rows := make([][]CellValue, 0, 500)
	for i := 0; i < 500; i++ {
		rows = append(rows, []CellValue{Text(fmt.Sprintf("k%d", (i*7)%83)), Number(float64(i % 13))})
	}
	spec := ChartSpec{ChartType: ChartScatter, XColumn: "k", YColumn: "v", Aggregation: AggMedian}

	first, err := ExecuteTable(spec, []string{"k", "v"}, rows, quiet)
	require.NoError(t, err)
	second, err := ExecuteTable(spec, []string{"k", "v"}, rows, quiet)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("non-deterministic output (-first +second):\n%s", diff)
	}
	assert.Len(t, first.Labels, DefaultCategoryLimit)
}

func TestExecuteCategoryLimit(t *testing.T) {
	rows := make([][]CellValue, 200)
	for i := range rows {
		rows[i] = []CellValue{Text(fmt.Sprintf("v%d", i))}
	}
	series, err := ExecuteTable(ChartSpec{ChartType: ChartBar, XColumn: "c"}, []string{"c"}, rows, quiet)
	require.NoError(t, err)
	require.Len(t, series.Labels, 50)
	assert.Equal(t, "v0", series.Labels[0])
	assert.Equal(t, "v49", series.Labels[49])

	series, err = ExecuteTable(ChartSpec{ChartType: ChartBar, XColumn: "c"}, []string{"c"}, rows, WithCategoryLimit(10), quiet)
	require.NoError(t, err)
	assert.Len(t, series.Labels, 10)
}

func TestExecuteLabelsMatchValues(t *testing.T) {
	for _, ct := range ChartTypes {
		series, err := Execute(ChartSpec{ChartType: ct, XColumn: "region", YColumn: "sales", Aggregation: AggMax}, salesView(), quiet)
		require.NoError(t, err, ct)
		for _, ds := range series.Datasets {
			assert.Len(t, ds.Values, len(series.Labels), ct)
			if ds.BackgroundColors != nil {
				assert.Len(t, ds.BackgroundColors, len(series.Labels), ct)
			}
		}
	}
}

func TestExecuteWithFilters(t *testing.T) {
	spec := ChartSpec{
		ChartType:   ChartBar,
		XColumn:     "region",
		YColumn:     "sales",
		Aggregation: AggSum,
		Filters:     map[string][]string{"region": {"EAST", "north"}},
	}
	series, err := Execute(spec, salesView(), quiet)
	require.NoError(t, err)
	assert.Equal(t, []string{"east", "north"}, series.Labels)
	assert.Equal(t, []float64{30, 0}, series.Values())

	spec.Filters = map[string][]string{"country": {"x"}}
	_, err = Execute(spec, salesView(), quiet)
	assert.True(t, errors.Is(err, ErrColumnNotFound))
}

func TestNormalizeChartSpec(t *testing.T) {
	got := NormalizeChartSpec(ChartSpec{ChartType: " Pie ", XColumn: "a", YColumn: "  ", Aggregation: "SUM"})
	assert.Equal(t, ChartPie, got.ChartType)
	assert.Equal(t, AggCount, got.Aggregation)
	assert.Empty(t, got.YColumn)

	got = NormalizeChartSpec(ChartSpec{ChartType: ChartHistogram, XColumn: "a", YColumn: "b", Aggregation: AggAvg})
	assert.Empty(t, got.YColumn)
	assert.Equal(t, AggCount, got.Aggregation)

	got = NormalizeChartSpec(ChartSpec{XColumn: "a", YColumn: "b", Aggregation: AggMedian})
	assert.Equal(t, ChartBar, got.ChartType)
	assert.Equal(t, AggMedian, got.Aggregation)
}

func TestExecuteHugeValuesStayEncodable(t *testing.T) {
	rows := [][]CellValue{{Text("a"), Number(1e308)}, {Text("a"), Number(1e308)}}

	series, err := ExecuteTable(ChartSpec{ChartType: ChartBar, XColumn: "k", YColumn: "v", Aggregation: AggAvg},
		[]string{"k", "v"}, rows, quiet)
	require.NoError(t, err)
	assert.Equal(t, []float64{1e308}, series.Values())
	_, err = json.Marshal(series)
	require.NoError(t, err)

	series, err = ExecuteTable(ChartSpec{ChartType: ChartBar, XColumn: "k", YColumn: "v", Aggregation: AggSum},
		[]string{"k", "v"}, rows, quiet)
	require.NoError(t, err)
	_, err = json.Marshal(series)
	require.NoError(t, err)

	series, err = ExecuteTable(ChartSpec{ChartType: ChartHistogram, XColumn: "v"},
		[]string{"v"}, [][]CellValue{{Number(-1e308)}, {Number(1e308)}}, quiet)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, series.Values())
	_, err = json.Marshal(series)
	require.NoError(t, err)
}

func TestChartTypeCategorical(t *testing.T) {
	for _, ct := range []ChartType{ChartBar, ChartLine, ChartPie, ChartScatter} {
		assert.True(t, ct.Categorical(), ct)
	}
	assert.False(t, ChartHistogram.Categorical())
}
