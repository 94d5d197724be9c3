package engine

// ============================================================================
// DALGOLITE ENGINE TYPES - Table in, Series out
// ============================================================================
// Table    - column names + positional rows of CellValue
// ChartSpec - what to draw: chart type, axis columns, aggregation
// Group    - one aggregated category (ephemeral, per call)
// Bin      - one histogram interval
// Series   - chart-library-ready labels + datasets
// ============================================================================

// ============================================================================
// TABLE
// ============================================================================

// Table is the raw tabular input: an ordered header and positional rows.
// Rows shorter than Columns are tolerated; missing cells read as Null.
type Table struct {
	Columns []string      `json:"columns" yaml:"columns"`
	Rows    [][]CellValue `json:"rows" yaml:"rows"`
}

// ColumnIndex returns the position of a column, or -1 when absent.
func (t Table) ColumnIndex(name string) int {
	return indexOf(t.Columns, name)
}

// View wraps the table as a TableView.
func (t Table) View() TableView {
	return NewTableView(t.Columns, t.Rows)
}

// ============================================================================
// CHART SPEC - Contract between the dashboard and the engine
// ============================================================================

// ChartType identifies the chart family to build.
type ChartType string

const (
	ChartBar       ChartType = "bar"
	ChartLine      ChartType = "line"
	ChartPie       ChartType = "pie"
	ChartScatter   ChartType = "scatter"
	ChartHistogram ChartType = "histogram"
)

// ChartTypes lists every supported chart type in display order.
var ChartTypes = []ChartType{ChartBar, ChartLine, ChartPie, ChartScatter, ChartHistogram}

// Valid reports whether t is a supported chart type.
func (t ChartType) Valid() bool {
	for _, c := range ChartTypes {
		if c == t {
			return true
		}
	}
	return false
}

// Categorical reports whether the chart groups rows by category
// (everything except histogram).
func (t ChartType) Categorical() bool {
	return t != ChartHistogram
}

// Aggregation names the reducer applied to each group.
type Aggregation string

const (
	AggCount  Aggregation = "count"
	AggSum    Aggregation = "sum"
	AggAvg    Aggregation = "avg"
	AggMin    Aggregation = "min"
	AggMax    Aggregation = "max"
	AggMedian Aggregation = "median"
)

// Aggregations lists every supported aggregation.
var Aggregations = []Aggregation{AggCount, AggSum, AggAvg, AggMin, AggMax, AggMedian}

// Valid reports whether a is a supported aggregation.
func (a Aggregation) Valid() bool {
	for _, x := range Aggregations {
		if x == a {
			return true
		}
	}
	return false
}

// ChartSpec defines what the engine should compute.
type ChartSpec struct {
	ChartType   ChartType   `json:"chartType" yaml:"chartType"`
	XColumn     string      `json:"xColumn" yaml:"xColumn"`
	YColumn     string      `json:"yColumn,omitempty" yaml:"yColumn,omitempty"`
	Aggregation Aggregation `json:"aggregation,omitempty" yaml:"aggregation,omitempty"`
	Title       string      `json:"title,omitempty" yaml:"title,omitempty"`

	// Filters restricts rows before aggregation.
	// Keys are column names; OR within a column, AND across columns.
	Filters map[string][]string `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// ============================================================================
// GROUP / BIN - Intermediate computation results
// ============================================================================

// Group is one category produced by the aggregator.
type Group struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Rows  int     `json:"rows"` // rows whose x-key matched, numeric or not

	contributions []float64
}

// Bin is one histogram interval. The last bin is closed on both ends;
// every other bin is closed-open.
type Bin struct {
	LowerBound float64 `json:"lowerBound"`
	UpperBound float64 `json:"upperBound"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
}

// ============================================================================
// SERIES - Render-ready output
// ============================================================================

// Series is the chart-ready output: one label per point and one or more
// datasets, each carrying exactly len(Labels) values.
type Series struct {
	ChartType ChartType `json:"chartType"`
	Title     string    `json:"title,omitempty"`
	Labels    []string  `json:"labels"`
	Datasets  []Dataset `json:"datasets"`
}

// Dataset is one value array plus its style metadata.
type Dataset struct {
	Label  string    `json:"label"`
	Values []float64 `json:"data"`

	// BackgroundColor is the solid fill; BackgroundColors is per-point
	// (pie). Exactly one of them is set.
	BackgroundColor  string   `json:"backgroundColor,omitempty"`
	BackgroundColors []string `json:"backgroundColors,omitempty"`
	BorderColor      string   `json:"borderColor,omitempty"`
	BorderWidth      int      `json:"borderWidth,omitempty"`
}

// IsEmpty reports whether the series has nothing to draw. Callers render a
// "no data" state for empty series; it is not an error.
func (s *Series) IsEmpty() bool {
	return s == nil || len(s.Labels) == 0
}

// Values returns the first dataset's values (nil when there is none).
func (s *Series) Values() []float64 {
	if s == nil || len(s.Datasets) == 0 {
		return nil
	}
	return s.Datasets[0].Values
}

func indexOf(items []string, name string) int {
	for i, item := range items {
		if item == name {
			return i
		}
	}
	return -1
}
