package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// AGGREGATORS - Categorical grouping and reduction via TableView
// ============================================================================
// One pass over the rows: trimmed x-key → contributions, first-seen order.
// Rows with an empty key never form a category. A row with a key always
// registers its category, even when its y-cell does not parse; groups
// without numeric contributions reduce to 0.
// ============================================================================

// AggregateCategories groups rows by the x column and reduces each group.
// yCol < 0 means no y column, which forces count semantics. At most limit
// categories are emitted (limit <= 0 uses DefaultCategoryLimit); rows of
// categories first seen after the cap is reached are dropped.
func AggregateCategories(view TableView, xCol, yCol int, agg Aggregation, limit int) []Group {
	if limit <= 0 {
		limit = DefaultCategoryLimit
	}
	countOnly := yCol < 0 || agg == AggCount
	if countOnly {
		agg = AggCount
	}

	index := make(map[string]int)
	groups := make([]Group, 0)

	for i := 0; i < view.Len(); i++ {
		key, ok := view.Cell(i, xCol).Key()
		if !ok {
			continue
		}

		gi, exists := index[key]
		if !exists {
			if len(groups) >= limit {
				continue
			}
			gi = len(groups)
			index[key] = gi
			groups = append(groups, Group{Label: key})
		}

		g := &groups[gi]
		g.Rows++
		if countOnly {
			g.contributions = append(g.contributions, 1)
			continue
		}
		if v, ok := ParseNumeric(view.Cell(i, yCol)); ok {
			g.contributions = append(g.contributions, v)
		}
	}

	for i := range groups {
		groups[i].Value = Reduce(agg, groups[i].contributions)
		groups[i].contributions = nil
	}
	return groups
}

// GroupLabels returns the labels of groups in order.
func GroupLabels(groups []Group) []string {
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
	}
	return labels
}

// GroupValues returns the reduced values of groups in order.
func GroupValues(groups []Group) []float64 {
	values := make([]float64, len(groups))
	for i, g := range groups {
		values[i] = g.Value
	}
	return values
}

// ============================================================================
// REDUCTION
// ============================================================================

// Reduce collapses a group's contributions into one number. An empty group
// reduces to 0 for every aggregation, and a sum that overflows saturates at
// ±math.MaxFloat64, so no NaN or Inf reaches a chart.
func Reduce(agg Aggregation, values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	switch agg {
	case AggCount:
		return float64(len(values))
	case AggAvg:
		return Finite(Mean(values))
	case AggMin:
		return floats.Min(values)
	case AggMax:
		return floats.Max(values)
	case AggMedian:
		return Finite(Median(values))
	default:
		return Finite(floats.Sum(values))
	}
}

// Mean is the arithmetic mean. When the intermediate sum overflows it is
// recomputed incrementally, so values near ±math.MaxFloat64 still average
// to a finite result. Empty input returns 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if m := stat.Mean(values, nil); !math.IsInf(m, 0) && !math.IsNaN(m) {
		return m
	}
	var m float64
	for i, v := range values {
		n := float64(i + 1)
		m += v/n - m/n
	}
	return m
}

// Finite saturates infinities at ±math.MaxFloat64 and maps NaN to 0.
func Finite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

// Median returns the middle value of values, averaging the two central
// values for even lengths. values is not modified. Empty input returns 0.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if n%2 == 0 {
		return sorted[n/2-1]/2 + sorted[n/2]/2
	}
	return sorted[n/2]
}

// ============================================================================
// LABELS & FORMATTING UTILITIES
// ============================================================================

// AggregationName returns the display name of an aggregation ("Sum", "Avg").
func AggregationName(agg Aggregation) string {
	if agg == "" {
		agg = AggCount
	}
	return cases.Title(language.English).String(string(agg))
}

// DatasetLabel synthesizes "{Aggregation} of {Column}". The column is the y
// column when one is used with a non-count aggregation, else the x column.
func DatasetLabel(spec ChartSpec) string {
	column := spec.XColumn
	if spec.YColumn != "" && spec.Aggregation != AggCount {
		column = spec.YColumn
	}
	return fmt.Sprintf("%s of %s", AggregationName(spec.Aggregation), column)
}

// RoundTo2 rounds to 2 decimal places. Magnitudes of 1e15 and above carry
// no fractional digits and are returned unchanged.
func RoundTo2(v float64) float64 {
	if math.Abs(v) >= 1e15 {
		return v
	}
	return math.Round(v*100) / 100
}

// FormatValue renders a value for tables and text: whole numbers without
// decimals and thousands separators, fractional values with two decimals.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return FormatInt(int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int64) string {
	return humanize.Comma(n)
}
