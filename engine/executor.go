package engine

import (
	"fmt"
	"strings"
)

// ============================================================================
// EXECUTOR - Entry point
// ============================================================================
// Entry point: Execute(spec, view, opts...)
//
// Pipeline:
//   1. Normalize the ChartSpec (defaults, casing)
//   2. Validate chart type / aggregation
//   3. Resolve x / y columns → ColumnNotFound on mismatch
//   4. Apply filters → SubView
//   5. Categorical aggregation or histogram binning
//   6. Build the Series
//
// Pure computation over caller data: no I/O, no shared state between calls.
// ============================================================================

// Execute runs a ChartSpec against a TableView and returns a chart-ready
// Series. The only errors are configuration errors (see KindOf); bad cell
// data degrades into skipped rows or zero values, and an input with nothing
// to plot yields an empty, non-nil Series.
func Execute(spec ChartSpec, view TableView, opts ...Option) (*Series, error) {
	cfg := applyOptions(opts)

	spec = NormalizeChartSpec(spec)
	if err := ValidateChartSpec(spec); err != nil {
		return nil, err
	}

	xCol := ColumnIndex(view, spec.XColumn)
	if xCol < 0 {
		return nil, &ColumnNotFoundError{Column: spec.XColumn, Available: view.Columns()}
	}
	yCol := -1
	if spec.YColumn != "" {
		yCol = ColumnIndex(view, spec.YColumn)
		if yCol < 0 {
			return nil, &ColumnNotFoundError{Column: spec.YColumn, Available: view.Columns()}
		}
	}

	filtered, err := ApplyFilters(view, spec.Filters)
	if err != nil {
		return nil, err
	}

	if !spec.ChartType.Categorical() {
		bins := ComputeHistogram(filtered, xCol, cfg.MaxBins)
		cfg.Logger.Printf("📊 dalgolite: histogram of %q - %d rows, %d bins",
			spec.XColumn, filtered.Len(), len(bins))
		return buildHistogram(spec, bins, cfg), nil
	}

	groups := AggregateCategories(filtered, xCol, yCol, spec.Aggregation, cfg.CategoryLimit)
	cfg.Logger.Printf("📊 dalgolite: %s %s by %q - %d rows, %d categories",
		spec.ChartType, spec.Aggregation, spec.XColumn, filtered.Len(), len(groups))
	return buildCategorical(spec, groups, cfg), nil
}

// ExecuteTable is Execute over a plain header and rows.
func ExecuteTable(spec ChartSpec, columns []string, rows [][]CellValue, opts ...Option) (*Series, error) {
	return Execute(spec, NewTableView(columns, rows), opts...)
}

// ============================================================================
// CHARTSPEC NORMALIZATION
// ============================================================================

// NormalizeChartSpec applies deterministic defaults:
//   - chart type and aggregation are trimmed and lowercased
//   - empty chart type → bar
//   - aggregation → count when empty or when there is no y column
//   - histogram ignores the y column and aggregation
func NormalizeChartSpec(spec ChartSpec) ChartSpec {
	spec.ChartType = ChartType(strings.ToLower(strings.TrimSpace(string(spec.ChartType))))
	spec.Aggregation = Aggregation(strings.ToLower(strings.TrimSpace(string(spec.Aggregation))))
	if strings.TrimSpace(spec.YColumn) == "" {
		spec.YColumn = ""
	}

	if spec.ChartType == "" {
		spec.ChartType = ChartBar
	}
	if !spec.ChartType.Categorical() {
		spec.YColumn = ""
		spec.Aggregation = AggCount
	}
	if spec.Aggregation == "" || spec.YColumn == "" {
		spec.Aggregation = AggCount
	}
	return spec
}

// ValidateChartSpec checks a normalized spec for configuration errors that
// do not depend on the table.
func ValidateChartSpec(spec ChartSpec) error {
	if !spec.ChartType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedChartType, spec.ChartType)
	}
	if !spec.Aggregation.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedAggregation, spec.Aggregation)
	}
	if strings.TrimSpace(spec.XColumn) == "" {
		return ErrMissingXColumn
	}
	return nil
}
