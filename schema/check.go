package schema

import (
	"fmt"

	"github.com/DalgoT4D/DalgoLite-sub001/engine"
)

// Check reports conditions under which spec will run but draw a degenerate
// or truncated chart. Warnings never block execution; unknown chart types
// and aggregations are left to engine.ValidateChartSpec.
func (p *Profile) Check(spec engine.ChartSpec) []Warning {
	spec = engine.NormalizeChartSpec(spec)
	var warnings []Warning

	x := p.Column(spec.XColumn)
	if x == nil {
		warnings = append(warnings, Warning{
			Code:    WarnMissingColumn,
			Column:  spec.XColumn,
			Message: fmt.Sprintf("column %q is not in the table", spec.XColumn),
		})
	}

	if spec.YColumn != "" {
		y := p.Column(spec.YColumn)
		switch {
		case y == nil:
			warnings = append(warnings, Warning{
				Code:    WarnMissingColumn,
				Column:  spec.YColumn,
				Message: fmt.Sprintf("column %q is not in the table", spec.YColumn),
			})
		case spec.Aggregation != engine.AggCount && y.NumericRatio == 0:
			warnings = append(warnings, Warning{
				Code:    WarnNonNumericY,
				Column:  y.Name,
				Message: fmt.Sprintf("%s of %q has no numeric values; every category will be 0", spec.Aggregation, y.Name),
			})
		}
	}

	if x == nil {
		return warnings
	}

	if !spec.ChartType.Categorical() {
		if x.Kind != KindNumeric {
			warnings = append(warnings, Warning{
				Code:    WarnNonNumericBins,
				Column:  x.Name,
				Message: fmt.Sprintf("histogram of %q: column is %s, non-numeric values are ignored", x.Name, x.Kind),
			})
		}
		return warnings
	}

	if x.Distinct > p.CategoryLimit {
		warnings = append(warnings, Warning{
			Code:   WarnCategoryTruncated,
			Column: x.Name,
			Message: fmt.Sprintf("%q has %d distinct values; only the first %d are charted",
				x.Name, x.Distinct, p.CategoryLimit),
		})
	} else if x.UniquePerRow {
		warnings = append(warnings, Warning{
			Code:    WarnIdentifierX,
			Column:  x.Name,
			Message: fmt.Sprintf("%q is unique per row, likely an identifier", x.Name),
		})
	}

	return warnings
}
