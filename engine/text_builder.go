package engine

import (
	"fmt"
)

// ============================================================================
// TEXT BUILDER - One-line summary of a Series
// ============================================================================

// SeriesSummary is a compact description of a series for text output and
// chart captions.
type SeriesSummary struct {
	Points   int     `json:"points"`
	Total    float64 `json:"total"`
	TopLabel string  `json:"topLabel,omitempty"`
	TopValue float64 `json:"topValue,omitempty"`
	Reply    string  `json:"reply"`
}

// Summarize describes the first dataset of a series. Ties for the top value
// keep the earliest label.
func Summarize(series *Series) *SeriesSummary {
	if series.IsEmpty() {
		return &SeriesSummary{Reply: "No data for this configuration."}
	}

	values := series.Values()
	summary := &SeriesSummary{Points: len(series.Labels)}
	top := -1
	for i, v := range values {
		summary.Total = Finite(summary.Total + v)
		if top < 0 || v > values[top] {
			top = i
		}
	}
	if top >= 0 && top < len(series.Labels) {
		summary.TopLabel = series.Labels[top]
		summary.TopValue = values[top]
	}

	noun := pluralize(summary.Points, "category", "categories")
	if series.ChartType == ChartHistogram {
		noun = pluralize(summary.Points, "bin", "bins")
	}

	summary.Reply = fmt.Sprintf("%d %s; total %s; top: %s (%s)",
		summary.Points, noun, FormatValue(RoundTo2(summary.Total)),
		summary.TopLabel, FormatValue(RoundTo2(summary.TopValue)))
	return summary
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
