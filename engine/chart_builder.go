package engine

// ============================================================================
// SERIES BUILDER - Produces Series from ChartSpec + Groups/Bins
// ============================================================================
// pie                 - one dataset, one palette color per label (cyclic)
// bar, line, scatter  - one dataset, "{Agg} of {Column}", one solid color
// histogram           - one dataset over bin labels, labeled by x column
// ============================================================================

// BuildSeries wraps categorical groups into a chart-ready series. spec is
// expected to be normalized.
func BuildSeries(spec ChartSpec, groups []Group, opts ...Option) *Series {
	return buildCategorical(spec, groups, applyOptions(opts))
}

// BuildHistogramSeries wraps histogram bins into a chart-ready series.
func BuildHistogramSeries(spec ChartSpec, bins []Bin, opts ...Option) *Series {
	return buildHistogram(spec, bins, applyOptions(opts))
}

func buildCategorical(spec ChartSpec, groups []Group, cfg *config) *Series {
	labels := GroupLabels(groups)
	ds := Dataset{
		Label:  DatasetLabel(spec),
		Values: GroupValues(groups),
	}

	if spec.ChartType == ChartPie {
		ds.BackgroundColors = assignColors(cfg.Palette, len(labels))
		ds.BorderColor = "#FFFFFF"
		ds.BorderWidth = 1
	} else {
		ds.BackgroundColor = cfg.FillColor
		ds.BorderColor = cfg.BorderColor
		ds.BorderWidth = 1
	}

	return &Series{
		ChartType: spec.ChartType,
		Title:     spec.Title,
		Labels:    labels,
		Datasets:  []Dataset{ds},
	}
}

func buildHistogram(spec ChartSpec, bins []Bin, cfg *config) *Series {
	labels := make([]string, len(bins))
	values := make([]float64, len(bins))
	for i, b := range bins {
		labels[i] = b.Label
		values[i] = float64(b.Count)
	}

	return &Series{
		ChartType: ChartHistogram,
		Title:     spec.Title,
		Labels:    labels,
		Datasets: []Dataset{{
			Label:           spec.XColumn,
			Values:          values,
			BackgroundColor: cfg.HistogramFillColor,
			BorderColor:     cfg.HistogramBorderColor,
			BorderWidth:     1,
		}},
	}
}

// assignColors returns count colors drawn cyclically from palette.
func assignColors(palette []string, count int) []string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}
