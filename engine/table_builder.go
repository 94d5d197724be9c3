package engine

import (
	"strconv"
)

// ============================================================================
// TABLE BUILDER - Produces TableData from a Series
// ============================================================================
// Tabular rendering of a chart: one row per label, one value column per
// dataset. Used for CSV export and for accessible "view as table" output.
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title,omitempty"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// BuildTable produces a TableData from a series. xLabel names the label
// column ("Label" when empty). Values are written unrounded so the table
// round-trips the chart exactly.
func BuildTable(series *Series, xLabel string) *TableData {
	if xLabel == "" {
		xLabel = "Label"
	}
	if series == nil {
		return &TableData{Columns: []Column{}, Rows: [][]string{}}
	}

	columns := []Column{{Key: "label", Label: xLabel, Type: "text", Align: "left"}}
	for i, ds := range series.Datasets {
		columns = append(columns, Column{
			Key:   "value_" + strconv.Itoa(i),
			Label: ds.Label,
			Type:  "number",
			Align: "right",
		})
	}

	rows := make([][]string, 0, len(series.Labels))
	totals := make([]float64, len(series.Datasets))
	for i, label := range series.Labels {
		row := make([]string, 0, len(columns))
		row = append(row, label)
		for j, ds := range series.Datasets {
			var v float64
			if i < len(ds.Values) {
				v = ds.Values[i]
			}
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
			totals[j] = Finite(totals[j] + v)
		}
		rows = append(rows, row)
	}

	table := &TableData{
		Title:   series.Title,
		Columns: columns,
		Rows:    rows,
	}
	if len(rows) > 0 {
		values := make(map[string]string, len(totals))
		for j, total := range totals {
			values[columns[j+1].Key] = FormatValue(RoundTo2(total))
		}
		table.Summary = &Summary{Label: "Total", Values: values}
	}
	return table
}

// Header returns the column labels in order.
func (t *TableData) Header() []string {
	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Label
	}
	return header
}
