package helpers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/DalgoT4D/DalgoLite-sub001/engine"
)

// ============================================================================
// CSV HELPER - Parses CSV data into an engine.Table
// ============================================================================
// Consumer reads the CSV from wherever it lives (file, S3, Sheets).
// This helper converts the raw bytes into a positional table. Every cell is
// text; the engine parses numbers where an aggregation needs them.
// ============================================================================

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadCSV parses CSV bytes into a Table. The first record is the header.
// Rows keep their own width: short rows stay short, long rows keep their
// extra cells.
func LoadCSV(data []byte) (engine.Table, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		return engine.Table{}, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	columns := make([]string, len(headers))
	for i, h := range headers {
		columns[i] = strings.TrimSpace(h)
	}

	var rows [][]engine.CellValue
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		row := make([]engine.CellValue, len(record))
		for i, val := range record {
			row[i] = engine.Text(val)
		}
		rows = append(rows, row)
	}

	return engine.Table{Columns: columns, Rows: rows}, nil
}

// LoadCSVView parses CSV into a TableView (convenience wrapper).
func LoadCSVView(data []byte) (engine.TableView, error) {
	table, err := LoadCSV(data)
	if err != nil {
		return nil, err
	}
	return table.View(), nil
}
