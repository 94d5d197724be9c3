package helpers

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/DalgoT4D/DalgoLite-sub001/engine"
)

// ============================================================================
// JSON HELPER - Parses JSON documents into an engine.Table
// ============================================================================
// Two shapes are accepted:
//
//	{"columns": ["region", "sales"], "rows": [["east", 10], ["west", null]]}
//	[{"region": "east", "sales": 10}, {"region": "west"}]
//
// In the second shape columns appear in first-seen key order and a key a
// record does not carry is a null cell.
// ============================================================================

// ErrInvalidJSON is returned for input that is not well-formed JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// LoadJSON parses a JSON document into a Table, keeping number, string and
// null cells distinct.
func LoadJSON(data []byte) (engine.Table, error) {
	if !gjson.ValidBytes(data) {
		return engine.Table{}, ErrInvalidJSON
	}

	doc := gjson.ParseBytes(data)
	switch {
	case doc.IsObject():
		return loadColumnar(doc)
	case doc.IsArray():
		return loadRecords(doc)
	default:
		return engine.Table{}, fmt.Errorf("unsupported JSON document: expected object or array, got %s", doc.Type)
	}
}

// loadColumnar reads the {"columns", "rows"} shape. Rows may be arrays
// (positional) or objects (keyed by column name).
func loadColumnar(doc gjson.Result) (engine.Table, error) {
	cols := doc.Get("columns")
	if !cols.IsArray() {
		return engine.Table{}, fmt.Errorf("JSON table: \"columns\" must be an array")
	}

	var table engine.Table
	cols.ForEach(func(_, c gjson.Result) bool {
		table.Columns = append(table.Columns, c.String())
		return true
	})

	var err error
	doc.Get("rows").ForEach(func(key, r gjson.Result) bool {
		switch {
		case r.IsArray():
			var row []engine.CellValue
			r.ForEach(func(_, cell gjson.Result) bool {
				row = append(row, engine.CellFromJSON(cell))
				return true
			})
			table.Rows = append(table.Rows, row)
		case r.IsObject():
			row := make([]engine.CellValue, len(table.Columns))
			for i, name := range table.Columns {
				row[i] = engine.CellFromJSON(r.Get(gjson.Escape(name)))
			}
			table.Rows = append(table.Rows, row)
		default:
			err = fmt.Errorf("JSON table: row %s is %s, expected array or object", key.Raw, r.Type)
			return false
		}
		return true
	})
	if err != nil {
		return engine.Table{}, err
	}
	return table, nil
}

// loadRecords reads an array of flat objects.
func loadRecords(doc gjson.Result) (engine.Table, error) {
	var table engine.Table
	index := make(map[string]int)
	var records []gjson.Result

	var err error
	doc.ForEach(func(key, rec gjson.Result) bool {
		if !rec.IsObject() {
			err = fmt.Errorf("JSON records: element %s is %s, expected object", key.Raw, rec.Type)
			return false
		}
		rec.ForEach(func(k, _ gjson.Result) bool {
			if _, seen := index[k.Str]; !seen {
				index[k.Str] = len(table.Columns)
				table.Columns = append(table.Columns, k.Str)
			}
			return true
		})
		records = append(records, rec)
		return true
	})
	if err != nil {
		return engine.Table{}, err
	}

	table.Rows = make([][]engine.CellValue, len(records))
	for i, rec := range records {
		row := make([]engine.CellValue, len(table.Columns))
		rec.ForEach(func(k, v gjson.Result) bool {
			row[index[k.Str]] = engine.CellFromJSON(v)
			return true
		})
		table.Rows[i] = row
	}
	return table, nil
}
