package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ============================================================================
// CELL VALUE - string | number | null as an explicit tagged value
// ============================================================================

// CellKind tags the dynamic type held by a CellValue.
type CellKind uint8

const (
	CellNull CellKind = iota
	CellNumber
	CellString
)

func (k CellKind) String() string {
	switch k {
	case CellNumber:
		return "number"
	case CellString:
		return "string"
	default:
		return "null"
	}
}

// CellValue is one table cell. The zero value is Null.
type CellValue struct {
	Kind CellKind
	Num  float64
	Str  string
}

// Null returns the absent cell.
func Null() CellValue { return CellValue{} }

// Number returns a numeric cell.
func Number(f float64) CellValue { return CellValue{Kind: CellNumber, Num: f} }

// Text returns a string cell.
func Text(s string) CellValue { return CellValue{Kind: CellString, Str: s} }

// FromAny converts a loosely typed Go value (as produced by JSON decoders or
// database drivers) into a CellValue.
func FromAny(v any) CellValue {
	switch x := v.(type) {
	case nil:
		return Null()
	case CellValue:
		return x
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return Number(f)
		}
		return Text(x.String())
	case string:
		return Text(x)
	case []byte:
		return Text(string(x))
	case bool:
		return Text(strconv.FormatBool(x))
	case fmt.Stringer:
		return Text(x.String())
	default:
		return Text(fmt.Sprint(x))
	}
}

// IsNull reports whether the cell is absent.
func (c CellValue) IsNull() bool { return c.Kind == CellNull }

// String renders the cell the way it is displayed as a category label.
// Null renders as the empty string.
func (c CellValue) String() string {
	switch c.Kind {
	case CellNumber:
		return formatNumber(c.Num)
	case CellString:
		return c.Str
	default:
		return ""
	}
}

// Key returns the trimmed grouping key. ok is false for null cells and for
// cells that are empty after trimming; such rows never form a category.
func (c CellValue) Key() (key string, ok bool) {
	if c.Kind == CellNull {
		return "", false
	}
	key = strings.TrimSpace(c.String())
	return key, key != ""
}

// ParseNumeric converts a cell into a finite float64. Strings are trimmed
// and must parse completely; null, empty, and non-finite values yield false.
func ParseNumeric(c CellValue) (float64, bool) {
	switch c.Kind {
	case CellNumber:
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return 0, false
		}
		return c.Num, true
	case CellString:
		s := strings.TrimSpace(c.Str)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// MarshalJSON encodes the cell as null, a JSON number, or a JSON string.
// Non-finite numbers have no JSON form and encode as null.
func (c CellValue) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellNumber:
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return []byte("null"), nil
		}
		return []byte(strconv.FormatFloat(c.Num, 'g', -1, 64)), nil
	case CellString:
		return json.Marshal(c.Str)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes any JSON scalar into a cell. Booleans become the
// strings "true"/"false"; nested objects and arrays keep their raw text.
func (c *CellValue) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON cell: %s", data)
	}
	*c = cellFromResult(gjson.ParseBytes(data))
	return nil
}

// cellFromResult maps a gjson result onto a cell. Booleans, objects and
// arrays keep their raw JSON text.
func cellFromResult(r gjson.Result) CellValue {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.Number:
		return Number(r.Num)
	case gjson.String:
		return Text(r.Str)
	default:
		return Text(r.Raw)
	}
}

// CellFromJSON converts a parsed gjson value into a cell.
func CellFromJSON(r gjson.Result) CellValue {
	return cellFromResult(r)
}

// formatNumber renders the shortest decimal that round-trips, without an
// exponent for ordinary magnitudes ("3", "2.5", "-0.125").
func formatNumber(f float64) string {
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
