package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// ERRORS - configuration failures only
// ============================================================================
// Bad cell data is never an error: rows and contributions are skipped and
// empty groups zero-fill. Only a chart definition that does not match the
// table (or names an unknown type/aggregation) fails.
// ============================================================================

// ErrorKind classifies engine failures for callers that branch on them.
type ErrorKind string

const (
	KindColumnNotFound ErrorKind = "ColumnNotFound"
	KindInvalidSpec    ErrorKind = "InvalidSpec"
)

var (
	// ErrColumnNotFound matches any *ColumnNotFoundError via errors.Is.
	ErrColumnNotFound = errors.New("column not found")

	ErrMissingXColumn         = errors.New("chart spec has no x column")
	ErrUnsupportedChartType   = errors.New("unsupported chart type")
	ErrUnsupportedAggregation = errors.New("unsupported aggregation")
)

// ColumnNotFoundError reports a spec column that is absent from the table.
// It usually means the chart definition is stale relative to its source.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("column %q not found in table", e.Column)
	}
	return fmt.Sprintf("column %q not found in table (available: %s)",
		e.Column, strings.Join(e.Available, ", "))
}

// Is lets errors.Is(err, ErrColumnNotFound) match.
func (e *ColumnNotFoundError) Is(target error) bool {
	return target == ErrColumnNotFound
}

// Kind returns KindColumnNotFound.
func (e *ColumnNotFoundError) Kind() ErrorKind { return KindColumnNotFound }

// KindOf classifies an error returned by the engine. It returns "" for nil
// and for errors the engine did not produce.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrColumnNotFound) {
		return KindColumnNotFound
	}
	if errors.Is(err, ErrMissingXColumn) ||
		errors.Is(err, ErrUnsupportedChartType) ||
		errors.Is(err, ErrUnsupportedAggregation) {
		return KindInvalidSpec
	}
	return ""
}
