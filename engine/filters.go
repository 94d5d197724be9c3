package engine

import (
	"sort"
	"strings"
)

// ============================================================================
// FILTERS - Column-value filtering via TableView
// ============================================================================
// Single-pass filter: checks ALL column constraints per row in one loop.
// Returns a SubView (index list into parent) - zero data copy.
// ============================================================================

// ApplyFilters returns a view of rows matching all column filters.
// Columns are AND-combined; values within a column are OR-combined and
// compared case-insensitively on the trimmed key. Empty filter = no
// restriction. A filter on a column the view does not have is a
// *ColumnNotFoundError.
func ApplyFilters(view TableView, filters map[string][]string) (TableView, error) {
	names := make([]string, 0, len(filters))
	for name, allowed := range filters {
		if len(allowed) > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return view, nil
	}
	sort.Strings(names)

	type constraint struct {
		col int
		set map[string]bool
	}
	constraints := make([]constraint, 0, len(names))
	for _, name := range names {
		col := ColumnIndex(view, name)
		if col < 0 {
			return nil, &ColumnNotFoundError{Column: name, Available: view.Columns()}
		}
		constraints = append(constraints, constraint{col: col, set: toLowerSet(filters[name])})
	}

	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		pass := true
		for _, c := range constraints {
			key, _ := view.Cell(i, c.col).Key()
			if !c.set[strings.ToLower(key)] {
				pass = false
				break
			}
		}
		if pass {
			indices = append(indices, i)
		}
	}

	return newSubView(view, indices), nil
}

// toLowerSet converts a string slice to a trimmed, lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(strings.TrimSpace(item))] = true
	}
	return set
}
