package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFiltersNoConstraints(t *testing.T) {
	view := salesView()
	got, err := ApplyFilters(view, nil)
	require.NoError(t, err)
	assert.Same(t, view, got)

	got, err = ApplyFilters(view, map[string][]string{"region": {}})
	require.NoError(t, err)
	assert.Equal(t, 4, got.Len())
}

func TestApplyFiltersCaseInsensitive(t *testing.T) {
	got, err := ApplyFilters(salesView(), map[string][]string{"region": {" EAST "}})
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, Number(10), got.Cell(0, 1))
	assert.Equal(t, Number(20), got.Cell(1, 1))
}

func TestApplyFiltersAndAcrossColumns(t *testing.T) {
	got, err := ApplyFilters(salesView(), map[string][]string{
		"region": {"east", "west"},
		"sales":  {"20", "5"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, Text("west"), got.Cell(0, 0))
	assert.Equal(t, Text("east"), got.Cell(1, 0))
}

func TestApplyFiltersUnknownColumn(t *testing.T) {
	_, err := ApplyFilters(salesView(), map[string][]string{"country": {"x"}})
	var cnf *ColumnNotFoundError
	require.True(t, errors.As(err, &cnf))
	assert.Equal(t, "country", cnf.Column)
}
