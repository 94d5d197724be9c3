package helpers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DalgoT4D/DalgoLite-sub001/engine"
)

func TestLoadJSONColumnar(t *testing.T) {
	table, err := LoadJSON([]byte(`{
		"columns": ["region", "sales"],
		"rows": [["east", 10], ["west", null], {"sales": "7", "region": "north"}, ["south"]]
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"region", "sales"}, table.Columns)
	require.Len(t, table.Rows, 4)
	assert.Equal(t, []engine.CellValue{engine.Text("east"), engine.Number(10)}, table.Rows[0])
	assert.True(t, table.Rows[1][1].IsNull())
	assert.Equal(t, []engine.CellValue{engine.Text("north"), engine.Text("7")}, table.Rows[2])
	assert.Len(t, table.Rows[3], 1)
}

func TestLoadJSONRecords(t *testing.T) {
	table, err := LoadJSON([]byte(`[
		{"region": "east", "sales": 10},
		{"sales": 5, "region": "west", "rep": "ann"},
		{"region": "east", "active": true}
	]`))
	require.NoError(t, err)

	assert.Equal(t, []string{"region", "sales", "rep", "active"}, table.Columns)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, engine.Number(5), table.Rows[1][1])
	assert.Equal(t, engine.Text("ann"), table.Rows[1][2])
	assert.True(t, table.Rows[0][2].IsNull(), "missing keys are null")
	assert.Equal(t, engine.Text("true"), table.Rows[2][3])
}

func TestLoadJSONErrors(t *testing.T) {
	_, err := LoadJSON([]byte(`{"columns": [`))
	assert.True(t, errors.Is(err, ErrInvalidJSON))

	_, err = LoadJSON([]byte(`42`))
	assert.Error(t, err)

	_, err = LoadJSON([]byte(`{"rows": []}`))
	assert.Error(t, err)

	_, err = LoadJSON([]byte(`[{"a": 1}, 2]`))
	assert.Error(t, err)
}
