package helpers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DalgoT4D/DalgoLite-sub001/engine"
)

// LoadFile loads a table from disk, dispatching on the file extension:
// .csv and .json are parsed in memory, .db/.sqlite/.sqlite3 run query
// against the database.
func LoadFile(ctx context.Context, path, query string) (engine.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path, query)
	case ".csv", ".json":
	default:
		return engine.Table{}, fmt.Errorf("unsupported file type %q (want .csv, .json, .db, .sqlite)", ext)
	}

	if err := ctx.Err(); err != nil {
		return engine.Table{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.Table{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if ext == ".json" {
		table, err := LoadJSON(data)
		if err != nil {
			return engine.Table{}, fmt.Errorf("%s: %w", path, err)
		}
		return table, nil
	}
	table, err := LoadCSV(data)
	if err != nil {
		return engine.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
