package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	// Pure-Go SQLite driver, registered as "sqlite".
	_ "modernc.org/sqlite"

	"github.com/DalgoT4D/DalgoLite-sub001/engine"
)

// ============================================================================
// SQLITE HELPER - Runs a query and returns its result set as a Table
// ============================================================================

// LoadSQLite opens the SQLite database at path, runs query and converts the
// result set to a Table. Column names come from the query.
func LoadSQLite(ctx context.Context, path, query string) (engine.Table, error) {
	if strings.TrimSpace(path) == "" {
		return engine.Table{}, fmt.Errorf("sqlite: path must not be empty")
	}
	if strings.TrimSpace(query) == "" {
		return engine.Table{}, fmt.Errorf("sqlite: query must not be empty")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return engine.Table{}, fmt.Errorf("sqlite: open: %w", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return engine.Table{}, fmt.Errorf("sqlite: ping: %w", err)
	}

	return QueryTable(ctx, db, query)
}

// QueryTable runs query on db and converts the result set to a Table.
func QueryTable(ctx context.Context, db *sql.DB, query string, args ...any) (engine.Table, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return engine.Table{}, fmt.Errorf("sqlite: query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return engine.Table{}, fmt.Errorf("sqlite: columns: %w", err)
	}

	table := engine.Table{Columns: columns}
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return engine.Table{}, fmt.Errorf("sqlite: scan: %w", err)
		}
		row := make([]engine.CellValue, len(columns))
		for i, v := range values {
			row[i] = cellFromDriver(v)
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return engine.Table{}, fmt.Errorf("sqlite: rows: %w", err)
	}
	return table, nil
}

// cellFromDriver converts a database/sql driver value to a cell.
func cellFromDriver(v any) engine.CellValue {
	switch x := v.(type) {
	case time.Time:
		return engine.Text(x.Format(time.RFC3339))
	default:
		return engine.FromAny(x)
	}
}
