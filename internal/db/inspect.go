package db

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jmoiron/sqlx"
)

// previewRowLimit bounds how many rows Inspect prints per table.
const previewRowLimit = 10

// previewColumns fixes the column order shown for the known tables so the
// preview stays readable. Unknown tables fall back to every column.
var previewColumns = map[string]string{
	"airport":   "iata, name, municipality, country_code, timezone, latitude, longitude",
	"country":   "code, name, continent_code",
	"continent": "code, name",
}

// Inspect prints every table of the built database with a bounded row
// preview. Diagnostic aid for maintainers; performs no checks.
func Inspect(ctx context.Context, conn *sqlx.DB, w io.Writer) error {
	var tables []string
	err := conn.SelectContext(ctx, &tables,
		"SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	fmt.Fprintf(w, "Tables (%d): %s\n\n", len(tables), strings.Join(tables, ", "))

	for _, table := range tables {
		// The FTS shadow tables are implementation detail, not content.
		if strings.HasPrefix(table, "airport_search") {
			fmt.Fprintf(w, "Table: %s\n  [search index, no preview shown]\n\n", table)
			continue
		}

		cols, ok := previewColumns[table]
		if !ok {
			cols = "*"
		}
		rows, err := conn.QueryxContext(ctx,
			fmt.Sprintf("SELECT %s FROM %s LIMIT %d", cols, table, previewRowLimit))
		if err != nil {
			return fmt.Errorf("failed to preview %s: %w", table, err)
		}

		fmt.Fprintf(w, "Table: %s\n", table)
		for rows.Next() {
			record := map[string]interface{}{}
			if err := rows.MapScan(record); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan %s: %w", table, err)
			}
			columns, _ := rows.Columns()
			parts := make([]string, 0, len(columns))
			for _, col := range columns {
				parts = append(parts, fmt.Sprintf("%s=%v", col, record[col]))
			}
			fmt.Fprintf(w, "  %s\n", strings.Join(parts, ", "))
		}
		rows.Close()
		fmt.Fprintln(w)
	}
	return nil
}
