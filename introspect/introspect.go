package introspect

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mwallis/tablegen/schema"
	"github.com/mwallis/tablegen/sqltype"
)

// ListTables returns the base table names of the public schema, ordered
// by name.
func ListTables(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	tablesQuery := `
	SELECT table_name
	FROM information_schema.tables
	WHERE table_schema = 'public' AND table_type='BASE TABLE'
	ORDER BY table_name;
	`

	rows, err := pool.Query(ctx, tablesQuery)
	if err != nil {
		return nil, fmt.Errorf("querying tables: %v", err)
	}
	defer rows.Close()

	var tableNames []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, fmt.Errorf("scanning table name: %v", err)
		}
		tableNames = append(tableNames, tableName)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterating table rows: %v", rows.Err())
	}

	return tableNames, nil
}

// ListColumns returns the raw column descriptors of one table in
// ordinal (schema-reported) order. The reported data_type name is kept
// verbatim for error messages; the type code is derived from it.
func ListColumns(ctx context.Context, pool *pgxpool.Pool, tableName string) ([]schema.RawColumn, error) {
	columnsQuery := `
	SELECT column_name, data_type
	FROM information_schema.columns
	WHERE table_schema = 'public' AND table_name = $1
	ORDER BY ordinal_position;
	`

	rows, err := pool.Query(ctx, columnsQuery, tableName)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %v", err)
	}
	defer rows.Close()

	var columns []schema.RawColumn
	for rows.Next() {
		var name, dataType string
		if err := rows.Scan(&name, &dataType); err != nil {
			return nil, fmt.Errorf("scanning column: %v", err)
		}
		columns = append(columns, schema.RawColumn{
			Name:     name,
			TypeCode: sqltype.CodeForDataType(dataType),
			TypeName: dataType,
		})
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterating column rows: %v", rows.Err())
	}

	return columns, nil
}
