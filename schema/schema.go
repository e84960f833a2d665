package schema

import (
	"fmt"
	"unicode"

	"github.com/mwallis/tablegen/naming"
	"github.com/mwallis/tablegen/sqltype"
)

// RawColumn is a column descriptor exactly as introspection reported it.
type RawColumn struct {
	Name     string
	TypeCode sqltype.Code
	TypeName string
}

// ColumnDef is a resolved column: the raw name plus the derived field
// name and semantic type. Derived once, immutable afterwards.
type ColumnDef struct {
	RawName   string
	Semantic  sqltype.Semantic
	FieldName string
}

// TableSchema is one table ready for emission. Columns keep the
// schema-reported order end to end.
type TableSchema struct {
	RawTableName string
	ClassName    string
	Columns      []ColumnDef
}

// Build assembles a TableSchema from raw introspection output. It fails
// on empty or unusable names and on any column type outside the
// supported whitelist, naming the table and column in the error.
func Build(rawTable string, cols []RawColumn) (*TableSchema, error) {
	if rawTable == "" {
		return nil, fmt.Errorf("empty table name")
	}
	className := naming.ClassName(rawTable)
	if className == "" {
		return nil, fmt.Errorf("table %q: name normalizes to an empty class name", rawTable)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %q has no columns", rawTable)
	}

	ts := &TableSchema{
		RawTableName: rawTable,
		ClassName:    className,
		Columns:      make([]ColumnDef, 0, len(cols)),
	}
	for i, col := range cols {
		if col.Name == "" {
			return nil, fmt.Errorf("table %q: column %d has an empty name", rawTable, i+1)
		}
		fieldName := naming.FieldName(col.Name)
		if !validIdentifier(fieldName) {
			return nil, fmt.Errorf("table %q: column %q normalizes to unusable field name %q",
				rawTable, col.Name, fieldName)
		}
		sem, err := sqltype.Map(col.TypeCode, col.TypeName)
		if err != nil {
			return nil, fmt.Errorf("table %q column %q: %w", rawTable, col.Name, err)
		}
		ts.Columns = append(ts.Columns, ColumnDef{
			RawName:   col.Name,
			Semantic:  sem,
			FieldName: fieldName,
		})
	}
	return ts, nil
}

// validIdentifier reports whether s starts with a letter and contains
// only letters and digits.
func validIdentifier(s string) bool {
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
