// Package emitter renders one generated Go source file per table from a
// populated TableSchema. Emission is pure: the same schema, options and
// timestamp always produce byte-identical text.
package emitter

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/mwallis/tablegen/naming"
	"github.com/mwallis/tablegen/schema"
)

// DefaultRuntimeImport is the support package generated accessor code
// imports when the caller does not override it. The import is emitted
// with an explicit dbaccess alias, so an override may live under any
// package name.
const DefaultRuntimeImport = "github.com/mwallis/tablegen/dbaccess"

// timestampLayout formats the generation time in file headers.
const timestampLayout = "02 Jan 2006 15:04:05"

// Options control emission for one run. They are threaded explicitly
// through every call; nothing is read from package state.
type Options struct {
	// PackageName is the package clause of generated files. Empty
	// omits the package declaration entirely.
	PackageName string
	// IncludeQueryAccessors adds the row-population method, the
	// SELECT builder and the fetch-all function to each file.
	IncludeQueryAccessors bool
	// RuntimeImport is the import path of the dbaccess support
	// package. Empty means DefaultRuntimeImport.
	RuntimeImport string
}

type fileData struct {
	TableName   string
	Timestamp   string
	PackageName string
	Import      string
	ClassName   string
	Accessors   bool
	Fields      []fieldData
	// SelectSQL is already a quoted Go string literal; raw column
	// names may contain characters that need escaping.
	SelectSQL string
}

type fieldData struct {
	Name     string
	Export   string
	GoType   string
	Accessor string
	RawName  string
	Index    int
}

const fileTemplate = `// Code generated by tablegen from the {{.TableName}} database table.
// Generated on {{.Timestamp}}.
{{if .PackageName}}
package {{.PackageName}}
{{end}}{{if .Accessors}}
import (
	"context"

	dbaccess "{{.Import}}"
)
{{end}}
// {{.ClassName}} mirrors one row of the {{.TableName}} table.
type {{.ClassName}} struct {
{{- range .Fields}}
	// {{.Name}} holds the table column {{.RawName}}.
	{{.Name}} {{.GoType}}
{{- end}}
}
{{if .Accessors}}
var _ dbaccess.RecordFetcher[{{.ClassName}}] = (*{{.ClassName}})(nil)
{{end}}
// New{{.ClassName}} returns a {{.ClassName}} with every field at its zero value.
func New{{.ClassName}}() *{{.ClassName}} {
	return &{{.ClassName}}{}
}
{{if .Accessors}}
// FetchRows reads every remaining row in rs into records, one
// {{.ClassName}} per row, and reports whether the scan completed without
// a data-access failure.
func (o *{{.ClassName}}) FetchRows(rs dbaccess.ResultSet, records *[]{{.ClassName}}) bool {
	for rs.Next() {
		obj := New{{.ClassName}}()
		var err error
{{- range .Fields}}
		if obj.{{.Name}}, err = rs.Read{{.Accessor}}({{.Index}}); err != nil {
			return false
		}
{{- end}}
		*records = append(*records, *obj)
	}
	return rs.Err() == nil
}

// Select{{.ClassName}}SQL builds the SELECT statement covering every column
// of {{.TableName}}.
func Select{{.ClassName}}SQL() string {
	return {{.SelectSQL}}
}

// FetchAll{{.ClassName}} loads every row of {{.TableName}}, or returns nil
// when the underlying fetch fails.
func FetchAll{{.ClassName}}(ctx context.Context, db dbaccess.Queryer) []{{.ClassName}} {
	records := make([]{{.ClassName}}, 0)
	if !dbaccess.ExecuteQuery(ctx, db, Select{{.ClassName}}SQL(), New{{.ClassName}}(), &records) {
		return nil
	}
	return records
}
{{end}}
{{- range .Fields}}
// Get{{.Export}} returns the value of {{.Name}}.
func (o *{{$.ClassName}}) Get{{.Export}}() {{.GoType}} {
	return o.{{.Name}}
}

// Set{{.Export}} updates the value of {{.Name}}.
func (o *{{$.ClassName}}) Set{{.Export}}(v {{.GoType}}) {
	o.{{.Name}} = v
}
{{end}}`

var fileTmpl = template.Must(template.New("tablefile").Parse(fileTemplate))

// Emit renders the source file for one table. It fails, producing no
// text, when two columns normalize to the same field name.
func Emit(ts *schema.TableSchema, opts Options, generatedAt time.Time) (string, error) {
	if ts.ClassName == "" {
		return "", fmt.Errorf("table %q: empty class name", ts.RawTableName)
	}
	if len(ts.Columns) == 0 {
		return "", fmt.Errorf("table %q: no columns to emit", ts.RawTableName)
	}
	if err := checkFieldCollisions(ts); err != nil {
		return "", err
	}

	runtimeImport := opts.RuntimeImport
	if runtimeImport == "" {
		runtimeImport = DefaultRuntimeImport
	}

	data := fileData{
		TableName:   ts.RawTableName,
		Timestamp:   generatedAt.Format(timestampLayout),
		PackageName: opts.PackageName,
		Import:      runtimeImport,
		ClassName:   ts.ClassName,
		Accessors:   opts.IncludeQueryAccessors,
		SelectSQL:   strconv.Quote(selectStatement(ts)),
	}
	for i, col := range ts.Columns {
		data.Fields = append(data.Fields, fieldData{
			Name:     col.FieldName,
			Export:   naming.ExportName(col.FieldName),
			GoType:   col.Semantic.GoType(),
			Accessor: col.Semantic.Accessor(),
			RawName:  col.RawName,
			Index:    i + 1,
		})
	}

	var b strings.Builder
	if err := fileTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", ts.RawTableName, err)
	}
	return b.String(), nil
}

// FileBaseName is the output file name for a table, without extension.
func FileBaseName(ts *schema.TableSchema) string {
	return ts.ClassName
}

func checkFieldCollisions(ts *schema.TableSchema) error {
	seen := make(map[string]string, len(ts.Columns))
	for _, col := range ts.Columns {
		if first, ok := seen[col.FieldName]; ok {
			return fmt.Errorf("table %q: columns %q and %q both normalize to field %q",
				ts.RawTableName, first, col.RawName, col.FieldName)
		}
		seen[col.FieldName] = col.RawName
	}
	return nil
}

func selectStatement(ts *schema.TableSchema) string {
	names := make([]string, len(ts.Columns))
	for i, col := range ts.Columns {
		names[i] = col.RawName
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(names, ", "), ts.RawTableName)
}
