package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwallis/tablegen/sqltype"
)

func TestBuildPreservesColumnOrder(t *testing.T) {
	ts, err := Build("user_accounts", []RawColumn{
		{Name: "Id", TypeCode: sqltype.CodeInteger, TypeName: "integer"},
		{Name: "user_name", TypeCode: sqltype.CodeVarchar, TypeName: "character varying"},
		{Name: "Created_At", TypeCode: sqltype.CodeDecimal, TypeName: "decimal"},
	})
	require.NoError(t, err)

	assert.Equal(t, "user_accounts", ts.RawTableName)
	assert.Equal(t, "UserAccounts", ts.ClassName)
	require.Len(t, ts.Columns, 3)
	assert.Equal(t, ColumnDef{RawName: "Id", Semantic: sqltype.Int32, FieldName: "id"}, ts.Columns[0])
	assert.Equal(t, ColumnDef{RawName: "user_name", Semantic: sqltype.String, FieldName: "userName"}, ts.Columns[1])
	assert.Equal(t, ColumnDef{RawName: "Created_At", Semantic: sqltype.Float64, FieldName: "createdAt"}, ts.Columns[2])
}

func TestBuildRejectsEmptyTableName(t *testing.T) {
	_, err := Build("", []RawColumn{{Name: "Id", TypeCode: sqltype.CodeInteger}})
	require.Error(t, err)

	_, err = Build("___", []RawColumn{{Name: "Id", TypeCode: sqltype.CodeInteger}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty class name")
}

func TestBuildRejectsEmptyColumns(t *testing.T) {
	_, err := Build("users", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no columns")

	_, err = Build("users", []RawColumn{{Name: "", TypeCode: sqltype.CodeInteger}})
	require.Error(t, err)

	_, err = Build("users", []RawColumn{{Name: "__", TypeCode: sqltype.CodeInteger, TypeName: "integer"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unusable field name")
}

func TestBuildUnknownTypeNamesTableColumnAndType(t *testing.T) {
	_, err := Build("users", []RawColumn{
		{Name: "location", TypeCode: sqltype.CodeUnknown, TypeName: "geometry"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sqltype.ErrUnknownType)
	assert.Contains(t, err.Error(), "users")
	assert.Contains(t, err.Error(), "location")
	assert.Contains(t, err.Error(), "geometry")
}
