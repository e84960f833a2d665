package sqltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapWhitelist(t *testing.T) {
	cases := []struct {
		code Code
		want Semantic
	}{
		{CodeBigInt, Int64},
		{CodeBoolean, Int8},
		{CodeChar, Char},
		{CodeNumeric, Float64},
		{CodeDecimal, Float64},
		{CodeDouble, Float64},
		{CodeReal, Float64},
		{CodeFloat, Float32},
		{CodeInteger, Int32},
		{CodeTinyInt, Int16},
		{CodeSmallInt, Int16},
		{CodeVarchar, String},
		{CodeLongVarchar, String},
	}
	for _, c := range cases {
		got, err := Map(c.code, "t")
		require.NoError(t, err, "Map(%d)", c.code)
		assert.Equal(t, c.want, got, "Map(%d)", c.code)
	}
}

func TestMapUnknownFails(t *testing.T) {
	_, err := Map(CodeUnknown, "geometry")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "geometry")

	_, err = Map(Code(93), "timestamp")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestGoTypeAndAccessorTotal(t *testing.T) {
	semantics := []Semantic{Int64, Int32, Int16, Int8, Float64, Float32, Char, String}
	seenType := map[string]bool{}
	seenAcc := map[string]bool{}
	for _, s := range semantics {
		require.NotEmpty(t, s.GoType())
		require.NotEmpty(t, s.Accessor())
		assert.False(t, seenType[s.GoType()], "GoType %q reused", s.GoType())
		assert.False(t, seenAcc[s.Accessor()], "Accessor %q reused", s.Accessor())
		seenType[s.GoType()] = true
		seenAcc[s.Accessor()] = true
	}
}

func TestCodeForDataType(t *testing.T) {
	cases := []struct {
		name string
		want Code
	}{
		{"bigint", CodeBigInt},
		{"boolean", CodeBoolean},
		{"character", CodeChar},
		{"numeric", CodeNumeric},
		{"decimal", CodeDecimal},
		{"double precision", CodeDouble},
		{"real", CodeReal},
		{"float", CodeFloat},
		{"integer", CodeInteger},
		{"serial", CodeInteger},
		{"smallint", CodeSmallInt},
		{"character varying", CodeVarchar},
		{"text", CodeLongVarchar},
		{"  TEXT  ", CodeLongVarchar},
		{"geometry", CodeUnknown},
		{"", CodeUnknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CodeForDataType(c.name), "CodeForDataType(%q)", c.name)
	}
}
