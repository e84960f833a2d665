package sqltype

import (
	"errors"
	"fmt"
	"strings"
)

// Code is the SQL-standard integer type code reported for a column.
type Code int

const (
	CodeUnknown     Code = 0
	CodeLongVarchar Code = -1
	CodeBigInt      Code = -5
	CodeTinyInt     Code = -6
	CodeChar        Code = 1
	CodeNumeric     Code = 2
	CodeDecimal     Code = 3
	CodeInteger     Code = 4
	CodeSmallInt    Code = 5
	CodeFloat       Code = 6
	CodeReal        Code = 7
	CodeDouble      Code = 8
	CodeVarchar     Code = 12
	CodeBoolean     Code = 16
)

// Semantic is the fixed set of value kinds a column can map to. Both the
// generated field type and the result-set read accessor derive from it.
type Semantic int

const (
	Int64 Semantic = iota
	Int32
	Int16
	Int8
	Float64
	Float32
	Char
	String
)

// ErrUnknownType marks a column type outside the supported whitelist.
// There is no sensible default for such a column, so callers abort the
// run rather than emit a malformed field.
var ErrUnknownType = errors.New("unknown column type")

// Map converts a column's type code into its semantic type. The typeName
// is only used to label the failure when the code is not whitelisted.
func Map(code Code, typeName string) (Semantic, error) {
	switch code {
	case CodeBigInt:
		return Int64, nil
	case CodeBoolean:
		return Int8, nil
	case CodeChar:
		return Char, nil
	case CodeNumeric, CodeDecimal, CodeDouble, CodeReal:
		return Float64, nil
	case CodeFloat:
		return Float32, nil
	case CodeInteger:
		return Int32, nil
	case CodeTinyInt, CodeSmallInt:
		return Int16, nil
	case CodeVarchar, CodeLongVarchar:
		return String, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownType, typeName)
}

// GoType is the field declaration type emitted for the semantic type.
func (s Semantic) GoType() string {
	switch s {
	case Int64:
		return "int64"
	case Int32:
		return "int32"
	case Int16:
		return "int16"
	case Int8:
		return "int8"
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Char:
		return "rune"
	case String:
		return "string"
	}
	return ""
}

// Accessor is the Read<Accessor> method name fragment the generated
// population code calls on a result set.
func (s Semantic) Accessor() string {
	switch s {
	case Int64:
		return "Int64"
	case Int32:
		return "Int32"
	case Int16:
		return "Int16"
	case Int8:
		return "Int8"
	case Float64:
		return "Float64"
	case Float32:
		return "Float32"
	case Char:
		return "Rune"
	case String:
		return "String"
	}
	return ""
}

func (s Semantic) String() string {
	if t := s.GoType(); t != "" {
		return t
	}
	return fmt.Sprintf("Semantic(%d)", int(s))
}

// CodeForDataType maps an information_schema data_type name onto a type
// code. Names outside the lookup yield CodeUnknown so that Map owns the
// unrecognized-type failure.
func CodeForDataType(dataType string) Code {
	switch strings.ToLower(strings.TrimSpace(dataType)) {
	case "bigint", "int8", "bigserial":
		return CodeBigInt
	case "boolean", "bool":
		return CodeBoolean
	case "character", "char", "bpchar":
		return CodeChar
	case "numeric":
		return CodeNumeric
	case "decimal":
		return CodeDecimal
	case "double precision", "float8":
		return CodeDouble
	case "real", "float4":
		return CodeReal
	case "float":
		return CodeFloat
	case "integer", "int", "int4", "serial":
		return CodeInteger
	case "smallint", "int2", "smallserial":
		return CodeSmallInt
	case "tinyint":
		return CodeTinyInt
	case "character varying", "varchar":
		return CodeVarchar
	case "text":
		return CodeLongVarchar
	}
	return CodeUnknown
}
