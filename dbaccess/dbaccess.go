// Package dbaccess is the runtime support layer for generated table
// classes: a typed positional result-set cursor and the query helper the
// generated FetchAll methods call.
package dbaccess

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ResultSet is a forward-only cursor with 1-based typed column reads,
// one read method per semantic column type. Next returning false can
// mean end of rows or a cursor failure; Err distinguishes the two, so a
// scan completed cleanly only when Err returns nil afterwards.
type ResultSet interface {
	Next() bool
	Err() error
	ReadInt64(i int) (int64, error)
	ReadInt32(i int) (int32, error)
	ReadInt16(i int) (int16, error)
	ReadInt8(i int) (int8, error)
	ReadFloat64(i int) (float64, error)
	ReadFloat32(i int) (float32, error)
	ReadString(i int) (string, error)
	ReadRune(i int) (rune, error)
}

// Queryer is the minimal query surface ExecuteQuery needs. Both
// *pgxpool.Pool and *pgx.Conn satisfy it.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// RecordFetcher populates records from a result set. Generated table
// classes implement it when query accessors are enabled.
type RecordFetcher[T any] interface {
	FetchRows(rs ResultSet, records *[]T) bool
}

// ExecuteQuery runs sqlText against db and lets f drain the rows into
// records. It reports whether the whole scan completed without a
// data-access failure.
func ExecuteQuery[T any](ctx context.Context, db Queryer, sqlText string, f RecordFetcher[T], records *[]T) bool {
	rows, err := db.Query(ctx, sqlText)
	if err != nil {
		return false
	}
	defer rows.Close()

	rs := &pgxResultSet{rows: rows}
	if !f.FetchRows(rs, records) {
		return false
	}
	return rs.Err() == nil
}

// pgxResultSet adapts pgx.Rows to the positional ResultSet contract.
// The first read error is sticky: Next returns false afterwards.
type pgxResultSet struct {
	rows   pgx.Rows
	values []any
	err    error
}

func (rs *pgxResultSet) Err() error {
	if rs.err != nil {
		return rs.err
	}
	return rs.rows.Err()
}

func (rs *pgxResultSet) Next() bool {
	if rs.err != nil {
		return false
	}
	if !rs.rows.Next() {
		return false
	}
	rs.values, rs.err = rs.rows.Values()
	return rs.err == nil
}

func (rs *pgxResultSet) value(i int) (any, error) {
	if rs.err != nil {
		return nil, rs.err
	}
	if i < 1 || i > len(rs.values) {
		return nil, fmt.Errorf("column index %d out of range (row has %d columns)", i, len(rs.values))
	}
	return rs.values[i-1], nil
}

func (rs *pgxResultSet) ReadInt64(i int) (int64, error) {
	v, err := rs.value(i)
	if err != nil {
		return 0, err
	}
	return toInt64(v)
}

func (rs *pgxResultSet) ReadInt32(i int) (int32, error) {
	n, err := rs.ReadInt64(i)
	return int32(n), err
}

func (rs *pgxResultSet) ReadInt16(i int) (int16, error) {
	n, err := rs.ReadInt64(i)
	return int16(n), err
}

func (rs *pgxResultSet) ReadInt8(i int) (int8, error) {
	n, err := rs.ReadInt64(i)
	return int8(n), err
}

func (rs *pgxResultSet) ReadFloat64(i int) (float64, error) {
	v, err := rs.value(i)
	if err != nil {
		return 0, err
	}
	return toFloat64(v)
}

func (rs *pgxResultSet) ReadFloat32(i int) (float32, error) {
	f, err := rs.ReadFloat64(i)
	return float32(f), err
}

func (rs *pgxResultSet) ReadString(i int) (string, error) {
	v, err := rs.value(i)
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("column %d: cannot read %T as string", i, v)
}

func (rs *pgxResultSet) ReadRune(i int) (rune, error) {
	s, err := rs.ReadString(i)
	if err != nil {
		return 0, err
	}
	for _, r := range s {
		return r, nil
	}
	return 0, nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int:
		return int64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case nil:
		return 0, nil
	}
	return 0, fmt.Errorf("cannot read %T as integer", v)
}

func toFloat64(v any) (float64, error) {
	switch f := v.(type) {
	case float64:
		return f, nil
	case float32:
		return float64(f), nil
	case int64:
		return float64(f), nil
	case int32:
		return float64(f), nil
	case pgtype.Numeric:
		fv, err := f.Float64Value()
		if err != nil {
			return 0, err
		}
		return fv.Float64, nil
	case string:
		return strconv.ParseFloat(f, 64)
	case nil:
		return 0, nil
	}
	return math.NaN(), fmt.Errorf("cannot read %T as float", v)
}
