// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package column provides typed, nullable columnar storage: homogeneous
// sequences of values with an explicit per-element missing marker.
// Columns are the leaves of the kframe data model; the [table] package
// assembles named columns sharing a common row count into tables.
//
// Concrete types are [Number] (with [Float64], [Float32], [Int], [Int32]
// aliases), [String], [Bool], and [Time]. Categorical data is represented
// as string columns. On float columns, NaN is additionally treated as
// missing, matching the usual float convention for data analysis.
//
// Ordering: [Column.Compare] defines ascending order with missing values
// sorting last. This is the ordering used for key sorts and lookups.
package column

import (
	"reflect"
	"time"
)

// DataTypes are the primary column data types with specific support.
type DataTypes interface {
	string | bool | float64 | float32 | int | int32 | time.Time
}

// Numeric are the numeric column element types.
type Numeric interface {
	~float64 | ~float32 | ~int | ~int32
}

// Column is the interface for a typed, nullable column of values.
// A Column has a length (number of rows) and per-row accessors in each
// of the standard representations (float, int, string, time), which
// convert as needed from the native element type.
// All Set accessors clear the missing marker for the row; use
// [Column.SetNull] to mark a row missing.
type Column interface {
	// Len returns the number of rows in the column.
	Len() int

	// DataType returns the reflect.Kind of the native element type.
	// [Time] columns report [reflect.Struct].
	DataType() reflect.Kind

	// IsString returns true if the native element type is string.
	IsString() bool

	// SetNumRows sets the number of rows, retaining existing values
	// that fit. Newly added rows are missing until set.
	SetNumRows(rows int)

	// IsNull returns true if the value at the given row is missing.
	IsNull(row int) bool

	// SetNull marks the value at the given row as missing.
	SetNull(row int)

	// Float returns the value at the given row as a float64.
	Float(row int) float64

	// SetFloat sets the value at the given row from a float64.
	SetFloat(val float64, row int)

	// Int returns the value at the given row as an int.
	Int(row int) int

	// SetInt sets the value at the given row from an int.
	SetInt(val int, row int)

	// StringValue returns the value at the given row as a string.
	// 'String' conflicts with [fmt.Stringer], so StringValue it is.
	StringValue(row int) string

	// SetString sets the value at the given row from a string.
	SetString(val string, row int)

	// Time returns the value at the given row as a time.Time.
	Time(row int) time.Time

	// SetTime sets the value at the given row from a time.Time.
	SetTime(val time.Time, row int)

	// Value returns the native value at the given row, or nil if missing.
	Value(row int) any

	// Set sets the value at the given row from an arbitrary value,
	// coercing compatible types; nil marks the row missing.
	// Returns a TypeError if the value cannot be represented.
	Set(val any, row int) error

	// Compare compares the values at rows i and j, returning a negative
	// number when i sorts before j, positive when after, and 0 when equal,
	// in ascending order with missing values last.
	Compare(i, j int) int

	// CompareValue compares the value at the given row against the given
	// query value, with the same ordering semantics as [Column.Compare].
	// A nil query value matches only missing cells.
	CompareValue(row int, val any) int

	// Clone returns a fully independent copy of this column.
	Clone() Column

	// CloneEmpty returns a new column of the same type with the given
	// number of rows, all missing.
	CloneEmpty(rows int) Column

	// CopyRowFrom copies the value (or missing marker) at fromRow of
	// the from column, which must be of a compatible type, into the
	// given row of this column.
	CopyRowFrom(from Column, row int, fromRow int)

	// AppendFrom appends all rows of the from column, which must be of
	// a compatible type, to this column.
	AppendFrom(from Column) error

	// Permute reorders the rows of this column in place according to
	// the given order, where order[i] gives the source row for new row i.
	// The backing buffers are retained, so aliases observe the new order.
	Permute(order []int)
}

// New returns a new column of the given element type with the given
// number of rows, all missing.
func New[T DataTypes](rows int) Column {
	var v T
	switch any(v).(type) {
	case string:
		return NewString(rows)
	case bool:
		return NewBool(rows)
	case float64:
		return NewNumber[float64](rows)
	case float32:
		return NewNumber[float32](rows)
	case int:
		return NewNumber[int](rows)
	case int32:
		return NewNumber[int32](rows)
	case time.Time:
		return NewTime(rows)
	default:
		panic("column.New: type not supported")
	}
}

// NewOfKind returns a new column of the given reflect.Kind with the
// given number of rows, all missing. Supported kinds are String, Bool,
// Float64, Float32, Int, Int32, and Struct (for [Time]).
func NewOfKind(kind reflect.Kind, rows int) Column {
	switch kind {
	case reflect.String:
		return NewString(rows)
	case reflect.Bool:
		return NewBool(rows)
	case reflect.Float64:
		return NewNumber[float64](rows)
	case reflect.Float32:
		return NewNumber[float32](rows)
	case reflect.Int:
		return NewNumber[int](rows)
	case reflect.Int32:
		return NewNumber[int32](rows)
	case reflect.Struct:
		return NewTime(rows)
	default:
		panic("column.NewOfKind: kind not supported: " + kind.String())
	}
}
