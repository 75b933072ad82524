// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"cmp"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/kframe/kframe/base/errors"
)

// Number is a column of numeric values.
type Number[T Numeric] struct {
	Base[T]

	kind reflect.Kind
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Float32 is an alias for Number[float32].
type Float32 = Number[float32]

// Int is an alias for Number[int].
type Int = Number[int]

// Int32 is an alias for Number[int32].
type Int32 = Number[int32]

// NewNumber returns a new numeric column with the given number of rows,
// all missing.
func NewNumber[T Numeric](rows int) *Number[T] {
	var v T
	cl := &Number[T]{kind: reflect.TypeOf(v).Kind()}
	cl.SetNumRows(rows)
	return cl
}

// NewFloat64 returns a new [Float64] column with the given number of rows.
func NewFloat64(rows int) *Float64 { return NewNumber[float64](rows) }

// NewFloat32 returns a new [Float32] column with the given number of rows.
func NewFloat32(rows int) *Float32 { return NewNumber[float32](rows) }

// NewInt returns a new [Int] column with the given number of rows.
func NewInt(rows int) *Int { return NewNumber[int](rows) }

// NewInt32 returns a new [Int32] column with the given number of rows.
func NewInt32(rows int) *Int32 { return NewNumber[int32](rows) }

// NewFloat64FromValues returns a new [Float64] column wrapping the given
// values, which are not copied.
func NewFloat64FromValues(vals ...float64) *Float64 {
	cl := &Float64{kind: reflect.Float64}
	cl.Values = vals
	return cl
}

// NewIntFromValues returns a new [Int] column wrapping the given values,
// which are not copied.
func NewIntFromValues(vals ...int) *Int {
	cl := &Int{kind: reflect.Int}
	cl.Values = vals
	return cl
}

func (cl *Number[T]) DataType() reflect.Kind { return cl.kind }

func (cl *Number[T]) IsString() bool { return false }

func (cl *Number[T]) isFloat() bool {
	return cl.kind == reflect.Float64 || cl.kind == reflect.Float32
}

// IsNull returns true if the value at the given row is missing.
// On float columns, a stored NaN counts as missing.
func (cl *Number[T]) IsNull(row int) bool {
	if cl.miss.get(row) {
		return true
	}
	return cl.isFloat() && math.IsNaN(float64(cl.Values[row]))
}

func (cl *Number[T]) Float(row int) float64 { return float64(cl.Values[row]) }

func (cl *Number[T]) SetFloat(val float64, row int) {
	cl.Values[row] = T(val)
	cl.miss.set(row, math.IsNaN(val))
}

func (cl *Number[T]) Int(row int) int { return int(cl.Values[row]) }

func (cl *Number[T]) SetInt(val int, row int) {
	cl.Values[row] = T(val)
	cl.clearNull(row)
}

func (cl *Number[T]) StringValue(row int) string {
	if cl.IsNull(row) {
		return ""
	}
	if cl.isFloat() {
		return strconv.FormatFloat(float64(cl.Values[row]), 'g', -1, 64)
	}
	return strconv.Itoa(int(cl.Values[row]))
}

// SetString parses the given string as a number; an unparseable
// string marks the row missing.
func (cl *Number[T]) SetString(val string, row int) {
	fv, err := strconv.ParseFloat(val, 64)
	if err != nil {
		cl.SetNull(row)
		return
	}
	cl.SetFloat(fv, row)
}

func (cl *Number[T]) Time(row int) time.Time {
	return time.Unix(int64(cl.Values[row]), 0).UTC()
}

func (cl *Number[T]) SetTime(val time.Time, row int) {
	cl.SetInt(int(val.Unix()), row)
}

func (cl *Number[T]) Value(row int) any {
	if cl.IsNull(row) {
		return nil
	}
	return cl.Values[row]
}

func (cl *Number[T]) Set(val any, row int) error {
	if val == nil {
		cl.SetNull(row)
		return nil
	}
	fv, ok := ToFloat(val)
	if !ok {
		return errors.Type("column.Set: cannot set numeric column from %T value", val)
	}
	cl.SetFloat(fv, row)
	return nil
}

func (cl *Number[T]) Compare(i, j int) int {
	if c, done := compareNulls(cl.IsNull(i), cl.IsNull(j)); done {
		return c
	}
	return cmp.Compare(cl.Values[i], cl.Values[j])
}

func (cl *Number[T]) CompareValue(row int, val any) int {
	if val == nil {
		if cl.IsNull(row) {
			return 0
		}
		return -1
	}
	if cl.IsNull(row) {
		return 1
	}
	fv, ok := ToFloat(val)
	if !ok {
		return 1 // a non-numeric value matches no numeric cell
	}
	return cmp.Compare(float64(cl.Values[row]), fv)
}

func (cl *Number[T]) Clone() Column {
	return &Number[T]{Base: cl.cloneBase(), kind: cl.kind}
}

func (cl *Number[T]) CloneEmpty(rows int) Column {
	return NewNumber[T](rows)
}

func (cl *Number[T]) CopyRowFrom(from Column, row int, fromRow int) {
	if from.IsNull(fromRow) {
		cl.SetNull(row)
		return
	}
	cl.SetFloat(from.Float(fromRow), row)
}

func (cl *Number[T]) AppendFrom(from Column) error {
	if fsm, ok := from.(*Number[T]); ok {
		cl.appendBase(&fsm.Base)
		return nil
	}
	st := cl.Len()
	cl.SetNumRows(st + from.Len())
	for i := 0; i < from.Len(); i++ {
		cl.CopyRowFrom(from, st+i, i)
	}
	return nil
}
