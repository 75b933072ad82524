// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"cmp"
	"reflect"
	"strconv"
	"time"
)

// String is a column of string values, also used for categorical data.
type String struct {
	Base[string]
}

// NewString returns a new [String] column with the given number of rows,
// all missing.
func NewString(rows int) *String {
	cl := &String{}
	cl.SetNumRows(rows)
	return cl
}

// NewStringFromValues returns a new [String] column wrapping the given
// values, which are not copied.
func NewStringFromValues(vals ...string) *String {
	cl := &String{}
	cl.Values = vals
	return cl
}

func (cl *String) DataType() reflect.Kind { return reflect.String }

func (cl *String) IsString() bool { return true }

func (cl *String) Float(row int) float64 {
	fv, err := strconv.ParseFloat(cl.Values[row], 64)
	if err != nil {
		return 0
	}
	return fv
}

func (cl *String) SetFloat(val float64, row int) {
	cl.Values[row] = strconv.FormatFloat(val, 'g', -1, 64)
	cl.clearNull(row)
}

func (cl *String) Int(row int) int { return int(cl.Float(row)) }

func (cl *String) SetInt(val int, row int) {
	cl.Values[row] = strconv.Itoa(val)
	cl.clearNull(row)
}

func (cl *String) StringValue(row int) string {
	if cl.IsNull(row) {
		return ""
	}
	return cl.Values[row]
}

func (cl *String) SetString(val string, row int) {
	cl.Values[row] = val
	cl.clearNull(row)
}

func (cl *String) Time(row int) time.Time {
	t, _ := ToTime(cl.Values[row])
	return t
}

func (cl *String) SetTime(val time.Time, row int) {
	cl.SetString(val.Format(time.RFC3339), row)
}

func (cl *String) Value(row int) any {
	if cl.IsNull(row) {
		return nil
	}
	return cl.Values[row]
}

func (cl *String) Set(val any, row int) error {
	if val == nil {
		cl.SetNull(row)
		return nil
	}
	cl.SetString(StringOf(val), row)
	return nil
}

func (cl *String) Compare(i, j int) int {
	if c, done := compareNulls(cl.IsNull(i), cl.IsNull(j)); done {
		return c
	}
	return cmp.Compare(cl.Values[i], cl.Values[j])
}

func (cl *String) CompareValue(row int, val any) int {
	if val == nil {
		if cl.IsNull(row) {
			return 0
		}
		return -1
	}
	if cl.IsNull(row) {
		return 1
	}
	return cmp.Compare(cl.Values[row], StringOf(val))
}

func (cl *String) Clone() Column {
	return &String{Base: cl.cloneBase()}
}

func (cl *String) CloneEmpty(rows int) Column {
	return NewString(rows)
}

func (cl *String) CopyRowFrom(from Column, row int, fromRow int) {
	if from.IsNull(fromRow) {
		cl.SetNull(row)
		return
	}
	cl.SetString(from.StringValue(fromRow), row)
}

func (cl *String) AppendFrom(from Column) error {
	if fsm, ok := from.(*String); ok {
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
