// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"reflect"
	"strconv"
	"time"

	"github.com/kframe/kframe/base/errors"
)

// Bool is a column of logical values.
type Bool struct {
	Base[bool]
}

// NewBool returns a new [Bool] column with the given number of rows,
// all missing.
func NewBool(rows int) *Bool {
	cl := &Bool{}
	cl.SetNumRows(rows)
	return cl
}

func (cl *Bool) DataType() reflect.Kind { return reflect.Bool }

func (cl *Bool) IsString() bool { return false }

func (cl *Bool) Float(row int) float64 {
	if cl.Values[row] {
		return 1
	}
	return 0
}

func (cl *Bool) SetFloat(val float64, row int) {
	cl.Values[row] = val != 0
	cl.clearNull(row)
}

func (cl *Bool) Int(row int) int { return int(cl.Float(row)) }

func (cl *Bool) SetInt(val int, row int) { cl.SetFloat(float64(val), row) }

func (cl *Bool) StringValue(row int) string {
	if cl.IsNull(row) {
		return ""
	}
	return strconv.FormatBool(cl.Values[row])
}

// SetString parses the given string as a bool; an unparseable string
// marks the row missing.
func (cl *Bool) SetString(val string, row int) {
	bv, err := strconv.ParseBool(val)
	if err != nil {
		cl.SetNull(row)
		return
	}
	cl.Values[row] = bv
	cl.clearNull(row)
}

func (cl *Bool) Time(row int) time.Time {
	return time.Unix(int64(cl.Int(row)), 0).UTC()
}

func (cl *Bool) SetTime(val time.Time, row int) {
	cl.SetInt(int(val.Unix()), row)
}

func (cl *Bool) Value(row int) any {
	if cl.IsNull(row) {
		return nil
	}
	return cl.Values[row]
}

func (cl *Bool) Set(val any, row int) error {
	if val == nil {
		cl.SetNull(row)
		return nil
	}
	switch v := val.(type) {
	case bool:
		cl.Values[row] = v
		cl.clearNull(row)
		return nil
	case string:
		cl.SetString(v, row)
		return nil
	}
	if fv, ok := ToFloat(val); ok {
		cl.SetFloat(fv, row)
		return nil
	}
	return errors.Type("column.Set: cannot set bool column from %T value", val)
}

// Compare orders false before true, missing last.
func (cl *Bool) Compare(i, j int) int {
	if c, done := compareNulls(cl.IsNull(i), cl.IsNull(j)); done {
		return c
	}
	return cl.Int(i) - cl.Int(j)
}

func (cl *Bool) CompareValue(row int, val any) int {
	if val == nil {
		if cl.IsNull(row) {
			return 0
		}
		return -1
	}
	if cl.IsNull(row) {
		return 1
	}
	if fv, ok := ToFloat(val); ok {
		qv := 0
		if fv != 0 {
			qv = 1
		}
		return cl.Int(row) - qv
	}
	return 1
}

func (cl *Bool) Clone() Column {
	return &Bool{Base: cl.cloneBase()}
}

func (cl *Bool) CloneEmpty(rows int) Column {
	return NewBool(rows)
}

func (cl *Bool) CopyRowFrom(from Column, row int, fromRow int) {
	if from.IsNull(fromRow) {
		cl.SetNull(row)
		return
	}
	cl.SetFloat(from.Float(fromRow), row)
}

func (cl *Bool) AppendFrom(from Column) error {
	if fsm, ok := from.(*Bool); ok {
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
