// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"reflect"
	"time"

	"github.com/kframe/kframe/base/errors"
)

// Time is a column of time.Time values (dates and timestamps).
// Its float representation is Unix seconds.
type Time struct {
	Base[time.Time]
}

// NewTime returns a new [Time] column with the given number of rows,
// all missing.
func NewTime(rows int) *Time {
	cl := &Time{}
	cl.SetNumRows(rows)
	return cl
}

// NewTimeFromValues returns a new [Time] column wrapping the given
// values, which are not copied.
func NewTimeFromValues(vals ...time.Time) *Time {
	cl := &Time{}
	cl.Values = vals
	return cl
}

func (cl *Time) DataType() reflect.Kind { return reflect.Struct }

func (cl *Time) IsString() bool { return false }

func (cl *Time) Float(row int) float64 {
	return float64(cl.Values[row].Unix())
}

func (cl *Time) SetFloat(val float64, row int) {
	cl.Values[row] = time.Unix(int64(val), 0).UTC()
	cl.clearNull(row)
}

func (cl *Time) Int(row int) int { return int(cl.Values[row].Unix()) }

func (cl *Time) SetInt(val int, row int) { cl.SetFloat(float64(val), row) }

// StringValue formats midnight-UTC values as dates and everything else
// as RFC3339 timestamps.
func (cl *Time) StringValue(row int) string {
	if cl.IsNull(row) {
		return ""
	}
	t := cl.Values[row]
	if t.Equal(t.Truncate(24 * time.Hour)) {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}

// SetString parses the given string in RFC3339 or date-only form;
// an unparseable string marks the row missing.
func (cl *Time) SetString(val string, row int) {
	t, ok := ToTime(val)
	if !ok {
		cl.SetNull(row)
		return
	}
	cl.SetTime(t, row)
}

func (cl *Time) Time(row int) time.Time { return cl.Values[row] }

func (cl *Time) SetTime(val time.Time, row int) {
	cl.Values[row] = val
	cl.clearNull(row)
}

func (cl *Time) Value(row int) any {
	if cl.IsNull(row) {
		return nil
	}
	return cl.Values[row]
}

func (cl *Time) Set(val any, row int) error {
	if val == nil {
		cl.SetNull(row)
		return nil
	}
	if t, ok := ToTime(val); ok {
		cl.SetTime(t, row)
		return nil
	}
	return errors.Type("column.Set: cannot set time column from %T value", val)
}

func (cl *Time) Compare(i, j int) int {
	if c, done := compareNulls(cl.IsNull(i), cl.IsNull(j)); done {
		return c
	}
	return cl.Values[i].Compare(cl.Values[j])
}

func (cl *Time) CompareValue(row int, val any) int {
	if val == nil {
		if cl.IsNull(row) {
			return 0
		}
		return -1
	}
	if cl.IsNull(row) {
		return 1
	}
	if t, ok := ToTime(val); ok {
		return cl.Values[row].Compare(t)
	}
	return 1
}

func (cl *Time) Clone() Column {
	return &Time{Base: cl.cloneBase()}
}

func (cl *Time) CloneEmpty(rows int) Column {
	return NewTime(rows)
}

func (cl *Time) CopyRowFrom(from Column, row int, fromRow int) {
	if from.IsNull(fromRow) {
		cl.SetNull(row)
		return
	}
	cl.SetTime(from.Time(fromRow), row)
}

func (cl *Time) AppendFrom(from Column) error {
	if fsm, ok := from.(*Time); ok {
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
