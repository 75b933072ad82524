// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"reflect"
	"slices"
	"time"

	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/column"
)

// NewFromColumns returns a new Table built from the given map of
// column name to value slice. Supported slice types are []float64,
// []float32, []int, []int32, []string, []bool, []time.Time, and []any
// (with nil elements marking missing values). Columns are added in
// sorted-name order, since Go maps have no order of their own. All
// slices must have the same length, else a SchemaError.
func NewFromColumns(cols map[string]any, name ...string) (*Table, error) {
	dt := New(name...)
	nms := make([]string, 0, len(cols))
	for nm := range cols {
		nms = append(nms, nm)
	}
	slices.Sort(nms)
	for _, nm := range nms {
		cl, err := columnFromSlice(cols[nm])
		if err != nil {
			return nil, err
		}
		if err := dt.AddColumn(nm, cl); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

// columnFromSlice wraps or converts the given value slice as a column.
// Typed slices are wrapped without copying.
func columnFromSlice(vals any) (column.Column, error) {
	switch vs := vals.(type) {
	case []float64:
		return column.NewFloat64FromValues(vs...), nil
	case []int:
		return column.NewIntFromValues(vs...), nil
	case []string:
		return column.NewStringFromValues(vs...), nil
	case []time.Time:
		return column.NewTimeFromValues(vs...), nil
	case []float32:
		cl := column.NewFloat32(len(vs))
		for i, v := range vs {
			cl.SetFloat(float64(v), i)
		}
		return cl, nil
	case []int32:
		cl := column.NewInt32(len(vs))
		for i, v := range vs {
			cl.SetInt(int(v), i)
		}
		return cl, nil
	case []bool:
		cl := column.NewBool(len(vs))
		for i, v := range vs {
			errors.Must(cl.Set(v, i))
		}
		return cl, nil
	case []any:
		kind := reflect.String
		for _, v := range vs {
			if v != nil {
				kind = kindOfValue(v)
				break
			}
		}
		cl := column.NewOfKind(kind, len(vs))
		for i, v := range vs {
			if err := cl.Set(v, i); err != nil {
				return nil, err
			}
		}
		return cl, nil
	}
	return nil, errors.Type("table.NewFromColumns: unsupported slice type %T", vals)
}

// kindOfValue returns the column kind used to represent the given value.
func kindOfValue(val any) reflect.Kind {
	switch val.(type) {
	case float64, float32:
		return reflect.Float64
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return reflect.Int
	case bool:
		return reflect.Bool
	case time.Time:
		return reflect.Struct
	default:
		return reflect.String
	}
}

// NewFromRecords returns a new Table built from the given row-oriented
// records, tolerant of fields missing from individual records, which
// become missing cells. Column order is the sorted union of all field
// names; column types are inferred from the first non-nil value seen.
func NewFromRecords(recs []map[string]any, name ...string) (*Table, error) {
	dt := New(name...)
	nmset := map[string]bool{}
	for _, rec := range recs {
		for nm := range rec {
			nmset[nm] = true
		}
	}
	nms := make([]string, 0, len(nmset))
	for nm := range nmset {
		nms = append(nms, nm)
	}
	slices.Sort(nms)
	n := len(recs)
	for _, nm := range nms {
		kind := reflect.String
		for _, rec := range recs {
			if v, ok := rec[nm]; ok && v != nil {
				kind = kindOfValue(v)
				break
			}
		}
		cl := column.NewOfKind(kind, n)
		for i, rec := range recs {
			v, ok := rec[nm]
			if !ok || v == nil {
				continue // stays missing
			}
			if err := cl.Set(v, i); err != nil {
				return nil, err
			}
		}
		if err := dt.AddColumn(nm, cl); err != nil {
			return nil, err
		}
	}
	dt.Columns.Rows = n
	return dt, nil
}

// Rows returns this view's data in plain row-and-column form: one
// []any per view row, in column order, with nil for missing cells.
// Use with [Table.ColumnNames] and [NewFromRows] for round-tripping.
func (dt *Table) Rows() [][]any {
	n := dt.NumRows()
	nc := dt.NumColumns()
	rows := make([][]any, n)
	for i := 0; i < n; i++ {
		ri := dt.RowIndex(i)
		row := make([]any, nc)
		for ci, cl := range dt.Columns.Values {
			row[ci] = cl.Value(ri)
		}
		rows[i] = row
	}
	return rows
}

// NewFromRows returns a new Table built from plain row-and-column data
// as produced by [Table.Rows]: column names plus one []any per row,
// with nil for missing cells. Column types are inferred from the first
// non-nil value in each column. Ragged rows are a SchemaError.
func NewFromRows(names []string, rows [][]any, name ...string) (*Table, error) {
	dt := New(name...)
	n := len(rows)
	for _, row := range rows {
		if len(row) != len(names) {
			return nil, errors.Schema("table.NewFromRows: row has %d cells, want %d", len(row), len(names))
		}
	}
	for ci, nm := range names {
		kind := reflect.String
		for _, row := range rows {
			if row[ci] != nil {
				kind = kindOfValue(row[ci])
				break
			}
		}
		cl := column.NewOfKind(kind, n)
		for i, row := range rows {
			if row[ci] == nil {
				continue
			}
			if err := cl.Set(row[ci], i); err != nil {
				return nil, err
			}
		}
		if err := dt.AddColumn(nm, cl); err != nil {
			return nil, err
		}
	}
	dt.Columns.Rows = n
	return dt, nil
}

// NewFromStructs returns a new Table with one column per exported
// basic-typed field of the given slice of structs, and one row per
// element.
func NewFromStructs(st any, name ...string) (*Table, error) {
	npv := reflect.Indirect(reflect.ValueOf(st))
	if npv.Kind() != reflect.Slice {
		return nil, errors.Type("table.NewFromStructs: not a slice")
	}
	eltyp := npv.Type().Elem()
	for eltyp.Kind() == reflect.Pointer {
		eltyp = eltyp.Elem()
	}
	if eltyp.Kind() != reflect.Struct {
		return nil, errors.Type("table.NewFromStructs: element type is not a struct")
	}
	dt := New(name...)
	for i := 0; i < eltyp.NumField(); i++ {
		f := eltyp.Field(i)
		if !f.IsExported() {
			continue
		}
		switch {
		case f.Type == reflect.TypeOf(time.Time{}):
			dt.AddTimeColumn(f.Name)
		case structFieldKind(f.Type.Kind()) != reflect.Invalid:
			dt.Columns.Set(f.Name, column.NewOfKind(structFieldKind(f.Type.Kind()), 0))
		}
	}
	UpdateFromStructs(st, dt)
	return dt, nil
}

// structFieldKind maps a struct field kind to the column kind
// representing it, or Invalid for unsupported kinds.
func structFieldKind(kind reflect.Kind) reflect.Kind {
	switch kind {
	case reflect.String:
		return reflect.String
	case reflect.Bool:
		return reflect.Bool
	case reflect.Float32, reflect.Float64:
		return reflect.Float64
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflect.Int
	}
	return reflect.Invalid
}

// UpdateFromStructs updates the given Table with data from the given
// slice of structs, which must be the same type as used to configure
// the table in [NewFromStructs].
func UpdateFromStructs(st any, dt *Table) {
	npv := reflect.Indirect(reflect.ValueOf(st))
	nr := npv.Len()
	dt.SetNumRows(nr)
	for ri := 0; ri < nr; ri++ {
		ev := reflect.Indirect(npv.Index(ri))
		for _, nm := range dt.Columns.Keys {
			fv := ev.FieldByName(nm)
			if !fv.IsValid() {
				continue
			}
			errors.Log(dt.Set(nm, ri, fv.Interface()))
		}
	}
}
