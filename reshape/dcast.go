// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reshape

import (
	"strings"

	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/column"
	"github.com/kframe/kframe/table"
)

// CastPolicy selects what Dcast does when more than one source row lands
// in the same output cell.
type CastPolicy int32

const (
	// ErrorOnMultiple fails with a SchemaError. This is the default:
	// a silent pick hides data problems.
	ErrorOnMultiple CastPolicy = iota

	// FirstMatch keeps the first matching value in view order.
	FirstMatch
)

// DcastOptions configures the Dcast operation.
type DcastOptions struct {
	// Policy selects the multiple-match behavior, ErrorOnMultiple
	// by default.
	Policy CastPolicy

	// Sep joins colKey values into output column names. Defaults to "_".
	Sep string
}

// Dcast converts a table from long to wide form: one output row per
// distinct rowKeys tuple, one output value column per distinct colKeys
// tuple (named by joining the colKey values with Sep), cell = the value
// column's entry where both tuples match. Both tuple orders follow first
// appearance in the view. Cells with no matching row stay missing.
func Dcast(dt *table.Table, rowKeys, colKeys []string, value string, opts *DcastOptions) (*table.Table, error) {
	if opts == nil {
		opts = &DcastOptions{}
	}
	sep := opts.Sep
	if sep == "" {
		sep = "_"
	}
	if len(rowKeys) == 0 || len(colKeys) == 0 {
		return nil, errors.Schema("reshape.Dcast: rowKeys and colKeys must be non-empty")
	}
	rkCols := make([]column.Column, len(rowKeys))
	for i, nm := range rowKeys {
		cl, err := dt.ColumnTry(nm)
		if err != nil {
			return nil, err
		}
		rkCols[i] = cl
	}
	ckCols := make([]column.Column, len(colKeys))
	for i, nm := range colKeys {
		cl, err := dt.ColumnTry(nm)
		if err != nil {
			return nil, err
		}
		ckCols[i] = cl
	}
	valCol, err := dt.ColumnTry(value)
	if err != nil {
		return nil, err
	}

	// pass 1: distinct row and column tuples in first-appearance order
	rowOf := map[string]int{}
	colOf := map[string]int{}
	var rowFirst []int // first source row of each row tuple
	var colNames []string
	nrows := dt.NumRows()
	srcRowIdx := make([]int, nrows) // row tuple index per view row
	srcColIdx := make([]int, nrows) // column tuple index per view row
	for vi := 0; vi < nrows; vi++ {
		row := dt.RowIndex(vi)
		rk := tupleKey(rkCols, row)
		ri, ok := rowOf[rk]
		if !ok {
			ri = len(rowFirst)
			rowOf[rk] = ri
			rowFirst = append(rowFirst, row)
		}
		ck := tupleKey(ckCols, row)
		ci, ok := colOf[ck]
		if !ok {
			ci = len(colNames)
			colOf[ck] = ci
			colNames = append(colNames, tupleName(ckCols, row, sep))
		}
		srcRowIdx[vi] = ri
		srcColIdx[vi] = ci
	}

	out := table.New(dt.Name()).SetNumRows(len(rowFirst))
	for i, nm := range rowKeys {
		ocl := rkCols[i].CloneEmpty(len(rowFirst))
		for ri, row := range rowFirst {
			ocl.CopyRowFrom(rkCols[i], ri, row)
		}
		if err := out.AddColumn(nm, ocl); err != nil {
			return nil, err
		}
	}
	valOut := make([]column.Column, len(colNames))
	for ci, nm := range colNames {
		valOut[ci] = valCol.CloneEmpty(len(rowFirst))
		if err := out.AddColumn(nm, valOut[ci]); err != nil {
			return nil, err
		}
	}

	// pass 2: fill cells
	filled := make([]bool, len(rowFirst)*len(colNames))
	for vi := 0; vi < nrows; vi++ {
		row := dt.RowIndex(vi)
		ri, ci := srcRowIdx[vi], srcColIdx[vi]
		cell := ri*len(colNames) + ci
		if filled[cell] {
			if opts.Policy == FirstMatch {
				continue
			}
			return nil, errors.Schema("reshape.Dcast: multiple rows for cell (%s, %s)", tupleName(rkCols, row, ","), colNames[ci])
		}
		filled[cell] = true
		valOut[ci].CopyRowFrom(valCol, ri, row)
	}
	return out, nil
}

// tupleKey builds a collision-safe group key from the column values at row.
func tupleKey(cols []column.Column, row int) string {
	var sb strings.Builder
	for _, cl := range cols {
		if cl.IsNull(row) {
			sb.WriteString("\x00null")
		} else {
			sb.WriteString(cl.StringValue(row))
		}
		sb.WriteByte(0)
	}
	return sb.String()
}

// tupleName formats the column values at row for humans.
func tupleName(cols []column.Column, row int, sep string) string {
	parts := make([]string, len(cols))
	for i, cl := range cols {
		parts[i] = cl.StringValue(row)
	}
	return strings.Join(parts, sep)
}
