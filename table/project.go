// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"slices"

	"github.com/kframe/kframe/base/errors"
)

// ColumnSpec selects a subset of columns for [Table.Project].
// Exactly one of the three forms is used: an explicit inclusion list,
// an explicit exclusion list, or a contiguous range given by a
// first and last column name pair.
type ColumnSpec struct {
	// Include is the explicit list of columns to keep, in the given order.
	Include []string

	// Exclude is the explicit list of columns to drop, keeping the rest
	// in table order.
	Exclude []string

	// From and To name the first and last column of a contiguous range
	// to keep, inclusive, in table order.
	From, To string
}

// SelectColumns returns a ColumnSpec keeping the given columns.
func SelectColumns(names ...string) ColumnSpec {
	return ColumnSpec{Include: names}
}

// ExcludeColumns returns a ColumnSpec dropping the given columns.
func ExcludeColumns(names ...string) ColumnSpec {
	return ColumnSpec{Exclude: names}
}

// ColumnRange returns a ColumnSpec keeping the contiguous range of
// columns from the first to the last given name, inclusive.
func ColumnRange(from, to string) ColumnSpec {
	return ColumnSpec{From: from, To: to}
}

// resolve returns the list of column names selected by the spec,
// validating every referenced name.
func (cs ColumnSpec) resolve(dt *Table) ([]string, error) {
	switch {
	case cs.Include != nil:
		for _, nm := range cs.Include {
			if dt.Columns.IndexByKey(nm) < 0 {
				return nil, errors.Schema("table.ColumnSpec: column named %q not found", nm)
			}
		}
		return slices.Clone(cs.Include), nil
	case cs.Exclude != nil:
		for _, nm := range cs.Exclude {
			if dt.Columns.IndexByKey(nm) < 0 {
				return nil, errors.Schema("table.ColumnSpec: column named %q not found", nm)
			}
		}
		var names []string
		for _, nm := range dt.Columns.Keys {
			if !slices.Contains(cs.Exclude, nm) {
				names = append(names, nm)
			}
		}
		return names, nil
	case cs.From != "" || cs.To != "":
		fi := dt.Columns.IndexByKey(cs.From)
		ti := dt.Columns.IndexByKey(cs.To)
		if fi < 0 {
			return nil, errors.Schema("table.ColumnSpec: column named %q not found", cs.From)
		}
		if ti < 0 {
			return nil, errors.Schema("table.ColumnSpec: column named %q not found", cs.To)
		}
		if ti < fi {
			return nil, errors.Schema("table.ColumnSpec: range %q..%q is reversed", cs.From, cs.To)
		}
		return slices.Clone(dt.Columns.Keys[fi : ti+1]), nil
	}
	return nil, errors.Schema("table.ColumnSpec: empty spec")
}

// Project returns a new table holding the columns selected by the
// given spec, with this view's rows materialized as fresh sequential
// rows 0..n-1. The result is an independent copy: mutations do not
// affect this table.
func (dt *Table) Project(spec ColumnSpec) (*Table, error) {
	names, err := spec.resolve(dt)
	if err != nil {
		return nil, err
	}
	nt := New(dt.Name())
	rows := dt.NumRows()
	nt.Columns.Rows = rows
	for _, nm := range names {
		scl := dt.Column(nm)
		cl := scl.CloneEmpty(rows)
		for i := 0; i < rows; i++ {
			cl.CopyRowFrom(scl, i, dt.RowIndex(i))
		}
		nt.Columns.Set(nm, cl)
	}
	return nt, nil
}
