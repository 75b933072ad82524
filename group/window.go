// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import (
	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/column"
	"github.com/kframe/kframe/stats"
	"github.com/kframe/kframe/table"
)

// WindowColumn computes the given statistic per group of the key columns
// and broadcasts each group's scalar back across the group's rows into a
// new float column of the source table, mutating it. Rows outside the
// current view are left missing. An existing column of the same name
// returns a SchemaError.
func WindowColumn(dt *table.Table, keyCols []string, colName string, st stats.Stat, outName string) error {
	if dt.Column(outName) != nil {
		return errors.Schema("group.WindowColumn: column %q already exists", outName)
	}
	if st == stats.First || st == stats.Last {
		return windowCopy(dt, keyCols, colName, st, outName)
	}
	gs, err := GroupBy(dt, keyCols...)
	if err != nil {
		return err
	}
	cl, err := dt.ColumnTry(colName)
	if err != nil {
		return err
	}
	out := column.NewFloat64(dt.Columns.Rows)
	for _, rows := range gs.Indexes {
		val, err := stats.StatRows(st, cl, rows)
		if err != nil {
			return err
		}
		for _, row := range rows {
			out.SetFloat(val, row)
		}
	}
	return dt.AddColumn(outName, out)
}

// windowCopy broadcasts the group's first or last non-missing value,
// keeping the source column type.
func windowCopy(dt *table.Table, keyCols []string, colName string, st stats.Stat, outName string) error {
	gs, err := GroupBy(dt, keyCols...)
	if err != nil {
		return err
	}
	cl, err := dt.ColumnTry(colName)
	if err != nil {
		return err
	}
	out := cl.CloneEmpty(dt.Columns.Rows)
	for _, rows := range gs.Indexes {
		src := pickRow(cl.IsNull, rows, st == stats.Last)
		if src < 0 {
			continue
		}
		for _, row := range rows {
			out.CopyRowFrom(cl, row, src)
		}
	}
	return dt.AddColumn(outName, out)
}
