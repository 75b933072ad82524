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

// AggNames selects how aggregation output columns are named in AggsToTable.
type AggNames int32

const (
	// AddAggName names output columns Column:Stat.
	AddAggName AggNames = iota

	// ColumnNameOnly names output columns by the source column alone.
	ColumnNameOnly
)

// AggColumn computes the given statistic for the named column across all
// groups and appends the result to the accumulated aggregations.
// A numeric stat on a string column returns a TypeError.
func (gs *Groups) AggColumn(colName string, st stats.Stat) error {
	cl, err := gs.Source.ColumnTry(colName)
	if err != nil {
		return err
	}
	ag := &Agg{Column: colName, Stat: st}
	if st == stats.First || st == stats.Last {
		ag.Rows = make([]int, gs.NumGroups())
		for gi, rows := range gs.Indexes {
			ag.Rows[gi] = pickRow(cl.IsNull, rows, st == stats.Last)
		}
	} else {
		ag.Values = make([]float64, gs.NumGroups())
		for gi, rows := range gs.Indexes {
			val, err := stats.StatRows(st, cl, rows)
			if err != nil {
				return err
			}
			ag.Values[gi] = val
		}
	}
	gs.Aggs = append(gs.Aggs, ag)
	return nil
}

// Count appends a row-count aggregation, which needs no target column.
func (gs *Groups) Count() {
	ag := &Agg{Stat: stats.Count, Values: make([]float64, gs.NumGroups())}
	for gi, rows := range gs.Indexes {
		ag.Values[gi] = float64(len(rows))
	}
	gs.Aggs = append(gs.Aggs, ag)
}

// pickRow returns the first (or last) row for which isNull is false,
// or -1 when all rows are null.
func pickRow(isNull func(int) bool, rows []int, last bool) int {
	if last {
		for i := len(rows) - 1; i >= 0; i-- {
			if !isNull(rows[i]) {
				return rows[i]
			}
		}
		return -1
	}
	for _, row := range rows {
		if !isNull(row) {
			return row
		}
	}
	return -1
}

// AggsToTable assembles the accumulated aggregations into a fresh table
// with one row per group. The grouping columns come first, keeping their
// source types; GroupByFunc groups get a single Group string column.
// Count and CountDistinct results become int columns, First and Last keep
// the source column type, and all other stats become float columns.
func (gs *Groups) AggsToTable(names AggNames) *table.Table {
	ng := gs.NumGroups()
	out := table.New(gs.Source.Name()).SetNumRows(ng)
	if len(gs.By) > 0 {
		for _, nm := range gs.By {
			scl := gs.Source.Column(nm)
			ocl := scl.CloneEmpty(ng)
			for gi, rows := range gs.Indexes {
				ocl.CopyRowFrom(scl, gi, rows[0])
			}
			errors.Log(out.AddColumn(nm, ocl))
		}
	} else {
		out.AddStringColumn("Group")
		for gi, nm := range gs.Names {
			out.SetString("Group", gi, nm)
		}
	}
	for _, ag := range gs.Aggs {
		nm := ag.Column
		if nm == "" {
			nm = "Count"
		} else if names == AddAggName {
			nm += ":" + ag.Stat.String()
		}
		switch {
		case ag.Rows != nil:
			scl := gs.Source.Column(ag.Column)
			ocl := scl.CloneEmpty(ng)
			for gi, row := range ag.Rows {
				if row >= 0 {
					ocl.CopyRowFrom(scl, gi, row)
				}
			}
			errors.Log(out.AddColumn(nm, ocl))
		case ag.Stat == stats.Count || ag.Stat == stats.CountDistinct:
			errors.Log(out.AddColumn(nm, intColumn(ag.Values)))
		default:
			errors.Log(out.AddColumn(nm, floatColumn(ag.Values)))
		}
	}
	return out
}

func intColumn(vals []float64) column.Column {
	cl := column.NewInt(len(vals))
	for i, v := range vals {
		cl.SetInt(int(v), i)
	}
	return cl
}

func floatColumn(vals []float64) column.Column {
	return column.NewFloat64FromValues(vals...)
}
