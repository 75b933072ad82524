// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package group implements group-by aggregation over tables: GroupBy
// partitions the current view rows into a Groups container, AggColumn
// accumulates per-group statistics, and AggsToTable assembles the
// results into one output row per group.
package group

import (
	"strings"

	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/column"
	"github.com/kframe/kframe/stats"
	"github.com/kframe/kframe/table"
)

// Groups is the result of partitioning a table's view rows by the values
// of one or more grouping columns. Groups appear in order of first
// appearance in the view, which is key-sorted order when the table
// is keyed on the grouping columns.
type Groups struct {
	// Source is the table the groups were formed over.
	Source *table.Table

	// By holds the grouping column names. Empty for GroupByFunc.
	By []string

	// Names holds one formatted label per group.
	Names []string

	// Indexes holds the source row numbers of each group, in view order.
	Indexes [][]int

	// Aggs holds the accumulated aggregations, in the order added.
	Aggs []*Agg
}

// Agg is one accumulated aggregation across all groups.
type Agg struct {
	// Column is the source column name. Empty for Count.
	Column string

	// Stat is the statistic that was computed.
	Stat stats.Stat

	// Values holds one result per group, except for First and Last,
	// where Rows holds the selected source row per group instead.
	Values []float64

	// Rows holds the selected source row per group for First and Last,
	// -1 when the group has no non-missing value.
	Rows []int
}

// GroupBy partitions the current view rows of the table by the values of
// the given columns. Unknown column names return a SchemaError.
func GroupBy(dt *table.Table, names ...string) (*Groups, error) {
	if len(names) == 0 {
		return nil, errors.Schema("group.GroupBy: no grouping columns given")
	}
	cols := make([]column.Column, len(names))
	for i, nm := range names {
		cl, err := dt.ColumnTry(nm)
		if err != nil {
			return nil, err
		}
		cols[i] = cl
	}
	gs := &Groups{Source: dt, By: names}
	idx := map[string]int{}
	parts := make([]string, len(cols))
	for vi := 0; vi < dt.NumRows(); vi++ {
		row := dt.RowIndex(vi)
		for ci, cl := range cols {
			if cl.IsNull(row) {
				parts[ci] = "\x00null"
			} else {
				parts[ci] = cl.StringValue(row)
			}
		}
		key := strings.Join(parts, "\x00")
		gi, ok := idx[key]
		if !ok {
			gi = len(gs.Indexes)
			idx[key] = gi
			gs.Indexes = append(gs.Indexes, nil)
			gs.Names = append(gs.Names, strings.Join(parts, ","))
		}
		gs.Indexes[gi] = append(gs.Indexes[gi], row)
	}
	return gs, nil
}

// GroupByFunc partitions the current view rows of the table by the label
// the given function computes for each source row.
func GroupByFunc(dt *table.Table, fun func(dt *table.Table, row int) string) *Groups {
	gs := &Groups{Source: dt}
	idx := map[string]int{}
	for vi := 0; vi < dt.NumRows(); vi++ {
		row := dt.RowIndex(vi)
		key := fun(dt, row)
		gi, ok := idx[key]
		if !ok {
			gi = len(gs.Indexes)
			idx[key] = gi
			gs.Indexes = append(gs.Indexes, nil)
			gs.Names = append(gs.Names, key)
		}
		gs.Indexes[gi] = append(gs.Indexes[gi], row)
	}
	return gs
}

// NumGroups returns the number of groups.
func (gs *Groups) NumGroups() int { return len(gs.Indexes) }
