// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math/rand"
	"slices"
	"sort"

	"github.com/kframe/kframe/column"
)

// Ascending and Descending are for the ascending argument of the
// sorting methods, for self-documentation.
const (
	Ascending  = true
	Descending = false
)

// RowIndex returns the actual index into the underlying column rows
// based on the given view index. If Indexes == nil, the index passes
// through.
func (dt *Table) RowIndex(idx int) int {
	if dt.Indexes == nil {
		return idx
	}
	return dt.Indexes[idx]
}

// NumRows returns the number of rows in this view, which is the number
// of Indexes if present, else the underlying number of rows.
func (dt *Table) NumRows() int {
	if dt.Indexes == nil {
		return dt.Columns.Rows
	}
	return len(dt.Indexes)
}

// Sequential sets Indexes to nil, resulting in sequential row-wise
// access into the underlying data.
func (dt *Table) Sequential() {
	dt.Indexes = nil
}

// IndexesNeeded is called prior to an operation that needs actual
// indexes, e.g., Sort, Filter. If Indexes == nil, they are set to all
// rows, otherwise current indexes are left as is. Use Sequential, then
// IndexesNeeded to ensure all rows are represented.
func (dt *Table) IndexesNeeded() {
	if dt.Indexes != nil {
		return
	}
	dt.Indexes = make([]int, dt.Columns.Rows)
	for i := range dt.Indexes {
		dt.Indexes[i] = i
	}
}

// ValidIndexes deletes all invalid indexes from the list.
// Call this if rows (could) have been deleted from the table.
func (dt *Table) ValidIndexes() {
	if dt.Columns.Rows <= 0 || dt.Indexes == nil {
		dt.Indexes = nil
		return
	}
	ni := dt.NumRows()
	for i := ni - 1; i >= 0; i-- {
		if dt.Indexes[i] >= dt.Columns.Rows {
			dt.Indexes = append(dt.Indexes[:i], dt.Indexes[i+1:]...)
		}
	}
}

// Permuted sets the indexes to a permuted order. If indexes already
// exist then the existing list of indexes is permuted, otherwise a new
// set of permuted indexes is generated.
func (dt *Table) Permuted() {
	if dt.Columns.Rows <= 0 {
		dt.Indexes = nil
		return
	}
	if dt.Indexes == nil {
		dt.Indexes = rand.Perm(dt.Columns.Rows)
	} else {
		rand.Shuffle(len(dt.Indexes), func(i, j int) {
			dt.Indexes[i], dt.Indexes[j] = dt.Indexes[j], dt.Indexes[i]
		})
	}
}

// SortFunc sorts the indexes into this view using the given compare
// function. The compare function operates directly on underlying row
// numbers, which have already been projected through the indexes.
// cmp(a, b) should return a negative number when a < b, a positive
// number when a > b, and zero when a == b.
func (dt *Table) SortFunc(cmp func(dt *Table, i, j int) int) {
	dt.IndexesNeeded()
	slices.SortFunc(dt.Indexes, func(a, b int) int {
		return cmp(dt, a, b) // these are already indirected through indexes
	})
}

// SortStableFunc stably sorts the indexes into this view using the
// given compare function, which otherwise works as in [Table.SortFunc].
// It is essential that it always returns 0 when the two are equal for
// the stable function to actually work.
func (dt *Table) SortStableFunc(cmp func(dt *Table, i, j int) int) {
	dt.IndexesNeeded()
	slices.SortStableFunc(dt.Indexes, func(a, b int) int {
		return cmp(dt, a, b)
	})
}

// SortColumn sorts the indexes into this view according to the values in
// the given column, using either ascending or descending order (use
// [Ascending] or [Descending] for self-documentation). Missing values
// sort last in ascending order. Returns a SchemaError if the column
// name is not found.
func (dt *Table) SortColumn(name string, ascending bool) error {
	return dt.SortColumns(ascending, true, name)
}

// SortColumns sorts the indexes into this view according to the values
// in the given columns, using either ascending or descending order for
// all of the columns, and optionally using a stable sort. Missing
// values sort last in ascending order. Returns a SchemaError if any
// column name is not found.
func (dt *Table) SortColumns(ascending, stable bool, names ...string) error {
	cols := make([]column.Column, len(names))
	for i, nm := range names {
		cl, err := dt.ColumnTry(nm)
		if err != nil {
			return err
		}
		cols[i] = cl
	}
	sf := dt.SortFunc
	if stable {
		sf = dt.SortStableFunc
	}
	sf(func(dt *Table, i, j int) int {
		for _, cl := range cols {
			if c := cl.Compare(i, j); c != 0 {
				if !ascending {
					return -c
				}
				return c
			}
		}
		return 0
	})
	return nil
}

// SortIndexes sorts the indexes into this view directly in numerical
// order, producing the native ordering, while preserving any filtering
// that might have occurred.
func (dt *Table) SortIndexes() {
	if dt.Indexes == nil {
		return
	}
	sort.Ints(dt.Indexes)
}

// FilterFunc is a function used for filtering that returns true if the
// table row should be included in the current filtered view of the
// table, and false if it should be removed.
type FilterFunc func(dt *Table, row int) bool

// Filter filters the indexes into this view using the given filter
// function, which operates directly on underlying row numbers, already
// projected through the indexes.
func (dt *Table) Filter(filterer FilterFunc) {
	dt.IndexesNeeded()
	sz := len(dt.Indexes)
	for i := sz - 1; i >= 0; i-- { // always go in reverse for filtering
		if !filterer(dt, dt.Indexes[i]) {
			dt.Indexes = append(dt.Indexes[:i], dt.Indexes[i+1:]...)
		}
	}
}

// DeleteRows deletes n rows of indexes starting at the given index in
// the list of indexes. This only affects the view, not the underlying
// data; use [Table.Compact] to materialize the result.
func (dt *Table) DeleteRows(at, n int) {
	dt.IndexesNeeded()
	dt.Indexes = append(dt.Indexes[:at], dt.Indexes[at+n:]...)
}

// Swap switches the indexes for i and j.
func (dt *Table) Swap(i, j int) {
	dt.Indexes[i], dt.Indexes[j] = dt.Indexes[j], dt.Indexes[i]
}

// Compact returns a new table with the column data organized according
// to this view's indexes, with fresh sequential rows 0..n-1. If
// Indexes are nil, a [Table.Clone] is returned.
func (dt *Table) Compact() *Table {
	if dt.Indexes == nil {
		return dt.Clone()
	}
	rows := len(dt.Indexes)
	nt := New(dt.Name())
	nt.Columns.Rows = rows
	if slices.IsSorted(dt.Indexes) {
		// filtering preserves relative row order, so the key survives;
		// a reordering view does not
		nt.Columns.Key = slices.Clone(dt.Columns.Key)
	}
	for ci, nm := range dt.Columns.Keys {
		scl := dt.Columns.Values[ci]
		cl := scl.CloneEmpty(rows)
		for i, srw := range dt.Indexes {
			cl.CopyRowFrom(scl, i, srw)
		}
		nt.Columns.Set(nm, cl)
	}
	return nt
}
