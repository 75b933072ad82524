// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

// Base is the backing storage shared by all concrete column types:
// a slice of native values plus the missing-marker bits.
// Concrete types embed Base and add the conversion accessors.
type Base[T any] struct {
	// Values is the backing slice of native values.
	// Direct access does not go through any missing-value logic.
	Values []T

	// miss are the per-row missing markers.
	miss nulls
}

// Len returns the number of rows in the column.
func (cl *Base[T]) Len() int { return len(cl.Values) }

// IsNull returns true if the value at the given row is missing.
func (cl *Base[T]) IsNull(row int) bool { return cl.miss.get(row) }

// SetNull marks the value at the given row as missing.
func (cl *Base[T]) SetNull(row int) { cl.miss.set(row, true) }

func (cl *Base[T]) clearNull(row int) { cl.miss.set(row, false) }

// SetNumRows sets the number of rows, retaining existing values that
// fit. Newly added rows are missing until set.
func (cl *Base[T]) SetNumRows(rows int) {
	cur := len(cl.Values)
	switch {
	case rows > cur:
		if rows <= cap(cl.Values) {
			cl.Values = cl.Values[:rows]
		} else {
			nv := make([]T, rows)
			copy(nv, cl.Values)
			cl.Values = nv
		}
		cl.miss.setRange(cur, rows, true)
	case rows < cur:
		cl.Values = cl.Values[:rows]
	}
}

// Permute reorders the rows in place according to the given order,
// where order[i] gives the source row for new row i. The backing
// buffer is retained, so aliases observe the new order.
func (cl *Base[T]) Permute(order []int) {
	if len(order) != len(cl.Values) {
		panic("column.Permute: order length does not match column length")
	}
	nv := make([]T, len(order))
	for i, src := range order {
		nv[i] = cl.Values[src]
	}
	copy(cl.Values, nv)
	cl.miss.permute(order)
}

// cloneBase returns an independent copy of the backing storage.
func (cl *Base[T]) cloneBase() Base[T] {
	cp := Base[T]{Values: make([]T, len(cl.Values)), miss: cl.miss.clone()}
	copy(cp.Values, cl.Values)
	return cp
}

// appendBase appends the rows of the given base storage.
func (cl *Base[T]) appendBase(from *Base[T]) {
	st := len(cl.Values)
	cl.Values = append(cl.Values, from.Values...)
	for i := range from.Values {
		cl.miss.set(st+i, from.miss.get(i))
	}
}
