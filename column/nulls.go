// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

// nulls is a bit slice recording the per-row missing markers of a column.
// Bit set = value is missing.
type nulls []uint64

func newNulls(rows int) nulls {
	return make(nulls, (rows+63)/64)
}

func (n nulls) get(i int) bool {
	w := i / 64
	if w >= len(n) {
		return false
	}
	return n[w]&(1<<(uint(i)&63)) != 0
}

func (n *nulls) set(i int, null bool) {
	w := i / 64
	for w >= len(*n) {
		*n = append(*n, 0)
	}
	if null {
		(*n)[w] |= 1 << (uint(i) & 63)
	} else {
		(*n)[w] &^= 1 << (uint(i) & 63)
	}
}

// setRange sets rows [i:j] to the given missing state.
func (n *nulls) setRange(i, j int, null bool) {
	for r := i; r < j; r++ {
		n.set(r, null)
	}
}

func (n nulls) clone() nulls {
	cp := make(nulls, len(n))
	copy(cp, n)
	return cp
}

// permute reorders the first rows bits in place per the given order.
func (n *nulls) permute(order []int) {
	np := newNulls(len(order))
	for i, src := range order {
		if n.get(src) {
			np.set(i, true)
		}
	}
	copy(*n, np)
	if len(np) > len(*n) {
		*n = append(*n, np[len(*n):]...)
	}
}
