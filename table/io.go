// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"strings"
)

// String satisfies the fmt.Stringer interface, rendering the current
// view of the table as an aligned text grid with a header row.
// Missing cells render as a single dot.
func (dt *Table) String() string {
	nc := dt.NumColumns()
	if nc == 0 {
		return "(empty table)\n"
	}
	n := dt.NumRows()
	widths := make([]int, nc)
	cells := make([][]string, n)
	for ci, nm := range dt.Columns.Keys {
		widths[ci] = len(nm)
	}
	for i := 0; i < n; i++ {
		ri := dt.RowIndex(i)
		row := make([]string, nc)
		for ci, cl := range dt.Columns.Values {
			s := cl.StringValue(ri)
			if cl.IsNull(ri) {
				s = "."
			}
			row[ci] = s
			widths[ci] = max(widths[ci], len(s))
		}
		cells[i] = row
	}
	var b strings.Builder
	for ci, nm := range dt.Columns.Keys {
		fmt.Fprintf(&b, "%-*s  ", widths[ci], nm)
	}
	b.WriteString("\n")
	for _, row := range cells {
		for ci, s := range row {
			fmt.Fprintf(&b, "%-*s  ", widths[ci], s)
		}
		b.WriteString("\n")
	}
	return b.String()
}
