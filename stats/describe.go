// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/kframe/kframe/table"
)

// DescriptiveStats are the standard descriptive stats used in the
// Describe function.
var DescriptiveStats = []Stat{Count, Mean, Std, Sem, Min, Median, Max}

// Describe returns a table of standard descriptive statistics for the
// named columns, over the current view rows of the source table.
// The output has a Stat column naming each statistic and one float
// column per described column. Unknown names return a SchemaError.
func Describe(dt *table.Table, columns ...string) (*table.Table, error) {
	for _, nm := range columns {
		if _, err := dt.ColumnTry(nm); err != nil {
			return nil, err
		}
	}
	rows := viewRows(dt)
	out := table.New("Describe: " + dt.Name()).SetNumRows(len(DescriptiveStats))
	out.AddStringColumn("Stat")
	for i, st := range DescriptiveStats {
		out.SetString("Stat", i, st.String())
	}
	for _, nm := range columns {
		cl := dt.Column(nm)
		out.AddFloat64Column(nm)
		for i, st := range DescriptiveStats {
			val, err := StatRows(st, cl, rows)
			if err != nil {
				return nil, err
			}
			out.SetFloat(nm, i, val)
		}
	}
	return out, nil
}

// DescribeAll runs Describe on all numeric columns in the table.
func DescribeAll(dt *table.Table) (*table.Table, error) {
	var cols []string
	for i, cl := range dt.Columns.Values {
		if !cl.IsString() {
			cols = append(cols, dt.ColumnName(i))
		}
	}
	return Describe(dt, cols...)
}
