// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides standard reduction functions over table columns,
// operating on the current indexed view and skipping missing values.
package stats

import (
	"math"
	"slices"
	"strconv"

	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/column"
	"github.com/kframe/kframe/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stat is a list of the standard aggregation functions, which can be used
// to choose an aggregation function.
type Stat int32

const (
	// count of non-missing elements.
	Count Stat = iota

	// sum of elements.
	Sum

	// mean value = sum / count.
	Mean

	// middle value in sorted ordering.
	Median

	// minimum value.
	Min

	// maximum value.
	Max

	// sample standard deviation (divided by n-1).
	Std

	// sample standard error of the mean (Std divided by sqrt(n)).
	Sem

	// count of distinct non-missing values.
	CountDistinct

	// first non-missing value in view order.
	First

	// last non-missing value in view order.
	Last
)

var statNames = map[Stat]string{
	Count:         "Count",
	Sum:           "Sum",
	Mean:          "Mean",
	Median:        "Median",
	Min:           "Min",
	Max:           "Max",
	Std:           "Std",
	Sem:           "Sem",
	CountDistinct: "CountDistinct",
	First:         "First",
	Last:          "Last",
}

func (st Stat) String() string {
	if nm, ok := statNames[st]; ok {
		return nm
	}
	return "Stat(" + strconv.Itoa(int(st)) + ")"
}

// Numeric reports whether the stat requires a numeric column.
// Count, CountDistinct, First and Last apply to any column type.
func (st Stat) Numeric() bool {
	switch st {
	case Count, CountDistinct, First, Last:
		return false
	}
	return true
}

// gather returns the non-missing values of the given rows as floats.
func gather(cl column.Column, rows []int) []float64 {
	vals := make([]float64, 0, len(rows))
	for _, row := range rows {
		if cl.IsNull(row) {
			continue
		}
		vals = append(vals, cl.Float(row))
	}
	return vals
}

// StatRows computes the given statistic over the given rows of a column.
// Missing values are skipped. Statistics over zero non-missing values
// return NaN, except Count and CountDistinct which return 0.
// Numeric stats on a string column return a TypeError.
func StatRows(st Stat, cl column.Column, rows []int) (float64, error) {
	if st.Numeric() && cl.IsString() {
		return math.NaN(), errors.Type("stats.StatRows: stat %s requires a numeric column", st)
	}
	switch st {
	case Count:
		n := 0
		for _, row := range rows {
			if !cl.IsNull(row) {
				n++
			}
		}
		return float64(n), nil
	case CountDistinct:
		if cl.IsString() {
			seen := map[string]struct{}{}
			for _, row := range rows {
				if !cl.IsNull(row) {
					seen[cl.StringValue(row)] = struct{}{}
				}
			}
			return float64(len(seen)), nil
		}
		seen := map[float64]struct{}{}
		for _, row := range rows {
			if !cl.IsNull(row) {
				seen[cl.Float(row)] = struct{}{}
			}
		}
		return float64(len(seen)), nil
	case First:
		for _, row := range rows {
			if !cl.IsNull(row) {
				return cl.Float(row), nil
			}
		}
		return math.NaN(), nil
	case Last:
		for i := len(rows) - 1; i >= 0; i-- {
			if !cl.IsNull(rows[i]) {
				return cl.Float(rows[i]), nil
			}
		}
		return math.NaN(), nil
	}

	vals := gather(cl, rows)
	if len(vals) == 0 {
		return math.NaN(), nil
	}
	switch st {
	case Sum:
		return floats.Sum(vals), nil
	case Mean:
		return stat.Mean(vals, nil), nil
	case Median:
		srt := slices.Clone(vals)
		slices.Sort(srt)
		return stat.Quantile(0.5, stat.Empirical, srt, nil), nil
	case Min:
		return floats.Min(vals), nil
	case Max:
		return floats.Max(vals), nil
	case Std:
		if len(vals) < 2 {
			return math.NaN(), nil
		}
		return stat.StdDev(vals, nil), nil
	case Sem:
		if len(vals) < 2 {
			return math.NaN(), nil
		}
		return stat.StdErr(stat.StdDev(vals, nil), float64(len(vals))), nil
	}
	return math.NaN(), errors.Type("stats.StatRows: unknown stat %d", int(st))
}

// StatColumn computes the given statistic over the current view rows of
// the named column. Unknown column names return a SchemaError.
func StatColumn(dt *table.Table, colName string, st Stat) (float64, error) {
	cl, err := dt.ColumnTry(colName)
	if err != nil {
		return math.NaN(), err
	}
	return StatRows(st, cl, viewRows(dt))
}

// viewRows returns the source row numbers of the current view, in order.
func viewRows(dt *table.Table) []int {
	rows := make([]int, dt.NumRows())
	for i := range rows {
		rows[i] = dt.RowIndex(i)
	}
	return rows
}
