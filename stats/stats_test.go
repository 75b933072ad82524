// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/table"
	"github.com/stretchr/testify/assert"
)

func newStatsTable() *table.Table {
	dt := table.New("stats").SetNumRows(5)
	dt.AddStringColumn("Name")
	dt.AddFloat64Column("Value")
	vals := []float64{1, 2, 3, 4, 5}
	names := []string{"a", "b", "a", "c", "b"}
	for i := 0; i < 5; i++ {
		dt.SetString("Name", i, names[i])
		dt.SetFloat("Value", i, vals[i])
	}
	return dt
}

func TestStatColumn(t *testing.T) {
	dt := newStatsTable()
	tol := 1e-8

	val, err := StatColumn(dt, "Value", Count)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, val)

	val, _ = StatColumn(dt, "Value", Sum)
	assert.InDelta(t, 15, val, tol)

	val, _ = StatColumn(dt, "Value", Mean)
	assert.InDelta(t, 3, val, tol)

	val, _ = StatColumn(dt, "Value", Median)
	assert.InDelta(t, 3, val, tol)

	val, _ = StatColumn(dt, "Value", Min)
	assert.InDelta(t, 1, val, tol)

	val, _ = StatColumn(dt, "Value", Max)
	assert.InDelta(t, 5, val, tol)

	val, _ = StatColumn(dt, "Value", Std)
	assert.InDelta(t, math.Sqrt(2.5), val, tol)

	val, _ = StatColumn(dt, "Value", Sem)
	assert.InDelta(t, math.Sqrt(2.5)/math.Sqrt(5), val, tol)

	val, _ = StatColumn(dt, "Value", First)
	assert.Equal(t, 1.0, val)

	val, _ = StatColumn(dt, "Value", Last)
	assert.Equal(t, 5.0, val)
}

func TestStatMissing(t *testing.T) {
	dt := newStatsTable()
	assert.NoError(t, dt.SetNull("Value", 0))
	assert.NoError(t, dt.SetNull("Value", 4))

	val, _ := StatColumn(dt, "Value", Count)
	assert.Equal(t, 3.0, val)

	val, _ = StatColumn(dt, "Value", Sum)
	assert.Equal(t, 9.0, val)

	// First and Last skip missing
	val, _ = StatColumn(dt, "Value", First)
	assert.Equal(t, 2.0, val)
	val, _ = StatColumn(dt, "Value", Last)
	assert.Equal(t, 4.0, val)
}

func TestStatAllMissing(t *testing.T) {
	dt := table.New().SetNumRows(2)
	dt.AddFloat64Column("V")
	dt.SetNull("V", 0)
	dt.SetNull("V", 1)

	val, err := StatColumn(dt, "V", Count)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, val)

	val, _ = StatColumn(dt, "V", Mean)
	assert.True(t, math.IsNaN(val))
}

func TestCountDistinct(t *testing.T) {
	dt := newStatsTable()
	val, err := StatColumn(dt, "Name", CountDistinct)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, val)

	dt.SetFloat("Value", 1, 1)
	val, _ = StatColumn(dt, "Value", CountDistinct)
	assert.Equal(t, 4.0, val)
}

func TestStatTypeError(t *testing.T) {
	dt := newStatsTable()
	_, err := StatColumn(dt, "Name", Mean)
	var terr *errors.TypeError
	assert.True(t, errors.As(err, &terr))

	// Count is fine on strings
	val, err := StatColumn(dt, "Name", Count)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, val)
}

func TestStatOnView(t *testing.T) {
	dt := newStatsTable()
	dt.Filter(func(dt *table.Table, row int) bool {
		return dt.Column("Value").Float(row) >= 3
	})
	val, err := StatColumn(dt, "Value", Sum)
	assert.NoError(t, err)
	assert.Equal(t, 12.0, val)
}

func TestStatUnknownColumn(t *testing.T) {
	dt := newStatsTable()
	_, err := StatColumn(dt, "Nope", Mean)
	var serr *errors.SchemaError
	assert.True(t, errors.As(err, &serr))
}

func TestDescribe(t *testing.T) {
	dt := newStatsTable()
	desc, err := Describe(dt, "Value")
	assert.NoError(t, err)
	assert.Equal(t, len(DescriptiveStats), desc.NumRows())
	assert.Equal(t, []string{"Stat", "Value"}, desc.ColumnNames())
	assert.Equal(t, "Count", desc.StringValue("Stat", 0))
	assert.Equal(t, 5.0, desc.Float("Value", 0))

	all, err := DescribeAll(dt)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Stat", "Value"}, all.ColumnNames())
}
