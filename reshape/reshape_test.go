// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reshape

import (
	"testing"

	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/table"
	"github.com/stretchr/testify/assert"
)

func newWideTable() *table.Table {
	dt := table.New("wide").SetNumRows(3)
	dt.AddStringColumn("id")
	dt.AddFloat64Column("x")
	dt.AddFloat64Column("y")
	for i, id := range []string{"a", "b", "c"} {
		dt.SetString("id", i, id)
		dt.SetFloat("x", i, float64(i+1))
		dt.SetFloat("y", i, float64(10*(i+1)))
	}
	return dt
}

func TestMeltSingleGroup(t *testing.T) {
	dt := newWideTable()
	lg, err := Melt(dt, []string{"id"}, [][]string{{"x", "y"}}, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"id", "variable", "value"}, lg.ColumnNames())
	assert.Equal(t, 6, lg.NumRows())

	// stacked position by position: all x rows, then all y rows
	assert.Equal(t, "a", lg.StringValue("id", 0))
	assert.Equal(t, "x", lg.StringValue("variable", 0))
	assert.Equal(t, 1.0, lg.Float("value", 0))
	assert.Equal(t, "y", lg.StringValue("variable", 3))
	assert.Equal(t, 10.0, lg.Float("value", 3))
}

func TestMeltMultiGroup(t *testing.T) {
	dt := table.New().SetNumRows(2)
	dt.AddStringColumn("id")
	for _, nm := range []string{"x1", "x2", "y1", "y2"} {
		dt.AddFloat64Column(nm)
	}
	for i, id := range []string{"a", "b"} {
		dt.SetString("id", i, id)
		dt.SetFloat("x1", i, 1)
		dt.SetFloat("x2", i, 2)
		dt.SetFloat("y1", i, 10)
		dt.SetFloat("y2", i, 20)
	}
	lg, err := Melt(dt, []string{"id"},
		[][]string{{"x1", "x2"}, {"y1", "y2"}}, []string{"x", "y"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"id", "variable", "x", "y"}, lg.ColumnNames())
	assert.Equal(t, 4, lg.NumRows())

	// one shared 1-based position column across both groups
	assert.Equal(t, 1, lg.Int("variable", 0))
	assert.Equal(t, 1.0, lg.Float("x", 0))
	assert.Equal(t, 10.0, lg.Float("y", 0))
	assert.Equal(t, 2, lg.Int("variable", 2))
	assert.Equal(t, 2.0, lg.Float("x", 2))
	assert.Equal(t, 20.0, lg.Float("y", 2))
}

func TestMeltDropMissing(t *testing.T) {
	dt := newWideTable()
	assert.NoError(t, dt.SetNull("y", 1))
	lg, err := Melt(dt, []string{"id"}, [][]string{{"x", "y"}}, nil,
		&MeltOptions{DropMissing: true})
	assert.NoError(t, err)
	assert.Equal(t, 5, lg.NumRows())
	for i := 0; i < lg.NumRows(); i++ {
		assert.False(t, lg.IsNull("value", i))
	}
}

func TestMeltErrors(t *testing.T) {
	dt := newWideTable()
	var serr *errors.SchemaError

	_, err := Melt(dt, []string{"id"}, [][]string{{"x", "nope"}}, nil, nil)
	assert.True(t, errors.As(err, &serr))

	// ragged measure groups
	_, err = Melt(dt, []string{"id"}, [][]string{{"x", "y"}, {"x"}}, []string{"a", "b"}, nil)
	assert.True(t, errors.As(err, &serr))

	// name count mismatch
	_, err = Melt(dt, []string{"id"}, [][]string{{"x"}, {"y"}}, []string{"a"}, nil)
	assert.True(t, errors.As(err, &serr))
}

func TestDcast(t *testing.T) {
	dt := table.New().SetNumRows(4)
	dt.AddStringColumn("id")
	dt.AddStringColumn("var")
	dt.AddFloat64Column("val")
	recs := []struct {
		id, v string
		val   float64
	}{
		{"a", "x", 1}, {"a", "y", 2}, {"b", "x", 3}, {"b", "y", 4},
	}
	for i, r := range recs {
		dt.SetString("id", i, r.id)
		dt.SetString("var", i, r.v)
		dt.SetFloat("val", i, r.val)
	}
	wd, err := Dcast(dt, []string{"id"}, []string{"var"}, "val", nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"id", "x", "y"}, wd.ColumnNames())
	assert.Equal(t, 2, wd.NumRows())
	assert.Equal(t, 1.0, wd.Float("x", 0))
	assert.Equal(t, 4.0, wd.Float("y", 1))
}

func TestDcastMissingCell(t *testing.T) {
	dt := table.New().SetNumRows(3)
	dt.AddStringColumn("id")
	dt.AddStringColumn("var")
	dt.AddFloat64Column("val")
	recs := []struct {
		id, v string
		val   float64
	}{
		{"a", "x", 1}, {"a", "y", 2}, {"b", "x", 3},
	}
	for i, r := range recs {
		dt.SetString("id", i, r.id)
		dt.SetString("var", i, r.v)
		dt.SetFloat("val", i, r.val)
	}
	wd, err := Dcast(dt, []string{"id"}, []string{"var"}, "val", nil)
	assert.NoError(t, err)
	assert.True(t, wd.IsNull("y", 1))
}

func TestDcastMultipleMatch(t *testing.T) {
	dt := table.New().SetNumRows(2)
	dt.AddStringColumn("id")
	dt.AddStringColumn("var")
	dt.AddFloat64Column("val")
	for i := 0; i < 2; i++ {
		dt.SetString("id", i, "a")
		dt.SetString("var", i, "x")
		dt.SetFloat("val", i, float64(i+1))
	}
	_, err := Dcast(dt, []string{"id"}, []string{"var"}, "val", nil)
	var serr *errors.SchemaError
	assert.True(t, errors.As(err, &serr))

	wd, err := Dcast(dt, []string{"id"}, []string{"var"}, "val",
		&DcastOptions{Policy: FirstMatch})
	assert.NoError(t, err)
	assert.Equal(t, 1.0, wd.Float("x", 0))
}

func TestDcastMultiColKeys(t *testing.T) {
	dt := table.New().SetNumRows(2)
	dt.AddStringColumn("id")
	dt.AddStringColumn("a")
	dt.AddStringColumn("b")
	dt.AddFloat64Column("val")
	for i, b := range []string{"p", "q"} {
		dt.SetString("id", i, "r")
		dt.SetString("a", i, "m")
		dt.SetString("b", i, b)
		dt.SetFloat("val", i, float64(i))
	}
	wd, err := Dcast(dt, []string{"id"}, []string{"a", "b"}, "val", nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"id", "m_p", "m_q"}, wd.ColumnNames())
}

func TestMeltDcastRoundTrip(t *testing.T) {
	dt := newWideTable()
	lg, err := Melt(dt, []string{"id"}, [][]string{{"x", "y"}}, nil, nil)
	assert.NoError(t, err)
	wd, err := Dcast(lg, []string{"id"}, []string{"variable"}, "value", nil)
	assert.NoError(t, err)

	assert.Equal(t, dt.ColumnNames(), wd.ColumnNames())
	assert.Equal(t, dt.NumRows(), wd.NumRows())
	for i := 0; i < dt.NumRows(); i++ {
		assert.Equal(t, dt.StringValue("id", i), wd.StringValue("id", i))
		assert.Equal(t, dt.Float("x", i), wd.Float("x", i))
		assert.Equal(t, dt.Float("y", i), wd.Float("y", i))
	}
}
