// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"github.com/kframe/kframe/base/errors"
	"github.com/stretchr/testify/assert"
)

func TestFilterWhere(t *testing.T) {
	dt := newTestTable()
	env := NewEnv()
	err := dt.FilterWhere(env, func(rs *RowScope) bool {
		return rs.Float("Value") >= 2
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, dt.NumRows())
	assert.Equal(t, "B", dt.StringValue("Name", 0))
}

func TestFilterWhereBoundValue(t *testing.T) {
	dt := newTestTable()
	env := NewEnv()
	env.BindValue("cut", 1.5)
	err := dt.FilterWhere(env, func(rs *RowScope) bool {
		return rs.Float("Value") > rs.Float("cut")
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, dt.NumRows())
}

func TestFilterWhereBoundColumn(t *testing.T) {
	dt := newTestTable()
	env := NewEnv()
	// an explicit binding wins over the identically named column
	env.BindColumn("Value", "N")
	err := dt.FilterWhere(env, func(rs *RowScope) bool {
		return rs.Float("Value") >= 20
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, dt.NumRows())
	assert.Equal(t, 20, dt.Int("N", 0))
}

func TestFilterWhereUnknownIdent(t *testing.T) {
	dt := newTestTable()
	env := NewEnv()
	err := dt.FilterWhere(env, func(rs *RowScope) bool {
		return rs.Float("Nope") > 0
	})
	var serr *errors.SchemaError
	assert.True(t, errors.As(err, &serr))
	// no partial mutation on error
	assert.Equal(t, 4, dt.NumRows())
	assert.Nil(t, dt.Indexes)
}

func TestFilterWhereOnView(t *testing.T) {
	dt := newTestTable()
	assert.NoError(t, dt.SortColumn("Value", Descending))
	env := NewEnv()
	err := dt.FilterWhere(env, func(rs *RowScope) bool {
		return !rs.IsNull("Value") && rs.Float("Value") != 2
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, dt.NumRows())
	// filtering refines the existing view order
	assert.Equal(t, 3.0, dt.Float("Value", 0))
	assert.Equal(t, 0.0, dt.Float("Value", 2))
}

func TestProject(t *testing.T) {
	dt := newTestTable()
	nt, err := dt.Project(SelectColumns("Name", "Value"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"Name", "Value"}, nt.ColumnNames())
	assert.Equal(t, 4, nt.NumRows())

	// projection is independent of the source
	assert.NoError(t, nt.SetFloat("Value", 0, 99))
	assert.Equal(t, 0.0, dt.Float("Value", 0))
}

func TestProjectExclude(t *testing.T) {
	dt := newTestTable()
	nt, err := dt.Project(ExcludeColumns("N"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"Name", "Value"}, nt.ColumnNames())
}

func TestProjectRange(t *testing.T) {
	dt := newTestTable()
	nt, err := dt.Project(ColumnRange("Value", "N"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"Value", "N"}, nt.ColumnNames())

	_, err = dt.Project(ColumnRange("N", "Name"))
	assert.Error(t, err)
}

func TestProjectUnknown(t *testing.T) {
	dt := newTestTable()
	_, err := dt.Project(SelectColumns("Name", "Nope"))
	var serr *errors.SchemaError
	assert.True(t, errors.As(err, &serr))
}

func TestProjectOnView(t *testing.T) {
	dt := newTestTable()
	dt.Filter(func(dt *Table, row int) bool {
		return dt.Column("Value").Float(row) < 2
	})
	nt, err := dt.Project(SelectColumns("Value"))
	assert.NoError(t, err)
	assert.Equal(t, 2, nt.NumRows())
	assert.Nil(t, nt.Indexes)
}
