// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"slices"

	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/base/keylist"
	"github.com/kframe/kframe/column"
)

// Columns is the underlying column list for a [Table]: an ordered,
// name-keyed list of [column.Column] values, all sharing the common
// Rows count. Different tables can provide different indexed views
// onto the same Columns.
type Columns struct {
	keylist.List[string, column.Column]

	// Rows is the number of rows shared by all columns.
	Rows int

	// Key is the list of column names the rows are currently physically
	// sorted by, empty when no key is set. See [Table.SetKey].
	Key []string
}

// NewColumns returns a new empty Columns list.
func NewColumns() *Columns {
	return &Columns{}
}

// AddColumn adds the given column under the given name, returning a
// SchemaError if the name is already present or the length does not
// match Rows. The first column added to an empty list establishes Rows.
func (cs *Columns) AddColumn(name string, cl column.Column) error {
	if cs.IndexByKey(name) >= 0 {
		return errors.Schema("table.Columns.AddColumn: column named %q already exists", name)
	}
	if cs.Len() == 0 {
		cs.Rows = cl.Len()
	} else if cl.Len() != cs.Rows {
		return errors.Schema("table.Columns.AddColumn: column %q length %d does not match table rows %d", name, cl.Len(), cs.Rows)
	}
	return cs.Add(name, cl)
}

// InsertColumn inserts the given column at the given index, with the
// same validation as [Columns.AddColumn].
func (cs *Columns) InsertColumn(idx int, name string, cl column.Column) error {
	if cs.IndexByKey(name) >= 0 {
		return errors.Schema("table.Columns.InsertColumn: column named %q already exists", name)
	}
	if cs.Len() == 0 {
		cs.Rows = cl.Len()
	} else if cl.Len() != cs.Rows {
		return errors.Schema("table.Columns.InsertColumn: column %q length %d does not match table rows %d", name, cl.Len(), cs.Rows)
	}
	return cs.Insert(idx, name, cl)
}

// SetColumn sets the column under the given name, replacing any
// existing one. When rows already exist, a length mismatch is a
// SchemaError; on an empty table the new column establishes Rows.
func (cs *Columns) SetColumn(name string, cl column.Column) error {
	switch {
	case cs.Len() == 0 || cs.Rows == 0:
		cs.Rows = cl.Len()
		cs.Set(name, cl)
		for _, ocl := range cs.Values {
			if ocl.Len() < cs.Rows {
				ocl.SetNumRows(cs.Rows)
			}
		}
		return nil
	case cl.Len() != cs.Rows:
		return errors.Schema("table.Columns.SetColumn: column %q length %d does not match table rows %d", name, cl.Len(), cs.Rows)
	}
	cs.Set(name, cl)
	return nil
}

// SetNumRows sets the number of rows in all columns.
func (cs *Columns) SetNumRows(rows int) {
	cs.Rows = rows
	for _, cl := range cs.Values {
		cl.SetNumRows(rows)
	}
}

// Clone returns a complete independent copy, cloning all column buffers.
func (cs *Columns) Clone() *Columns {
	cp := NewColumns()
	cp.Rows = cs.Rows
	cp.Key = slices.Clone(cs.Key)
	for i, nm := range cs.Keys {
		cp.Set(nm, cs.Values[i].Clone())
	}
	return cp
}

// ShallowClone returns a new Columns with its own name list that
// aliases the same underlying column buffers: value mutations through
// either list are shared, name list changes are not.
func (cs *Columns) ShallowClone() *Columns {
	cp := NewColumns()
	cp.Rows = cs.Rows
	cp.Key = slices.Clone(cs.Key)
	for i, nm := range cs.Keys {
		cp.Set(nm, cs.Values[i])
	}
	return cp
}

// AppendRows appends the rows of columns with matching names from the
// given source. Columns present here but not in the source are
// null-filled; columns only in the source are ignored.
func (cs *Columns) AppendRows(cs2 *Columns) {
	for i, nm := range cs.Keys {
		if src, ok := cs2.AtTry(nm); ok {
			errors.Log(cs.Values[i].AppendFrom(src))
		}
	}
	cs.Rows += cs2.Rows
	// pad any columns the source did not have
	for _, cl := range cs.Values {
		if cl.Len() < cs.Rows {
			cl.SetNumRows(cs.Rows)
		}
	}
}
