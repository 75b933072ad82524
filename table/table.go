// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table implements the kframe Table: an ordered set of named,
// typed, nullable columns aligned by a common row count, with
// reference (aliasing) handle semantics, an indexed row view for
// sorting and filtering without moving data, a sorted key index with
// prefix lookup, and predicate / projection evaluation.
//
// Tables are passed and shared by pointer: mutating a table inside a
// function mutates the caller's table too, unless the function clones
// it first. [Table.Clone] is the explicit deep-copy escape;
// [Table.ShallowCopy] duplicates only the column-name list while
// aliasing the underlying column buffers. Tables provide no internal
// locking: concurrent mutation of an aliased table requires external
// synchronization by the caller.
package table

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/base/metadata"
	"github.com/kframe/kframe/column"
)

// Table is a table of columns aligned by a common row count.
// The Columns data can be shared among multiple Table handles, with
// each handle optionally holding its own Indexes view (nil = sequential)
// for coordinated sorting and filtering without moving the data.
type Table struct {
	// Columns has the list of column data for this table.
	// Different tables can provide different indexed views onto the
	// same Columns.
	Columns *Columns

	// Indexes are the indexes into the underlying column rows, with
	// nil = sequential. Only set if the view order differs from the
	// default sequential order.
	Indexes []int

	// Meta is misc metadata for the table, including the "Name" and
	// "ID" standard keys.
	Meta metadata.Data
}

// New returns a new Table with its own (empty) set of Columns and a
// fresh identity. Can pass an optional name which sets metadata.
func New(name ...string) *Table {
	dt := &Table{Columns: NewColumns()}
	dt.Meta.Set("ID", uuid.NewString())
	if len(name) > 0 {
		dt.Meta.SetName(name[0])
	}
	return dt
}

// NewView returns a new Table handle with its own indexed view into
// the same underlying Columns data as the source table: an alias, not
// a copy. Indexes are nil in the new handle, giving the full
// sequential view.
func NewView(src *Table) *Table {
	dt := &Table{Columns: src.Columns}
	dt.Meta.Copy(src.Meta)
	return dt
}

// ShallowCopy returns a new Table with its own column-name list that
// aliases the same underlying column buffers as this table: renaming,
// adding, or dropping columns on the copy does not affect this table,
// but in-place value mutations are shared both ways.
func (dt *Table) ShallowCopy() *Table {
	cp := &Table{Columns: dt.Columns.ShallowClone()}
	cp.Meta.Copy(dt.Meta)
	cp.Meta.Set("ID", uuid.NewString())
	if dt.Indexes != nil {
		cp.Indexes = append([]int{}, dt.Indexes...)
	}
	return cp
}

// Clone returns a complete independent deep copy of this table,
// cloning the underlying column buffers and the current Indexes.
func (dt *Table) Clone() *Table {
	cp := &Table{Columns: dt.Columns.Clone()}
	cp.Meta.Copy(dt.Meta)
	cp.Meta.Set("ID", uuid.NewString())
	if dt.Indexes != nil {
		cp.Indexes = append([]int{}, dt.Indexes...)
	}
	return cp
}

// ID returns the unique identity of this table handle, assigned at
// construction. Aliases made with [NewView] share the identity of
// their source; copies get their own.
func (dt *Table) ID() string {
	return errors.Ignore1(metadata.Get[string](dt.Meta, "ID"))
}

// Name returns the table name metadata (empty if not set).
func (dt *Table) Name() string { return dt.Meta.Name() }

// IsValidRow returns an error if the given view row is out of range.
func (dt *Table) IsValidRow(row int) error {
	if row < 0 || row >= dt.NumRows() {
		return fmt.Errorf("table.Table.IsValidRow: row %d is out of valid range [0..%d]", row, dt.NumRows())
	}
	return nil
}

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// Column returns the column with the given name, without any view
// indirection. Returns nil if not found; see [Table.ColumnTry] for an
// error-returning version.
func (dt *Table) Column(name string) column.Column {
	return dt.Columns.At(name)
}

// ColumnTry returns the column with the given name, with a SchemaError
// if the name is not found.
func (dt *Table) ColumnTry(name string) (column.Column, error) {
	if cl, ok := dt.Columns.AtTry(name); ok {
		return cl, nil
	}
	return nil, errors.Schema("table.Table: column named %q not found", name)
}

// ColumnByIndex returns the column at the given index.
func (dt *Table) ColumnByIndex(idx int) column.Column {
	return dt.Columns.Values[idx]
}

// ColumnName returns the name of the column at the given index.
func (dt *Table) ColumnName(idx int) string {
	return dt.Columns.Keys[idx]
}

// ColumnNames returns the list of column names in order.
func (dt *Table) ColumnNames() []string {
	return append([]string{}, dt.Columns.Keys...)
}

// ColumnIndexList returns the indexes of the given column names,
// skipping any that are not found.
func (dt *Table) ColumnIndexList(names ...string) []int {
	var list []int
	for _, nm := range names {
		if ci := dt.Columns.IndexByKey(nm); ci >= 0 {
			list = append(list, ci)
		}
	}
	return list
}

// AddColumn adds the given column to the table under the given name,
// returning a SchemaError and not adding if the name is not unique or
// the length does not match the current number of rows.
func (dt *Table) AddColumn(name string, cl column.Column) error {
	return dt.Columns.AddColumn(name, cl)
}

// InsertColumn inserts the given column at the given index, with the
// same validation as [Table.AddColumn].
func (dt *Table) InsertColumn(idx int, name string, cl column.Column) error {
	return dt.Columns.InsertColumn(idx, name, cl)
}

// SetColumn sets the column under the given name, replacing any
// existing one, with a SchemaError on length mismatch.
func (dt *Table) SetColumn(name string, cl column.Column) error {
	return dt.Columns.SetColumn(name, cl)
}

// AddFloat64Column adds a new float64 column with the given name.
func (dt *Table) AddFloat64Column(name string) *column.Float64 {
	cl := column.NewFloat64(dt.Columns.Rows)
	errors.Log(dt.AddColumn(name, cl))
	return cl
}

// AddFloat32Column adds a new float32 column with the given name.
func (dt *Table) AddFloat32Column(name string) *column.Float32 {
	cl := column.NewFloat32(dt.Columns.Rows)
	errors.Log(dt.AddColumn(name, cl))
	return cl
}

// AddIntColumn adds a new int column with the given name.
func (dt *Table) AddIntColumn(name string) *column.Int {
	cl := column.NewInt(dt.Columns.Rows)
	errors.Log(dt.AddColumn(name, cl))
	return cl
}

// AddStringColumn adds a new string column with the given name.
func (dt *Table) AddStringColumn(name string) *column.String {
	cl := column.NewString(dt.Columns.Rows)
	errors.Log(dt.AddColumn(name, cl))
	return cl
}

// AddBoolColumn adds a new bool column with the given name.
func (dt *Table) AddBoolColumn(name string) *column.Bool {
	cl := column.NewBool(dt.Columns.Rows)
	errors.Log(dt.AddColumn(name, cl))
	return cl
}

// AddTimeColumn adds a new time column with the given name.
func (dt *Table) AddTimeColumn(name string) *column.Time {
	cl := column.NewTime(dt.Columns.Rows)
	errors.Log(dt.AddColumn(name, cl))
	return cl
}

// DeleteColumn deletes the column with the given name, dropping its
// key status if it was a key column. Returns false if not found.
func (dt *Table) DeleteColumn(name string) bool {
	if !dt.Columns.DeleteByKey(name) {
		return false
	}
	for _, kn := range dt.Columns.Key {
		if kn == name {
			dt.Columns.Key = nil
			break
		}
	}
	return true
}

// DeleteAll deletes all columns, doing a full reset.
func (dt *Table) DeleteAll() {
	dt.Indexes = nil
	dt.Columns.Reset()
	dt.Columns.Rows = 0
	dt.Columns.Key = nil
}

// AddRows adds n rows to the end of the underlying columns, and to the
// indexes in this view.
func (dt *Table) AddRows(n int) *Table {
	return dt.SetNumRows(dt.Columns.Rows + n)
}

// SetNumRows sets the number of rows in the table, across all columns.
func (dt *Table) SetNumRows(rows int) *Table {
	strow := dt.Columns.Rows
	dt.Columns.SetNumRows(rows)
	if dt.Indexes == nil {
		return dt
	}
	if rows > strow {
		for i := 0; i < rows - strow; i++ {
			dt.Indexes = append(dt.Indexes, strow+i)
		}
	} else {
		dt.ValidIndexes()
	}
	return dt
}

// AppendRows appends the rows of the given table for columns with
// matching names; columns missing from the source are null-filled.
func (dt *Table) AppendRows(dt2 *Table) {
	strow := dt.Columns.Rows
	n := dt2.Columns.Rows
	dt.Columns.AppendRows(dt2.Columns)
	if dt.Indexes == nil {
		return
	}
	for i := 0; i < n; i++ {
		dt.Indexes = append(dt.Indexes, strow+i)
	}
}

////////  Cell access, through the indexed view

// Float returns the float value of the cell at the given column name
// and view row, NaN for missing cells or an unknown column.
func (dt *Table) Float(name string, row int) float64 {
	cl := dt.Column(name)
	if cl == nil {
		return math.NaN()
	}
	ri := dt.RowIndex(row)
	if cl.IsNull(ri) {
		return math.NaN()
	}
	return cl.Float(ri)
}

// SetFloat sets the float value of the cell at the given column name
// and view row. This is an O(1) in-place write to the backing buffer.
// Returns a SchemaError for an unknown column.
func (dt *Table) SetFloat(name string, row int, val float64) error {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return err
	}
	cl.SetFloat(val, dt.RowIndex(row))
	return nil
}

// StringValue returns the string value of the cell at the given column
// name and view row, "" for missing cells or an unknown column.
func (dt *Table) StringValue(name string, row int) string {
	cl := dt.Column(name)
	if cl == nil {
		return ""
	}
	return cl.StringValue(dt.RowIndex(row))
}

// SetString sets the string value of the cell at the given column name
// and view row. Returns a SchemaError for an unknown column.
func (dt *Table) SetString(name string, row int, val string) error {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return err
	}
	cl.SetString(val, dt.RowIndex(row))
	return nil
}

// Int returns the int value of the cell at the given column name and
// view row, 0 for missing cells or an unknown column.
func (dt *Table) Int(name string, row int) int {
	cl := dt.Column(name)
	if cl == nil {
		return 0
	}
	ri := dt.RowIndex(row)
	if cl.IsNull(ri) {
		return 0
	}
	return cl.Int(ri)
}

// SetInt sets the int value of the cell at the given column name and
// view row. Returns a SchemaError for an unknown column.
func (dt *Table) SetInt(name string, row int, val int) error {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return err
	}
	cl.SetInt(val, dt.RowIndex(row))
	return nil
}

// Time returns the time value of the cell at the given column name and
// view row, the zero time for missing cells or an unknown column.
func (dt *Table) Time(name string, row int) time.Time {
	cl := dt.Column(name)
	if cl == nil {
		return time.Time{}
	}
	ri := dt.RowIndex(row)
	if cl.IsNull(ri) {
		return time.Time{}
	}
	return cl.Time(ri)
}

// SetTime sets the time value of the cell at the given column name and
// view row. Returns a SchemaError for an unknown column.
func (dt *Table) SetTime(name string, row int, val time.Time) error {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return err
	}
	cl.SetTime(val, dt.RowIndex(row))
	return nil
}

// Value returns the native value of the cell at the given column name
// and view row, nil for missing cells or an unknown column.
func (dt *Table) Value(name string, row int) any {
	cl := dt.Column(name)
	if cl == nil {
		return nil
	}
	return cl.Value(dt.RowIndex(row))
}

// Set sets the value of the cell at the given column name and view row
// from an arbitrary value, coercing compatible types; nil marks the
// cell missing. Returns a SchemaError for an unknown column and a
// TypeError for an incompatible value.
func (dt *Table) Set(name string, row int, val any) error {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return err
	}
	return cl.Set(val, dt.RowIndex(row))
}

// IsNull returns true if the cell at the given column name and view
// row is missing. An unknown column is reported as missing.
func (dt *Table) IsNull(name string, row int) bool {
	cl := dt.Column(name)
	if cl == nil {
		return true
	}
	return cl.IsNull(dt.RowIndex(row))
}

// SetNull marks the cell at the given column name and view row missing.
// Returns a SchemaError for an unknown column.
func (dt *Table) SetNull(name string, row int) error {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return err
	}
	cl.SetNull(dt.RowIndex(row))
	return nil
}
