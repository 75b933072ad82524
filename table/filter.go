// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/column"
)

// Env is the evaluation context for [Table.FilterWhere] predicates.
// By default, an identifier used in a predicate resolves to the column
// of the same name. An Env entry explicitly redirects an identifier to
// something the caller holds instead: a fixed value ([Env.BindValue]),
// or the name of a column held in a variable ([Env.BindColumn]).
// Resolution is always driven by these explicit bindings, never by
// walking the caller's scope.
type Env struct {
	binds map[string]binding
}

type binding struct {
	value   any
	colName string
	isCol   bool
}

// NewEnv returns a new empty evaluation context.
func NewEnv() *Env {
	return &Env{binds: make(map[string]binding)}
}

// BindValue makes the given identifier resolve to the given fixed
// value, bypassing column-name resolution. Returns the Env for chaining.
func (ev *Env) BindValue(ident string, val any) *Env {
	ev.binds[ident] = binding{value: val}
	return ev
}

// BindColumn makes the given identifier resolve to the column whose
// name the caller holds in a variable, bypassing the default rule that
// an identifier names the column directly. Returns the Env for chaining.
func (ev *Env) BindColumn(ident string, colName string) *Env {
	ev.binds[ident] = binding{colName: colName, isCol: true}
	return ev
}

// RowScope resolves identifiers for one row during predicate
// evaluation. All accessors resolve through the Env bindings first,
// then fall back to a column of the same name; an identifier matching
// neither is a SchemaError.
type RowScope struct {
	dt  *Table
	env *Env
	row int // underlying row
	err error
}

// resolve returns the column for the identifier, or nil with the bound
// value when the identifier is value-bound.
func (rs *RowScope) resolve(ident string) (column.Column, any, error) {
	name := ident
	if rs.env != nil {
		if b, ok := rs.env.binds[ident]; ok {
			if !b.isCol {
				return nil, b.value, nil
			}
			name = b.colName
		}
	}
	cl, ok := rs.dt.Columns.AtTry(name)
	if !ok {
		return nil, nil, errors.Schema("table.RowScope: identifier %q does not resolve to a column or binding", ident)
	}
	return cl, nil, nil
}

// fail records the first resolution error; the predicate result is
// discarded when any error was recorded.
func (rs *RowScope) fail(err error) {
	if rs.err == nil {
		rs.err = err
	}
}

// Value returns the value of the identifier at this row, nil if missing.
func (rs *RowScope) Value(ident string) any {
	cl, v, err := rs.resolve(ident)
	if err != nil {
		rs.fail(err)
		return nil
	}
	if cl == nil {
		return v
	}
	return cl.Value(rs.row)
}

// Float returns the float value of the identifier at this row.
func (rs *RowScope) Float(ident string) float64 {
	cl, v, err := rs.resolve(ident)
	if err != nil {
		rs.fail(err)
		return 0
	}
	if cl == nil {
		fv, _ := column.ToFloat(v)
		return fv
	}
	return cl.Float(rs.row)
}

// StringValue returns the string value of the identifier at this row.
func (rs *RowScope) StringValue(ident string) string {
	cl, v, err := rs.resolve(ident)
	if err != nil {
		rs.fail(err)
		return ""
	}
	if cl == nil {
		return column.StringOf(v)
	}
	return cl.StringValue(rs.row)
}

// IsNull returns true if the identifier's value at this row is missing.
func (rs *RowScope) IsNull(ident string) bool {
	cl, v, err := rs.resolve(ident)
	if err != nil {
		rs.fail(err)
		return true
	}
	if cl == nil {
		return v == nil
	}
	return cl.IsNull(rs.row)
}

// FilterWhere filters the indexes of this view down to the rows for
// which the predicate returns true, with identifiers resolved per the
// given Env (nil = plain column-name resolution). Unlike
// [Table.Filter], resolution failures abort the operation: the view is
// only modified after the predicate has evaluated cleanly on every row.
func (dt *Table) FilterWhere(env *Env, pred func(rs *RowScope) bool) error {
	rs := &RowScope{dt: dt, env: env}
	n := dt.NumRows()
	keep := make([]int, 0, n)
	for vi := 0; vi < n; vi++ {
		ri := dt.RowIndex(vi)
		rs.row = ri
		ok := pred(rs)
		if rs.err != nil {
			return rs.err
		}
		if ok {
			keep = append(keep, ri)
		}
	}
	dt.Indexes = keep
	return nil
}
