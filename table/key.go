// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"slices"
	"sort"

	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/base/logx"
	"github.com/kframe/kframe/column"
)

// MatchPolicy determines how [Table.Lookup] treats the set of rows
// matching a key prefix.
type MatchPolicy int32

const (
	// AllMatches returns all matching rows, which may be none.
	AllMatches MatchPolicy = iota

	// FirstMatch returns at most the first matching row.
	FirstMatch

	// ErrorIfNone returns all matching rows, with a KeyError when
	// there are none.
	ErrorIfNone

	// NullIfNone returns all matching rows, with the single no-match
	// marker row index -1 when there are none.
	NullIfNone
)

func (mp MatchPolicy) String() string {
	switch mp {
	case AllMatches:
		return "AllMatches"
	case FirstMatch:
		return "FirstMatch"
	case ErrorIfNone:
		return "ErrorIfNone"
	case NullIfNone:
		return "NullIfNone"
	}
	return "MatchPolicy(invalid)"
}

// NoMatchRow is the row index returned by [Table.Lookup] under
// [NullIfNone] when no row matches.
const NoMatchRow = -1

// Key returns the list of column names the table rows are currently
// physically sorted by, nil when no key is set.
func (dt *Table) Key() []string {
	return slices.Clone(dt.Columns.Key)
}

// HasKey returns true if a key is currently set.
func (dt *Table) HasKey() bool { return len(dt.Columns.Key) > 0 }

// ClearKey removes the key without moving any data; the rows keep
// their current physical order.
func (dt *Table) ClearKey() { dt.Columns.Key = nil }

// SetKey physically re-sorts all underlying column buffers in
// ascending order by the tuple of the given columns (stable,
// lexicographic, missing values last), and records the key on the
// table, enabling [Table.Lookup]. This mutates the shared data in
// place: every handle aliasing these columns observes the new order,
// and any indexed views previously derived from the old order are
// invalidated. All names are validated before any data is moved;
// an unknown name is a SchemaError and leaves the table untouched.
func (dt *Table) SetKey(names ...string) error {
	if len(names) == 0 {
		return errors.Key("table.Table.SetKey: no key columns given")
	}
	cols := make([]column.Column, len(names))
	for i, nm := range names {
		cl, err := dt.ColumnTry(nm)
		if err != nil {
			return err
		}
		cols[i] = cl
	}
	order := make([]int, dt.Columns.Rows)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		for _, cl := range cols {
			if c := cl.Compare(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	for _, cl := range dt.Columns.Values {
		cl.Permute(order)
	}
	dt.Columns.Key = slices.Clone(names)
	dt.Indexes = nil
	logx.Debug().Str("table", dt.Name()).Strs("key", names).
		Int("rows", dt.Columns.Rows).Msg("key set")
	return nil
}

// compareKeyPrefix compares the key cells of the given underlying row
// against the given prefix of key values.
func (dt *Table) compareKeyPrefix(cols []column.Column, row int, vals []any) int {
	for i, v := range vals {
		if c := cols[i].CompareValue(row, v); c != 0 {
			return c
		}
	}
	return 0
}

// Lookup returns the underlying row indexes whose key columns match
// the given values, using binary search over the key-sorted rows.
// The values must bind a prefix of the key tuple: the first value
// binds the first key column, and so on. Supplying more values than
// key columns, or none, is a KeyError, as is calling Lookup with no
// key set. The policy determines the treatment of an empty match set;
// see [MatchPolicy].
func (dt *Table) Lookup(policy MatchPolicy, vals ...any) ([]int, error) {
	key := dt.Columns.Key
	if len(key) == 0 {
		return nil, errors.Key("table.Table.Lookup: no key set: use SetKey first")
	}
	if len(vals) == 0 {
		return nil, errors.Key("table.Table.Lookup: no key values given")
	}
	if len(vals) > len(key) {
		return nil, errors.Key("table.Table.Lookup: %d values given for a %d-column key", len(vals), len(key))
	}
	cols := make([]column.Column, len(vals))
	for i := range vals {
		cols[i] = dt.Column(key[i])
	}
	n := dt.Columns.Rows
	lo := sort.Search(n, func(r int) bool {
		return dt.compareKeyPrefix(cols, r, vals) >= 0
	})
	hi := sort.Search(n, func(r int) bool {
		return dt.compareKeyPrefix(cols, r, vals) > 0
	})
	switch {
	case lo >= hi:
		switch policy {
		case ErrorIfNone:
			return nil, errors.Key("table.Table.Lookup: no rows match key values %v", vals)
		case NullIfNone:
			return []int{NoMatchRow}, nil
		}
		return nil, nil
	case policy == FirstMatch:
		return []int{lo}, nil
	}
	rows := make([]int, hi-lo)
	for i := range rows {
		rows[i] = lo + i
	}
	return rows, nil
}

// LookupNamed is a version of [Table.Lookup] taking the key values by
// column name. The named columns must form a prefix of the key:
// supplying a later key column while skipping an earlier one is a
// KeyError, since the sorted index cannot bind trailing components
// alone.
func (dt *Table) LookupNamed(policy MatchPolicy, vals map[string]any) ([]int, error) {
	key := dt.Columns.Key
	if len(key) == 0 {
		return nil, errors.Key("table.Table.LookupNamed: no key set: use SetKey first")
	}
	np := 0
	for _, nm := range key {
		if _, ok := vals[nm]; !ok {
			break
		}
		np++
	}
	if np != len(vals) {
		return nil, errors.Key("table.Table.LookupNamed: columns %v do not form a prefix of key %v", mapKeys(vals), key)
	}
	ordered := make([]any, np)
	for i := 0; i < np; i++ {
		ordered[i] = vals[key[i]]
	}
	return dt.Lookup(policy, ordered...)
}

func mapKeys(m map[string]any) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}
