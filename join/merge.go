// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package join implements key-driven table combination: MergeOn performs
// a right-outer merge over the two tables' current keys with cartesian
// expansion control, and NearestPriorMatch composes it into an as-of
// style date join.
package join

import (
	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/base/logx"
	"github.com/kframe/kframe/column"
	"github.com/kframe/kframe/table"
)

// NoMatchPolicy selects what MergeOn does with right rows that match
// nothing on the left.
type NoMatchPolicy int32

const (
	// NullFill keeps unmatched right rows, with the left columns missing.
	NullFill NoMatchPolicy = iota

	// Drop removes unmatched right rows from the output.
	Drop
)

// MergeOptions configures the MergeOn operation.
type MergeOptions struct {
	// NoMatch selects the unmatched-right-row behavior, NullFill
	// by default.
	NoMatch NoMatchPolicy

	// AllowCartesian permits one right key tuple to match more than
	// MaxMultiplicity left rows, expanding the cross product.
	AllowCartesian bool

	// MaxMultiplicity is the per-tuple match limit enforced when
	// AllowCartesian is unset. Defaults to 1.
	MaxMultiplicity int
}

// MergeOn joins the two tables on their current keys, right-outer: every
// right view row is preserved at least once, with the matching left row's
// non-key columns attached. The right key values are looked up in the
// left key, so the right key must supply a prefix of the left key.
// Left columns beyond the bound key prefix are carried into the output;
// any whose names collide with a right column come out prefixed with
// "left.". Both tables must be keyed, else a KeyError.
func MergeOn(left, right *table.Table, opts *MergeOptions) (*table.Table, error) {
	if opts == nil {
		opts = &MergeOptions{}
	}
	maxMult := opts.MaxMultiplicity
	if maxMult <= 0 {
		maxMult = 1
	}
	if !left.HasKey() {
		return nil, errors.Key("join.MergeOn: left table has no key")
	}
	if !right.HasKey() {
		return nil, errors.Key("join.MergeOn: right table has no key")
	}
	rightKey := right.Key()
	keyCols := make([]column.Column, len(rightKey))
	for i, nm := range rightKey {
		keyCols[i] = right.Column(nm)
	}

	// pass 1: resolve matches per right view row
	type pair struct{ rightRow, leftRow int }
	var pairs []pair
	vals := make([]any, len(rightKey))
	for vi := 0; vi < right.NumRows(); vi++ {
		row := right.RowIndex(vi)
		for i, cl := range keyCols {
			vals[i] = cl.Value(row)
		}
		rows, err := left.Lookup(table.AllMatches, vals...)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			if opts.NoMatch == NullFill {
				pairs = append(pairs, pair{row, table.NoMatchRow})
			}
			continue
		}
		if len(rows) > maxMult && !opts.AllowCartesian {
			logx.Warn().Str("table", left.Name()).Int("matches", len(rows)).
				Int("max", maxMult).Msg("merge multiplicity exceeded")
			return nil, errors.Cartesian("join.MergeOn: right key tuple matches %d left rows, max %d (set AllowCartesian to expand)", len(rows), maxMult)
		}
		for _, lrow := range rows {
			pairs = append(pairs, pair{row, lrow})
		}
	}

	// pass 2: assemble output, right columns first
	out := table.New(right.Name()).SetNumRows(len(pairs))
	for ci, rcl := range right.Columns.Values {
		nm := right.ColumnName(ci)
		ocl := rcl.CloneEmpty(len(pairs))
		for oi, pr := range pairs {
			ocl.CopyRowFrom(rcl, oi, pr.rightRow)
		}
		if err := out.AddColumn(nm, ocl); err != nil {
			return nil, err
		}
	}
	// only the key columns bound by the join are redundant with the
	// right side; trailing left key components carry over like any
	// other left column
	bound := min(len(rightKey), len(left.Key()))
	leftKeySet := map[string]bool{}
	for _, nm := range left.Key()[:bound] {
		leftKeySet[nm] = true
	}
	for ci, lcl := range left.Columns.Values {
		nm := left.ColumnName(ci)
		if leftKeySet[nm] {
			continue
		}
		if out.Column(nm) != nil {
			nm = "left." + nm
		}
		ocl := lcl.CloneEmpty(len(pairs))
		for oi, pr := range pairs {
			if pr.leftRow != table.NoMatchRow {
				ocl.CopyRowFrom(lcl, oi, pr.leftRow)
			}
		}
		if err := out.AddColumn(nm, ocl); err != nil {
			return nil, err
		}
	}
	return out, nil
}
