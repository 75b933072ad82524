// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reshape implements wide-to-long (Melt) and long-to-wide (Dcast)
// table transformations, preserving row identity through id columns.
package reshape

import (
	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/column"
	"github.com/kframe/kframe/table"
)

// MeltOptions configures the Melt operation.
type MeltOptions struct {
	// DropMissing drops output rows where every measure value is missing.
	DropMissing bool

	// VariableName is the name of the generated position column.
	// Defaults to "variable".
	VariableName string
}

// Melt converts a table from wide to long form. Each measure group is a
// parallel list of source columns producing one output value column named
// by the corresponding entry of names; all groups must have the same
// number of positions and share the one generated position column.
// With a single measure group the position column holds the source column
// names; with multiple groups it holds the 1-based position index.
// Output has view rows x positions rows, stacked position by position,
// minus dropped rows when DropMissing is set.
func Melt(dt *table.Table, ids []string, measures [][]string, names []string, opts *MeltOptions) (*table.Table, error) {
	if opts == nil {
		opts = &MeltOptions{}
	}
	varName := opts.VariableName
	if varName == "" {
		varName = "variable"
	}
	if len(measures) == 0 {
		return nil, errors.Schema("reshape.Melt: no measure groups given")
	}
	if names == nil && len(measures) == 1 {
		names = []string{"value"}
	}
	if len(names) != len(measures) {
		return nil, errors.Schema("reshape.Melt: %d measure groups but %d output names", len(measures), len(names))
	}
	npos := len(measures[0])
	for gi, grp := range measures {
		if len(grp) != npos {
			return nil, errors.Schema("reshape.Melt: measure group %d has %d columns, want %d", gi, len(grp), npos)
		}
	}
	if npos == 0 {
		return nil, errors.Schema("reshape.Melt: empty measure group")
	}
	idCols := make([]column.Column, len(ids))
	for i, nm := range ids {
		cl, err := dt.ColumnTry(nm)
		if err != nil {
			return nil, err
		}
		idCols[i] = cl
	}
	srcCols := make([][]column.Column, len(measures))
	for gi, grp := range measures {
		srcCols[gi] = make([]column.Column, npos)
		for pi, nm := range grp {
			cl, err := dt.ColumnTry(nm)
			if err != nil {
				return nil, err
			}
			srcCols[gi][pi] = cl
		}
	}

	nrows := dt.NumRows()
	out := table.New(dt.Name()).SetNumRows(nrows * npos)
	for i, nm := range ids {
		errors.Log(out.AddColumn(nm, idCols[i].CloneEmpty(nrows*npos)))
	}
	single := len(measures) == 1
	if single {
		out.AddStringColumn(varName)
	} else {
		out.AddIntColumn(varName)
	}
	valCols := make([]column.Column, len(measures))
	for gi, nm := range names {
		valCols[gi] = srcCols[gi][0].CloneEmpty(nrows * npos)
		if err := out.AddColumn(nm, valCols[gi]); err != nil {
			return nil, err
		}
	}

	orow := 0
	for pi := 0; pi < npos; pi++ {
		for vi := 0; vi < nrows; vi++ {
			row := dt.RowIndex(vi)
			if opts.DropMissing {
				any := false
				for gi := range measures {
					if !srcCols[gi][pi].IsNull(row) {
						any = true
						break
					}
				}
				if !any {
					continue
				}
			}
			for i := range ids {
				out.Column(ids[i]).CopyRowFrom(idCols[i], orow, row)
			}
			if single {
				out.SetString(varName, orow, measures[0][pi])
			} else {
				out.SetInt(varName, orow, pi+1)
			}
			for gi := range measures {
				valCols[gi].CopyRowFrom(srcCols[gi][pi], orow, row)
			}
			orow++
		}
	}
	if orow < nrows*npos {
		out.SetNumRows(orow)
	}
	return out, nil
}
