// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package join

import (
	"strings"

	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/column"
	"github.com/kframe/kframe/table"
)

const secondsPerDay = 86400

// NearestPriorMatch attaches to each anchor row the single event row with
// the latest event date at or before the anchor date, among events whose
// key matches the anchor's key. Both tables join on their current keys,
// as in MergeOn. withinDays > 0 additionally requires the event to lie
// within that many days before the anchor; anchor rows with no qualifying
// event produce no output row. Exactly one output row is kept per
// (key tuple, anchor date) pair, the first qualifying match on ties.
//
// The operation is a composition: a cartesian-allowed merge of events
// onto anchors, a prior-date filter, a per-pair arg-min on the date gap,
// then a compaction of the surviving rows.
func NearestPriorMatch(anchor, events *table.Table, anchorDate, eventDate string, withinDays int) (*table.Table, error) {
	adCol, err := anchor.ColumnTry(anchorDate)
	if err != nil {
		return nil, err
	}
	edCol, err := events.ColumnTry(eventDate)
	if err != nil {
		return nil, err
	}
	if adCol.IsString() || edCol.IsString() {
		return nil, errors.Type("join.NearestPriorMatch: date columns must be ordered (time or numeric), not string")
	}
	if anchorDate == eventDate {
		return nil, errors.Schema("join.NearestPriorMatch: anchor and event date columns share the name %q", anchorDate)
	}

	// every matching event per anchor row; unmatched anchors drop out here
	merged, err := MergeOn(events, anchor, &MergeOptions{
		NoMatch:        Drop,
		AllowCartesian: true,
	})
	if err != nil {
		return nil, err
	}
	// the event date column may have been renamed on collision
	edName := eventDate
	if merged.Column(edName) == nil || anchor.Column(eventDate) != nil {
		edName = "left." + eventDate
	}
	mad := merged.Column(anchorDate)
	med := merged.Column(edName)
	if med == nil {
		return nil, errors.Schema("join.NearestPriorMatch: event date column %q is consumed by the join key", eventDate)
	}

	keyCols := make([]column.Column, len(anchor.Key()))
	for i, nm := range anchor.Key() {
		keyCols[i] = merged.Column(nm)
	}

	// arg-min date gap per (key, anchor date) pair, first appearance wins ties
	type best struct {
		order int // position in the output
		row   int
		gap   float64
	}
	bests := map[string]*best{}
	var keyOrder []string
	for row := 0; row < merged.NumRows(); row++ {
		if mad.IsNull(row) || med.IsNull(row) {
			continue
		}
		gap := mad.Float(row) - med.Float(row)
		if gap < 0 {
			continue // event after the anchor
		}
		if withinDays > 0 && gap > float64(withinDays)*secondsPerDay {
			continue
		}
		key := pairKey(keyCols, row, mad)
		bst, ok := bests[key]
		if !ok {
			bests[key] = &best{order: len(keyOrder), row: row, gap: gap}
			keyOrder = append(keyOrder, key)
			continue
		}
		if gap < bst.gap {
			bst.row, bst.gap = row, gap
		}
	}

	keep := make([]int, len(keyOrder))
	for i, key := range keyOrder {
		keep[i] = bests[key].row
	}
	merged.Indexes = keep
	return merged.Compact(), nil
}

// pairKey builds the dedupe key from the join key values plus the
// anchor date at the given row.
func pairKey(keyCols []column.Column, row int, adCol column.Column) string {
	var sb strings.Builder
	for _, cl := range keyCols {
		sb.WriteString(cl.StringValue(row))
		sb.WriteByte(0)
	}
	sb.WriteString(adCol.StringValue(row))
	return sb.String()
}
