// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package join

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/kframe/kframe/base/errors"
	"github.com/kframe/kframe/table"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newIncidents builds 10 users x 2 incident dates each, keyed on uid.
func newIncidents(t *testing.T) *table.Table {
	dt := table.New("incident").SetNumRows(20)
	dt.AddStringColumn("uid")
	dt.AddTimeColumn("incident_date")
	dt.AddFloat64Column("severity")
	for u := 0; u < 10; u++ {
		for d := 0; d < 2; d++ {
			i := u*2 + d
			dt.SetString("uid", i, fmt.Sprintf("u%02d", u))
			dt.SetTime("incident_date", i, date(2018, 1, 10+10*d))
			dt.SetFloat("severity", i, float64(i))
		}
	}
	assert.NoError(t, dt.SetKey("uid"))
	return dt
}

// newDemo builds one demographics row per user, keyed on uid.
func newDemo(t *testing.T) *table.Table {
	dt := table.New("demo").SetNumRows(10)
	dt.AddStringColumn("uid")
	dt.AddIntColumn("age")
	for u := 0; u < 10; u++ {
		dt.SetString("uid", u, fmt.Sprintf("u%02d", u))
		dt.SetInt("age", u, 20+u)
	}
	assert.NoError(t, dt.SetKey("uid"))
	return dt
}

func TestMergeOn(t *testing.T) {
	incident := newIncidents(t)
	demo := newDemo(t)

	mg, err := MergeOn(demo, incident, nil)
	assert.NoError(t, err)
	assert.Equal(t, 20, mg.NumRows())
	assert.Equal(t, []string{"uid", "incident_date", "severity", "age"}, mg.ColumnNames())

	// demo columns duplicated across each user's incidents
	for i := 0; i < 20; i++ {
		uid := mg.StringValue("uid", i)
		u, err := strconv.Atoi(uid[1:])
		assert.NoError(t, err)
		assert.Equal(t, 20+u, mg.Int("age", i), "row %d", i)
	}
}

func TestMergeOnNoMatch(t *testing.T) {
	incident := newIncidents(t)
	demo := newDemo(t)
	// remove one user from demo
	demo.Filter(func(dt *table.Table, row int) bool {
		return dt.Column("uid").StringValue(row) != "u03"
	})
	demo = demo.Compact()
	assert.NoError(t, demo.SetKey("uid"))

	mg, err := MergeOn(demo, incident, nil)
	assert.NoError(t, err)
	assert.Equal(t, 20, mg.NumRows())
	nulls := 0
	for i := 0; i < 20; i++ {
		if mg.IsNull("age", i) {
			nulls++
			assert.Equal(t, "u03", mg.StringValue("uid", i))
		}
	}
	assert.Equal(t, 2, nulls)

	mg, err = MergeOn(demo, incident, &MergeOptions{NoMatch: Drop})
	assert.NoError(t, err)
	assert.Equal(t, 18, mg.NumRows())
}

func TestMergeOnCartesianGuard(t *testing.T) {
	incident := newIncidents(t)
	demo := newDemo(t)

	// incident has 2 rows per uid, so merging incidents onto demo trips
	// the default multiplicity guard
	_, err := MergeOn(incident, demo, nil)
	var cerr *errors.CartesianError
	assert.True(t, errors.As(err, &cerr))

	mg, err := MergeOn(incident, demo, &MergeOptions{AllowCartesian: true})
	assert.NoError(t, err)
	assert.Equal(t, 20, mg.NumRows())

	mg, err = MergeOn(incident, demo, &MergeOptions{MaxMultiplicity: 2})
	assert.NoError(t, err)
	assert.Equal(t, 20, mg.NumRows())
}

func TestMergeOnKeyRequired(t *testing.T) {
	incident := newIncidents(t)
	demo := newDemo(t)
	var kerr *errors.KeyError

	unkeyed := demo.Clone()
	unkeyed.ClearKey()
	_, err := MergeOn(unkeyed, incident, nil)
	assert.True(t, errors.As(err, &kerr))

	unkeyedRight := incident.Clone()
	unkeyedRight.ClearKey()
	_, err = MergeOn(demo, unkeyedRight, nil)
	assert.True(t, errors.As(err, &kerr))
}

func TestMergeOnUnboundKeyColumns(t *testing.T) {
	incident := newIncidents(t)
	demo := newDemo(t)
	// left keyed on (uid, incident_date); the join binds only uid, so
	// incident_date must come through as an ordinary left column
	assert.NoError(t, incident.SetKey("uid", "incident_date"))

	mg, err := MergeOn(incident, demo, &MergeOptions{AllowCartesian: true})
	assert.NoError(t, err)
	assert.Equal(t, 20, mg.NumRows())
	assert.Contains(t, mg.ColumnNames(), "incident_date")
	for i := 0; i < 20; i++ {
		assert.False(t, mg.IsNull("incident_date", i), "row %d", i)
	}
}

func TestMergeOnCollision(t *testing.T) {
	incident := newIncidents(t)
	demo := newDemo(t)
	demo.AddFloat64Column("severity")
	for u := 0; u < 10; u++ {
		demo.SetFloat("severity", u, -1)
	}

	mg, err := MergeOn(demo, incident, nil)
	assert.NoError(t, err)
	assert.Contains(t, mg.ColumnNames(), "left.severity")
	assert.Equal(t, -1.0, mg.Float("left.severity", 0))
}

// newEvents builds the event history used by the nearest-prior tests.
func newEvents(t *testing.T, dates map[string][]time.Time) *table.Table {
	n := 0
	for _, ds := range dates {
		n += len(ds)
	}
	dt := table.New("events").SetNumRows(n)
	dt.AddStringColumn("uid")
	dt.AddTimeColumn("event_date")
	dt.AddStringColumn("what")
	i := 0
	for uid, ds := range dates {
		for _, d := range ds {
			dt.SetString("uid", i, uid)
			dt.SetTime("event_date", i, d)
			dt.SetString("what", i, d.Format(time.DateOnly))
			i++
		}
	}
	assert.NoError(t, dt.SetKey("uid"))
	return dt
}

func TestNearestPriorMatch(t *testing.T) {
	anchor := table.New("incident").SetNumRows(1)
	anchor.AddStringColumn("uid")
	anchor.AddTimeColumn("incident_date")
	anchor.SetString("uid", 0, "u1")
	anchor.SetTime("incident_date", 0, date(2018, 1, 20))
	assert.NoError(t, anchor.SetKey("uid"))

	events := newEvents(t, map[string][]time.Time{
		"u1": {date(2018, 1, 1), date(2018, 1, 15), date(2018, 2, 1)},
	})

	res, err := NearestPriorMatch(anchor, events, "incident_date", "event_date", 30)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.NumRows())
	assert.Equal(t, "2018-01-15", res.StringValue("what", 0))
}

func TestNearestPriorMatchKeyedEvents(t *testing.T) {
	anchor := table.New("incident").SetNumRows(1)
	anchor.AddStringColumn("uid")
	anchor.AddTimeColumn("incident_date")
	anchor.SetString("uid", 0, "u1")
	anchor.SetTime("incident_date", 0, date(2018, 1, 20))
	assert.NoError(t, anchor.SetKey("uid"))

	// the event history keyed on (uid, event_date), the natural key
	events := newEvents(t, map[string][]time.Time{
		"u1": {date(2018, 1, 1), date(2018, 1, 15), date(2018, 2, 1)},
	})
	assert.NoError(t, events.SetKey("uid", "event_date"))

	res, err := NearestPriorMatch(anchor, events, "incident_date", "event_date", 30)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.NumRows())
	assert.Equal(t, "2018-01-15", res.StringValue("what", 0))
}

func TestNearestPriorMatchOlderOnly(t *testing.T) {
	anchor := table.New().SetNumRows(1)
	anchor.AddStringColumn("uid")
	anchor.AddTimeColumn("incident_date")
	anchor.SetString("uid", 0, "u1")
	anchor.SetTime("incident_date", 0, date(2018, 1, 20))
	assert.NoError(t, anchor.SetKey("uid"))

	// only event is 19 days prior: picked
	events := newEvents(t, map[string][]time.Time{
		"u1": {date(2018, 1, 1)},
	})
	res, err := NearestPriorMatch(anchor, events, "incident_date", "event_date", 30)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.NumRows())
	assert.Equal(t, "2018-01-01", res.StringValue("what", 0))

	// only event is more than 30 days prior: no row
	events = newEvents(t, map[string][]time.Time{
		"u1": {date(2017, 11, 1)},
	})
	res, err = NearestPriorMatch(anchor, events, "incident_date", "event_date", 30)
	assert.NoError(t, err)
	assert.Equal(t, 0, res.NumRows())
}

func TestNearestPriorMatchPerPair(t *testing.T) {
	anchor := table.New().SetNumRows(2)
	anchor.AddStringColumn("uid")
	anchor.AddTimeColumn("incident_date")
	for i, d := range []time.Time{date(2018, 1, 10), date(2018, 1, 20)} {
		anchor.SetString("uid", i, "u1")
		anchor.SetTime("incident_date", i, d)
	}
	assert.NoError(t, anchor.SetKey("uid"))

	events := newEvents(t, map[string][]time.Time{
		"u1": {date(2018, 1, 5), date(2018, 1, 15)},
	})

	// one row per (uid, incident date) pair, each with its own nearest event
	res, err := NearestPriorMatch(anchor, events, "incident_date", "event_date", 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.NumRows())
	assert.Equal(t, "2018-01-05", res.StringValue("what", 0))
	assert.Equal(t, "2018-01-15", res.StringValue("what", 1))
}

func TestNearestPriorMatchErrors(t *testing.T) {
	anchor := newIncidents(t)
	events := newEvents(t, map[string][]time.Time{"u00": {date(2018, 1, 1)}})

	_, err := NearestPriorMatch(anchor, events, "nope", "event_date", 0)
	var serr *errors.SchemaError
	assert.True(t, errors.As(err, &serr))

	_, err = NearestPriorMatch(anchor, events, "uid", "event_date", 0)
	var terr *errors.TypeError
	assert.True(t, errors.As(err, &terr))
}
