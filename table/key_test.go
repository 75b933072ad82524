// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"github.com/kframe/kframe/base/errors"
	"github.com/stretchr/testify/assert"
)

func newKeyTable() *Table {
	dt := New("keyed").SetNumRows(6)
	dt.AddStringColumn("Group")
	dt.AddIntColumn("Item")
	dt.AddFloat64Column("Value")
	groups := []string{"B", "A", "B", "A", "C", "A"}
	items := []int{2, 3, 1, 1, 1, 2}
	for i := 0; i < 6; i++ {
		dt.SetString("Group", i, groups[i])
		dt.SetInt("Item", i, items[i])
		dt.SetFloat("Value", i, float64(i))
	}
	return dt
}

func TestSetKeySorts(t *testing.T) {
	dt := newKeyTable()
	assert.NoError(t, dt.SetKey("Group", "Item"))
	assert.Equal(t, []string{"Group", "Item"}, dt.Key())

	// data is physically reordered by (Group, Item)
	wantGroups := []string{"A", "A", "A", "B", "B", "C"}
	wantItems := []int{1, 2, 3, 1, 2, 1}
	wantValues := []float64{3, 5, 1, 2, 0, 4}
	for i := 0; i < 6; i++ {
		assert.Equal(t, wantGroups[i], dt.StringValue("Group", i), "row %d", i)
		assert.Equal(t, wantItems[i], dt.Int("Item", i), "row %d", i)
		assert.Equal(t, wantValues[i], dt.Float("Value", i), "row %d", i)
	}
	assert.Nil(t, dt.Indexes)
}

func TestSetKeyAliasSeesOrder(t *testing.T) {
	dt := newKeyTable()
	alias := NewView(dt)
	sc := dt.ShallowCopy()
	assert.NoError(t, dt.SetKey("Group", "Item"))

	// both alias and shallow copy share buffers, so they see the reorder
	assert.Equal(t, "A", alias.StringValue("Group", 0))
	assert.Equal(t, "A", sc.StringValue("Group", 0))
}

func TestSetKeyNullsLast(t *testing.T) {
	dt := New().SetNumRows(3)
	dt.AddStringColumn("K")
	dt.SetString("K", 0, "b")
	dt.SetNull("K", 1)
	dt.SetString("K", 2, "a")
	assert.NoError(t, dt.SetKey("K"))
	assert.Equal(t, "a", dt.StringValue("K", 0))
	assert.Equal(t, "b", dt.StringValue("K", 1))
	assert.True(t, dt.IsNull("K", 2))
}

func TestSetKeyUnknownColumn(t *testing.T) {
	dt := newKeyTable()
	err := dt.SetKey("Group", "Nope")
	var serr *errors.SchemaError
	assert.True(t, errors.As(err, &serr))
	// validate before mutate: nothing changed
	assert.False(t, dt.HasKey())
	assert.Equal(t, "B", dt.StringValue("Group", 0))
}

func TestLookupFull(t *testing.T) {
	dt := newKeyTable()
	assert.NoError(t, dt.SetKey("Group", "Item"))

	rows, err := dt.Lookup(AllMatches, "B", 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{4}, rows)
	assert.Equal(t, 0.0, dt.Float("Value", rows[0]))
}

func TestLookupPrefix(t *testing.T) {
	dt := newKeyTable()
	assert.NoError(t, dt.SetKey("Group", "Item"))

	rows, err := dt.Lookup(AllMatches, "A")
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, rows)

	first, err := dt.Lookup(FirstMatch, "A")
	assert.NoError(t, err)
	assert.Equal(t, []int{0}, first)
}

func TestLookupNoMatch(t *testing.T) {
	dt := newKeyTable()
	assert.NoError(t, dt.SetKey("Group", "Item"))

	rows, err := dt.Lookup(AllMatches, "Z")
	assert.NoError(t, err)
	assert.Empty(t, rows)

	_, err = dt.Lookup(ErrorIfNone, "Z")
	var kerr *errors.KeyError
	assert.True(t, errors.As(err, &kerr))

	rows, err = dt.Lookup(NullIfNone, "Z")
	assert.NoError(t, err)
	assert.Equal(t, []int{NoMatchRow}, rows)
}

func TestLookupErrors(t *testing.T) {
	dt := newKeyTable()
	var kerr *errors.KeyError

	// no key set
	_, err := dt.Lookup(AllMatches, "A")
	assert.True(t, errors.As(err, &kerr))

	assert.NoError(t, dt.SetKey("Group", "Item"))

	// too many values
	_, err = dt.Lookup(AllMatches, "A", 1, 2)
	assert.True(t, errors.As(err, &kerr))

	// no values
	_, err = dt.Lookup(AllMatches)
	assert.True(t, errors.As(err, &kerr))
}

func TestLookupNamed(t *testing.T) {
	dt := newKeyTable()
	assert.NoError(t, dt.SetKey("Group", "Item"))

	rows, err := dt.LookupNamed(AllMatches, map[string]any{"Group": "A", "Item": 2})
	assert.NoError(t, err)
	assert.Equal(t, []int{1}, rows)

	rows, err = dt.LookupNamed(AllMatches, map[string]any{"Group": "B"})
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 4}, rows)

	// a trailing key component alone cannot bind
	var kerr *errors.KeyError
	_, err = dt.LookupNamed(AllMatches, map[string]any{"Item": 1})
	assert.True(t, errors.As(err, &kerr))

	// nor a non-key column
	_, err = dt.LookupNamed(AllMatches, map[string]any{"Value": 3.0})
	assert.True(t, errors.As(err, &kerr))
}
