// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist implements an ordered list (slice) of items with a
// map from a key (e.g., names) to indexes, to support fast lookup by name.
// It is the backing structure for the named column lists in kframe tables,
// where both a stable column order and O(1) access by column name are needed.
package keylist

import (
	"fmt"
	"slices"
)

// List implements an ordered list (slice) of Values, with a map from
// a key (e.g., names) to indexes, to support fast lookup by name.
// The zero value is ready to use.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in the same order as [List.Values].
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List]. The zero value is usable without
// initialization, so this is just a standard convenience method.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// rebuildIndexes regenerates the key-to-index map from Keys.
func (kl *List[K, V]) rebuildIndexes() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
}

// Reset removes all existing elements from the list.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = nil
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// Set sets the given key to the given value, adding to the end of the
// list if not already present, and otherwise replacing the existing value.
// This is the same semantics as a Go map. See [List.Add] for a version
// that only adds and returns an error if the key already exists.
func (kl *List[K, V]) Set(key K, val V) {
	kl.initIndexes()
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.indexes[key] = len(kl.Values)
	kl.Keys = append(kl.Keys, key)
	kl.Values = append(kl.Values, val)
}

// Add adds an item to the list with the given key, returning an error
// if the key is already on the list. See [List.Set] for a version that
// automatically replaces.
func (kl *List[K, V]) Add(key K, val V) error {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Keys = append(kl.Keys, key)
	kl.Values = append(kl.Values, val)
	return nil
}

// Insert inserts the given value with the given key at the given index.
// This is relatively slow because it needs to regenerate the index map.
// It returns an error if the key already exists.
func (kl *List[K, V]) Insert(idx int, key K, val V) error {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Insert: key %v is already on the list", key)
	}
	kl.Keys = slices.Insert(kl.Keys, idx, key)
	kl.Values = slices.Insert(kl.Values, idx, val)
	kl.rebuildIndexes()
	return nil
}

// At returns the value corresponding to the given key, with a zero
// value returned for a missing key. See [List.AtTry] for one that
// returns a bool for missing keys. For index-based access, use the
// [List.Values] or [List.Keys] slices directly.
func (kl *List[K, V]) At(key K) V {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx]
	}
	var zv V
	return zv
}

// AtTry returns the value corresponding to the given key, with false
// returned for a missing key, for when the zero value is not diagnostic.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, with -1 for a missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// IndexIsValid returns an error if the given index is out of range.
func (kl *List[K, V]) IndexIsValid(idx int) error {
	if idx < 0 || idx >= len(kl.Values) {
		return fmt.Errorf("keylist.List.IndexIsValid: index %d is out of range of a list of length %d", idx, len(kl.Values))
	}
	return nil
}

// DeleteByIndex deletes item(s) within the index range [i:j].
// This is relatively slow because it needs to regenerate the index map.
func (kl *List[K, V]) DeleteByIndex(i, j int) {
	if j-i <= 0 {
		return
	}
	kl.Keys = slices.Delete(kl.Keys, i, j)
	kl.Values = slices.Delete(kl.Values, i, j)
	kl.rebuildIndexes()
}

// DeleteByKey deletes the item with the given key,
// returning false if it is not found.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx, ok := kl.indexes[key]
	if !ok {
		return false
	}
	kl.DeleteByIndex(idx, idx+1)
	return true
}

// RenameIndex renames the item at the given index to the new key.
func (kl *List[K, V]) RenameIndex(i int, key K) {
	old := kl.Keys[i]
	delete(kl.indexes, old)
	kl.Keys[i] = key
	kl.indexes[key] = i
}

// Copy copies all of the entries from the given list into this list,
// overwriting any existing entries with the same keys while keeping
// the rest. Use [List.Reset] first to get an exact copy.
func (kl *List[K, V]) Copy(from *List[K, V]) {
	for i, k := range from.Keys {
		kl.Set(k, from.Values[i])
	}
}

// String returns a string representation of the list.
func (kl *List[K, V]) String() string {
	sv := "{"
	for i, v := range kl.Values {
		sv += fmt.Sprintf("%v: %v, ", kl.Keys[i], v)
	}
	return sv + "}"
}
