// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metadata provides a map of named any elements with generic
// support for type-safe Get and nil-safe Set. Metadata keys often
// function as optional fields in a struct, and therefore a CamelCase
// naming convention is typical. Provides default support for "Name"
// and "Doc" standard keys.
package metadata

import (
	"fmt"
	"maps"
)

// Data is metadata as a map of named any elements with generic support
// for type-safe Get and nil-safe Set. In general it is good practice to
// provide access functions that establish standard key names, to avoid
// issues with typos.
type Data map[string]any

func (md *Data) init() {
	if *md == nil {
		*md = make(map[string]any)
	}
}

// Set sets the given key to the given value, ensuring that
// the map is created if not previously.
func (md *Data) Set(key string, value any) {
	md.init()
	(*md)[key] = value
}

// Get gets the metadata value of the given type for the given key.
// It returns an error if the key is not present or the item is a
// different type.
func Get[T any](md Data, key string) (T, error) {
	var zv T
	x, ok := md[key]
	if !ok {
		return zv, fmt.Errorf("metadata: key %q not found", key)
	}
	v, ok := x.(T)
	if !ok {
		return zv, fmt.Errorf("metadata: key %q has type %T, not the expected %T", key, x, zv)
	}
	return v, nil
}

// Copy does a shallow copy of metadata from the source. Any
// pointer-based values will still point to the same underlying data as
// the source, but the two maps remain distinct. It uses [maps.Copy].
func (md *Data) Copy(src Data) {
	if src == nil {
		return
	}
	md.init()
	maps.Copy(*md, src)
}

// SetName sets the "Name" standard key.
func (md *Data) SetName(name string) {
	md.Set("Name", name)
}

// Name returns the "Name" standard key value (empty if not set).
func (md *Data) Name() string {
	v, _ := Get[string](*md, "Name")
	return v
}

// SetDoc sets the "Doc" standard key.
func (md *Data) SetDoc(doc string) {
	md.Set("Doc", doc)
}

// Doc returns the "Doc" standard key value (empty if not set).
func (md *Data) Doc() string {
	v, _ := Get[string](*md, "Doc")
	return v
}
