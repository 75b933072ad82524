// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "fmt"

// SchemaError reports a structural problem with a table: a column length
// that does not match the table row count, a duplicate column name, or a
// reference to a column that does not exist.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string { return e.Msg }

// Schema returns a new [SchemaError] with the given formatted message.
func Schema(format string, args ...any) error {
	return &SchemaError{Msg: fmt.Sprintf(format, args...)}
}

// KeyError reports a malformed key operation: a lookup that does not
// supply a prefix of the key columns, or a keyed operation on a table
// with no key set.
type KeyError struct {
	Msg string
}

func (e *KeyError) Error() string { return e.Msg }

// Key returns a new [KeyError] with the given formatted message.
func Key(format string, args ...any) error {
	return &KeyError{Msg: fmt.Sprintf(format, args...)}
}

// CartesianError reports a join whose row multiplicity exceeds the
// allowed threshold without an explicit opt-in.
type CartesianError struct {
	Msg string
}

func (e *CartesianError) Error() string { return e.Msg }

// Cartesian returns a new [CartesianError] with the given formatted message.
func Cartesian(format string, args ...any) error {
	return &CartesianError{Msg: fmt.Sprintf(format, args...)}
}

// TypeError reports incompatible types in an aggregation or comparison,
// such as computing the mean of a string column.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return e.Msg }

// Type returns a new [TypeError] with the given formatted message.
func Type(format string, args ...any) error {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}
