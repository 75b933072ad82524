// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"time"
)

// compareNulls handles the missing cases of a two-row comparison:
// missing values sort after all present values. The second return is
// true when the comparison is decided by missingness alone.
func compareNulls(inull, jnull bool) (int, bool) {
	switch {
	case inull && jnull:
		return 0, true
	case inull:
		return 1, true
	case jnull:
		return -1, true
	}
	return 0, false
}

// ToFloat converts the supported numeric query value types to float64.
func ToFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// ToTime converts the supported time query value types to time.Time.
func ToTime(val any) (time.Time, bool) {
	switch v := val.(type) {
	case time.Time:
		return v, true
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.DateOnly, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StringOf renders an arbitrary query value as a string for the
// fallback string comparison.
func StringOf(val any) string {
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}
