// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import "math"

// Equal reports whether two JSON values are deeply equal.
//
// Null, boolean and string values are equal when they hold the
// same kind and payload. Numbers compare across the Int/Float
// divide: an integer equals a float whose fractional part is
// exactly zero and whose value matches. Arrays are equal
// element-wise; objects are equal when they have the same key
// set and equal values per key, regardless of member order.
func Equal(a, b Value) bool {
	switch a.kind {
	case Null:
		return b.kind == Null
	case Bool:
		return b.kind == Bool && a.b == b.b
	case String:
		return b.kind == String && a.s == b.s
	case Int:
		switch b.kind {
		case Int:
			return a.i == b.i
		case Float:
			return intEqualsFloat(a.i, b.f)
		}
		return false
	case Float:
		switch b.kind {
		case Int:
			return intEqualsFloat(b.i, a.f)
		case Float:
			return a.f == b.f
		}
		return false
	case Array:
		if b.kind != Array || len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if b.kind != Object || len(a.obj.members) != len(b.obj.members) {
			return false
		}
		for _, m := range a.obj.members {
			bv, ok := b.Member(m.Key)
			if !ok || !Equal(m.Value, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// intEqualsFloat reports whether an integer and a float
// denote the same number.
func intEqualsFloat(i int64, f float64) bool {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return false
	}
	return float64(i) == f
}
