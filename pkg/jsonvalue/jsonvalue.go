// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonvalue defines an immutable tagged JSON value.
//
// Unlike the map[string]any representation produced by encoding/json,
// a Value keeps object members in insertion order and distinguishes
// integers from floating-point numbers. Schema records borrow Values
// for keywords such as const and enum, so a decoded document must
// outlive any schema context that was parsed from it.
package jsonvalue

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the runtime kind of a Value.
type Kind int

const (
	Invalid Kind = iota
	Null
	Bool
	Int
	Float
	String
	Array
	Object
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// Member is a single object member.
type Member struct {
	Key   string
	Value Value
}

// object holds ordered members plus a key index for O(1) lookup.
type object struct {
	members []Member
	index   map[string]int
}

// Value is one JSON value. The zero Value has kind Invalid.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  *object
}

// MakeNull returns the JSON null value.
func MakeNull() Value {
	return Value{kind: Null}
}

// MakeBool returns a JSON boolean value.
func MakeBool(b bool) Value {
	return Value{kind: Bool, b: b}
}

// MakeInt returns a JSON integer value.
func MakeInt(i int64) Value {
	return Value{kind: Int, i: i}
}

// MakeFloat returns a JSON floating-point value.
func MakeFloat(f float64) Value {
	return Value{kind: Float, f: f}
}

// MakeString returns a JSON string value.
func MakeString(s string) Value {
	return Value{kind: String, s: s}
}

// MakeArray returns a JSON array value holding elems.
func MakeArray(elems []Value) Value {
	return Value{kind: Array, arr: elems}
}

// MakeObject returns a JSON object value holding members,
// in order. A duplicated key keeps the last member's value
// for lookup while preserving the member list as given.
func MakeObject(members []Member) Value {
	idx := make(map[string]int, len(members))
	for i, m := range members {
		idx[m.Key] = i
	}
	return Value{kind: Object, obj: &object{members: members, index: idx}}
}

// IsValid reports whether v holds a decoded JSON value.
func (v Value) IsValid() bool {
	return v.kind != Invalid
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload. It is false for non-booleans.
func (v Value) Bool() bool {
	return v.b
}

// Int returns the integer payload. It is zero for non-integers.
func (v Value) Int() int64 {
	return v.i
}

// Float returns the floating-point payload. It is zero for non-floats.
func (v Value) Float() float64 {
	return v.f
}

// Number returns the numeric reading of an Int or Float value.
func (v Value) Number() float64 {
	if v.kind == Int {
		return float64(v.i)
	}
	return v.f
}

// IsIntegral reports whether v is an Int, or a Float whose
// fractional part is exactly zero.
func (v Value) IsIntegral() bool {
	switch v.kind {
	case Int:
		return true
	case Float:
		return v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0)
	default:
		return false
	}
}

// Str returns the string payload. It is empty for non-strings.
func (v Value) Str() string {
	return v.s
}

// Len returns the number of elements of an array or members of
// an object, and zero for any other kind.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.obj.members)
	default:
		return 0
	}
}

// Elem returns element i of an array value.
func (v Value) Elem(i int) Value {
	return v.arr[i]
}

// Elems returns the elements of an array value, or nil.
func (v Value) Elems() []Value {
	return v.arr
}

// Member returns the value stored under key in an object value.
// The bool result reports whether the key is present.
func (v Value) Member(key string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	i, ok := v.obj.index[key]
	if !ok {
		return Value{}, false
	}
	return v.obj.members[i].Value, true
}

// HasMember reports whether an object value contains key.
func (v Value) HasMember(key string) bool {
	if v.kind != Object {
		return false
	}
	_, ok := v.obj.index[key]
	return ok
}

// Members returns the members of an object value in insertion
// order, or nil for any other kind.
func (v Value) Members() []Member {
	if v.kind != Object {
		return nil
	}
	return v.obj.members
}

// String returns a compact JSON rendering of v.
// Invalid values render as "<invalid>".
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(v.b))
	case Int:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case Float:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case String:
		sb.WriteString(strconv.Quote(v.s))
	case Array:
		sb.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.write(sb)
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, m := range v.obj.members {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(m.Key))
			sb.WriteByte(':')
			m.Value.write(sb)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("<invalid>")
	}
}
