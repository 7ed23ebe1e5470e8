// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"testing"
)

func TestDecodeKinds(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
	}{
		{`null`, Null},
		{`true`, Bool},
		{`false`, Bool},
		{`42`, Int},
		{`-7`, Int},
		{`1.5`, Float},
		{`1.0`, Float},
		{`2e3`, Float},
		{`"foo"`, String},
		{`[]`, Array},
		{`[1,2]`, Array},
		{`{}`, Object},
		{`{"a":1}`, Object},
	}
	for _, test := range tests {
		v, err := DecodeString(test.text)
		if err != nil {
			t.Errorf("DecodeString(%q): %v", test.text, err)
			continue
		}
		if v.Kind() != test.kind {
			t.Errorf("DecodeString(%q).Kind() = %v, want %v", test.text, v.Kind(), test.kind)
		}
	}
}

func TestDecodeIntFloatDistinction(t *testing.T) {
	v, err := DecodeString(`[1, 1.0, 1e0]`)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Elem(0).Kind(); got != Int {
		t.Errorf("kind of 1 = %v, want Int", got)
	}
	if got := v.Elem(1).Kind(); got != Float {
		t.Errorf("kind of 1.0 = %v, want Float", got)
	}
	if got := v.Elem(2).Kind(); got != Float {
		t.Errorf("kind of 1e0 = %v, want Float", got)
	}
	if got := v.Elem(0).Int(); got != 1 {
		t.Errorf("Int() = %d, want 1", got)
	}
	if got := v.Elem(1).Float(); got != 1.0 {
		t.Errorf("Float() = %v, want 1", got)
	}
}

func TestDecodeMemberOrder(t *testing.T) {
	v, err := DecodeString(`{"z":1,"a":2,"m":3}`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	members := v.Members()
	if len(members) != len(want) {
		t.Fatalf("got %d members, want %d", len(members), len(want))
	}
	for i, m := range members {
		if m.Key != want[i] {
			t.Errorf("member %d key = %q, want %q", i, m.Key, want[i])
		}
	}

	av, ok := v.Member("a")
	if !ok || av.Int() != 2 {
		t.Errorf(`Member("a") = %v, %t, want 2, true`, av, ok)
	}
	if _, ok := v.Member("missing"); ok {
		t.Error(`Member("missing") reported present`)
	}
}

func TestDecodeNested(t *testing.T) {
	v, err := DecodeString(`{"a":{"b":[1,{"c":null}]}}`)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := v.Member("a")
	b, _ := a.Member("b")
	if b.Kind() != Array || b.Len() != 2 {
		t.Fatalf("b = %v, want a two-element array", b)
	}
	c, ok := b.Elem(1).Member("c")
	if !ok || c.Kind() != Null {
		t.Errorf("c = %v, %t, want null, true", c, ok)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, text := range []string{``, `{`, `[1,]`, `1 2`, `{"a"}`, `tru`} {
		if _, err := DecodeString(text); err == nil {
			t.Errorf("DecodeString(%q) succeeded, want error", text)
		}
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`{"a": [1, 2.5, "x"], "b": null}`, `{"a":[1,2.5,"x"],"b":null}`},
		{`true`, `true`},
	}
	for _, test := range tests {
		v, err := DecodeString(test.text)
		if err != nil {
			t.Fatal(err)
		}
		if got := v.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{`null`, `null`, true},
		{`null`, `false`, false},
		{`true`, `true`, true},
		{`true`, `false`, false},
		{`"a"`, `"a"`, true},
		{`"a"`, `"b"`, false},
		{`1`, `1`, true},
		{`1`, `2`, false},
		{`1`, `1.0`, true},
		{`1.0`, `1`, true},
		{`1`, `1.5`, false},
		{`1.5`, `1.5`, true},
		{`1`, `"1"`, false},
		{`[1,2]`, `[1,2]`, true},
		{`[1,2]`, `[2,1]`, false},
		{`[1,2]`, `[1]`, false},
		{`{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{`{"a":1}`, `{"a":2}`, false},
		{`{"a":1}`, `{"b":1}`, false},
		{`{"a":[1.0]}`, `{"a":[1]}`, true},
	}
	for _, test := range tests {
		a, err := DecodeString(test.a)
		if err != nil {
			t.Fatal(err)
		}
		b, err := DecodeString(test.b)
		if err != nil {
			t.Fatal(err)
		}
		if got := Equal(a, b); got != test.want {
			t.Errorf("Equal(%s, %s) = %t, want %t", test.a, test.b, got, test.want)
		}
		if got := Equal(b, a); got != test.want {
			t.Errorf("Equal(%s, %s) = %t, want %t", test.b, test.a, got, test.want)
		}
	}
}

func TestEqualReflexive(t *testing.T) {
	samples := []string{
		`null`, `true`, `0`, `-3`, `2.75`, `""`, `"x"`,
		`[]`, `[null,1,[2]]`, `{}`, `{"a":{"b":[1,2,3]}}`,
	}
	for _, text := range samples {
		v, err := DecodeString(text)
		if err != nil {
			t.Fatal(err)
		}
		if !Equal(v, v) {
			t.Errorf("Equal(%s, %s) = false, want true", text, text)
		}
	}
}

func TestEqualTransitive(t *testing.T) {
	// 1, 1.0 and a separately decoded 1 must all compare equal.
	a, _ := DecodeString(`1`)
	b, _ := DecodeString(`1.0`)
	c, _ := DecodeString(`1`)
	if !Equal(a, b) || !Equal(b, c) || !Equal(a, c) {
		t.Error("equality is not transitive across 1, 1.0, 1")
	}
}

func TestIsIntegral(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{`1`, true},
		{`1.0`, true},
		{`-4.0`, true},
		{`1.5`, false},
		{`"1"`, false},
		{`null`, false},
	}
	for _, test := range tests {
		v, err := DecodeString(test.text)
		if err != nil {
			t.Fatal(err)
		}
		if got := v.IsIntegral(); got != test.want {
			t.Errorf("IsIntegral(%s) = %t, want %t", test.text, got, test.want)
		}
	}
}
