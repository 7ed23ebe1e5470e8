// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"errors"
	"testing"
)

func TestFormats(t *testing.T) {
	tests := []struct {
		format string
		value  string
		valid  bool
	}{
		{"date", "2024-02-29", true},
		{"date", "2023-02-29", false},
		{"date", "2024-13-01", false},
		{"date", "2024-1-01", false},
		{"date-time", "2024-06-01T12:30:00Z", true},
		{"date-time", "2024-06-01t12:30:00z", true},
		{"date-time", "2024-06-01T12:30:00.123+02:00", true},
		{"date-time", "2024-06-01 12:30:00Z", false},
		{"date-time", "2024-06-01T25:00:00Z", false},
		{"time", "23:59:60Z", true},
		{"time", "12:30:60Z", false},
		{"time", "12:30:00+01:00", true},
		{"time", "12:30:00", false},
		{"duration", "P1Y2M3DT4H5M6S", true},
		{"duration", "PT1S", true},
		{"duration", "P4W", true},
		{"duration", "P", false},
		{"duration", "1Y", false},
		{"email", "joe@example.com", true},
		{"email", "Joe <joe@example.com>", false},
		{"email", "not-an-email", false},
		{"hostname", "example.com", true},
		{"hostname", "ex_ample.com", false},
		{"hostname", "-example.com", false},
		{"ipv4", "192.168.0.1", true},
		{"ipv4", "256.0.0.1", false},
		{"ipv4", "::1", false},
		{"ipv6", "::1", true},
		{"ipv6", "192.168.0.1", false},
		{"uuid", "2eb8aa08-aa98-11ea-b4aa-73b441d16380", true},
		{"uuid", "2eb8aa08-aa98-11ea-b4aa-73b441d1638", false},
		{"uuid", "2eb8aa08aa9811eab4aa73b441d16380", false},
		{"uri", "https://example.com/path", true},
		{"uri", "/relative/path", false},
		{"uri-reference", "/relative/path", true},
		{"uri-reference", `\\server\share`, false},
		{"json-pointer", "", true},
		{"json-pointer", "/a/b", true},
		{"json-pointer", "/a~0b/c~1d", true},
		{"json-pointer", "/a~2b", false},
		{"json-pointer", "a/b", false},
		{"relative-json-pointer", "0", true},
		{"relative-json-pointer", "1/a", true},
		{"relative-json-pointer", "0#", true},
		{"relative-json-pointer", "01", false},
		{"relative-json-pointer", "#", false},
		{"regex", "a+b*", true},
		{"regex", "a[", false},
	}
	for _, test := range tests {
		c, ok := Lookup(test.format)
		if !ok {
			t.Fatalf("Lookup(%q) failed", test.format)
		}
		err := c(test.value)
		if (err == nil) != test.valid {
			t.Errorf("%s(%q) = %v, want valid %t", test.format, test.value, err, test.valid)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("no-such-format"); ok {
		t.Error(`Lookup("no-such-format") reported ok`)
	}
}

func TestRegisterChecker(t *testing.T) {
	errNotX := errors.New("not x")
	RegisterChecker("exactly-x", func(s string) error {
		if s != "x" {
			return errNotX
		}
		return nil
	})
	c, ok := Lookup("exactly-x")
	if !ok {
		t.Fatal("registered checker not found")
	}
	if err := c("x"); err != nil {
		t.Errorf(`c("x") = %v, want nil`, err)
	}
	if err := c("y"); !errors.Is(err, errNotX) {
		t.Errorf(`c("y") = %v, want errNotX`, err)
	}
}
