// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/altshiftab/jsval/pkg/jsonvalue"
)

// TestSuite runs the per-keyword fixtures under testdata. Each
// file holds an array of groups; a group has a schema, a
// description, and tests pairing an instance with the expected
// outcome.
func TestSuite(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures under testdata")
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			doc, err := jsonvalue.Decode(data)
			if err != nil {
				t.Fatalf("decoding %s: %v", path, err)
			}
			if doc.Kind() != jsonvalue.Array {
				t.Fatalf("%s does not hold an array of groups", path)
			}

			for _, group := range doc.Elems() {
				desc := memberString(group, "description")
				schema, ok := group.Member("schema")
				if !ok {
					t.Fatalf("group %q has no schema", desc)
				}
				tests, ok := group.Member("tests")
				if !ok || tests.Kind() != jsonvalue.Array {
					t.Fatalf("group %q has no tests array", desc)
				}

				ctx := NewContext(8)
				root, err := ctx.ParseSchemaFromValue(schema)
				if err != nil {
					t.Errorf("group %q: parse schema: %v", desc, err)
					continue
				}
				if err := ctx.ResolveRefs(root); err != nil {
					t.Errorf("group %q: resolve refs: %v", desc, err)
					continue
				}

				for _, test := range tests.Elems() {
					testDesc := memberString(test, "description")
					instance, ok := test.Member("data")
					if !ok {
						t.Errorf("group %q, test %q: no data", desc, testDesc)
						continue
					}
					valid, ok := test.Member("valid")
					if !ok || valid.Kind() != jsonvalue.Bool {
						t.Errorf("group %q, test %q: no valid flag", desc, testDesc)
						continue
					}
					err := ctx.ValidateValue(instance, root)
					if got := err == nil; got != valid.Bool() {
						t.Errorf("group %q, test %q: valid = %t (%v), want %t", desc, testDesc, got, err, valid.Bool())
					}
				}
			}
		})
	}
}

// memberString returns a string member, or empty.
func memberString(v jsonvalue.Value, key string) string {
	m, ok := v.Member(key)
	if !ok {
		return ""
	}
	return m.Str()
}
