// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFile writes a temp file and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunValidInstance(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", `{"type": "object", "required": ["name"]}`)
	instance := writeFile(t, dir, "instance.json", `{"name": "x"}`)

	var stdout, stderr strings.Builder
	code := runWithArgs([]string{"--schema", schema, instance}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "validates") {
		t.Errorf("stdout = %q, want a success line", stdout.String())
	}
}

func TestRunInvalidInstance(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", `{"type": "object", "required": ["name"]}`)
	instance := writeFile(t, dir, "instance.json", `{}`)

	var stdout, stderr strings.Builder
	code := runWithArgs([]string{"--schema", schema, instance}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "required") {
		t.Errorf("stderr = %q, want the failing keyword", stderr.String())
	}
}

func TestRunYAMLSchema(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.yaml", "type: integer\nminimum: 3\n")
	good := writeFile(t, dir, "good.json", `4`)
	bad := writeFile(t, dir, "bad.json", `2`)

	var stdout, stderr strings.Builder
	if code := runWithArgs([]string{"--schema", schema, good}, &stdout, &stderr); code != 0 {
		t.Errorf("valid instance: exit code = %d, stderr = %q", code, stderr.String())
	}
	stdout.Reset()
	stderr.Reset()
	if code := runWithArgs([]string{"--schema", schema, bad}, &stdout, &stderr); code != 1 {
		t.Errorf("invalid instance: exit code = %d", code)
	}
}

func TestRunExample(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", `{"const": {"a": 1}}`)

	var stdout, stderr strings.Builder
	code := runWithArgs([]string{"--schema", schema, "--example"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != `{"a":1}` {
		t.Errorf("stdout = %q, want {\"a\":1}", got)
	}
}

func TestRunUsageErrors(t *testing.T) {
	dir := t.TempDir()
	instance := writeFile(t, dir, "instance.json", `{}`)

	var stdout, stderr strings.Builder
	if code := runWithArgs([]string{instance}, &stdout, &stderr); code != 2 {
		t.Errorf("missing --schema: exit code = %d, want 2", code)
	}
	schema := writeFile(t, dir, "schema.json", `{}`)
	if code := runWithArgs([]string{"--schema", schema}, &stdout, &stderr); code != 2 {
		t.Errorf("missing instance: exit code = %d, want 2", code)
	}
}

func TestRunMissingFiles(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", `{}`)

	var stdout, stderr strings.Builder
	if code := runWithArgs([]string{"--schema", filepath.Join(dir, "none.json"), schema}, &stdout, &stderr); code != 1 {
		t.Errorf("missing schema file: exit code = %d, want 1", code)
	}
	if code := runWithArgs([]string{"--schema", schema, filepath.Join(dir, "none.json")}, &stdout, &stderr); code != 1 {
		t.Errorf("missing instance file: exit code = %d, want 1", code)
	}
}

func TestRunBadSchema(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", `{"pattern": "a["}`)
	instance := writeFile(t, dir, "instance.json", `"x"`)

	var stdout, stderr strings.Builder
	if code := runWithArgs([]string{"--schema", schema, instance}, &stdout, &stderr); code != 1 {
		t.Errorf("bad schema: exit code = %d, want 1", code)
	}
}
