// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// jsval validates a JSON instance document against a JSON schema.
//
// Usage:
//
//	jsval --schema schema.json instance.json
//
// The schema may also be a YAML file (.yaml or .yml). With
// --example, jsval prints a generated sample instance for the
// schema instead of validating.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/altshiftab/jsval/pkg/jsonschema"
)

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdout, os.Stderr))
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	schemaPath := fs.String("schema", "", "path to JSON (or YAML) schema file")
	example := fs.Bool("example", false, "print a generated sample instance instead of validating")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: jsval --schema <schema.json> <instance.json>\n\n")
		fmt.Fprintln(stderr, "Validates a JSON document against a JSON schema (draft 2020-12).")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *schemaPath == "" {
		fmt.Fprintln(stderr, "error: --schema is required")
		fs.Usage()
		return 2
	}
	remaining := fs.Args()
	if *example {
		if len(remaining) != 0 {
			fmt.Fprintln(stderr, "error: --example takes no instance argument")
			return 2
		}
	} else if len(remaining) != 1 {
		fmt.Fprintln(stderr, "error: exactly one JSON instance argument is required")
		fs.Usage()
		return 2
	}

	schemaData, err := os.ReadFile(*schemaPath)
	if err != nil {
		fmt.Fprintf(stderr, "error reading schema: %v\n", err)
		return 1
	}

	ctx := jsonschema.NewContext(16)
	var root jsonschema.Index
	if strings.HasSuffix(*schemaPath, ".yaml") || strings.HasSuffix(*schemaPath, ".yml") {
		root, err = ctx.ParseSchemaFromYAML(schemaData)
	} else {
		root, err = ctx.ParseSchemaFromString(string(schemaData))
	}
	if err != nil {
		fmt.Fprintf(stderr, "schema parse failed: %v\n", err)
		return 1
	}
	if err := ctx.ResolveRefs(root); err != nil {
		fmt.Fprintf(stderr, "schema reference resolution failed: %v\n", err)
		return 1
	}

	if *example {
		v, err := ctx.Generate(root)
		if err != nil {
			fmt.Fprintf(stderr, "example generation failed: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, v)
		return 0
	}

	instanceData, err := os.ReadFile(remaining[0])
	if err != nil {
		fmt.Fprintf(stderr, "error reading instance: %v\n", err)
		return 1
	}
	if err := ctx.ValidateString(string(instanceData), root); err != nil {
		fmt.Fprintf(stderr, "validation failed: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "%s validates against %s\n", remaining[0], *schemaPath)
	return 0
}
