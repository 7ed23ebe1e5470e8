// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonschema implements a JSON schema validator for
// draft 2020-12.
//
// Schemas live in a pool owned by a [Context]: parsing a schema
// document appends one record per schema object, and every edge
// between schemas is a pool index rather than a pointer. The
// pipeline has two phases: parse the document (recording pending
// $ref paths), then [Context.ResolveRefs] to fuse each referrer
// with its target. After that the context is finalized and any
// number of instances can be validated against it.
package jsonschema

import (
	"regexp"

	"github.com/altshiftab/jsval/pkg/format"
	"github.com/altshiftab/jsval/pkg/jsonvalue"
	"github.com/altshiftab/jsval/pkg/keyword"
)

// Index identifies a schema record within a context's pool.
type Index int32

// InstanceType is a JSON instance type a schema can require.
type InstanceType int

const (
	// InvalidType marks a type that failed to parse.
	InvalidType InstanceType = iota
	NullType
	BooleanType
	ObjectType
	ArrayType
	NumberType
	IntegerType
	StringType
)

// String returns the spelling used by the type keyword.
func (t InstanceType) String() string {
	switch t {
	case NullType:
		return "null"
	case BooleanType:
		return "boolean"
	case ObjectType:
		return "object"
	case ArrayType:
		return "array"
	case NumberType:
		return "number"
	case IntegerType:
		return "integer"
	case StringType:
		return "string"
	default:
		return "<invalid type>"
	}
}

// instanceTypeByName maps type keyword spellings to types.
var instanceTypeByName = map[string]InstanceType{
	"null":    NullType,
	"boolean": BooleanType,
	"object":  ObjectType,
	"array":   ArrayType,
	"number":  NumberType,
	"integer": IntegerType,
	"string":  StringType,
}

// Schema is one schema record in a context's pool.
//
// A field of the record is meaningful only when the corresponding
// keyword bit is set in Flags, with three exceptions: the form
// flags (BoolSchema, BoolValue, EmptyContainer), Name, and
// OtherKeys are always meaningful. All Index-valued fields are
// indices into the pool of the owning context.
type Schema struct {
	// Identity.
	MetaSchema  string
	ID          string
	Title       string
	Comment     string
	Description string
	Ref         string
	Defs        map[string]Index

	// Name is set when this schema is a named child, such as a
	// property or a dependentSchemas entry.
	Name string

	// Form flags. A boolean-literal schema has BoolSchema set
	// and no other field meaningful; an object schema that
	// contained no recognized keyword has EmptyContainer set.
	BoolSchema     bool
	BoolValue      bool
	EmptyContainer bool

	// Flags records which keywords were present and parsed
	// successfully. The validator iterates only this set.
	Flags keyword.Set

	// Applicator storage.
	PropertiesChildren   []Index
	PatternProperties    []Index          // parallel to PatternRegex
	PatternRegex         []*regexp.Regexp // parallel to PatternProperties
	AdditionalProperties Index
	PropertyNames        Index
	Contains             Index
	Items                Index
	If                   Index
	Then                 Index
	Else                 Index
	Not                  Index
	AllOf                []Index
	AnyOf                []Index
	OneOf                []Index
	PrefixItems          []Index
	DependentSchemas     []Index // each child's Name is the trigger key

	// Validator storage.
	Types             []InstanceType
	Const             jsonvalue.Value
	Enums             []jsonvalue.Value
	MinLength         int
	MaxLength         int
	MaxItems          int
	MinItems          int
	MaxProperties     int
	MinProperties     int
	MaxContains       int
	MinContains       int
	Minimum           float64
	Maximum           float64
	ExclusiveMin      float64
	ExclusiveMax      float64
	MultipleOf        float64
	Required          []string
	Pattern           *regexp.Regexp
	DependentRequired map[string][]string
	UniqueItems       bool

	// Metadata storage.
	Default     jsonvalue.Value
	Examples    []jsonvalue.Value
	Deprecated  bool
	ReadOnly    bool
	WriteOnly   bool
	FormatName  string
	FormatCheck format.Checker

	// OtherKeys maps unrecognized top-level keys to child
	// schemas, so $ref paths can descend through non-vocabulary
	// containers inside $defs.
	OtherKeys map[string]Index
}
