// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keyword enumerates the recognized JSON schema keywords.
//
// The keyword order is the dispatch-table order: it decides both
// the order in which the parser observes a schema object and the
// short-circuit priority of the validator.
package keyword

import (
	"iter"
	"math/bits"
)

// Keyword identifies one recognized schema keyword.
type Keyword int

const (
	// Core keywords.
	ID Keyword = iota
	Schema
	Ref
	Comment
	Defs
	Anchor
	DynamicAnchor
	DynamicRef
	Vocabulary

	// Applicator keywords.
	AllOf
	AnyOf
	OneOf
	If
	Then
	Else
	Not
	Properties
	AdditionalProperties
	PatternProperties
	DependentSchemas
	PropertyNames
	Contains
	Items
	PrefixItems

	// Validator keywords.
	Type
	Enum
	Const
	MaxLength
	MinLength
	Pattern
	ExclusiveMaximum
	ExclusiveMinimum
	Maximum
	Minimum
	MultipleOf
	DependentRequired
	MaxProperties
	MinProperties
	Required
	MaxItems
	MinItems
	MaxContains
	MinContains
	UniqueItems

	// Metadata keywords.
	Title
	Description
	Default
	Deprecated
	Examples
	ReadOnly
	WriteOnly

	// Unevaluated keywords.
	UnevaluatedItems
	UnevaluatedProperties

	// Format assertion vocabulary.
	Format

	NumKeywords
)

// names holds the canonical spellings, indexed by Keyword.
var names = [NumKeywords]string{
	ID:                    "$id",
	Schema:                "$schema",
	Ref:                   "$ref",
	Comment:               "$comment",
	Defs:                  "$defs",
	Anchor:                "$anchor",
	DynamicAnchor:         "$dynamicAnchor",
	DynamicRef:            "$dynamicRef",
	Vocabulary:            "$vocabulary",
	AllOf:                 "allOf",
	AnyOf:                 "anyOf",
	OneOf:                 "oneOf",
	If:                    "if",
	Then:                  "then",
	Else:                  "else",
	Not:                   "not",
	Properties:            "properties",
	AdditionalProperties:  "additionalProperties",
	PatternProperties:     "patternProperties",
	DependentSchemas:      "dependentSchemas",
	PropertyNames:         "propertyNames",
	Contains:              "contains",
	Items:                 "items",
	PrefixItems:           "prefixItems",
	Type:                  "type",
	Enum:                  "enum",
	Const:                 "const",
	MaxLength:             "maxLength",
	MinLength:             "minLength",
	Pattern:               "pattern",
	ExclusiveMaximum:      "exclusiveMaximum",
	ExclusiveMinimum:      "exclusiveMinimum",
	Maximum:               "maximum",
	Minimum:               "minimum",
	MultipleOf:            "multipleOf",
	DependentRequired:     "dependentRequired",
	MaxProperties:         "maxProperties",
	MinProperties:         "minProperties",
	Required:              "required",
	MaxItems:              "maxItems",
	MinItems:              "minItems",
	MaxContains:           "maxContains",
	MinContains:           "minContains",
	UniqueItems:           "uniqueItems",
	Title:                 "title",
	Description:           "description",
	Default:               "default",
	Deprecated:            "deprecated",
	Examples:              "examples",
	ReadOnly:              "readOnly",
	WriteOnly:             "writeOnly",
	UnevaluatedItems:      "unevaluatedItems",
	UnevaluatedProperties: "unevaluatedProperties",
	Format:                "format",
}

// String returns the canonical spelling of the keyword.
func (k Keyword) String() string {
	if k < 0 || k >= NumKeywords {
		return "<unknown keyword>"
	}
	return names[k]
}

// byName maps canonical spellings back to keywords.
var byName = func() map[string]Keyword {
	m := make(map[string]Keyword, NumKeywords)
	for k, name := range names {
		m[name] = Keyword(k)
	}
	return m
}()

// Lookup returns the keyword with the given canonical spelling.
// The bool result reports whether the name is recognized.
func Lookup(name string) (Keyword, bool) {
	k, ok := byName[name]
	return k, ok
}

// Kind labels the group a keyword belongs to.
type Kind int

const (
	KindCore Kind = iota + 1
	KindApplicator
	KindValidator
	KindMetadata
	KindUnevaluated
	KindFormat
)

// KindOf returns the group of the keyword.
func KindOf(k Keyword) Kind {
	switch {
	case k <= Vocabulary:
		return KindCore
	case k <= PrefixItems:
		return KindApplicator
	case k <= UniqueItems:
		return KindValidator
	case k <= WriteOnly:
		return KindMetadata
	case k <= UnevaluatedProperties:
		return KindUnevaluated
	default:
		return KindFormat
	}
}

// Set is a set of keywords, stored as a bit per keyword.
type Set uint64

// Add adds k to the set.
func (s *Set) Add(k Keyword) {
	*s |= 1 << uint(k)
}

// Has reports whether k is in the set.
func (s Set) Has(k Keyword) bool {
	return s&(1<<uint(k)) != 0
}

// IsEmpty reports whether the set contains no keywords.
func (s Set) IsEmpty() bool {
	return s == 0
}

// Len returns the number of keywords in the set.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// All iterates over the keywords in the set in keyword order.
func (s Set) All() iter.Seq[Keyword] {
	return func(yield func(Keyword) bool) {
		rest := uint64(s)
		for rest != 0 {
			k := Keyword(bits.TrailingZeros64(rest))
			if !yield(k) {
				return
			}
			rest &= rest - 1
		}
	}
}
