// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"github.com/altshiftab/jsval/pkg/jsonvalue"
	"github.com/altshiftab/jsval/pkg/keyword"
)

// parseFunc parses the value of one keyword into the record at
// self. On success the parser sets the keyword's flag bit.
type parseFunc func(ctx *Context, self Index, arg jsonvalue.Value) error

// validateFunc checks an instance against one keyword of s.
type validateFunc func(ctx *Context, s *Schema, instance jsonvalue.Value) error

// tableEntry binds a keyword name to its handlers.
//
// A nil validate means the keyword asserts nothing on its own:
// metadata, or a keyword validated by a neighbor (then and else
// run inside if; minContains and maxContains inside contains).
// A nil parse means the keyword is recognized but unimplemented;
// the parser logs an advisory and ignores it.
type tableEntry struct {
	keyword  keyword.Keyword
	kind     keyword.Kind
	parse    parseFunc
	validate validateFunc
}

// dispatchTable is the single source of truth binding keyword
// names to handlers. It is indexed by keyword, so iterating it
// front to back walks the keywords in dispatch order: that order
// decides which keyword observes the input first during parsing
// and which failure wins during validation.
var dispatchTable [keyword.NumKeywords]tableEntry

// initDispatchTable populates dispatchTable. It is called from init
// below rather than used as dispatchTable's initializer because the
// handlers it names (transitively, through parseSchemaValue) refer
// back to dispatchTable, which the compiler's initializer-dependency
// analysis treats as an initialization cycle even though no handler
// runs until after init.
func initDispatchTable() [keyword.NumKeywords]tableEntry {
	return [keyword.NumKeywords]tableEntry{
		keyword.ID:                    {parse: parseID},
		keyword.Schema:                {parse: parseMetaSchema},
		keyword.Ref:                   {parse: parseRef},
		keyword.Comment:               {parse: parseComment},
		keyword.Defs:                  {parse: parseDefs},
		keyword.Anchor:                {},
		keyword.DynamicAnchor:         {},
		keyword.DynamicRef:            {},
		keyword.Vocabulary:            {},
		keyword.AllOf:                 {parse: parseAllOf, validate: validateAllOf},
		keyword.AnyOf:                 {parse: parseAnyOf, validate: validateAnyOf},
		keyword.OneOf:                 {parse: parseOneOf, validate: validateOneOf},
		keyword.If:                    {parse: parseIf, validate: validateIfThenElse},
		keyword.Then:                  {parse: parseThen},
		keyword.Else:                  {parse: parseElse},
		keyword.Not:                   {parse: parseNot, validate: validateNot},
		keyword.Properties:            {parse: parseProperties, validate: validateProperties},
		keyword.AdditionalProperties:  {parse: parseAdditionalProperties, validate: validateAdditionalProperties},
		keyword.PatternProperties:     {parse: parsePatternProperties, validate: validatePatternProperties},
		keyword.DependentSchemas:      {parse: parseDependentSchemas, validate: validateDependentSchemas},
		keyword.PropertyNames:         {parse: parsePropertyNames, validate: validatePropertyNames},
		keyword.Contains:              {parse: parseContains, validate: validateContains},
		keyword.Items:                 {parse: parseItems, validate: validateItems},
		keyword.PrefixItems:           {parse: parsePrefixItems, validate: validatePrefixItems},
		keyword.Type:                  {parse: parseType, validate: validateType},
		keyword.Enum:                  {parse: parseEnum, validate: validateEnum},
		keyword.Const:                 {parse: parseConst, validate: validateConst},
		keyword.MaxLength:             {parse: parseMaxLength, validate: validateMaxLength},
		keyword.MinLength:             {parse: parseMinLength, validate: validateMinLength},
		keyword.Pattern:               {parse: parsePattern, validate: validatePattern},
		keyword.ExclusiveMaximum:      {parse: parseExclusiveMaximum, validate: validateExclusiveMaximum},
		keyword.ExclusiveMinimum:      {parse: parseExclusiveMinimum, validate: validateExclusiveMinimum},
		keyword.Maximum:               {parse: parseMaximum, validate: validateMaximum},
		keyword.Minimum:               {parse: parseMinimum, validate: validateMinimum},
		keyword.MultipleOf:            {parse: parseMultipleOf, validate: validateMultipleOf},
		keyword.DependentRequired:     {parse: parseDependentRequired, validate: validateDependentRequired},
		keyword.MaxProperties:         {parse: parseMaxProperties, validate: validateMaxProperties},
		keyword.MinProperties:         {parse: parseMinProperties, validate: validateMinProperties},
		keyword.Required:              {parse: parseRequired, validate: validateRequired},
		keyword.MaxItems:              {parse: parseMaxItems, validate: validateMaxItems},
		keyword.MinItems:              {parse: parseMinItems, validate: validateMinItems},
		keyword.MaxContains:           {parse: parseMaxContains},
		keyword.MinContains:           {parse: parseMinContains},
		keyword.UniqueItems:           {parse: parseUniqueItems, validate: validateUniqueItems},
		keyword.Title:                 {parse: parseTitle},
		keyword.Description:           {parse: parseDescription},
		keyword.Default:               {parse: parseDefault},
		keyword.Deprecated:            {parse: parseDeprecated},
		keyword.Examples:              {parse: parseExamples},
		keyword.ReadOnly:              {parse: parseReadOnly},
		keyword.WriteOnly:             {parse: parseWriteOnly},
		keyword.UnevaluatedItems:      {},
		keyword.UnevaluatedProperties: {},
		keyword.Format:                {parse: parseFormat, validate: validateFormat},
	}
}

// init fills in the keyword and kind fields from the index, so
// the literal above only has to name the handlers.
func init() {
	dispatchTable = initDispatchTable()
	for i := range dispatchTable {
		k := keyword.Keyword(i)
		dispatchTable[i].keyword = k
		dispatchTable[i].kind = keyword.KindOf(k)
	}
}
