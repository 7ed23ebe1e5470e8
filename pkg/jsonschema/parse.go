// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"errors"
	"log/slog"
	"regexp"
	"regexp/syntax"

	"github.com/altshiftab/jsval/pkg/errkind"
	"github.com/altshiftab/jsval/pkg/format"
	"github.com/altshiftab/jsval/pkg/jsonvalue"
	"github.com/altshiftab/jsval/pkg/keyword"
)

// parseSchemaValue materializes a schema record in the pool from
// a JSON value and returns its index.
//
// A boolean input becomes a boolean-literal record. An object
// input is walked against the dispatch table in table order; each
// present keyword with a parse handler is parsed, and on success
// its flag bit is set. Keys not in the table are then parsed
// recursively as subschemas and recorded in OtherKeys, so $ref
// paths can descend through non-vocabulary containers. Any other
// input kind is rejected.
func parseSchemaValue(ctx *Context, v jsonvalue.Value) (Index, error) {
	switch v.Kind() {
	case jsonvalue.Bool:
		idx, s := ctx.alloc()
		s.BoolSchema = true
		s.BoolValue = v.Bool()
		return idx, nil

	case jsonvalue.Object:
		idx, _ := ctx.alloc()
		matched := false
		for i := range dispatchTable {
			e := &dispatchTable[i]
			arg, ok := v.Member(e.keyword.String())
			if !ok {
				continue
			}
			matched = true
			if e.parse == nil {
				slog.Warn("ignoring unimplemented schema keyword", "keyword", e.keyword.String())
				continue
			}
			if err := e.parse(ctx, idx, arg); err != nil {
				return 0, err
			}
			ctx.get(idx).Flags.Add(e.keyword)
		}

		for _, m := range v.Members() {
			if _, ok := keyword.Lookup(m.Key); ok {
				continue
			}
			child, err := parseSchemaValue(ctx, m.Value)
			if err != nil {
				return 0, err
			}
			s := ctx.get(idx)
			if s.OtherKeys == nil {
				s.OtherKeys = make(map[string]Index)
			}
			s.OtherKeys[m.Key] = child
		}

		if !matched {
			ctx.get(idx).EmptyContainer = true
		}
		return idx, nil

	default:
		return 0, errkind.ErrInvalidObjectType
	}
}

// stringArg returns the string payload of arg, or the empty
// string for any other kind. Identity keywords tolerate a
// non-string value rather than failing the parse.
func stringArg(arg jsonvalue.Value) string {
	if arg.Kind() != jsonvalue.String {
		return ""
	}
	return arg.Str()
}

// countArg converts arg into a non-negative count. A float whose
// fractional part is exactly zero is accepted as an integer.
func countArg(arg jsonvalue.Value) (int, error) {
	if !arg.IsIntegral() {
		return 0, errkind.ErrInvalidIntegerType
	}
	var n int64
	if arg.Kind() == jsonvalue.Int {
		n = arg.Int()
	} else {
		n = int64(arg.Float())
	}
	if n < 0 {
		return 0, errkind.ErrInvalidIntegerType
	}
	return int(n), nil
}

// numberArg converts arg into a number, accepting integers
// transparently.
func numberArg(arg jsonvalue.Value) (float64, error) {
	switch arg.Kind() {
	case jsonvalue.Int, jsonvalue.Float:
		return arg.Number(), nil
	default:
		return 0, errkind.ErrInvalidNumberType
	}
}

// boolArg converts arg into a boolean.
func boolArg(arg jsonvalue.Value) (bool, error) {
	if arg.Kind() != jsonvalue.Bool {
		return false, errkind.ErrInvalidInstanceType
	}
	return arg.Bool(), nil
}

// compileRegex compiles a schema regular expression.
func compileRegex(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		var serr *syntax.Error
		if errors.As(err, &serr) {
			return nil, errkind.ErrRegexParser
		}
		return nil, errkind.ErrRegexCreationFailed
	}
	return re, nil
}

func parseID(ctx *Context, self Index, arg jsonvalue.Value) error {
	ctx.get(self).ID = stringArg(arg)
	return nil
}

func parseMetaSchema(ctx *Context, self Index, arg jsonvalue.Value) error {
	ctx.get(self).MetaSchema = stringArg(arg)
	return nil
}

func parseComment(ctx *Context, self Index, arg jsonvalue.Value) error {
	ctx.get(self).Comment = stringArg(arg)
	return nil
}

func parseTitle(ctx *Context, self Index, arg jsonvalue.Value) error {
	ctx.get(self).Title = stringArg(arg)
	return nil
}

func parseDescription(ctx *Context, self Index, arg jsonvalue.Value) error {
	ctx.get(self).Description = stringArg(arg)
	return nil
}

// parseRef records the reference path for the resolution pass.
func parseRef(ctx *Context, self Index, arg jsonvalue.Value) error {
	if arg.Kind() != jsonvalue.String {
		return errkind.ErrInvalidStringType
	}
	ctx.get(self).Ref = arg.Str()
	ctx.recordPendingRef(self, arg.Str())
	return nil
}

func parseDefs(ctx *Context, self Index, arg jsonvalue.Value) error {
	if arg.Kind() != jsonvalue.Object {
		return errkind.ErrInvalidObjectType
	}
	defs := make(map[string]Index, arg.Len())
	for _, m := range arg.Members() {
		child, err := parseSchemaValue(ctx, m.Value)
		if err != nil {
			return err
		}
		ctx.get(child).Name = m.Key
		defs[m.Key] = child
	}
	ctx.get(self).Defs = defs
	return nil
}

// parseProperties parses each property subschema, naming the
// child after its key. The declared type defaults to object;
// an explicit type keyword parses later in table order and
// overwrites the default.
func parseProperties(ctx *Context, self Index, arg jsonvalue.Value) error {
	if arg.Kind() != jsonvalue.Object {
		return errkind.ErrInvalidObjectType
	}
	for _, m := range arg.Members() {
		child, err := parseSchemaValue(ctx, m.Value)
		if err != nil {
			return err
		}
		ctx.get(child).Name = m.Key
		s := ctx.get(self)
		s.PropertiesChildren = append(s.PropertiesChildren, child)
	}
	s := ctx.get(self)
	s.Types = []InstanceType{ObjectType}
	s.Flags.Add(keyword.Type)
	return nil
}

// parsePatternProperties keeps PatternRegex and PatternProperties
// as equal-length parallel sequences.
func parsePatternProperties(ctx *Context, self Index, arg jsonvalue.Value) error {
	if arg.Kind() != jsonvalue.Object {
		return errkind.ErrInvalidObjectType
	}
	for _, m := range arg.Members() {
		re, err := compileRegex(m.Key)
		if err != nil {
			return err
		}
		child, err := parseSchemaValue(ctx, m.Value)
		if err != nil {
			return err
		}
		s := ctx.get(self)
		s.PatternRegex = append(s.PatternRegex, re)
		s.PatternProperties = append(s.PatternProperties, child)
	}
	return nil
}

func parseAdditionalProperties(ctx *Context, self Index, arg jsonvalue.Value) error {
	child, err := parseSchemaValue(ctx, arg)
	if err != nil {
		return err
	}
	ctx.get(self).AdditionalProperties = child
	return nil
}

func parsePropertyNames(ctx *Context, self Index, arg jsonvalue.Value) error {
	child, err := parseSchemaValue(ctx, arg)
	if err != nil {
		return err
	}
	ctx.get(self).PropertyNames = child
	return nil
}

func parseContains(ctx *Context, self Index, arg jsonvalue.Value) error {
	child, err := parseSchemaValue(ctx, arg)
	if err != nil {
		return err
	}
	ctx.get(self).Contains = child
	return nil
}

func parseItems(ctx *Context, self Index, arg jsonvalue.Value) error {
	child, err := parseSchemaValue(ctx, arg)
	if err != nil {
		return err
	}
	ctx.get(self).Items = child
	return nil
}

func parseNot(ctx *Context, self Index, arg jsonvalue.Value) error {
	child, err := parseSchemaValue(ctx, arg)
	if err != nil {
		return err
	}
	ctx.get(self).Not = child
	return nil
}

func parseIf(ctx *Context, self Index, arg jsonvalue.Value) error {
	child, err := parseSchemaValue(ctx, arg)
	if err != nil {
		return err
	}
	ctx.get(self).If = child
	return nil
}

func parseThen(ctx *Context, self Index, arg jsonvalue.Value) error {
	child, err := parseSchemaValue(ctx, arg)
	if err != nil {
		return err
	}
	ctx.get(self).Then = child
	return nil
}

func parseElse(ctx *Context, self Index, arg jsonvalue.Value) error {
	child, err := parseSchemaValue(ctx, arg)
	if err != nil {
		return err
	}
	ctx.get(self).Else = child
	return nil
}

// parseSchemaList parses an array of subschemas.
func parseSchemaList(ctx *Context, arg jsonvalue.Value) ([]Index, error) {
	if arg.Kind() != jsonvalue.Array {
		return nil, errkind.ErrInvalidArrayType
	}
	children := make([]Index, 0, arg.Len())
	for _, e := range arg.Elems() {
		child, err := parseSchemaValue(ctx, e)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func parseAllOf(ctx *Context, self Index, arg jsonvalue.Value) error {
	children, err := parseSchemaList(ctx, arg)
	if err != nil {
		return err
	}
	ctx.get(self).AllOf = children
	return nil
}

func parseAnyOf(ctx *Context, self Index, arg jsonvalue.Value) error {
	children, err := parseSchemaList(ctx, arg)
	if err != nil {
		return err
	}
	ctx.get(self).AnyOf = children
	return nil
}

func parseOneOf(ctx *Context, self Index, arg jsonvalue.Value) error {
	children, err := parseSchemaList(ctx, arg)
	if err != nil {
		return err
	}
	ctx.get(self).OneOf = children
	return nil
}

func parsePrefixItems(ctx *Context, self Index, arg jsonvalue.Value) error {
	children, err := parseSchemaList(ctx, arg)
	if err != nil {
		return err
	}
	ctx.get(self).PrefixItems = children
	return nil
}

// parseDependentSchemas names each child after its trigger key,
// so the validator can locate the triggering property.
func parseDependentSchemas(ctx *Context, self Index, arg jsonvalue.Value) error {
	if arg.Kind() != jsonvalue.Object {
		return errkind.ErrInvalidObjectType
	}
	for _, m := range arg.Members() {
		child, err := parseSchemaValue(ctx, m.Value)
		if err != nil {
			return err
		}
		ctx.get(child).Name = m.Key
		s := ctx.get(self)
		s.DependentSchemas = append(s.DependentSchemas, child)
	}
	return nil
}

// parseType accepts a single type name or an array of names.
func parseType(ctx *Context, self Index, arg jsonvalue.Value) error {
	switch arg.Kind() {
	case jsonvalue.String:
		t, ok := instanceTypeByName[arg.Str()]
		if !ok {
			return errkind.ErrInvalidInstanceType
		}
		ctx.get(self).Types = []InstanceType{t}
		return nil
	case jsonvalue.Array:
		types := make([]InstanceType, 0, arg.Len())
		for _, e := range arg.Elems() {
			if e.Kind() != jsonvalue.String {
				return errkind.ErrInvalidInstanceType
			}
			t, ok := instanceTypeByName[e.Str()]
			if !ok {
				return errkind.ErrInvalidInstanceType
			}
			types = append(types, t)
		}
		ctx.get(self).Types = types
		return nil
	default:
		return errkind.ErrExpectedArrayOrString
	}
}

func parseEnum(ctx *Context, self Index, arg jsonvalue.Value) error {
	if arg.Kind() != jsonvalue.Array {
		return errkind.ErrInvalidEnumType
	}
	ctx.get(self).Enums = arg.Elems()
	return nil
}

func parseConst(ctx *Context, self Index, arg jsonvalue.Value) error {
	ctx.get(self).Const = arg
	return nil
}

func parseMaxLength(ctx *Context, self Index, arg jsonvalue.Value) error {
	n, err := countArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).MaxLength = n
	return nil
}

func parseMinLength(ctx *Context, self Index, arg jsonvalue.Value) error {
	n, err := countArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).MinLength = n
	return nil
}

func parseMaxItems(ctx *Context, self Index, arg jsonvalue.Value) error {
	n, err := countArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).MaxItems = n
	return nil
}

func parseMinItems(ctx *Context, self Index, arg jsonvalue.Value) error {
	n, err := countArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).MinItems = n
	return nil
}

func parseMaxProperties(ctx *Context, self Index, arg jsonvalue.Value) error {
	n, err := countArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).MaxProperties = n
	return nil
}

func parseMinProperties(ctx *Context, self Index, arg jsonvalue.Value) error {
	n, err := countArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).MinProperties = n
	return nil
}

func parseMaxContains(ctx *Context, self Index, arg jsonvalue.Value) error {
	n, err := countArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).MaxContains = n
	return nil
}

func parseMinContains(ctx *Context, self Index, arg jsonvalue.Value) error {
	n, err := countArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).MinContains = n
	return nil
}

func parseMaximum(ctx *Context, self Index, arg jsonvalue.Value) error {
	f, err := numberArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).Maximum = f
	return nil
}

func parseMinimum(ctx *Context, self Index, arg jsonvalue.Value) error {
	f, err := numberArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).Minimum = f
	return nil
}

func parseExclusiveMaximum(ctx *Context, self Index, arg jsonvalue.Value) error {
	f, err := numberArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).ExclusiveMax = f
	return nil
}

func parseExclusiveMinimum(ctx *Context, self Index, arg jsonvalue.Value) error {
	f, err := numberArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).ExclusiveMin = f
	return nil
}

func parseMultipleOf(ctx *Context, self Index, arg jsonvalue.Value) error {
	f, err := numberArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).MultipleOf = f
	return nil
}

func parseRequired(ctx *Context, self Index, arg jsonvalue.Value) error {
	if arg.Kind() != jsonvalue.Array {
		return errkind.ErrInvalidArrayType
	}
	required := make([]string, 0, arg.Len())
	for _, e := range arg.Elems() {
		if e.Kind() != jsonvalue.String {
			return errkind.ErrInvalidStringType
		}
		required = append(required, e.Str())
	}
	ctx.get(self).Required = required
	return nil
}

func parseDependentRequired(ctx *Context, self Index, arg jsonvalue.Value) error {
	if arg.Kind() != jsonvalue.Object {
		return errkind.ErrInvalidObjectType
	}
	deps := make(map[string][]string, arg.Len())
	for _, m := range arg.Members() {
		if m.Value.Kind() != jsonvalue.Array {
			return errkind.ErrInvalidArrayType
		}
		keys := make([]string, 0, m.Value.Len())
		for _, e := range m.Value.Elems() {
			if e.Kind() != jsonvalue.String {
				return errkind.ErrInvalidStringType
			}
			keys = append(keys, e.Str())
		}
		deps[m.Key] = keys
	}
	ctx.get(self).DependentRequired = deps
	return nil
}

func parsePattern(ctx *Context, self Index, arg jsonvalue.Value) error {
	if arg.Kind() != jsonvalue.String {
		return errkind.ErrInvalidStringType
	}
	re, err := compileRegex(arg.Str())
	if err != nil {
		return err
	}
	ctx.get(self).Pattern = re
	return nil
}

func parseUniqueItems(ctx *Context, self Index, arg jsonvalue.Value) error {
	b, err := boolArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).UniqueItems = b
	return nil
}

func parseDefault(ctx *Context, self Index, arg jsonvalue.Value) error {
	ctx.get(self).Default = arg
	return nil
}

func parseExamples(ctx *Context, self Index, arg jsonvalue.Value) error {
	if arg.Kind() != jsonvalue.Array {
		return errkind.ErrInvalidArrayType
	}
	ctx.get(self).Examples = arg.Elems()
	return nil
}

func parseDeprecated(ctx *Context, self Index, arg jsonvalue.Value) error {
	b, err := boolArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).Deprecated = b
	return nil
}

func parseReadOnly(ctx *Context, self Index, arg jsonvalue.Value) error {
	b, err := boolArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).ReadOnly = b
	return nil
}

func parseWriteOnly(ctx *Context, self Index, arg jsonvalue.Value) error {
	b, err := boolArg(arg)
	if err != nil {
		return err
	}
	ctx.get(self).WriteOnly = b
	return nil
}

// parseFormat binds the named checker if one is registered.
// Unknown names parse successfully and assert nothing.
func parseFormat(ctx *Context, self Index, arg jsonvalue.Value) error {
	if arg.Kind() != jsonvalue.String {
		return errkind.ErrInvalidStringType
	}
	s := ctx.get(self)
	s.FormatName = arg.Str()
	if c, ok := format.Lookup(arg.Str()); ok {
		s.FormatCheck = c
	}
	return nil
}
