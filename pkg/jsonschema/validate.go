// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"math"
	"unicode/utf8"

	"github.com/altshiftab/jsval/pkg/errkind"
	"github.com/altshiftab/jsval/pkg/jsonvalue"
	"github.com/altshiftab/jsval/pkg/keyword"
)

// validateSchema checks an instance against the schema at idx,
// returning the first failing keyword's error kind.
//
// Only the keywords whose flag bits are set are dispatched, in
// keyword order, so a schema pays nothing for keywords it does
// not use.
func validateSchema(ctx *Context, idx Index, instance jsonvalue.Value) error {
	s := ctx.get(idx)
	if s.BoolSchema {
		if s.BoolValue {
			return nil
		}
		return errkind.ErrBoolSchemaFalse
	}
	for k := range s.Flags.All() {
		e := &dispatchTable[k]
		if e.validate == nil {
			continue
		}
		if err := e.validate(ctx, s, instance); err != nil {
			return err
		}
	}
	return nil
}

// matchesType reports whether the instance's runtime kind
// satisfies one declared type. An integer satisfies number, and
// a float with a zero fractional part satisfies integer.
func matchesType(t InstanceType, v jsonvalue.Value) bool {
	switch t {
	case NullType:
		return v.Kind() == jsonvalue.Null
	case BooleanType:
		return v.Kind() == jsonvalue.Bool
	case ObjectType:
		return v.Kind() == jsonvalue.Object
	case ArrayType:
		return v.Kind() == jsonvalue.Array
	case NumberType:
		return v.Kind() == jsonvalue.Int || v.Kind() == jsonvalue.Float
	case IntegerType:
		return v.IsIntegral()
	case StringType:
		return v.Kind() == jsonvalue.String
	default:
		return false
	}
}

// validateType implements the type keyword. For a type union,
// any one match suffices.
func validateType(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	for _, t := range s.Types {
		if matchesType(t, instance) {
			return nil
		}
	}
	return errkind.ErrTypeValidationFailed
}

// validateEnum implements the enum keyword.
func validateEnum(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	for _, e := range s.Enums {
		if jsonvalue.Equal(instance, e) {
			return nil
		}
	}
	return errkind.ErrEnumValidationFailed
}

// validateConst implements the const keyword.
func validateConst(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if !jsonvalue.Equal(instance, s.Const) {
		return errkind.ErrConstValidationFailed
	}
	return nil
}

// validateMaxLength implements the maxLength keyword. String
// length is counted in Unicode code points.
func validateMaxLength(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.String {
		return nil
	}
	if utf8.RuneCountInString(instance.Str()) > s.MaxLength {
		return errkind.ErrMaxLengthValidationFailed
	}
	return nil
}

// validateMinLength implements the minLength keyword.
func validateMinLength(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.String {
		return nil
	}
	if utf8.RuneCountInString(instance.Str()) < s.MinLength {
		return errkind.ErrMinLengthValidationFailed
	}
	return nil
}

// validatePattern implements the pattern keyword. The match is
// unanchored: the pattern is a substring test.
func validatePattern(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.String {
		return nil
	}
	if !s.Pattern.MatchString(instance.Str()) {
		return errkind.ErrPatternValidationFailed
	}
	return nil
}

// isNumber reports whether the instance is numeric.
func isNumber(v jsonvalue.Value) bool {
	return v.Kind() == jsonvalue.Int || v.Kind() == jsonvalue.Float
}

// validateMinimum implements the minimum keyword.
func validateMinimum(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if !isNumber(instance) {
		return nil
	}
	if instance.Number() < s.Minimum {
		return errkind.ErrMinimumValidationFailed
	}
	return nil
}

// validateMaximum implements the maximum keyword.
func validateMaximum(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if !isNumber(instance) {
		return nil
	}
	if instance.Number() > s.Maximum {
		return errkind.ErrMaximumValidationFailed
	}
	return nil
}

// validateExclusiveMinimum implements the exclusiveMinimum keyword.
func validateExclusiveMinimum(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if !isNumber(instance) {
		return nil
	}
	if instance.Number() <= s.ExclusiveMin {
		return errkind.ErrExclusiveMinValidationFailed
	}
	return nil
}

// validateExclusiveMaximum implements the exclusiveMaximum keyword.
func validateExclusiveMaximum(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if !isNumber(instance) {
		return nil
	}
	if instance.Number() >= s.ExclusiveMax {
		return errkind.ErrExclusiveMaxValidationFailed
	}
	return nil
}

// validateMultipleOf implements the multipleOf keyword. When both
// operands are integral the check uses exact integer arithmetic;
// otherwise the floating quotient's fractional part must be
// exactly zero.
func validateMultipleOf(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if !isNumber(instance) {
		return nil
	}
	m := s.MultipleOf
	if instance.IsIntegral() && m == math.Trunc(m) && m != 0 {
		var iv int64
		if instance.Kind() == jsonvalue.Int {
			iv = instance.Int()
		} else {
			iv = int64(instance.Float())
		}
		if iv%int64(m) != 0 {
			return errkind.ErrMultipleOfValidationFailed
		}
		return nil
	}
	q := instance.Number() / m
	if q != math.Trunc(q) {
		return errkind.ErrMultipleOfValidationFailed
	}
	return nil
}

// validateRequired implements the required keyword.
func validateRequired(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Object {
		return nil
	}
	for _, key := range s.Required {
		if !instance.HasMember(key) {
			return errkind.ErrRequiredValidationFailed
		}
	}
	return nil
}

// validateMaxProperties implements the maxProperties keyword.
func validateMaxProperties(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Object {
		return nil
	}
	if instance.Len() > s.MaxProperties {
		return errkind.ErrMaxPropertiesValidationFailed
	}
	return nil
}

// validateMinProperties implements the minProperties keyword.
func validateMinProperties(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Object {
		return nil
	}
	if instance.Len() < s.MinProperties {
		return errkind.ErrMinPropertiesValidationFailed
	}
	return nil
}

// validateMaxItems implements the maxItems keyword.
func validateMaxItems(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Array {
		return nil
	}
	if instance.Len() > s.MaxItems {
		return errkind.ErrMaxItemsValidationFailed
	}
	return nil
}

// validateMinItems implements the minItems keyword. Failure is
// length strictly less than the bound.
func validateMinItems(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Array {
		return nil
	}
	if instance.Len() < s.MinItems {
		return errkind.ErrMinItemsValidationFailed
	}
	return nil
}

// validateUniqueItems implements the uniqueItems keyword.
func validateUniqueItems(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if !s.UniqueItems || instance.Kind() != jsonvalue.Array {
		return nil
	}
	elems := instance.Elems()
	for i := 1; i < len(elems); i++ {
		for j := 0; j < i; j++ {
			if jsonvalue.Equal(elems[i], elems[j]) {
				return errkind.ErrUniqueItemsValidationFailed
			}
		}
	}
	return nil
}

// validateProperties implements the properties keyword. A child
// failure propagates unchanged, so the reported kind names the
// keyword that actually failed.
func validateProperties(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Object {
		return nil
	}
	for _, ci := range s.PropertiesChildren {
		child := ctx.get(ci)
		if val, ok := instance.Member(child.Name); ok {
			if err := validateSchema(ctx, ci, val); err != nil {
				return err
			}
		}
	}
	return nil
}

// validatePatternProperties implements the patternProperties
// keyword.
func validatePatternProperties(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Object {
		return nil
	}
	for i, re := range s.PatternRegex {
		for _, m := range instance.Members() {
			if !re.MatchString(m.Key) {
				continue
			}
			if err := validateSchema(ctx, s.PatternProperties[i], m.Value); err != nil {
				return errkind.ErrPatternPropertiesValidationFailed
			}
		}
	}
	return nil
}

// validateAdditionalProperties implements the
// additionalProperties keyword: it applies to every instance key
// matched neither by a properties child name nor by a
// patternProperties regex.
func validateAdditionalProperties(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Object {
		return nil
	}
member:
	for _, m := range instance.Members() {
		for _, ci := range s.PropertiesChildren {
			if ctx.get(ci).Name == m.Key {
				continue member
			}
		}
		for _, re := range s.PatternRegex {
			if re.MatchString(m.Key) {
				continue member
			}
		}
		if err := validateSchema(ctx, s.AdditionalProperties, m.Value); err != nil {
			return errkind.ErrAdditionalPropertiesValidationFailed
		}
	}
	return nil
}

// validatePropertyNames implements the propertyNames keyword:
// every key, taken as a string instance, must validate.
func validatePropertyNames(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Object {
		return nil
	}
	for _, m := range instance.Members() {
		if err := validateSchema(ctx, s.PropertyNames, jsonvalue.MakeString(m.Key)); err != nil {
			return errkind.ErrPropertyNamesValidationFailed
		}
	}
	return nil
}

// validateContains implements contains together with its
// neighbors minContains and maxContains. The defaults are one and
// unbounded; minContains zero makes an empty array valid.
func validateContains(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Array {
		return nil
	}
	count := 0
	for _, e := range instance.Elems() {
		if validateSchema(ctx, s.Contains, e) == nil {
			count++
		}
	}
	min := 1
	if s.Flags.Has(keyword.MinContains) {
		min = s.MinContains
	}
	if count < min {
		return errkind.ErrMinContainsValidationFailed
	}
	if s.Flags.Has(keyword.MaxContains) && count > s.MaxContains {
		return errkind.ErrMaxContainsValidationFailed
	}
	return nil
}

// validatePrefixItems implements the prefixItems keyword:
// element i of the instance validates against prefix schema i.
func validatePrefixItems(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Array {
		return nil
	}
	for i, ci := range s.PrefixItems {
		if i >= instance.Len() {
			break
		}
		if err := validateSchema(ctx, ci, instance.Elem(i)); err != nil {
			return errkind.ErrPrefixItemsValidationFailed
		}
	}
	return nil
}

// validateItems implements the items keyword. It constrains the
// elements beyond the prefixItems prefix; with no prefixItems it
// constrains every element.
func validateItems(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Array {
		return nil
	}
	for i := len(s.PrefixItems); i < instance.Len(); i++ {
		if err := validateSchema(ctx, s.Items, instance.Elem(i)); err != nil {
			return errkind.ErrItemsValidationFailed
		}
	}
	return nil
}

// validateAllOf implements the allOf keyword.
func validateAllOf(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	for _, ci := range s.AllOf {
		if err := validateSchema(ctx, ci, instance); err != nil {
			return errkind.ErrAllOfValidationFailed
		}
	}
	return nil
}

// validateAnyOf implements the anyOf keyword.
func validateAnyOf(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	for _, ci := range s.AnyOf {
		if validateSchema(ctx, ci, instance) == nil {
			return nil
		}
	}
	return errkind.ErrAnyOfValidationFailed
}

// validateOneOf implements the oneOf keyword: exactly one
// subschema must match.
func validateOneOf(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	count := 0
	for _, ci := range s.OneOf {
		if validateSchema(ctx, ci, instance) == nil {
			count++
		}
	}
	if count != 1 {
		return errkind.ErrOneOfValidationFailed
	}
	return nil
}

// validateNot implements the not keyword.
func validateNot(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if validateSchema(ctx, s.Not, instance) == nil {
		return errkind.ErrNotValidationFailed
	}
	return nil
}

// validateIfThenElse implements if together with its neighbors
// then and else. A then or else keyword without if has no effect.
func validateIfThenElse(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if validateSchema(ctx, s.If, instance) == nil {
		if s.Flags.Has(keyword.Then) {
			if err := validateSchema(ctx, s.Then, instance); err != nil {
				return errkind.ErrIfThenValidationFailed
			}
		}
		return nil
	}
	if s.Flags.Has(keyword.Else) {
		if err := validateSchema(ctx, s.Else, instance); err != nil {
			return errkind.ErrIfElseValidationFailed
		}
	}
	return nil
}

// validateDependentSchemas implements the dependentSchemas
// keyword: when the trigger key is present, the whole instance
// must validate against the child.
func validateDependentSchemas(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Object {
		return nil
	}
	for _, ci := range s.DependentSchemas {
		if !instance.HasMember(ctx.get(ci).Name) {
			continue
		}
		if err := validateSchema(ctx, ci, instance); err != nil {
			return errkind.ErrDependentSchemasValidationFailed
		}
	}
	return nil
}

// validateDependentRequired implements the dependentRequired
// keyword.
func validateDependentRequired(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if instance.Kind() != jsonvalue.Object {
		return nil
	}
	for trigger, keys := range s.DependentRequired {
		if !instance.HasMember(trigger) {
			continue
		}
		for _, key := range keys {
			if !instance.HasMember(key) {
				return errkind.ErrDependentRequiredValidationFailed
			}
		}
	}
	return nil
}

// validateFormat implements the format keyword. Only strings are
// checked, and only when a checker is registered for the name.
func validateFormat(ctx *Context, s *Schema, instance jsonvalue.Value) error {
	if s.FormatCheck == nil || instance.Kind() != jsonvalue.String {
		return nil
	}
	if s.FormatCheck(instance.Str()) != nil {
		return errkind.ErrFormatValidationFailed
	}
	return nil
}
