// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errkind defines the flat enumeration of error kinds
// produced while parsing schemas and validating instances.
//
// Both phases short-circuit on the first error and propagate the
// kind upward unchanged, so a failed operation reports exactly one
// kind. Kinds are comparable errors: use errors.Is to test them
// through any wrapping applied at the API boundary.
package errkind

// Kind is one error kind. The zero Kind is not an error.
type Kind int

const (
	// ErrJSONParse reports that the underlying JSON (or YAML)
	// document could not be decoded.
	ErrJSONParse Kind = iota + 1

	// Schema-shape errors: a schema field held the wrong JSON kind.
	ErrInvalidInstanceType
	ErrInvalidNumberType
	ErrInvalidIntegerType
	ErrInvalidObjectType
	ErrInvalidStringType
	ErrInvalidArrayType
	ErrInvalidEnumType
	ErrExpectedArrayOrString

	// Regular-expression compilation errors.
	ErrRegexCreationFailed
	ErrRegexParser
	ErrRegexCompiler

	// Validation failures, one per keyword.
	ErrTypeValidationFailed
	ErrEnumValidationFailed
	ErrConstValidationFailed
	ErrMinLengthValidationFailed
	ErrMaxLengthValidationFailed
	ErrPatternValidationFailed
	ErrMinimumValidationFailed
	ErrMaximumValidationFailed
	ErrExclusiveMinValidationFailed
	ErrExclusiveMaxValidationFailed
	ErrMultipleOfValidationFailed
	ErrRequiredValidationFailed
	ErrMinPropertiesValidationFailed
	ErrMaxPropertiesValidationFailed
	ErrMinItemsValidationFailed
	ErrMaxItemsValidationFailed
	ErrMinContainsValidationFailed
	ErrMaxContainsValidationFailed
	ErrItemsValidationFailed
	ErrPrefixItemsValidationFailed
	ErrUniqueItemsValidationFailed
	ErrAllOfValidationFailed
	ErrAnyOfValidationFailed
	ErrOneOfValidationFailed
	ErrIfThenValidationFailed
	ErrIfElseValidationFailed
	ErrNotValidationFailed
	ErrDependentSchemasValidationFailed
	ErrDependentRequiredValidationFailed
	ErrAdditionalPropertiesValidationFailed
	ErrPropertyNamesValidationFailed
	ErrPatternPropertiesValidationFailed
	ErrContainsValidationFailed
	ErrFormatValidationFailed

	// ErrBoolSchemaFalse reports that the schema was the
	// literal false, which matches no instance.
	ErrBoolSchemaFalse

	// Reference-resolution errors.
	ErrRefNonSchema
	ErrRefSchemaNotFound
	ErrRefPathNotFoundInDefs

	ErrAllocation

	numKinds
)

var messages = [numKinds]string{
	ErrJSONParse:                            "JSON parse error",
	ErrInvalidInstanceType:                  "invalid instance type in schema",
	ErrInvalidNumberType:                    "schema field is not a number",
	ErrInvalidIntegerType:                   "schema field is not a non-negative integer",
	ErrInvalidObjectType:                    "schema field is not an object",
	ErrInvalidStringType:                    "schema field is not a string",
	ErrInvalidArrayType:                     "schema field is not an array",
	ErrInvalidEnumType:                      "enum is not an array",
	ErrExpectedArrayOrString:                "schema field is neither an array nor a string",
	ErrRegexCreationFailed:                  "regex creation failed",
	ErrRegexParser:                          "regex parse error",
	ErrRegexCompiler:                        "regex compile error",
	ErrTypeValidationFailed:                 "type validation failed",
	ErrEnumValidationFailed:                 "enum validation failed",
	ErrConstValidationFailed:                "const validation failed",
	ErrMinLengthValidationFailed:            "minLength validation failed",
	ErrMaxLengthValidationFailed:            "maxLength validation failed",
	ErrPatternValidationFailed:              "pattern validation failed",
	ErrMinimumValidationFailed:              "minimum validation failed",
	ErrMaximumValidationFailed:              "maximum validation failed",
	ErrExclusiveMinValidationFailed:         "exclusiveMinimum validation failed",
	ErrExclusiveMaxValidationFailed:         "exclusiveMaximum validation failed",
	ErrMultipleOfValidationFailed:           "multipleOf validation failed",
	ErrRequiredValidationFailed:             "required validation failed",
	ErrMinPropertiesValidationFailed:        "minProperties validation failed",
	ErrMaxPropertiesValidationFailed:        "maxProperties validation failed",
	ErrMinItemsValidationFailed:             "minItems validation failed",
	ErrMaxItemsValidationFailed:             "maxItems validation failed",
	ErrMinContainsValidationFailed:          "minContains validation failed",
	ErrMaxContainsValidationFailed:          "maxContains validation failed",
	ErrItemsValidationFailed:                "items validation failed",
	ErrPrefixItemsValidationFailed:          "prefixItems validation failed",
	ErrUniqueItemsValidationFailed:          "uniqueItems validation failed",
	ErrAllOfValidationFailed:                "allOf validation failed",
	ErrAnyOfValidationFailed:                "anyOf validation failed",
	ErrOneOfValidationFailed:                "oneOf validation failed",
	ErrIfThenValidationFailed:               "if/then validation failed",
	ErrIfElseValidationFailed:               "if/else validation failed",
	ErrNotValidationFailed:                  "not validation failed",
	ErrDependentSchemasValidationFailed:     "dependentSchemas validation failed",
	ErrDependentRequiredValidationFailed:    "dependentRequired validation failed",
	ErrAdditionalPropertiesValidationFailed: "additionalProperties validation failed",
	ErrPropertyNamesValidationFailed:        "propertyNames validation failed",
	ErrPatternPropertiesValidationFailed:    "patternProperties validation failed",
	ErrContainsValidationFailed:             "contains validation failed",
	ErrFormatValidationFailed:               "format validation failed",
	ErrBoolSchemaFalse:                      "false schema never matches",
	ErrRefNonSchema:                         "$ref does not point at a schema",
	ErrRefSchemaNotFound:                    "$ref schema not found",
	ErrRefPathNotFoundInDefs:                "$ref path not found in $defs",
	ErrAllocation:                           "allocation error",
}

// Error returns the message for the kind.
// This implements the error interface.
func (k Kind) Error() string {
	if k <= 0 || k >= numKinds {
		return "unknown error kind"
	}
	return messages[k]
}

// IsValidationFailure reports whether k is a validation failure,
// as opposed to an error in the schema itself.
func (k Kind) IsValidationFailure() bool {
	return (k >= ErrTypeValidationFailed && k <= ErrFormatValidationFailed) || k == ErrBoolSchemaFalse
}
