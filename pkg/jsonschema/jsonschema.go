// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/altshiftab/jsval/pkg/errkind"
	"github.com/altshiftab/jsval/pkg/jsonvalue"
)

// ParseSchemaFromString parses a JSON schema document and
// returns the index of its root record. The first schema parsed
// into a context becomes ctx.Root.
func (ctx *Context) ParseSchemaFromString(text string) (Index, error) {
	v, err := jsonvalue.DecodeString(text)
	if err != nil {
		return 0, motmedelErrors.NewWithTrace(fmt.Errorf("json decode: %w: %w", errkind.ErrJSONParse, err))
	}
	return ctx.ParseSchemaFromValue(v)
}

// ParseSchemaFromValue is ParseSchemaFromString for an
// already-decoded JSON value. The schema records borrow from v
// (const, enum and similar raw values), so v must stay alive as
// long as the context.
func (ctx *Context) ParseSchemaFromValue(v jsonvalue.Value) (Index, error) {
	idx, err := parseSchemaValue(ctx, v)
	if err != nil {
		return 0, motmedelErrors.NewWithTrace(fmt.Errorf("parse schema: %w", err))
	}
	if !ctx.haveRoot {
		ctx.Root = idx
		ctx.haveRoot = true
	}
	return idx, nil
}

// ResolveRefs resolves every $ref recorded while parsing,
// rewriting each referrer in place. It must run after the root
// schema is parsed and before validation; afterwards the context
// is finalized and safe for concurrent validation.
func (ctx *Context) ResolveRefs(root Index) error {
	if err := resolveRefs(ctx, root); err != nil {
		return motmedelErrors.NewWithTrace(fmt.Errorf("resolve refs: %w", err))
	}
	return nil
}

// ValidateString validates a JSON instance document against the
// schema at root. A nil result means the instance conforms; a
// validation failure is the errkind.Kind of the first failing
// keyword.
func (ctx *Context) ValidateString(text string, root Index) error {
	v, err := jsonvalue.DecodeString(text)
	if err != nil {
		return motmedelErrors.NewWithTrace(fmt.Errorf("json decode: %w: %w", errkind.ErrJSONParse, err))
	}
	return ctx.ValidateValue(v, root)
}

// ValidateValue is ValidateString for an already-decoded value.
func (ctx *Context) ValidateValue(v jsonvalue.Value, root Index) error {
	return validateSchema(ctx, root, v)
}
