// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"errors"
	"slices"
	"testing"

	"github.com/altshiftab/jsval/pkg/errkind"
	"github.com/altshiftab/jsval/pkg/keyword"
)

const refSchema = `{
	"$defs": {
		"personal": {
			"address": {
				"type": "object",
				"properties": {"street": {"type": "string"}}
			}
		}
	},
	"properties": {"home": {"$ref": "#/$defs/personal/address"}}
}`

func TestResolveRefsThroughOtherKeys(t *testing.T) {
	ctx := NewContext(8)
	root := mustParse(t, ctx, refSchema)
	if err := ctx.ResolveRefs(root); err != nil {
		t.Fatalf("ResolveRefs: %v", err)
	}

	rootSchema := ctx.get(root)
	if len(rootSchema.PropertiesChildren) != 1 {
		t.Fatalf("got %d properties children, want 1", len(rootSchema.PropertiesChildren))
	}
	home := ctx.get(rootSchema.PropertiesChildren[0])

	personal, ok := rootSchema.Defs["personal"]
	if !ok {
		t.Fatal("personal not in $defs")
	}
	address := ctx.get(ctx.get(personal).OtherKeys["address"])

	// The referrer keeps its name and ref, and adopts every
	// other field of the target.
	if home.Name != "home" {
		t.Errorf("fused Name = %q, want home", home.Name)
	}
	if home.Ref != "#/$defs/personal/address" {
		t.Errorf("fused Ref = %q", home.Ref)
	}
	if home.Flags != address.Flags {
		t.Errorf("fused Flags = %v, want %v", home.Flags, address.Flags)
	}
	if !slices.Equal(home.Types, address.Types) {
		t.Errorf("fused Types = %v, want %v", home.Types, address.Types)
	}
	if !slices.Equal(home.PropertiesChildren, address.PropertiesChildren) {
		t.Errorf("fused PropertiesChildren = %v, want %v", home.PropertiesChildren, address.PropertiesChildren)
	}

	// End-to-end: the fused child validates like the target.
	if err := ctx.ValidateString(`{"home": {"street": "Main"}}`, root); err != nil {
		t.Errorf("valid instance: %v", err)
	}
	err := ctx.ValidateString(`{"home": {"street": 42}}`, root)
	if !errors.Is(err, errkind.ErrTypeValidationFailed) {
		t.Errorf("invalid instance: got %v, want %v", err, errkind.ErrTypeValidationFailed)
	}
}

func TestResolveRefsDirectDef(t *testing.T) {
	ctx := NewContext(8)
	root := mustParse(t, ctx, `{
		"$defs": {"positive": {"type": "integer", "minimum": 1}},
		"properties": {"count": {"$ref": "#/$defs/positive"}}
	}`)
	if err := ctx.ResolveRefs(root); err != nil {
		t.Fatalf("ResolveRefs: %v", err)
	}
	if err := ctx.ValidateString(`{"count": 3}`, root); err != nil {
		t.Errorf("valid instance: %v", err)
	}
	err := ctx.ValidateString(`{"count": 0}`, root)
	if !errors.Is(err, errkind.ErrMinimumValidationFailed) {
		t.Errorf("invalid instance: got %v, want %v", err, errkind.ErrMinimumValidationFailed)
	}
}

func TestResolveRefsBareFragment(t *testing.T) {
	// A bare "#" leaves the referrer alone.
	ctx := NewContext(8)
	root := mustParse(t, ctx, `{"properties": {"self": {"$ref": "#"}}}`)
	if err := ctx.ResolveRefs(root); err != nil {
		t.Fatalf("ResolveRefs: %v", err)
	}
	child := ctx.get(ctx.get(root).PropertiesChildren[0])
	if !child.Flags.Has(keyword.Ref) || child.Flags.Len() != 1 {
		t.Errorf("bare # referrer flags = %v, want only $ref", child.Flags)
	}
}

func TestResolveRefsErrors(t *testing.T) {
	tests := []struct {
		text string
		want errkind.Kind
	}{
		{`{"$defs": {"a": {}}, "properties": {"p": {"$ref": "https://example.com/x"}}}`, errkind.ErrRefSchemaNotFound},
		{`{"$defs": {"a": {}}, "properties": {"p": {"$ref": "#/properties/a"}}}`, errkind.ErrRefNonSchema},
		{`{"$defs": {"a": {}}, "properties": {"p": {"$ref": "#/$defs/missing"}}}`, errkind.ErrRefPathNotFoundInDefs},
		{`{"$defs": {"a": {}}, "properties": {"p": {"$ref": "#/$defs/a/missing"}}}`, errkind.ErrRefPathNotFoundInDefs},
		{`{"$defs": {"a": {}}, "properties": {"p": {"$ref": "#/$defs"}}}`, errkind.ErrRefPathNotFoundInDefs},
		{`{"properties": {"p": {"$ref": "#/$defs/a"}}}`, errkind.ErrRefPathNotFoundInDefs},
	}
	for _, test := range tests {
		ctx := NewContext(8)
		root := mustParse(t, ctx, test.text)
		err := resolveRefs(ctx, root)
		if !errors.Is(err, test.want) {
			t.Errorf("ResolveRefs of %s: got %v, want %v", test.text, err, test.want)
		}
	}
}

func TestResolveRefsEscapedPointerToken(t *testing.T) {
	ctx := NewContext(8)
	root := mustParse(t, ctx, `{
		"$defs": {"a/b": {"type": "string"}},
		"properties": {"p": {"$ref": "#/$defs/a~1b"}}
	}`)
	if err := ctx.ResolveRefs(root); err != nil {
		t.Fatalf("ResolveRefs: %v", err)
	}
	if err := ctx.ValidateString(`{"p": "ok"}`, root); err != nil {
		t.Errorf("valid instance: %v", err)
	}
	err := ctx.ValidateString(`{"p": 1}`, root)
	if !errors.Is(err, errkind.ErrTypeValidationFailed) {
		t.Errorf("invalid instance: got %v, want %v", err, errkind.ErrTypeValidationFailed)
	}
}
