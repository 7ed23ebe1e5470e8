// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"strings"

	"github.com/altshiftab/jsval/pkg/errkind"
)

// resolveRefs fuses every pending $ref with its target.
//
// Only relative fragment pointers into $defs are supported:
// "#", or "#/$defs/<name>" followed by any number of further
// segments descending through OtherKeys of the named schema.
// The referrer record is overwritten with a copy of the target,
// keeping the referrer's Name (a property child must keep its
// key) and its original Ref string. After a successful pass no
// indirection remains: validating a fused record never follows
// a reference.
func resolveRefs(ctx *Context, root Index) error {
	rootSchema := ctx.get(root)
	for _, pr := range ctx.pending {
		segs := strings.Split(pr.path, "/")
		if segs[0] != "#" {
			return errkind.ErrRefSchemaNotFound
		}
		if len(segs) == 1 {
			// A bare "#" refers to the root; the referrer is
			// left alone.
			continue
		}
		if segs[1] != "$defs" {
			return errkind.ErrRefNonSchema
		}
		if len(segs) == 2 || rootSchema.Defs == nil {
			return errkind.ErrRefPathNotFoundInDefs
		}
		target, ok := rootSchema.Defs[decodePointerToken(segs[2])]
		if !ok {
			return errkind.ErrRefPathNotFoundInDefs
		}
		for _, seg := range segs[3:] {
			next, ok := ctx.get(target).OtherKeys[decodePointerToken(seg)]
			if !ok {
				return errkind.ErrRefPathNotFoundInDefs
			}
			target = next
		}

		r := ctx.get(pr.referrer)
		name, ref := r.Name, r.Ref
		*r = *ctx.get(target)
		r.Name, r.Ref = name, ref
	}
	ctx.pending = ctx.pending[:0]
	return nil
}

// decodePointerToken unmangles a JSON pointer token.
func decodePointerToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	return strings.ReplaceAll(tok, "~0", "~")
}
