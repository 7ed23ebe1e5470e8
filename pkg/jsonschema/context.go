// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// pendingRef is a $ref recorded during parsing, resolved later
// by ResolveRefs.
type pendingRef struct {
	referrer Index
	path     string
}

// Context owns a pool of schema records, the list of pending
// references, and the index of the root schema.
//
// A Context is single-threaded while schemas are being parsed.
// Once ResolveRefs has run and no further schemas are added, the
// pool is read-only and any number of goroutines may validate
// against it concurrently.
type Context struct {
	arena   []*Schema
	pending []pendingRef

	// Root is the index of the root schema, set by
	// ParseSchemaFromString and friends for the first schema
	// parsed into the context.
	Root Index

	haveRoot bool
}

// NewContext returns a Context whose pool has room for capacity
// records before it grows.
func NewContext(capacity int) *Context {
	if capacity < 0 {
		capacity = 0
	}
	return &Context{
		arena:   make([]*Schema, 0, capacity),
		pending: make([]pendingRef, 0, capacity),
	}
}

// alloc appends a zero record to the pool and returns its index.
// Records are stored behind pointers, so growing the backing
// slice never moves a record: an index stays valid for the life
// of the context.
func (ctx *Context) alloc() (Index, *Schema) {
	s := new(Schema)
	ctx.arena = append(ctx.arena, s)
	return Index(len(ctx.arena) - 1), s
}

// get returns the record at index i.
func (ctx *Context) get(i Index) *Schema {
	return ctx.arena[i]
}

// size returns the number of records in the pool.
func (ctx *Context) size() int {
	return len(ctx.arena)
}

// recordPendingRef queues a $ref for resolution.
func (ctx *Context) recordPendingRef(referrer Index, path string) {
	ctx.pending = append(ctx.pending, pendingRef{referrer: referrer, path: path})
}
