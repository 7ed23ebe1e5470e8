// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format defines checkers for the format keyword.
//
// A checker receives the instance string and returns an error when
// the string does not satisfy the named format. Unknown format
// names are not an error: a schema using one parses fine and
// asserts nothing, as draft 2020-12 requires.
package format

// Checker reports whether a string satisfies a format.
type Checker func(string) error

// checkers maps format names to their checkers.
var checkers = map[string]Checker{
	"date":                  checkDate,
	"date-time":             checkDateTime,
	"time":                  checkTime,
	"duration":              checkDuration,
	"email":                 checkEmail,
	"hostname":              checkHostname,
	"idn-hostname":          checkIDNHostname,
	"ipv4":                  checkIPv4,
	"ipv6":                  checkIPv6,
	"uuid":                  checkUUID,
	"uri":                   checkURI,
	"uri-reference":         checkURIReference,
	"json-pointer":          checkJSONPointer,
	"relative-json-pointer": checkRelativeJSONPointer,
	"regex":                 checkRegex,
}

// Lookup returns the checker registered for name.
// The bool result reports whether the name is known.
func Lookup(name string) (Checker, bool) {
	c, ok := checkers[name]
	return c, ok
}

// RegisterChecker registers a checker for a format name,
// replacing any existing checker for that name.
// It must not be called concurrently with schema parsing.
func RegisterChecker(name string, c Checker) {
	checkers[name] = c
}
