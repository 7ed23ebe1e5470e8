// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"
)

// checkURI requires an absolute URI.
func checkURI(s string) error {
	uri, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("%q is not a valid URI: %v", s, err)
	}
	if !uri.IsAbs() {
		return fmt.Errorf("%q is not an absolute URI", s)
	}
	if !checkParsedURI(uri) {
		return fmt.Errorf("%q is not a valid URI", s)
	}
	return nil
}

// checkURIReference requires a URI or a URI reference.
func checkURIReference(s string) error {
	// Something that looks like an absolute Windows path
	// should not parse as a relative reference.
	if strings.HasPrefix(s, `\\`) {
		return fmt.Errorf(`%q starts with \\`, s)
	}
	uri, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("%q is not a valid URI reference: %v", s, err)
	}
	if !checkParsedURI(uri) {
		return fmt.Errorf("%q is not a valid URI reference", s)
	}
	return nil
}

// checkParsedURI applies checks beyond what url.Parse rejects.
func checkParsedURI(uri *url.URL) bool {
	// A bare IPv6 address host must be in square brackets;
	// the colons otherwise confuse the parse.
	if addr, err := netip.ParseAddr(uri.Host); err == nil && addr.Is6() {
		return false
	}

	// Backslashes are not valid in fragments.
	if strings.Contains(uri.Fragment, `\`) {
		return false
	}

	for i := range uri.RawPath {
		c := uri.RawPath[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}
		switch c {
		case '-', '_', '.', '~', '@', '&', '=', '+', '$', '/', ';', ',', '(', ')', '#':
		default:
			return false
		}
	}
	return true
}
