// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"net/mail"
	"net/netip"
	"strings"
	"sync"

	"golang.org/x/net/idna"
)

// checkIPv4 requires an IPv4 address in dotted-quad form.
func checkIPv4(s string) error {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return fmt.Errorf("%q is not a valid IPv4 address", s)
	}
	return nil
}

// checkIPv6 requires an IPv6 address without a zone.
func checkIPv6(s string) error {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is6() || addr.Zone() != "" {
		return fmt.Errorf("%q is not a valid IPv6 address", s)
	}
	return nil
}

// checkEmail requires an RFC 5321 mailbox.
func checkEmail(s string) error {
	// Defer the grammar to net/mail, which is closer to what
	// users expect than a literal RFC 5321 parse. RFC 5321
	// writes IPv6 literals as "[IPv6:...]", which net/mail
	// does not understand.
	addr, err := mail.ParseAddress(strings.Replace(s, "[IPv6:", "[", 1))
	if err != nil || addr.Name != "" {
		return fmt.Errorf("%q is not a valid email address", s)
	}

	// Non-ASCII belongs to idn-email, not email.
	if idx := strings.LastIndex(addr.Address, "@"); idx >= 0 {
		domain := addr.Address[idx+1:]
		if len(domain) > 0 && domain[0] != '[' {
			for i := range len(domain) {
				c := domain[i]
				switch {
				case c >= 'A' && c <= 'Z':
				case c >= 'a' && c <= 'z':
				case c >= '0' && c <= '9':
				case c == '.' || c == '-':
				default:
					return fmt.Errorf("%q is not a valid email address", s)
				}
			}
		}
	}
	return nil
}

// hostnameProfile returns the IDNA profile used for hostnames.
var hostnameProfile = sync.OnceValue(func() *idna.Profile {
	return idna.New(idna.ValidateForRegistration())
})

// checkHostname requires a valid hostname.
func checkHostname(s string) error {
	if !isValidHostname(s, false) {
		return fmt.Errorf("%q is not a valid hostname", s)
	}
	return nil
}

// checkIDNHostname requires a valid internationalized hostname.
func checkIDNHostname(s string) error {
	if !isValidHostname(s, true) {
		return fmt.Errorf("%q is not a valid internationalized hostname", s)
	}
	return nil
}

// isValidHostname reports whether s is a valid hostname.
// If idn is true, internationalized hostnames are permitted.
func isValidHostname(s string, idn bool) bool {
	if _, err := netip.ParseAddr(s); err == nil {
		// An IP address names a host.
		return true
	}

	// Underscores pass idna registration checks but are not
	// valid in hostnames.
	if strings.Contains(s, "_") {
		return false
	}

	if !idn {
		for i := range len(s) {
			if s[i]&0x80 != 0 {
				return false
			}
		}
	} else {
		// Permit all label separators (RFC 3490 section 3.1).
		s = strings.ReplaceAll(s, "。", ".")
		s = strings.ReplaceAll(s, "．", ".")
		s = strings.ReplaceAll(s, "｡", ".")
	}

	if _, err := hostnameProfile().ToASCII(s); err != nil {
		return false
	}
	return true
}
