/*
Copyright 2026 Skiff Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package uri parses, validates, decodes, normalizes, and compares Uniform
// Resource Identifiers as defined by RFC 3986.
//
// A URI is a plain value with no I/O behind it: Parse consumes a string and
// either produces the structured components (scheme, user information, host,
// port, path segments, query, fragment) or rejects the string as malformed.
// All components are stored percent-decoded; the character-set grammar is
// checked before decoding, so no disallowed character combination survives
// into any component.
//
// Key behaviors:
//   - The path is a sequence of decoded segments. An empty sequence means no
//     path at all; a leading empty segment marks an absolute path.
//   - NormalizePath applies the remove-dot-segments algorithm of RFC 3986,
//     Section 5.2.4. Normalize additionally canonicalizes the host.
//   - Equal compares scheme and host case-insensitively and everything else
//     exactly. It does not normalize; normalize both sides first to test
//     equivalence in the sense of RFC 3986, Section 6.2.2.
//   - An absent query and a present-but-empty query both read back as "";
//     the same holds for the fragment.
//
// A URI value is not safe for concurrent mutation; read-only use of a
// settled value may be shared freely between goroutines.
package uri

import (
	"slices"
	"strings"
)

// URI holds the decoded components of a parsed URI reference.
// The zero value is unspecified until a parse succeeds; after a failed
// parse the value is partially overwritten and must not be used.
type URI struct {
	scheme   string
	userInfo string
	host     string
	hasPort  bool
	port     uint16
	path     []string
	query    string
	fragment string
}

// Parse parses and validates s as a URI reference, either absolute or
// relative. There is no partial success: any rejected component voids the
// whole parse. The error is a *ParseError wrapping one of the sentinel
// reasons in this package.
func Parse(s string) (*URI, error) {
	u := new(URI)
	if err := u.parse(s); err != nil {
		return nil, newParseError(err)
	}
	return u, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parsing into an
// existing value overwrites every component; nothing from a previous parse
// survives. If parsing fails the receiver is partially overwritten and must
// not be used.
func (u *URI) UnmarshalText(text []byte) error {
	if err := u.parse(string(text)); err != nil {
		return newParseError(err)
	}
	return nil
}

// Scheme returns the scheme component, case-normalized to lower case, or ""
// if the reference is relative.
func (u *URI) Scheme() string {
	return u.scheme
}

// UserInfo returns the decoded user information component, or "" if absent.
func (u *URI) UserInfo() string {
	return u.userInfo
}

// Host returns the decoded host component in the letter case it appeared
// in the input. It is "" both for an empty host ("///") and when the URI
// has no authority at all.
func (u *URI) Host() string {
	return u.host
}

// HasPort reports whether the authority carried a non-empty port.
func (u *URI) HasPort() bool {
	return u.hasPort
}

// Port returns the port number. It is meaningful only when HasPort reports
// true.
func (u *URI) Port() uint16 {
	return u.port
}

// Path returns a copy of the decoded path segments. An empty result means
// the URI has no path; a leading empty segment means the path is absolute.
func (u *URI) Path() []string {
	return slices.Clone(u.path)
}

// Query returns the decoded query component. An absent query and an empty
// one are not distinguished; both return "".
func (u *URI) Query() string {
	return u.query
}

// Fragment returns the decoded fragment component, with the same
// absent-versus-empty conflation as Query.
func (u *URI) Fragment() string {
	return u.fragment
}

// IsRelativeReference reports whether the URI is a relative reference,
// that is, whether it has no scheme.
func (u *URI) IsRelativeReference() bool {
	return u.scheme == ""
}

// ContainsRelativePath reports whether the path is relative: true when the
// path is empty or its first segment is not the absolute-path marker.
func (u *URI) ContainsRelativePath() bool {
	return len(u.path) == 0 || u.path[0] != ""
}

// Equal reports whether u and other hold the same components. The scheme
// and host compare case-insensitively; every other component compares
// exactly, the path segment for segment. No normalization is implied:
// normalize both sides first to detect equivalence of spellings that only
// differ in dot segments.
func (u *URI) Equal(other *URI) bool {
	return strings.EqualFold(u.scheme, other.scheme) &&
		u.userInfo == other.userInfo &&
		strings.EqualFold(u.host, other.host) &&
		u.hasPort == other.hasPort &&
		u.port == other.port &&
		slices.Equal(u.path, other.path) &&
		u.query == other.query &&
		u.fragment == other.fragment
}
