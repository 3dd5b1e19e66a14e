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

package uri

import (
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies the syntax-based normalization of RFC 3986,
// Section 6.2.2 to the parsed components, in place: the host of a
// registered name is lowercased and mapped through IDNA to its canonical
// ASCII form, decoded components are put into Unicode Normalization Form C,
// and dot segments are removed from the path. IP-literal hosts are left
// untouched. Scheme-based normalization (default ports and the like) is out
// of scope; the package has no knowledge of individual schemes.
func (u *URI) Normalize() {
	if !strings.HasPrefix(u.host, "[") {
		host := strings.ToLower(norm.NFC.String(u.host))
		// Percent-decoding may have put non-ASCII labels into the host;
		// IDNA maps them to the canonical xn-- form. Hosts it cannot map
		// (decoded sub-delims and the like) are kept lowercased as-is.
		if asciiHost, err := idna.ToASCII(host); err == nil {
			host = asciiHost
		}
		u.host = host
	}
	u.userInfo = norm.NFC.String(u.userInfo)
	u.query = norm.NFC.String(u.query)
	u.fragment = norm.NFC.String(u.fragment)
	for i, segment := range u.path {
		u.path[i] = norm.NFC.String(segment)
	}
	u.NormalizePath()
}
