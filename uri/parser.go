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

import "strings"

// parse runs the full parsing pipeline over s, overwriting every component
// of u. It fails on the first stage that rejects its input; on failure the
// receiver is partially overwritten and must not be used.
func (u *URI) parse(s string) error {
	// Limit the scheme search to the text before the first slash, so a
	// colon inside the authority or a path segment is never taken for the
	// scheme delimiter.
	authorityOrPathStart := strings.IndexByte(s, '/')
	if authorityOrPathStart == -1 {
		authorityOrPathStart = len(s)
	}
	rest := s
	u.scheme = ""
	if schemeEnd := strings.IndexByte(s[:authorityOrPathStart], ':'); schemeEnd != -1 {
		scheme := s[:schemeEnd]
		if err := checkScheme(scheme); err != nil {
			return err
		}
		u.scheme = strings.ToLower(scheme)
		rest = s[schemeEnd+1:]
	}

	authorityAndPath := rest
	queryAndFragment := ""
	if delimiter := strings.IndexAny(rest, "?#"); delimiter != -1 {
		authorityAndPath = rest[:delimiter]
		queryAndFragment = rest[delimiter:]
	}

	var pathString string
	if afterMarker, ok := strings.CutPrefix(authorityAndPath, "//"); ok {
		authority := afterMarker
		if delimiter := strings.IndexByte(afterMarker, '/'); delimiter != -1 {
			authority = afterMarker[:delimiter]
			pathString = afterMarker[delimiter:]
		}
		if err := u.parseAuthority(authority); err != nil {
			return err
		}
	} else {
		// No authority present: this also clears anything a previous parse
		// of the same value may have left behind.
		u.userInfo = ""
		u.host = ""
		u.hasPort = false
		u.port = 0
		pathString = authorityAndPath
	}

	if err := u.parsePath(pathString); err != nil {
		return err
	}

	query := queryAndFragment
	u.fragment = ""
	if delimiter := strings.IndexByte(queryAndFragment, '#'); delimiter != -1 {
		fragment, err := decodeElement(
			queryAndFragment[delimiter+1:], queryOrFragmentNotPctEncoded, ErrInvalidQueryOrFragment)
		if err != nil {
			return err
		}
		u.fragment = fragment
		query = queryAndFragment[:delimiter]
	}

	// Whatever remains is the query, minus its leading "?". An absent query
	// and a bare "?" both come out as the empty string.
	if query != "" {
		query = query[1:]
	}
	decodedQuery, err := decodeElement(query, queryOrFragmentNotPctEncoded, ErrInvalidQueryOrFragment)
	if err != nil {
		return err
	}
	u.query = decodedQuery
	return nil
}

// checkScheme validates a scheme: it must be non-empty, start with a
// letter, and continue with letters, digits, "+", "-", or ".".
func checkScheme(scheme string) error {
	if scheme == "" {
		return &kindError{kind: ErrInvalidScheme, message: "empty scheme"}
	}
	for i := 0; i < len(scheme); i++ {
		c := scheme[i]
		if i == 0 {
			if !alpha.contains(c) {
				return &kindError{kind: ErrInvalidScheme, message: "scheme must start with a letter, got", char: c}
			}
		} else if !schemeNotFirst.contains(c) {
			return &kindError{kind: ErrInvalidScheme, message: "illegal scheme character", char: c}
		}
	}
	return nil
}
