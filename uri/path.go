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

// parsePath splits the given path string into segments and percent-decodes
// each of them, overwriting the path of u.
//
// An empty string produces no segments at all. The path "/" produces a
// single empty segment, the marker for an absolute path with nothing after
// the slash. Otherwise every "/" is a split point: consecutive slashes
// produce empty segments and a trailing slash produces a trailing empty
// segment.
func (u *URI) parsePath(pathString string) error {
	u.path = nil
	switch {
	case pathString == "/":
		u.path = []string{""}
	case pathString != "":
		for {
			delimiter := strings.IndexByte(pathString, '/')
			if delimiter == -1 {
				u.path = append(u.path, pathString)
				break
			}
			u.path = append(u.path, pathString[:delimiter])
			pathString = pathString[delimiter+1:]
		}
	}
	for i, segment := range u.path {
		decoded, err := decodeElement(segment, pcharNotPctEncoded, ErrInvalidPathCharacter)
		if err != nil {
			return err
		}
		u.path[i] = decoded
	}
	return nil
}

// NormalizePath applies the remove-dot-segments algorithm of RFC 3986,
// Section 5.2.4 to the parsed path, in place. "." segments contribute
// nothing and are dropped. ".." segments pop the nearest preceding segment
// when one exists; a ".." with nothing left to pop is dropped on its own,
// and the empty segment marking an absolute path is never popped. A
// trailing empty segment from a path ending in "/" survives normalization.
func (u *URI) NormalizePath() {
	if len(u.path) == 0 {
		return
	}
	normalized := make([]string, 0, len(u.path))
	for _, segment := range u.path {
		switch segment {
		case ".":
		case "..":
			if len(normalized) > 0 && !(len(normalized) == 1 && normalized[0] == "") {
				normalized = normalized[:len(normalized)-1]
			}
		default:
			normalized = append(normalized, segment)
		}
	}
	if len(normalized) == 0 {
		u.path = nil
		return
	}
	u.path = normalized
}
