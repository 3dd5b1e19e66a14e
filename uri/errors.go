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
	"errors"
	"fmt"
)

// Sentinel reasons for parse failures. Callers that only care about
// pass/fail can treat any non-nil error as a rejection; callers that want
// the reason can test with errors.Is against one of these.
var (
	// ErrInvalidScheme is reported when the text before the scheme colon is
	// empty, does not start with a letter, or contains a character outside
	// ALPHA / DIGIT / "+-.".
	ErrInvalidScheme = errors.New("uri: invalid scheme")

	// ErrInvalidPercentEncoding is reported when a '%' is not followed by
	// two hexadecimal digits.
	ErrInvalidPercentEncoding = errors.New("uri: invalid percent encoding")

	// ErrInvalidUserInfo is reported for an illegal character in the
	// user information component.
	ErrInvalidUserInfo = errors.New("uri: invalid character in user information")

	// ErrInvalidHost is reported for an illegal character in a registered
	// name host.
	ErrInvalidHost = errors.New("uri: invalid character in host")

	// ErrInvalidHostLiteral is reported for a malformed bracketed IP
	// literal, including a bad IPvFuture form or trailing characters after
	// the closing bracket.
	ErrInvalidHostLiteral = errors.New("uri: invalid IP literal")

	// ErrInvalidPort is reported for a non-numeric port or a port value
	// above 65535.
	ErrInvalidPort = errors.New("uri: invalid port")

	// ErrInvalidPathCharacter is reported for an illegal character in a
	// path segment.
	ErrInvalidPathCharacter = errors.New("uri: invalid character in path")

	// ErrInvalidQueryOrFragment is reported for an illegal character in the
	// query or fragment component.
	ErrInvalidQueryOrFragment = errors.New("uri: invalid character in query or fragment")
)

// ParseError is the error type returned by parsing functions in this package.
// It contains a descriptive message and wraps one of the sentinel reasons
// above.
type ParseError struct {
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URI parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a new ParseError wrapping the original error.
// It returns nil if the input error is nil.
func newParseError(err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Message: err.Error(), Err: err}
}

// kindError is a specialized error type used by the parser to attach the
// offending character or substring to a sentinel reason.
type kindError struct {
	kind    error
	message string
	char    byte
	details string
}

// Error formats the error message with any available character or details.
func (e *kindError) Error() string {
	msg := e.message
	if e.char != 0 {
		msg = fmt.Sprintf("%s %q", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s %q", msg, e.details)
	}
	return msg
}

// Unwrap exposes the sentinel reason for errors.Is.
func (e *kindError) Unwrap() error {
	return e.kind
}
