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

// percentDecoderState enumerates the states of the percent decoder.
type percentDecoderState int

const (
	// expectFirstHexDigit waits for the high nibble.
	expectFirstHexDigit percentDecoderState = iota
	// expectSecondHexDigit waits for the low nibble.
	expectSecondHexDigit
	// decoderDone means both digits were consumed and the byte is ready.
	decoderDone
)

// percentDecoder decodes one percent-encoded triple, fed the two characters
// after the '%' one at a time. A fresh decoder is required for every '%'
// occurrence; the state is not reset automatically.
type percentDecoder struct {
	state percentDecoderState
	value byte
}

// next consumes one hexadecimal digit and advances the state. It returns
// false if c is not a valid hexadecimal digit or the decoder is already done.
func (d *percentDecoder) next(c byte) bool {
	v, ok := hexValue(c)
	if !ok {
		return false
	}
	switch d.state {
	case expectFirstHexDigit:
		d.value = v << 4
		d.state = expectSecondHexDigit
	case expectSecondHexDigit:
		d.value |= v
		d.state = decoderDone
	default:
		return false
	}
	return true
}

// done reports whether both digits have been consumed.
func (d *percentDecoder) done() bool {
	return d.state == decoderDone
}

// decoded returns the decoded byte. It is meaningful only once done
// reports true.
func (d *percentDecoder) decoded() byte {
	return d.value
}

// hexValue returns the numeric value of a hexadecimal digit.
func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// decodeElement validates s against the allowed character set and resolves
// percent-encoded triples into raw bytes. It is shared by the user-info,
// path-segment, query, and fragment grammars, which differ only in the
// characters permitted outside percent encodings. Character violations wrap
// the given reason; bad escapes wrap ErrInvalidPercentEncoding.
func decodeElement(s string, allowed characterSet, reason error) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	var dec *percentDecoder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if dec != nil {
			if !dec.next(c) {
				return "", &kindError{
					kind:    ErrInvalidPercentEncoding,
					message: "invalid percent encoding digit",
					char:    c,
				}
			}
			if dec.done() {
				b.WriteByte(dec.decoded())
				dec = nil
			}
			continue
		}
		if c == '%' {
			dec = new(percentDecoder)
			continue
		}
		if !allowed.contains(c) {
			return "", &kindError{kind: reason, message: "illegal character", char: c}
		}
		b.WriteByte(c)
	}
	// A trailing, incomplete escape is dropped rather than rejected.
	return b.String(), nil
}
