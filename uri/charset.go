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

// characterSet is an immutable membership predicate over a single byte.
// Sets are assembled from literal characters, inclusive ranges, or unions
// of other sets; unions are flattened at construction time so membership
// is always a single scan over ranges. RFC 3986 grammar is pure US-ASCII,
// which is why the predicate works on bytes rather than runes.
type characterSet struct {
	ranges []charRange
}

// charRange is an inclusive range of characters [lo, hi].
type charRange struct {
	lo, hi byte
}

// charsIn builds a set containing exactly the given literal characters.
func charsIn(chars ...byte) characterSet {
	ranges := make([]charRange, len(chars))
	for i, c := range chars {
		ranges[i] = charRange{lo: c, hi: c}
	}
	return characterSet{ranges: ranges}
}

// rangeOf builds a set covering every character from lo through hi inclusive.
func rangeOf(lo, hi byte) characterSet {
	return characterSet{ranges: []charRange{{lo: lo, hi: hi}}}
}

// union builds a set accepting any character accepted by at least one of the
// given sets. The constituents are flattened, not evaluated recursively.
func union(sets ...characterSet) characterSet {
	var ranges []charRange
	for _, s := range sets {
		ranges = append(ranges, s.ranges...)
	}
	return characterSet{ranges: ranges}
}

// contains reports whether c is a member of the set.
func (s characterSet) contains(c byte) bool {
	for _, r := range s.ranges {
		if r.lo <= c && c <= r.hi {
			return true
		}
	}
	return false
}

// The character sets below are the terminal sets of the RFC 3986 grammar
// (https://tools.ietf.org/html/rfc3986). The *NotPctEncoded sets leave out
// the "pct-encoded" production, which is handled by the percent decoder.
var (
	// alpha is the ALPHA rule: the ASCII letters.
	alpha = union(rangeOf('a', 'z'), rangeOf('A', 'Z'))

	// digit is the DIGIT rule: the decimal digits.
	digit = rangeOf('0', '9')

	// hexdig is the HEXDIG rule, in both letter cases.
	hexdig = union(digit, rangeOf('A', 'F'), rangeOf('a', 'f'))

	// unreserved is the "unreserved" rule.
	unreserved = union(alpha, digit, charsIn('-', '.', '_', '~'))

	// subDelims is the "sub-delims" rule.
	subDelims = charsIn('!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=')

	// schemeNotFirst covers every scheme character after the first, which
	// must be an ALPHA on its own.
	schemeNotFirst = union(alpha, digit, charsIn('+', '-', '.'))

	// pcharNotPctEncoded is the "pchar" rule without pct-encoded.
	pcharNotPctEncoded = union(unreserved, subDelims, charsIn(':', '@'))

	// queryOrFragmentNotPctEncoded is the shared "query" / "fragment" rule
	// without pct-encoded.
	queryOrFragmentNotPctEncoded = union(pcharNotPctEncoded, charsIn('/', '?'))

	// userInfoNotPctEncoded is the "userinfo" rule without pct-encoded.
	userInfoNotPctEncoded = union(unreserved, subDelims, charsIn(':'))

	// regNameNotPctEncoded is the "reg-name" rule without pct-encoded.
	regNameNotPctEncoded = union(unreserved, subDelims)

	// ipvFutureLastPart is the final part of the "IPvFuture" rule.
	ipvFutureLastPart = union(unreserved, subDelims, charsIn(':'))
)
