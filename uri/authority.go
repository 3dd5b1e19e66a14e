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

// hostState enumerates the states of the host:port sub-grammar. The grammar
// distinguishes a bracketed IP literal from a registered name. The body of
// an IPv6 literal is copied verbatim up to the closing bracket with no
// further validation; only the IPvFuture form is checked character by
// character.
type hostState int

const (
	// hostStart decides between an IP literal and a registered name.
	hostStart hostState = iota
	// hostRegName consumes a registered name (or IPv4 address).
	hostRegName
	// hostRegNamePercent consumes the digits of a percent escape inside a
	// registered name.
	hostRegNamePercent
	// hostIPLiteral decides between IPv6 and IPvFuture after "[".
	hostIPLiteral
	// hostIPv6 copies an IPv6 literal body verbatim until "]".
	hostIPv6
	// hostIPvFutureVersion consumes the hex digits between "v" and ".".
	hostIPvFutureVersion
	// hostIPvFutureAddress consumes the part between "." and "]".
	hostIPvFutureAddress
	// hostAfterIPLiteral follows "]"; only a port delimiter is legal.
	hostAfterIPLiteral
	// hostPort collects the port characters verbatim; the collected string
	// is validated as a number afterward.
	hostPort
)

// parseAuthority decomposes an authority string (already stripped of the
// leading "//" and any trailing path) into user information, host, and port,
// overwriting the corresponding components of u.
func (u *URI) parseAuthority(authority string) error {
	u.userInfo = ""
	hostPortString := authority
	if at := strings.LastIndexByte(authority, '@'); at != -1 {
		userInfo, err := decodeElement(authority[:at], userInfoNotPctEncoded, ErrInvalidUserInfo)
		if err != nil {
			return err
		}
		u.userInfo = userInfo
		hostPortString = authority[at+1:]
	}

	var host strings.Builder
	var port []byte
	var dec percentDecoder
	sawVersionDigit := false
	state := hostStart
	for i := 0; i < len(hostPortString); i++ {
		c := hostPortString[i]

		// The start states only peek: when the dispatch character is not
		// matched, the current character belongs to the successor state.
		if state == hostStart {
			if c == '[' {
				host.WriteByte(c)
				state = hostIPLiteral
				continue
			}
			state = hostRegName
		} else if state == hostIPLiteral {
			if c == 'v' {
				host.WriteByte(c)
				state = hostIPvFutureVersion
				continue
			}
			state = hostIPv6
		}

		switch state {
		case hostRegName:
			switch {
			case c == '%':
				dec = percentDecoder{}
				state = hostRegNamePercent
			case c == ':':
				state = hostPort
			case regNameNotPctEncoded.contains(c):
				host.WriteByte(c)
			default:
				return &kindError{kind: ErrInvalidHost, message: "illegal character in host", char: c}
			}

		case hostRegNamePercent:
			if !dec.next(c) {
				return &kindError{
					kind:    ErrInvalidPercentEncoding,
					message: "invalid percent encoding digit in host",
					char:    c,
				}
			}
			if dec.done() {
				host.WriteByte(dec.decoded())
				state = hostRegName
			}

		case hostIPv6:
			host.WriteByte(c)
			if c == ']' {
				state = hostAfterIPLiteral
			}

		case hostIPvFutureVersion:
			if c == '.' {
				if !sawVersionDigit {
					return &kindError{
						kind:    ErrInvalidHostLiteral,
						message: "IPvFuture literal is missing its version",
						details: hostPortString,
					}
				}
				state = hostIPvFutureAddress
			} else if hexdig.contains(c) {
				sawVersionDigit = true
			} else {
				return &kindError{kind: ErrInvalidHostLiteral, message: "illegal IPvFuture version character", char: c}
			}
			host.WriteByte(c)

		case hostIPvFutureAddress:
			host.WriteByte(c)
			if c == ']' {
				state = hostAfterIPLiteral
			} else if !ipvFutureLastPart.contains(c) {
				return &kindError{kind: ErrInvalidHostLiteral, message: "illegal IPvFuture character", char: c}
			}

		case hostAfterIPLiteral:
			if c != ':' {
				return &kindError{
					kind:    ErrInvalidHostLiteral,
					message: "unexpected character after IP literal",
					char:    c,
				}
			}
			state = hostPort

		case hostPort:
			port = append(port, c)
		}
	}
	u.host = host.String()

	if len(port) == 0 {
		u.hasPort = false
		u.port = 0
		return nil
	}
	number, err := parsePort(string(port))
	if err != nil {
		return err
	}
	u.hasPort = true
	u.port = number
	return nil
}

// parsePort parses a port string as an unsigned 16-bit decimal integer.
// Overflow is checked after every digit so arbitrarily long inputs fail
// without wrapping.
func parsePort(s string) (uint16, error) {
	var number uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, &kindError{kind: ErrInvalidPort, message: "illegal port character", char: c}
		}
		number = number*10 + uint32(c-'0')
		if number&^0xFFFF != 0 {
			return 0, &kindError{kind: ErrInvalidPort, message: "port out of range", details: s}
		}
	}
	return uint16(number), nil
}
