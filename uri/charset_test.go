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

//nolint:testpackage // White-box tests for the grammar sets, which are unexported.
package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacterSetConstruction(t *testing.T) {
	t.Run("literal characters", func(t *testing.T) {
		s := charsIn('a', 'z', '!')
		assert.True(t, s.contains('a'))
		assert.True(t, s.contains('z'))
		assert.True(t, s.contains('!'))
		assert.False(t, s.contains('b'))
		assert.False(t, s.contains(' '))
	})

	t.Run("inclusive range", func(t *testing.T) {
		s := rangeOf('0', '9')
		assert.True(t, s.contains('0'))
		assert.True(t, s.contains('5'))
		assert.True(t, s.contains('9'))
		assert.False(t, s.contains('/'))
		assert.False(t, s.contains(':'))
	})

	t.Run("union is flattened", func(t *testing.T) {
		s := union(union(rangeOf('a', 'c'), charsIn('x')), charsIn('0'))
		for _, c := range []byte{'a', 'b', 'c', 'x', '0'} {
			assert.True(t, s.contains(c), "expected %q to be a member", c)
		}
		assert.False(t, s.contains('d'))
		assert.False(t, s.contains('y'))
	})

	t.Run("empty set contains nothing", func(t *testing.T) {
		var s characterSet
		assert.False(t, s.contains('a'))
		assert.False(t, s.contains(0))
	})
}

func TestGrammarSets(t *testing.T) {
	tests := []struct {
		name    string
		set     characterSet
		members string
		outside string
	}{
		{
			name:    "alpha",
			set:     alpha,
			members: "azAZmQ",
			outside: "0 -@[`{",
		},
		{
			name:    "digit",
			set:     digit,
			members: "0459",
			outside: "aA/:",
		},
		{
			name:    "hexdig",
			set:     hexdig,
			members: "09afAF",
			outside: "gGzZ-",
		},
		{
			name:    "unreserved",
			set:     unreserved,
			members: "azAZ09-._~",
			outside: "!$&:@/? %[]",
		},
		{
			name:    "sub-delims",
			set:     subDelims,
			members: "!$&'()*+,;=",
			outside: "azAZ09-._~:@/?%",
		},
		{
			name:    "scheme after first character",
			set:     schemeNotFirst,
			members: "azAZ09+-.",
			outside: "_~!:@/",
		},
		{
			name:    "pchar without pct-encoded",
			set:     pcharNotPctEncoded,
			members: "azAZ09-._~!$&'()*+,;=:@",
			outside: "/?#[]% ",
		},
		{
			name:    "query or fragment without pct-encoded",
			set:     queryOrFragmentNotPctEncoded,
			members: "azAZ09-._~!$&'()*+,;=:@/?",
			outside: "#[]% ",
		},
		{
			name:    "userinfo without pct-encoded",
			set:     userInfoNotPctEncoded,
			members: "azAZ09-._~!$&'()*+,;=:",
			outside: "@/?#[]% ",
		},
		{
			name:    "reg-name without pct-encoded",
			set:     regNameNotPctEncoded,
			members: "azAZ09-._~!$&'()*+,;=",
			outside: ":@/?#[]% ",
		},
		{
			name:    "IPvFuture last part",
			set:     ipvFutureLastPart,
			members: "azAZ09-._~!$&'()*+,;=:",
			outside: "@/?#[]% ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < len(tt.members); i++ {
				assert.True(t, tt.set.contains(tt.members[i]),
					"expected %q to be a member", tt.members[i])
			}
			for i := 0; i < len(tt.outside); i++ {
				assert.False(t, tt.set.contains(tt.outside[i]),
					"expected %q to be outside the set", tt.outside[i])
			}
		})
	}
}
