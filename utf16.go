/*
Copyright 2025 Trident Authors

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

package weburl

import "unicode/utf16"

// lessUTF16 compares a and b the way JavaScript's default string ordering
// does: by UTF-16 code unit, not by Unicode code point or raw byte value.
// This matters for SearchParams.Sort, which must match the host
// environment's Array.prototype.sort on strings exactly; a naive rune
// comparison would order astral characters (encoded as a surrogate pair,
// both units >= 0xD800) differently than Go's byte-wise string comparison
// would for the equivalent UTF-8.
func lessUTF16(a, b string) bool {
	au := utf16.Encode([]rune(a))
	bu := utf16.Encode([]rune(b))
	n := len(au)
	if len(bu) < n {
		n = len(bu)
	}
	for i := 0; i < n; i++ {
		if au[i] != bu[i] {
			return au[i] < bu[i]
		}
	}
	return len(au) < len(bu)
}
