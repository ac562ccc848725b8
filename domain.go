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

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeDomain implements the ASCII-only domain normalization this
// package performs in place of full IDNA processing: NFC-normalize, map the
// three "full stop" look-alikes to U+002E, lowercase, then reject any byte in
// 0x00-0x20 or '%'. Punycode and IDNA are deliberately out of scope (see
// SPEC_FULL.md §4.1); a domain containing non-ASCII text is accepted as-is
// once normalized, never transcoded to an "xn--" label.
func normalizeDomain(s string) (string, error) {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '。', '．', '｡':
			return '.'
		default:
			return r
		}
	}, s)
	s = strings.ToLower(s)

	for _, r := range s {
		if r <= 0x20 || r == '%' {
			return "", errInvalidHost
		}
	}
	return s, nil
}
