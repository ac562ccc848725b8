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

import "strings"

// pair is a single name/value entry of an application/x-www-form-urlencoded
// sequence, preserving insertion order.
type pair struct {
	name  string
	value string
}

// parseFormURLEncoded splits s on '&', drops empty chunks, splits each
// remaining chunk on its first '=' (a chunk with no '=' is a name with an
// empty value), replaces '+' with space, and percent-decodes and UTF-8
// decodes both name and value.
func parseFormURLEncoded(s string) []pair {
	var pairs []pair
	for _, chunk := range strings.Split(s, "&") {
		if chunk == "" {
			continue
		}
		name, value := chunk, ""
		if i := strings.IndexByte(chunk, '='); i >= 0 {
			name, value = chunk[:i], chunk[i+1:]
		}
		pairs = append(pairs, pair{
			name:  decodeFormURLEncodedComponent(name),
			value: decodeFormURLEncodedComponent(value),
		})
	}
	return pairs
}

// decodeFormURLEncodedComponent replaces '+' with space, then
// percent-decodes and UTF-8-decodes the result.
func decodeFormURLEncodedComponent(s string) string {
	if strings.IndexByte(s, '+') >= 0 {
		s = strings.ReplaceAll(s, "+", " ")
	}
	return percentDecodeToString(s)
}

// serializeFormURLEncoded renders pairs as an application/x-www-form-urlencoded
// byte sequence, joining with '&' and separating each name and value with
// '='. Spaces are written as '+'; everything else follows the
// form-urlencoded percent-encode set.
func serializeFormURLEncoded(pairs []pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		percentEncodeString(&b, p.name, isFormURLEncodedPercentEncode, true)
		b.WriteByte('=')
		percentEncodeString(&b, p.value, isFormURLEncodedPercentEncode, true)
	}
	return b.String()
}
