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

// serializePath renders a record's path: opaque paths are written verbatim
// (they already carry their own percent-encoding), structured paths as '/'
// followed by each segment. The "/." prefix for a host-less path that
// starts with an empty segment is added by serializeURL, not here.
func serializePath(r *record) string {
	if r.opaque {
		if len(r.path) == 0 {
			return ""
		}
		return r.path[0]
	}
	if len(r.path) == 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range r.path {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}

// serializeURL renders r as a complete URL string. excludeFragment omits a
// trailing "#fragment" even when r has one.
func serializeURL(r *record, excludeFragment bool) string {
	var b strings.Builder
	b.WriteString(r.scheme)
	b.WriteByte(':')

	if !r.host.IsAbsent() {
		b.WriteString("//")
		if r.hasCredentials() {
			b.WriteString(percentEncodeToString(r.username, isUserinfoPercentEncode, false))
			if r.password != "" {
				b.WriteByte(':')
				b.WriteString(percentEncodeToString(r.password, isUserinfoPercentEncode, false))
			}
			b.WriteByte('@')
		}
		b.WriteString(r.host.String())
		if r.port != nil {
			b.WriteByte(':')
			b.WriteString(itoa(int(*r.port)))
		}
	} else if !r.opaque && len(r.path) > 1 && r.path[0] == "" {
		// Without an authority, a structured path beginning with an empty
		// segment would be ambiguous with "//"; WHATWG inserts "/." first.
		b.WriteString("/.")
	}

	b.WriteString(serializePath(r))

	if r.query != nil {
		b.WriteByte('?')
		b.WriteString(*r.query)
	}
	if !excludeFragment && r.fragment != nil {
		b.WriteByte('#')
		b.WriteString(*r.fragment)
	}
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [6]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// serializeOrigin renders the tuple origin of r: "scheme://host[:port]" for
// special non-file schemes, and the recursively-derived origin of the path
// for blob: URLs whose path parses as an http: or https: URL. Every other
// case (including file:, which the standard defines to have an opaque
// origin) reports no origin.
func serializeOrigin(r *record) (string, bool) {
	switch r.scheme {
	case "blob":
		if len(r.path) == 0 {
			return "", false
		}
		innerRec, err := parseURLString(r.path[0], nil, nil, modeSchemeStart, false)
		if err != nil {
			return "", false
		}
		if innerRec.scheme != "http" && innerRec.scheme != "https" {
			return "", false
		}
		return serializeOrigin(innerRec)
	case "ftp", "http", "https", "ws", "wss":
		var b strings.Builder
		b.WriteString(r.scheme)
		b.WriteString("://")
		b.WriteString(r.host.String())
		if r.port != nil {
			b.WriteByte(':')
			b.WriteString(itoa(int(*r.port)))
		}
		return b.String(), true
	default:
		return "", false
	}
}
