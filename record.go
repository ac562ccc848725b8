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

// record is the mutable, internal parsed form of a URL. It is populated by
// the state machine in parser.go and never exposed directly; URL wraps a
// *record and presents the stable public surface in url.go.
//
// The invariants in SPEC_FULL.md §3 are maintained by construction: setters
// go through the same state-machine entry points the parser itself uses, so
// a record can never be left with, say, a port set alongside an opaque
// path.
type record struct {
	scheme   string
	username string
	password string
	host     Host
	port     *uint16
	path     []string
	opaque   bool // opaquePath
	query    *string
	fragment *string
}

// clone returns a deep copy of r, used by setters that must not expose a
// partially-mutated record on failure.
func (r *record) clone() *record {
	cp := *r
	if r.path != nil {
		cp.path = append([]string(nil), r.path...)
	}
	if r.port != nil {
		p := *r.port
		cp.port = &p
	}
	if r.query != nil {
		q := *r.query
		cp.query = &q
	}
	if r.fragment != nil {
		f := *r.fragment
		cp.fragment = &f
	}
	return &cp
}

// specialSchemes maps each special scheme to its default port. file has no
// default port and is intentionally absent from this map.
var specialSchemes = map[string]uint16{
	"ftp":   21,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

// isSpecialScheme reports whether scheme is one of the six distinguished
// special schemes: ftp, file, http, https, ws, wss.
func isSpecialScheme(scheme string) bool {
	if scheme == "file" {
		return true
	}
	_, ok := specialSchemes[scheme]
	return ok
}

// defaultPort returns the default port for scheme and whether one exists.
func defaultPort(scheme string) (uint16, bool) {
	p, ok := specialSchemes[scheme]
	return p, ok
}

func (r *record) isSpecial() bool { return isSpecialScheme(r.scheme) }

// hasCredentials reports whether username or password is non-empty.
func (r *record) hasCredentials() bool {
	return r.username != "" || r.password != ""
}

// canHaveUsernamePasswordPort reports whether the record's host is present
// and non-empty, its scheme is not "file", and its path is not opaque — the
// negation of what the WHATWG Standard calls "cannot have a username/password/port".
func (r *record) canHaveUsernamePasswordPort() bool {
	if r.opaque {
		return false
	}
	if r.host.IsAbsent() || r.host.IsEmpty() {
		return false
	}
	return r.scheme != "file"
}

// setPort stores p, eliding it to absent when it equals scheme's default
// port, per the default-port-elision invariant.
func (r *record) setPort(p uint16) {
	if dp, ok := defaultPort(r.scheme); ok && dp == p {
		r.port = nil
		return
	}
	v := p
	r.port = &v
}

// shortenPath pops the last path segment, except when the URL is file: with
// exactly one normalized-drive-letter segment, in which case it is a no-op.
func (r *record) shortenPath() {
	if len(r.path) == 0 {
		return
	}
	if r.scheme == "file" && len(r.path) == 1 && isNormalizedWindowsDriveLetter([]rune(r.path[0])) {
		return
	}
	r.path = r.path[:len(r.path)-1]
}
