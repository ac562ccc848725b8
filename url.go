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

import "encoding/json"

// URL is the public, stable handle onto a parsed URL record. The zero value
// is not usable; obtain one from Parse or New.
type URL struct {
	rec    *record
	search *SearchParams
}

// New parses input as an absolute URL, equivalent to Parse(input, nil).
func New(input string) (*URL, error) {
	return Parse(input, nil)
}

// Parse parses input against an optional base URL, applying the full
// WHATWG URL parsing algorithm. A nil base requires input to be an
// absolute URL.
func Parse(input string, base *URL) (*URL, error) {
	var baseRec *record
	if base != nil {
		baseRec = base.rec
	}
	rec, err := parseURLString(input, nil, baseRec, modeSchemeStart, false)
	if err != nil {
		return nil, err
	}
	return &URL{rec: rec}, nil
}

// CanParse reports whether input would parse successfully against base,
// discarding the parsed URL.
func CanParse(input string, base *URL) bool {
	_, err := Parse(input, base)
	return err == nil
}

// String renders the URL's serialization. It implements fmt.Stringer.
func (u *URL) String() string {
	return serializeURL(u.rec, false)
}

// MarshalJSON renders the URL as a JSON string, matching the host
// environment's URL.prototype.toJSON.
func (u *URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON parses a JSON string as an absolute URL.
func (u *URL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	rec, err := parseURLString(s, nil, nil, modeSchemeStart, false)
	if err != nil {
		return err
	}
	u.rec = rec
	u.search = nil
	return nil
}

// Href returns the URL's full serialization, identical to String.
func (u *URL) Href() string { return u.String() }

// SetHref reparses the URL from scratch using input as an absolute URL. On
// failure, u is left unchanged.
func (u *URL) SetHref(input string) error {
	rec, err := parseURLString(input, nil, nil, modeSchemeStart, false)
	if err != nil {
		return err
	}
	u.rec = rec
	u.search = nil
	return nil
}

// Origin returns the URL's tuple origin, or "null" if it has none.
func (u *URL) Origin() string {
	if o, ok := serializeOrigin(u.rec); ok {
		return o
	}
	return "null"
}

// Protocol returns the scheme followed by ':'.
func (u *URL) Protocol() string { return u.rec.scheme + ":" }

// SetProtocol reparses the scheme in place. value may include or omit the
// trailing ':'. Per the setter guards in SPEC_FULL.md §6, an update that
// would change specialness, introduce credentials/port on file:, or touch
// scheme while the host is empty on file: is silently ignored.
func (u *URL) SetProtocol(value string) error {
	newRec, err := parseURLString(value+":", u.rec, nil, modeSchemeStart, true)
	if err != nil {
		return err
	}
	u.rec = newRec
	return nil
}

// Username returns the percent-encoded username.
func (u *URL) Username() string { return u.rec.username }

// SetUsername sets the username, percent-encoding value with the userinfo
// set. It is a no-op if the URL cannot have credentials (opaque path, or
// absent/empty host, or scheme "file").
func (u *URL) SetUsername(value string) {
	if !u.rec.canHaveUsernamePasswordPort() {
		return
	}
	u.rec.username = percentEncodeToString(value, isUserinfoPercentEncode, false)
}

// Password returns the percent-encoded password.
func (u *URL) Password() string { return u.rec.password }

// SetPassword sets the password, percent-encoding value with the userinfo
// set. It is a no-op under the same conditions as SetUsername.
func (u *URL) SetPassword(value string) {
	if !u.rec.canHaveUsernamePasswordPort() {
		return
	}
	u.rec.password = percentEncodeToString(value, isUserinfoPercentEncode, false)
}

// Host returns "hostname[:port]", or the empty string if the host is
// absent.
func (u *URL) Host() string {
	if u.rec.host.IsAbsent() {
		return ""
	}
	if u.rec.port != nil {
		return u.rec.host.String() + ":" + itoa(int(*u.rec.port))
	}
	return u.rec.host.String()
}

// SetHost reparses value as "hostname[:port]" in place. It is a no-op if the
// URL has an opaque path.
func (u *URL) SetHost(value string) error {
	if u.rec.opaque {
		return nil
	}
	newRec, err := parseURLString(value, u.rec, nil, modeHost, true)
	if err != nil {
		return err
	}
	u.rec = newRec
	return nil
}

// Hostname returns the host without any port.
func (u *URL) Hostname() string { return u.rec.host.String() }

// SetHostname reparses value as a bare hostname in place, leaving any
// existing port untouched. It is a no-op if the URL has an opaque path.
func (u *URL) SetHostname(value string) error {
	if u.rec.opaque {
		return nil
	}
	newRec, err := parseURLString(value, u.rec, nil, modeHostname, true)
	if err != nil {
		return err
	}
	u.rec = newRec
	return nil
}

// Port returns the port as a string, or "" if absent (including when it
// equals the scheme's default port, which is never stored).
func (u *URL) Port() string {
	if u.rec.port == nil {
		return ""
	}
	return itoa(int(*u.rec.port))
}

// SetPort reparses value as a port in place. An empty value clears the
// port. It is a no-op unless the URL can have a port.
func (u *URL) SetPort(value string) error {
	if !u.rec.canHaveUsernamePasswordPort() {
		return nil
	}
	if value == "" {
		u.rec.port = nil
		return nil
	}
	newRec, err := parseURLString(value, u.rec, nil, modePort, true)
	if err != nil {
		return err
	}
	u.rec = newRec
	return nil
}

// Pathname returns the path, including the leading '/' for a structured
// path, or the raw opaque path for a URL without one.
func (u *URL) Pathname() string { return serializePath(u.rec) }

// SetPathname reparses value as a path in place. It is a no-op if the URL
// has an opaque path.
func (u *URL) SetPathname(value string) error {
	if u.rec.opaque {
		return nil
	}
	stripped := u.rec.clone()
	stripped.path = nil
	newRec, err := parseURLString(value, stripped, nil, modePathStart, true)
	if err != nil {
		return err
	}
	u.rec = newRec
	return nil
}

// Search returns the query including a leading '?', or "" if the query is
// absent.
func (u *URL) Search() string {
	if u.rec.query == nil || *u.rec.query == "" {
		return ""
	}
	return "?" + *u.rec.query
}

// SetSearch reparses value (with or without a leading '?') as the query in
// place, and reloads any SearchParams previously obtained via SearchParams.
func (u *URL) SetSearch(value string) error {
	if value == "" {
		u.rec.query = nil
	} else {
		cleared := u.rec.clone()
		empty := ""
		cleared.query = &empty
		body := value
		if len(body) > 0 && body[0] == '?' {
			body = body[1:]
		}
		newRec, err := parseURLString(body, cleared, nil, modeQuery, true)
		if err != nil {
			return err
		}
		u.rec = newRec
	}
	if u.search != nil {
		q := ""
		if u.rec.query != nil {
			q = *u.rec.query
		}
		u.search.pairs = parseFormURLEncoded(q)
	}
	return nil
}

// SearchParams returns a live SearchParams view over the URL's query. The
// same instance is returned on repeated calls; mutating it updates the
// URL's query in place.
func (u *URL) SearchParams() *SearchParams {
	if u.search == nil {
		q := ""
		if u.rec.query != nil {
			q = *u.rec.query
		}
		u.search = &SearchParams{pairs: parseFormURLEncoded(q), parent: u}
	}
	return u.search
}

// Hash returns the fragment including a leading '#', or "" if absent.
func (u *URL) Hash() string {
	if u.rec.fragment == nil || *u.rec.fragment == "" {
		return ""
	}
	return "#" + *u.rec.fragment
}

// SetHash reparses value (with or without a leading '#') as the fragment in
// place.
func (u *URL) SetHash(value string) {
	if value == "" {
		u.rec.fragment = nil
		return
	}
	cleared := u.rec.clone()
	empty := ""
	cleared.fragment = &empty
	body := value
	if len(body) > 0 && body[0] == '#' {
		body = body[1:]
	}
	newRec, _ := parseURLString(body, cleared, nil, modeFragment, true)
	u.rec = newRec
}
