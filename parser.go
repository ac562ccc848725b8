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
	"strconv"
	"strings"
	"unicode/utf8"
)

// startMode names one of the state machine's 21 entry points. The zero
// value, modeSchemeStart, is the default for a full parse; setters provide
// one of the others to re-enter the machine partway through (see
// SPEC_FULL.md §6).
type startMode int

const (
	modeSchemeStart startMode = iota
	modeScheme
	modeNoScheme
	modeSpecialRelativeOrAuthority
	modePathOrAuthority
	modeRelative
	modeRelativeSlash
	modeSpecialAuthoritySlashes
	modeSpecialAuthorityIgnoreSlashes
	modeAuthority
	modeHost
	modeHostname
	modePort
	modeFile
	modeFileSlash
	modeFileHost
	modePathStart
	modePath
	modeOpaquePath
	modeQuery
	modeFragment
)

// parser holds all state for a single run of the state machine. Each state
// is a method that consumes zero or more code points from sc and either
// calls the next state method directly (the teacher's procedural chaining
// style, preserved here) or returns to terminate the run. Returning a
// non-nil error is a Failure; returning nil is a Success, whether from the
// bottom of the chain or from an early, state-override-triggered return.
type parser struct {
	sc   *runeScanner
	url  *record
	base *record

	override     bool
	overrideMode startMode

	buf           strings.Builder
	pathSeg       strings.Builder
	atSignSeen    bool
	insideBracket bool
}

func (p *parser) cur() rune         { return p.sc.current() }
func (p *parser) adv()              { p.sc.pos++ }
func (p *parser) remaining() string { return p.sc.remaining() }

// parseURLString is the single entry point for both full parses (override
// is false, start mode is SchemeStart) and setter-triggered reparses
// (override is true). On success it returns the new record; on failure it
// returns the error and the caller's existing record (if any) is left
// completely untouched, per SPEC_FULL.md §7.
func parseURLString(input string, existing *record, base *record, mode startMode, override bool) (*record, error) {
	input = stripTabsAndNewlines(input)

	var working *record
	if existing == nil {
		input = trimC0AndSpace(input)
		working = &record{}
	} else {
		working = existing.clone()
	}

	p := &parser{
		sc:           newRuneScanner(input),
		url:          working,
		base:         base,
		override:     override,
		overrideMode: mode,
	}

	start := mode
	if !override {
		start = modeSchemeStart
	}

	if err := p.dispatch(start); err != nil {
		return nil, newParseError(input, err)
	}
	return p.url, nil
}

// dispatch enters the state machine at mode. State methods call one another
// directly rather than going back through dispatch, so this is only ever
// called once per parse, from parseURLString.
func (p *parser) dispatch(mode startMode) error {
	switch mode {
	case modeSchemeStart:
		return p.parseSchemeStart()
	case modeScheme:
		return p.parseScheme()
	case modeNoScheme:
		return p.parseNoScheme()
	case modeAuthority:
		return p.parseAuthority()
	case modeHost, modeHostname:
		return p.parseHostname()
	case modePort:
		return p.parsePort()
	case modePathStart:
		return p.parsePathStart()
	case modePath:
		return p.parsePath()
	case modeOpaquePath:
		return p.parseOpaquePath()
	case modeQuery:
		return p.parseQuery()
	case modeFragment:
		return p.parseFragment()
	case modeRelative:
		return p.parseRelative()
	case modeFile:
		return p.parseFile()
	default:
		return p.parseSchemeStart()
	}
}

// stripTabsAndNewlines removes every ASCII tab, CR, and LF from s,
// unconditionally, per SPEC_FULL.md §4.3 ("tabs and LF/CR are always
// stripped everywhere").
func stripTabsAndNewlines(s string) string {
	if !strings.ContainsAny(s, "\t\r\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\t' || r == '\r' || r == '\n' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// trimC0AndSpace trims leading and trailing C0 controls and space (runes
// <= U+0020) from s. Applied only when the caller did not supply an
// existing record to mutate, i.e. for a fresh construction.
func trimC0AndSpace(s string) string {
	runes := []rune(s)
	start, end := 0, len(runes)
	for start < end && isC0OrSpace(runes[start]) {
		start++
	}
	for end > start && isC0OrSpace(runes[end-1]) {
		end--
	}
	return string(runes[start:end])
}

// parseSchemeStart is the initial state for a full parse.
func (p *parser) parseSchemeStart() error {
	c := p.cur()
	switch {
	case isASCIILetter(c):
		p.buf.WriteRune(lowerASCII(c))
		p.adv()
		return p.parseScheme()
	case !p.override:
		return p.parseNoScheme()
	default:
		return errNoScheme
	}
}

// parseScheme accumulates the scheme and, on ':', applies the setter guards
// and dispatches to the appropriate continuation.
func (p *parser) parseScheme() error {
	for {
		c := p.cur()
		switch {
		case isSchemeChar(c):
			p.buf.WriteRune(lowerASCII(c))
			p.adv()
		case c == ':':
			return p.finishScheme()
		case !p.override:
			p.buf.Reset()
			p.sc.pos = 0
			return p.parseNoScheme()
		default:
			return errInvalidScheme
		}
	}
}

func lowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// finishScheme applies the WHATWG setter guards (see SPEC_FULL.md §6) and
// either terminates an override parse or dispatches to the continuation a
// full parse takes based on scheme specialness and the base URL.
func (p *parser) finishScheme() error {
	buffer := p.buf.String()

	if p.override {
		oldSpecial := p.url.isSpecial()
		newSpecial := isSpecialScheme(buffer)
		switch {
		case oldSpecial && !newSpecial:
			return nil
		case !oldSpecial && newSpecial:
			return nil
		case (p.url.hasCredentials() || p.url.port != nil) && buffer == "file":
			return nil
		case p.url.scheme == "file" && p.url.host.IsEmpty():
			return nil
		}
	}

	p.url.scheme = buffer
	p.buf.Reset()

	if p.override {
		if dp, ok := defaultPort(p.url.scheme); ok && p.url.port != nil && *p.url.port == dp {
			p.url.port = nil
		}
		return nil
	}

	p.adv() // consume ':'

	switch {
	case p.url.scheme == "file":
		return p.parseFile()
	case p.url.isSpecial() && p.base != nil && p.base.scheme == p.url.scheme:
		return p.parseSpecialRelativeOrAuthority()
	case p.url.isSpecial():
		return p.parseSpecialAuthoritySlashes()
	case p.cur() == '/':
		p.adv()
		return p.parsePathOrAuthority()
	default:
		p.url.opaque = true
		p.url.path = []string{""}
		return p.parseOpaquePath()
	}
}

// parseNoScheme handles input with no recognizable scheme, requiring a base.
func (p *parser) parseNoScheme() error {
	c := p.cur()
	switch {
	case p.base == nil, p.base.opaque && c != '#':
		return errRelativeURLNoBase
	case p.base.opaque && c == '#':
		p.url.scheme = p.base.scheme
		p.url.path = append([]string(nil), p.base.path...)
		p.url.opaque = true
		q := p.base.query
		p.url.query = q
		empty := ""
		p.url.fragment = &empty
		p.adv()
		return p.parseFragment()
	case p.base.scheme != "file":
		return p.parseRelative()
	default:
		return p.parseFile()
	}
}

// parseSpecialRelativeOrAuthority handles "scheme:" input that shares a
// special base scheme, preferring the shorthand "//" authority form.
func (p *parser) parseSpecialRelativeOrAuthority() error {
	if p.cur() == '/' && p.peekAt(1) == '/' {
		p.adv()
		p.adv()
		return p.parseSpecialAuthorityIgnoreSlashes()
	}
	return p.parseRelative()
}

func (p *parser) peekAt(offset int) rune {
	return p.sc.at(p.sc.pos + offset)
}

// parsePathOrAuthority dispatches on whether a second '/' starts an
// authority.
func (p *parser) parsePathOrAuthority() error {
	if p.cur() == '/' {
		p.adv()
		return p.parseAuthority()
	}
	return p.parsePath()
}

// parseRelative inherits scheme and, when possible, the rest of the base
// URL's components.
func (p *parser) parseRelative() error {
	p.url.scheme = p.base.scheme
	c := p.cur()
	switch {
	case c == '/':
		p.adv()
		return p.parseRelativeSlash()
	case p.url.isSpecial() && c == '\\':
		p.adv()
		return p.parseRelativeSlash()
	default:
		p.url.username = p.base.username
		p.url.password = p.base.password
		p.url.host = p.base.host
		p.url.port = clonePort(p.base.port)
		p.url.path = append([]string(nil), p.base.path...)
		p.url.query = p.base.query

		switch {
		case c == '?':
			empty := ""
			p.url.query = &empty
			p.adv()
			return p.parseQuery()
		case c == '#':
			empty := ""
			p.url.fragment = &empty
			p.adv()
			return p.parseFragment()
		case c != eof:
			p.url.query = nil
			p.url.shortenPath()
			return p.parsePath()
		default:
			return nil
		}
	}
}

func clonePort(p *uint16) *uint16 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// parseRelativeSlash resolves the single- vs double-slash ambiguity after a
// relative reference begins with a slash.
func (p *parser) parseRelativeSlash() error {
	c := p.cur()
	switch {
	case p.url.isSpecial() && (c == '/' || c == '\\'):
		p.adv()
		return p.parseSpecialAuthorityIgnoreSlashes()
	case c == '/':
		p.adv()
		return p.parseAuthority()
	default:
		p.url.username = p.base.username
		p.url.password = p.base.password
		p.url.host = p.base.host
		p.url.port = clonePort(p.base.port)
		return p.parsePath()
	}
}

// parseSpecialAuthoritySlashes consumes the canonical "//" after a special
// scheme that does not share the base's scheme.
func (p *parser) parseSpecialAuthoritySlashes() error {
	if p.cur() == '/' && p.peekAt(1) == '/' {
		p.adv()
		p.adv()
	}
	return p.parseSpecialAuthorityIgnoreSlashes()
}

// parseSpecialAuthorityIgnoreSlashes skips any further, non-conformant
// slashes or backslashes before the authority.
func (p *parser) parseSpecialAuthorityIgnoreSlashes() error {
	for p.cur() == '/' || p.cur() == '\\' {
		p.adv()
	}
	return p.parseAuthority()
}

// parseAuthority buffers userinfo up to the first unescaped terminator,
// splitting username and password at the first ':', then hands the rest of
// the input to the host parser starting at the position right after the
// last unescaped '@'.
func (p *parser) parseAuthority() error {
	hostStart := p.sc.pos
	for {
		c := p.cur()
		switch {
		case c == '@':
			p.consumeUserinfo()
			hostStart = p.sc.pos + 1
			p.adv()
		case c == eof || c == '/' || c == '?' || c == '#' || (p.url.isSpecial() && c == '\\'):
			if p.atSignSeen && p.buf.Len() == 0 {
				return errMissingAtInAuth
			}
			p.buf.Reset()
			p.sc.pos = hostStart
			return p.parseHostname()
		default:
			p.buf.WriteRune(c)
			p.adv()
		}
	}
}

// consumeUserinfo splits the authority buffer at the first unescaped ':'
// into username and password, percent-encoding each with the userinfo set.
// A second '@' in the buffer (from a prior call) is represented by
// prepending a literal "%40" first, matching the WHATWG algorithm's
// handling of multiple '@' characters in an authority.
func (p *parser) consumeUserinfo() {
	if p.atSignSeen {
		old := p.buf.String()
		p.buf.Reset()
		p.buf.WriteString("%40")
		p.buf.WriteString(old)
	}
	p.atSignSeen = true

	buffer := p.buf.String()
	p.buf.Reset()

	colon := strings.IndexByte(buffer, ':')
	var userPart, passPart string
	hasPass := colon >= 0
	if hasPass {
		userPart, passPart = buffer[:colon], buffer[colon+1:]
	} else {
		userPart = buffer
	}
	p.url.username += percentEncodeToString(userPart, isUserinfoPercentEncode, false)
	if hasPass {
		p.url.password += percentEncodeToString(passPart, isUserinfoPercentEncode, false)
	}
}

// parseHostname implements the combined host/hostname state: both start
// modes run identical logic, differing only in the inline early-return
// guards noted below, matching the WHATWG Standard's "host state (hostname
// state)" section, which documents both as one algorithm.
func (p *parser) parseHostname() error {
	for {
		c := p.cur()
		switch {
		case p.override && p.url.scheme == "file":
			return p.parseFileHost()
		case c == ':' && !p.insideBracket:
			if p.buf.Len() == 0 {
				return errColonInHostname
			}
			h, err := parseHost(p.buf.String(), !p.url.isSpecial())
			if err != nil {
				return err
			}
			p.url.host = h
			p.buf.Reset()
			if p.override && p.overrideMode == modeHostname {
				return nil
			}
			p.adv()
			return p.parsePort()
		case c == eof || c == '/' || c == '?' || c == '#' || (p.url.isSpecial() && c == '\\'):
			if p.url.isSpecial() && p.buf.Len() == 0 {
				return errEmptyHost
			}
			if p.override && p.buf.Len() == 0 && (p.url.hasCredentials() || p.url.port != nil) {
				return nil
			}
			h, err := parseHost(p.buf.String(), !p.url.isSpecial())
			if err != nil {
				return err
			}
			p.url.host = h
			p.buf.Reset()
			if p.override {
				return nil
			}
			return p.parsePathStart()
		default:
			if c == '[' {
				p.insideBracket = true
			}
			if c == ']' {
				p.insideBracket = false
			}
			p.buf.WriteRune(c)
			p.adv()
		}
	}
}

// parsePort accumulates decimal digits and, at the terminator, validates
// and stores the port (or elides it, if it equals the scheme's default).
func (p *parser) parsePort() error {
	for {
		c := p.cur()
		switch {
		case isASCIIDigit(c):
			p.buf.WriteRune(c)
			p.adv()
		case c == eof || c == '/' || c == '?' || c == '#' || (p.url.isSpecial() && c == '\\') || p.override:
			if p.buf.Len() > 0 {
				n, err := strconv.ParseUint(p.buf.String(), 10, 32)
				if err != nil || n > 65535 {
					return errPortOutOfRange
				}
				p.url.setPort(uint16(n))
				p.buf.Reset()
			}
			if p.override {
				return nil
			}
			return p.parsePathStart()
		default:
			return errInvalidPort
		}
	}
}

// parseFile implements the file-scheme continuation, including Windows
// drive-letter inheritance from a file: base.
func (p *parser) parseFile() error {
	p.url.scheme = "file"
	p.url.host = emptyHost

	c := p.cur()
	switch {
	case c == '/' || c == '\\':
		p.adv()
		return p.parseFileSlash()
	case p.base != nil && p.base.scheme == "file":
		p.url.host = p.base.host
		p.url.path = append([]string(nil), p.base.path...)
		p.url.query = p.base.query

		switch {
		case c == '?':
			empty := ""
			p.url.query = &empty
			p.adv()
			return p.parseQuery()
		case c == '#':
			empty := ""
			p.url.fragment = &empty
			p.adv()
			return p.parseFragment()
		case c != eof:
			p.url.query = nil
			if !startsWithWindowsDriveLetter([]rune(p.remaining())) {
				p.url.shortenPath()
			} else {
				p.url.path = nil
			}
			return p.parsePath()
		default:
			return nil
		}
	default:
		return p.parsePath()
	}
}

// parseFileSlash handles the slash(es) following "file:".
func (p *parser) parseFileSlash() error {
	c := p.cur()
	if c == '/' || c == '\\' {
		p.adv()
		return p.parseFileHost()
	}
	if p.base != nil && p.base.scheme == "file" {
		p.url.host = p.base.host
		if !startsWithWindowsDriveLetter([]rune(p.remaining())) && len(p.base.path) > 0 &&
			isNormalizedWindowsDriveLetter([]rune(p.base.path[0])) {
			p.url.path = append(p.url.path, p.base.path[0])
		}
	}
	return p.parsePath()
}

// parseFileHost buffers a potential file host, redirecting to a path
// segment instead if it turns out to be a Windows drive letter. In that
// case the pointer rewinds all the way back to where this state started
// reading, so the drive letter text is reprocessed as the first path
// segment rather than discarded.
func (p *parser) parseFileHost() error {
	hostStart := p.sc.pos
	for {
		c := p.cur()
		if c == eof || c == '/' || c == '\\' || c == '?' || c == '#' {
			runes := []rune(p.buf.String())
			switch {
			case !p.override && isWindowsDriveLetter(runes):
				p.buf.Reset()
				p.sc.pos = hostStart
				return p.parsePath()
			case p.buf.Len() == 0:
				p.url.host = emptyHost
				if p.override {
					return nil
				}
				return p.parsePathStart()
			default:
				h, err := parseHost(p.buf.String(), false)
				if err != nil {
					return err
				}
				if h.kind == hostDomain && h.opaque == "localhost" {
					h = emptyHost
				}
				p.url.host = h
				if p.override {
					return nil
				}
				p.buf.Reset()
				return p.parsePathStart()
			}
		}
		p.buf.WriteRune(c)
		p.adv()
	}
}

// parsePathStart dispatches into path/opaque-path/query/fragment parsing
// based on the current character, without itself consuming a path
// character.
func (p *parser) parsePathStart() error {
	c := p.cur()
	switch {
	case p.url.isSpecial():
		if c == '/' || c == '\\' {
			p.adv()
		}
		return p.parsePath()
	case !p.override && c == '?':
		empty := ""
		p.url.query = &empty
		p.adv()
		return p.parseQuery()
	case !p.override && c == '#':
		empty := ""
		p.url.fragment = &empty
		p.adv()
		return p.parseFragment()
	case c != eof:
		if c == '/' {
			p.adv()
		}
		return p.parsePath()
	default:
		if p.override && p.url.host.IsAbsent() {
			p.url.path = append(p.url.path, "")
		}
		return nil
	}
}

// parsePath accumulates one segment at a time, resolving "." and ".."
// segments and Windows drive-letter normalization as it goes.
func (p *parser) parsePath() error {
	for {
		c := p.cur()
		backslash := p.url.isSpecial() && c == '\\'
		if c == eof || c == '/' || backslash || (!p.override && (c == '?' || c == '#')) {
			seg := p.pathSeg.String()
			switch {
			case isDoubleDotSegment(seg):
				p.url.shortenPath()
				if c != '/' && !backslash {
					p.url.path = append(p.url.path, "")
				}
			case isSingleDotSegment(seg):
				if c != '/' && !backslash {
					p.url.path = append(p.url.path, "")
				}
			default:
				if p.url.scheme == "file" && len(p.url.path) == 0 {
					runes := []rune(seg)
					if isWindowsDriveLetter(runes) {
						runes[1] = ':'
						seg = string(runes)
					}
				}
				p.url.path = append(p.url.path, seg)
			}
			p.pathSeg.Reset()

			switch {
			case c == '?':
				empty := ""
				p.url.query = &empty
				p.adv()
				return p.parseQuery()
			case c == '#':
				empty := ""
				p.url.fragment = &empty
				p.adv()
				return p.parseFragment()
			case c == eof:
				return nil
			default:
				p.adv()
				continue
			}
		}
		percentEncodeRuneInto(&p.pathSeg, c, isPathPercentEncode)
		p.adv()
	}
}

// percentEncodeRuneInto UTF-8 encodes r and writes it to dst, percent
// encoding each resulting byte the set selects.
func percentEncodeRuneInto(dst *strings.Builder, r rune, set encodeSet) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for _, b := range buf[:n] {
		if set(b) {
			percentEncodeByte(dst, b)
		} else {
			dst.WriteByte(b)
		}
	}
}

// parseOpaquePath accumulates the single opaque path segment for schemes
// like mailto: and data:, applying the one-code-point space-deferral rule
// documented in SPEC_FULL.md §9.
func (p *parser) parseOpaquePath() error {
	for {
		c := p.cur()
		switch c {
		case '?':
			empty := ""
			p.url.query = &empty
			p.adv()
			return p.parseQuery()
		case '#':
			empty := ""
			p.url.fragment = &empty
			p.adv()
			return p.parseFragment()
		case eof:
			return nil
		case ' ':
			nxt := p.peekAt(1)
			if nxt == eof || nxt == '?' || nxt == '#' {
				p.url.path[0] += "%20"
			} else {
				p.url.path[0] += " "
			}
			p.adv()
		default:
			percentEncodeRuneAppend(&p.url.path[0], c, isC0ControlPercentEncode)
			p.adv()
		}
	}
}

func percentEncodeRuneAppend(dst *string, r rune, set encodeSet) {
	var b strings.Builder
	percentEncodeRuneInto(&b, r, set)
	*dst += b.String()
}

// parseQuery buffers raw code points and, at the terminator, percent-encodes
// the whole buffer in one pass using the special-query set for special
// schemes, the plain query set otherwise.
func (p *parser) parseQuery() error {
	for {
		c := p.cur()
		if c == eof || (!p.override && c == '#') {
			set := isQueryPercentEncode
			if p.url.isSpecial() {
				set = isSpecialQueryPercentEncode
			}
			var b strings.Builder
			percentEncodeString(&b, p.buf.String(), set, false)
			encoded := b.String()
			if p.url.query != nil {
				encoded = *p.url.query + encoded
			}
			p.url.query = &encoded
			p.buf.Reset()
			if c == '#' {
				empty := ""
				p.url.fragment = &empty
				p.adv()
				return p.parseFragment()
			}
			return nil
		}
		p.buf.WriteRune(c)
		p.adv()
	}
}

// parseFragment percent-encodes each code point immediately as it is
// consumed, using the fragment set.
func (p *parser) parseFragment() error {
	for {
		c := p.cur()
		if c == eof {
			return nil
		}
		var b strings.Builder
		percentEncodeRuneInto(&b, c, isFragmentPercentEncode)
		if p.url.fragment == nil {
			empty := ""
			p.url.fragment = &empty
		}
		*p.url.fragment += b.String()
		p.adv()
	}
}
