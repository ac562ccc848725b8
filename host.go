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

// hostKind discriminates the variants of the Host union described in
// SPEC_FULL.md §3: absent, empty, opaque, IPv4, IPv6, or domain.
type hostKind int

const (
	hostAbsent hostKind = iota
	hostEmpty
	hostOpaque
	hostDomain
	hostIPv4
	hostIPv6
)

// Host is the parsed form of a URL's host component. The zero value is
// hostAbsent, matching a URL record that has never had a host set.
type Host struct {
	kind   hostKind
	opaque string // hostOpaque, hostDomain (already normalized/percent-encoded)
	ipv4   uint32
	ipv6   IPv6Address
}

// IsAbsent reports whether the host component is entirely absent, as
// opposed to present-but-empty (hostEmpty).
func (h Host) IsAbsent() bool { return h.kind == hostAbsent }

// IsEmpty reports whether the host is present but the empty string.
func (h Host) IsEmpty() bool { return h.kind == hostEmpty }

// String renders the host exactly the way the URL serializer would: IPv6
// addresses bracketed, IPv4 addresses dotted-decimal, domains and opaque
// hosts verbatim.
func (h Host) String() string {
	switch h.kind {
	case hostAbsent, hostEmpty:
		return ""
	case hostIPv4:
		return serializeIPv4Address(h.ipv4)
	case hostIPv6:
		return serializeIPv6Address(h.ipv6)
	default:
		return h.opaque
	}
}

func domainHost(s string) Host    { return Host{kind: hostDomain, opaque: s} }
func opaqueHost(s string) Host    { return Host{kind: hostOpaque, opaque: s} }
func ipv4Host(v uint32) Host      { return Host{kind: hostIPv4, ipv4: v} }
func ipv6Host(v IPv6Address) Host { return Host{kind: hostIPv6, ipv6: v} }

var emptyHost = Host{kind: hostEmpty}

// parseHost dispatches to the bracketed-IPv6, opaque-host, IPv4, or domain
// parser according to the WHATWG URL Standard's host parsing algorithm.
func parseHost(input string, isOpaque bool) (Host, error) {
	if input == "" {
		return emptyHost, nil
	}

	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			return Host{}, errUnterminatedBrack
		}
		addr, err := parseIPv6Address(input[1 : len(input)-1])
		if err != nil {
			return Host{}, err
		}
		return ipv6Host(addr), nil
	}

	if isOpaque {
		return parseOpaqueHost(input)
	}

	decoded := percentDecodeToString(input)

	if looksLikeIPv4(decoded) {
		addr, err := parseIPv4Address(decoded)
		if err != nil {
			return Host{}, err
		}
		return ipv4Host(addr), nil
	}

	for _, r := range decoded {
		if isForbiddenHostCodePoint(r) {
			return Host{}, errInvalidHost
		}
	}

	domain, err := normalizeDomain(decoded)
	if err != nil {
		return Host{}, err
	}
	return domainHost(domain), nil
}

// parseOpaqueHost validates and percent-encodes a non-special-scheme host,
// rejecting any forbidden host code point and escaping everything else in
// the C0-control set.
func parseOpaqueHost(input string) (Host, error) {
	for _, r := range input {
		if isForbiddenHostCodePoint(r) {
			return Host{}, errInvalidHost
		}
	}
	return opaqueHost(percentEncodeToString(input, isC0ControlPercentEncode, false)), nil
}
