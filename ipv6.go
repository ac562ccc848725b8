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
	"fmt"
	"strings"
)

// IPv6Address is eight 16-bit pieces, the parsed form of a bracketed IPv6
// host literal.
type IPv6Address [8]uint16

// parseIPv6Address parses s (the literal's interior, without the brackets)
// according to the WHATWG URL Standard's IPv6 parser state machine: eight
// 16-bit pieces, at most one "::" compression point, and an optional
// dotted-quad IPv4 address occupying the last two pieces.
func parseIPv6Address(s string) (IPv6Address, error) {
	var addr IPv6Address
	runes := []rune(s)
	pos := 0
	pieceIndex := 0
	compress := -1

	atEnd := func() bool { return pos >= len(runes) }
	cur := func() rune {
		if atEnd() {
			return 0
		}
		return runes[pos]
	}

	if cur() == ':' {
		if pos+1 >= len(runes) || runes[pos+1] != ':' {
			return addr, errInvalidIPv6
		}
		pos += 2
		pieceIndex++
		compress = pieceIndex
	}

	for !atEnd() {
		if pieceIndex == 8 {
			return addr, errInvalidIPv6
		}
		if cur() == ':' {
			if compress >= 0 {
				return addr, errInvalidIPv6
			}
			pos++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value := 0
		length := 0
		for length < 4 && !atEnd() && isASCIIHexDigit(cur()) {
			value = value*16 + hexDigitValue(cur())
			pos++
			length++
		}

		if cur() == '.' {
			if length == 0 {
				return addr, errInvalidIPv6
			}
			pos -= length
			if pieceIndex > 6 {
				return addr, errInvalidIPv6
			}
			numbersSeen := 0
			for !atEnd() {
				ipv4Piece := -1
				if numbersSeen > 0 {
					if cur() == '.' && numbersSeen < 4 {
						pos++
					} else {
						return addr, errInvalidIPv6
					}
				}
				if atEnd() || !isASCIIDigit(cur()) {
					return addr, errInvalidIPv6
				}
				for !atEnd() && isASCIIDigit(cur()) {
					digit := int(cur() - '0')
					switch {
					case ipv4Piece == -1:
						ipv4Piece = digit
					case ipv4Piece == 0:
						return addr, errInvalidIPv6
					default:
						ipv4Piece = ipv4Piece*10 + digit
					}
					if ipv4Piece > 255 {
						return addr, errInvalidIPv6
					}
					pos++
				}
				addr[pieceIndex] = addr[pieceIndex]*0x100 + uint16(ipv4Piece)
				numbersSeen++
				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}
			if numbersSeen != 4 {
				return addr, errInvalidIPv6
			}
			break
		}

		if cur() == ':' {
			pos++
			if atEnd() {
				return addr, errInvalidIPv6
			}
		} else if !atEnd() {
			return addr, errInvalidIPv6
		}
		addr[pieceIndex] = uint16(value)
		pieceIndex++
	}

	if compress >= 0 {
		swaps := pieceIndex - compress
		pieceIndex = 7
		for pieceIndex != 0 && swaps > 0 {
			addr[pieceIndex], addr[compress+swaps-1] = addr[compress+swaps-1], addr[pieceIndex]
			pieceIndex--
			swaps--
		}
	} else if pieceIndex != 8 {
		return addr, errInvalidIPv6
	}

	return addr, nil
}

// serializeIPv6Address renders addr using the shortest canonical form: the
// first, longest run of two or more consecutive zero pieces is replaced by
// "::"; other pieces are lowercase hex with no leading zeros.
func serializeIPv6Address(addr IPv6Address) string {
	compress, compressLen := longestZeroRun(addr)
	if compressLen < 2 {
		compress = -1
	}

	var b strings.Builder
	b.WriteByte('[')
	ignore0 := false
	for i := 0; i < 8; i++ {
		if ignore0 {
			if addr[i] == 0 {
				continue
			}
			ignore0 = false
		}
		if i == compress {
			if i == 0 {
				b.WriteString("::")
			} else {
				b.WriteByte(':')
			}
			ignore0 = true
			continue
		}
		fmt.Fprintf(&b, "%x", addr[i])
		if i != 7 {
			b.WriteByte(':')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// longestZeroRun finds the first, longest run of two or more consecutive
// zero pieces. It returns a length of 0 if no such run exists.
func longestZeroRun(addr IPv6Address) (start, length int) {
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0
	for i := 0; i < 8; i++ {
		if addr[i] == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curStart, curLen = -1, 0
		}
	}
	if bestLen < 2 {
		return -1, 0
	}
	return bestStart, bestLen
}
