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

import "testing"

func TestParseIPv6RoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"::1", "[::1]"},
		{"::", "[::]"},
		{"1:2:3:4:5:6:7:8", "[1:2:3:4:5:6:7:8]"},
		{"2001:db8::1", "[2001:db8::1]"},
		{"::ffff:192.168.1.1", "[::ffff:c0a8:101]"},
		{"1::", "[1::]"},
		{"0:0:0:0:0:0:0:0", "[::]"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			addr, err := parseIPv6Address(tt.input)
			if err != nil {
				t.Fatalf("parseIPv6Address(%q) error: %v", tt.input, err)
			}
			if got := serializeIPv6Address(addr); got != tt.want {
				t.Errorf("serializeIPv6Address = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseIPv6Invalid(t *testing.T) {
	tests := []string{
		"",
		"1:2:3:4:5:6:7:8:9",
		"1::2::3",
		"gggg::1",
		"1:2:3:4:5:6:7",
	}
	for _, in := range tests {
		if _, err := parseIPv6Address(in); err == nil {
			t.Errorf("parseIPv6Address(%q) = nil error, want error", in)
		}
	}
}

func TestLongestZeroRun(t *testing.T) {
	addr := IPv6Address{1, 0, 0, 0, 2, 0, 0, 0}
	start, length := longestZeroRun(addr)
	if start != 1 || length != 3 {
		t.Errorf("longestZeroRun = (%d, %d), want (1, 3)", start, length)
	}

	allZero := IPv6Address{}
	start, length = longestZeroRun(allZero)
	if start != 0 || length != 8 {
		t.Errorf("longestZeroRun(all zero) = (%d, %d), want (0, 8)", start, length)
	}

	noRun := IPv6Address{1, 2, 3, 4, 5, 6, 7, 8}
	if _, length = longestZeroRun(noRun); length != 0 {
		t.Errorf("longestZeroRun(no zeroes) length = %d, want 0", length)
	}
}
