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

func TestPercentEncodeToString(t *testing.T) {
	got := percentEncodeToString("a b", isComponentPercentEncode, false)
	if got != "a%20b" {
		t.Errorf("percentEncodeToString = %q, want a%%20b", got)
	}
}

func TestPercentEncodeSpaceAsPlus(t *testing.T) {
	got := percentEncodeToString("a b", isFormURLEncodedPercentEncode, true)
	if got != "a+b" {
		t.Errorf("percentEncodeToString(spaceAsPlus) = %q, want a+b", got)
	}
}

func TestPercentDecodeToString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a%20b", "a b"},
		{"a%2Bb", "a+b"},
		{"no-escapes", "no-escapes"},
		{"trailing%", "trailing%"},
		{"bad%zzhex", "bad%zzhex"},
	}
	for _, tt := range tests {
		if got := percentDecodeToString(tt.input); got != tt.want {
			t.Errorf("percentDecodeToString(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPercentEncodeDecodeRoundTrip(t *testing.T) {
	const input = "hello, 世界!"
	encoded := percentEncodeToString(input, isComponentPercentEncode, false)
	decoded := percentDecodeToString(encoded)
	if decoded != input {
		t.Errorf("round trip = %q, want %q", decoded, input)
	}
}
