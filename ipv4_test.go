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

func TestParseIPv4Address(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"127.0.0.1", "127.0.0.1"},
		{"0.0.0.0", "0.0.0.0"},
		{"255.255.255.255", "255.255.255.255"},
		{"1.2.3", "1.2.0.3"},
		{"1.2", "1.0.0.2"},
		{"1", "0.0.0.1"},
		{"0x7f.0.0.1", "127.0.0.1"},
		{"0177.0.0.1", "127.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseIPv4Address(tt.input)
			if err != nil {
				t.Fatalf("parseIPv4Address(%q) error: %v", tt.input, err)
			}
			if s := serializeIPv4Address(got); s != tt.want {
				t.Errorf("serialize = %q, want %q", s, tt.want)
			}
		})
	}
}

func TestParseIPv4AddressInvalid(t *testing.T) {
	tests := []string{
		"256.0.0.1",
		"1.2.3.4.5",
		"1.2.3.256",
		"0x100.0.0.1",
		"999999999999.0.0.1",
	}
	for _, in := range tests {
		if _, err := parseIPv4Address(in); err == nil {
			t.Errorf("parseIPv4Address(%q) = nil error, want error", in)
		}
	}
}

func TestLooksLikeIPv4(t *testing.T) {
	if !looksLikeIPv4("1.2.3.4") {
		t.Error("looksLikeIPv4(1.2.3.4) = false, want true")
	}
	if !looksLikeIPv4("1.2.3.4.") {
		t.Error("looksLikeIPv4(1.2.3.4.) = false, want true")
	}
	if looksLikeIPv4("example.com") {
		t.Error("looksLikeIPv4(example.com) = true, want false")
	}
	if looksLikeIPv4("") {
		t.Error("looksLikeIPv4('') = true, want false")
	}
}
