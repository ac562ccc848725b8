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

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Example.COM", "example.com"},
		{"example｡com", "example.com"},
		{"example．com", "example.com"},
		{"example。com", "example.com"},
		{"already-lower.net", "already-lower.net"},
	}
	for _, tt := range tests {
		got, err := normalizeDomain(tt.input)
		if err != nil {
			t.Fatalf("normalizeDomain(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("normalizeDomain(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeDomainRejectsControlAndPercent(t *testing.T) {
	if _, err := normalizeDomain("exa\x01mple.com"); err == nil {
		t.Error("expected error for control character")
	}
	if _, err := normalizeDomain("example%2ecom"); err == nil {
		t.Error("expected error for raw '%'")
	}
}
