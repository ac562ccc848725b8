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

func TestParseHostDomain(t *testing.T) {
	h, err := parseHost("Example.COM", false)
	if err != nil {
		t.Fatalf("parseHost error: %v", err)
	}
	if got := h.String(); got != "example.com" {
		t.Errorf("String() = %q, want example.com", got)
	}
}

func TestParseHostIPv4(t *testing.T) {
	h, err := parseHost("192.168.0.1", false)
	if err != nil {
		t.Fatalf("parseHost error: %v", err)
	}
	if h.kind != hostIPv4 {
		t.Fatalf("kind = %v, want hostIPv4", h.kind)
	}
	if got := h.String(); got != "192.168.0.1" {
		t.Errorf("String() = %q, want 192.168.0.1", got)
	}
}

func TestParseHostIPv6Brackets(t *testing.T) {
	h, err := parseHost("[::1]", false)
	if err != nil {
		t.Fatalf("parseHost error: %v", err)
	}
	if got := h.String(); got != "[::1]" {
		t.Errorf("String() = %q, want [::1]", got)
	}
}

func TestParseHostUnterminatedBracket(t *testing.T) {
	if _, err := parseHost("[::1", false); err == nil {
		t.Fatal("expected error for unterminated bracket")
	}
}

func TestParseHostEmpty(t *testing.T) {
	h, err := parseHost("", false)
	if err != nil {
		t.Fatalf("parseHost error: %v", err)
	}
	if !h.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true")
	}
}

func TestParseOpaqueHost(t *testing.T) {
	h, err := parseHost("a b", true)
	if err != nil {
		t.Fatalf("parseHost error: %v", err)
	}
	if got := h.String(); got != "a%20b" {
		t.Errorf("String() = %q, want a%%20b", got)
	}
}

func TestParseHostForbiddenCodePoint(t *testing.T) {
	if _, err := parseHost("exa mple.com", false); err == nil {
		t.Fatal("expected error for space in domain host")
	}
}

func TestHostZeroValueAbsent(t *testing.T) {
	var h Host
	if !h.IsAbsent() {
		t.Errorf("zero value Host.IsAbsent() = false, want true")
	}
	if got := h.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}
