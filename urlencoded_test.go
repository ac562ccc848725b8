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
	"reflect"
	"testing"
)

func TestParseFormURLEncoded(t *testing.T) {
	tests := []struct {
		input string
		want  []pair
	}{
		{"a=1&b=2", []pair{{"a", "1"}, {"b", "2"}}},
		{"a=1&&b=2", []pair{{"a", "1"}, {"b", "2"}}},
		{"a", []pair{{"a", ""}}},
		{"a+b=c+d", []pair{{"a b", "c d"}}},
		{"a=%31%32", []pair{{"a", "12"}}},
		{"", nil},
	}
	for _, tt := range tests {
		got := parseFormURLEncoded(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormURLEncoded(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSerializeFormURLEncoded(t *testing.T) {
	pairs := []pair{{"a", "1"}, {"b c", "d e"}}
	got := serializeFormURLEncoded(pairs)
	if got != "a=1&b+c=d+e" {
		t.Errorf("serializeFormURLEncoded = %q, want a=1&b+c=d+e", got)
	}
}

func TestFormURLEncodedRoundTrip(t *testing.T) {
	pairs := []pair{{"name", "a b&c=d"}, {"key2", "世界"}}
	serialized := serializeFormURLEncoded(pairs)
	got := parseFormURLEncoded(serialized)
	if !reflect.DeepEqual(got, pairs) {
		t.Errorf("round trip = %v, want %v", got, pairs)
	}
}
