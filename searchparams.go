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
	"sort"
	"strings"
)

// KV is a single name/value pair, used by NewSearchParamsFromPairs to build
// a SearchParams with a caller-specified, deterministic order.
type KV struct {
	Name  string
	Value string
}

// SearchParams is a live view over a query string: a name/value sequence
// that keeps insertion order, plus a weak back-reference to the URL it was
// obtained from (see SPEC_FULL.md §5). Every mutating method writes the
// serialized result back through that reference; Detach breaks the link so
// the SearchParams becomes a free-standing container.
type SearchParams struct {
	pairs  []pair
	parent *URL
}

// NewSearchParams parses init as an application/x-www-form-urlencoded
// string. A single leading '?' is stripped first, matching the convenience
// the constructor offers over passing a bare query string.
func NewSearchParams(init string) *SearchParams {
	init = strings.TrimPrefix(init, "?")
	return &SearchParams{pairs: parseFormURLEncoded(init)}
}

// NewSearchParamsFromPairs builds a SearchParams directly from an ordered
// list of name/value pairs, with no parsing or decoding.
func NewSearchParamsFromPairs(kvs []KV) *SearchParams {
	pairs := make([]pair, len(kvs))
	for i, kv := range kvs {
		pairs[i] = pair{name: kv.Name, value: kv.Value}
	}
	return &SearchParams{pairs: pairs}
}

// NewSearchParamsFromValues builds a SearchParams from a name-to-values
// map, appending one pair per value. Go map iteration order is
// unspecified, so the resulting order across distinct names is
// unspecified too; use NewSearchParamsFromPairs when order matters.
func NewSearchParamsFromValues(values map[string][]string) *SearchParams {
	sp := &SearchParams{}
	for name, vs := range values {
		for _, v := range vs {
			sp.pairs = append(sp.pairs, pair{name: name, value: v})
		}
	}
	return sp
}

// Detach severs the back-reference to the parent URL. After Detach, further
// mutations no longer update any URL's query.
func (sp *SearchParams) Detach() { sp.parent = nil }

// Size reports the number of name/value pairs.
func (sp *SearchParams) Size() int { return len(sp.pairs) }

// Append adds a new name/value pair without removing any existing entry for
// name.
func (sp *SearchParams) Append(name, value string) {
	sp.pairs = append(sp.pairs, pair{name: name, value: value})
	sp.update()
}

// Delete removes every pair whose name matches name. If value is non-nil,
// only pairs that also match value are removed.
func (sp *SearchParams) Delete(name string, value *string) {
	out := sp.pairs[:0]
	for _, p := range sp.pairs {
		if p.name == name && (value == nil || p.value == *value) {
			continue
		}
		out = append(out, p)
	}
	sp.pairs = out
	sp.update()
}

// Get returns the value of the first pair named name, and whether one was
// found.
func (sp *SearchParams) Get(name string) (string, bool) {
	for _, p := range sp.pairs {
		if p.name == name {
			return p.value, true
		}
	}
	return "", false
}

// GetAll returns the values of every pair named name, in order.
func (sp *SearchParams) GetAll(name string) []string {
	var out []string
	for _, p := range sp.pairs {
		if p.name == name {
			out = append(out, p.value)
		}
	}
	return out
}

// Has reports whether any pair matches name. If value is non-nil, the pair
// must also match value.
func (sp *SearchParams) Has(name string, value *string) bool {
	for _, p := range sp.pairs {
		if p.name == name && (value == nil || p.value == *value) {
			return true
		}
	}
	return false
}

// Set replaces the value of the first pair named name with value and
// removes every subsequent pair named name. If no pair is named name, one
// is appended.
func (sp *SearchParams) Set(name, value string) {
	found := false
	out := sp.pairs[:0]
	for _, p := range sp.pairs {
		if p.name != name {
			out = append(out, p)
			continue
		}
		if found {
			continue
		}
		p.value = value
		out = append(out, p)
		found = true
	}
	sp.pairs = out
	if !found {
		sp.pairs = append(sp.pairs, pair{name: name, value: value})
	}
	sp.update()
}

// Sort reorders pairs by name, comparing names the way JavaScript's default
// string sort does (by UTF-16 code unit; see lessUTF16), stably preserving
// the relative order of pairs that share a name.
func (sp *SearchParams) Sort() {
	sort.SliceStable(sp.pairs, func(i, j int) bool {
		return lessUTF16(sp.pairs[i].name, sp.pairs[j].name)
	})
	sp.update()
}

// ForEach calls fn once per pair, in order.
func (sp *SearchParams) ForEach(fn func(name, value string)) {
	for _, p := range sp.pairs {
		fn(p.name, p.value)
	}
}

// Entries returns every pair as a [2]string{name, value}, in order.
func (sp *SearchParams) Entries() [][2]string {
	out := make([][2]string, len(sp.pairs))
	for i, p := range sp.pairs {
		out[i] = [2]string{p.name, p.value}
	}
	return out
}

// Keys returns the name of every pair, in order, including duplicates.
func (sp *SearchParams) Keys() []string {
	out := make([]string, len(sp.pairs))
	for i, p := range sp.pairs {
		out[i] = p.name
	}
	return out
}

// Values returns the value of every pair, in order.
func (sp *SearchParams) Values() []string {
	out := make([]string, len(sp.pairs))
	for i, p := range sp.pairs {
		out[i] = p.value
	}
	return out
}

// String serializes the pairs as application/x-www-form-urlencoded.
func (sp *SearchParams) String() string {
	return serializeFormURLEncoded(sp.pairs)
}

// update writes the serialized form back to the parent URL's query, per the
// "update" steps in SPEC_FULL.md §4.6: an empty serialization clears the
// query entirely rather than leaving an empty string.
func (sp *SearchParams) update() {
	if sp.parent == nil {
		return
	}
	serialized := sp.String()
	if serialized == "" {
		sp.parent.rec.query = nil
		return
	}
	sp.parent.rec.query = &serialized
}
