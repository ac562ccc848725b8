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

func TestIsSpecialScheme(t *testing.T) {
	for _, s := range []string{"ftp", "file", "http", "https", "ws", "wss"} {
		if !isSpecialScheme(s) {
			t.Errorf("isSpecialScheme(%q) = false, want true", s)
		}
	}
	if isSpecialScheme("mailto") {
		t.Error("isSpecialScheme(mailto) = true, want false")
	}
}

func TestSetPortElidesDefault(t *testing.T) {
	r := &record{scheme: "http"}
	r.setPort(80)
	if r.port != nil {
		t.Errorf("setPort(80) on http left port = %v, want nil", *r.port)
	}
	r.setPort(8080)
	if r.port == nil || *r.port != 8080 {
		t.Errorf("setPort(8080) on http = %v, want 8080", r.port)
	}
}

func TestShortenPath(t *testing.T) {
	r := &record{path: []string{"a", "b", "c"}}
	r.shortenPath()
	if len(r.path) != 2 || r.path[1] != "b" {
		t.Errorf("shortenPath() path = %v, want [a b]", r.path)
	}
}

func TestShortenPathFileDriveLetterNoop(t *testing.T) {
	r := &record{scheme: "file", path: []string{"C:"}}
	r.shortenPath()
	if len(r.path) != 1 {
		t.Errorf("shortenPath() on single file drive letter = %v, want unchanged", r.path)
	}
}

func TestCanHaveUsernamePasswordPort(t *testing.T) {
	r := &record{scheme: "http", host: domainHost("example.com")}
	if !r.canHaveUsernamePasswordPort() {
		t.Error("canHaveUsernamePasswordPort() = false, want true")
	}

	fileRec := &record{scheme: "file", host: domainHost("example.com")}
	if fileRec.canHaveUsernamePasswordPort() {
		t.Error("canHaveUsernamePasswordPort() on file: = true, want false")
	}

	opaqueRec := &record{scheme: "mailto", opaque: true}
	if opaqueRec.canHaveUsernamePasswordPort() {
		t.Error("canHaveUsernamePasswordPort() on opaque = true, want false")
	}

	emptyHostRec := &record{scheme: "http", host: emptyHost}
	if emptyHostRec.canHaveUsernamePasswordPort() {
		t.Error("canHaveUsernamePasswordPort() with empty host = true, want false")
	}
}

func TestRecordClone(t *testing.T) {
	q := "a=1"
	r := &record{scheme: "http", path: []string{"x"}, query: &q}
	cp := r.clone()
	cp.path[0] = "y"
	*cp.query = "b=2"
	if r.path[0] != "x" {
		t.Errorf("clone mutated original path: %v", r.path)
	}
	if *r.query != "a=1" {
		t.Errorf("clone mutated original query: %v", *r.query)
	}
}
