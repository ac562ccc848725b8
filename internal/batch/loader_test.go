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

package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	const contents = `
entries:
  - name: relative
    ref: /d
    base: http://example.com/a/b/c
  - name: absolute
    ref: https://example.org/
    append:
      q: "1"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(f.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(f.Entries))
	}
	if f.Entries[0].Name != "relative" || f.Entries[0].Ref != "/d" {
		t.Errorf("Entries[0] = %+v", f.Entries[0])
	}
	if f.Entries[1].Append["q"] != "1" {
		t.Errorf("Entries[1].Append[q] = %q, want 1", f.Entries[1].Append["q"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != ErrFileNotFound {
		t.Errorf("Load() error = %v, want ErrFileNotFound", err)
	}
}
