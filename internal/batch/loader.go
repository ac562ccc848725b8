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

// Package batch loads a YAML file describing a list of URL references to
// resolve in one pass, for the weburl CLI's "batch" subcommand.
package batch

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrFileNotFound is returned when the requested batch file does not exist.
var ErrFileNotFound = errors.New("batch: file not found")

// Entry is a single line of work: a reference to resolve, optionally against
// a base URL, with an optional query-string mutation to apply afterward.
type Entry struct {
	Name   string            `yaml:"name"`
	Ref    string            `yaml:"ref"`
	Base   string            `yaml:"base"`
	Append map[string]string `yaml:"append"`
}

// File is the top-level shape of a batch YAML document.
type File struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads and parses path as a batch File. A missing file is reported as
// ErrFileNotFound so callers can distinguish it from a malformed one.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from a user-supplied CLI flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
