// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package inistore

import (
	"io"
	"maps"
	"strings"

	"github.com/z5labs/inistore/section"
)

// Sections returns the names of all loaded sections except
// DEFAULT, in file order.
func (s *Store) Sections() []string {
	names := s.file.SectionStrings()
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == section.Default {
			continue
		}
		out = append(out, name)
	}
	return out
}

// HasSection reports whether the named section was loaded.
func (s *Store) HasSection(name string) bool {
	_, err := s.file.GetSection(name)
	return err == nil
}

// Defaults returns a copy of the DEFAULT section options.
func (s *Store) Defaults() map[string]string {
	return s.file.Section(section.Default).KeysHash()
}

// Section returns the options of the named section merged over the
// DEFAULT section options.
func (s *Store) Section(name string) (map[string]string, bool) {
	sec, err := s.file.GetSection(name)
	if err != nil {
		return nil, false
	}

	opts := s.Defaults()
	maps.Copy(opts, sec.KeysHash())
	return opts, true
}

// Get returns the value of key in the named section, falling back to the
// DEFAULT section. Keys are matched case-insensitively.
func (s *Store) Get(name, key string) (string, bool) {
	opts, ok := s.Section(name)
	if !ok {
		return "", false
	}
	v, ok := opts[strings.ToLower(key)]
	return v, ok
}

// WriteTo serializes the loaded config in ini format.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	return encode(w, s.file)
}
