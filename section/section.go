// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package section models the ordered list of sections a config file is built from.
//
// A List mirrors the on-disk layout of an ini file: its first entry must be
// the DEFAULT section and every following entry becomes its own named
// section. Lists can be written by hand or decoded from YAML and JSON
// documents shaped like
//
//	- DEFAULT:
//	    log_level: info
//	- database:
//	    host: localhost
//	    port: 5432
package section

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Default is the name of the section which must come first in a List.
const Default = "DEFAULT"

// Section is a single named group of options.
type Section struct {
	Name    string
	Options map[string]string
}

// List is an ordered sequence of sections.
type List []Section

// Source defines valid section sources as those who can
// produce an ordered List.
type Source interface {
	Sections() (List, error)
}

// SourceFunc is a functional implementation of the Source interface.
type SourceFunc func() (List, error)

// Sections implements the Source interface.
func (f SourceFunc) Sections() (List, error) {
	return f()
}

// Sections implements the Source interface.
func (l List) Sections() (List, error) {
	return l, nil
}

// MissingDefaultError occurs when a List is empty or its
// first entry is not the DEFAULT section.
type MissingDefaultError struct {
	Found string
}

// Error implements the error interface.
func (e MissingDefaultError) Error() string {
	if e.Found == "" {
		return "DEFAULT section must always be first in the section list"
	}
	return fmt.Sprintf("DEFAULT section must always be first in the section list: found %q", e.Found)
}

// DuplicateDefaultError occurs when the DEFAULT section appears
// again after the first entry of a List.
type DuplicateDefaultError struct {
	Index int
}

// Error implements the error interface.
func (e DuplicateDefaultError) Error() string {
	return fmt.Sprintf("DEFAULT section repeated at index %d", e.Index)
}

// EmptyNameError occurs when a section in a List has no name.
type EmptyNameError struct {
	Index int
}

// Error implements the error interface.
func (e EmptyNameError) Error() string {
	return fmt.Sprintf("section at index %d has an empty name", e.Index)
}

// DuplicateOptionError occurs when two option keys of the same
// section only differ by case. Option keys are case-insensitive
// once written, so one of them would be lost.
type DuplicateOptionError struct {
	Section string
	Keys    []string
}

// Error implements the error interface.
func (e DuplicateOptionError) Error() string {
	return fmt.Sprintf("section %q has options differing only by case: %s", e.Section, strings.Join(e.Keys, ", "))
}

// Validate reports whether l can be written as a config file.
func (l List) Validate() error {
	if len(l) == 0 {
		return MissingDefaultError{}
	}
	if l[0].Name != Default {
		return MissingDefaultError{Found: l[0].Name}
	}
	for i, sec := range l[1:] {
		switch sec.Name {
		case Default:
			return DuplicateDefaultError{Index: i + 1}
		case "":
			return EmptyNameError{Index: i + 1}
		}
	}
	for _, sec := range l {
		err := validateOptions(sec)
		if err != nil {
			return err
		}
	}
	return nil
}

func validateOptions(sec Section) error {
	seen := make(map[string]string, len(sec.Options))
	for _, k := range slices.Sorted(maps.Keys(sec.Options)) {
		lower := strings.ToLower(k)
		prev, ok := seen[lower]
		if ok {
			return DuplicateOptionError{Section: sec.Name, Keys: []string{prev, k}}
		}
		seen[lower] = k
	}
	return nil
}

// Names returns the section names in order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, sec := range l {
		names[i] = sec.Name
	}
	return names
}
