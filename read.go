// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package inistore

import (
	"os"

	"github.com/z5labs/inistore/internal/slogfield"

	"gopkg.in/ini.v1"
)

// Option names are case-insensitive and stored lower-cased.
// Section names stay case-sensitive. A trailing backslash is
// part of the value, not a line continuation.
var loadOptions = ini.LoadOptions{
	InsensitiveKeys:    true,
	IgnoreContinuation: true,
}

// ReadConfig parses the config file at the store location into the Store.
// The previously loaded contents are only replaced if parsing succeeds.
func (s *Store) ReadConfig() error {
	if !isFile(s.location) {
		err := FileNotFoundError{Path: s.location}
		s.log.Error("could not find config file", slogfield.Path(s.location), slogfield.Error(err))
		return err
	}

	b, err := os.ReadFile(s.location)
	if err != nil {
		rerr := ReadError{Path: s.location, Cause: err}
		s.log.Error("failed to read config file", slogfield.Path(s.location), slogfield.Error(rerr))
		return rerr
	}

	f, err := ini.LoadSources(loadOptions, b)
	if err != nil {
		perr := ParseError{Path: s.location, Cause: err}
		s.log.Error("failed to parse config file", slogfield.Path(s.location), slogfield.Error(perr))
		return perr
	}

	s.file = f
	s.log.Info("config successfully read", slogfield.Path(s.location))
	return nil
}
