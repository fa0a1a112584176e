// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package inistore

import (
	"io"
	"maps"
	"os"
	"slices"

	"github.com/z5labs/inistore/internal/slogfield"
	"github.com/z5labs/inistore/internal/try"
	"github.com/z5labs/inistore/section"

	"gopkg.in/ini.v1"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteConfig creates the config directory, if missing, and then the config
// file from the store sections, if the file does not exist yet. An existing
// file is never modified.
//
// The directory is created with a single level os.Mkdir so a missing parent
// directory is reported as a CreateDirError.
func (s *Store) WriteConfig() error {
	err := s.ensureDir()
	if err != nil {
		return err
	}

	if isFile(s.location) {
		s.log.Info("config file detected", slogfield.Path(s.location))
		return nil
	}

	f, err := s.build()
	if err != nil {
		return err
	}

	err = writeFile(s.location, f)
	if err != nil {
		werr := WriteError{Path: s.location, Cause: err}
		s.log.Error("failed to write config file", slogfield.Path(s.location), slogfield.Error(werr))
		return werr
	}
	s.log.Info("config written", slogfield.Path(s.location))
	return nil
}

func (s *Store) ensureDir() error {
	if s.dir == "" {
		return nil
	}
	if isDir(s.dir) {
		s.log.Debug("config directory found", slogfield.Path(s.dir))
		return nil
	}

	err := os.Mkdir(s.dir, dirPerm)
	if err != nil {
		cerr := CreateDirError{Dir: s.dir, Cause: err}
		s.log.Error("failed to create config directory", slogfield.Path(s.dir), slogfield.Error(cerr))
		return cerr
	}
	s.log.Debug("config directory created", slogfield.Path(s.dir))
	return nil
}

func (s *Store) build() (*ini.File, error) {
	if s.src == nil {
		err := section.MissingDefaultError{}
		s.log.Error("no sections to write", slogfield.Error(err))
		return nil, err
	}

	l, err := s.src.Sections()
	if err != nil {
		serr := SourceError{Cause: err}
		s.log.Error("failed to get sections", slogfield.Error(serr))
		return nil, serr
	}

	err = l.Validate()
	if err != nil {
		s.log.Error("invalid sections", slogfield.Strings("sections", l.Names()), slogfield.Error(err))
		return nil, err
	}

	f := ini.Empty(loadOptions)
	err = setOptions(f.Section(ini.DefaultSection), l[0].Options)
	if err != nil {
		s.log.Error("invalid DEFAULT section", slogfield.Error(err))
		return nil, err
	}
	for i, sec := range l[1:] {
		// A repeated section name replaces the earlier one.
		f.DeleteSection(sec.Name)

		iniSec, err := f.NewSection(sec.Name)
		if err == nil {
			err = setOptions(iniSec, sec.Options)
		}
		if err != nil {
			s.log.Error(
				"invalid section",
				slogfield.String("section", sec.Name),
				slogfield.Int("index", i+1),
				slogfield.Error(err),
			)
			return nil, err
		}
	}
	return f, nil
}

func setOptions(sec *ini.Section, opts map[string]string) error {
	for _, k := range slices.Sorted(maps.Keys(opts)) {
		_, err := sec.NewKey(k, opts[k])
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, f *ini.File) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	defer try.Close(&err, file)

	_, err = encode(file, f)
	return err
}

// encode writes f in ini format. ini omits the DEFAULT header
// unless the package wide ini.DefaultHeader is set, so it is
// written here instead.
func encode(w io.Writer, f *ini.File) (int64, error) {
	n, err := io.WriteString(w, "["+section.Default+"]"+ini.LineBreak)
	if err != nil {
		return int64(n), err
	}
	m, err := f.WriteTo(w)
	return int64(n) + m, err
}
