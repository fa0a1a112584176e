// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package inistore

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/z5labs/inistore/internal/noop"
	"github.com/z5labs/inistore/internal/slogfield"
	"github.com/z5labs/inistore/section"

	"gopkg.in/ini.v1"
)

// DefaultFilename is used by GetConfig when sections are given
// but the Store was constructed without a filename.
const DefaultFilename = "config.ini"

// Option are used to configure a Store.
type Option func(*Store)

// WithLogger sets the diagnostics sink. A nil logger keeps the
// default sink, which discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log == nil {
			return
		}
		s.log = log
	}
}

// WithSections sets the sections used to create the config file
// when it does not exist yet.
// Option keys are case-insensitive, so keys of one section
// differing only by case are rejected when the file is written.
func WithSections(l section.List) Option {
	return WithSource(l)
}

// WithSource sets where the sections used to create the config
// file come from. The source is only consulted when the file
// has to be written.
func WithSource(src section.Source) Option {
	return func(s *Store) {
		s.src = src
	}
}

// Store manages a single ini config file.
type Store struct {
	dir      string
	filename string
	location string

	src  section.Source
	log  *slog.Logger
	file *ini.File
}

// New returns a Store for the file named filename inside dir.
// No disk I/O is performed.
func New(filename, dir string, opts ...Option) *Store {
	s := &Store{
		dir:      dir,
		filename: filename,
		location: joinLocation(dir, filename),
		log:      noop.Logger(),
		file:     ini.Empty(loadOptions),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func joinLocation(dir, filename string) string {
	if filename == "" {
		return ""
	}
	return filepath.ToSlash(filepath.Join(dir, filename))
}

// Preset describes a store whose location and default
// sections are known up front, e.g. an application's own
// settings file.
type Preset interface {
	Filename() string
	Dir() string
	DefaultSections() section.List
}

// FromPreset returns a Store for the given Preset. Sections supplied through
// opts take precedence over the preset defaults. The location is resolved
// to an absolute path.
func FromPreset(p Preset, opts ...Option) (*Store, error) {
	s := New(p.Filename(), p.Dir(), opts...)
	err := s.resolveLocation(p.DefaultSections())
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) resolveLocation(defaults section.List) error {
	if s.src == nil && defaults != nil {
		s.src = defaults
	}
	if s.location == "" {
		return nil
	}

	abs, err := filepath.Abs(s.location)
	if err != nil {
		s.log.Error("failed to resolve config location", slogfield.Path(s.location), slogfield.Error(err))
		return err
	}
	s.location = filepath.ToSlash(abs)
	return nil
}

// Location returns the path of the config file. It is empty
// if the Store was constructed without a filename.
func (s *Store) Location() string {
	return s.location
}

// GetConfig either reads the config file at the store location or, when
// it does not exist, builds it from the configured sections and then reads
// it back. It returns the Store so accessors can be chained.
func (s *Store) GetConfig() (*Store, error) {
	switch {
	case s.location != "" && isFile(s.location):
		s.log.Info("given config location exists, attempting read", slogfield.Path(s.location))
		return s, s.ReadConfig()
	case s.src != nil && s.location != "":
		s.log.Info("sections and config location given, attempting to write sections to location", slogfield.Path(s.location))
	case s.src != nil:
		s.location = joinLocation(s.dir, DefaultFilename)
		s.log.Info("no config location given, attempting to write sections to default location", slogfield.Path(s.location))
	default:
		err := InvalidConfigurationError{Location: s.location}
		s.log.Error("unable to get config", slogfield.Error(err))
		return s, err
	}

	err := s.WriteConfig()
	if err != nil {
		return s, err
	}
	s.log.Info("reading config back into store", slogfield.Path(s.location))
	return s, s.ReadConfig()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
