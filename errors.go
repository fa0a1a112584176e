// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package inistore

import (
	"fmt"
	"io/fs"
)

// FileNotFoundError occurs when reading is requested but no
// regular file exists at the store location.
type FileNotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e FileNotFoundError) Error() string {
	return fmt.Sprintf("could not find config file: %s", e.Path)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e FileNotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// ReadError occurs when the config file exists but could not be read.
type ReadError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e ReadError) Error() string {
	return fmt.Sprintf("failed to read config file %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ReadError) Unwrap() error {
	return e.Cause
}

// ParseError occurs when the config file content is not valid ini.
type ParseError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("failed to parse config file %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ParseError) Unwrap() error {
	return e.Cause
}

// CreateDirError occurs when the config directory is missing and
// could not be created.
type CreateDirError struct {
	Dir   string
	Cause error
}

// Error implements the error interface.
func (e CreateDirError) Error() string {
	return fmt.Sprintf("failed to create config directory %s: %s", e.Dir, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CreateDirError) Unwrap() error {
	return e.Cause
}

// SourceError occurs when the section.Source fails to produce its sections.
type SourceError struct {
	Cause error
}

// Error implements the error interface.
func (e SourceError) Error() string {
	return fmt.Sprintf("failed to get sections from source: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e SourceError) Unwrap() error {
	return e.Cause
}

// WriteError occurs when the config file could not be written.
type WriteError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e WriteError) Error() string {
	return fmt.Sprintf("failed to write config file %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e WriteError) Unwrap() error {
	return e.Cause
}

// InvalidConfigurationError occurs when GetConfig is called with neither
// an existing config file nor sections to build one from.
type InvalidConfigurationError struct {
	Location string
}

// Error implements the error interface.
func (e InvalidConfigurationError) Error() string {
	if e.Location == "" {
		return "GetConfig requires either a valid config location or a list of sections"
	}
	return fmt.Sprintf("GetConfig requires either a valid config location or a list of sections: %s does not exist", e.Location)
}
