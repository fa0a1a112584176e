// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package section

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type readFunc func([]byte) (int, error)

func (f readFunc) Read(b []byte) (int, error) {
	return f(b)
}

type readCloser struct {
	*strings.Reader
	closed bool
}

func (rc *readCloser) Close() error {
	rc.closed = true
	return nil
}

func TestYaml_Sections(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the underlying io.Reader fails", func(t *testing.T) {
			readErr := errors.New("failed to read")
			r := readFunc(func(b []byte) (int, error) {
				return 0, readErr
			})

			_, err := FromYaml(r).Sections()
			if !assert.ErrorIs(t, err, readErr) {
				return
			}
		})

		t.Run("if the io.Reader contains invalid YAML", func(t *testing.T) {
			r := strings.NewReader(`- DEFAULT: [`)

			_, err := FromYaml(r).Sections()

			var ierr InvalidYamlError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
			if !assert.Error(t, ierr.Unwrap()) {
				return
			}
		})

		t.Run("if an entry holds more than one section", func(t *testing.T) {
			r := strings.NewReader(`
- DEFAULT:
    a: 1
  Section1:
    b: 2
`)

			_, err := FromYaml(r).Sections()

			var ierr InvalidEntryError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.Equal(t, 0, ierr.Index) {
				return
			}
			if !assert.Equal(t, 2, ierr.Sections) {
				return
			}
		})
	})

	t.Run("will preserve section order", func(t *testing.T) {
		t.Run("if multiple sections are provided", func(t *testing.T) {
			r := strings.NewReader(`
- DEFAULT:
    log_level: info
- database:
    host: localhost
    port: 5432
    debug: false
- cache:
    ttl:
`)

			l, err := FromYaml(r).Sections()
			if !assert.Nil(t, err) {
				return
			}

			expected := List{
				{Name: Default, Options: map[string]string{"log_level": "info"}},
				{Name: "database", Options: map[string]string{"host": "localhost", "port": "5432", "debug": "false"}},
				{Name: "cache", Options: map[string]string{"ttl": ""}},
			}
			if !assert.Equal(t, expected, l) {
				return
			}
		})
	})

	t.Run("will close the io.Reader", func(t *testing.T) {
		t.Run("if it implements io.Closer", func(t *testing.T) {
			rc := &readCloser{Reader: strings.NewReader(`- DEFAULT: {}`)}

			_, err := FromYaml(rc).Sections()
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, rc.closed) {
				return
			}
		})
	})
}
