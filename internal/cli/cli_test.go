// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/z5labs/inistore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultsYaml = `- DEFAULT:
    log_level: info
- database:
    host: {{ env "INISTORE_TEST_DB_HOST" }}
    port: 5432
`

const defaultsJson = `[
  {"DEFAULT": {"log_level": "debug"}},
  {"cache": {"ttl": "10s"}}
]`

func writeDefaults(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0o644)
	require.Nil(t, err)
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestInitCommand(t *testing.T) {
	t.Run("will create the config file from a YAML document", func(t *testing.T) {
		t.Setenv("INISTORE_TEST_DB_HOST", "db.internal")
		dir := filepath.Join(t.TempDir(), "app")
		defaults := writeDefaults(t, "defaults.yaml", defaultsYaml)

		out, _, err := run(t, "init", "--dir", dir, "--file", "app.ini", "--defaults", defaults)
		if !assert.Nil(t, err) {
			return
		}

		location := filepath.ToSlash(filepath.Join(dir, "app.ini"))
		if !assert.Equal(t, location+"\n", out) {
			return
		}

		b, err := os.ReadFile(location)
		require.Nil(t, err)
		if !assert.Contains(t, string(b), "[database]") {
			return
		}
		if !assert.Contains(t, string(b), "db.internal") {
			return
		}
	})

	t.Run("will read settings from the environment", func(t *testing.T) {
		dir := t.TempDir()
		defaults := writeDefaults(t, "defaults.json", defaultsJson)
		t.Setenv("INISTORE_DIR", dir)
		t.Setenv("INISTORE_DEFAULTS", defaults)

		out, _, err := run(t, "init")
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, filepath.ToSlash(filepath.Join(dir, inistore.DefaultFilename))+"\n", out) {
			return
		}
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the file is missing and no defaults are given", func(t *testing.T) {
			_, _, err := run(t, "init", "--dir", t.TempDir())

			var ierr inistore.InvalidConfigurationError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
		})

		t.Run("if the log level is unknown", func(t *testing.T) {
			_, _, err := run(t, "init", "--dir", t.TempDir(), "--log-level", "loud")
			if !assert.Error(t, err) {
				return
			}
		})
	})

	t.Run("will log diagnostics", func(t *testing.T) {
		t.Run("if the log level allows it", func(t *testing.T) {
			defaults := writeDefaults(t, "defaults.json", defaultsJson)

			_, stderr, err := run(t, "init", "--dir", t.TempDir(), "--defaults", defaults, "--log-level", "debug")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Contains(t, stderr, "config written") {
				return
			}
		})
	})
}

func TestGetCommand(t *testing.T) {
	dir := t.TempDir()
	defaults := writeDefaults(t, "defaults.json", defaultsJson)
	_, _, err := run(t, "init", "--dir", dir, "--defaults", defaults)
	require.Nil(t, err)

	t.Run("will print the option", func(t *testing.T) {
		out, _, err := run(t, "get", "cache", "ttl", "--dir", dir)
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, "10s\n", out) {
			return
		}
	})

	t.Run("will fall back to the DEFAULT section", func(t *testing.T) {
		out, _, err := run(t, "get", "cache", "log_level", "--dir", dir)
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, "debug\n", out) {
			return
		}
	})

	t.Run("will return an UnknownOptionError", func(t *testing.T) {
		t.Run("if the option does not exist", func(t *testing.T) {
			_, _, err := run(t, "get", "cache", "size", "--dir", dir)

			var uerr UnknownOptionError
			if !assert.ErrorAs(t, err, &uerr) {
				return
			}
			if !assert.Equal(t, "size", uerr.Key) {
				return
			}
			if !assert.NotEmpty(t, uerr.Error()) {
				return
			}
		})
	})
}

func TestSectionsCommand(t *testing.T) {
	t.Setenv("INISTORE_TEST_DB_HOST", "localhost")
	dir := t.TempDir()
	defaults := writeDefaults(t, "defaults.yaml", defaultsYaml)

	out, _, err := run(t, "sections", "--dir", dir, "--defaults", defaults)
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, "database\n", out) {
		return
	}
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "app.ini"), []byte("[DEFAULT]\nname = inistore\n\n[server]\naddr = :8080\n"), 0o644)
	require.Nil(t, err)

	out, _, err := run(t, "show", "--dir", dir, "--file", "app.ini")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Contains(t, out, "[DEFAULT]") {
		return
	}
	if !assert.Contains(t, out, "[server]") {
		return
	}
	if !assert.Contains(t, out, ":8080") {
		return
	}
}
