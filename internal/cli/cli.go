// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the inistore command.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/z5labs/inistore"
	"github.com/z5labs/inistore/internal/try"
	"github.com/z5labs/inistore/section"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables which
// can be used in place of the persistent flags.
const EnvPrefix = "INISTORE"

// Execute runs the inistore command with the given args.
func Execute(ctx context.Context, args ...string) error {
	cmd := NewCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewCommand returns the root inistore command.
func NewCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "inistore",
		Short:        "Create and inspect ini config files",
		SilenceUsage: true,
		Long: `inistore makes sure an ini config file exists and prints its contents.

If the config file is missing it is created from a section document given
with --defaults. The document is a YAML or JSON list whose first entry must
be the DEFAULT section:

  - DEFAULT:
      log_level: info
  - database:
      host: {{ env "DB_HOST" }}

Every flag can also be set through an INISTORE_ prefixed environment
variable, e.g. INISTORE_DIR or INISTORE_LOG_LEVEL.`,
	}

	flags := root.PersistentFlags()
	flags.String("dir", ".", "directory holding the config file")
	flags.String("file", inistore.DefaultFilename, "config file name")
	flags.String("defaults", "", "YAML or JSON section document used to create a missing config file")
	flags.String("log-level", "error", "diagnostics level (debug, info, warn, error)")

	// BindPFlags only fails for a nil flag set.
	_ = v.BindPFlags(flags)

	root.AddCommand(
		initCommand(v),
		getCommand(v),
		sectionsCommand(v),
		showCommand(v),
	)
	return root
}

// UnknownOptionError occurs when a requested option is neither
// in the section nor in the DEFAULT section.
type UnknownOptionError struct {
	Section string
	Key     string
}

// Error implements the error interface.
func (e UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q in section %q", e.Key, e.Section)
}

func initCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config file if it is missing and print its location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer try.Recover(&err)

			store, err := openStore(cmd, v)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), store.Location())
			return err
		},
	}
}

func getCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get SECTION KEY",
		Short: "Print a single option, falling back to the DEFAULT section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer try.Recover(&err)

			store, err := openStore(cmd, v)
			if err != nil {
				return err
			}

			val, ok := store.Get(args[0], args[1])
			if !ok {
				return UnknownOptionError{Section: args[0], Key: args[1]}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), val)
			return err
		},
	}
}

func sectionsCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the named sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer try.Recover(&err)

			store, err := openStore(cmd, v)
			if err != nil {
				return err
			}
			for _, name := range store.Sections() {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func showCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the whole config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer try.Recover(&err)

			store, err := openStore(cmd, v)
			if err != nil {
				return err
			}
			_, err = store.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}

func openStore(cmd *cobra.Command, v *viper.Viper) (*inistore.Store, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(v.GetString("log-level")))
	if err != nil {
		return nil, err
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	opts := []inistore.Option{inistore.WithLogger(log)}
	if path := v.GetString("defaults"); path != "" {
		opts = append(opts, inistore.WithSource(defaultsSource(path)))
	}

	store := inistore.New(v.GetString("file"), v.GetString("dir"), opts...)
	return store.GetConfig()
}

func defaultsSource(path string) section.Source {
	r := section.RenderTextTemplate(
		section.NewFileReader(os.DirFS(filepath.Dir(path)), filepath.Base(path)),
		section.TemplateFunc("env", os.Getenv),
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return section.FromJson(r)
	}
	return section.FromYaml(r)
}
