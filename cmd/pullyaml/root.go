// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"go.yaml.in/pullyaml/option"
)

// version is the current version of the pullyaml CLI tool.
var version = "0.1.0"

// RootOptions holds the flags shared by every command.
type RootOptions struct {
	ConfigFile string
	Verbosity  int
	MaxDepth   int
}

func NewDefaultPullyamlCmd() *cobra.Command {
	return NewPullyamlCmd(&RootOptions{})
}

func NewPullyamlCmd(o *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pullyaml",
		Version: version,
		Short:   "pullyaml inspects YAML the way the pullyaml engine reads it",
		Long: `pullyaml inspects YAML the way the pullyaml engine reads it.

Every command reads YAML from a file (-f) or from stdin and writes to stdout.
Settings may be kept in a TOML file; flags override it.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.DisableAutoGenTag = true

	cmd.PersistentFlags().StringVar(&o.ConfigFile, "config", option.DefaultFile, "Configuration file (TOML)")
	cmd.PersistentFlags().CountVarP(&o.Verbosity, "verbose", "v", "Increase log verbosity (-vv traces parser states)")
	cmd.PersistentFlags().IntVar(&o.MaxDepth, "max-depth", 0, "Maximum collection nesting depth")

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewEventsCmd(o))
	cmd.AddCommand(NewTokensCmd(o))
	cmd.AddCommand(NewFmtCmd(o))
	cmd.AddCommand(NewGetCmd(o))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

// Config merges the configuration file with the flags set on cmd and
// configures logging. A missing default file is not an error; a missing
// file named with --config is.
func (o *RootOptions) Config(cmd *cobra.Command, extra ...option.Option) (*option.Config, error) {
	cfg, err := option.LoadFile(o.ConfigFile, !cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}
	flags := option.NewConfig(extra...)
	if cmd.Flags().Changed("verbose") {
		flags.Apply(option.WithVerbosity(o.Verbosity))
	}
	if cmd.Flags().Changed("max-depth") {
		flags.Apply(option.WithMaxDepth(o.MaxDepth))
	}
	cfg.Merge(flags)

	commonlog.Configure(cfg.GetVerbosity(), nil)
	return cfg, nil
}

// input opens the named file, or stdin for "" and "-". The returned close
// function is always safe to call.
func input(cmd *cobra.Command, file string) (io.RuneReader, func(), error) {
	if file == "" || file == "-" {
		return bufio.NewReader(cmd.InOrStdin()), func() {}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return bufio.NewReader(f), func() { f.Close() }, nil
}

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "pullyaml version %s\n", version)
			return nil
		},
	}
}
