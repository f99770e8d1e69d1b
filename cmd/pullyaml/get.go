// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/pullyaml"
)

// GetOptions holds the flags of the get command.
type GetOptions struct {
	*RootOptions
	File      string
	Path      string
	Indent    int
	LineWidth int
	Multiline bool
}

func NewGetCmd(root *RootOptions) *cobra.Command {
	o := &GetOptions{RootOptions: root}
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the node under a dotted path in every document",
		Example: `  pullyaml get -f deploy.yaml -p pod.containers.0.image
  pullyaml get -p .   # whole document`,
		RunE: o.Run,
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "-", "Input file (- for stdin)")
	cmd.Flags().StringVarP(&o.Path, "path", "p", ".", "Dotted path; numeric segments index sequences")
	addDumperFlags(cmd, &o.Indent, &o.LineWidth, &o.Multiline)
	return cmd
}

// Run fails when the path selects nothing in some document.
func (o *GetOptions) Run(cmd *cobra.Command, _ []string) error {
	cfg, err := o.Config(cmd, dumperFlags(cmd, o.Indent, o.LineWidth, o.Multiline)...)
	if err != nil {
		return err
	}
	r, done, err := input(cmd, o.File)
	if err != nil {
		return err
	}
	defer done()

	docs, err := pullyaml.LoadReader(r, cfg.ParserOptions()...)
	if err != nil {
		return err
	}
	path := pullyaml.ParsePath(o.Path)
	found := make([]*pullyaml.Node, 0, len(docs))
	for i, doc := range docs {
		n := doc.Path(path...)
		if n == nil {
			return fmt.Errorf("path %q not found in document %d", o.Path, i+1)
		}
		found = append(found, n)
	}
	return pullyaml.Dump(cmd.OutOrStdout(), found, cfg.DumperOptions()...)
}
