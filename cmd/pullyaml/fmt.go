// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"
	"go.yaml.in/pullyaml"
	"go.yaml.in/pullyaml/option"
)

// FmtOptions holds the flags of the fmt command.
type FmtOptions struct {
	*RootOptions
	File      string
	Indent    int
	LineWidth int
	Multiline bool
	Restyle   bool
}

func NewFmtCmd(root *RootOptions) *cobra.Command {
	o := &FmtOptions{RootOptions: root}
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Reformat YAML documents",
		RunE:  o.Run,
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "-", "Input file (- for stdin)")
	cmd.Flags().BoolVar(&o.Restyle, "restyle", false, "Drop quoting, block and flow styles read from the input")
	addDumperFlags(cmd, &o.Indent, &o.LineWidth, &o.Multiline)
	return cmd
}

func addDumperFlags(cmd *cobra.Command, indent, width *int, multiline *bool) {
	cmd.Flags().IntVarP(indent, "indent", "i", 2, "Indentation spaces (2-9)")
	cmd.Flags().IntVarP(width, "width", "w", 0, "Preferred line width (0 for unlimited)")
	cmd.Flags().BoolVar(multiline, "multiline", false, "Write multi-line strings as literal blocks")
}

// dumperFlags returns the dumper settings given on the command line.
func dumperFlags(cmd *cobra.Command, indent, width int, multiline bool) []option.Option {
	var opts []option.Option
	if cmd.Flags().Changed("indent") {
		opts = append(opts, option.WithIndent(indent))
	}
	if cmd.Flags().Changed("width") {
		opts = append(opts, option.WithLineWidth(width))
	}
	if cmd.Flags().Changed("multiline") {
		opts = append(opts, option.WithMultilineStrings(multiline))
	}
	return opts
}

func (o *FmtOptions) Run(cmd *cobra.Command, _ []string) error {
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
	if o.Restyle {
		for _, doc := range docs {
			restyle(doc)
		}
	}
	return pullyaml.Dump(cmd.OutOrStdout(), docs, cfg.DumperOptions()...)
}

// restyle clears every presentation style below n so the dumper picks
// styles itself. Explicit tags are kept.
func restyle(n *pullyaml.Node) {
	if n == nil {
		return
	}
	n.Style &= pullyaml.TaggedStyle
	for _, child := range n.Content {
		restyle(child)
	}
}
