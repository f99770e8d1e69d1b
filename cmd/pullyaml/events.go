// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/pullyaml"
)

// EventsOptions holds the flags of the events command.
type EventsOptions struct {
	*RootOptions
	File  string
	Marks bool
}

func NewEventsCmd(root *RootOptions) *cobra.Command {
	o := &EventsOptions{RootOptions: root}
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print parsing events in yaml-test-suite notation",
		RunE:  o.Run,
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "-", "Input file (- for stdin)")
	cmd.Flags().BoolVarP(&o.Marks, "marks", "m", false, "Prefix each event with its start and end position")
	return cmd
}

// Run prints events as they are pulled, so the output stops right where
// the input becomes invalid.
func (o *EventsOptions) Run(cmd *cobra.Command, _ []string) error {
	cfg, err := o.Config(cmd)
	if err != nil {
		return err
	}
	r, done, err := input(cmd, o.File)
	if err != nil {
		return err
	}
	defer done()

	out := cmd.OutOrStdout()
	p := pullyaml.NewParserFromReader(r, cfg.ParserOptions()...)
	for {
		event, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if o.Marks {
			fmt.Fprintf(out, "%d:%d-%d:%d ", event.StartMark.Line, event.StartMark.Column+1,
				event.EndMark.Line, event.EndMark.Column+1)
		}
		fmt.Fprintln(out, pullyaml.FormatEvent(&event))
	}
}
