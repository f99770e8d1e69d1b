// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/pullyaml"
)

// TokensOptions holds the flags of the tokens command.
type TokensOptions struct {
	*RootOptions
	File string
}

func NewTokensCmd(root *RootOptions) *cobra.Command {
	o := &TokensOptions{RootOptions: root}
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print scanner tokens",
		RunE:  o.Run,
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "-", "Input file (- for stdin)")
	return cmd
}

// Run prints every token scanned before the first error, then the error.
func (o *TokensOptions) Run(cmd *cobra.Command, _ []string) error {
	if _, err := o.Config(cmd); err != nil {
		return err
	}
	r, done, err := input(cmd, o.File)
	if err != nil {
		return err
	}
	defer done()

	tokens, err := pullyaml.TokensReader(r)
	out := cmd.OutOrStdout()
	for i := range tokens {
		fmt.Fprintln(out, pullyaml.FormatToken(&tokens[i]))
	}
	return err
}
