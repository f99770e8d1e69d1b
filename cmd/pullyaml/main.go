// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary shows how the pullyaml engine sees YAML text: its tokens, its
// events, its reformatted output and the nodes under a path.

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	command := NewDefaultPullyamlCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pullyaml: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
