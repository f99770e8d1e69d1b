// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"

	"go.yaml.in/pullyaml"
)

func main() {
	fmt.Println("Example 3: Dumper with WithIndent Option")

	docs, err := pullyaml.Load("name: service\nversion: 1.0.0\ntags: [a, b, c]\nnotes: \"line 1\\nline 2\\n\"\n")
	if err != nil {
		panic(err)
	}
	// Drop the flow style so the sequence is written as a block.
	docs[0].Path(pullyaml.Field("tags")).Style = 0
	docs[0].Path(pullyaml.Field("notes")).Style = 0

	var buf bytes.Buffer
	dumper, err := pullyaml.NewDumper(&buf, pullyaml.WithIndent(4), pullyaml.WithMultilineStrings(true))
	if err != nil {
		panic(err)
	}
	if err := dumper.Dump(docs[0]); err != nil {
		panic(err)
	}
	if err := dumper.Close(); err != nil {
		panic(err)
	}

	fmt.Printf("Output (4-space indent):\n%s", buf.String())
}
