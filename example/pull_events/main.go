// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Pull Events demonstrates reading events one at a time.

package main

import (
	"fmt"
	"io"

	"go.yaml.in/pullyaml"
)

func main() {
	fmt.Println("Example 1: Pulling Events")

	yamlData := `name: myapp
version: 1.0.0
tags: [web, api]
`

	p := pullyaml.NewParser(yamlData)
	for {
		event, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		fmt.Printf("%3d:%-3d %s\n", event.StartMark.Line, event.StartMark.Column+1, pullyaml.FormatEvent(&event))
	}
}
