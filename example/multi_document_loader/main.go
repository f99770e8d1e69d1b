// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Multi-Document Loader demonstrates loading multiple YAML documents.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/pullyaml"
)

func main() {
	fmt.Println("Example 2: Multi-Document Loader")

	multiDoc := `---
name: app1
version: 1.0.0
---
name: app2
version: 2.0.0
tags:
  - experimental
---
name: app3
version: 3.0.0
`

	loader, err := pullyaml.NewLoader(bufio.NewReader(strings.NewReader(multiDoc)))
	if err != nil {
		panic(err)
	}

	docNum := 1
	for {
		doc, err := loader.Load()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		name := doc.Path(pullyaml.Field("name"))
		tag := doc.Path(pullyaml.ParsePath("tags.0")...)
		fmt.Printf("Document %d: name=%s first tag=%v\n", docNum, name.Value, tag != nil)
		docNum++
	}
}
