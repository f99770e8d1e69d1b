// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log"

	"go.yaml.in/pullyaml"
)

func scalar(value string) *pullyaml.Node {
	return &pullyaml.Node{Kind: pullyaml.ScalarNode, Value: value}
}

func mapping(pairs ...*pullyaml.Node) *pullyaml.Node {
	return &pullyaml.Node{Kind: pullyaml.MappingNode, Content: pairs}
}

func main() {
	fmt.Println("=== Building YAML Nodes Programmatically ===")

	root := mapping(
		scalar("development"), mapping(
			scalar("database"), scalar("dev.db"),
			scalar("port"), &pullyaml.Node{Kind: pullyaml.ScalarNode, Tag: "!!str", Value: "0x1F90"},
		),
		scalar("production"), mapping(
			scalar("database"), scalar("prod.db"),
			scalar("port"), &pullyaml.Node{Kind: pullyaml.ScalarNode, Tag: "!!int", Value: "8080"},
		),
	)

	// "0x1F90" is tagged as a string, so it gets quoted to stay one.
	out, err := pullyaml.DumpString(root)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated YAML:\n%s\n", out)

	docs, err := pullyaml.Load(out)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Reads back equal: %v\n", docs[0].Content[0].Equal(root))
}
